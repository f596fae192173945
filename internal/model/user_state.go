package model

import "time"

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

const (
	DefaultLanguage = "en"
	DefaultAvatar   = "seedling"
	DefaultReminder = "09:00"
)

// ReminderSettings 每日提醒设置，Time 为本地时间 "HH:mm"
type ReminderSettings struct {
	Enabled bool   `json:"enabled"`
	Time    string `json:"time"`
}

// TimeSpent 累计学习时长（秒）
type TimeSpent struct {
	Reading          int64      `json:"reading"`
	Total            int64      `json:"total"`
	LastSessionStart *time.Time `json:"lastSessionStart,omitempty"`
}

// UserState 整个应用的持久化根记录，以单个 JSON 值保存
// swagger:model UserState
type UserState struct {
	Name     string           `json:"name"`
	Bio      string           `json:"bio"`
	Avatar   string           `json:"avatar"`
	JoinedAt time.Time        `json:"joinedAt"`
	Language string           `json:"language"`
	Theme    Theme            `json:"theme"`
	Reminder ReminderSettings `json:"reminder"`

	HasCompletedOnboarding bool   `json:"hasCompletedOnboarding"`
	RecommendedModuleID    string `json:"recommendedModuleId,omitempty"`

	Progress   map[string]*ModuleProgress `json:"progress"`
	DailyGoals []DailyGoal                `json:"dailyGoals"`
	TimeSpent  TimeSpent                  `json:"timeSpent"`

	// Revision 每次保存递增，用作 ETag
	Revision  int64     `json:"revision"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewUserState 返回首次启动时的默认状态
func NewUserState(now time.Time) *UserState {
	return &UserState{
		Avatar:   DefaultAvatar,
		JoinedAt: now,
		Language: DefaultLanguage,
		Theme:    ThemeSystem,
		Reminder: ReminderSettings{
			Enabled: false,
			Time:    DefaultReminder,
		},
		Progress:   make(map[string]*ModuleProgress),
		DailyGoals: []DailyGoal{},
	}
}

// Backfill 为旧版本数据中缺失的字段补上默认值，并整理已完成天数集合
func (s *UserState) Backfill(now time.Time) {
	if s.Avatar == "" {
		s.Avatar = DefaultAvatar
	}
	if s.JoinedAt.IsZero() {
		s.JoinedAt = now
	}
	if s.Language == "" {
		s.Language = DefaultLanguage
	}
	if !s.Theme.Valid() {
		s.Theme = ThemeSystem
	}
	if s.Reminder.Time == "" {
		s.Reminder.Time = DefaultReminder
	}
	if s.Progress == nil {
		s.Progress = make(map[string]*ModuleProgress)
	}
	for id, p := range s.Progress {
		if p == nil {
			delete(s.Progress, id)
			continue
		}
		p.normalize()
	}
	if s.DailyGoals == nil {
		s.DailyGoals = []DailyGoal{}
	}
	for i := range s.DailyGoals {
		if s.DailyGoals[i].History == nil {
			s.DailyGoals[i].History = []string{}
		}
	}
}

// FindGoal 返回目标下标，不存在时返回 -1
func (s *UserState) FindGoal(id string) int {
	for i := range s.DailyGoals {
		if s.DailyGoals[i].ID == id {
			return i
		}
	}
	return -1
}
