package service

import (
	"context"
	"mindset_backend/internal/model"
	"mindset_backend/internal/repository"
	"mindset_backend/internal/stats"
	"mindset_backend/internal/util"
	"mindset_backend/pkg/logger"
	"mindset_backend/pkg/monitoring"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProgressService 所有修改用户状态的操作。每个方法都是一次完整的 读-改-写。
type ProgressService struct {
	Repo    *repository.StateRepository
	Catalog *CatalogService
	Loc     *time.Location
	Now     func() time.Time
}

func NewProgressService(repo *repository.StateRepository, catalog *CatalogService, loc *time.Location) *ProgressService {
	return &ProgressService{
		Repo:    repo,
		Catalog: catalog,
		Loc:     loc,
		Now:     time.Now,
	}
}

func (s *ProgressService) now() time.Time {
	return s.Now().In(s.Loc)
}

func (s *ProgressService) State(ctx context.Context) *model.UserState {
	return s.Repo.Load(ctx)
}

func (s *ProgressService) checkDay(moduleID string, day int) error {
	if _, err := s.Catalog.Module(moduleID); err != nil {
		return err
	}
	if day < 1 || day > s.Catalog.TotalDays(moduleID) {
		return util.ErrInvalidDay
	}
	return nil
}

// CompleteDay 记录某天完成：进度不存在时创建，日志总是覆盖并刷新时间，
// 已完成天数只插入一次
func (s *ProgressService) CompleteDay(ctx context.Context, moduleID string, day int, reflection, taskResponse string) (*model.UserState, error) {
	if err := s.checkDay(moduleID, day); err != nil {
		return nil, err
	}

	var added bool
	state, err := s.Repo.Update(ctx, func(st *model.UserState) error {
		now := s.now()
		p, ok := st.Progress[moduleID]
		if !ok {
			p = model.NewModuleProgress(now)
			st.Progress[moduleID] = p
		}
		p.Journal[day] = &model.JournalEntry{
			Reflection:   reflection,
			TaskResponse: taskResponse,
			CompletedAt:  now,
		}
		added = p.MarkCompleted(day)
		p.LastAccessedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	if added {
		monitoring.DayCompletions.WithLabelValues(moduleID).Inc()
	}
	logger.Log.Info("Day completed",
		zap.String("moduleId", moduleID),
		zap.Int("day", day),
		zap.Bool("firstTime", added))
	return state, nil
}

// SaveJournalEntry 编辑已有日志，不改变完成时间
func (s *ProgressService) SaveJournalEntry(ctx context.Context, moduleID string, day int, reflection, taskResponse string) (*model.UserState, error) {
	if err := s.checkDay(moduleID, day); err != nil {
		return nil, err
	}
	return s.Repo.Update(ctx, func(st *model.UserState) error {
		p, ok := st.Progress[moduleID]
		if !ok {
			return util.ErrDayNotFound
		}
		entry, ok := p.Journal[day]
		if !ok {
			return util.ErrDayNotFound
		}
		entry.Reflection = reflection
		entry.TaskResponse = taskResponse
		p.LastAccessedAt = s.now()
		return nil
	})
}

// StartModule 开始或继续一个模块。已开始未完成的模块最多 5 个。
func (s *ProgressService) StartModule(ctx context.Context, moduleID string) (*model.UserState, error) {
	if _, err := s.Catalog.Module(moduleID); err != nil {
		return nil, err
	}
	return s.Repo.Update(ctx, func(st *model.UserState) error {
		now := s.now()
		if p, ok := st.Progress[moduleID]; ok {
			p.LastAccessedAt = now
			return nil
		}

		unfinished := 0
		for id, p := range st.Progress {
			if len(p.CompletedDays) < s.Catalog.TotalDays(id) {
				unfinished++
			}
		}
		if unfinished >= stats.MaxActiveJourneys {
			return util.ErrTooManyActiveJourneys
		}
		st.Progress[moduleID] = model.NewModuleProgress(now)
		return nil
	})
}

// TouchModule 更新最近访问时间，模块未开始时不做任何事
func (s *ProgressService) TouchModule(ctx context.Context, moduleID string) {
	_, _ = s.Repo.Update(ctx, func(st *model.UserState) error {
		p, ok := st.Progress[moduleID]
		if !ok {
			return util.ErrModuleNotFound
		}
		p.LastAccessedAt = s.now()
		return nil
	})
}

// ResetModule 删除模块的全部进度
func (s *ProgressService) ResetModule(ctx context.Context, moduleID string) (*model.UserState, error) {
	return s.Repo.Update(ctx, func(st *model.UserState) error {
		if _, ok := st.Progress[moduleID]; !ok {
			return util.ErrModuleNotFound
		}
		delete(st.Progress, moduleID)
		return nil
	})
}

// ResetApp 清空整个存储
func (s *ProgressService) ResetApp(ctx context.Context) error {
	return s.Repo.Reset(ctx)
}

func (s *ProgressService) AddGoal(ctx context.Context, text string) (*model.DailyGoal, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, util.ErrEmptyGoalText
	}
	goal := model.DailyGoal{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: s.now(),
		History:   []string{},
	}
	_, err := s.Repo.Update(ctx, func(st *model.UserState) error {
		st.DailyGoals = append(st.DailyGoals, goal)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *ProgressService) UpdateGoal(ctx context.Context, id, text string) (*model.UserState, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, util.ErrEmptyGoalText
	}
	return s.Repo.Update(ctx, func(st *model.UserState) error {
		i := st.FindGoal(id)
		if i < 0 {
			return util.ErrGoalNotFound
		}
		st.DailyGoals[i].Text = text
		return nil
	})
}

func (s *ProgressService) DeleteGoal(ctx context.Context, id string) (*model.UserState, error) {
	return s.Repo.Update(ctx, func(st *model.UserState) error {
		i := st.FindGoal(id)
		if i < 0 {
			return util.ErrGoalNotFound
		}
		st.DailyGoals = append(st.DailyGoals[:i], st.DailyGoals[i+1:]...)
		return nil
	})
}

// ToggleGoal 切换目标在今天的完成状态，返回切换后的状态
func (s *ProgressService) ToggleGoal(ctx context.Context, id string) (bool, *model.UserState, error) {
	today := util.DateKey(s.now(), s.Loc)
	var done bool
	state, err := s.Repo.Update(ctx, func(st *model.UserState) error {
		i := st.FindGoal(id)
		if i < 0 {
			return util.ErrGoalNotFound
		}
		done = st.DailyGoals[i].Toggle(today)
		return nil
	})
	if err != nil {
		return false, nil, err
	}
	return done, state, nil
}

func (s *ProgressService) SetLanguage(ctx context.Context, lang string) (*model.UserState, error) {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		lang = model.DefaultLanguage
	}
	return s.Repo.Update(ctx, func(st *model.UserState) error {
		st.Language = lang
		return nil
	})
}

func (s *ProgressService) SetTheme(ctx context.Context, theme model.Theme) (*model.UserState, error) {
	if !theme.Valid() {
		return nil, util.ErrInvalidTheme
	}
	return s.Repo.Update(ctx, func(st *model.UserState) error {
		st.Theme = theme
		return nil
	})
}

func (s *ProgressService) SetReminder(ctx context.Context, reminder model.ReminderSettings) (*model.UserState, error) {
	if reminder.Time == "" {
		reminder.Time = model.DefaultReminder
	}
	if !util.ValidHourMinute(reminder.Time) {
		return nil, util.ErrInvalidReminderTime
	}
	return s.Repo.Update(ctx, func(st *model.UserState) error {
		st.Reminder = reminder
		return nil
	})
}

func (s *ProgressService) SetName(ctx context.Context, name string) (*model.UserState, error) {
	return s.Repo.Update(ctx, func(st *model.UserState) error {
		st.Name = strings.TrimSpace(name)
		return nil
	})
}

// ProfileUpdate 只更新非 nil 字段
type ProfileUpdate struct {
	Name   *string `json:"name"`
	Bio    *string `json:"bio"`
	Avatar *string `json:"avatar"`
}

func (s *ProgressService) UpdateProfile(ctx context.Context, in ProfileUpdate) (*model.UserState, error) {
	return s.Repo.Update(ctx, func(st *model.UserState) error {
		if in.Name != nil {
			st.Name = strings.TrimSpace(*in.Name)
		}
		if in.Bio != nil {
			st.Bio = *in.Bio
		}
		if in.Avatar != nil && *in.Avatar != "" {
			st.Avatar = *in.Avatar
		}
		return nil
	})
}

// CompleteOnboarding 保存姓名并根据测验答案推荐一个模块
func (s *ProgressService) CompleteOnboarding(ctx context.Context, name string, answers map[string]string) (*model.UserState, error) {
	recommended, _ := s.Catalog.Recommend(answers)
	return s.Repo.Update(ctx, func(st *model.UserState) error {
		if name = strings.TrimSpace(name); name != "" {
			st.Name = name
		}
		st.HasCompletedOnboarding = true
		st.RecommendedModuleID = recommended
		return nil
	})
}

// AddTimeSpent 累加学习时长（秒）
func (s *ProgressService) AddTimeSpent(ctx context.Context, readingSeconds, totalSeconds int64) (*model.UserState, error) {
	if readingSeconds <= 0 && totalSeconds <= 0 {
		return s.Repo.Load(ctx), nil
	}
	return s.Repo.Update(ctx, func(st *model.UserState) error {
		if readingSeconds > 0 {
			st.TimeSpent.Reading += readingSeconds
		}
		if totalSeconds > 0 {
			st.TimeSpent.Total += totalSeconds
		}
		return nil
	})
}

func (s *ProgressService) MarkSessionStart(ctx context.Context) (*model.UserState, error) {
	return s.Repo.Update(ctx, func(st *model.UserState) error {
		now := s.now()
		st.TimeSpent.LastSessionStart = &now
		return nil
	})
}
