package service

import (
	"context"
	"fmt"
	"mindset_backend/internal/model"
	"mindset_backend/internal/util"
	"mindset_backend/internal/wizard"
	"mindset_backend/pkg/logger"
	"mindset_backend/pkg/monitoring"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EntryDeniedError 不允许进入某一天，携带重定向目标或倒计时
type EntryDeniedError struct {
	Entry wizard.Entry
}

func (e *EntryDeniedError) Error() string {
	return fmt.Sprintf("day %d: %s", e.Entry.Day, e.Entry.Outcome)
}

func (e *EntryDeniedError) Unwrap() error {
	return e.Entry.Err()
}

type wizardEntry struct {
	session  *wizard.Session
	lastSeen time.Time
}

// SessionView 返回给客户端的会话信息
type SessionView struct {
	ID string `json:"id"`
	wizard.View
	Review bool `json:"review"`
}

// SaveResult 保存反思后的结果
type SaveResult struct {
	State *model.UserState `json:"state"`
	Lock  LockView         `json:"lock"`
}

type LockView struct {
	Locked           bool      `json:"locked"`
	Overridden       bool      `json:"overridden"`
	UnlockAt         time.Time `json:"unlockAt,omitempty"`
	RemainingSeconds int64     `json:"remainingSeconds"`
}

// WizardService 管理进行中的课程会话。会话只在内存中，空闲超时后自动关闭并结算时长。
type WizardService struct {
	Progress    *ProgressService
	Catalog     *CatalogService
	Loc         *time.Location
	Now         func() time.Time
	MinReading  time.Duration
	IdleTimeout time.Duration

	mu        sync.Mutex
	sessions  map[string]*wizardEntry
	overrides map[string]skipOverride
}

// skipOverride 跳过等待只对被锁定的那一天有效
type skipOverride struct {
	day   int
	until time.Time
}

func NewWizardService(progress *ProgressService, catalog *CatalogService, loc *time.Location, minReading, idle time.Duration) *WizardService {
	return &WizardService{
		Progress:    progress,
		Catalog:     catalog,
		Loc:         loc,
		Now:         time.Now,
		MinReading:  minReading,
		IdleTimeout: idle,
		sessions:    make(map[string]*wizardEntry),
		overrides:   make(map[string]skipOverride),
	}
}

func (s *WizardService) now() time.Time {
	return s.Now().In(s.Loc)
}

// overrideActive 调用方需持有 mu。过了零点或已完成被放行的那一天后失效。
func (s *WizardService) overrideActive(moduleID string, p *model.ModuleProgress, now time.Time) bool {
	o, ok := s.overrides[moduleID]
	if !ok {
		return false
	}
	if !now.Before(o.until) || p.NextDay() != o.day {
		delete(s.overrides, moduleID)
		return false
	}
	return true
}

// CheckEntry 只检查不创建会话
func (s *WizardService) CheckEntry(ctx context.Context, moduleID string, day int) (wizard.Entry, error) {
	if _, err := s.Catalog.Module(moduleID); err != nil {
		return wizard.Entry{}, err
	}
	state := s.Progress.State(ctx)
	now := s.now()

	s.mu.Lock()
	override := s.overrideActive(moduleID, state.Progress[moduleID], now)
	s.mu.Unlock()

	return wizard.CheckEntry(state.Progress[moduleID], day, s.Catalog.TotalDays(moduleID), now, override), nil
}

// Open 通过进入检查后创建会话
func (s *WizardService) Open(ctx context.Context, moduleID string, day int) (*SessionView, *model.LessonDay, error) {
	_, lesson, err := s.Catalog.Lesson(moduleID, day)
	if err != nil {
		return nil, nil, err
	}
	entry, err := s.CheckEntry(ctx, moduleID, day)
	if err != nil {
		return nil, nil, err
	}
	if !entry.Allowed() {
		return nil, nil, &EntryDeniedError{Entry: entry}
	}

	s.Progress.TouchModule(ctx, moduleID)
	_, _ = s.Progress.MarkSessionStart(ctx)

	state := s.Progress.State(ctx)
	now := s.now()
	sess := wizard.NewSession(moduleID, day, s.MinReading, now)
	if len(lesson.ReflectionPrompts) > 0 {
		sess.Prompt = lesson.ReflectionPrompts[0].Get(state.Language)
	}
	if entry.Outcome == wizard.OutcomeReview {
		if p := state.Progress[moduleID]; p != nil {
			if je, ok := p.Journal[day]; ok {
				sess.TaskResponse = je.TaskResponse
				sess.Reflection = je.Reflection
			}
		}
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = &wizardEntry{session: sess, lastSeen: now}
	s.mu.Unlock()
	monitoring.WizardSessions.Inc()

	logger.Log.Debug("Wizard session opened",
		zap.String("sessionId", id),
		zap.String("moduleId", moduleID),
		zap.Int("day", day),
		zap.String("outcome", string(entry.Outcome)))

	return &SessionView{ID: id, View: sess.View(now), Review: entry.Outcome == wizard.OutcomeReview}, lesson, nil
}

// with 在锁内对会话执行 fn 并返回最新视图
func (s *WizardService) with(id string, fn func(sess *wizard.Session, now time.Time) error) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, util.ErrSessionNotFound
	}
	now := s.now()
	e.lastSeen = now
	if fn != nil {
		if err := fn(e.session, now); err != nil {
			return nil, err
		}
	}
	return &SessionView{ID: id, View: e.session.View(now)}, nil
}

func (s *WizardService) Get(id string) (*SessionView, error) {
	return s.with(id, nil)
}

func (s *WizardService) SetVisible(id string, visible bool) (*SessionView, error) {
	return s.with(id, func(sess *wizard.Session, now time.Time) error {
		sess.SetVisible(visible, now)
		return nil
	})
}

// ConfirmReading 阅读未满最短时长时记为跳过
func (s *WizardService) ConfirmReading(id string) (*SessionView, bool, error) {
	var skipped bool
	view, err := s.with(id, func(sess *wizard.Session, now time.Time) error {
		var err error
		skipped, err = sess.ConfirmReading(now)
		return err
	})
	return view, skipped, err
}

func (s *WizardService) SubmitTask(id, response string) (*SessionView, error) {
	return s.with(id, func(sess *wizard.Session, now time.Time) error {
		return sess.SubmitTask(response, now)
	})
}

func (s *WizardService) Back(id string) (*SessionView, error) {
	return s.with(id, func(sess *wizard.Session, now time.Time) error {
		return sess.Back(now)
	})
}

func (s *WizardService) UpdateReflection(id, text string) (*SessionView, error) {
	return s.with(id, func(sess *wizard.Session, now time.Time) error {
		return sess.UpdateReflection(text)
	})
}

// Deepen 换一个不同于当前的随机提示
func (s *WizardService) Deepen(ctx context.Context, id string) (*SessionView, error) {
	lang := s.Progress.State(ctx).Language
	return s.with(id, func(sess *wizard.Session, now time.Time) error {
		prompt, err := s.Catalog.RandomPrompt(sess.ModuleID, sess.Day, lang, sess.Prompt)
		if err != nil {
			return err
		}
		return sess.Deepen(prompt)
	})
}

// Save 持久化反思并完成当天。reflection 为 nil 时使用会话中的文字。
func (s *WizardService) Save(ctx context.Context, id string, reflection *string) (*SaveResult, error) {
	s.mu.Lock()
	e, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return nil, util.ErrSessionNotFound
	}
	sess := e.session
	if reflection != nil {
		if err := sess.UpdateReflection(*reflection); err != nil {
			s.mu.Unlock()
			return nil, err
		}
	} else if sess.Step != wizard.StepReflection || sess.Completed || sess.Closed {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: save requires the reflection step", util.ErrInvalidTransition)
	}
	moduleID, day, text, task := sess.ModuleID, sess.Day, sess.Reflection, sess.TaskResponse
	e.lastSeen = s.now()
	s.mu.Unlock()

	state, err := s.Progress.CompleteDay(ctx, moduleID, day, text, task)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	now := s.now()
	if err := sess.Complete(now); err != nil {
		logger.Log.Warn("Wizard session changed during save", zap.String("sessionId", id), zap.Error(err))
	}
	lock := s.lockView(state.Progress[moduleID], moduleID, now)
	s.mu.Unlock()

	return &SaveResult{State: state, Lock: lock}, nil
}

// Close 结束会话并把可见时长累加到 timeSpent
func (s *WizardService) Close(ctx context.Context, id string) (wizard.Usage, error) {
	s.mu.Lock()
	e, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return wizard.Usage{}, util.ErrSessionNotFound
	}
	delete(s.sessions, id)
	usage := e.session.Close(s.now())
	s.mu.Unlock()

	monitoring.WizardSessions.Dec()
	s.flush(ctx, usage)
	return usage, nil
}

func (s *WizardService) flush(ctx context.Context, usage wizard.Usage) {
	reading := int64(usage.Reading / time.Second)
	total := int64(usage.Total / time.Second)
	if reading == 0 && total == 0 {
		return
	}
	if _, err := s.Progress.AddTimeSpent(ctx, reading, total); err != nil {
		logger.Log.Error("Failed to record time spent", zap.Error(err))
	}
}

// NextDayLock 查询模块下一天的时间锁，包含跳过等待状态
func (s *WizardService) NextDayLock(ctx context.Context, moduleID string) (LockView, error) {
	if _, err := s.Catalog.Module(moduleID); err != nil {
		return LockView{}, err
	}
	state := s.Progress.State(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lockView(state.Progress[moduleID], moduleID, s.now()), nil
}

// lockView 调用方需持有 mu
func (s *WizardService) lockView(p *model.ModuleProgress, moduleID string, now time.Time) LockView {
	lock := wizard.NextDayLock(p, now)
	if !lock.Locked {
		return LockView{}
	}
	return LockView{
		Locked:           true,
		Overridden:       s.overrideActive(moduleID, p, now),
		UnlockAt:         lock.UnlockAt,
		RemainingSeconds: int64(lock.Remaining / time.Second),
	}
}

// SkipWait 显式确认后在本地零点前放行下一天，只放行这一天，不修改已完成记录
func (s *WizardService) SkipWait(ctx context.Context, moduleID string, confirmed bool) (LockView, error) {
	if !confirmed {
		return LockView{}, util.ErrConfirmRequired
	}
	if _, err := s.Catalog.Module(moduleID); err != nil {
		return LockView{}, err
	}
	state := s.Progress.State(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	lock := wizard.NextDayLock(state.Progress[moduleID], now)
	if !lock.Locked {
		return LockView{}, util.ErrNothingToSkip
	}
	s.overrides[moduleID] = skipOverride{day: state.Progress[moduleID].NextDay(), until: lock.UnlockAt}
	logger.Log.Info("Day lock skipped", zap.String("moduleId", moduleID), zap.Time("until", lock.UnlockAt))
	return s.lockView(state.Progress[moduleID], moduleID, now), nil
}

// ReapIdle 关闭空闲超过 IdleTimeout 的会话，返回关闭数量
func (s *WizardService) ReapIdle(ctx context.Context) int {
	s.mu.Lock()
	now := s.now()
	var usages []wizard.Usage
	for id, e := range s.sessions {
		if now.Sub(e.lastSeen) < s.IdleTimeout {
			continue
		}
		usages = append(usages, e.session.Close(now))
		delete(s.sessions, id)
		logger.Log.Debug("Idle wizard session closed", zap.String("sessionId", id))
	}
	s.mu.Unlock()

	for _, u := range usages {
		monitoring.WizardSessions.Dec()
		s.flush(ctx, u)
	}
	return len(usages)
}

// Run 定期回收空闲会话，ctx 取消时关闭全部会话
func (s *WizardService) Run(ctx context.Context) {
	interval := s.IdleTimeout / 2
	if interval <= 0 || interval > time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.ReapIdle(ctx)
		case <-ctx.Done():
			s.closeAll()
			return
		}
	}
}

func (s *WizardService) closeAll() {
	s.mu.Lock()
	now := s.now()
	var usages []wizard.Usage
	for id, e := range s.sessions {
		usages = append(usages, e.session.Close(now))
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	// ctx 已取消，使用独立的 context 写回
	ctx := context.Background()
	for _, u := range usages {
		monitoring.WizardSessions.Dec()
		s.flush(ctx, u)
	}
	if len(usages) > 0 {
		logger.Log.Info("Wizard sessions closed on shutdown", zap.Int("count", len(usages)))
	}
}

func (s *WizardService) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
