package service

import (
	"context"
	"errors"
	"mindset_backend/internal/model"
	"mindset_backend/internal/repository"
	"mindset_backend/internal/util"
	"mindset_backend/pkg/logger"
	"mindset_backend/pkg/monitoring"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationService 每日提醒与一次性定时通知。两者都由同一个轮询循环触发，
// 不保证精确到秒。
type NotificationService struct {
	Repo      *repository.StateRepository
	Notifiers []Notifier
	Loc       *time.Location
	Now       func() time.Time

	mu               sync.Mutex
	lastReminderDate string
	queue            []model.ScheduledNotification
	interval         time.Duration
	intervalCh       chan time.Duration
}

func NewNotificationService(repo *repository.StateRepository, loc *time.Location, interval time.Duration, notifiers ...Notifier) *NotificationService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &NotificationService{
		Repo:       repo,
		Notifiers:  notifiers,
		Loc:        loc,
		Now:        time.Now,
		interval:   interval,
		intervalCh: make(chan time.Duration, 1),
	}
}

// ChannelStatus 单个通道的授权状态
type ChannelStatus struct {
	Channel    string                       `json:"channel"`
	Permission model.NotificationPermission `json:"permission"`
}

// Permission 任一通道已授权即为 granted；没有任何通道时为 unsupported
func (s *NotificationService) Permission(ctx context.Context) (model.NotificationPermission, []ChannelStatus) {
	channels := make([]ChannelStatus, 0, len(s.Notifiers))
	overall := model.PermissionUnsupported
	for _, n := range s.Notifiers {
		p := n.RequestPermission(ctx)
		channels = append(channels, ChannelStatus{Channel: n.Name(), Permission: p})
		switch {
		case p == model.PermissionGranted:
			overall = model.PermissionGranted
		case overall == model.PermissionUnsupported && p != model.PermissionUnsupported:
			overall = p
		}
	}
	return overall, channels
}

// Show 发送到所有已授权通道，返回成功送达的通道数。没有可用通道不算错误。
func (s *NotificationService) Show(ctx context.Context, n model.Notification) int {
	n = n.WithDefaults()
	delivered := 0
	for _, notifier := range s.Notifiers {
		if notifier.RequestPermission(ctx) != model.PermissionGranted {
			monitoring.NotificationsSent.WithLabelValues(notifier.Name(), "skipped").Inc()
			continue
		}
		if err := notifier.Show(ctx, n); err != nil {
			result := "error"
			if errors.Is(err, ErrNoSubscribers) {
				result = "skipped"
			} else {
				logger.Log.Warn("Notification failed", zap.String("channel", notifier.Name()), zap.Error(err))
			}
			monitoring.NotificationsSent.WithLabelValues(notifier.Name(), result).Inc()
			continue
		}
		monitoring.NotificationsSent.WithLabelValues(notifier.Name(), "ok").Inc()
		delivered++
	}
	return delivered
}

// Schedule 在 at 之后的第一次轮询时发送
func (s *NotificationService) Schedule(n model.Notification, at time.Time) model.ScheduledNotification {
	item := model.ScheduledNotification{
		ID:           uuid.NewString(),
		At:           at,
		Notification: n.WithDefaults(),
	}
	s.mu.Lock()
	s.queue = append(s.queue, item)
	sort.Slice(s.queue, func(i, j int) bool { return s.queue[i].At.Before(s.queue[j].At) })
	s.mu.Unlock()
	return item
}

func (s *NotificationService) Cancel(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.queue {
		if item.ID == id {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			return true
		}
	}
	return false
}

func (s *NotificationService) Pending() []model.ScheduledNotification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.ScheduledNotification, len(s.queue))
	copy(out, s.queue)
	return out
}

// dueLocked 取出已到期的定时通知，调用方需持有 mu
func (s *NotificationService) dueLocked(now time.Time) []model.ScheduledNotification {
	i := 0
	for i < len(s.queue) && !s.queue[i].At.After(now) {
		i++
	}
	due := append([]model.ScheduledNotification(nil), s.queue[:i]...)
	s.queue = s.queue[i:]
	return due
}

// reminderDue 提醒已开启、已到设定时间且今天尚未发送
func (s *NotificationService) reminderDue(reminder model.ReminderSettings, now time.Time) (string, bool) {
	if !reminder.Enabled {
		return "", false
	}
	at, err := time.ParseInLocation(util.HourMinute, reminder.Time, s.Loc)
	if err != nil {
		return "", false
	}
	today := util.DateKey(now, s.Loc)
	if s.lastReminderDate == today {
		return "", false
	}
	local := now.In(s.Loc)
	fireAt := time.Date(local.Year(), local.Month(), local.Day(), at.Hour(), at.Minute(), 0, 0, s.Loc)
	if local.Before(fireAt) {
		return "", false
	}
	return today, true
}

func reminderNotification(state *model.UserState) model.Notification {
	title := "Time for today's lesson"
	if state.Name != "" {
		title = "Hi " + state.Name + ", time for today's lesson"
	}
	return model.Notification{
		Title:     title,
		Body:      "A few minutes of reading and reflection keeps your streak alive.",
		TargetURL: model.DefaultNotificationTarget,
	}
}

// Tick 执行一次轮询，返回本次发送的通知数量
func (s *NotificationService) Tick(ctx context.Context) int {
	now := s.Now()
	state := s.Repo.Load(ctx)

	s.mu.Lock()
	today, remind := s.reminderDue(state.Reminder, now)
	if remind {
		s.lastReminderDate = today
	}
	due := s.dueLocked(now)
	s.mu.Unlock()

	sent := 0
	if remind {
		logger.Log.Info("Daily reminder due", zap.String("date", today), zap.String("time", state.Reminder.Time))
		s.Show(ctx, reminderNotification(state))
		sent++
	}
	for _, item := range due {
		s.Show(ctx, item.Notification)
		sent++
	}
	return sent
}

// SetInterval 调整轮询间隔，配置热加载时调用
func (s *NotificationService) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	s.mu.Lock()
	changed := d != s.interval
	s.interval = d
	s.mu.Unlock()
	if !changed {
		return
	}
	select {
	case s.intervalCh <- d:
	default:
	}
}

func (s *NotificationService) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

// Run 轮询直到 ctx 取消
func (s *NotificationService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Tick(ctx)
		case d := <-s.intervalCh:
			ticker.Reset(d)
			logger.Log.Info("Reminder poll interval changed", zap.Duration("interval", d))
		case <-ctx.Done():
			return
		}
	}
}
