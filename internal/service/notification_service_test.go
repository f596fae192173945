package service

import (
	"context"
	"errors"
	"mindset_backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	name       string
	permission model.NotificationPermission
	err        error
	shown      []model.Notification
}

func (n *recordingNotifier) Name() string { return n.name }

func (n *recordingNotifier) RequestPermission(ctx context.Context) model.NotificationPermission {
	return n.permission
}

func (n *recordingNotifier) Show(ctx context.Context, msg model.Notification) error {
	if n.err != nil {
		return n.err
	}
	n.shown = append(n.shown, msg)
	return nil
}

func newNotificationService(f *fixture, notifiers ...Notifier) *NotificationService {
	s := NewNotificationService(f.repo, time.UTC, time.Minute, notifiers...)
	s.Now = f.clock.Now
	return s
}

func TestReminderFiresOncePerDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rec := &recordingNotifier{name: "rec", permission: model.PermissionGranted}
	s := newNotificationService(f, rec)

	// 未开启
	assert.Equal(t, 0, s.Tick(ctx))

	_, err := f.progress.SetReminder(ctx, model.ReminderSettings{Enabled: true, Time: "10:30"})
	require.NoError(t, err)

	assert.Equal(t, 0, s.Tick(ctx), "before reminder time")

	f.clock.Advance(31 * time.Minute)
	assert.Equal(t, 1, s.Tick(ctx))
	assert.Equal(t, 0, s.Tick(ctx), "already sent today")
	require.Len(t, rec.shown, 1)
	assert.Equal(t, model.DefaultNotificationTarget, rec.shown[0].TargetURL)

	f.clock.Advance(24 * time.Hour)
	assert.Equal(t, 1, s.Tick(ctx))
	assert.Len(t, rec.shown, 2)
}

func TestScheduledNotifications(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rec := &recordingNotifier{name: "rec", permission: model.PermissionGranted}
	s := newNotificationService(f, rec)

	later := s.Schedule(model.Notification{Title: "later"}, f.clock.Now().Add(time.Hour))
	s.Schedule(model.Notification{Title: "soon", TargetURL: "/journal"}, f.clock.Now().Add(time.Minute))
	cancelled := s.Schedule(model.Notification{Title: "cancelled"}, f.clock.Now().Add(2*time.Minute))
	assert.True(t, s.Cancel(cancelled.ID))
	assert.False(t, s.Cancel(cancelled.ID))
	assert.Len(t, s.Pending(), 2)

	assert.Equal(t, 0, s.Tick(ctx))

	f.clock.Advance(5 * time.Minute)
	assert.Equal(t, 1, s.Tick(ctx))
	require.Len(t, rec.shown, 1)
	assert.Equal(t, "soon", rec.shown[0].Title)
	assert.Equal(t, "/journal", rec.shown[0].TargetURL)

	pending := s.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, later.ID, pending[0].ID)
	assert.Equal(t, model.DefaultNotificationTarget, pending[0].Notification.TargetURL)
}

func TestShowSkipsUnavailableChannels(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	granted := &recordingNotifier{name: "ok", permission: model.PermissionGranted}
	denied := &recordingNotifier{name: "denied", permission: model.PermissionDenied}
	failing := &recordingNotifier{name: "failing", permission: model.PermissionGranted, err: errors.New("boom")}
	s := newNotificationService(f, granted, denied, failing)

	assert.Equal(t, 1, s.Show(ctx, model.Notification{Title: "hi"}))
	assert.Len(t, granted.shown, 1)
	assert.Empty(t, denied.shown)
}

func TestPermissionAggregation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, channels := newNotificationService(f).Permission(ctx)
	assert.Equal(t, model.PermissionUnsupported, p)
	assert.Empty(t, channels)

	p, _ = newNotificationService(f,
		&recordingNotifier{name: "a", permission: model.PermissionUnsupported},
		&recordingNotifier{name: "b", permission: model.PermissionDenied},
	).Permission(ctx)
	assert.Equal(t, model.PermissionDenied, p)

	p, channels = newNotificationService(f,
		&recordingNotifier{name: "a", permission: model.PermissionDenied},
		&recordingNotifier{name: "b", permission: model.PermissionGranted},
	).Permission(ctx)
	assert.Equal(t, model.PermissionGranted, p)
	assert.Len(t, channels, 2)
}

func TestPushHubWithoutClients(t *testing.T) {
	hub := NewPushHub()
	assert.Equal(t, model.PermissionDefault, hub.RequestPermission(context.Background()))
	assert.ErrorIs(t, hub.Show(context.Background(), model.Notification{Title: "x"}), ErrNoSubscribers)
}

type fakePusher struct {
	to, text string
}

func (p *fakePusher) PushText(to, text string) error {
	p.to, p.text = to, text
	return nil
}

func TestLineNotifier(t *testing.T) {
	pusher := &fakePusher{}
	n := &LineNotifier{Pusher: pusher, UserID: "U123"}
	assert.Equal(t, model.PermissionGranted, n.RequestPermission(context.Background()))

	require.NoError(t, n.Show(context.Background(), model.Notification{Title: "Reminder", Body: "Day 4 awaits"}))
	assert.Equal(t, "U123", pusher.to)
	assert.Equal(t, "Reminder\nDay 4 awaits", pusher.text)

	assert.Equal(t, model.PermissionUnsupported, (&LineNotifier{}).RequestPermission(context.Background()))
}

func TestSetInterval(t *testing.T) {
	f := newFixture(t)
	s := newNotificationService(f)
	s.SetInterval(10 * time.Second)
	assert.Equal(t, 10*time.Second, s.Interval())
	s.SetInterval(0)
	assert.Equal(t, 10*time.Second, s.Interval())
}
