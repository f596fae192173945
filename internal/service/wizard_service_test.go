package service

import (
	"context"
	"errors"
	"mindset_backend/internal/util"
	"mindset_backend/internal/wizard"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWizard(t *testing.T) (*fixture, *WizardService) {
	f := newFixture(t)
	w := NewWizardService(f.progress, f.catalog, time.UTC, 300*time.Second, 30*time.Minute)
	w.Now = f.clock.Now
	return f, w
}

func TestWizardFullDay(t *testing.T) {
	f, w := newWizard(t)
	ctx := context.Background()

	view, lesson, err := w.Open(ctx, "confidence", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, lesson.Number)
	assert.Equal(t, wizard.StepReading, view.Step)
	assert.NotEmpty(t, view.Prompt)
	assert.False(t, view.ReadingUnlocked)

	f.clock.Advance(5 * time.Minute)
	view, skipped, err := w.ConfirmReading(view.ID)
	require.NoError(t, err)
	assert.False(t, skipped)
	assert.Equal(t, wizard.StepTask, view.Step)

	_, err = w.SubmitTask(view.ID, "my task")
	require.NoError(t, err)

	text := "today I learned"
	res, err := w.Save(ctx, view.ID, &text)
	require.NoError(t, err)
	p := res.State.Progress["confidence"]
	assert.Equal(t, []int{1}, p.CompletedDays)
	assert.Equal(t, "today I learned", p.Journal[1].Reflection)
	assert.Equal(t, "my task", p.Journal[1].TaskResponse)
	assert.True(t, res.Lock.Locked)
	assert.Equal(t, time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), res.Lock.UnlockAt)

	f.clock.Advance(time.Minute)
	usage, err := w.Close(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, usage.Reading)
	assert.Equal(t, 6*time.Minute, usage.Total)

	state := f.repo.Load(ctx)
	assert.Equal(t, int64(300), state.TimeSpent.Reading)
	assert.Equal(t, int64(360), state.TimeSpent.Total)

	_, err = w.Get(view.ID)
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}

func TestWizardEntryGuard(t *testing.T) {
	f, w := newWizard(t)
	ctx := context.Background()

	_, _, err := w.Open(ctx, "confidence", 3)
	var denied *EntryDeniedError
	require.True(t, errors.As(err, &denied))
	assert.Equal(t, wizard.OutcomeLocked, denied.Entry.Outcome)
	assert.Equal(t, 1, denied.Entry.NextDay)
	assert.ErrorIs(t, err, util.ErrDayLocked)

	_, err = f.progress.CompleteDay(ctx, "confidence", 1, "r", "")
	require.NoError(t, err)

	_, _, err = w.Open(ctx, "confidence", 2)
	assert.ErrorIs(t, err, util.ErrComeBackTomorrow)
	require.True(t, errors.As(err, &denied))
	assert.Equal(t, 14*time.Hour, denied.Entry.Remaining)

	view, _, err := w.Open(ctx, "confidence", 1)
	require.NoError(t, err)
	assert.True(t, view.Review)
	assert.Equal(t, "r", view.Reflection)

	f.clock.Advance(14 * time.Hour)
	_, _, err = w.Open(ctx, "confidence", 2)
	assert.NoError(t, err)

	_, _, err = w.Open(ctx, "confidence", 30)
	assert.ErrorIs(t, err, util.ErrInvalidDay)
}

func TestWizardSkipWait(t *testing.T) {
	f, w := newWizard(t)
	ctx := context.Background()

	_, err := w.SkipWait(ctx, "confidence", true)
	assert.ErrorIs(t, err, util.ErrNothingToSkip)

	_, err = f.progress.CompleteDay(ctx, "confidence", 1, "r", "")
	require.NoError(t, err)

	_, err = w.SkipWait(ctx, "confidence", false)
	assert.ErrorIs(t, err, util.ErrConfirmRequired)

	lock, err := w.SkipWait(ctx, "confidence", true)
	require.NoError(t, err)
	assert.True(t, lock.Locked)
	assert.True(t, lock.Overridden)

	_, _, err = w.Open(ctx, "confidence", 2)
	require.NoError(t, err)

	// 覆盖不影响已完成记录
	assert.Equal(t, []int{1}, f.repo.Load(ctx).Progress["confidence"].CompletedDays)

	// 其他模块不受影响
	_, err = f.progress.CompleteDay(ctx, "finance", 1, "r", "")
	require.NoError(t, err)
	_, _, err = w.Open(ctx, "finance", 2)
	assert.ErrorIs(t, err, util.ErrComeBackTomorrow)
}

func TestWizardSkipWaitExpiresAtMidnight(t *testing.T) {
	f, w := newWizard(t)
	ctx := context.Background()

	_, err := f.progress.CompleteDay(ctx, "confidence", 1, "r", "")
	require.NoError(t, err)
	_, err = w.SkipWait(ctx, "confidence", true)
	require.NoError(t, err)

	// 次日完成第 2 天后，新的锁不再被旧的覆盖放行
	f.clock.Advance(15 * time.Hour)
	_, err = f.progress.CompleteDay(ctx, "confidence", 2, "r", "")
	require.NoError(t, err)
	_, _, err = w.Open(ctx, "confidence", 3)
	assert.ErrorIs(t, err, util.ErrComeBackTomorrow)
}

func TestWizardSkipWaitReleasesOnlyOneDay(t *testing.T) {
	f, w := newWizard(t)
	ctx := context.Background()

	_, err := f.progress.CompleteDay(ctx, "confidence", 1, "r", "")
	require.NoError(t, err)
	_, err = w.SkipWait(ctx, "confidence", true)
	require.NoError(t, err)

	view, _, err := w.Open(ctx, "confidence", 2)
	require.NoError(t, err)
	_, _, err = w.ConfirmReading(view.ID)
	require.NoError(t, err)
	_, err = w.SubmitTask(view.ID, "")
	require.NoError(t, err)
	text := "second"
	res, err := w.Save(ctx, view.ID, &text)
	require.NoError(t, err)
	assert.True(t, res.Lock.Locked)
	assert.False(t, res.Lock.Overridden)

	_, _, err = w.Open(ctx, "confidence", 3)
	assert.ErrorIs(t, err, util.ErrComeBackTomorrow)

	// 直接完成的路径同样不再放行
	_, err = f.progress.CompleteDay(ctx, "confidence", 3, "r", "")
	require.NoError(t, err)
	entry, err := w.CheckEntry(ctx, "confidence", 4)
	require.NoError(t, err)
	assert.Equal(t, wizard.OutcomeComeBackTomorrow, entry.Outcome)

	lock, err := w.NextDayLock(ctx, "confidence")
	require.NoError(t, err)
	assert.False(t, lock.Overridden)
}

func TestWizardDeepen(t *testing.T) {
	f, w := newWizard(t)
	ctx := context.Background()

	view, _, err := w.Open(ctx, "mindfulness", 1)
	require.NoError(t, err)
	first := view.Prompt

	_, _, err = w.ConfirmReading(view.ID)
	require.NoError(t, err)
	_, err = w.SubmitTask(view.ID, "")
	require.NoError(t, err)
	_, err = w.UpdateReflection(view.ID, "breathing helped")
	require.NoError(t, err)

	f.clock.Advance(time.Second)
	view, err = w.Deepen(ctx, view.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first, view.Prompt)
	assert.Equal(t, "breathing helped\n\n", view.Reflection)
}

func TestWizardSaveRequiresReflectionStep(t *testing.T) {
	_, w := newWizard(t)
	ctx := context.Background()

	view, _, err := w.Open(ctx, "finance", 1)
	require.NoError(t, err)

	_, err = w.Save(ctx, view.ID, nil)
	assert.ErrorIs(t, err, util.ErrInvalidTransition)
	_, err = w.Save(ctx, "missing", nil)
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}

func TestWizardVisibilityAndBack(t *testing.T) {
	f, w := newWizard(t)
	ctx := context.Background()

	view, _, err := w.Open(ctx, "finance", 1)
	require.NoError(t, err)

	f.clock.Advance(time.Minute)
	_, err = w.SetVisible(view.ID, false)
	require.NoError(t, err)
	f.clock.Advance(time.Hour)
	view, err = w.SetVisible(view.ID, true)
	require.NoError(t, err)
	assert.Equal(t, int64(60), view.ReadingSeconds)

	_, skipped, err := w.ConfirmReading(view.ID)
	require.NoError(t, err)
	assert.True(t, skipped)

	view, err = w.Back(view.ID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepReading, view.Step)
}

func TestWizardReapIdleFlushesTime(t *testing.T) {
	f, w := newWizard(t)
	ctx := context.Background()

	idle, _, err := w.Open(ctx, "finance", 1)
	require.NoError(t, err)
	f.clock.Advance(20 * time.Minute)
	active, _, err := w.Open(ctx, "confidence", 1)
	require.NoError(t, err)

	f.clock.Advance(11 * time.Minute)
	assert.Equal(t, 1, w.ReapIdle(ctx))

	_, err = w.Get(idle.ID)
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
	_, err = w.Get(active.ID)
	assert.NoError(t, err)

	state := f.repo.Load(ctx)
	assert.Equal(t, int64(31*60), state.TimeSpent.Total)
	assert.Equal(t, int64(31*60), state.TimeSpent.Reading)
}

func TestWizardRunClosesSessionsOnCancel(t *testing.T) {
	f, w := newWizard(t)
	ctx, cancel := context.WithCancel(context.Background())

	_, _, err := w.Open(ctx, "finance", 1)
	require.NoError(t, err)
	f.clock.Advance(time.Minute)

	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()
	cancel()
	<-done

	assert.Equal(t, int64(60), f.repo.Load(context.Background()).TimeSpent.Total)
}
