package wizard

import (
	"mindset_backend/internal/model"
	"mindset_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func progressWith(days int, lastAt time.Time) *model.ModuleProgress {
	p := model.NewModuleProgress(t0.AddDate(0, 0, -days))
	for d := 1; d <= days; d++ {
		p.MarkCompleted(d)
		p.Journal[d] = &model.JournalEntry{Reflection: "r", CompletedAt: lastAt.AddDate(0, 0, d-days)}
	}
	return p
}

func TestCheckEntry(t *testing.T) {
	yesterday := t0.Add(-20 * time.Hour)
	earlierToday := t0.Add(-2 * time.Hour)

	cases := []struct {
		name     string
		progress *model.ModuleProgress
		day      int
		override bool
		want     Outcome
	}{
		{"not started, day 1", nil, 1, false, OutcomeOpen},
		{"not started, day 2", nil, 2, false, OutcomeLocked},
		{"day zero", nil, 0, false, OutcomeInvalid},
		{"beyond total", nil, 22, false, OutcomeInvalid},
		{"N+2 is locked", progressWith(3, yesterday), 5, false, OutcomeLocked},
		{"N+1 after yesterday", progressWith(3, yesterday), 4, false, OutcomeOpen},
		{"N+1 after today", progressWith(3, earlierToday), 4, false, OutcomeComeBackTomorrow},
		{"N+1 after today with override", progressWith(3, earlierToday), 4, true, OutcomeOpen},
		{"review earlier day", progressWith(3, earlierToday), 2, false, OutcomeReview},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := CheckEntry(tc.progress, tc.day, model.DefaultTotalDays, t0, tc.override)
			assert.Equal(t, tc.want, e.Outcome)
		})
	}
}

func TestCheckEntryRedirectAndCountdown(t *testing.T) {
	locked := CheckEntry(progressWith(3, t0.Add(-time.Hour)), 5, 21, t0, false)
	assert.Equal(t, 4, locked.NextDay)
	assert.ErrorIs(t, locked.Err(), util.ErrDayLocked)
	assert.False(t, locked.Allowed())

	wait := CheckEntry(progressWith(3, t0.Add(-time.Hour)), 4, 21, t0, false)
	assert.ErrorIs(t, wait.Err(), util.ErrComeBackTomorrow)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), wait.UnlockAt)
	assert.Equal(t, 15*time.Hour, wait.Remaining)

	assert.NoError(t, CheckEntry(nil, 1, 21, t0, false).Err())
}

func TestNextDayLockUsesLocalCalendar(t *testing.T) {
	tokyo := time.FixedZone("UTC+9", 9*3600)
	// 完成于 UTC 3 月 9 日 16:00，即东京 3 月 10 日 01:00
	p := progressWith(1, time.Date(2024, 3, 9, 16, 0, 0, 0, time.UTC))

	assert.False(t, NextDayLock(p, t0).Locked)
	lock := NextDayLock(p, t0.In(tokyo))
	assert.True(t, lock.Locked)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, tokyo), lock.UnlockAt)
}

func TestNextDayLockWithoutJournal(t *testing.T) {
	p := model.NewModuleProgress(t0)
	p.MarkCompleted(1)
	assert.False(t, NextDayLock(p, t0).Locked)
	assert.False(t, NextDayLock(nil, t0).Locked)
}

func TestReadingGate(t *testing.T) {
	s := NewSession("confidence", 1, 0, t0)
	assert.Equal(t, DefaultMinReading, s.MinReading)
	assert.False(t, s.ReadingUnlocked(t0.Add(299*time.Second)))
	assert.True(t, s.ReadingUnlocked(t0.Add(300*time.Second)))

	skipped, err := s.ConfirmReading(t0.Add(301 * time.Second))
	require.NoError(t, err)
	assert.False(t, skipped)
	assert.Equal(t, StepTask, s.Step)
}

func TestConfirmReadingEarlyIsSkip(t *testing.T) {
	s := NewSession("confidence", 1, 300*time.Second, t0)
	skipped, err := s.ConfirmReading(t0.Add(10 * time.Second))
	require.NoError(t, err)
	assert.True(t, skipped)
	assert.True(t, s.ReadingSkipped)
	assert.Equal(t, StepTask, s.Step)
}

func TestHiddenTimePausesReading(t *testing.T) {
	s := NewSession("confidence", 1, 300*time.Second, t0)
	s.SetVisible(false, t0.Add(100*time.Second))
	s.SetVisible(true, t0.Add(1000*time.Second))

	assert.Equal(t, 100*time.Second, s.Timer.Reading(t0.Add(1000*time.Second)))
	assert.False(t, s.ReadingUnlocked(t0.Add(1150*time.Second)))
	assert.True(t, s.ReadingUnlocked(t0.Add(1200*time.Second)))
	assert.Equal(t, int64(50), s.View(t0.Add(1150*time.Second)).RemainingSeconds)
}

func TestFullFlowAndUsage(t *testing.T) {
	s := NewSession("confidence", 1, 300*time.Second, t0)
	_, err := s.ConfirmReading(t0.Add(400 * time.Second))
	require.NoError(t, err)
	require.NoError(t, s.SubmitTask("my answer", t0.Add(500*time.Second)))
	assert.Equal(t, StepReflection, s.Step)

	require.NoError(t, s.UpdateReflection("first thought"))
	require.NoError(t, s.Complete(t0.Add(600*time.Second)))
	assert.True(t, s.Completed)

	usage := s.Close(t0.Add(600 * time.Second))
	assert.Equal(t, 400*time.Second, usage.Reading)
	assert.Equal(t, 600*time.Second, usage.Total)
	assert.Equal(t, Usage{}, s.Close(t0.Add(700*time.Second)))
}

func TestBackNavigation(t *testing.T) {
	s := NewSession("confidence", 1, time.Second, t0)
	assert.ErrorIs(t, s.Back(t0), util.ErrInvalidTransition)

	_, err := s.ConfirmReading(t0.Add(2 * time.Second))
	require.NoError(t, err)
	require.NoError(t, s.SubmitTask("x", t0.Add(3*time.Second)))

	require.NoError(t, s.Back(t0.Add(4*time.Second)))
	assert.Equal(t, StepTask, s.Step)
	assert.Equal(t, "x", s.TaskResponse)
	require.NoError(t, s.Back(t0.Add(5*time.Second)))
	assert.Equal(t, StepReading, s.Step)

	// 返回阅读步骤后继续累计阅读时长
	assert.Equal(t, 3*time.Second, s.Timer.Reading(t0.Add(6*time.Second)))
}

func TestWrongStepTransitions(t *testing.T) {
	s := NewSession("confidence", 1, time.Second, t0)
	assert.ErrorIs(t, s.SubmitTask("x", t0), util.ErrInvalidTransition)
	assert.ErrorIs(t, s.UpdateReflection("x"), util.ErrInvalidTransition)
	assert.ErrorIs(t, s.Deepen("p"), util.ErrInvalidTransition)
	assert.ErrorIs(t, s.Complete(t0), util.ErrInvalidTransition)

	s.Close(t0)
	_, err := s.ConfirmReading(t0)
	assert.ErrorIs(t, err, util.ErrInvalidTransition)
}

func TestDeepenAppendsParagraphBreak(t *testing.T) {
	s := NewSession("confidence", 1, time.Second, t0)
	_, _ = s.ConfirmReading(t0)
	require.NoError(t, s.SubmitTask("", t0))

	require.NoError(t, s.Deepen("prompt A"))
	assert.Equal(t, "", s.Reflection)
	assert.Equal(t, "prompt A", s.Prompt)

	require.NoError(t, s.UpdateReflection("I noticed"))
	require.NoError(t, s.Deepen("prompt B"))
	assert.Equal(t, "I noticed\n\n", s.Reflection)
	assert.Equal(t, "prompt B", s.Prompt)
}
