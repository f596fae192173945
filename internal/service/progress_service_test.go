package service

import (
	"context"
	"mindset_backend/internal/model"
	"mindset_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteDayCreatesProgress(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	state, err := f.progress.CompleteDay(ctx, "confidence", 1, "felt good", "three things")
	require.NoError(t, err)

	p := state.Progress["confidence"]
	require.NotNil(t, p)
	assert.Equal(t, f.clock.Now(), p.StartedAt)
	assert.Equal(t, []int{1}, p.CompletedDays)
	assert.Equal(t, "felt good", p.Journal[1].Reflection)
	assert.Equal(t, "three things", p.Journal[1].TaskResponse)
	assert.Equal(t, int64(1), state.Revision)

	// 已持久化
	assert.Equal(t, []int{1}, f.repo.Load(ctx).Progress["confidence"].CompletedDays)
}

func TestCompleteDayIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, d := range []int{1, 2, 3} {
		_, err := f.progress.CompleteDay(ctx, "confidence", d, "r", "")
		require.NoError(t, err)
	}
	f.clock.Advance(time.Hour)
	state, err := f.progress.CompleteDay(ctx, "confidence", 3, "rewritten", "t")
	require.NoError(t, err)

	p := state.Progress["confidence"]
	assert.Equal(t, []int{1, 2, 3}, p.CompletedDays)
	assert.Equal(t, "rewritten", p.Journal[3].Reflection)
	assert.Equal(t, f.clock.Now(), p.Journal[3].CompletedAt)
	assert.Equal(t, f.clock.Now(), p.LastAccessedAt)
}

func TestCompleteDayValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.progress.CompleteDay(ctx, "unknown", 1, "", "")
	assert.ErrorIs(t, err, util.ErrModuleNotFound)
	_, err = f.progress.CompleteDay(ctx, "confidence", 0, "", "")
	assert.ErrorIs(t, err, util.ErrInvalidDay)
	_, err = f.progress.CompleteDay(ctx, "confidence", 22, "", "")
	assert.ErrorIs(t, err, util.ErrInvalidDay)
	assert.Equal(t, int64(0), f.repo.Load(ctx).Revision)
}

func TestSaveJournalEntryKeepsTimestamp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.progress.SaveJournalEntry(ctx, "finance", 1, "x", "")
	assert.ErrorIs(t, err, util.ErrDayNotFound)

	_, err = f.progress.CompleteDay(ctx, "finance", 1, "first", "")
	require.NoError(t, err)
	completedAt := f.clock.Now()

	f.clock.Advance(48 * time.Hour)
	state, err := f.progress.SaveJournalEntry(ctx, "finance", 1, "edited", "task")
	require.NoError(t, err)
	assert.Equal(t, "edited", state.Progress["finance"].Journal[1].Reflection)
	assert.True(t, completedAt.Equal(state.Progress["finance"].Journal[1].CompletedAt))
}

func TestStartModuleCapsUnfinishedJourneys(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.repo.Update(ctx, func(s *model.UserState) error {
		for _, id := range []string{"a", "b", "c", "d", "e"} {
			s.Progress[id] = model.NewModuleProgress(f.clock.Now())
		}
		return nil
	})
	require.NoError(t, err)

	_, err = f.progress.StartModule(ctx, "confidence")
	assert.ErrorIs(t, err, util.ErrTooManyActiveJourneys)

	// 已开始的模块可以继续
	_, err = f.repo.Update(ctx, func(s *model.UserState) error {
		delete(s.Progress, "e")
		return nil
	})
	require.NoError(t, err)
	_, err = f.progress.StartModule(ctx, "confidence")
	require.NoError(t, err)

	f.clock.Advance(time.Minute)
	state, err := f.progress.StartModule(ctx, "confidence")
	require.NoError(t, err)
	assert.Equal(t, f.clock.Now(), state.Progress["confidence"].LastAccessedAt)

	_, err = f.progress.StartModule(ctx, "missing")
	assert.ErrorIs(t, err, util.ErrModuleNotFound)
}

func TestResetModuleAndApp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.progress.CompleteDay(ctx, "confidence", 1, "r", "")
	require.NoError(t, err)
	_, err = f.progress.CompleteDay(ctx, "finance", 1, "r", "")
	require.NoError(t, err)

	state, err := f.progress.ResetModule(ctx, "confidence")
	require.NoError(t, err)
	assert.NotContains(t, state.Progress, "confidence")
	assert.Contains(t, state.Progress, "finance")

	_, err = f.progress.ResetModule(ctx, "confidence")
	assert.ErrorIs(t, err, util.ErrModuleNotFound)

	require.NoError(t, f.progress.ResetApp(ctx))
	assert.Empty(t, f.repo.Load(ctx).Progress)
}

func TestGoalLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.progress.AddGoal(ctx, "   ")
	assert.ErrorIs(t, err, util.ErrEmptyGoalText)

	goal, err := f.progress.AddGoal(ctx, " drink water ")
	require.NoError(t, err)
	assert.Equal(t, "drink water", goal.Text)
	assert.NotEmpty(t, goal.ID)

	done, state, err := f.progress.ToggleGoal(ctx, goal.ID)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, []string{"2024-01-03"}, state.DailyGoals[0].History)

	// 同一天再次切换恢复原状
	done, state, err = f.progress.ToggleGoal(ctx, goal.ID)
	require.NoError(t, err)
	assert.False(t, done)
	assert.Empty(t, state.DailyGoals[0].History)

	state, err = f.progress.UpdateGoal(ctx, goal.ID, "walk")
	require.NoError(t, err)
	assert.Equal(t, "walk", state.DailyGoals[0].Text)

	_, err = f.progress.UpdateGoal(ctx, "nope", "x")
	assert.ErrorIs(t, err, util.ErrGoalNotFound)
	_, _, err = f.progress.ToggleGoal(ctx, "nope")
	assert.ErrorIs(t, err, util.ErrGoalNotFound)

	state, err = f.progress.DeleteGoal(ctx, goal.ID)
	require.NoError(t, err)
	assert.Empty(t, state.DailyGoals)
	_, err = f.progress.DeleteGoal(ctx, goal.ID)
	assert.ErrorIs(t, err, util.ErrGoalNotFound)
}

func TestToggleGoalUsesLocalDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.progress.Loc = time.FixedZone("UTC-12", -12*3600)

	goal, err := f.progress.AddGoal(ctx, "stretch")
	require.NoError(t, err)
	_, state, err := f.progress.ToggleGoal(ctx, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-02"}, state.DailyGoals[0].History)
}

func TestPreferenceSetters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.progress.SetTheme(ctx, "neon")
	assert.ErrorIs(t, err, util.ErrInvalidTheme)
	state, err := f.progress.SetTheme(ctx, model.ThemeDark)
	require.NoError(t, err)
	assert.Equal(t, model.ThemeDark, state.Theme)

	_, err = f.progress.SetReminder(ctx, model.ReminderSettings{Enabled: true, Time: "25:00"})
	assert.ErrorIs(t, err, util.ErrInvalidReminderTime)
	state, err = f.progress.SetReminder(ctx, model.ReminderSettings{Enabled: true, Time: "07:30"})
	require.NoError(t, err)
	assert.Equal(t, model.ReminderSettings{Enabled: true, Time: "07:30"}, state.Reminder)

	state, err = f.progress.SetLanguage(ctx, "zh")
	require.NoError(t, err)
	assert.Equal(t, "zh", state.Language)

	state, err = f.progress.SetName(ctx, "  Ada ")
	require.NoError(t, err)
	assert.Equal(t, "Ada", state.Name)

	bio := "curious"
	state, err = f.progress.UpdateProfile(ctx, ProfileUpdate{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "Ada", state.Name)
	assert.Equal(t, "curious", state.Bio)
	assert.Equal(t, model.DefaultAvatar, state.Avatar)
}

func TestCompleteOnboarding(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	state, err := f.progress.CompleteOnboarding(ctx, "Sam", map[string]string{"focus": "money", "obstacle": "impulse"})
	require.NoError(t, err)
	assert.True(t, state.HasCompletedOnboarding)
	assert.Equal(t, "Sam", state.Name)
	assert.Equal(t, "finance", state.RecommendedModuleID)
}

func TestTimeSpent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.progress.AddTimeSpent(ctx, 120, 300)
	require.NoError(t, err)
	state, err := f.progress.AddTimeSpent(ctx, 0, 60)
	require.NoError(t, err)
	assert.Equal(t, int64(120), state.TimeSpent.Reading)
	assert.Equal(t, int64(360), state.TimeSpent.Total)

	state, err = f.progress.MarkSessionStart(ctx)
	require.NoError(t, err)
	require.NotNil(t, state.TimeSpent.LastSessionStart)
	assert.Equal(t, f.clock.Now(), *state.TimeSpent.LastSessionStart)
}

func TestStatsServiceSummary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i, d := range []int{1, 2, 3} {
		f.clock.t = time.Date(2024, 1, 1+i, 9, 0, 0, 0, time.UTC)
		_, err := f.progress.CompleteDay(ctx, "confidence", d, "r", "")
		require.NoError(t, err)
	}

	f.clock.t = time.Date(2024, 1, 4, 9, 0, 0, 0, time.UTC)
	sum := f.stats.Summary(ctx)
	assert.Equal(t, 3, sum.CurrentStreak)
	assert.Equal(t, 3*100+3*20+2*10, sum.XP.Total)

	f.clock.t = time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, f.stats.Summary(ctx).CurrentStreak)

	items := f.stats.Journal(ctx, "")
	require.Len(t, items, 3)
	assert.Equal(t, 3, items[0].Day)
	assert.Empty(t, f.stats.Journal(ctx, "finance"))
}
