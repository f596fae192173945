package stats

import (
	"mindset_backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func stateWithEntries(times ...time.Time) *model.UserState {
	s := model.NewUserState(day(2024, 1, 1))
	p := model.NewModuleProgress(day(2024, 1, 1))
	for i, t := range times {
		p.Journal[i+1] = &model.JournalEntry{Reflection: "r", CompletedAt: t}
		p.MarkCompleted(i + 1)
	}
	s.Progress["confidence"] = p
	return s
}

func TestCurrentStreakAnchors(t *testing.T) {
	days := []time.Time{day(2024, 1, 1), day(2024, 1, 2), day(2024, 1, 3)}

	cases := []struct {
		name string
		now  time.Time
		want int
	}{
		{"today has activity", time.Date(2024, 1, 3, 20, 0, 0, 0, time.UTC), 3},
		{"anchored on yesterday", time.Date(2024, 1, 4, 8, 0, 0, 0, time.UTC), 3},
		{"two day gap breaks", time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CurrentStreak(days, tc.now))
		})
	}
}

func TestCurrentStreakEmpty(t *testing.T) {
	assert.Equal(t, 0, CurrentStreak(nil, day(2024, 1, 1)))
}

func TestActivityDaysUsesLocalDate(t *testing.T) {
	shanghai := time.FixedZone("UTC+8", 8*3600)
	// 2024-01-01 20:00 UTC 在 UTC+8 是 1 月 2 日
	s := stateWithEntries(
		time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC),
	)

	utcDays := ActivityDays(s, time.UTC)
	assert.Len(t, utcDays, 1)

	localDays := ActivityDays(s, shanghai)
	require.Len(t, localDays, 2)
	assert.Equal(t, 1, localDays[0].Day())
	assert.Equal(t, 2, localDays[1].Day())
}

func TestActivityDaysDeduplicatesAcrossModules(t *testing.T) {
	s := stateWithEntries(time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC))
	other := model.NewModuleProgress(day(2024, 1, 1))
	other.Journal[1] = &model.JournalEntry{CompletedAt: time.Date(2024, 1, 2, 18, 0, 0, 0, time.UTC)}
	s.Progress["finance"] = other

	assert.Len(t, ActivityDays(s, time.UTC), 1)
}

func TestLongestAndCumulativeStreak(t *testing.T) {
	days := []time.Time{
		day(2024, 1, 1), day(2024, 1, 2),
		day(2024, 1, 5), day(2024, 1, 6), day(2024, 1, 7),
		day(2024, 1, 10),
	}
	assert.Equal(t, 3, LongestStreak(days))
	assert.Equal(t, 3, CumulativeStreakDays(days))
	assert.Equal(t, 0, LongestStreak(nil))
	assert.Equal(t, 1, LongestStreak(days[5:]))
	assert.Equal(t, 0, CumulativeStreakDays(days[5:]))
}

func TestLongestStreakAcrossMonthBoundary(t *testing.T) {
	days := []time.Time{day(2024, 2, 28), day(2024, 2, 29), day(2024, 3, 1)}
	assert.Equal(t, 3, LongestStreak(days))
}

func TestXPFromCounts(t *testing.T) {
	assert.Equal(t, 270, XPFromCounts(2, 3, 1, 0))
}

func TestComputeXP(t *testing.T) {
	s := stateWithEntries(
		time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
	)
	// 第三条日志没有对应的完成天数
	s.Progress["confidence"].Journal[3] = &model.JournalEntry{CompletedAt: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)}
	s.DailyGoals = []model.DailyGoal{{ID: "g", History: []string{"2024-01-01", "2024-01-02"}}}

	days := ActivityDays(s, time.UTC)
	xp := ComputeXP(s, CumulativeStreakDays(days))

	assert.Equal(t, 2, xp.CompletedDays)
	assert.Equal(t, 3, xp.JournalEntries)
	assert.Equal(t, 1, xp.CumulativeStreakDays)
	assert.Equal(t, 2, xp.GoalCompletions)
	assert.Equal(t, 270+100, xp.Total)
}

func TestLevelFor(t *testing.T) {
	cases := []struct {
		xp    int
		level int
		title string
		next  int
	}{
		{0, 1, "Seeker", 500},
		{499, 1, "Seeker", 1},
		{500, 2, "Explorer", 1000},
		{2999, 3, "Practitioner", 1},
		{3000, 4, "Achiever", 2000},
		{7999, 5, "Master", 1},
		{8000, 6, "Enlightened", 0},
		{120000, 6, "Enlightened", 0},
	}
	for _, tc := range cases {
		info := LevelFor(tc.xp)
		assert.Equal(t, tc.level, info.Level, "xp=%d", tc.xp)
		assert.Equal(t, tc.title, info.Title, "xp=%d", tc.xp)
		assert.Equal(t, tc.next, info.XPToNext, "xp=%d", tc.xp)
	}

	assert.InDelta(t, 0.5, LevelFor(1000).Progress, 1e-9)
	assert.Equal(t, 1.0, LevelFor(9000).Progress)
}

func TestActiveJourneysExcludesCompleted(t *testing.T) {
	now := day(2024, 1, 1)
	s := model.NewUserState(now)

	done := model.NewModuleProgress(now)
	for d := 1; d <= model.DefaultTotalDays; d++ {
		done.MarkCompleted(d)
	}
	done.LastAccessedAt = now.Add(time.Hour)
	s.Progress["finance"] = done

	partial := model.NewModuleProgress(now)
	partial.MarkCompleted(1)
	s.Progress["confidence"] = partial

	s.Progress["mindfulness"] = model.NewModuleProgress(now)

	journeys := Journeys(s, nil)
	active := ActiveJourneys(journeys)
	require.Len(t, active, 1)
	assert.Equal(t, "confidence", active[0].ModuleID)
	assert.Equal(t, 2, active[0].NextDay)

	completed := CompletedJourneys(journeys)
	require.Len(t, completed, 1)
	assert.Equal(t, "finance", completed[0].ModuleID)
	assert.Equal(t, 100, completed[0].Percent)
}

func TestActiveJourneysCapAndOrder(t *testing.T) {
	base := day(2024, 1, 1)
	s := model.NewUserState(base)
	for i, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		p := model.NewModuleProgress(base)
		p.MarkCompleted(1)
		p.LastAccessedAt = base.Add(time.Duration(i) * time.Hour)
		s.Progress[id] = p
	}

	journeys := Journeys(s, func(string) int { return 21 })
	active := ActiveJourneys(journeys)
	require.Len(t, active, MaxActiveJourneys)
	assert.Equal(t, "g", active[0].ModuleID)
	assert.Equal(t, "c", active[4].ModuleID)
	assert.Equal(t, 7, CountActive(journeys))
}

func TestJourneysHonourTotalDays(t *testing.T) {
	now := day(2024, 1, 1)
	s := model.NewUserState(now)
	p := model.NewModuleProgress(now)
	for d := 1; d <= 7; d++ {
		p.MarkCompleted(d)
	}
	s.Progress["short"] = p

	journeys := Journeys(s, func(id string) int {
		if id == "short" {
			return 7
		}
		return 0
	})
	require.Len(t, journeys, 1)
	assert.True(t, journeys[0].Completed())
	assert.Equal(t, 7, journeys[0].NextDay)
}

func TestBadges(t *testing.T) {
	earned := func(in BadgeInput) map[BadgeID]bool {
		m := make(map[BadgeID]bool)
		for _, b := range Badges(in) {
			m[b.ID] = b.Earned
		}
		return m
	}

	none := earned(BadgeInput{})
	assert.Len(t, none, 6)
	for id, ok := range none {
		assert.False(t, ok, id)
	}

	some := earned(BadgeInput{CompletedDays: 3, LongestStreak: 3, JournalEntries: 10})
	assert.True(t, some[BadgeFirstStep])
	assert.True(t, some[BadgeThreeDayStreak])
	assert.False(t, some[BadgeWeekWarrior])
	assert.True(t, some[BadgeJournalKeeper])
	assert.False(t, some[BadgeGoalGetter])
	assert.False(t, some[BadgeJourneyComplete])
}

func TestCompute(t *testing.T) {
	s := stateWithEntries(
		time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC),
	)
	s.TimeSpent = model.TimeSpent{Reading: 600, Total: 900}

	sum := Compute(s, time.Date(2024, 1, 4, 12, 0, 0, 0, time.UTC), nil)
	assert.Equal(t, 3, sum.CurrentStreak)
	assert.Equal(t, 3, sum.LongestStreak)
	assert.Equal(t, 3, sum.ActiveDays)
	// 3 天 × 100 + 3 条日志 × 20 + 2 个连续日 × 10
	assert.Equal(t, 380, sum.XP.Total)
	assert.Equal(t, "Seeker", sum.Level.Title)
	assert.Len(t, sum.ActiveJourneys, 1)
	assert.Equal(t, int64(600), sum.TimeSpent.ReadingSeconds)
}
