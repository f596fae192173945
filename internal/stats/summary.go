package stats

import (
	"mindset_backend/internal/model"
	"time"
)

// Summary 个人主页所需的全部派生数据
type Summary struct {
	CurrentStreak     int         `json:"currentStreak"`
	LongestStreak     int         `json:"longestStreak"`
	ActiveDays        int         `json:"activeDays"`
	XP                XPBreakdown `json:"xp"`
	Level             LevelInfo   `json:"level"`
	ActiveJourneys    []Journey   `json:"activeJourneys"`
	ActiveCount       int         `json:"activeCount"`
	CompletedJourneys []Journey   `json:"completedJourneys"`
	Badges            []Badge     `json:"badges"`
	TimeSpent         TimeTotals  `json:"timeSpent"`
}

type TimeTotals struct {
	ReadingSeconds int64 `json:"readingSeconds"`
	TotalSeconds   int64 `json:"totalSeconds"`
}

// Compute 基于 now 所在时区计算全部统计
func Compute(state *model.UserState, now time.Time, totalDays TotalDaysFunc) Summary {
	days := ActivityDays(state, now.Location())
	xp := ComputeXP(state, CumulativeStreakDays(days))
	journeys := Journeys(state, totalDays)
	completed := CompletedJourneys(journeys)
	longest := LongestStreak(days)

	return Summary{
		CurrentStreak:     CurrentStreak(days, now),
		LongestStreak:     longest,
		ActiveDays:        len(days),
		XP:                xp,
		Level:             LevelFor(xp.Total),
		ActiveJourneys:    ActiveJourneys(journeys),
		ActiveCount:       CountActive(journeys),
		CompletedJourneys: completed,
		Badges: Badges(BadgeInput{
			CompletedDays:     xp.CompletedDays,
			JournalEntries:    xp.JournalEntries,
			LongestStreak:     longest,
			GoalCompletions:   xp.GoalCompletions,
			CompletedJourneys: len(completed),
		}),
		TimeSpent: TimeTotals{
			ReadingSeconds: state.TimeSpent.Reading,
			TotalSeconds:   state.TimeSpent.Total,
		},
	}
}
