// Package stats derives streaks, XP, level and badges from a UserState.
// Everything here is a pure function of the state and the current time;
// nothing is cached or persisted.
package stats

import (
	"mindset_backend/internal/model"
	"mindset_backend/internal/util"
	"sort"
	"time"
)

// XP awards.
const (
	XPPerCompletedDay  = 100
	XPPerJournalEntry  = 20
	XPPerStreakDay     = 10
	XPPerGoalCompleted = 50
)

// MaxActiveJourneys caps how many started, unfinished journeys are listed.
const MaxActiveJourneys = 5

// TotalDaysFunc resolves a module's length; unknown modules use model.DefaultTotalDays.
type TotalDaysFunc func(moduleID string) int

// ActivityDays returns the sorted, distinct local dates on which any journal
// entry was saved.
func ActivityDays(state *model.UserState, loc *time.Location) []time.Time {
	seen := make(map[time.Time]bool)
	for _, p := range state.Progress {
		if p == nil {
			continue
		}
		for _, entry := range p.Journal {
			if entry == nil || entry.CompletedAt.IsZero() {
				continue
			}
			seen[util.StartOfDay(entry.CompletedAt, loc)] = true
		}
	}

	days := make([]time.Time, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// CurrentStreak counts consecutive active days ending today, or ending
// yesterday when today has no activity yet.
func CurrentStreak(days []time.Time, now time.Time) int {
	loc := now.Location()
	set := make(map[time.Time]bool, len(days))
	for _, d := range days {
		set[util.StartOfDay(d, loc)] = true
	}

	anchor := util.StartOfDay(now, loc)
	if !set[anchor] {
		anchor = anchor.AddDate(0, 0, -1)
		if !set[anchor] {
			return 0
		}
	}

	streak := 0
	for set[anchor] {
		streak++
		anchor = anchor.AddDate(0, 0, -1)
	}
	return streak
}

// LongestStreak is the longest run of consecutive days in sorted history.
func LongestStreak(days []time.Time) int {
	if len(days) == 0 {
		return 0
	}
	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if consecutive(days[i-1], days[i]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// CumulativeStreakDays counts adjacent-day transitions across history.
func CumulativeStreakDays(days []time.Time) int {
	n := 0
	for i := 1; i < len(days); i++ {
		if consecutive(days[i-1], days[i]) {
			n++
		}
	}
	return n
}

// XPBreakdown keeps each XP component for display.
type XPBreakdown struct {
	CompletedDays        int `json:"completedDays"`
	JournalEntries       int `json:"journalEntries"`
	CumulativeStreakDays int `json:"cumulativeStreakDays"`
	GoalCompletions      int `json:"goalCompletions"`
	Total                int `json:"total"`
}

// ComputeXP applies the fixed awards to the state's counters.
func ComputeXP(state *model.UserState, cumulativeStreakDays int) XPBreakdown {
	b := XPBreakdown{CumulativeStreakDays: cumulativeStreakDays}
	for _, p := range state.Progress {
		if p == nil {
			continue
		}
		b.CompletedDays += len(p.CompletedDays)
		b.JournalEntries += len(p.Journal)
	}
	for _, g := range state.DailyGoals {
		b.GoalCompletions += len(g.History)
	}
	b.Total = XPFromCounts(b.CompletedDays, b.JournalEntries, b.CumulativeStreakDays, b.GoalCompletions)
	return b
}

func XPFromCounts(completedDays, journalEntries, streakDays, goalCompletions int) int {
	return completedDays*XPPerCompletedDay +
		journalEntries*XPPerJournalEntry +
		streakDays*XPPerStreakDay +
		goalCompletions*XPPerGoalCompleted
}

func consecutive(prev, next time.Time) bool {
	return prev.AddDate(0, 0, 1).Equal(next)
}
