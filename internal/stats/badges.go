package stats

type BadgeID string

const (
	BadgeFirstStep       BadgeID = "first-step"
	BadgeThreeDayStreak  BadgeID = "three-day-streak"
	BadgeWeekWarrior     BadgeID = "week-warrior"
	BadgeJournalKeeper   BadgeID = "journal-keeper"
	BadgeGoalGetter      BadgeID = "goal-getter"
	BadgeJourneyComplete BadgeID = "journey-complete"
)

type Badge struct {
	ID     BadgeID `json:"id"`
	Earned bool    `json:"earned"`
}

// BadgeInput 计算徽章所需的计数
type BadgeInput struct {
	CompletedDays     int
	JournalEntries    int
	LongestStreak     int
	GoalCompletions   int
	CompletedJourneys int
}

var badgeRules = []struct {
	id   BadgeID
	rule func(BadgeInput) bool
}{
	{BadgeFirstStep, func(in BadgeInput) bool { return in.CompletedDays >= 1 }},
	{BadgeThreeDayStreak, func(in BadgeInput) bool { return in.LongestStreak >= 3 }},
	{BadgeWeekWarrior, func(in BadgeInput) bool { return in.LongestStreak >= 7 }},
	{BadgeJournalKeeper, func(in BadgeInput) bool { return in.JournalEntries >= 10 }},
	{BadgeGoalGetter, func(in BadgeInput) bool { return in.GoalCompletions >= 30 }},
	{BadgeJourneyComplete, func(in BadgeInput) bool { return in.CompletedJourneys >= 1 }},
}

// Badges 按固定顺序返回全部徽章及是否已获得
func Badges(in BadgeInput) []Badge {
	out := make([]Badge, 0, len(badgeRules))
	for _, r := range badgeRules {
		out = append(out, Badge{ID: r.id, Earned: r.rule(in)})
	}
	return out
}
