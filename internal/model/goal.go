package model

import "time"

// DailyGoal 每日习惯目标，History 保存完成日期 "YYYY-MM-DD"
// swagger:model DailyGoal
type DailyGoal struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	History   []string  `json:"history"`
}

func (g *DailyGoal) DoneOn(date string) bool {
	for _, d := range g.History {
		if d == date {
			return true
		}
	}
	return false
}

// Toggle 切换 date 的完成状态，返回切换后的状态
func (g *DailyGoal) Toggle(date string) bool {
	for i, d := range g.History {
		if d == date {
			g.History = append(g.History[:i], g.History[i+1:]...)
			return false
		}
	}
	g.History = append(g.History, date)
	return true
}
