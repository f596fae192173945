package model

import (
	"sort"
	"time"
)

// DefaultTotalDays 每个模块的天数
const DefaultTotalDays = 21

// JournalEntry 某一天保存的反思与任务记录
type JournalEntry struct {
	Reflection   string    `json:"reflection"`
	TaskResponse string    `json:"taskResponse,omitempty"`
	CompletedAt  time.Time `json:"completedAt"`
}

// ModuleProgress 单个模块的进度
// swagger:model ModuleProgress
type ModuleProgress struct {
	StartedAt      time.Time             `json:"startedAt"`
	LastAccessedAt time.Time             `json:"lastAccessedAt"`
	CompletedDays  []int                 `json:"completedDays"`
	Journal        map[int]*JournalEntry `json:"journal"`
}

func NewModuleProgress(now time.Time) *ModuleProgress {
	return &ModuleProgress{
		StartedAt:      now,
		LastAccessedAt: now,
		CompletedDays:  []int{},
		Journal:        make(map[int]*JournalEntry),
	}
}

// IsCompleted 判断某天是否已完成
func (p *ModuleProgress) IsCompleted(day int) bool {
	if p == nil {
		return false
	}
	for _, d := range p.CompletedDays {
		if d == day {
			return true
		}
	}
	return false
}

// MarkCompleted 将 day 加入已完成集合，已存在时不重复添加
func (p *ModuleProgress) MarkCompleted(day int) bool {
	if p.IsCompleted(day) {
		return false
	}
	p.CompletedDays = append(p.CompletedDays, day)
	sort.Ints(p.CompletedDays)
	return true
}

// MaxCompletedDay 最大的已完成天数，没有时返回 0
func (p *ModuleProgress) MaxCompletedDay() int {
	if p == nil {
		return 0
	}
	maxDay := 0
	for _, d := range p.CompletedDays {
		if d > maxDay {
			maxDay = d
		}
	}
	return maxDay
}

// NextDay 下一个可学习的天数
func (p *ModuleProgress) NextDay() int {
	return p.MaxCompletedDay() + 1
}

// LastCompletionAt 最近完成那一天的日志时间
func (p *ModuleProgress) LastCompletionAt() (time.Time, bool) {
	if p == nil {
		return time.Time{}, false
	}
	entry, ok := p.Journal[p.MaxCompletedDay()]
	if !ok || entry == nil {
		return time.Time{}, false
	}
	return entry.CompletedAt, true
}

func (p *ModuleProgress) normalize() {
	if p.Journal == nil {
		p.Journal = make(map[int]*JournalEntry)
	}
	for day, entry := range p.Journal {
		if entry == nil {
			delete(p.Journal, day)
		}
	}

	seen := make(map[int]bool, len(p.CompletedDays))
	days := make([]int, 0, len(p.CompletedDays))
	for _, d := range p.CompletedDays {
		if d < 1 || seen[d] {
			continue
		}
		seen[d] = true
		days = append(days, d)
	}
	sort.Ints(days)
	p.CompletedDays = days
}
