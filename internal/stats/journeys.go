package stats

import (
	"mindset_backend/internal/model"
	"sort"
	"time"
)

// Journey 单个模块的进度视图
type Journey struct {
	ModuleID       string    `json:"moduleId"`
	CompletedDays  int       `json:"completedDays"`
	TotalDays      int       `json:"totalDays"`
	Percent        int       `json:"percent"`
	NextDay        int       `json:"nextDay"`
	StartedAt      time.Time `json:"startedAt"`
	LastAccessedAt time.Time `json:"lastAccessedAt"`
}

func (j Journey) Completed() bool {
	return j.CompletedDays >= j.TotalDays
}

func (j Journey) Active() bool {
	return j.CompletedDays > 0 && j.CompletedDays < j.TotalDays
}

// Journeys 所有已开始模块，按最近访问时间倒序
func Journeys(state *model.UserState, totalDays TotalDaysFunc) []Journey {
	list := make([]Journey, 0, len(state.Progress))
	for id, p := range state.Progress {
		if p == nil {
			continue
		}
		total := model.DefaultTotalDays
		if totalDays != nil {
			if n := totalDays(id); n > 0 {
				total = n
			}
		}
		done := len(p.CompletedDays)
		next := p.NextDay()
		if next > total {
			next = total
		}
		list = append(list, Journey{
			ModuleID:       id,
			CompletedDays:  done,
			TotalDays:      total,
			Percent:        percent(done, total),
			NextDay:        next,
			StartedAt:      p.StartedAt,
			LastAccessedAt: p.LastAccessedAt,
		})
	}

	sort.Slice(list, func(i, j int) bool {
		if !list[i].LastAccessedAt.Equal(list[j].LastAccessedAt) {
			return list[i].LastAccessedAt.After(list[j].LastAccessedAt)
		}
		return list[i].ModuleID < list[j].ModuleID
	})
	return list
}

// ActiveJourneys 进行中（已完成天数大于 0 且未全部完成）的模块，最多 MaxActiveJourneys 个
func ActiveJourneys(journeys []Journey) []Journey {
	active := make([]Journey, 0, MaxActiveJourneys)
	for _, j := range journeys {
		if !j.Active() {
			continue
		}
		active = append(active, j)
		if len(active) == MaxActiveJourneys {
			break
		}
	}
	return active
}

func CompletedJourneys(journeys []Journey) []Journey {
	done := make([]Journey, 0)
	for _, j := range journeys {
		if j.Completed() {
			done = append(done, j)
		}
	}
	return done
}

// CountActive 不受上限截断的进行中模块数量
func CountActive(journeys []Journey) int {
	n := 0
	for _, j := range journeys {
		if j.Active() {
			n++
		}
	}
	return n
}

func percent(done, total int) int {
	if total <= 0 {
		return 0
	}
	if done >= total {
		return 100
	}
	return done * 100 / total
}
