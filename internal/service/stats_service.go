package service

import (
	"context"
	"mindset_backend/internal/model"
	"mindset_backend/internal/repository"
	"mindset_backend/internal/stats"
	"mindset_backend/internal/util"
	"sort"
	"time"
)

// StatsService 每次请求都从当前状态重新计算，不做缓存
type StatsService struct {
	Repo    *repository.StateRepository
	Catalog *CatalogService
	Loc     *time.Location
	Now     func() time.Time
}

func NewStatsService(repo *repository.StateRepository, catalog *CatalogService, loc *time.Location) *StatsService {
	return &StatsService{
		Repo:    repo,
		Catalog: catalog,
		Loc:     loc,
		Now:     time.Now,
	}
}

func (s *StatsService) Summary(ctx context.Context) stats.Summary {
	state := s.Repo.Load(ctx)
	return s.SummaryOf(state)
}

// SummaryOf 对给定状态计算统计，CLI 离线使用
func (s *StatsService) SummaryOf(state *model.UserState) stats.Summary {
	return stats.Compute(state, s.Now().In(s.Loc), s.Catalog.TotalDays)
}

// TodayGoal 今日目标及完成情况
type TodayGoal struct {
	model.DailyGoal
	DoneToday bool `json:"doneToday"`
}

func (s *StatsService) TodayGoals(ctx context.Context) []TodayGoal {
	state := s.Repo.Load(ctx)
	today := util.DateKey(s.Now(), s.Loc)

	goals := make([]TodayGoal, 0, len(state.DailyGoals))
	for _, g := range state.DailyGoals {
		goals = append(goals, TodayGoal{DailyGoal: g, DoneToday: g.DoneOn(today)})
	}
	return goals
}

// JournalItem 日志列表中的一项
type JournalItem struct {
	ModuleID string `json:"moduleId"`
	Day      int    `json:"day"`
	model.JournalEntry
}

// Journal 所有日志，按完成时间倒序；moduleID 非空时只返回该模块
func (s *StatsService) Journal(ctx context.Context, moduleID string) []JournalItem {
	state := s.Repo.Load(ctx)
	items := make([]JournalItem, 0)
	for id, p := range state.Progress {
		if moduleID != "" && id != moduleID {
			continue
		}
		for day, e := range p.Journal {
			items = append(items, JournalItem{ModuleID: id, Day: day, JournalEntry: *e})
		}
	}
	sortJournal(items)
	return items
}

func sortJournal(items []JournalItem) {
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CompletedAt.Equal(items[j].CompletedAt) {
			return items[i].CompletedAt.After(items[j].CompletedAt)
		}
		if items[i].ModuleID != items[j].ModuleID {
			return items[i].ModuleID < items[j].ModuleID
		}
		return items[i].Day > items[j].Day
	})
}
