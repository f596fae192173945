package service

import (
	_ "embed"
	"fmt"
	"math/rand"
	"mindset_backend/internal/model"
	"mindset_backend/internal/util"
	"mindset_backend/pkg/logger"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed content/catalog.yaml
var defaultCatalog []byte

// CatalogService 只读的课程目录与入门测验
type CatalogService struct {
	catalog *model.Catalog
	index   map[string]*model.Module

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewCatalogService path 为空时使用内置目录
func NewCatalogService(path string) (*CatalogService, error) {
	raw := defaultCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		raw = b
	}

	cat, err := ParseCatalog(raw)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("Catalog loaded", zap.Int("modules", len(cat.Modules)), zap.Int("quizQuestions", len(cat.Quiz)))
	return NewCatalogServiceFrom(cat), nil
}

func NewCatalogServiceFrom(cat *model.Catalog) *CatalogService {
	s := &CatalogService{
		catalog: cat,
		index:   make(map[string]*model.Module, len(cat.Modules)),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for i := range cat.Modules {
		s.index[cat.Modules[i].ID] = &cat.Modules[i]
	}
	return s
}

// ParseCatalog 解析并校验目录
func ParseCatalog(raw []byte) (*model.Catalog, error) {
	var cat model.Catalog
	if err := yaml.Unmarshal(raw, &cat); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	seen := make(map[string]bool)
	for i := range cat.Modules {
		m := &cat.Modules[i]
		if m.ID == "" {
			return nil, fmt.Errorf("catalog module #%d has no id", i)
		}
		if seen[m.ID] {
			return nil, fmt.Errorf("duplicate catalog module %q", m.ID)
		}
		seen[m.ID] = true
		if m.TotalDays <= 0 {
			m.TotalDays = model.DefaultTotalDays
		}
		for _, d := range m.Days {
			if d.Number < 1 || d.Number > m.TotalDays {
				return nil, fmt.Errorf("module %q: day %d out of range", m.ID, d.Number)
			}
		}
	}
	for _, q := range cat.Quiz {
		for _, o := range q.Options {
			for _, id := range o.Modules {
				if !seen[id] {
					return nil, fmt.Errorf("quiz option %q references unknown module %q", o.ID, id)
				}
			}
		}
	}
	return &cat, nil
}

// SetRand 替换随机源，测试使用
func (s *CatalogService) SetRand(r *rand.Rand) {
	s.rngMu.Lock()
	s.rng = r
	s.rngMu.Unlock()
}

func (s *CatalogService) Modules() []model.Module {
	return s.catalog.Modules
}

func (s *CatalogService) Module(id string) (*model.Module, error) {
	m, ok := s.index[id]
	if !ok {
		return nil, util.ErrModuleNotFound
	}
	return m, nil
}

// TotalDays 未知模块返回默认天数
func (s *CatalogService) TotalDays(id string) int {
	if m, ok := s.index[id]; ok {
		return m.TotalDays
	}
	return model.DefaultTotalDays
}

func (s *CatalogService) Lesson(moduleID string, day int) (*model.Module, *model.LessonDay, error) {
	m, err := s.Module(moduleID)
	if err != nil {
		return nil, nil, err
	}
	if day < 1 || day > m.TotalDays {
		return nil, nil, util.ErrInvalidDay
	}
	d, ok := m.Day(day)
	if !ok {
		return nil, nil, util.ErrDayNotFound
	}
	return m, d, nil
}

func (s *CatalogService) Quiz() []model.QuizQuestion {
	return s.catalog.Quiz
}

// RandomPrompt 随机选一条反思提示，尽量避开 current
func (s *CatalogService) RandomPrompt(moduleID string, day int, lang, current string) (string, error) {
	_, lesson, err := s.Lesson(moduleID, day)
	if err != nil {
		return "", err
	}

	candidates := make([]string, 0, len(lesson.ReflectionPrompts))
	for _, p := range lesson.ReflectionPrompts {
		text := p.Get(lang)
		if text != "" && text != current {
			candidates = append(candidates, text)
		}
	}
	if len(candidates) == 0 {
		return current, nil
	}

	s.rngMu.Lock()
	i := s.rng.Intn(len(candidates))
	s.rngMu.Unlock()
	return candidates[i], nil
}

// Recommend 按测验答案统计每个模块的票数，平票时取目录中靠前的模块
func (s *CatalogService) Recommend(answers map[string]string) (string, bool) {
	tally := make(map[string]int)
	for _, q := range s.catalog.Quiz {
		chosen, ok := answers[q.ID]
		if !ok {
			continue
		}
		for _, o := range q.Options {
			if o.ID != chosen {
				continue
			}
			for _, id := range o.Modules {
				tally[id]++
			}
		}
	}

	best, bestVotes := "", 0
	for _, m := range s.catalog.Modules {
		if tally[m.ID] > bestVotes {
			best, bestVotes = m.ID, tally[m.ID]
		}
	}
	return best, bestVotes > 0
}
