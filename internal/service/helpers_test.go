package service

import (
	"mindset_backend/internal/repository"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testClock struct {
	t time.Time
}

func (c *testClock) Now() time.Time          { return c.t }
func (c *testClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type fixture struct {
	clock    *testClock
	repo     *repository.StateRepository
	catalog  *CatalogService
	progress *ProgressService
	stats    *StatsService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clock := &testClock{t: time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)}

	repo := repository.NewStateRepository(repository.NewMemoryStore(), "state")
	repo.Now = clock.Now

	catalog, err := NewCatalogService("")
	require.NoError(t, err)

	progress := NewProgressService(repo, catalog, time.UTC)
	progress.Now = clock.Now

	stats := NewStatsService(repo, catalog, time.UTC)
	stats.Now = clock.Now

	return &fixture{clock: clock, repo: repo, catalog: catalog, progress: progress, stats: stats}
}
