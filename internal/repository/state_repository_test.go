package repository

import (
	"context"
	"errors"
	"mindset_backend/internal/model"
	"mindset_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)

func newTestRepo(store KeyValueStore) *StateRepository {
	r := NewStateRepository(store, "state")
	r.Now = func() time.Time { return fixedNow }
	return r
}

// failingStore 模拟存储不可用
type failingStore struct{}

func (failingStore) GetItem(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("storage unavailable")
}
func (failingStore) SetItem(ctx context.Context, key string, value []byte) error {
	return errors.New("quota exceeded")
}
func (failingStore) RemoveItem(ctx context.Context, key string) error { return nil }
func (failingStore) Close() error                                     { return nil }

func TestLoadReturnsDefaultsWhenEmpty(t *testing.T) {
	repo := newTestRepo(NewMemoryStore())

	state := repo.Load(context.Background())
	assert.Equal(t, model.DefaultLanguage, state.Language)
	assert.Equal(t, model.ThemeSystem, state.Theme)
	assert.Equal(t, model.DefaultAvatar, state.Avatar)
	assert.Equal(t, fixedNow, state.JoinedAt)
	assert.Equal(t, "09:00", state.Reminder.Time)
	assert.NotNil(t, state.Progress)
	assert.NotNil(t, state.DailyGoals)
	assert.False(t, state.HasCompletedOnboarding)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(NewMemoryStore())

	state := model.NewUserState(fixedNow)
	state.Name = "Ada"
	state.Bio = "learning"
	state.Theme = model.ThemeDark
	state.Reminder = model.ReminderSettings{Enabled: true, Time: "07:30"}
	state.Progress["confidence"] = &model.ModuleProgress{
		StartedAt:      fixedNow,
		LastAccessedAt: fixedNow,
		CompletedDays:  []int{1, 2},
		Journal: map[int]*model.JournalEntry{
			1: {Reflection: "r1", TaskResponse: "t1", CompletedAt: fixedNow},
		},
	}
	state.DailyGoals = []model.DailyGoal{{ID: "g1", Text: "walk", CreatedAt: fixedNow, History: []string{"2024-01-03"}}}

	require.NoError(t, repo.Save(ctx, state))

	loaded := repo.Load(ctx)
	assert.Equal(t, state.Name, loaded.Name)
	assert.Equal(t, state.Bio, loaded.Bio)
	assert.Equal(t, state.Theme, loaded.Theme)
	assert.Equal(t, state.Reminder, loaded.Reminder)
	assert.Equal(t, int64(1), loaded.Revision)
	assert.Equal(t, []int{1, 2}, loaded.Progress["confidence"].CompletedDays)
	assert.Equal(t, "r1", loaded.Progress["confidence"].Journal[1].Reflection)
	assert.True(t, loaded.Progress["confidence"].Journal[1].CompletedAt.Equal(fixedNow))
	assert.Equal(t, state.DailyGoals[0].History, loaded.DailyGoals[0].History)
}

func TestLoadBackfillsOldBlob(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	old := `{"name":null,"language":"fr","progress":{"finance":{"completedDays":[3,1,3,0],"journal":null}},"dailyGoals":null}`
	require.NoError(t, store.SetItem(ctx, "state", []byte(old)))

	state := newTestRepo(store).Load(ctx)
	assert.Equal(t, "", state.Name)
	assert.Equal(t, "fr", state.Language)
	assert.Equal(t, model.DefaultAvatar, state.Avatar)
	assert.Equal(t, fixedNow, state.JoinedAt)
	assert.Equal(t, "09:00", state.Reminder.Time)
	assert.NotNil(t, state.DailyGoals)
	require.Contains(t, state.Progress, "finance")
	assert.Equal(t, []int{1, 3}, state.Progress["finance"].CompletedDays)
	assert.NotNil(t, state.Progress["finance"].Journal)
}

func TestLoadFallsBackOnCorruptBlob(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.SetItem(ctx, "state", []byte("{not json")))

	state := newTestRepo(store).Load(ctx)
	assert.Equal(t, model.DefaultLanguage, state.Language)
	assert.Empty(t, state.Progress)
}

// flakyStore 写入可按需失败，读取正常
type flakyStore struct {
	*MemoryStore
	failWrites bool
}

func (s *flakyStore) SetItem(ctx context.Context, key string, value []byte) error {
	if s.failWrites {
		return errors.New("disk full")
	}
	return s.MemoryStore.SetItem(ctx, key, value)
}

func TestLoadFallsBackOnStorageError(t *testing.T) {
	state := newTestRepo(failingStore{}).Load(context.Background())
	assert.Equal(t, model.DefaultLanguage, state.Language)
}

func TestUpdateSwallowsSaveFailure(t *testing.T) {
	repo := newTestRepo(failingStore{})

	state, err := repo.Update(context.Background(), func(s *model.UserState) error {
		s.Name = "offline"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "offline", state.Name)
}

func TestFailedSaveKeepsPersistedRevision(t *testing.T) {
	ctx := context.Background()
	store := &flakyStore{MemoryStore: NewMemoryStore()}
	repo := newTestRepo(store)

	first, err := repo.Update(ctx, func(s *model.UserState) error { s.Name = "a"; return nil })
	require.NoError(t, err)
	require.Equal(t, int64(1), first.Revision)

	store.failWrites = true
	unsaved, err := repo.Update(ctx, func(s *model.UserState) error { s.Name = "b"; return nil })
	require.NoError(t, err)
	assert.Equal(t, int64(1), unsaved.Revision)
	assert.True(t, first.UpdatedAt.Equal(unsaved.UpdatedAt))

	// 客户端拿到的 revision 仍能作为 If-Match 使用
	store.failWrites = false
	next, err := repo.UpdateAt(ctx, unsaved.Revision, func(s *model.UserState) error { s.Name = "c"; return nil })
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.Revision)
	assert.Equal(t, "c", repo.Load(ctx).Name)
}

func TestUpdateDoesNotSaveOnError(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(NewMemoryStore())

	_, err := repo.Update(ctx, func(s *model.UserState) error {
		s.Name = "nope"
		return util.ErrGoalNotFound
	})
	assert.ErrorIs(t, err, util.ErrGoalNotFound)
	assert.Equal(t, "", repo.Load(ctx).Name)
}

func TestUpdateAtChecksRevision(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(NewMemoryStore())

	first, err := repo.Update(ctx, func(s *model.UserState) error { s.Name = "a"; return nil })
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Revision)

	_, err = repo.UpdateAt(ctx, 0, func(s *model.UserState) error { s.Name = "b"; return nil })
	assert.ErrorIs(t, err, util.ErrRevisionMismatch)

	second, err := repo.UpdateAt(ctx, 1, func(s *model.UserState) error { s.Name = "c"; return nil })
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Revision)
	assert.Equal(t, "c", repo.Load(ctx).Name)
}

func TestReplaceKeepsRevisionMonotonic(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(NewMemoryStore())
	_, err := repo.Update(ctx, func(s *model.UserState) error { return nil })
	require.NoError(t, err)

	imported := &model.UserState{Name: "imported", Revision: 40}
	next, err := repo.Replace(ctx, imported)
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.Revision)
	assert.Equal(t, model.DefaultLanguage, next.Language)
	assert.Equal(t, "imported", repo.Load(ctx).Name)
}

func TestResetRemovesState(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := newTestRepo(store)
	_, err := repo.Update(ctx, func(s *model.UserState) error { s.Name = "x"; return nil })
	require.NoError(t, err)

	require.NoError(t, repo.Reset(ctx))
	_, err = store.GetItem(ctx, "state")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.Equal(t, "", repo.Load(ctx).Name)
}

func TestUpdateHonoursRevisionFromContext(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(NewMemoryStore())
	_, err := repo.Update(ctx, func(s *model.UserState) error { return nil })
	require.NoError(t, err)

	_, err = repo.Update(WithExpectedRevision(ctx, 7), func(s *model.UserState) error { return nil })
	assert.ErrorIs(t, err, util.ErrRevisionMismatch)

	state, err := repo.Update(WithExpectedRevision(ctx, 1), func(s *model.UserState) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, int64(2), state.Revision)
}

func TestResetAtChecksRevision(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(NewMemoryStore())
	_, err := repo.Update(ctx, func(s *model.UserState) error { s.Name = "x"; return nil })
	require.NoError(t, err)

	assert.ErrorIs(t, repo.ResetAt(ctx, 0), util.ErrRevisionMismatch)
	assert.ErrorIs(t, repo.Reset(WithExpectedRevision(ctx, 5)), util.ErrRevisionMismatch)
	assert.Equal(t, "x", repo.Load(ctx).Name)

	require.NoError(t, repo.Reset(WithExpectedRevision(ctx, 1)))
	assert.Equal(t, "", repo.Load(ctx).Name)
	assert.Equal(t, int64(0), repo.Load(ctx).Revision)
}
