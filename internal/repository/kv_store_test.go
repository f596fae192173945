package repository

import (
	"context"
	"mindset_backend/internal/model"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openBadgerStore(t *testing.T) *BadgerStore {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	return NewBadgerStore(db)
}

func openSQLStore(t *testing.T) *SQLStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.KVEntry{}))
	return NewSQLStore(db)
}

func TestKeyValueStores(t *testing.T) {
	stores := map[string]func(t *testing.T) KeyValueStore{
		"memory": func(t *testing.T) KeyValueStore { return NewMemoryStore() },
		"badger": func(t *testing.T) KeyValueStore { return openBadgerStore(t) },
		"sql":    func(t *testing.T) KeyValueStore { return openSQLStore(t) },
	}

	for name, open := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := open(t)
			defer store.Close()

			_, err := store.GetItem(ctx, "missing")
			assert.ErrorIs(t, err, ErrKeyNotFound)

			require.NoError(t, store.SetItem(ctx, "k", []byte(`{"a":1}`)))
			v, err := store.GetItem(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, `{"a":1}`, string(v))

			require.NoError(t, store.SetItem(ctx, "k", []byte(`{"a":2}`)))
			v, err = store.GetItem(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, `{"a":2}`, string(v))

			require.NoError(t, store.RemoveItem(ctx, "k"))
			_, err = store.GetItem(ctx, "k")
			assert.ErrorIs(t, err, ErrKeyNotFound)
		})
	}
}

func TestStateRepositoryOnBadger(t *testing.T) {
	ctx := context.Background()
	store := openBadgerStore(t)
	defer store.Close()
	repo := newTestRepo(store)

	_, err := repo.Update(ctx, func(s *model.UserState) error {
		s.Name = "badger"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "badger", repo.Load(ctx).Name)
}
