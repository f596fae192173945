package repository

import (
	"context"
	"errors"
	"mindset_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQLStore 把键值保存在 kv_entries 表中
type SQLStore struct {
	DB *gorm.DB
}

func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{DB: db}
}

func (s *SQLStore) GetItem(ctx context.Context, key string) ([]byte, error) {
	var entry model.KVEntry
	err := s.DB.WithContext(ctx).Where("`key` = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return entry.Value, nil
}

func (s *SQLStore) SetItem(ctx context.Context, key string, value []byte) error {
	entry := model.KVEntry{Key: key, Value: value}
	return s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

func (s *SQLStore) RemoveItem(ctx context.Context, key string) error {
	return s.DB.WithContext(ctx).Where("`key` = ?", key).Delete(&model.KVEntry{}).Error
}

func (s *SQLStore) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
