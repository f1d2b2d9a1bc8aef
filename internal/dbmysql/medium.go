package dbmysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campusbuzz/internal/common"
)

type entryMedium struct {
	db *gorm.DB
}

// NewMedium stores every key as one row of kv_entries.
func NewMedium(db *gorm.DB) common.Medium {
	return &entryMedium{db: db}
}

func (m *entryMedium) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry Entry
	err := m.db.WithContext(ctx).Where("entry_key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch entry: %w", err)
	}
	return []byte(entry.Value), true, nil
}

func (m *entryMedium) Set(ctx context.Context, key string, value []byte) error {
	entry := &Entry{
		Key:   key,
		Value: datatypes.JSON(value),
	}
	err := m.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(entry).Error
	if err != nil {
		return fmt.Errorf("failed to save entry: %w", err)
	}
	return nil
}
