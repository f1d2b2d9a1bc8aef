package dbmysql

import (
	"time"

	"gorm.io/datatypes"
)

// Entry is one stored collection, keyed like the browser storage keys
// ("conversation:...", "notifications:...").
type Entry struct {
	Key       string         `gorm:"column:entry_key;primaryKey;size:191"`
	Value     datatypes.JSON `gorm:"column:entry_value;not null"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (Entry) TableName() string {
	return "kv_entries"
}
