package storage

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/adisakb/e-sarabun/internal"
)

// KV is the opaque persistence contract: whole serialized collections go in
// and out under a handful of well-known keys. A missing key is not an error.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Clear() error
}

// Entry is one persisted collection blob.
type Entry struct {
	Key   string `gorm:"column:key;primaryKey"`
	Value string `gorm:"column:value;not null"`
}

func (Entry) TableName() string {
	return "kv_entries"
}

// Open connects to the configured database. Sqlite is the default driver;
// postgres is available for shared deployments.
func Open(cfg internal.StorageConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.Source)
	case "sqlite":
		dialector = sqlite.Open(cfg.Source)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Driver, err)
	}

	return db, nil
}

// GormKV implements KV on a kv_entries table.
type GormKV struct {
	db *gorm.DB
}

func NewGormKV(db *gorm.DB) *GormKV {
	return &GormKV{db: db}
}

func (s *GormKV) Get(key string) (string, bool, error) {
	var entry Entry
	err := s.db.Where("key = ?", key).First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Value, true, nil
}

func (s *GormKV) Set(key, value string) error {
	entry := Entry{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&entry).Error
}

func (s *GormKV) Clear() error {
	return s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Entry{}).Error
}

// Ping verifies the underlying connection for health checks.
func (s *GormKV) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
