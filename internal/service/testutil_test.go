package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DigitalBullGO/indicatorems/internal/database"
	"github.com/DigitalBullGO/indicatorems/internal/seed"
)

// newSeededDB 构建带内置主数据的内存数据库
func newSeededDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	_, err = seed.Apply(db)
	require.NoError(t, err)
	return db
}
