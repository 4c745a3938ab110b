package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DigitalBullGO/indicatorems/internal/model"
	"github.com/DigitalBullGO/indicatorems/internal/service"
)

func TestCreateAndListBackups(t *testing.T) {
	db := newSeededDB(t)
	svc := service.NewBackupService(db, t.TempDir())

	path, err := svc.CreateBackup(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".tar.gz"))

	backups, err := svc.ListBackups(context.Background())
	require.NoError(t, err)
	require.Len(t, backups, 1)
	assert.Greater(t, backups[0].Size, int64(0))
	assert.WithinDuration(t, time.Now(), backups[0].CreatedAt, time.Minute)
}

func TestRestoreBackupRoundTrip(t *testing.T) {
	db := newSeededDB(t)
	svc := service.NewBackupService(db, t.TempDir())

	path, err := svc.CreateBackup(context.Background())
	require.NoError(t, err)

	// 篡改一行再恢复
	require.NoError(t, db.Model(&model.SupplierModel{}).
		Where("id = ?", "SUP-002").
		Update("name", "Corrupted Name").Error)

	require.NoError(t, svc.RestoreBackup(context.Background(), path))

	var supplier model.SupplierModel
	require.NoError(t, db.First(&supplier, "id = ?", "SUP-002").Error)
	assert.Equal(t, "Digi-Key", supplier.Name)

	var bomCount int64
	require.NoError(t, db.Model(&model.BOMItemModel{}).Count(&bomCount).Error)
	assert.Equal(t, int64(7), bomCount)
}

func TestRestoreBackupMissingFile(t *testing.T) {
	svc := service.NewBackupService(newSeededDB(t), t.TempDir())

	err := svc.RestoreBackup(context.Background(), "/nowhere/backup_catalog_x.tar.gz")
	assert.Error(t, err)
}

func TestDeleteBackupRejectsEscape(t *testing.T) {
	svc := service.NewBackupService(newSeededDB(t), t.TempDir())

	err := svc.DeleteBackup(context.Background(), "../outside.tar.gz")
	assert.Error(t, err)
}

func TestCleanupExpiredKeepsFresh(t *testing.T) {
	svc := service.NewBackupService(newSeededDB(t), t.TempDir())

	_, err := svc.CreateBackup(context.Background())
	require.NoError(t, err)

	removed, err := svc.CleanupExpired(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)

	backups, err := svc.ListBackups(context.Background())
	require.NoError(t, err)
	assert.Len(t, backups, 1)
}
