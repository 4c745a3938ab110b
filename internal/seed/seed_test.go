package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DigitalBullGO/indicatorems/internal/database"
	"github.com/DigitalBullGO/indicatorems/internal/model"
	"github.com/DigitalBullGO/indicatorems/internal/seed"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestApplySeedsAllTables(t *testing.T) {
	db := newTestDB(t)

	counts, err := seed.Apply(db)
	require.NoError(t, err)

	assert.Equal(t, 8, counts["suppliers"])
	assert.Equal(t, 10, counts["components"])
	assert.Equal(t, 7, counts["bom_items"])
	assert.Equal(t, 6, counts["customers"])
	assert.Equal(t, 5, counts["projects"])
	assert.Equal(t, 6, counts["sap_tables"])

	var supplier model.SupplierModel
	require.NoError(t, db.First(&supplier, "id = ?", "SUP-002").Error)
	assert.Equal(t, "Digi-Key", supplier.Name)
	assert.Equal(t, 7, supplier.LeadTimeDays)

	var table model.SapTableModel
	require.NoError(t, db.First(&table, "name = ?", "VBAP").Error)
	assert.Equal(t, model.SapStatusStale, table.Status)
	assert.Equal(t, []string{"VBELN", "POSNR"}, table.KeyFieldList())
}

func TestApplyUpsertsAcrossModels(t *testing.T) {
	db := newTestDB(t)

	_, err := seed.Apply(db)
	require.NoError(t, err)

	// 篡改不同模型的已有行,重新执行应全部恢复
	require.NoError(t, db.Model(&model.SupplierModel{}).Where("id = ?", "SUP-002").Update("name", "corrupted").Error)
	require.NoError(t, db.Model(&model.CustomerModel{}).Where("id = ?", "CUS-001").Update("region", "corrupted").Error)
	require.NoError(t, db.Model(&model.SapTableModel{}).Where("name = ?", "MARA").Update("record_count", 0).Error)

	_, err = seed.Apply(db)
	require.NoError(t, err)

	var supplier model.SupplierModel
	require.NoError(t, db.First(&supplier, "id = ?", "SUP-002").Error)
	assert.Equal(t, "Digi-Key", supplier.Name)

	var customer model.CustomerModel
	require.NoError(t, db.First(&customer, "id = ?", "CUS-001").Error)
	assert.NotEqual(t, "corrupted", customer.Region)

	var table model.SapTableModel
	require.NoError(t, db.First(&table, "name = ?", "MARA").Error)
	assert.NotZero(t, table.RecordCount)
}

func TestApplyIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	_, err := seed.Apply(db)
	require.NoError(t, err)
	_, err = seed.Apply(db)
	require.NoError(t, err)

	var supplierCount, bomCount int64
	require.NoError(t, db.Model(&model.SupplierModel{}).Count(&supplierCount).Error)
	require.NoError(t, db.Model(&model.BOMItemModel{}).Count(&bomCount).Error)
	assert.Equal(t, int64(8), supplierCount)
	assert.Equal(t, int64(7), bomCount)
}
