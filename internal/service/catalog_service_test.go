package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DigitalBullGO/indicatorems/internal/service"
)

func TestListSuppliersPaginates(t *testing.T) {
	svc := service.NewCatalogService(newSeededDB(t), 5)

	suppliers, bounds, err := svc.ListSuppliers("", 1)
	require.NoError(t, err)
	assert.Len(t, suppliers, 5)
	assert.Equal(t, int64(8), bounds.Total)
	assert.Equal(t, 2, bounds.TotalPages)
	assert.True(t, bounds.HasNext)
	assert.False(t, bounds.HasPrev)

	suppliers, bounds, err = svc.ListSuppliers("", 2)
	require.NoError(t, err)
	assert.Len(t, suppliers, 3)
	assert.False(t, bounds.HasNext)
}

func TestListSuppliersFiltersByCategory(t *testing.T) {
	svc := service.NewCatalogService(newSeededDB(t), 10)

	suppliers, bounds, err := svc.ListSuppliers("Distributor", 1)
	require.NoError(t, err)
	require.NotEmpty(t, suppliers)
	assert.Equal(t, int64(len(suppliers)), bounds.Total)
	for _, s := range suppliers {
		assert.Equal(t, "Distributor", s.Category)
	}
}

func TestListComponentsSearch(t *testing.T) {
	svc := service.NewCatalogService(newSeededDB(t), 10)

	components, bounds, err := svc.ListComponents("", "STM32", 1)
	require.NoError(t, err)
	require.Len(t, components, 1)
	assert.Equal(t, "STM32F407VGT6", components[0].MPN)
	assert.Equal(t, int64(1), bounds.Total)

	// 搜索同时匹配描述
	components, _, err = svc.ListComponents("", "Regulator", 1)
	require.NoError(t, err)
	require.Len(t, components, 1)
	assert.Equal(t, "LM3940IT-3.3", components[0].MPN)
}

func TestListComponentsCommodityFilter(t *testing.T) {
	svc := service.NewCatalogService(newSeededDB(t), 10)

	components, _, err := svc.ListComponents("Passives", "", 1)
	require.NoError(t, err)
	require.NotEmpty(t, components)
	for _, c := range components {
		assert.Equal(t, "Passives", c.Commodity)
	}
}

func TestListBOMExtendsCost(t *testing.T) {
	svc := service.NewCatalogService(newSeededDB(t), 20)

	lines, bounds, err := svc.ListBOM(1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), bounds.Total)
	for _, line := range lines {
		assert.InDelta(t, float64(line.Qty)*line.UnitCost, line.ExtendedCost, 1e-9)
	}
}

func TestListCustomersRegionFilter(t *testing.T) {
	svc := service.NewCatalogService(newSeededDB(t), 10)

	customers, bounds, err := svc.ListCustomers("EMEA", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), bounds.Total)
	for _, c := range customers {
		assert.Equal(t, "EMEA", c.Region)
	}
}

func TestListProjectsStatusFilter(t *testing.T) {
	svc := service.NewCatalogService(newSeededDB(t), 10)

	projects, bounds, err := svc.ListProjects("In Production", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), bounds.Total)
	for _, p := range projects {
		assert.Equal(t, "In Production", p.Status)
	}
}

func TestEmptyPageStillReportsOnePage(t *testing.T) {
	svc := service.NewCatalogService(newSeededDB(t), 10)

	customers, bounds, err := svc.ListCustomers("Antarctica", 1)
	require.NoError(t, err)
	assert.Empty(t, customers)
	assert.Equal(t, int64(0), bounds.Total)
	assert.Equal(t, 1, bounds.TotalPages)
	assert.False(t, bounds.HasNext)
}

func TestBOMSummary(t *testing.T) {
	svc := service.NewCatalogService(newSeededDB(t), 10)

	summary, err := svc.BOMSummary()
	require.NoError(t, err)

	assert.Equal(t, 7, summary.LineCount)
	assert.Greater(t, summary.TotalCost, 0.0)
	assert.Greater(t, summary.TotalQty, 0)
	assert.Greater(t, summary.MaxLeadTimeDays, 0)
	assert.NotEmpty(t, summary.TotalCostDisplay)

	require.NotEmpty(t, summary.BySupplier)
	var shareSum float64
	for _, s := range summary.BySupplier {
		shareSum += s.Share
	}
	assert.InDelta(t, 1.0, shareSum, 1e-9)
}
