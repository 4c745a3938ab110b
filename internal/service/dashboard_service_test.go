package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DigitalBullGO/indicatorems/internal/service"
)

func TestGetKPIs(t *testing.T) {
	svc := service.NewDashboardService(newSeededDB(t))

	kpis, err := svc.GetKPIs()
	require.NoError(t, err)

	assert.InDelta(t, 14780000, kpis.TotalRevenue, 1e-6)
	assert.Equal(t, "$14.8M", kpis.TotalRevenueDisplay)
	assert.Equal(t, int64(5), kpis.ActiveProjects)
	assert.Equal(t, int64(8), kpis.SupplierCount)
	assert.Greater(t, kpis.AvgLeadTimeDays, 0.0)
	assert.Equal(t, 94.2, kpis.OnTimeDeliveryPercent)
	assert.Equal(t, 99.1, kpis.QualityYieldPercent)
}

func TestGetChartSpendByCommodity(t *testing.T) {
	svc := service.NewDashboardService(newSeededDB(t))

	chart, err := svc.GetChart("spend-by-commodity")
	require.NoError(t, err)
	require.NotEmpty(t, chart.Points)
	assert.Equal(t, "spend-by-commodity", chart.Name)

	var shareSum float64
	for _, p := range chart.Points {
		assert.Greater(t, p.Value, 0.0)
		assert.NotEmpty(t, p.ValueDisplay)
		shareSum += p.Share
	}
	assert.InDelta(t, 1.0, shareSum, 1e-9)
}

func TestGetChartStatic(t *testing.T) {
	svc := service.NewDashboardService(newSeededDB(t))

	for _, name := range []string{"monthly-revenue", "department-spend"} {
		chart, err := svc.GetChart(name)
		require.NoError(t, err)
		assert.Equal(t, name, chart.Name)
		assert.NotEmpty(t, chart.Points)
	}
}

func TestGetChartUnknown(t *testing.T) {
	svc := service.NewDashboardService(newSeededDB(t))

	_, err := svc.GetChart("profit-by-moon-phase")
	assert.ErrorIs(t, err, service.ErrUnknownChart)
}
