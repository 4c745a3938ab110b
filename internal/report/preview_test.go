package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DigitalBullGO/indicatorems/internal/report"
)

var knownPreviewIDs = []string{
	"spend-analysis", "bom-breakdown", "supplier-scorecard", "lead-time-120",
	"inventory", "grn-pos", "quality-yield", "aging-customer",
	"aging-supplier", "customer-sales", "org-drilldown", "iqc-report",
}

var knownTemplatePreviewIDs = []string{"rt-11", "rt-12", "rt-13", "rt-14", "rt-15"}

func TestDefaultRegistryContainsAllPreviews(t *testing.T) {
	reg := report.DefaultRegistry()
	assert.Equal(t, len(knownPreviewIDs)+len(knownTemplatePreviewIDs), reg.Len())

	for _, id := range knownPreviewIDs {
		p, ok := reg.Get(id)
		require.True(t, ok, "missing preview %s", id)
		assert.Equal(t, id, p.ID)
		assert.NotEmpty(t, p.Title)
		assert.Len(t, p.KPIs, 3)
		assert.NotEmpty(t, p.Table.Headers)
		assert.NotEmpty(t, p.Series)
		for _, row := range p.Table.Rows {
			assert.Len(t, row, len(p.Table.Headers))
		}
	}
	for _, id := range knownTemplatePreviewIDs {
		p, ok := reg.Get(id)
		require.True(t, ok, "missing preview %s", id)
		assert.Equal(t, "table", p.Chart)
		assert.NotEmpty(t, p.Table.Rows)
	}
}

func TestSpendAnalysisHasTotalSpendKPI(t *testing.T) {
	reg := report.DefaultRegistry()
	p, ok := reg.Get("spend-analysis")
	require.True(t, ok)

	var found bool
	for _, kpi := range p.KPIs {
		if kpi.Label == "Total Spend" {
			found = true
			assert.Equal(t, "$142.5M", kpi.Value)
		}
	}
	assert.True(t, found)
	assert.NotEmpty(t, p.Insights)
}

func TestGetUnknownIDNeverPanics(t *testing.T) {
	reg := report.DefaultRegistry()
	for _, id := range []string{"", "unknown", "SPEND-ANALYSIS", "spend analysis", "../etc", "报表"} {
		assert.NotPanics(t, func() {
			p, ok := reg.Get(id)
			assert.False(t, ok)
			assert.Empty(t, p.ID)
		})
	}
}

func TestRegisterOverwritesByID(t *testing.T) {
	reg := report.NewRegistry()
	reg.Register(report.Preview{ID: "x", Title: "first"})
	reg.Register(report.Preview{ID: "x", Title: "second"})

	p, ok := reg.Get("x")
	require.True(t, ok)
	assert.Equal(t, "second", p.Title)
	assert.Equal(t, 1, reg.Len())
}
