package service_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DigitalBullGO/indicatorems/internal/service"
)

func TestListCommTemplatesBySection(t *testing.T) {
	svc := service.NewTemplateService()

	all := svc.ListCommTemplates("")
	assert.Len(t, all, 11)

	vendor := svc.ListCommTemplates("vendor")
	require.NotEmpty(t, vendor)
	for _, tpl := range vendor {
		assert.Equal(t, "vendor", tpl.Section)
	}
}

func TestGetCommTemplateNotFound(t *testing.T) {
	svc := service.NewTemplateService()

	_, err := svc.GetCommTemplate("bc-999")
	assert.ErrorIs(t, err, service.ErrTemplateNotFound)
}

func TestRenderCommTemplate(t *testing.T) {
	svc := service.NewTemplateService()

	result, err := svc.RenderCommTemplate("bc-1", map[string]string{
		"contactPerson": "Ana",
		"vendorName":    "Acme Components",
		"companyName":   "Indicator EMS",
		"date":          "2026-09-01",
	})
	require.NoError(t, err)

	assert.Contains(t, result.Body, "Dear Ana,")
	assert.Contains(t, result.Body, "Acme Components")
	assert.NotContains(t, result.Body, "{contactPerson}")
}

func TestRenderCommTemplateMissingValues(t *testing.T) {
	svc := service.NewTemplateService()

	result, err := svc.RenderCommTemplate("bc-1", map[string]string{
		"contactPerson": "Ana",
	})
	require.NoError(t, err)

	// 缺失字段以 [key] 占位并披露
	assert.Contains(t, result.Body, "[vendorName]")
	assert.Contains(t, result.MissingKeys, "vendorName")
	assert.NotContains(t, result.MissingKeys, "contactPerson")
}

func TestRenderCommTemplateUnknownID(t *testing.T) {
	svc := service.NewTemplateService()

	_, err := svc.RenderCommTemplate("nope", nil)
	assert.ErrorIs(t, err, service.ErrTemplateNotFound)
}

func TestExportCommTemplateFormatFallback(t *testing.T) {
	svc := service.NewTemplateService()

	exp, err := svc.ExportCommTemplate("bc-1", "pdf", map[string]string{"contactPerson": "Ana"})
	require.NoError(t, err)

	assert.True(t, exp.Mismatch())
	assert.Equal(t, "txt", exp.ActualFormat)
	assert.True(t, strings.HasSuffix(exp.Filename, ".txt"))
	assert.Contains(t, exp.Content, "Dear Ana,")
}

func TestListPromptTemplates(t *testing.T) {
	svc := service.NewTemplateService()

	all := svc.ListPromptTemplates("")
	assert.Len(t, all, 11)

	quality := svc.ListPromptTemplates("quality")
	require.NotEmpty(t, quality)
	for _, tpl := range quality {
		assert.Equal(t, "quality", tpl.Section)
	}
}
