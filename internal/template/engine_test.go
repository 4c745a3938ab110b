package template_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DigitalBullGO/indicatorems/internal/template"
)

func TestRenderFillsAllTokens(t *testing.T) {
	fields := []template.Field{
		{Label: "Contact Person", Key: "contactPerson"},
		{Label: "Company Name", Key: "companyName"},
	}
	body := "Dear {contactPerson}, welcome to {companyName}."

	out := template.Render(body, fields, map[string]string{
		"contactPerson": "Ana",
		"companyName":   "Acme EMS",
	})

	assert.Equal(t, "Dear Ana, welcome to Acme EMS.", out)
	assert.NotContains(t, out, "{")
	assert.NotContains(t, out, "}")
}

func TestRenderMissingValueFallsBackToBracketKey(t *testing.T) {
	fields := []template.Field{
		{Label: "Contact Person", Key: "contactPerson"},
		{Label: "Company Name", Key: "companyName"},
	}
	body := "Dear {contactPerson}, welcome to {companyName}."

	out := template.Render(body, fields, map[string]string{"contactPerson": "Ana"})
	assert.Equal(t, "Dear Ana, welcome to [companyName].", out)
}

func TestRenderBlankValueTreatedAsMissing(t *testing.T) {
	fields := []template.Field{{Label: "Company Name", Key: "companyName"}}

	out := template.Render("Welcome to {companyName}.", fields, map[string]string{
		"companyName": "   ",
	})
	assert.Equal(t, "Welcome to [companyName].", out)
}

func TestRenderIsDeterministic(t *testing.T) {
	tpl, ok := template.CommTemplateByID("bc-1")
	require.True(t, ok)

	values := map[string]string{
		"vendorName":    "Shenzhen PCB Co",
		"contactPerson": "Wei",
		"date":          "2026-03-01",
	}
	first := template.Render(tpl.BodyTemplate, tpl.Fields, values)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, template.Render(tpl.BodyTemplate, tpl.Fields, values))
	}
}

func TestRenderTreatsTokensAsLiterals(t *testing.T) {
	// 值中包含正则元字符与花括号时不应被二次展开
	fields := []template.Field{
		{Label: "A", Key: "a"},
		{Label: "B", Key: "b"},
	}
	out := template.Render("{a} and {b}", fields, map[string]string{
		"a": "$1.(*)+?",
		"b": "{a}",
	})
	assert.Equal(t, "$1.(*)+? and {a}", out)
}

func TestMissingKeysFollowSchemaOrder(t *testing.T) {
	tpl, ok := template.CommTemplateByID("bc-2")
	require.True(t, ok)

	missing := template.MissingKeys(tpl.Fields, map[string]string{"poNumber": "PO-1001"})
	assert.Equal(t, []string{"supplierName", "deliveryDate", "orderDetails"}, missing)
}

func TestCatalogFieldsAppearInBody(t *testing.T) {
	for _, tpl := range template.CommTemplates("") {
		for _, f := range tpl.Fields {
			assert.Contains(t, tpl.BodyTemplate, "{"+f.Key+"}",
				"template %s field %s has no token in body", tpl.ID, f.Key)
		}
	}
}

func TestCatalogFilters(t *testing.T) {
	assert.Len(t, template.CommTemplates(""), 11)
	assert.Len(t, template.PromptTemplates(""), 11)
	assert.Len(t, template.ReportTemplates(""), 15)

	for _, tpl := range template.CommTemplates("vendor") {
		assert.Equal(t, "vendor", tpl.Section)
	}
	for _, tpl := range template.PromptTemplates("quality") {
		assert.Equal(t, "quality", tpl.Section)
	}
	dynamic := template.ReportTemplates("dynamic")
	assert.Len(t, dynamic, 5)
	for _, tpl := range dynamic {
		assert.True(t, strings.HasPrefix(tpl.ID, "rt-"))
	}

	assert.Empty(t, template.CommTemplates("no-such-section"))
}

func TestCommTemplateByIDUnknown(t *testing.T) {
	_, ok := template.CommTemplateByID("bc-999")
	assert.False(t, ok)
}
