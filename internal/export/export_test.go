package export_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DigitalBullGO/indicatorems/internal/export"
)

func TestBuildPlainText(t *testing.T) {
	exp := export.Build("Vendor Onboarding Letter", "txt", "Dear Wei,")

	assert.Equal(t, "vendor-onboarding-letter.txt", exp.Filename)
	assert.Equal(t, "text/plain; charset=utf-8", exp.ContentType)
	assert.Equal(t, "txt", exp.RequestedFormat)
	assert.Equal(t, "txt", exp.ActualFormat)
	assert.False(t, exp.Mismatch())
	assert.Empty(t, exp.FormatNote)
	assert.Equal(t, "Dear Wei,", exp.Content)
}

func TestBuildDisclosesFormatMismatch(t *testing.T) {
	exp := export.Build("PO Confirmation", "pdf", "body")

	assert.Equal(t, "po-confirmation.txt", exp.Filename)
	assert.Equal(t, "pdf", exp.RequestedFormat)
	assert.Equal(t, "txt", exp.ActualFormat)
	assert.True(t, exp.Mismatch())
	assert.Contains(t, exp.FormatNote, "pdf")
	assert.Contains(t, exp.FormatNote, "plain text")
}

func TestBuildNormalizesFormat(t *testing.T) {
	assert.Equal(t, "docx", export.Build("x", " .DOCX ", "").RequestedFormat)
	// 空格式和未知格式回落为实际格式,不报失配
	assert.False(t, export.Build("x", "", "").Mismatch())
	assert.False(t, export.Build("x", "xlsx", "").Mismatch())
}

func TestSanitizedFilenames(t *testing.T) {
	assert.Equal(t, "shift-handover-report.txt", export.Build("Shift Handover Report!!", "txt", "").Filename)
	assert.Equal(t, "export.txt", export.Build("   ", "txt", "").Filename)
	assert.Equal(t, "export.txt", export.Build("???", "txt", "").Filename)
}
