package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DigitalBullGO/indicatorems/internal/analytics"
)

// TestCurrency 测试货币缩写格式
func TestCurrency(t *testing.T) {
	assert.Equal(t, "$8.4M", analytics.Currency(8400000))
	assert.Equal(t, "$142K", analytics.Currency(142000))
	assert.Equal(t, "$2.10", analytics.Currency(2.10))
	assert.Equal(t, "$0.01", analytics.Currency(0.012))
	assert.Equal(t, "-$1.5M", analytics.Currency(-1500000))
}

// TestPercent 测试百分比格式
func TestPercent(t *testing.T) {
	assert.Equal(t, "94.2%", analytics.Percent(0.942))
	assert.Equal(t, "0.0%", analytics.Percent(0))
	assert.Equal(t, "100.0%", analytics.Percent(1))
}

// TestThousands 测试千位分隔符
func TestThousands(t *testing.T) {
	assert.Equal(t, "125,000", analytics.Thousands(125000))
	assert.Equal(t, "931", analytics.Thousands(931))
	assert.Equal(t, "1,247", analytics.Thousands(1247))
	assert.Equal(t, "45,230", analytics.Thousands(45230))
	assert.Equal(t, "-12,340", analytics.Thousands(-12340))
	assert.Equal(t, "0", analytics.Thousands(0))
}
