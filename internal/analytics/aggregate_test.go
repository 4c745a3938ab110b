package analytics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DigitalBullGO/indicatorems/internal/analytics"
)

type spendRow struct {
	Commodity string
	Amount    float64
	Qty       float64
}

// TestGroupSumOrderStability 测试分组结果保持首次出现顺序
func TestGroupSumOrderStability(t *testing.T) {
	rows := []spendRow{
		{Commodity: "Power", Amount: 100},
		{Commodity: "ICs", Amount: 200},
		{Commodity: "Power", Amount: 50},
		{Commodity: "Passives", Amount: 10},
		{Commodity: "ICs", Amount: 25},
	}

	groups := analytics.GroupSum(rows,
		func(r spendRow) string { return r.Commodity },
		func(r spendRow) float64 { return r.Amount })

	keys := make([]string, len(groups))
	for i, g := range groups {
		keys[i] = g.Key
	}
	// 不按字母排序,不反转,严格首次出现顺序
	assert.Equal(t, []string{"Power", "ICs", "Passives"}, keys)

	assert.Equal(t, 150.0, groups[0].Value)
	assert.Equal(t, 2, groups[0].Count)
	assert.Equal(t, 225.0, groups[1].Value)
	assert.Equal(t, 10.0, groups[2].Value)
}

// TestGroupCount 测试分组计数
func TestGroupCount(t *testing.T) {
	rows := []spendRow{
		{Commodity: "ICs"}, {Commodity: "ICs"}, {Commodity: "Power"},
	}

	groups := analytics.GroupCount(rows, func(r spendRow) string { return r.Commodity })

	assert.Len(t, groups, 2)
	assert.Equal(t, 2.0, groups[0].Value)
	assert.Equal(t, 1.0, groups[1].Value)
}

// TestGroupWeightedAvg 测试分组加权平均
func TestGroupWeightedAvg(t *testing.T) {
	rows := []spendRow{
		{Commodity: "ICs", Amount: 10, Qty: 1},
		{Commodity: "ICs", Amount: 20, Qty: 3},
	}

	groups := analytics.GroupWeightedAvg(rows,
		func(r spendRow) string { return r.Commodity },
		func(r spendRow) float64 { return r.Amount },
		func(r spendRow) float64 { return r.Qty })

	// (10*1 + 20*3) / 4 = 17.5
	assert.InDelta(t, 17.5, groups[0].Value, 1e-9)
}

// TestGroupWeightedAvgZeroWeight 权重和为 0 时结果为 0 而不是 NaN
func TestGroupWeightedAvgZeroWeight(t *testing.T) {
	rows := []spendRow{
		{Commodity: "ICs", Amount: 10, Qty: 0},
		{Commodity: "ICs", Amount: 20, Qty: 0},
	}

	groups := analytics.GroupWeightedAvg(rows,
		func(r spendRow) string { return r.Commodity },
		func(r spendRow) float64 { return r.Amount },
		func(r spendRow) float64 { return r.Qty })

	assert.Equal(t, 0.0, groups[0].Value)
	assert.False(t, math.IsNaN(groups[0].Value))
}

// TestSharesSumToOne 非零总量时比例之和为 1
func TestSharesSumToOne(t *testing.T) {
	shares := analytics.Shares([]float64{245000, 520000, 180000, 95000, 310000})

	var sum float64
	for _, s := range shares {
		sum += s
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

// TestSharesZeroTotal 总量为 0 时所有比例严格为 0
func TestSharesZeroTotal(t *testing.T) {
	shares := analytics.Shares([]float64{0, 0, 0})

	for _, s := range shares {
		assert.Equal(t, 0.0, s)
		assert.False(t, math.IsNaN(s))
		assert.False(t, math.IsInf(s, 0))
	}
}

// TestWithSharesZeroTotal 分组比例在零总量下不产生 NaN
func TestWithSharesZeroTotal(t *testing.T) {
	groups := []analytics.Aggregate{{Key: "a"}, {Key: "b"}}

	out := analytics.WithShares(groups)

	assert.Equal(t, 0.0, out[0].Share)
	assert.Equal(t, 0.0, out[1].Share)
}

// TestWithSharesDoesNotMutateInput 输入切片不被修改
func TestWithSharesDoesNotMutateInput(t *testing.T) {
	groups := []analytics.Aggregate{{Key: "a", Value: 1}, {Key: "b", Value: 3}}

	out := analytics.WithShares(groups)

	assert.Equal(t, 0.0, groups[0].Share)
	assert.InDelta(t, 0.25, out[0].Share, 1e-9)
	assert.InDelta(t, 0.75, out[1].Share, 1e-9)
}

// TestMinMax 测试最小最大值
func TestMinMax(t *testing.T) {
	min, max := analytics.MinMax([]float64{14, 7, 130, 21})
	assert.Equal(t, 7.0, min)
	assert.Equal(t, 130.0, max)

	min, max = analytics.MinMax(nil)
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 0.0, max)
}

// TestAvgEmpty 空输入平均值为 0
func TestAvgEmpty(t *testing.T) {
	assert.Equal(t, 0.0, analytics.Avg(nil))
}
