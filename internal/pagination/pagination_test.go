package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DigitalBullGO/indicatorems/internal/pagination"
)

// TestTotalPages 测试总页数计算
func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, pagination.TotalPages(8, 8))
	assert.Equal(t, 2, pagination.TotalPages(9, 8))
	assert.Equal(t, 2, pagination.TotalPages(15, 8))
	assert.Equal(t, 2, pagination.TotalPages(16, 8))
	assert.Equal(t, 3, pagination.TotalPages(17, 8))
	// 空序列按 1 页处理,保证 UI 始终有一个空态页
	assert.Equal(t, 1, pagination.TotalPages(0, 8))
}

// TestPageSlicing 测试分页切片
func TestPageSlicing(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	assert.Equal(t, []int{1, 2, 3, 4}, pagination.Page(items, 1, 4))
	assert.Equal(t, []int{5, 6, 7, 8}, pagination.Page(items, 2, 4))
	// 最后一页返回 1 到 pageSize 个元素
	assert.Equal(t, []int{9, 10}, pagination.Page(items, 3, 4))
}

// TestPageOutOfRange 越界页码返回空切片而不是报错
func TestPageOutOfRange(t *testing.T) {
	items := []int{1, 2, 3}

	assert.Empty(t, pagination.Page(items, 0, 4))
	assert.Empty(t, pagination.Page(items, 5, 4))
	assert.Empty(t, pagination.Page[int](nil, 1, 4))
}

// TestPageEmptySequence 空序列第一页返回空页,不报错
func TestPageEmptySequence(t *testing.T) {
	page := pagination.Page([]string{}, 1, 8)
	assert.NotNil(t, page)
	assert.Empty(t, page)
}

// TestBoundsNavigation 分页边界暴露导航状态,由上层禁用按钮
func TestBoundsNavigation(t *testing.T) {
	b := pagination.NewBounds(1, 8, 20)
	assert.Equal(t, 3, b.TotalPages)
	assert.False(t, b.HasPrev)
	assert.True(t, b.HasNext)

	b = pagination.NewBounds(3, 8, 20)
	assert.True(t, b.HasPrev)
	assert.False(t, b.HasNext)

	// 空数据集: 1 页,前后都不可翻
	b = pagination.NewBounds(1, 8, 0)
	assert.Equal(t, 1, b.TotalPages)
	assert.False(t, b.HasPrev)
	assert.False(t, b.HasNext)
}
