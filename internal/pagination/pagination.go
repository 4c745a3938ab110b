package pagination

// Bounds 分页导航边界
// 上层依据 HasPrev/HasNext 禁用翻页控件,而不是在计算中静默截断页码
type Bounds struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
}

// TotalPages 计算总页数
// 空序列按 1 页处理,便于 UI 始终渲染一个空态页
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	if total <= 0 {
		return 1
	}
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return pages
}

// NewBounds 构建分页边界
func NewBounds(page, pageSize int, total int64) Bounds {
	totalPages := TotalPages(total, pageSize)
	return Bounds{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}

// Page 返回第 page 页的切片(1 起始页码)
// 越界页码返回空切片,不报错
func Page[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize <= 0 {
		return []T{}
	}

	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}

	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}
