package report

// KPI 预览卡片指标
type KPI struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// MiniTable 预览缩略表格
type MiniTable struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// SeriesPoint 预览图表数据点
type SeriesPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Insight 预览附带的分析结论
type Insight struct {
	Severity    string `json:"severity"` // info, warning
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Preview 报表预览内容
type Preview struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	KPIs     []KPI         `json:"kpis"`
	Table    MiniTable     `json:"table"`
	Chart    string        `json:"chart"` // bar, pie, stacked-bar
	Series   []SeriesPoint `json:"series"`
	Insights []Insight     `json:"insights,omitempty"`
}

// Registry 预览注册表,按报表 ID 做 O(1) 查找
type Registry struct {
	previews map[string]Preview
}

// NewRegistry 创建空注册表
func NewRegistry() *Registry {
	return &Registry{previews: make(map[string]Preview)}
}

// Register 登记一个预览,ID 重复时后者覆盖前者
func (r *Registry) Register(p Preview) {
	r.previews[p.ID] = p
}

// Get 按 ID 查找预览,任何未知 ID 都返回 ok=false,绝不 panic
func (r *Registry) Get(id string) (Preview, bool) {
	p, ok := r.previews[id]
	return p, ok
}

// IDs 返回已登记的预览数量
func (r *Registry) Len() int {
	return len(r.previews)
}
