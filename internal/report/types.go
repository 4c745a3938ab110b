package report

// Type 预置报表类型目录项
type Type struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	UsageCount int    `json:"usage_count"`
	Trending   bool   `json:"trending"`
}

// Types 返回预置报表类型目录,可按部门过滤("" 表示全部)
func Types(department string) []Type {
	if department == "" {
		return reportTypes
	}
	out := make([]Type, 0)
	for _, t := range reportTypes {
		if t.Department == department {
			out = append(out, t)
		}
	}
	return out
}

var reportTypes = []Type{
	{ID: "spend-analysis", Name: "Commodity-wise Spend Analysis", Department: "Purchasing", UsageCount: 342, Trending: true},
	{ID: "bom-breakdown", Name: "BOM & Component-Level Breakdown", Department: "Production", UsageCount: 289, Trending: true},
	{ID: "customer-sales", Name: "Customer-wise Sales (Day/Month/Year)", Department: "Sales", UsageCount: 256},
	{ID: "inventory", Name: "Inventory Status Report", Department: "Production", UsageCount: 198},
	{ID: "iqc-report", Name: "IQC Inspection Report", Department: "Quality", UsageCount: 167},
	{ID: "grn-pos", Name: "GRN & PO Tracking", Department: "Purchasing", UsageCount: 234, Trending: true},
	{ID: "aging-customer", Name: "Aging Analysis - Customer", Department: "Finance", UsageCount: 145},
	{ID: "aging-supplier", Name: "Aging Analysis - Supplier", Department: "Finance", UsageCount: 132},
	{ID: "lead-time-120", Name: "MPNs Exceeding 120-Day Lead Time", Department: "Purchasing", UsageCount: 278, Trending: true},
	{ID: "org-drilldown", Name: "Org/Dept/BOM-wise Drilldown", Department: "Production", UsageCount: 189},
	{ID: "quality-yield", Name: "Quality Yield Report", Department: "Quality", UsageCount: 156},
	{ID: "supplier-scorecard", Name: "Supplier Scorecard", Department: "Purchasing", UsageCount: 211, Trending: true},
}
