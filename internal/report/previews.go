package report

// DefaultRegistry 返回加载了全部内置报表预览的注册表
// 标准报表预览按报表 ID 登记,生成式模板预览按模板 ID(rt-*)登记
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, p := range builtinPreviews {
		r.Register(p)
	}
	for _, p := range templatePreviews {
		r.Register(p)
	}
	return r
}

var builtinPreviews = []Preview{
	{
		ID:    "spend-analysis",
		Title: "Spend Analysis",
		KPIs: []KPI{
			{Value: "$142.5M", Label: "Total Spend"},
			{Value: "1,420", Label: "Suppliers"},
			{Value: "73%", Label: "Direct Spend"},
		},
		Table: MiniTable{
			Headers: []string{"Spend Type", "Amount", "% of Total"},
			Rows: [][]string{
				{"Direct Materials", "$104.0M", "73%"},
				{"Mfg Opex", "$24.2M", "17%"},
				{"Indirect", "$14.3M", "10%"},
			},
		},
		Chart: "pie",
		Series: []SeriesPoint{
			{Name: "Passives", Value: 245000},
			{Name: "ICs", Value: 520000},
			{Name: "Power", Value: 180000},
			{Name: "Connectors", Value: 95000},
			{Name: "PCBs", Value: 310000},
		},
		Insights: []Insight{
			{Severity: "warning", Title: "Maverick Spend Detected", Description: "$3.2M in off-contract purchases across 14 suppliers"},
			{Severity: "info", Title: "Consolidation Opportunity", Description: "5 suppliers for same commodity, potential 12% savings"},
		},
	},
	{
		ID:    "bom-breakdown",
		Title: "BOM Cost Breakdown",
		KPIs: []KPI{
			{Value: "$8.4M", Label: "Total BOM Cost"},
			{Value: "3,842", Label: "Unique MPNs"},
			{Value: "28 days", Label: "Avg Lead Time"},
		},
		Table: MiniTable{
			Headers: []string{"Component", "Cost", "% of BOM"},
			Rows: [][]string{
				{"ICs / Semiconductors", "$3.53M", "42%"},
				{"Passive Components", "$2.35M", "28%"},
				{"Connectors", "$1.26M", "15%"},
				{"PCBs / Substrates", "$0.84M", "10%"},
			},
		},
		Chart: "bar",
		Series: []SeriesPoint{
			{Name: "ICs", Value: 42},
			{Name: "Passives", Value: 28},
			{Name: "Connectors", Value: 15},
			{Name: "PCBs", Value: 10},
			{Name: "Power", Value: 5},
		},
	},
	{
		ID:    "supplier-scorecard",
		Title: "Supplier Scorecard",
		KPIs: []KPI{
			{Value: "93.3%", Label: "Avg OTD"},
			{Value: "99.1%", Label: "Avg Quality"},
			{Value: "4", Label: "Evaluated"},
		},
		Table: MiniTable{
			Headers: []string{"Supplier", "OTD%", "Quality%", "Lead Time", "Rating"},
			Rows: [][]string{
				{"Mouser", "96%", "99.2%", "12d", "A"},
				{"Digi-Key", "98%", "99.5%", "8d", "A+"},
				{"Arrow", "91%", "98.8%", "18d", "B+"},
				{"Würth", "88%", "99%", "22d", "B"},
			},
		},
		Chart: "bar",
		Series: []SeriesPoint{
			{Name: "Mouser", Value: 96},
			{Name: "Digi-Key", Value: 98},
			{Name: "Arrow", Value: 91},
			{Name: "Würth", Value: 88},
		},
	},
	{
		ID:    "lead-time-120",
		Title: "Lead Time Over 120 Days",
		KPIs: []KPI{
			{Value: "4", Label: "Parts >120d"},
			{Value: "180 days", Label: "Longest Lead"},
			{Value: "28 days", Label: "Avg Excess"},
		},
		Table: MiniTable{
			Headers: []string{"MPN", "Supplier", "Lead Time", "Risk"},
			Rows: [][]string{
				{"TUSB320", "TI", "180d", "Critical"},
				{"STM32F4", "STMicro", "156d", "High"},
				{"LM358", "TI", "132d", "Medium"},
				{"SN74LVC", "Nexperia", "125d", "Medium"},
			},
		},
		Chart: "bar",
		Series: []SeriesPoint{
			{Name: "TUSB320", Value: 180},
			{Name: "STM32F4", Value: 156},
			{Name: "LM358", Value: 132},
			{Name: "SN74LVC", Value: 125},
		},
	},
	{
		ID:    "inventory",
		Title: "Inventory Snapshot",
		KPIs: []KPI{
			{Value: "600.9K", Label: "Total Units"},
			{Value: "$6.4M", Label: "Total Value"},
			{Value: "3", Label: "Low Stock"},
		},
		Table: MiniTable{
			Headers: []string{"Commodity", "Units", "Value", "Turnover"},
			Rows: [][]string{
				{"Passives", "520,000", "$1.2M", "4.2x"},
				{"ICs", "48,400", "$3.9M", "2.8x"},
				{"Power", "20,500", "$0.9M", "3.1x"},
				{"Connectors", "12,000", "$0.4M", "5.6x"},
			},
		},
		Chart: "bar",
		Series: []SeriesPoint{
			{Name: "Passives", Value: 1240000},
			{Name: "ICs", Value: 3860000},
			{Name: "Power", Value: 890000},
			{Name: "Connectors", Value: 420000},
		},
	},
	{
		ID:    "grn-pos",
		Title: "GRN vs Open POs",
		KPIs: []KPI{
			{Value: "247", Label: "Total POs"},
			{Value: "206", Label: "Received"},
			{Value: "41", Label: "Pending"},
		},
		Table: MiniTable{
			Headers: []string{"Month", "Received", "Pending", "Variance"},
			Rows: [][]string{
				{"Jan", "45", "12", "+33"},
				{"Feb", "52", "8", "+44"},
				{"Mar", "61", "15", "+46"},
				{"Apr", "48", "6", "+42"},
			},
		},
		Chart: "stacked-bar",
		Series: []SeriesPoint{
			{Name: "Jan", Value: 45},
			{Name: "Feb", Value: 52},
			{Name: "Mar", Value: 61},
			{Name: "Apr", Value: 48},
		},
	},
	{
		ID:    "quality-yield",
		Title: "Quality Yield by Line",
		KPIs: []KPI{
			{Value: "98.8%", Label: "Avg Yield"},
			{Value: "Line C", Label: "Best Line"},
			{Value: "1", Label: "Below Target"},
		},
		Table: MiniTable{
			Headers: []string{"Line", "Yield%", "Defect%", "Status"},
			Rows: [][]string{
				{"Line A", "99.2%", "0.8%", "Pass"},
				{"Line B", "98.7%", "1.3%", "Pass"},
				{"Line C", "99.5%", "0.5%", "Pass"},
				{"Line D", "97.8%", "2.2%", "Watch"},
			},
		},
		Chart: "bar",
		Series: []SeriesPoint{
			{Name: "Line A", Value: 99.2},
			{Name: "Line B", Value: 98.7},
			{Name: "Line C", Value: 99.5},
			{Name: "Line D", Value: 97.8},
		},
	},
	{
		ID:    "aging-customer",
		Title: "Customer Receivables Aging",
		KPIs: []KPI{
			{Value: "$5.4M", Label: "Total Outstanding"},
			{Value: "$640K", Label: ">90d Amount"},
			{Value: "88%", Label: "Collection Rate"},
		},
		Table: MiniTable{
			Headers: []string{"Bucket", "Count", "Amount", "% Total"},
			Rows: [][]string{
				{"0-30d", "145", "$2.5M", "45%"},
				{"31-60d", "82", "$1.5M", "28%"},
				{"61-90d", "38", "$0.8M", "15%"},
				{"90+d", "21", "$0.6M", "12%"},
			},
		},
		Chart: "bar",
		Series: []SeriesPoint{
			{Name: "0-30d", Value: 2450000},
			{Name: "31-60d", Value: 1520000},
			{Name: "61-90d", Value: 815000},
			{Name: "90+d", Value: 640000},
		},
	},
	{
		ID:    "aging-supplier",
		Title: "Supplier Payables Aging",
		KPIs: []KPI{
			{Value: "$3.6M", Label: "Total Payables"},
			{Value: "$310K", Label: "Overdue"},
			{Value: "94%", Label: "On-Time Pay %"},
		},
		Table: MiniTable{
			Headers: []string{"Bucket", "Count", "Amount"},
			Rows: [][]string{
				{"0-30d", "98", "$1.9M"},
				{"31-60d", "45", "$0.9M"},
				{"61-90d", "22", "$0.5M"},
				{"90+d", "11", "$0.3M"},
			},
		},
		Chart: "bar",
		Series: []SeriesPoint{
			{Name: "0-30d", Value: 1850000},
			{Name: "31-60d", Value: 920000},
			{Name: "61-90d", Value: 480000},
			{Name: "90+d", Value: 310000},
		},
	},
	{
		ID:    "customer-sales",
		Title: "Customer Sales by Region",
		KPIs: []KPI{
			{Value: "$14.8M", Label: "Total Revenue"},
			{Value: "EMEA", Label: "Top Region"},
			{Value: "597", Label: "Active Customers"},
		},
		Table: MiniTable{
			Headers: []string{"Region", "Revenue", "Orders", "Avg Order"},
			Rows: [][]string{
				{"EMEA", "$7.8M", "312", "$25.1K"},
				{"Americas", "$5.1M", "198", "$25.6K"},
				{"APAC", "$1.9M", "87", "$21.5K"},
			},
		},
		Chart: "bar",
		Series: []SeriesPoint{
			{Name: "EMEA", Value: 7840000},
			{Name: "Americas", Value: 5070000},
			{Name: "APAC", Value: 1870000},
		},
	},
	{
		ID:    "org-drilldown",
		Title: "Org Budget Drilldown",
		KPIs: []KPI{
			{Value: "4", Label: "Departments"},
			{Value: "$17.5M", Label: "Total Spend"},
			{Value: "Production", Label: "Largest Dept"},
		},
		Table: MiniTable{
			Headers: []string{"Department", "Budget ($K)", "Actual ($K)", "Variance"},
			Rows: [][]string{
				{"Engineering", "$4200", "$3850", "+$350"},
				{"Production", "$8700", "$9100", "-$400"},
				{"Procurement", "$3100", "$2950", "+$150"},
				{"Quality", "$1500", "$1480", "+$20"},
			},
		},
		Chart: "bar",
		Series: []SeriesPoint{
			{Name: "Engineering", Value: 3850},
			{Name: "Production", Value: 9100},
			{Name: "Procurement", Value: 2950},
			{Name: "Quality", Value: 1480},
		},
	},
	{
		ID:    "iqc-report",
		Title: "IQC Pass Rate Report",
		KPIs: []KPI{
			{Value: "931", Label: "Total Lots"},
			{Value: "98.6%", Label: "Pass Rate"},
			{Value: "50", Label: "Rejections"},
		},
		Table: MiniTable{
			Headers: []string{"Line", "Pass Rate", "Lots", "Defects"},
			Rows: [][]string{
				{"Line 1", "98.5%", "245", "12"},
				{"Line 2", "99.1%", "198", "6"},
				{"Line 3", "97.2%", "312", "28"},
				{"Line 4", "99.4%", "176", "4"},
			},
		},
		Chart: "bar",
		Series: []SeriesPoint{
			{Name: "Line 1", Value: 98.5},
			{Name: "Line 2", Value: 99.1},
			{Name: "Line 3", Value: 97.2},
			{Name: "Line 4", Value: 99.4},
		},
	},
}

var templatePreviews = []Preview{
	{
		ID:    "rt-11",
		Title: "Component Shortage & Risk Report",
		KPIs: []KPI{
			{Value: "1,247", Label: "Total Parts Tracked"},
			{Value: "23", Label: "Critical Shortages"},
			{Value: "58", Label: "Watch List"},
		},
		Table: MiniTable{
			Headers: []string{"Part Number", "Description", "Supplier", "Stock Qty", "Monthly Usage", "Weeks of Supply", "Risk Level"},
			Rows: [][]string{
				{"CAP-100UF-16V", "100uF 16V MLCC", "Yageo", "2,400", "8,000", "1.2", "Critical"},
				{"RES-10K-0402", "10K 0402 Resistor", "Samsung", "45,000", "12,000", "15.0", "Safe"},
				{"IC-STM32F4", "MCU ARM Cortex-M4", "ST Micro", "800", "2,500", "1.3", "Critical"},
				{"CON-USB-C", "USB Type-C Connector", "Molex", "5,200", "3,000", "6.9", "Watch"},
			},
		},
		Chart: "table",
	},
	{
		ID:    "rt-12",
		Title: "Supplier Scorecard Report",
		KPIs: []KPI{
			{Value: "34", Label: "Suppliers Evaluated"},
			{Value: "93.1%", Label: "Avg OTD"},
			{Value: "284", Label: "Avg Quality PPM"},
		},
		Table: MiniTable{
			Headers: []string{"Supplier", "OTD %", "Quality PPM", "Cost Variance", "Lead Time (Days)", "Overall Score", "Rating"},
			Rows: [][]string{
				{"Yageo Corp", "94.2%", "320", "-2.1%", "21", "87/100", "A"},
				{"Samsung Electro", "98.5%", "85", "+1.4%", "14", "94/100", "A+"},
				{"Molex Inc", "88.1%", "520", "+3.8%", "28", "72/100", "B"},
				{"Amphenol", "91.7%", "210", "0.0%", "18", "83/100", "A"},
			},
		},
		Chart: "table",
	},
	{
		ID:    "rt-13",
		Title: "Spend by Commodity Report",
		KPIs: []KPI{
			{Value: "$8.6M", Label: "Total Annual Spend"},
			{Value: "9", Label: "Commodity Groups"},
			{Value: "42", Label: "Active Suppliers"},
		},
		Table: MiniTable{
			Headers: []string{"Commodity", "Total Spend", "% of Total", "# Suppliers", "Top Supplier", "YoY Change"},
			Rows: [][]string{
				{"Passive Components", "$2.4M", "28%", "8", "Yageo", "+5.2%"},
				{"Semiconductors/ICs", "$3.1M", "36%", "12", "ST Micro", "+12.8%"},
				{"Connectors", "$1.2M", "14%", "5", "Molex", "-1.3%"},
				{"PCB & Substrates", "$1.0M", "12%", "3", "AT&S", "+3.7%"},
			},
		},
		Chart: "table",
	},
	{
		ID:    "rt-14",
		Title: "PO Aging & Open PO Tracker",
		KPIs: []KPI{
			{Value: "187", Label: "Open POs"},
			{Value: "14", Label: "Overdue"},
			{Value: "38", Label: "Avg Days Open"},
		},
		Table: MiniTable{
			Headers: []string{"PO Number", "Supplier", "Part", "PO Date", "Due Date", "Days Open", "Aging Bucket", "Status"},
			Rows: [][]string{
				{"PO-8842", "Yageo", "CAP-100UF", "2026-01-10", "2026-02-10", "46", "30-60 Days", "At Risk"},
				{"PO-8901", "ST Micro", "IC-STM32", "2026-01-25", "2026-03-25", "31", "30-60 Days", "On Track"},
				{"PO-8756", "Molex", "CON-USB-C", "2025-12-15", "2026-01-30", "72", "60-90 Days", "Overdue"},
				{"PO-9012", "Samsung", "RES-10K", "2026-02-01", "2026-02-28", "25", "0-30 Days", "On Track"},
			},
		},
		Chart: "table",
	},
	{
		ID:    "rt-15",
		Title: "Inventory Turnover Report",
		KPIs: []KPI{
			{Value: "5.4x", Label: "Overall Turnover"},
			{Value: "$1.9M", Label: "Total Inventory"},
			{Value: "67", Label: "Days of Supply"},
		},
		Table: MiniTable{
			Headers: []string{"Commodity", "Avg Inventory ($)", "COGS ($)", "Turnover Ratio", "Days of Inventory", "Target", "Status"},
			Rows: [][]string{
				{"Passives", "$420K", "$2.4M", "5.7x", "64", "8.0x", "Below Target"},
				{"Semiconductors", "$680K", "$3.1M", "4.6x", "79", "6.0x", "Below Target"},
				{"Connectors", "$180K", "$1.2M", "6.7x", "54", "6.0x", "On Target"},
				{"PCBs", "$150K", "$1.0M", "6.7x", "54", "7.0x", "Below Target"},
			},
		},
		Chart: "table",
	},
}
