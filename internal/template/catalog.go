package template

// ReportTemplate 报表模板目录项
// section 为 dynamic 的模板存在生成式预览,inputs 为静态可下载表单
type ReportTemplate struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Section   string `json:"section"` // inputs, dynamic
	Downloads int    `json:"downloads"`
	Premium   bool   `json:"premium"`
	IsNew     bool   `json:"is_new,omitempty"`
}

// AIPromptTemplate AI 提示词模板目录项
type AIPromptTemplate struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Prompt    string `json:"prompt"`
	Downloads int    `json:"downloads"`
	Section   string `json:"section"` // sourcing, quality, production
}

// BusinessCommTemplate 业务公函模板
// fields 定义了 bodyTemplate 中所有需要替换的 {key}
type BusinessCommTemplate struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Subtitle     string  `json:"subtitle"`
	Section      string  `json:"section"` // vendor, customer, internal
	Fields       []Field `json:"fields"`
	BodyTemplate string  `json:"body_template"`
	Downloads    int     `json:"downloads"`
}

// ReportTemplates 返回报表模板目录,可按 section 过滤("" 表示全部)
func ReportTemplates(section string) []ReportTemplate {
	if section == "" {
		return reportTemplates
	}
	out := make([]ReportTemplate, 0)
	for _, t := range reportTemplates {
		if t.Section == section {
			out = append(out, t)
		}
	}
	return out
}

// PromptTemplates 返回 AI 提示词模板目录,可按 section 过滤("" 表示全部)
func PromptTemplates(section string) []AIPromptTemplate {
	if section == "" {
		return promptTemplates
	}
	out := make([]AIPromptTemplate, 0)
	for _, t := range promptTemplates {
		if t.Section == section {
			out = append(out, t)
		}
	}
	return out
}

// CommTemplates 返回业务公函模板目录,可按 section 过滤("" 表示全部)
func CommTemplates(section string) []BusinessCommTemplate {
	if section == "" {
		return commTemplates
	}
	out := make([]BusinessCommTemplate, 0)
	for _, t := range commTemplates {
		if t.Section == section {
			out = append(out, t)
		}
	}
	return out
}

// CommTemplateByID 按 ID 查找业务公函模板
func CommTemplateByID(id string) (BusinessCommTemplate, bool) {
	for _, t := range commTemplates {
		if t.ID == id {
			return t, true
		}
	}
	return BusinessCommTemplate{}, false
}

var reportTemplates = []ReportTemplate{
	{ID: "rt-1", Title: "Commodity Group Mapping", Subtitle: "Map components to standard commodity groups for spend analysis", Section: "inputs", Downloads: 189},
	{ID: "rt-2", Title: "Standard BOM Input Sheet", Subtitle: "Standardized BOM entry template with validation rules", Section: "inputs", Downloads: 312},
	{ID: "rt-3", Title: "Supplier Line Card", Subtitle: "Supplier capability and product line documentation", Section: "inputs", Downloads: 98},
	{ID: "rt-4", Title: "Material Pricing Model", Subtitle: "Structured material cost breakdown and pricing template", Section: "inputs", Downloads: 67, Premium: true},
	{ID: "rt-5", Title: "Surface Finish Calculator", Subtitle: "Calculate surface finish costs based on specifications", Section: "inputs", Downloads: 45, Premium: true},
	{ID: "rt-6", Title: "Machine Hour Rate Sheet", Subtitle: "Machine hour rate calculation with overhead allocation", Section: "inputs", Downloads: 89, Premium: true},
	{ID: "rt-7", Title: "Multi-level BOM Template", Subtitle: "Multi-level bill of materials with parent-child hierarchy", Section: "inputs", Downloads: 278},
	{ID: "rt-8", Title: "Commodity Spend Tracker", Subtitle: "Track and analyze spend by commodity category over time", Section: "inputs", Downloads: 205},
	{ID: "rt-9", Title: "Vendor Scorecard Template", Subtitle: "Evaluate vendor performance across key metrics", Section: "inputs", Downloads: 167},
	{ID: "rt-10", Title: "Quote Comparison Matrix", Subtitle: "Side-by-side quote comparison for sourcing decisions", Section: "inputs", Downloads: 143},
	{ID: "rt-11", Title: "Component Shortage & Risk Report", Subtitle: "Identify components at risk of shortage with mitigation plans", Section: "dynamic", IsNew: true},
	{ID: "rt-12", Title: "Supplier Scorecard Report", Subtitle: "Dynamic supplier performance report with KPI calculations", Section: "dynamic", IsNew: true},
	{ID: "rt-13", Title: "Spend by Commodity Report", Subtitle: "Automated spend analysis by commodity with trend charts", Section: "dynamic", IsNew: true},
	{ID: "rt-14", Title: "PO Aging & Open PO Tracker", Subtitle: "Track open POs by aging buckets with escalation flags", Section: "dynamic", IsNew: true},
	{ID: "rt-15", Title: "Inventory Turnover Report", Subtitle: "Calculate inventory turnover ratios by commodity and location", Section: "dynamic", IsNew: true},
}

var promptTemplates = []AIPromptTemplate{
	{
		ID:       "ai-1",
		Title:    "Supplier Shortlisting Assistant",
		Subtitle: "Evaluate and rank suppliers for a component based on OTD, IQC pass rate, lead time and cost data",
		Section:  "sourcing",
		Prompt:   "You are a procurement analyst for an EMS company. Based on the supplier data provided below, evaluate and rank the suppliers for [Component Name]. Score each supplier on: OTD % (weight 40%), IQC Pass Rate % (weight 40%), Lead Time vs Committed (weight 20%). Provide a ranked list with scores, key strengths, weaknesses, and a final recommendation. Data: [Paste supplier data here]",
	},
	{
		ID:       "ai-2",
		Title:    "Component Alternate Sourcing",
		Subtitle: "Find approved alternates for a shortage part number with sourcing justification and risk assessment",
		Section:  "sourcing",
		Prompt:   "You are a sourcing engineer for an EMS manufacturer. The following part is currently in shortage: Part Number: [XXX], Description: [XXX], Current Supplier: [XXX], Monthly Requirement: [XXX] units. Suggest 3 alternate approved sources with: supplier name, part cross-reference, lead time, risk level, and qualification steps needed.",
	},
	{
		ID:       "ai-3",
		Title:    "Spend Analysis & Consolidation",
		Subtitle: "Analyse procurement spend data and identify top savings and consolidation opportunities by commodity",
		Section:  "sourcing",
		Prompt:   "You are a procurement manager. Analyse the spend data below and identify: 1) Top 3 commodities where consolidation will yield savings, 2) Suppliers with overlapping scope that can be merged, 3) Estimated savings % from each consolidation action. Data: [Paste spend data here]",
	},
	{
		ID:       "ai-4",
		Title:    "PO Risk Alert Generator",
		Subtitle: "Flag open POs at risk of delay based on supplier history, lead times and current shortages",
		Section:  "sourcing",
		Prompt:   "Review the open PO data below and flag any POs at risk of delay. For each at-risk PO provide: PO number, supplier, part, reason for risk, recommended action, and escalation priority (High/Medium/Low). Data: [Paste open PO data here]",
	},
	{
		ID:       "ai-5",
		Title:    "Supplier Negotiation Brief",
		Subtitle: "Generate a structured negotiation brief for supplier contract renewal using scorecard and spend data",
		Section:  "sourcing",
		Prompt:   "Prepare a negotiation brief for the upcoming contract renewal with [Supplier Name]. Use the scorecard data below. Include: current performance summary, areas for improvement, our negotiation objectives, suggested price targets, and opening/walk-away positions. Data: [Paste supplier scorecard data here]",
	},
	{
		ID:       "ai-6",
		Title:    "Price Benchmarking Analysis",
		Subtitle: "Compare quoted component prices against market benchmarks and suggest negotiation targets",
		Section:  "sourcing",
		Prompt:   "Compare the quoted prices below against typical market rates for these component categories. For each line item identify if the quote is Above Market / At Market / Below Market and suggest a target negotiation price. Data: [Paste quote comparison data here]",
	},
	{
		ID:       "ai-7",
		Title:    "DPPM Root Cause Analysis",
		Subtitle: "Analyse DPPM trend data by customer and identify root causes with recommended 8D corrective actions",
		Section:  "quality",
		Prompt:   "You are a quality engineer at an EMS company. Analyse the DPPM trend data below by customer and product. Identify: 1) Top 3 defect categories driving DPPM, 2) Likely root causes for each, 3) Recommended 8D actions with owner and timeline. Data: [Paste DPPM data here]",
	},
	{
		ID:       "ai-8",
		Title:    "Customer Complaint 8D Draft",
		Subtitle: "Auto-draft a structured 8D problem solving response from defect description and production data",
		Section:  "quality",
		Prompt:   "Draft a formal 8D problem solving report for the following customer complaint. Customer: [XXX], Product: [XXX], Defect Description: [XXX], Quantity Affected: [XXX]. Complete all 8 disciplines with containment actions, root cause, corrective actions, and preventive actions.",
	},
	{
		ID:       "ai-9",
		Title:    "Audit Observation Summary",
		Subtitle: "Summarise ISO/IATF 16949 audit findings and prioritise closure actions by risk level",
		Section:  "quality",
		Prompt:   "Summarise the following ISO/IATF 16949 audit observations. For each finding provide: finding number, clause reference, severity (Major/Minor/OFI), current status, recommended closure action, and target date. Prioritise by risk level. Data: [Paste audit findings here]",
	},
	{
		ID:       "ai-10",
		Title:    "Production Deviation Alert",
		Subtitle: "Analyse daily production data and suggest corrective actions",
		Section:  "production",
		Prompt:   "Analyse the production data below for [Date] and explain the variance from target. Identify: 1) Which lines or shifts underperformed, 2) Root cause of deviation, 3) Immediate corrective actions required today, 4) Escalation needed Y/N. Data: [Paste production data here]",
	},
	{
		ID:       "ai-11",
		Title:    "OEE Improvement Suggestions",
		Subtitle: "Suggest improvement actions based on OEE breakdown",
		Section:  "production",
		Prompt:   "Based on the OEE breakdown data below by production line, identify the top 3 improvement opportunities. For each, provide: current OEE loss %, root cause category (Availability/Performance/Quality), specific action, expected OEE gain %, and implementation timeline. Data: [Paste OEE data here]",
	},
}

var commTemplates = []BusinessCommTemplate{
	{
		ID:        "bc-1",
		Title:     "Vendor Onboarding Letter",
		Subtitle:  "Welcome letter for newly approved vendors with compliance requirements",
		Section:   "vendor",
		Downloads: 234,
		Fields: []Field{
			{Label: "Vendor Name", Key: "vendorName", Placeholder: "Enter vendor company name"},
			{Label: "Contact Person", Key: "contactPerson", Placeholder: "Enter contact person name"},
			{Label: "Date", Key: "date", Placeholder: "Select date", Type: "date"},
			{Label: "Our Company Name", Key: "companyName", Placeholder: "Your company name"},
			{Label: "Compliance Requirements", Key: "compliance", Placeholder: "List specific compliance requirements", Type: "textarea"},
		},
		BodyTemplate: "Dear {contactPerson},\n\nWe are pleased to inform you that {vendorName} has been approved as a registered vendor of {companyName} effective {date}.\n\nAs part of our vendor onboarding process, please ensure compliance with the following requirements:\n{compliance}\n\nPlease submit all required documentation within 15 business days.\n\nWe look forward to a productive partnership.\n\nBest regards,\n{companyName}",
	},
	{
		ID:        "bc-2",
		Title:     "Purchase Order Confirmation",
		Subtitle:  "Formal PO confirmation with terms, delivery schedule, and quality requirements",
		Section:   "vendor",
		Downloads: 189,
		Fields: []Field{
			{Label: "Supplier Name", Key: "supplierName", Placeholder: "Enter supplier name"},
			{Label: "PO Number", Key: "poNumber", Placeholder: "PO-XXXX"},
			{Label: "Delivery Date", Key: "deliveryDate", Placeholder: "Expected delivery date", Type: "date"},
			{Label: "Order Details", Key: "orderDetails", Placeholder: "Part numbers, quantities, unit prices", Type: "textarea"},
		},
		BodyTemplate: "Dear {supplierName},\n\nThis letter confirms Purchase Order {poNumber} placed with your company.\n\nOrder Details:\n{orderDetails}\n\nExpected Delivery Date: {deliveryDate}\n\nPlease acknowledge receipt of this PO within 48 hours and confirm the delivery schedule.\n\nQuality Requirements:\n- All parts must conform to IPC-A-610 Class 2 standards\n- Certificate of Conformance required with each shipment\n- Packing list must reference PO number\n\nBest regards",
	},
	{
		ID:        "bc-3",
		Title:     "Supplier Performance Warning",
		Subtitle:  "Formal warning letter for suppliers with declining quality or delivery metrics",
		Section:   "vendor",
		Downloads: 98,
		Fields: []Field{
			{Label: "Supplier Name", Key: "supplierName", Placeholder: "Supplier company name"},
			{Label: "Issue Description", Key: "issueDescription", Placeholder: "Describe performance issues", Type: "textarea"},
			{Label: "Corrective Action Deadline", Key: "deadline", Placeholder: "Select deadline", Type: "date"},
			{Label: "Metrics Data", Key: "metricsData", Placeholder: "OTD %, Quality %, etc.", Type: "textarea"},
		},
		BodyTemplate: "Dear {supplierName},\n\nWe are writing to formally notify you regarding performance concerns with your recent deliveries.\n\nPerformance Issues:\n{issueDescription}\n\nCurrent Metrics:\n{metricsData}\n\nWe require a formal corrective action plan by {deadline}. Failure to address these issues may result in suspension from our approved vendor list.\n\nPlease schedule a review meeting at your earliest convenience.\n\nRegards",
	},
	{
		ID:        "bc-4",
		Title:     "Customer Quotation Cover Letter",
		Subtitle:  "Professional cover letter to accompany customer quotations with validity and terms",
		Section:   "customer",
		Downloads: 312,
		Fields: []Field{
			{Label: "Customer Name", Key: "customerName", Placeholder: "Customer company name"},
			{Label: "Contact Person", Key: "contactPerson", Placeholder: "Customer contact name"},
			{Label: "Quote Reference", Key: "quoteRef", Placeholder: "QT-XXXX"},
			{Label: "Validity Period", Key: "validity", Placeholder: "e.g., 30 days"},
			{Label: "Project Description", Key: "projectDesc", Placeholder: "Brief project description", Type: "textarea"},
		},
		BodyTemplate: "Dear {contactPerson},\n\nThank you for the opportunity to quote for {customerName}.\n\nPlease find enclosed our quotation {quoteRef} for the following project:\n{projectDesc}\n\nThis quotation is valid for {validity} from the date of issue.\n\nKey Terms:\n- Payment: Net 30 from invoice date\n- Delivery: Ex-works, FOB origin\n- Tooling: Amortized over first production order\n\nWe are confident in our ability to deliver high-quality products and look forward to your favorable response.\n\nBest regards",
	},
	{
		ID:        "bc-5",
		Title:     "Delivery Delay Notification",
		Subtitle:  "Proactive customer notification about shipment delays with revised timeline",
		Section:   "customer",
		Downloads: 156,
		Fields: []Field{
			{Label: "Customer Name", Key: "customerName", Placeholder: "Customer name"},
			{Label: "Order Number", Key: "orderNumber", Placeholder: "SO-XXXX"},
			{Label: "Original Date", Key: "originalDate", Placeholder: "Original delivery date", Type: "date"},
			{Label: "Revised Date", Key: "revisedDate", Placeholder: "New expected date", Type: "date"},
			{Label: "Reason", Key: "reason", Placeholder: "Reason for delay", Type: "textarea"},
		},
		BodyTemplate: "Dear {customerName},\n\nWe regret to inform you that the delivery for Order {orderNumber} originally scheduled for {originalDate} will be delayed.\n\nReason for Delay:\n{reason}\n\nRevised Delivery Date: {revisedDate}\n\nWe sincerely apologize for any inconvenience and are taking all necessary steps to expedite the shipment. Our team is available to discuss alternative solutions.\n\nRegards",
	},
	{
		ID:        "bc-6",
		Title:     "Quality Improvement Report",
		Subtitle:  "Formal quality improvement report for customer audits and compliance reviews",
		Section:   "customer",
		Downloads: 143,
		Fields: []Field{
			{Label: "Customer Name", Key: "customerName", Placeholder: "Customer name"},
			{Label: "Report Period", Key: "reportPeriod", Placeholder: "e.g., Q1 2026"},
			{Label: "Quality Metrics", Key: "qualityMetrics", Placeholder: "DPPM, FPY, OTD data", Type: "textarea"},
			{Label: "Improvement Actions", Key: "actions", Placeholder: "Actions taken and planned", Type: "textarea"},
		},
		BodyTemplate: "Quality Improvement Report\nCustomer: {customerName}\nPeriod: {reportPeriod}\n\nPerformance Summary:\n{qualityMetrics}\n\nImprovement Actions Taken:\n{actions}\n\nWe remain committed to continuous improvement and meeting your quality expectations.\n\nPrepared by Quality Department",
	},
	{
		ID:        "bc-7",
		Title:     "Internal Audit Notice",
		Subtitle:  "Internal memo for upcoming quality or process audit notification",
		Section:   "internal",
		Downloads: 167,
		Fields: []Field{
			{Label: "Department", Key: "department", Placeholder: "Department name"},
			{Label: "Audit Date", Key: "auditDate", Placeholder: "Scheduled date", Type: "date"},
			{Label: "Audit Scope", Key: "auditScope", Placeholder: "Areas to be audited", Type: "textarea"},
			{Label: "Lead Auditor", Key: "leadAuditor", Placeholder: "Auditor name"},
		},
		BodyTemplate: "INTERNAL MEMO\n\nSubject: Scheduled Internal Audit - {department}\n\nThis is to notify that an internal audit has been scheduled as follows:\n\nDate: {auditDate}\nDepartment: {department}\nScope: {auditScope}\nLead Auditor: {leadAuditor}\n\nPlease ensure all relevant documentation is prepared and accessible. Department heads should brief their teams accordingly.\n\nThank you for your cooperation.",
	},
	{
		ID:        "bc-8",
		Title:     "Engineering Change Notice",
		Subtitle:  "Formal ECN document for product or process changes with impact assessment",
		Section:   "internal",
		Downloads: 205,
		Fields: []Field{
			{Label: "ECN Number", Key: "ecnNumber", Placeholder: "ECN-XXXX"},
			{Label: "Product / Part Number", Key: "partNumber", Placeholder: "Affected part number"},
			{Label: "Change Description", Key: "changeDesc", Placeholder: "Describe the change", Type: "textarea"},
			{Label: "Impact Assessment", Key: "impact", Placeholder: "Impact on production, quality, cost", Type: "textarea"},
			{Label: "Effective Date", Key: "effectiveDate", Placeholder: "Implementation date", Type: "date"},
		},
		BodyTemplate: "ENGINEERING CHANGE NOTICE\n\nECN Number: {ecnNumber}\nPart Number: {partNumber}\nEffective Date: {effectiveDate}\n\nDescription of Change:\n{changeDesc}\n\nImpact Assessment:\n{impact}\n\nApproval is required from Engineering, Quality, and Production before implementation.\n\nSubmitted by Engineering Department",
	},
	{
		ID:        "bc-9",
		Title:     "Shift Handover Report",
		Subtitle:  "Standardised shift handover template for production continuity",
		Section:   "internal",
		Downloads: 278,
		Fields: []Field{
			{Label: "Shift", Key: "shift", Placeholder: "e.g., Day Shift / Night Shift"},
			{Label: "Date", Key: "date", Placeholder: "Handover date", Type: "date"},
			{Label: "Production Summary", Key: "productionSummary", Placeholder: "Units produced, lines active, etc.", Type: "textarea"},
			{Label: "Pending Issues", Key: "pendingIssues", Placeholder: "Issues carried forward", Type: "textarea"},
			{Label: "Handed Over By", Key: "handedOverBy", Placeholder: "Name"},
		},
		BodyTemplate: "SHIFT HANDOVER REPORT\n\nDate: {date}\nShift: {shift}\nHanded Over By: {handedOverBy}\n\nProduction Summary:\n{productionSummary}\n\nPending Issues / Carryover:\n{pendingIssues}\n\nPlease address highlighted items at start of next shift.",
	},
	{
		ID:        "bc-10",
		Title:     "Material Shortage Escalation",
		Subtitle:  "Internal escalation memo for critical material shortages impacting production",
		Section:   "internal",
		Downloads: 89,
		Fields: []Field{
			{Label: "Part Number", Key: "partNumber", Placeholder: "Shortage part number"},
			{Label: "Required Quantity", Key: "requiredQty", Placeholder: "Units needed"},
			{Label: "Impact Description", Key: "impactDesc", Placeholder: "Production lines affected, customer impact", Type: "textarea"},
			{Label: "Escalation Level", Key: "escalationLevel", Placeholder: "e.g., Level 1 / Level 2 / Critical"},
		},
		BodyTemplate: "MATERIAL SHORTAGE ESCALATION\n\nPriority: {escalationLevel}\nPart Number: {partNumber}\nRequired Quantity: {requiredQty}\n\nImpact:\n{impactDesc}\n\nImmediate actions required:\n1. Source from alternate suppliers\n2. Check inter-plant inventory\n3. Negotiate expedited delivery\n\nPlease respond within 4 hours with an action plan.",
	},
	{
		ID:        "bc-11",
		Title:     "Vendor Scorecard Summary",
		Subtitle:  "Quarterly vendor performance summary with ratings and action items",
		Section:   "vendor",
		Downloads: 167,
		Fields: []Field{
			{Label: "Vendor Name", Key: "vendorName", Placeholder: "Vendor company name"},
			{Label: "Review Period", Key: "reviewPeriod", Placeholder: "e.g., Q4 2025"},
			{Label: "Performance Data", Key: "performanceData", Placeholder: "OTD, Quality, Cost metrics", Type: "textarea"},
			{Label: "Action Items", Key: "actionItems", Placeholder: "Required improvements", Type: "textarea"},
		},
		BodyTemplate: "VENDOR PERFORMANCE SCORECARD\n\nVendor: {vendorName}\nReview Period: {reviewPeriod}\n\nPerformance Summary:\n{performanceData}\n\nAction Items:\n{actionItems}\n\nNext review scheduled for end of next quarter. Please submit improvement plans within 10 business days.",
	},
}
