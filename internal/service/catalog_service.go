package service

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/DigitalBullGO/indicatorems/internal/analytics"
	"github.com/DigitalBullGO/indicatorems/internal/model"
	"github.com/DigitalBullGO/indicatorems/internal/pagination"
	"github.com/DigitalBullGO/indicatorems/internal/repository"
)

// BOMLine BOM 展示行,带展开成本
type BOMLine struct {
	MPN          string  `json:"mpn"`
	Description  string  `json:"description"`
	Qty          int     `json:"qty"`
	UnitCost     float64 `json:"unit_cost"`
	ExtendedCost float64 `json:"extended_cost"`
	Supplier     string  `json:"supplier"`
	LeadTimeDays int     `json:"lead_time_days"`
}

// BOMSupplierShare 按供应商聚合的 BOM 成本占比
type BOMSupplierShare struct {
	Supplier     string  `json:"supplier"`
	Cost         float64 `json:"cost"`
	CostDisplay  string  `json:"cost_display"`
	Share        float64 `json:"share"`
	ShareDisplay string  `json:"share_display"`
}

// BOMSummary BOM 汇总
type BOMSummary struct {
	TotalCost        float64            `json:"total_cost"`
	TotalCostDisplay string             `json:"total_cost_display"`
	LineCount        int                `json:"line_count"`
	TotalQty         int                `json:"total_qty"`
	AvgLeadTimeDays  float64            `json:"avg_lead_time_days"`
	MaxLeadTimeDays  int                `json:"max_lead_time_days"`
	BySupplier       []BOMSupplierShare `json:"by_supplier"`
}

// CatalogService 主数据目录服务接口
type CatalogService interface {
	ListSuppliers(category string, page int) ([]*model.SupplierModel, *pagination.Bounds, error)
	ListComponents(commodity, search string, page int) ([]*model.ComponentModel, *pagination.Bounds, error)
	ListBOM(page int) ([]BOMLine, *pagination.Bounds, error)
	ListCustomers(region string, page int) ([]*model.CustomerModel, *pagination.Bounds, error)
	ListProjects(status string, page int) ([]*model.ProjectModel, *pagination.Bounds, error)
	BOMSummary() (*BOMSummary, error)
}

// catalogService 主数据目录服务实现
type catalogService struct {
	supplierRepo  repository.SupplierRepository
	componentRepo repository.ComponentRepository
	bomRepo       repository.BOMRepository
	customerRepo  repository.CustomerRepository
	projectRepo   repository.ProjectRepository
	pageSize      int
}

// NewCatalogService 创建主数据目录服务
func NewCatalogService(db *gorm.DB, pageSize int) CatalogService {
	if pageSize <= 0 {
		pageSize = 8
	}
	return &catalogService{
		supplierRepo:  repository.NewSupplierRepository(db),
		componentRepo: repository.NewComponentRepository(db),
		bomRepo:       repository.NewBOMRepository(db),
		customerRepo:  repository.NewCustomerRepository(db),
		projectRepo:   repository.NewProjectRepository(db),
		pageSize:      pageSize,
	}
}

// ListSuppliers 分页查询供应商
func (s *catalogService) ListSuppliers(category string, page int) ([]*model.SupplierModel, *pagination.Bounds, error) {
	page = normalizePage(page)
	suppliers, total, err := s.supplierRepo.FindPage(category, page, s.pageSize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	bounds := pagination.NewBounds(page, s.pageSize, total)
	return suppliers, &bounds, nil
}

// ListComponents 分页查询物料
func (s *catalogService) ListComponents(commodity, search string, page int) ([]*model.ComponentModel, *pagination.Bounds, error) {
	page = normalizePage(page)
	components, total, err := s.componentRepo.FindPage(commodity, search, page, s.pageSize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list components: %w", err)
	}
	bounds := pagination.NewBounds(page, s.pageSize, total)
	return components, &bounds, nil
}

// ListBOM 分页查询 BOM 行
func (s *catalogService) ListBOM(page int) ([]BOMLine, *pagination.Bounds, error) {
	page = normalizePage(page)
	items, total, err := s.bomRepo.FindPage(page, s.pageSize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list bom items: %w", err)
	}

	lines := make([]BOMLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, BOMLine{
			MPN:          item.MPN,
			Description:  item.Description,
			Qty:          item.Qty,
			UnitCost:     item.UnitCost,
			ExtendedCost: item.ExtendedCost(),
			Supplier:     item.SupplierName,
			LeadTimeDays: item.LeadTimeDays,
		})
	}
	bounds := pagination.NewBounds(page, s.pageSize, total)
	return lines, &bounds, nil
}

// ListCustomers 分页查询客户
func (s *catalogService) ListCustomers(region string, page int) ([]*model.CustomerModel, *pagination.Bounds, error) {
	page = normalizePage(page)
	customers, total, err := s.customerRepo.FindPage(region, page, s.pageSize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list customers: %w", err)
	}
	bounds := pagination.NewBounds(page, s.pageSize, total)
	return customers, &bounds, nil
}

// ListProjects 分页查询项目
func (s *catalogService) ListProjects(status string, page int) ([]*model.ProjectModel, *pagination.Bounds, error) {
	page = normalizePage(page)
	projects, total, err := s.projectRepo.FindPage(status, page, s.pageSize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list projects: %w", err)
	}
	bounds := pagination.NewBounds(page, s.pageSize, total)
	return projects, &bounds, nil
}

// BOMSummary 汇总 BOM 成本与交期
// 供应商占比按展开成本计算,总成本为零时所有占比为零
func (s *catalogService) BOMSummary() (*BOMSummary, error) {
	items, err := s.bomRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load bom items: %w", err)
	}

	summary := &BOMSummary{LineCount: len(items)}
	leadTimes := make([]float64, 0, len(items))
	for _, item := range items {
		summary.TotalCost += item.ExtendedCost()
		summary.TotalQty += item.Qty
		leadTimes = append(leadTimes, float64(item.LeadTimeDays))
		if item.LeadTimeDays > summary.MaxLeadTimeDays {
			summary.MaxLeadTimeDays = item.LeadTimeDays
		}
	}
	summary.TotalCostDisplay = analytics.Currency(summary.TotalCost)
	summary.AvgLeadTimeDays = analytics.Avg(leadTimes)

	groups := analytics.WithShares(analytics.GroupSum(items,
		func(item *model.BOMItemModel) string { return item.SupplierName },
		func(item *model.BOMItemModel) float64 { return item.ExtendedCost() },
	))
	summary.BySupplier = make([]BOMSupplierShare, 0, len(groups))
	for _, g := range groups {
		summary.BySupplier = append(summary.BySupplier, BOMSupplierShare{
			Supplier:     g.Key,
			Cost:         g.Value,
			CostDisplay:  analytics.Currency(g.Value),
			Share:        g.Share,
			ShareDisplay: analytics.Percent(g.Share),
		})
	}
	return summary, nil
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
