package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/DigitalBullGO/indicatorems/internal/analytics"
	"github.com/DigitalBullGO/indicatorems/internal/model"
	"github.com/DigitalBullGO/indicatorems/internal/repository"
)

// ErrUnknownChart 图表不存在
var ErrUnknownChart = errors.New("unknown chart")

// KPISet 仪表盘 KPI 集合
// 营收、项目数、供应商数和平均交期从数据库计算,其余为运营快照值
type KPISet struct {
	TotalRevenue          float64 `json:"total_revenue"`
	TotalRevenueDisplay   string  `json:"total_revenue_display"`
	ActiveProjects        int64   `json:"active_projects"`
	OpenPOs               int     `json:"open_pos"`
	ComponentShortages    int     `json:"component_shortages"`
	AvgLeadTimeDays       float64 `json:"avg_lead_time_days"`
	OnTimeDeliveryPercent float64 `json:"on_time_delivery_percent"`
	QualityYieldPercent   float64 `json:"quality_yield_percent"`
	SupplierCount         int64   `json:"supplier_count"`
}

// ChartPoint 图表数据点
type ChartPoint struct {
	Name         string  `json:"name"`
	Value        float64 `json:"value"`
	ValueDisplay string  `json:"value_display"`
	Share        float64 `json:"share"`
}

// Chart 仪表盘图表
type Chart struct {
	Name   string       `json:"name"`
	Points []ChartPoint `json:"points"`
}

// DashboardService 仪表盘服务接口
type DashboardService interface {
	GetKPIs() (*KPISet, error)
	GetChart(name string) (*Chart, error)
}

// dashboardService 仪表盘服务实现
type dashboardService struct {
	db           *gorm.DB
	customerRepo repository.CustomerRepository
	projectRepo  repository.ProjectRepository
	bomRepo      repository.BOMRepository
}

// NewDashboardService 创建仪表盘服务
func NewDashboardService(db *gorm.DB) DashboardService {
	return &dashboardService{
		db:           db,
		customerRepo: repository.NewCustomerRepository(db),
		projectRepo:  repository.NewProjectRepository(db),
		bomRepo:      repository.NewBOMRepository(db),
	}
}

// GetKPIs 计算仪表盘 KPI
func (s *dashboardService) GetKPIs() (*KPISet, error) {
	revenue, err := s.customerRepo.SumRevenue()
	if err != nil {
		return nil, fmt.Errorf("failed to sum customer revenue: %w", err)
	}

	projects, err := s.projectRepo.CountActive()
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}

	var supplierCount int64
	if err := s.db.Model(&model.SupplierModel{}).Count(&supplierCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count suppliers: %w", err)
	}

	var components []*model.ComponentModel
	if err := s.db.Find(&components).Error; err != nil {
		return nil, fmt.Errorf("failed to load components: %w", err)
	}
	leadTimes := make([]float64, 0, len(components))
	shortages := 0
	for _, c := range components {
		leadTimes = append(leadTimes, float64(c.LeadTimeDays))
		if c.StockQty < c.MOQ {
			shortages++
		}
	}

	return &KPISet{
		TotalRevenue:          revenue,
		TotalRevenueDisplay:   analytics.Currency(revenue),
		ActiveProjects:        projects,
		OpenPOs:               127,
		ComponentShortages:    shortages,
		AvgLeadTimeDays:       analytics.Avg(leadTimes),
		OnTimeDeliveryPercent: 94.2,
		QualityYieldPercent:   99.1,
		SupplierCount:         supplierCount,
	}, nil
}

// GetChart 按名称返回仪表盘图表
func (s *dashboardService) GetChart(name string) (*Chart, error) {
	switch name {
	case "spend-by-commodity":
		return s.spendByCommodity()
	case "monthly-revenue":
		return staticChart("monthly-revenue", monthlyRevenue), nil
	case "department-spend":
		return staticChart("department-spend", departmentSpend), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownChart, name)
	}
}

// spendByCommodity 按类目汇总 BOM 展开成本,保持 BOM 录入顺序
func (s *dashboardService) spendByCommodity() (*Chart, error) {
	items, err := s.bomRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load bom items: %w", err)
	}

	var components []*model.ComponentModel
	if err := s.db.Find(&components).Error; err != nil {
		return nil, fmt.Errorf("failed to load components: %w", err)
	}
	commodityByMPN := make(map[string]string, len(components))
	for _, c := range components {
		commodityByMPN[c.MPN] = c.Commodity
	}

	groups := analytics.GroupSum(items,
		func(item *model.BOMItemModel) string {
			if commodity, ok := commodityByMPN[item.MPN]; ok {
				return commodity
			}
			return "Other"
		},
		func(item *model.BOMItemModel) float64 { return item.ExtendedCost() },
	)
	groups = analytics.WithShares(groups)

	chart := &Chart{Name: "spend-by-commodity", Points: make([]ChartPoint, 0, len(groups))}
	for _, g := range groups {
		chart.Points = append(chart.Points, ChartPoint{
			Name:         g.Key,
			Value:        g.Value,
			ValueDisplay: analytics.Currency(g.Value),
			Share:        g.Share,
		})
	}
	return chart, nil
}

type staticPoint struct {
	name  string
	value float64
}

var monthlyRevenue = []staticPoint{
	{"Jul", 980000}, {"Aug", 1120000}, {"Sep", 1350000}, {"Oct", 1180000},
	{"Nov", 1450000}, {"Dec", 1290000}, {"Jan", 1580000}, {"Feb", 1680000},
}

var departmentSpend = []staticPoint{
	{"Purchasing", 4120000}, {"Production", 3450000}, {"Quality", 720000},
	{"R&D", 1380000}, {"Sales", 580000},
}

func staticChart(name string, points []staticPoint) *Chart {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.value
	}
	shares := analytics.Shares(values)

	chart := &Chart{Name: name, Points: make([]ChartPoint, 0, len(points))}
	for i, p := range points {
		chart.Points = append(chart.Points, ChartPoint{
			Name:         p.name,
			Value:        p.value,
			ValueDisplay: analytics.Currency(p.value),
			Share:        shares[i],
		})
	}
	return chart
}
