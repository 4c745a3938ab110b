package service

import (
	"github.com/DigitalBullGO/indicatorems/internal/metrics"
	"github.com/DigitalBullGO/indicatorems/internal/pagination"
	"github.com/DigitalBullGO/indicatorems/internal/report"
	"github.com/DigitalBullGO/indicatorems/internal/template"
)

// ReportService 报表目录与预览服务接口
type ReportService interface {
	ListReportTypes(department string, page int) ([]report.Type, *pagination.Bounds, error)
	ListReportTemplates(section string) []template.ReportTemplate
	GetPreview(id string) (report.Preview, bool)
}

// reportService 报表服务实现
// 预览注册表在构造时加载完毕,查询路径无锁只读
type reportService struct {
	registry *report.Registry
	pageSize int
}

// NewReportService 创建报表服务
func NewReportService(pageSize int) ReportService {
	if pageSize <= 0 {
		pageSize = 8
	}
	return &reportService{
		registry: report.DefaultRegistry(),
		pageSize: pageSize,
	}
}

// ListReportTypes 分页返回预置报表类型
func (s *reportService) ListReportTypes(department string, page int) ([]report.Type, *pagination.Bounds, error) {
	page = normalizePage(page)
	all := report.Types(department)
	items := pagination.Page(all, page, s.pageSize)
	bounds := pagination.NewBounds(page, s.pageSize, int64(len(all)))
	return items, &bounds, nil
}

// ListReportTemplates 返回报表模板目录
func (s *reportService) ListReportTemplates(section string) []template.ReportTemplate {
	return template.ReportTemplates(section)
}

// GetPreview 按 ID 返回预览,未知 ID 返回 ok=false
func (s *reportService) GetPreview(id string) (report.Preview, bool) {
	p, ok := s.registry.Get(id)
	if ok {
		metrics.RecordReportPreview(id)
	}
	return p, ok
}
