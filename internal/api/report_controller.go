package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DigitalBullGO/indicatorems/internal/service"
)

// ReportController 报表控制器
type ReportController struct {
	reportService service.ReportService
}

// NewReportController 创建报表控制器
func NewReportController(reportService service.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// ListReportTypes 获取报表类型列表
// @Summary      获取报表类型列表
// @Description  分页获取报表类型,支持按部门过滤
// @Tags         报表
// @Produce      json
// @Param        department query string false "所属部门"
// @Param        page query int false "页码" default(1)
// @Success      200  {object}  PaginatedResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /reports [get]
func (c *ReportController) ListReportTypes(ctx *gin.Context) {
	types, bounds, err := c.reportService.ListReportTypes(ctx.Query("department"), parsePage(ctx))
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to list report types", err.Error())
		return
	}

	Paginated(ctx, types, boundsInfo(bounds))
}

// ListReportTemplates 获取报表模板列表
// @Summary      获取报表模板列表
// @Description  获取报表模板,支持按栏目过滤
// @Tags         报表
// @Produce      json
// @Param        section query string false "模板栏目"
// @Success      200  {object}  Response
// @Router       /reports/templates [get]
func (c *ReportController) ListReportTemplates(ctx *gin.Context) {
	templates := c.reportService.ListReportTemplates(ctx.Query("section"))
	Success(ctx, templates)
}

// GetPreview 获取报表预览
// @Summary      获取报表预览
// @Description  按报表 ID 获取预览数据,包含 KPI、表格、图表与洞察
// @Tags         报表
// @Produce      json
// @Param        id path string true "报表 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /reports/{id}/preview [get]
func (c *ReportController) GetPreview(ctx *gin.Context) {
	id := ctx.Param("id")

	preview, ok := c.reportService.GetPreview(id)
	if !ok {
		Error(ctx, http.StatusNotFound, "report preview not found", "no preview registered for id: "+id)
		return
	}

	Success(ctx, preview)
}
