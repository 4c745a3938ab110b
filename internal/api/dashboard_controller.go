package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DigitalBullGO/indicatorems/internal/service"
)

// DashboardController 仪表盘控制器
type DashboardController struct {
	dashboardService service.DashboardService
}

// NewDashboardController 创建仪表盘控制器
func NewDashboardController(dashboardService service.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetKPIs 获取仪表盘 KPI
// @Summary      获取仪表盘 KPI
// @Description  获取经营驾驶舱核心指标:营收、项目数、供应商数、平均交期等
// @Tags         仪表盘
// @Produce      json
// @Success      200  {object}  Response
// @Failure      500  {object}  ErrorResponse
// @Router       /dashboard/kpis [get]
func (c *DashboardController) GetKPIs(ctx *gin.Context) {
	kpis, err := c.dashboardService.GetKPIs()
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to compute kpis", err.Error())
		return
	}

	Success(ctx, kpis)
}

// GetChart 获取仪表盘图表
// @Summary      获取仪表盘图表
// @Description  按名称获取图表数据,如 spend-by-commodity、monthly-revenue
// @Tags         仪表盘
// @Produce      json
// @Param        chart path string true "图表名称"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /dashboard/charts/{chart} [get]
func (c *DashboardController) GetChart(ctx *gin.Context) {
	name := ctx.Param("chart")

	chart, err := c.dashboardService.GetChart(name)
	if err != nil {
		if errors.Is(err, service.ErrUnknownChart) {
			Error(ctx, http.StatusNotFound, "chart not found", err.Error())
			return
		}
		Error(ctx, http.StatusInternalServerError, "failed to build chart", err.Error())
		return
	}

	Success(ctx, chart)
}
