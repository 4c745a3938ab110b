package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DigitalBullGO/indicatorems/internal/service"
)

// SapController SAP 桥接控制器
type SapController struct {
	sapService service.SapService
}

// NewSapController 创建 SAP 桥接控制器
func NewSapController(sapService service.SapService) *SapController {
	return &SapController{
		sapService: sapService,
	}
}

// ListTables 获取 SAP 表清单
// @Summary      获取 SAP 表清单
// @Description  获取可同步的 SAP 表及其最近同步状态
// @Tags         SAP
// @Produce      json
// @Success      200  {object}  Response
// @Failure      500  {object}  ErrorResponse
// @Router       /sap/tables [get]
func (c *SapController) ListTables(ctx *gin.Context) {
	tables, err := c.sapService.ListTables()
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to list sap tables", err.Error())
		return
	}

	Success(ctx, tables)
}

// StartSync 发起 SAP 表同步
// @Summary      发起 SAP 表同步
// @Description  发起一次模拟同步,进度通过 WebSocket sap-sync 主题与 SSE 推送
// @Tags         SAP
// @Produce      json
// @Param        name path string true "SAP 表名"
// @Success      202  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /sap/tables/{name}/sync [post]
func (c *SapController) StartSync(ctx *gin.Context) {
	progress, err := c.sapService.StartSync(ctx.Request.Context(), ctx.Param("name"))
	if err != nil {
		if errors.Is(err, service.ErrSapTableNotFound) {
			Error(ctx, http.StatusNotFound, "sap table not found", err.Error())
			return
		}
		Error(ctx, http.StatusInternalServerError, "failed to start sync", err.Error())
		return
	}

	ctx.JSON(http.StatusAccepted, Response{
		Code:    0,
		Message: "success",
		Data:    progress,
	})
}

// GetSync 查询同步进度
// @Summary      查询同步进度
// @Description  按同步 ID 查询进度与状态
// @Tags         SAP
// @Produce      json
// @Param        id path string true "同步 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /sap/sync/{id} [get]
func (c *SapController) GetSync(ctx *gin.Context) {
	progress, err := c.sapService.GetSync(ctx.Param("id"))
	if err != nil {
		Error(ctx, http.StatusNotFound, "sync operation not found", err.Error())
		return
	}

	Success(ctx, progress)
}

// CancelSync 取消同步
// @Summary      取消同步
// @Description  取消进行中的同步,已结束的同步取消为幂等操作
// @Tags         SAP
// @Produce      json
// @Param        id path string true "同步 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /sap/sync/{id} [delete]
func (c *SapController) CancelSync(ctx *gin.Context) {
	progress, err := c.sapService.CancelSync(ctx.Param("id"))
	if err != nil {
		Error(ctx, http.StatusNotFound, "sync operation not found", err.Error())
		return
	}

	Success(ctx, progress)
}
