package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DigitalBullGO/indicatorems/internal/service"
)

// CatalogController 主数据目录控制器
type CatalogController struct {
	catalogService service.CatalogService
}

// NewCatalogController 创建主数据目录控制器
func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// parsePage 解析 page 查询参数,非法值回退到第 1 页
func parsePage(ctx *gin.Context) int {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// ListSuppliers 获取供应商列表
// @Summary      获取供应商列表
// @Description  分页获取供应商,支持按品类过滤
// @Tags         主数据
// @Produce      json
// @Param        category query string false "供应商品类"
// @Param        page query int false "页码" default(1)
// @Success      200  {object}  PaginatedResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /catalog/suppliers [get]
func (c *CatalogController) ListSuppliers(ctx *gin.Context) {
	suppliers, bounds, err := c.catalogService.ListSuppliers(ctx.Query("category"), parsePage(ctx))
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to list suppliers", err.Error())
		return
	}

	Paginated(ctx, suppliers, boundsInfo(bounds))
}

// ListComponents 获取元器件列表
// @Summary      获取元器件列表
// @Description  分页获取元器件,支持按物料类别过滤与按 MPN/描述搜索
// @Tags         主数据
// @Produce      json
// @Param        commodity query string false "物料类别"
// @Param        search query string false "搜索关键字,匹配 MPN 或描述"
// @Param        page query int false "页码" default(1)
// @Success      200  {object}  PaginatedResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /catalog/components [get]
func (c *CatalogController) ListComponents(ctx *gin.Context) {
	components, bounds, err := c.catalogService.ListComponents(
		ctx.Query("commodity"), ctx.Query("search"), parsePage(ctx))
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to list components", err.Error())
		return
	}

	Paginated(ctx, components, boundsInfo(bounds))
}

// ListBOM 获取 BOM 明细
// @Summary      获取 BOM 明细
// @Description  分页获取 BOM 行,包含元器件与扩展成本信息
// @Tags         主数据
// @Produce      json
// @Param        page query int false "页码" default(1)
// @Success      200  {object}  PaginatedResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /catalog/bom [get]
func (c *CatalogController) ListBOM(ctx *gin.Context) {
	lines, bounds, err := c.catalogService.ListBOM(parsePage(ctx))
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to list bom", err.Error())
		return
	}

	Paginated(ctx, lines, boundsInfo(bounds))
}

// ListCustomers 获取客户列表
// @Summary      获取客户列表
// @Description  分页获取客户,支持按区域过滤
// @Tags         主数据
// @Produce      json
// @Param        region query string false "客户区域"
// @Param        page query int false "页码" default(1)
// @Success      200  {object}  PaginatedResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /catalog/customers [get]
func (c *CatalogController) ListCustomers(ctx *gin.Context) {
	customers, bounds, err := c.catalogService.ListCustomers(ctx.Query("region"), parsePage(ctx))
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to list customers", err.Error())
		return
	}

	Paginated(ctx, customers, boundsInfo(bounds))
}

// ListProjects 获取项目列表
// @Summary      获取项目列表
// @Description  分页获取项目,支持按状态过滤
// @Tags         主数据
// @Produce      json
// @Param        status query string false "项目状态"
// @Param        page query int false "页码" default(1)
// @Success      200  {object}  PaginatedResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /catalog/projects [get]
func (c *CatalogController) ListProjects(ctx *gin.Context) {
	projects, bounds, err := c.catalogService.ListProjects(ctx.Query("status"), parsePage(ctx))
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to list projects", err.Error())
		return
	}

	Paginated(ctx, projects, boundsInfo(bounds))
}

// BOMSummary 获取 BOM 汇总
// @Summary      获取 BOM 汇总
// @Description  获取 BOM 总成本、行数、交期统计与供应商占比
// @Tags         主数据
// @Produce      json
// @Success      200  {object}  Response
// @Failure      500  {object}  ErrorResponse
// @Router       /bom/summary [get]
func (c *CatalogController) BOMSummary(ctx *gin.Context) {
	summary, err := c.catalogService.BOMSummary()
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to build bom summary", err.Error())
		return
	}

	Success(ctx, summary)
}
