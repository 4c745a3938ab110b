package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DigitalBullGO/indicatorems/internal/service"
)

// TemplateController 业务模板控制器
type TemplateController struct {
	templateService service.TemplateService
}

// NewTemplateController 创建业务模板控制器
func NewTemplateController(templateService service.TemplateService) *TemplateController {
	return &TemplateController{
		templateService: templateService,
	}
}

// RenderTemplateRequest 渲染模板请求
type RenderTemplateRequest struct {
	Values map[string]string `json:"values"`
}

// ExportTemplateRequest 导出模板请求
type ExportTemplateRequest struct {
	Format string            `json:"format"`
	Values map[string]string `json:"values"`
}

// ListCommTemplates 获取业务沟通模板列表
// @Summary      获取业务沟通模板列表
// @Description  获取业务沟通模板,支持按栏目过滤
// @Tags         模板
// @Produce      json
// @Param        section query string false "模板栏目" Enums(vendor, customer, internal)
// @Success      200  {object}  Response
// @Router       /templates/comm [get]
func (c *TemplateController) ListCommTemplates(ctx *gin.Context) {
	templates := c.templateService.ListCommTemplates(ctx.Query("section"))
	Success(ctx, templates)
}

// GetCommTemplate 获取业务沟通模板详情
// @Summary      获取业务沟通模板详情
// @Description  按 ID 获取业务沟通模板,包含字段定义与正文模板
// @Tags         模板
// @Produce      json
// @Param        id path string true "模板 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /templates/comm/{id} [get]
func (c *TemplateController) GetCommTemplate(ctx *gin.Context) {
	tpl, err := c.templateService.GetCommTemplate(ctx.Param("id"))
	if err != nil {
		Error(ctx, http.StatusNotFound, "template not found", err.Error())
		return
	}

	Success(ctx, tpl)
}

// RenderCommTemplate 渲染业务沟通模板
// @Summary      渲染业务沟通模板
// @Description  按字段值渲染模板正文,未提供的字段以 [key] 占位并在 missing_keys 中列出
// @Tags         模板
// @Accept       json
// @Produce      json
// @Param        id path string true "模板 ID"
// @Param        request body RenderTemplateRequest true "字段值"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /templates/comm/{id}/render [post]
func (c *TemplateController) RenderCommTemplate(ctx *gin.Context) {
	var req RenderTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := c.templateService.RenderCommTemplate(ctx.Param("id"), req.Values)
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			Error(ctx, http.StatusNotFound, "template not found", err.Error())
			return
		}
		Error(ctx, http.StatusInternalServerError, "failed to render template", err.Error())
		return
	}

	Success(ctx, result)
}

// ExportCommTemplate 导出业务沟通模板
// @Summary      导出业务沟通模板
// @Description  渲染并下载模板正文。当前仅支持纯文本输出,请求 pdf/docx 时以响应头披露降级
// @Tags         模板
// @Accept       json
// @Produce      text/plain
// @Param        id path string true "模板 ID"
// @Param        request body ExportTemplateRequest true "导出格式与字段值"
// @Success      200  {string}  string "渲染后的正文"
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /templates/comm/{id}/export [post]
func (c *TemplateController) ExportCommTemplate(ctx *gin.Context) {
	var req ExportTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	exp, err := c.templateService.ExportCommTemplate(ctx.Param("id"), req.Format, req.Values)
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			Error(ctx, http.StatusNotFound, "template not found", err.Error())
			return
		}
		Error(ctx, http.StatusInternalServerError, "failed to export template", err.Error())
		return
	}

	ctx.Header("Content-Disposition", "attachment; filename="+strconv.Quote(exp.Filename))
	if exp.Mismatch() {
		ctx.Header("X-Export-Format-Note", exp.FormatNote)
	}
	ctx.Data(http.StatusOK, exp.ContentType, []byte(exp.Content))
}

// ListPromptTemplates 获取 AI 提示词模板列表
// @Summary      获取 AI 提示词模板列表
// @Description  获取 AI 提示词模板,支持按栏目过滤
// @Tags         模板
// @Produce      json
// @Param        section query string false "模板栏目" Enums(sourcing, quality, production)
// @Success      200  {object}  Response
// @Router       /templates/prompts [get]
func (c *TemplateController) ListPromptTemplates(ctx *gin.Context) {
	templates := c.templateService.ListPromptTemplates(ctx.Query("section"))
	Success(ctx, templates)
}
