package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DigitalBullGO/indicatorems/internal/service"
	"github.com/DigitalBullGO/indicatorems/internal/wizard"
)

// WizardController 流程向导控制器
type WizardController struct {
	wizardService service.WizardService
}

// NewWizardController 创建流程向导控制器
func NewWizardController(wizardService service.WizardService) *WizardController {
	return &WizardController{
		wizardService: wizardService,
	}
}

// wizardError 将向导错误映射为 HTTP 响应
func wizardError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		Error(ctx, http.StatusNotFound, "wizard session not found", err.Error())
	case errors.Is(err, wizard.ErrUnknownFlow):
		Error(ctx, http.StatusNotFound, "wizard flow not found", err.Error())
	case errors.Is(err, wizard.ErrStepIncomplete):
		Error(ctx, http.StatusConflict, "current step not completed", err.Error())
	case errors.Is(err, wizard.ErrStepLocked):
		Error(ctx, http.StatusConflict, "step not yet unlocked", err.Error())
	case errors.Is(err, wizard.ErrAtFirstStep), errors.Is(err, wizard.ErrAtLastStep):
		Error(ctx, http.StatusConflict, "step out of range", err.Error())
	default:
		Error(ctx, http.StatusInternalServerError, "wizard operation failed", err.Error())
	}
}

// StartSession 创建向导会话
// @Summary      创建向导会话
// @Description  按流程 ID 创建向导会话,如 excel-dashboard、sap-bridge
// @Tags         向导
// @Produce      json
// @Param        flow path string true "流程 ID" Enums(excel-dashboard, sap-bridge)
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /wizards/{flow} [post]
func (c *WizardController) StartSession(ctx *gin.Context) {
	view, err := c.wizardService.StartSession(ctx.Param("flow"))
	if err != nil {
		wizardError(ctx, err)
		return
	}

	Success(ctx, view)
}

// GetSession 获取向导会话
// @Summary      获取向导会话
// @Description  按会话 ID 获取当前步骤与解锁状态
// @Tags         向导
// @Produce      json
// @Param        id path string true "会话 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /wizards/sessions/{id} [get]
func (c *WizardController) GetSession(ctx *gin.Context) {
	view, err := c.wizardService.GetSession(ctx.Param("id"))
	if err != nil {
		wizardError(ctx, err)
		return
	}

	Success(ctx, view)
}

// CompleteStep 完成当前步骤
// @Summary      完成当前步骤
// @Description  将当前步骤标记为已完成,完成后才允许前进
// @Tags         向导
// @Produce      json
// @Param        id path string true "会话 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /wizards/sessions/{id}/complete [post]
func (c *WizardController) CompleteStep(ctx *gin.Context) {
	view, err := c.wizardService.CompleteStep(ctx.Param("id"))
	if err != nil {
		wizardError(ctx, err)
		return
	}

	Success(ctx, view)
}

// Advance 前进到下一步
// @Summary      前进到下一步
// @Description  当前步骤已完成时前进,并解锁下一步
// @Tags         向导
// @Produce      json
// @Param        id path string true "会话 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /wizards/sessions/{id}/advance [post]
func (c *WizardController) Advance(ctx *gin.Context) {
	view, err := c.wizardService.Advance(ctx.Param("id"))
	if err != nil {
		wizardError(ctx, err)
		return
	}

	Success(ctx, view)
}

// Back 回退到上一步
// @Summary      回退到上一步
// @Description  回退一步,已解锁的最远步骤保持不变
// @Tags         向导
// @Produce      json
// @Param        id path string true "会话 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /wizards/sessions/{id}/back [post]
func (c *WizardController) Back(ctx *gin.Context) {
	view, err := c.wizardService.Back(ctx.Param("id"))
	if err != nil {
		wizardError(ctx, err)
		return
	}

	Success(ctx, view)
}

// Reset 重置向导会话
// @Summary      重置向导会话
// @Description  回到第一步并重新锁定后续步骤
// @Tags         向导
// @Produce      json
// @Param        id path string true "会话 ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  ErrorResponse
// @Router       /wizards/sessions/{id}/reset [post]
func (c *WizardController) Reset(ctx *gin.Context) {
	view, err := c.wizardService.Reset(ctx.Param("id"))
	if err != nil {
		wizardError(ctx, err)
		return
	}

	Success(ctx, view)
}
