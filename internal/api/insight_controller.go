package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DigitalBullGO/indicatorems/internal/service"
	"github.com/DigitalBullGO/indicatorems/internal/utils"
)

// InsightController AI 洞察控制器
type InsightController struct {
	insightService service.InsightService
}

// NewInsightController 创建 AI 洞察控制器
func NewInsightController(insightService service.InsightService) *InsightController {
	return &InsightController{
		insightService: insightService,
	}
}

// ChatRequest 洞察对话请求
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Chat 洞察对话
// @Summary      洞察对话
// @Description  提交业务问题,返回模拟分析结果,可能附带图表数据与建议操作
// @Tags         洞察
// @Accept       json
// @Produce      json
// @Param        request body ChatRequest true "问题内容"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /insights/chat [post]
func (c *InsightController) Chat(ctx *gin.Context) {
	var req ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	reply, err := c.insightService.Chat(ctx.Request.Context(), req.Message)
	if err != nil {
		var vErr *utils.ValidationError
		if errors.As(err, &vErr) {
			Error(ctx, http.StatusBadRequest, "invalid message", vErr.Message)
			return
		}
		Error(ctx, http.StatusInternalServerError, "failed to generate insight", err.Error())
		return
	}

	Success(ctx, reply)
}

// Suggestions 获取建议问题
// @Summary      获取建议问题
// @Description  获取洞察面板的示例提问列表
// @Tags         洞察
// @Produce      json
// @Success      200  {object}  Response
// @Router       /insights/suggestions [get]
func (c *InsightController) Suggestions(ctx *gin.Context) {
	Success(ctx, c.insightService.Suggestions())
}
