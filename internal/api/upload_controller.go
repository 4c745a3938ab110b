package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DigitalBullGO/indicatorems/internal/service"
)

// UploadController 上传配额控制器
type UploadController struct {
	uploadService service.UploadService
}

// NewUploadController 创建上传配额控制器
func NewUploadController(uploadService service.UploadService) *UploadController {
	return &UploadController{
		uploadService: uploadService,
	}
}

// UploadRequest 上传登记请求
type UploadRequest struct {
	Filename string `json:"filename" binding:"required"`
	Size     int64  `json:"size"`
}

// GetQuota 获取今日上传配额
// @Summary      获取今日上传配额
// @Description  获取每日上传上限、已用次数与剩余次数
// @Tags         上传
// @Produce      json
// @Success      200  {object}  Response
// @Router       /uploads/quota [get]
func (c *UploadController) GetQuota(ctx *gin.Context) {
	Success(ctx, c.uploadService.GetQuota())
}

// Upload 登记一次上传
// @Summary      登记一次上传
// @Description  校验文件名与每日配额后登记上传,配额用尽返回 429
// @Tags         上传
// @Accept       json
// @Produce      json
// @Param        request body UploadRequest true "文件信息"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Router       /uploads [post]
func (c *UploadController) Upload(ctx *gin.Context) {
	var req UploadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	receipt, err := c.uploadService.Upload(req.Filename, req.Size)
	if err != nil {
		if errors.Is(err, service.ErrQuotaExceeded) {
			Error(ctx, http.StatusTooManyRequests, "Daily upload limit reached. Try again tomorrow.", err.Error())
			return
		}
		if errors.Is(err, service.ErrInvalidFilename) {
			Error(ctx, http.StatusBadRequest, "invalid filename", err.Error())
			return
		}
		Error(ctx, http.StatusInternalServerError, "failed to record upload", err.Error())
		return
	}

	Success(ctx, receipt)
}
