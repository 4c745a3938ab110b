package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DigitalBullGO/indicatorems/internal/service"
)

// BackupController 备份控制器
type BackupController struct {
	backupService *service.BackupService
}

// NewBackupController 创建备份控制器
func NewBackupController(backupService *service.BackupService) *BackupController {
	return &BackupController{
		backupService: backupService,
	}
}

// Create 创建备份
// @Summary      创建备份
// @Description  导出目录主数据与 SAP 表状态为快照文件
// @Tags         备份
// @Produce      json
// @Success      200  {object}  Response
// @Failure      500  {object}  ErrorResponse
// @Router       /backups [post]
func (c *BackupController) Create(ctx *gin.Context) {
	path, err := c.backupService.CreateBackup(ctx.Request.Context())
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to create backup", err.Error())
		return
	}

	Success(ctx, gin.H{"path": path})
}

// List 列出备份
// @Summary      列出备份
// @Description  列出备份目录下的所有快照文件
// @Tags         备份
// @Produce      json
// @Success      200  {object}  Response
// @Failure      500  {object}  ErrorResponse
// @Router       /backups [get]
func (c *BackupController) List(ctx *gin.Context) {
	backups, err := c.backupService.ListBackups(ctx.Request.Context())
	if err != nil {
		Error(ctx, http.StatusInternalServerError, "failed to list backups", err.Error())
		return
	}

	Success(ctx, backups)
}

// Delete 删除备份
// @Summary      删除备份
// @Description  按文件名删除单个快照文件
// @Tags         备份
// @Produce      json
// @Param        filename path string true "备份文件名"
// @Success      200  {object}  Response
// @Failure      400  {object}  ErrorResponse
// @Router       /backups/{filename} [delete]
func (c *BackupController) Delete(ctx *gin.Context) {
	filename := ctx.Param("filename")
	if err := c.backupService.DeleteBackup(ctx.Request.Context(), filename); err != nil {
		Error(ctx, http.StatusBadRequest, "failed to delete backup", err.Error())
		return
	}

	Success(ctx, gin.H{"deleted": filename})
}
