package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DigitalBullGO/indicatorems/internal/simulate"
)

// SyncProgressSSEHandler SSE 处理器
// 持续推送 SAP 同步进度,同步结束或连接断开时退出
func SyncProgressSSEHandler(controller *SapController) gin.HandlerFunc {
	return func(c *gin.Context) {
		syncID := c.Param("id")
		if syncID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "sync id required"})
			c.Abort()
			return
		}

		// 确认同步操作存在后再升级为事件流
		progress, err := controller.sapService.GetSync(syncID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "sync operation not found"})
			c.Abort()
			return
		}

		// 设置 SSE 响应头
		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		c.Header("X-Accel-Buffering", "no") // 禁用 Nginx 缓冲

		flusher, ok := c.Writer.(http.Flusher)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming not supported"})
			c.Abort()
			return
		}

		// 发送初始连接消息
		initial := map[string]interface{}{
			"type":    "connected",
			"sync_id": syncID,
			"time":    time.Now().Unix(),
		}
		initialData, _ := json.Marshal(initial)
		if err := sendSSEMessage(c.Writer, initialData); err != nil {
			return
		}
		flusher.Flush()

		poll := time.NewTicker(200 * time.Millisecond)
		defer poll.Stop()
		heartbeat := time.NewTicker(30 * time.Second)
		defer heartbeat.Stop()

		lastStep := -1
		for {
			select {
			case <-c.Request.Context().Done():
				return
			case <-heartbeat.C:
				msg := map[string]interface{}{
					"type":    "heartbeat",
					"sync_id": syncID,
					"time":    time.Now().Unix(),
				}
				data, _ := json.Marshal(msg)
				if err := sendSSEMessage(c.Writer, data); err != nil {
					return
				}
				flusher.Flush()
			case <-poll.C:
				progress, err = controller.sapService.GetSync(syncID)
				if err != nil {
					return
				}

				// 仅在进度变化或结束时推送
				if progress.Step == lastStep && progress.Status == simulate.StatusRunning {
					continue
				}
				lastStep = progress.Step

				msg := map[string]interface{}{
					"type":     "progress",
					"sync_id":  syncID,
					"progress": progress,
					"time":     time.Now().Unix(),
				}
				data, _ := json.Marshal(msg)
				if err := sendSSEMessage(c.Writer, data); err != nil {
					return
				}
				flusher.Flush()

				if progress.Status != simulate.StatusRunning {
					return
				}
			}
		}
	}
}

// sendSSEMessage 发送 SSE 消息
func sendSSEMessage(w io.Writer, data []byte) error {
	// SSE 格式: data: <json>\n\n
	_, err := fmt.Fprintf(w, "data: %s\n\n", string(data))
	return err
}
