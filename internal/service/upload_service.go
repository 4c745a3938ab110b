package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DigitalBullGO/indicatorems/internal/metrics"
	"github.com/DigitalBullGO/indicatorems/internal/uploadlimit"
	"github.com/DigitalBullGO/indicatorems/internal/websocket"
)

var (
	// ErrQuotaExceeded 今日上传配额已用完
	ErrQuotaExceeded = errors.New("daily upload quota exceeded")
	// ErrInvalidFilename 文件名不合法
	ErrInvalidFilename = errors.New("invalid filename")
)

// 允许上传的扩展名
var allowedExtensions = map[string]bool{
	".xlsx": true,
	".xls":  true,
	".csv":  true,
}

// Quota 上传配额信息
type Quota struct {
	MaxPerDay int `json:"max_per_day"`
	Remaining int `json:"remaining"`
	Used      int `json:"used"`
}

// UploadReceipt 上传回执
type UploadReceipt struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
	Remaining  int       `json:"remaining"`
}

// UploadService 上传服务接口
type UploadService interface {
	GetQuota() Quota
	Upload(filename string, size int64) (*UploadReceipt, error)
}

// uploadService 上传服务实现
type uploadService struct {
	limiter *uploadlimit.Limiter
	hub     *websocket.Hub
}

// NewUploadService 创建上传服务
func NewUploadService(limiter *uploadlimit.Limiter, hub *websocket.Hub) UploadService {
	return &uploadService{limiter: limiter, hub: hub}
}

// GetQuota 返回今日上传配额
func (s *uploadService) GetQuota() Quota {
	remaining := s.limiter.RemainingToday()
	return Quota{
		MaxPerDay: s.limiter.MaxPerDay(),
		Remaining: remaining,
		Used:      s.limiter.MaxPerDay() - remaining,
	}
}

// Upload 登记一次上传并广播事件
// 文件内容不落盘,只做配额记账和事件通知
func (s *uploadService) Upload(filename string, size int64) (*UploadReceipt, error) {
	if err := validateFilename(filename); err != nil {
		return nil, err
	}
	if !s.limiter.CanUpload() {
		metrics.RecordUploadRejected()
		return nil, ErrQuotaExceeded
	}

	s.limiter.RecordUpload()
	metrics.RecordUpload()

	receipt := &UploadReceipt{
		ID:         uuid.New().String(),
		Filename:   filename,
		Size:       size,
		UploadedAt: time.Now(),
		Remaining:  s.limiter.RemainingToday(),
	}
	if s.hub != nil {
		s.hub.BroadcastEvent(websocket.TopicUploads, "upload.recorded", receipt)
	}
	return receipt, nil
}

func validateFilename(filename string) error {
	filename = strings.TrimSpace(filename)
	if filename == "" || strings.ContainsAny(filename, "/\\") {
		return ErrInvalidFilename
	}
	dot := strings.LastIndex(filename, ".")
	if dot < 0 || !allowedExtensions[strings.ToLower(filename[dot:])] {
		return ErrInvalidFilename
	}
	return nil
}
