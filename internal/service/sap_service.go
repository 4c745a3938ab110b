package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/DigitalBullGO/indicatorems/internal/metrics"
	"github.com/DigitalBullGO/indicatorems/internal/model"
	"github.com/DigitalBullGO/indicatorems/internal/repository"
	"github.com/DigitalBullGO/indicatorems/internal/simulate"
	"github.com/DigitalBullGO/indicatorems/internal/utils"
	"github.com/DigitalBullGO/indicatorems/internal/websocket"
)

var (
	// ErrSapTableNotFound SAP 表不存在
	ErrSapTableNotFound = errors.New("sap table not found")
	// ErrSyncNotFound 同步操作不存在
	ErrSyncNotFound = errors.New("sync operation not found")
)

// 模拟同步的进度步数
const syncSteps = 10

// SapService SAP 桥接服务接口
// 同步是模拟的,只推进进度并刷新表描述符,不访问真实 SAP
type SapService interface {
	ListTables() ([]*model.SapTableModel, error)
	StartSync(ctx context.Context, tableName string) (simulate.Progress, error)
	GetSync(id string) (simulate.Progress, error)
	CancelSync(id string) (simulate.Progress, error)
}

// sapService SAP 桥接服务实现
type sapService struct {
	repo         repository.SapTableRepository
	hub          *websocket.Hub
	syncDuration time.Duration
	registry     *simulate.Registry
}

// NewSapService 创建 SAP 桥接服务
func NewSapService(db *gorm.DB, hub *websocket.Hub, syncDuration time.Duration) SapService {
	if syncDuration <= 0 {
		syncDuration = 2 * time.Second
	}
	return &sapService{
		repo:         repository.NewSapTableRepository(db),
		hub:          hub,
		syncDuration: syncDuration,
		registry:     simulate.NewRegistry(),
	}
}

// ListTables 返回所有表描述符
func (s *sapService) ListTables() ([]*model.SapTableModel, error) {
	tables, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list sap tables: %w", err)
	}
	return tables, nil
}

// StartSync 启动一次模拟同步
// 同一张表允许并发同步,每次同步是独立的操作
func (s *sapService) StartSync(ctx context.Context, tableName string) (simulate.Progress, error) {
	if err := utils.ValidateIdentifier(tableName); err != nil {
		return simulate.Progress{}, fmt.Errorf("%w: %s", ErrSapTableNotFound, tableName)
	}

	table, err := s.repo.FindByName(tableName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return simulate.Progress{}, fmt.Errorf("%w: %s", ErrSapTableNotFound, tableName)
		}
		return simulate.Progress{}, fmt.Errorf("failed to load sap table: %w", err)
	}

	// 操作生命周期不随请求结束,只能通过 CancelSync 终止
	op := simulate.Start(context.WithoutCancel(ctx), table.Name, s.syncDuration, syncSteps, func(p simulate.Progress) {
		if s.hub != nil {
			s.hub.BroadcastEvent(websocket.TopicSapSync, "sync.progress", p)
		}
		if p.Status == simulate.StatusCompleted {
			s.finishSync(table.Name)
		}
		if p.Status != simulate.StatusRunning {
			metrics.RecordSapSync(table.Name, p.Status)
		}
	})
	s.registry.Add(op)

	logrus.WithFields(logrus.Fields{
		"table":   table.Name,
		"sync_id": op.ID(),
	}).Info("sap sync started")
	return op.Progress(), nil
}

// finishSync 同步完成后刷新描述符
func (s *sapService) finishSync(tableName string) {
	if err := s.repo.MarkSynced(tableName, time.Now()); err != nil {
		logrus.WithError(err).WithField("table", tableName).Error("failed to mark table synced")
	}
}

// GetSync 查询同步进度
func (s *sapService) GetSync(id string) (simulate.Progress, error) {
	op, ok := s.registry.Get(id)
	if !ok {
		return simulate.Progress{}, fmt.Errorf("%w: %s", ErrSyncNotFound, id)
	}
	return op.Progress(), nil
}

// CancelSync 取消同步,幂等
func (s *sapService) CancelSync(id string) (simulate.Progress, error) {
	op, ok := s.registry.Get(id)
	if !ok {
		return simulate.Progress{}, fmt.Errorf("%w: %s", ErrSyncNotFound, id)
	}
	op.Cancel()
	<-op.Done()
	return op.Progress(), nil
}
