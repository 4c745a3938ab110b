package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// BackupScheduler 备份调度器
// 周期性创建快照并清理过期备份
type BackupScheduler struct {
	backupService *BackupService
	interval      time.Duration
	retentionDays int
	stopChan      chan struct{}
}

// NewBackupScheduler 创建备份调度器
func NewBackupScheduler(backupService *BackupService, interval time.Duration, retentionDays int) *BackupScheduler {
	if interval <= 0 {
		interval = 24 * time.Hour
	}

	return &BackupScheduler{
		backupService: backupService,
		interval:      interval,
		retentionDays: retentionDays,
		stopChan:      make(chan struct{}),
	}
}

// Start 启动备份调度器
func (s *BackupScheduler) Start(ctx context.Context) {
	go s.run(ctx)
}

// Stop 停止备份调度器
func (s *BackupScheduler) Stop() {
	close(s.stopChan)
}

func (s *BackupScheduler) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

// runOnce 执行一轮备份与清理
// 失败只记日志,调度继续
func (s *BackupScheduler) runOnce(ctx context.Context) {
	path, err := s.backupService.CreateBackup(ctx)
	if err != nil {
		logrus.WithError(err).Warn("scheduled backup failed")
	} else {
		logrus.WithField("path", path).Info("scheduled backup created")
	}

	removed, err := s.backupService.CleanupExpired(ctx, s.retentionDays)
	if err != nil {
		logrus.WithError(err).Warn("backup cleanup failed")
		return
	}
	if removed > 0 {
		logrus.WithField("removed", removed).Info("expired backups removed")
	}
}
