package container

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/DigitalBullGO/indicatorems/internal/config"
	"github.com/DigitalBullGO/indicatorems/internal/database"
	"github.com/DigitalBullGO/indicatorems/internal/metrics"
	"github.com/DigitalBullGO/indicatorems/internal/seed"
	"github.com/DigitalBullGO/indicatorems/internal/uploadlimit"
	"github.com/DigitalBullGO/indicatorems/internal/websocket"
)

// Container 依赖注入容器
// 管理数据库、WebSocket 集线器与上传限额器等共享依赖
type Container struct {
	db        *gorm.DB
	hub       *websocket.Hub
	limiter   *uploadlimit.Limiter
	collector *metrics.Collector
}

// NewContainer 创建依赖注入容器
// 根据配置初始化所有依赖组件
func NewContainer(cfg *config.Config) (*Container, error) {
	// 1. 初始化数据库（带重试机制）
	// 默认重试 3 次，初始间隔 1 秒，指数退避
	db, err := database.ConnectWithRetry(cfg.Database, 3, time.Second)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// 执行数据库迁移
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 2. 写入内置主数据,重复执行为幂等覆盖
	if _, err := seed.Apply(db); err != nil {
		return nil, fmt.Errorf("failed to seed catalog data: %w", err)
	}

	// 3. 初始化 WebSocket 集线器
	hub := websocket.NewHub()
	go hub.Run()

	// 4. 初始化上传限额器
	store := uploadlimit.NewGormStore(db)
	limiter := uploadlimit.NewLimiter(store, cfg.Reporting.MaxUploadsPerDay)

	// 5. 启动指标采集器
	collector := metrics.NewCollector(db, 30*time.Second)
	collector.Start()

	return &Container{
		db:        db,
		hub:       hub,
		limiter:   limiter,
		collector: collector,
	}, nil
}

// DB 获取数据库连接
func (c *Container) DB() *gorm.DB {
	return c.db
}

// Hub 获取 WebSocket 集线器
func (c *Container) Hub() *websocket.Hub {
	return c.hub
}

// Limiter 获取上传限额器
func (c *Container) Limiter() *uploadlimit.Limiter {
	return c.limiter
}

// Close 关闭容器,清理资源
func (c *Container) Close() error {
	if c.collector != nil {
		c.collector.Stop()
	}

	if c.db != nil {
		sqlDB, err := c.db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	return nil
}
