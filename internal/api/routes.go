package api

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DigitalBullGO/indicatorems/internal/config"
	"github.com/DigitalBullGO/indicatorems/internal/websocket"
)

// SetupRoutes 配置基础路由与全局中间件
// 业务路由由调用方在返回的 engine 上继续注册
func SetupRoutes(db *gorm.DB, hub *websocket.Hub, cfg *config.Config) *gin.Engine {
	if config.IsProduction(cfg) {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// 中间件,顺序敏感:请求 ID 必须先于日志
	router.Use(RequestIDMiddleware())
	router.Use(RequestLogMiddleware())
	router.Use(ErrorHandlerMiddleware())
	router.Use(SecurityHeadersMiddleware())
	router.Use(HTTPSRedirectMiddlewareWithConfig(config.IsProduction(cfg)))
	router.Use(VersionMiddleware())
	router.Use(I18nMiddleware())
	router.Use(SLAMonitorMiddleware(DefaultSLAConfig()))

	if cfg != nil {
		router.Use(CORSMiddleware(cfg.CORS.AllowedOrigins))
		router.Use(RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		if cfg.Tracing.Enabled {
			router.Use(TracingMiddleware())
		}
	}

	// 健康检查
	healthController := NewHealthController(db, hub)
	router.GET("/health", healthController.Check)

	// Prometheus 指标端点
	router.GET("/metrics", MetricsHandler)

	// WebSocket 路由,topics 查询参数筛选订阅主题
	if hub != nil {
		router.GET("/ws/updates", websocket.WebSocketHandler(hub))
	}

	return router
}
