package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/DigitalBullGO/indicatorems/internal/api"
	"github.com/DigitalBullGO/indicatorems/internal/config"
	"github.com/DigitalBullGO/indicatorems/internal/container"
	"github.com/DigitalBullGO/indicatorems/internal/service"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the API server",
	Long: `Start the Indicator EMS API server.
The server will listen on the configured host and port,
and provide REST API interfaces for dashboards, reports,
templates, uploads and simulated SAP synchronization.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. 加载配置
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// 配置热更新:运行时调整日志级别
		if configPath != "" {
			watcher := config.NewConfigWatcher(cfg, configPath)
			watcher.OnConfigChange(func(newCfg *config.Config) {
				if level, err := logrus.ParseLevel(newCfg.Log.Level); err == nil {
					logrus.SetLevel(level)
				}
			})
			if err := watcher.Start(); err != nil {
				log.Printf("config watcher disabled: %v", err)
			} else {
				defer watcher.Stop()
			}
		}

		// 2. 初始化容器
		ctr, err := container.NewContainer(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize container: %w", err)
		}
		defer ctr.Close()

		// 链路追踪(可选)
		if cfg.Tracing.Enabled {
			if err := api.InitTracing("indicatorems", cfg.Tracing.OTLPEndpoint); err != nil {
				return fmt.Errorf("failed to init tracing: %w", err)
			}
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = api.ShutdownTracing(shutdownCtx)
			}()
		}

		// 3. 初始化服务
		dashboardSvc := service.NewDashboardService(ctr.DB())
		catalogSvc := service.NewCatalogService(ctr.DB(), cfg.Reporting.PageSize)
		reportSvc := service.NewReportService(cfg.Reporting.PageSize)
		templateSvc := service.NewTemplateService()
		uploadSvc := service.NewUploadService(ctr.Limiter(), ctr.Hub())
		sapSvc := service.NewSapService(ctr.DB(), ctr.Hub(), cfg.Sap.SyncDuration())
		insightSvc := service.NewInsightService(cfg.Insights.ResponseDelay())
		wizardSvc := service.NewWizardService()
		backupSvc := service.NewBackupService(ctr.DB(), cfg.Backup.Dir)

		// 备份调度:每日快照,按保留期清理
		backupScheduler := service.NewBackupScheduler(backupSvc, 24*time.Hour, cfg.Backup.RetentionDays)
		backupScheduler.Start(context.Background())
		defer backupScheduler.Stop()

		// 4. 初始化控制器
		dashboardController := api.NewDashboardController(dashboardSvc)
		catalogController := api.NewCatalogController(catalogSvc)
		reportController := api.NewReportController(reportSvc)
		templateController := api.NewTemplateController(templateSvc)
		uploadController := api.NewUploadController(uploadSvc)
		sapController := api.NewSapController(sapSvc)
		insightController := api.NewInsightController(insightSvc)
		wizardController := api.NewWizardController(wizardSvc)
		backupController := api.NewBackupController(backupSvc)

		// 5. 设置路由
		router := setupRoutesWithControllers(ctr, cfg,
			dashboardController, catalogController, reportController,
			templateController, uploadController, sapController,
			insightController, wizardController, backupController)

		// 6. 启动服务器
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		srv := &http.Server{
			Addr:    addr,
			Handler: router,
		}

		// 启动服务器（在 goroutine 中）
		go func() {
			log.Printf("Server starting on %s", addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("Failed to start server: %v", err)
			}
		}()

		// 等待中断信号
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Println("Shutting down server...")

		// 优雅关闭
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Fatalf("Server forced to shutdown: %v", err)
		}

		log.Println("Server exited")
		return nil
	},
}

// setupRoutesWithControllers 设置路由并绑定控制器
func setupRoutesWithControllers(
	ctr *container.Container,
	cfg *config.Config,
	dashboardController *api.DashboardController,
	catalogController *api.CatalogController,
	reportController *api.ReportController,
	templateController *api.TemplateController,
	uploadController *api.UploadController,
	sapController *api.SapController,
	insightController *api.InsightController,
	wizardController *api.WizardController,
	backupController *api.BackupController,
) *gin.Engine {
	router := api.SetupRoutes(ctr.DB(), ctr.Hub(), cfg)

	// API v1 路由组
	v1 := router.Group("/api/v1")
	{
		// 仪表盘路由
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/kpis", dashboardController.GetKPIs)
			dashboard.GET("/charts/:chart", dashboardController.GetChart)
		}

		// 主数据目录路由
		catalog := v1.Group("/catalog")
		{
			catalog.GET("/suppliers", catalogController.ListSuppliers)
			catalog.GET("/components", catalogController.ListComponents)
			catalog.GET("/bom", catalogController.ListBOM)
			catalog.GET("/customers", catalogController.ListCustomers)
			catalog.GET("/projects", catalogController.ListProjects)
		}
		v1.GET("/bom/summary", catalogController.BOMSummary)

		// 报表路由
		reports := v1.Group("/reports")
		{
			// 具体路径必须在 /:id 之前注册
			reports.GET("", reportController.ListReportTypes)
			reports.GET("/templates", reportController.ListReportTemplates)
			reports.GET("/:id/preview", reportController.GetPreview)
		}

		// 模板路由
		templates := v1.Group("/templates")
		{
			templates.GET("/comm", templateController.ListCommTemplates)
			templates.GET("/comm/:id", templateController.GetCommTemplate)
			templates.POST("/comm/:id/render", templateController.RenderCommTemplate)
			templates.POST("/comm/:id/export", templateController.ExportCommTemplate)
			templates.GET("/prompts", templateController.ListPromptTemplates)
		}

		// 上传配额路由
		uploads := v1.Group("/uploads")
		{
			uploads.GET("/quota", uploadController.GetQuota)
			uploads.POST("", uploadController.Upload)
		}

		// SAP 同步路由
		sap := v1.Group("/sap")
		{
			sap.GET("/tables", sapController.ListTables)
			sap.POST("/tables/:name/sync", sapController.StartSync)
			sap.GET("/sync/:id", sapController.GetSync)
			sap.DELETE("/sync/:id", sapController.CancelSync)
		}

		// AI 洞察路由
		insights := v1.Group("/insights")
		{
			insights.POST("/chat", insightController.Chat)
			insights.GET("/suggestions", insightController.Suggestions)
		}

		// 备份路由
		backups := v1.Group("/backups")
		{
			backups.POST("", backupController.Create)
			backups.GET("", backupController.List)
			backups.DELETE("/:filename", backupController.Delete)
		}

		// 向导路由
		wizards := v1.Group("/wizards")
		{
			wizards.POST("/sessions/:id/advance", wizardController.Advance)
			wizards.POST("/sessions/:id/back", wizardController.Back)
			wizards.POST("/sessions/:id/reset", wizardController.Reset)
			wizards.POST("/sessions/:id/complete", wizardController.CompleteStep)
			wizards.GET("/sessions/:id", wizardController.GetSession)
			wizards.POST("/:flow", wizardController.StartSession)
		}
	}

	// SSE 同步进度路由
	router.GET("/sse/sap/sync/:id", api.SyncProgressSSEHandler(sapController))

	// 自定义 NoRoute 处理器,返回 JSON 格式的 404
	// 必须在所有业务路由注册之后设置,确保未匹配的路由返回 JSON 而不是 HTML
	router.NoRoute(func(c *gin.Context) {
		api.Error(c, http.StatusNotFound, "route not found", "the requested route does not exist")
	})

	return router
}

func init() {
	rootCmd.AddCommand(serverCmd)

	// 服务器配置标志
	serverCmd.Flags().String("config", "", "Config file path (default: config.yaml)")
	serverCmd.Flags().String("host", "0.0.0.0", "Server host")
	serverCmd.Flags().Int("port", 8080, "Server port")
}

// LoadConfig 加载配置
func LoadConfig(configPath string) (*config.Config, error) {
	return config.Load(configPath)
}
