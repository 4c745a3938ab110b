package metrics

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

var (
	// API 请求计数器
	apiRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "path", "status"},
	)

	// API 请求响应时间
	apiRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// 上传记录数
	uploadsRecordedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "uploads_recorded_total",
			Help: "Total number of uploads recorded against the daily quota",
		},
	)

	// 上传被配额拒绝数
	uploadsRejectedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "uploads_rejected_total",
			Help: "Total number of uploads rejected by the daily quota",
		},
	)

	// 报表预览请求数
	reportPreviewsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "report_previews_total",
			Help: "Total number of report preview requests",
		},
		[]string{"report"},
	)

	// 公函模板渲染数
	templateRendersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "template_renders_total",
			Help: "Total number of communication template renders",
		},
		[]string{"template"},
	)

	// SAP 同步操作数
	sapSyncsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sap_syncs_total",
			Help: "Total number of simulated SAP sync operations",
		},
		[]string{"table", "result"}, // completed, cancelled
	)

	// AI 洞察会话数
	insightChatsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "insight_chats_total",
			Help: "Total number of insight chat messages handled",
		},
	)

	// 数据库连接数
	databaseConnectionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "database_connections_active",
			Help: "Number of active database connections",
		},
	)

	databaseConnectionsIdle = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "database_connections_idle",
			Help: "Number of idle database connections",
		},
	)

	databaseConnectionsMax = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "database_connections_max",
			Help: "Maximum number of database connections",
		},
	)

	// SAP 表状态分布
	sapTablesByStatus = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "sap_tables_by_status",
			Help: "Number of SAP tables by sync status",
		},
		[]string{"status"},
	)
)

var (
	once sync.Once
)

func init() {
	// 注册指标
	prometheus.MustRegister(apiRequestsTotal)
	prometheus.MustRegister(apiRequestDuration)
	prometheus.MustRegister(uploadsRecordedTotal)
	prometheus.MustRegister(uploadsRejectedTotal)
	prometheus.MustRegister(reportPreviewsTotal)
	prometheus.MustRegister(templateRendersTotal)
	prometheus.MustRegister(sapSyncsTotal)
	prometheus.MustRegister(insightChatsTotal)
	prometheus.MustRegister(databaseConnectionsActive)
	prometheus.MustRegister(databaseConnectionsIdle)
	prometheus.MustRegister(databaseConnectionsMax)
	prometheus.MustRegister(sapTablesByStatus)

	// 注册 Go 运行时指标（只注册一次）
	once.Do(func() {
		// 尝试注册 Go 运行时指标，如果已注册则忽略错误
		_ = prometheus.Register(prometheus.NewGoCollector())
		_ = prometheus.Register(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	})
}

// Handler 返回 Prometheus 指标处理器
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordAPIRequest 记录 API 请求
func RecordAPIRequest(method, path string, status int, duration float64) {
	statusText := http.StatusText(status)
	if statusText == "" {
		statusText = fmt.Sprintf("%d", status)
	}
	apiRequestsTotal.WithLabelValues(method, path, statusText).Inc()
	apiRequestDuration.WithLabelValues(method, path).Observe(duration)
}

// RecordUpload 记录一次计入配额的上传
func RecordUpload() {
	uploadsRecordedTotal.Inc()
}

// RecordUploadRejected 记录一次被配额拒绝的上传
func RecordUploadRejected() {
	uploadsRejectedTotal.Inc()
}

// RecordReportPreview 记录报表预览请求
func RecordReportPreview(reportID string) {
	reportPreviewsTotal.WithLabelValues(reportID).Inc()
}

// RecordTemplateRender 记录公函模板渲染
func RecordTemplateRender(templateID string) {
	templateRendersTotal.WithLabelValues(templateID).Inc()
}

// RecordSapSync 记录 SAP 同步操作结果
func RecordSapSync(table, result string) {
	sapSyncsTotal.WithLabelValues(table, result).Inc()
}

// RecordInsightChat 记录 AI 洞察会话消息
func RecordInsightChat() {
	insightChatsTotal.Inc()
}

// UpdateDatabaseConnections 更新数据库连接数指标
func UpdateDatabaseConnections(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	stats := sqlDB.Stats()
	databaseConnectionsActive.Set(float64(stats.OpenConnections - stats.Idle))
	databaseConnectionsIdle.Set(float64(stats.Idle))
	databaseConnectionsMax.Set(float64(stats.MaxOpenConnections))

	return nil
}

// UpdateSapTablesByStatus 更新 SAP 表状态分布指标
func UpdateSapTablesByStatus(status string, count float64) {
	sapTablesByStatus.WithLabelValues(status).Set(count)
}
