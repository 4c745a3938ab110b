package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DigitalBullGO/indicatorems/internal/api"
	"github.com/DigitalBullGO/indicatorems/internal/config"
	"github.com/DigitalBullGO/indicatorems/internal/database"
	"github.com/DigitalBullGO/indicatorems/internal/seed"
	"github.com/DigitalBullGO/indicatorems/internal/service"
	"github.com/DigitalBullGO/indicatorems/internal/uploadlimit"
	"github.com/DigitalBullGO/indicatorems/internal/websocket"
	"github.com/DigitalBullGO/indicatorems/internal/wizard"
)

// newTestRouter 构建与生产路由一致的测试引擎
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	_, err = seed.Apply(db)
	require.NoError(t, err)

	hub := websocket.NewHub()
	go hub.Run()

	cfg := config.Default()
	limiter := uploadlimit.NewLimiter(uploadlimit.NewMemoryStore(), 2)

	dashboardController := api.NewDashboardController(service.NewDashboardService(db))
	catalogController := api.NewCatalogController(service.NewCatalogService(db, 5))
	reportController := api.NewReportController(service.NewReportService(5))
	templateController := api.NewTemplateController(service.NewTemplateService())
	uploadController := api.NewUploadController(service.NewUploadService(limiter, hub))
	sapController := api.NewSapController(service.NewSapService(db, hub, 50*time.Millisecond))
	insightController := api.NewInsightController(service.NewInsightService(0))
	wizardController := api.NewWizardController(service.NewWizardService())
	backupController := api.NewBackupController(service.NewBackupService(db, t.TempDir()))

	router := api.SetupRoutes(db, hub, cfg)
	v1 := router.Group("/api/v1")
	{
		v1.GET("/dashboard/kpis", dashboardController.GetKPIs)
		v1.GET("/dashboard/charts/:chart", dashboardController.GetChart)
		v1.GET("/catalog/suppliers", catalogController.ListSuppliers)
		v1.GET("/catalog/components", catalogController.ListComponents)
		v1.GET("/catalog/bom", catalogController.ListBOM)
		v1.GET("/catalog/customers", catalogController.ListCustomers)
		v1.GET("/catalog/projects", catalogController.ListProjects)
		v1.GET("/bom/summary", catalogController.BOMSummary)
		v1.GET("/reports", reportController.ListReportTypes)
		v1.GET("/reports/templates", reportController.ListReportTemplates)
		v1.GET("/reports/:id/preview", reportController.GetPreview)
		v1.GET("/templates/comm", templateController.ListCommTemplates)
		v1.GET("/templates/comm/:id", templateController.GetCommTemplate)
		v1.POST("/templates/comm/:id/render", templateController.RenderCommTemplate)
		v1.POST("/templates/comm/:id/export", templateController.ExportCommTemplate)
		v1.GET("/templates/prompts", templateController.ListPromptTemplates)
		v1.GET("/uploads/quota", uploadController.GetQuota)
		v1.POST("/uploads", uploadController.Upload)
		v1.GET("/sap/tables", sapController.ListTables)
		v1.POST("/sap/tables/:name/sync", sapController.StartSync)
		v1.GET("/sap/sync/:id", sapController.GetSync)
		v1.DELETE("/sap/sync/:id", sapController.CancelSync)
		v1.POST("/insights/chat", insightController.Chat)
		v1.GET("/insights/suggestions", insightController.Suggestions)
		v1.POST("/backups", backupController.Create)
		v1.GET("/backups", backupController.List)
		v1.POST("/wizards/:flow", wizardController.StartSession)
		v1.GET("/wizards/sessions/:id", wizardController.GetSession)
		v1.POST("/wizards/sessions/:id/advance", wizardController.Advance)
		v1.POST("/wizards/sessions/:id/complete", wizardController.CompleteStep)
	}
	router.NoRoute(func(c *gin.Context) {
		api.Error(c, http.StatusNotFound, "route not found", "the requested route does not exist")
	})

	return router
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "healthy", body["status"])
	checks := body["checks"].(map[string]interface{})
	assert.Equal(t, "healthy", checks["database"])
}

func TestRequestIDHeader(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/health", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "trace-me-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "trace-me-123", rec.Header().Get("X-Request-ID"))
}

func TestNoRouteReturnsJSON(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/nope", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "route not found", body["message"])
}

func TestDashboardKPIs(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/dashboard/kpis", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(0), body["code"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "$14.8M", data["total_revenue_display"])
}

func TestDashboardChartNotFound(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/dashboard/charts/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSuppliersPaginatedEnvelope(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/catalog/suppliers?page=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	items := body["data"].([]interface{})
	assert.Len(t, items, 3)
	pageInfo := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(2), pageInfo["page"])
	assert.Equal(t, float64(8), pageInfo["total"])
	assert.Equal(t, float64(2), pageInfo["total_page"])
}

func TestReportPreview(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/reports/spend-analysis/preview", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "spend-analysis", data["id"])

	w = doRequest(router, http.MethodGet, "/api/v1/reports/does-not-exist/preview", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTemplateRenderEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/templates/comm/bc-1/render", map[string]interface{}{
		"values": map[string]string{"contactPerson": "Ana"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.Contains(t, data["body"], "Dear Ana,")
	assert.NotEmpty(t, data["missing_keys"])
}

func TestTemplateExportDisclosesFallback(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/templates/comm/bc-1/export", map[string]interface{}{
		"format": "pdf",
		"values": map[string]string{"contactPerson": "Ana"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Export-Format-Note"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".txt")
}

func TestUploadQuotaFlow(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/uploads/quota", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["remaining"])

	for i := 0; i < 2; i++ {
		w = doRequest(router, http.MethodPost, "/api/v1/uploads", map[string]interface{}{
			"filename": "spend.xlsx", "size": 100,
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w = doRequest(router, http.MethodPost, "/api/v1/uploads", map[string]interface{}{
		"filename": "spend.xlsx", "size": 100,
	})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	w = doRequest(router, http.MethodPost, "/api/v1/uploads", map[string]interface{}{
		"filename": "nope.exe", "size": 100,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSapSyncLifecycle(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/sap/tables", nil)
	require.Equal(t, http.StatusOK, w.Code)
	tables := decodeBody(t, w)["data"].([]interface{})
	assert.Len(t, tables, 6)

	w = doRequest(router, http.MethodPost, "/api/v1/sap/tables/MARA/sync", nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	progress := decodeBody(t, w)["data"].(map[string]interface{})
	syncID := progress["id"].(string)
	require.NotEmpty(t, syncID)

	w = doRequest(router, http.MethodGet, "/api/v1/sap/sync/"+syncID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodDelete, "/api/v1/sap/sync/"+syncID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodPost, "/api/v1/sap/tables/NOPE/sync", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInsightChatEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/insights/chat", map[string]interface{}{
		"message": "Show spend by commodity for Q1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Len(t, data["chart"], 5)

	w = doRequest(router, http.MethodPost, "/api/v1/insights/chat", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/insights/suggestions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["data"], 4)
}

func TestWizardEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/wizards/"+wizard.FlowExcelDashboard, nil)
	require.Equal(t, http.StatusOK, w.Code)
	state := decodeBody(t, w)["data"].(map[string]interface{})["state"].(map[string]interface{})
	id := state["id"].(string)

	// 未完成当前步骤时前进返回冲突
	w = doRequest(router, http.MethodPost, "/api/v1/wizards/sessions/"+id+"/advance", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doRequest(router, http.MethodPost, "/api/v1/wizards/sessions/"+id+"/complete", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doRequest(router, http.MethodPost, "/api/v1/wizards/sessions/"+id+"/advance", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/wizards/sessions/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	state = decodeBody(t, w)["data"].(map[string]interface{})["state"].(map[string]interface{})
	assert.Equal(t, float64(2), state["current_step"])

	w = doRequest(router, http.MethodPost, "/api/v1/wizards/not-a-flow", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBackupEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/backups", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/backups", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["data"], 1)
}
