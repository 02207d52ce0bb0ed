package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fleetops-api/internal/config"
	"github.com/fleetops-api/internal/http/response"
	"github.com/fleetops-api/internal/models"
	"github.com/fleetops-api/internal/provider"
	"github.com/fleetops-api/internal/seed"
	"github.com/fleetops-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAdminTest(t *testing.T, name string) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.AutoMigrateWith(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	seedCfg := config.SeedConfig{
		Seed:          42,
		Organizations: 2,
		Vehicles:      4,
		Drivers:       6,
		Locations:     8,
		Routes:        10,
		Deliveries:    12,
		HistoryMonths: 3,
	}
	container := &provider.Container{
		Config:      &config.Config{Seed: seedCfg},
		SeedService: service.NewSeedService(db, &seedCfg),
	}
	handler := New(container)

	engine := gin.New()
	group := engine.Group("/api/v1/admin")
	group.POST("/seed-full", handler.SeedFull)
	group.DELETE("/clear", handler.ClearDatabase)

	return engine, db
}

func doAdminRequest(t *testing.T, engine *gin.Engine, method, path string) (int, string, json.RawMessage) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	var env struct {
		StatusCode int             `json:"status_code"`
		Msg        string          `json:"msg"`
		Data       json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response failed: %v: %s", err, recorder.Body.String())
	}
	return env.StatusCode, env.Msg, env.Data
}

func TestSeedFullPopulatesDatabase(t *testing.T) {
	engine, db := setupAdminTest(t, "admin_seed_full")

	code, msg, data := doAdminRequest(t, engine, http.MethodPost, "/api/v1/admin/seed-full")
	if code != response.CodeOK {
		t.Fatalf("got status_code %d, want %d: %s", code, response.CodeOK, msg)
	}

	var result seed.Result
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("decode result failed: %v", err)
	}
	if result.Status != "success" {
		t.Fatalf("got result status %q, want success: %s", result.Status, result.Message)
	}
	if result.Summary == nil || result.Summary.Vehicles != 4 {
		t.Fatalf("unexpected summary: %+v", result.Summary)
	}

	var count int64
	if err := db.Model(&models.Vehicle{}).Count(&count).Error; err != nil {
		t.Fatalf("count vehicles failed: %v", err)
	}
	if count != 4 {
		t.Errorf("got %d vehicles, want 4", count)
	}
}

func TestSeedFullSkipsWhenDataExists(t *testing.T) {
	engine, _ := setupAdminTest(t, "admin_seed_skip")

	doAdminRequest(t, engine, http.MethodPost, "/api/v1/admin/seed-full")
	code, _, data := doAdminRequest(t, engine, http.MethodPost, "/api/v1/admin/seed-full")
	if code != response.CodeOK {
		t.Fatalf("got status_code %d, want %d", code, response.CodeOK)
	}

	var result seed.Result
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("decode result failed: %v", err)
	}
	if result.Status != "warning" {
		t.Fatalf("got result status %q, want warning", result.Status)
	}
	if result.Suggestion == "" {
		t.Error("expected a suggestion on skip")
	}
}

func TestClearDatabaseEmptiesTables(t *testing.T) {
	engine, db := setupAdminTest(t, "admin_clear")

	doAdminRequest(t, engine, http.MethodPost, "/api/v1/admin/seed-full")
	code, msg, _ := doAdminRequest(t, engine, http.MethodDelete, "/api/v1/admin/clear")
	if code != response.CodeOK {
		t.Fatalf("got status_code %d, want %d: %s", code, response.CodeOK, msg)
	}

	var count int64
	if err := db.Model(&models.Organization{}).Count(&count).Error; err != nil {
		t.Fatalf("count organizations failed: %v", err)
	}
	if count != 0 {
		t.Errorf("%d organizations remain after clear", count)
	}
}
