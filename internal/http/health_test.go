package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/library/internal/database"
)

func TestHealthStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	dbPath := "./test_health.db"
	defer os.Remove(dbPath)

	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	controller := NewHealthController(db, "test-version")

	router := gin.New()
	router.GET("/api/health", controller.Status)

	req, _ := http.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "test-version", health.Version)
	assert.Equal(t, "ok", health.Checks["database"])
}

func TestHealthStatus_NoDatabase(t *testing.T) {
	gin.SetMode(gin.TestMode)

	controller := NewHealthController(nil, "test-version")

	router := gin.New()
	router.GET("/api/health", controller.Status)

	req, _ := http.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "not configured", health.Checks["database"])
}
