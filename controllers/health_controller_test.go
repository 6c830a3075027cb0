package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	NewHealthController(nil).Root(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, RootMessage, w.Body.String())
}

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	NewHealthController(nil).HealthCheck(c)

	assert.Equal(t, http.StatusOK, w.Code, "Expected status code 200")
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err, "Response should be valid JSON")
	assert.Len(t, response, 2, "Response should have exactly 2 fields")
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Restaurant orders API is running", response["message"])
}

func TestDatabaseStatus(t *testing.T) {
	tests := []struct {
		name           string
		migrate        bool
		expectedStatus int
		expectedTable  bool
	}{
		{name: "Connected with orders table", migrate: true, expectedStatus: http.StatusOK, expectedTable: true},
		{name: "Connected before schema setup", migrate: false, expectedStatus: http.StatusOK, expectedTable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupOrderTestDB(t)
			if !tt.migrate {
				require.NoError(t, db.Migrator().DropTable("orders"))
			}

			router := setupTestRouter()
			router.GET("/api/v1/database/status", NewHealthController(db).DatabaseStatus)

			req, _ := http.NewRequest(http.MethodGet, "/api/v1/database/status", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, true, response["success"])
			assert.Equal(t, tt.expectedTable, response["orders_table"])
		})
	}
}

func TestDatabaseStatus_NoDatabase(t *testing.T) {
	router := setupTestRouter()
	router.GET("/api/v1/database/status", NewHealthController(nil).DatabaseStatus)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/database/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "DATABASE_UNAVAILABLE")
}

func TestDatabaseStatus_ClosedConnection(t *testing.T) {
	db := setupOrderTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	router := setupTestRouter()
	router.GET("/api/v1/database/status", NewHealthController(db).DatabaseStatus)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/database/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "DATABASE_CONNECTION_ERROR")
}
