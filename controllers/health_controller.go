package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nevolt/orders-api/models"
	"gorm.io/gorm"
)

// RootMessage is the plain text served on GET /
const RootMessage = "Nevolt backend OK"

// HealthController serves liveness and database status endpoints
type HealthController struct {
	db *gorm.DB
}

// NewHealthController creates a HealthController. db may be nil, in which
// case the database status endpoint reports the store as unavailable.
func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// Root handles GET /
func (h *HealthController) Root(c *gin.Context) {
	c.String(http.StatusOK, RootMessage)
}

// HealthCheck handles GET /api/v1/health
func (h *HealthController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Restaurant orders API is running",
	})
}

// DatabaseStatus handles GET /api/v1/database/status - checks connectivity
// and whether the orders table exists
func (h *HealthController) DatabaseStatus(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_UNAVAILABLE",
				"message": "Database is not configured",
			},
		})
		return
	}

	sqlDB, err := h.db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			},
		})
		return
	}

	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Database connected",
		"orders_table": h.db.WithContext(c.Request.Context()).Migrator().HasTable(&models.Order{}),
	})
}
