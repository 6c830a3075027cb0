package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nevolt/orders-api/controllers"
	"github.com/nevolt/orders-api/metrics"
	"github.com/nevolt/orders-api/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Dependencies are the collaborators the router hands to controllers
type Dependencies struct {
	Log            *zap.Logger
	DB             *gorm.DB
	Orders         controllers.OrderManager
	Metrics        *metrics.Registry
	AllowedOrigins []string
}

// SetupRouter builds the Gin engine with middleware and all routes
func SetupRouter(deps Dependencies) *gin.Engine {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.NewRegistry()
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(deps.Log),
		middleware.Metrics(deps.Metrics),
		middleware.CORS(deps.AllowedOrigins),
	)

	health := controllers.NewHealthController(deps.DB)
	orders := controllers.NewOrderController(deps.Orders, deps.Log)

	router.GET("/", health.Root)
	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	api := router.Group("/api")
	{
		// Both paths create orders; older clients post to the singular one
		api.POST("/order", orders.CreateOrder)
		api.POST("/orders", orders.CreateOrder)
		api.GET("/orders", orders.ListOrders)
		api.PATCH("/orders/:id", orders.UpdateOrderStatus)
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", health.HealthCheck)
		v1.GET("/database/status", health.DatabaseStatus)
	}

	return router
}
