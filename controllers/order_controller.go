package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nevolt/orders-api/middleware"
	"github.com/nevolt/orders-api/models"
	"github.com/nevolt/orders-api/services"
	"go.uber.org/zap"
)

// OrderManager is the order service as seen by the HTTP layer
type OrderManager interface {
	Create(ctx context.Context, payload map[string]any) (*models.Order, error)
	List(ctx context.Context, restaurantID string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id string, status string) (*models.Order, error)
}

// UpdateStatusRequest represents the request body for updating an order's status
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// OrderController serves the /api/order(s) endpoints
type OrderController struct {
	orders OrderManager
	log    *zap.Logger
}

// NewOrderController creates an OrderController
func NewOrderController(orders OrderManager, log *zap.Logger) *OrderController {
	return &OrderController{orders: orders, log: log}
}

// CreateOrder handles POST /api/order and POST /api/orders - creates an order
// from a loosely shaped payload
func (ctl *OrderController) CreateOrder(c *gin.Context) {
	payload, ok := readPayload(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Request body must be a JSON object",
			"code":  "INVALID_REQUEST",
		})
		return
	}

	order, err := ctl.orders.Create(c.Request.Context(), payload)
	if err != nil {
		ctl.respondError(c, err)
		return
	}

	ctl.log.Info("New order inserted",
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.String("route", c.FullPath()),
		zap.Uint("id", order.ID),
		zap.String("restaurant_id", order.RestaurantID),
	)
	c.JSON(http.StatusCreated, order)
}

// ListOrders handles GET /api/orders?restaurant_id= - lists a restaurant's
// orders, newest first. Always responds with an array.
func (ctl *OrderController) ListOrders(c *gin.Context) {
	restaurantID := c.Query("restaurant_id")
	if restaurantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing restaurant_id query param",
			"code":  "INVALID_REQUEST",
		})
		return
	}

	orders, err := ctl.orders.List(c.Request.Context(), restaurantID)
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus handles PATCH /api/orders/:id - replaces an order's status
func (ctl *OrderController) UpdateOrderStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing status in body",
			"code":  "INVALID_REQUEST",
		})
		return
	}

	order, err := ctl.orders.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		ctl.respondError(c, err)
		return
	}

	ctl.log.Info("Order updated",
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.Uint("id", order.ID),
		zap.String("status", order.Status),
	)
	c.JSON(http.StatusOK, order)
}

// respondError maps service errors to status codes. Store errors are logged
// with their cause and answered with a generic message.
func (ctl *OrderController) respondError(c *gin.Context, err error) {
	switch services.KindOf(err) {
	case services.KindInvalidRequest:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": services.MessageOf(err),
			"code":  "INVALID_REQUEST",
		})
	case services.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{
			"error": services.MessageOf(err),
			"code":  "ORDER_NOT_FOUND",
		})
	default:
		_ = c.Error(err)
		ctl.log.Error("order request failed",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": services.MessageOf(err),
			"code":  "DATABASE_ERROR",
		})
	}
}

// readPayload decodes the request body into a JSON object. An empty body, an
// array or null is an empty payload; a bare string or number is rejected.
func readPayload(c *gin.Context) (map[string]any, bool) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, false
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]any{}, true
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, false
	}
	switch payload := decoded.(type) {
	case map[string]any:
		return payload, true
	case []any, nil:
		// arrays and null carry no fields, so every default applies
		return map[string]any{}, true
	default:
		return nil, false
	}
}
