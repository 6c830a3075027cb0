package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/nevolt/orders-api/metrics"
	"github.com/nevolt/orders-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderColumns reads every order column. Rows from early releases may hold
// NULL items, which the JSON column type cannot scan.
const orderColumns = "id, restaurant_id, customer_name, table_no, notes, COALESCE(items, '[]') AS items, total, status, placed_at"

// OrderService implements order creation, listing and status updates on top
// of the store. Each operation issues a single mutating statement.
type OrderService struct {
	db         *gorm.DB
	normalizer OrderNormalizer
	metrics    *metrics.Registry
}

// NewOrderService creates an OrderService. m may be nil.
func NewOrderService(db *gorm.DB, normalizer OrderNormalizer, m *metrics.Registry) *OrderService {
	return &OrderService{
		db:         db,
		normalizer: normalizer,
		metrics:    m,
	}
}

// Create normalizes payload and inserts it as a new order. The returned
// order carries the store-assigned id and placed_at.
func (s *OrderService) Create(ctx context.Context, payload map[string]any) (*models.Order, error) {
	order := s.normalizer.Normalize(payload)

	if err := s.db.WithContext(ctx).Create(&order).Error; err != nil {
		return nil, storeFailure("failed to create order", err)
	}
	order.Items = EncodeItems(NormalizeItems(order.Items))

	if s.metrics != nil {
		s.metrics.OrdersCreated.Inc()
	}
	return &order, nil
}

// List returns every order of a restaurant, newest first
func (s *OrderService) List(ctx context.Context, restaurantID string) ([]models.Order, error) {
	restaurantID = strings.TrimSpace(restaurantID)
	if restaurantID == "" {
		return nil, invalidRequest("Missing restaurant_id query param")
	}

	orders := make([]models.Order, 0)
	err := withOrderColumns(s.db.WithContext(ctx)).
		Where("restaurant_id = ?", restaurantID).
		Order("placed_at DESC, id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, storeFailure("failed to list orders", err)
	}

	// Rows written by older clients may hold items as a JSON string
	for i := range orders {
		orders[i].Items = EncodeItems(NormalizeItems(orders[i].Items))
	}
	return orders, nil
}

// UpdateStatus replaces the status of order id and returns the updated order.
// Any status may replace any other.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status string) (*models.Order, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, invalidRequest("Missing status in body")
	}

	orderID, err := strconv.ParseUint(strings.TrimSpace(id), 10, 64)
	if err != nil {
		return nil, notFound("Order not found")
	}

	// the response is the row this UPDATE wrote
	var order models.Order
	result := s.db.WithContext(ctx).
		Model(&order).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: orderColumns, Raw: true}}}).
		Where("id = ?", orderID).
		Update("status", status)
	if result.Error != nil {
		return nil, storeFailure("failed to update order status", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, notFound("Order not found")
	}
	order.Items = EncodeItems(NormalizeItems(order.Items))

	if s.metrics != nil {
		s.metrics.StatusUpdates.WithLabelValues(statusLabel(status)).Inc()
	}
	return &order, nil
}

func withOrderColumns(db *gorm.DB) *gorm.DB {
	return db.Select(orderColumns)
}

// statusLabel bounds the metric label set, since status is free text
func statusLabel(status string) string {
	switch status {
	case models.StatusPending, models.StatusCompleted, models.StatusCancelled:
		return status
	}
	return "other"
}
