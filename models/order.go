package models

import (
	"time"

	"gorm.io/datatypes"
)

// Order statuses used by the kitchen and front of house apps. The set is open:
// any string is accepted as a status.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// DefaultCustomerName is stored when an order arrives without a customer name
const DefaultCustomerName = "Guest"

// Order represents a customer order placed at a restaurant
type Order struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	RestaurantID string         `gorm:"column:restaurant_id;type:text;not null;default:'res-1';index" json:"restaurant_id"`
	CustomerName string         `gorm:"column:customer_name;type:text" json:"customer_name"`
	TableNo      *string        `gorm:"column:table_no;type:text" json:"table_no"` // nullable
	Notes        string         `gorm:"column:notes;type:text;default:''" json:"notes"`
	Items        datatypes.JSON `gorm:"column:items" json:"items"` // always a JSON array once normalized
	Total        float64        `gorm:"column:total;type:numeric;default:0" json:"total"`
	Status       string         `gorm:"column:status;type:text;not null;default:'pending'" json:"status"`
	PlacedAt     time.Time      `gorm:"column:placed_at;not null;default:CURRENT_TIMESTAMP;index" json:"placed_at"` // assigned by the store
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// LineItem is one entry of an order's items. Clients send arbitrary extra
// fields (name, id, options) which are kept as-is.
type LineItem map[string]any
