package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestOrderTableName(t *testing.T) {
	order := Order{}
	assert.Equal(t, "orders", order.TableName(), "Table name should be 'orders'")
}

func TestOrderJSONFieldNames(t *testing.T) {
	tableNo := "7"
	order := Order{
		ID:           3,
		RestaurantID: "res-1",
		CustomerName: DefaultCustomerName,
		TableNo:      &tableNo,
		Items:        datatypes.JSON(`[{"name":"Soup","price":4.5}]`),
		Total:        4.5,
		Status:       StatusPending,
	}

	body, err := json.Marshal(order)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))

	for _, key := range []string{"id", "restaurant_id", "customer_name", "table_no", "notes", "items", "total", "status", "placed_at"} {
		assert.Contains(t, decoded, key)
	}
	assert.IsType(t, []interface{}{}, decoded["items"], "items should serialize as an array")
	assert.Equal(t, "7", decoded["table_no"])
}

func TestOrderNullTableNo(t *testing.T) {
	body, err := json.Marshal(Order{Items: datatypes.JSON(`[]`)})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Nil(t, decoded["table_no"])
}
