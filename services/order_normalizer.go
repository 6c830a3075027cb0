package services

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/nevolt/orders-api/models"
	"gorm.io/datatypes"
)

// Accepted payload keys per field, in priority order. Older clients send
// camelCase names or call the items list "cart".
var (
	restaurantIDAliases = []string{"restaurant_id", "restaurantId"}
	customerNameAliases = []string{"customer_name", "customerName"}
	tableNoAliases      = []string{"table_no", "tableNumber", "tableNo"}
	notesAliases        = []string{"notes"}
	itemsAliases        = []string{"items", "cart", "itemsJson"}
	totalAliases        = []string{"total", "price", "amount"}
	statusAliases       = []string{"status"}

	itemPriceAliases    = []string{"price"}
	itemQuantityAliases = []string{"quantity", "qty"}
)

// OrderNormalizer converts create payloads into orders ready to insert.
// It never fails: missing or malformed values fall back to defaults.
type OrderNormalizer struct {
	DefaultRestaurantID string
}

// Normalize builds the order pre-image for payload. ID and PlacedAt are left
// for the store to assign.
func (n OrderNormalizer) Normalize(payload map[string]any) models.Order {
	restaurantID, ok := firstString(payload, restaurantIDAliases)
	if !ok {
		restaurantID = n.DefaultRestaurantID
	}

	customerName, ok := firstString(payload, customerNameAliases)
	if !ok {
		customerName = models.DefaultCustomerName
	}

	var tableNo *string
	if v, ok := firstString(payload, tableNoAliases); ok {
		tableNo = &v
	}

	notes, _ := firstString(payload, notesAliases)

	items := NormalizeItems(firstPresent(payload, itemsAliases))

	total, ok := firstNumber(payload, totalAliases)
	if !ok {
		total = ItemsTotal(items)
	}

	status, ok := firstString(payload, statusAliases)
	if !ok {
		status = models.StatusPending
	}

	return models.Order{
		RestaurantID: restaurantID,
		CustomerName: customerName,
		TableNo:      tableNo,
		Notes:        notes,
		Items:        EncodeItems(items),
		Total:        total,
		Status:       status,
	}
}

// NormalizeItems returns the line items held in v, which may be a decoded
// JSON array, a string or raw bytes encoding one, or anything else. Entries
// that are not objects are dropped. The result is never nil.
func NormalizeItems(v any) []models.LineItem {
	items := make([]models.LineItem, 0)

	switch val := v.(type) {
	case []any:
		for _, entry := range val {
			if record, ok := entry.(map[string]any); ok {
				items = append(items, models.LineItem(record))
			}
		}
	case []map[string]any:
		for _, record := range val {
			if record != nil {
				items = append(items, models.LineItem(record))
			}
		}
	case []models.LineItem:
		for _, record := range val {
			if record != nil {
				items = append(items, record)
			}
		}
	case string:
		return decodeItems([]byte(strings.TrimSpace(val)))
	case datatypes.JSON:
		return decodeItems(val)
	case json.RawMessage:
		return decodeItems(val)
	case []byte:
		return decodeItems(val)
	}

	return items
}

// decodeItems parses raw JSON. A JSON string is unwrapped once more, since
// rows written by old clients hold the array double encoded.
func decodeItems(raw []byte) []models.LineItem {
	if len(raw) == 0 {
		return make([]models.LineItem, 0)
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return make([]models.LineItem, 0)
	}

	if s, ok := decoded.(string); ok {
		var inner any
		if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &inner); err != nil {
			return make([]models.LineItem, 0)
		}
		decoded = inner
	}

	if list, ok := decoded.([]any); ok {
		return NormalizeItems(list)
	}
	return make([]models.LineItem, 0)
}

// ItemsTotal sums price times quantity over items. A missing price counts
// as 0 and a missing quantity as 1.
func ItemsTotal(items []models.LineItem) float64 {
	var total float64
	for _, item := range items {
		price, _ := firstNumber(item, itemPriceAliases)
		quantity, ok := firstNumber(item, itemQuantityAliases)
		if !ok {
			quantity = 1
		}
		total += price * quantity
	}
	return total
}

// EncodeItems marshals items into the JSON stored in the items column
func EncodeItems(items []models.LineItem) datatypes.JSON {
	if len(items) == 0 {
		return datatypes.JSON("[]")
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(raw)
}

// firstPresent returns the first alias value that is neither null nor an
// empty string
func firstPresent(payload map[string]any, aliases []string) any {
	for _, key := range aliases {
		v, ok := payload[key]
		if !ok || v == nil {
			continue
		}
		if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
			continue
		}
		return v
	}
	return nil
}

func firstString(payload map[string]any, aliases []string) (string, bool) {
	for _, key := range aliases {
		if s, ok := asString(payload[key]); ok {
			return s, true
		}
	}
	return "", false
}

func firstNumber(payload map[string]any, aliases []string) (float64, bool) {
	for _, key := range aliases {
		if f, ok := asNumber(payload[key]); ok {
			return f, true
		}
	}
	return 0, false
}

// asString accepts non-blank strings and scalar numbers, so a table number
// sent as 12 is stored as "12"
func asString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		if strings.TrimSpace(val) == "" {
			return "", false
		}
		return val, true
	case json.Number:
		return val.String(), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	}
	return "", false
}

// asNumber accepts JSON numbers and numeric strings
func asNumber(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case json.Number:
		f, err := val.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
