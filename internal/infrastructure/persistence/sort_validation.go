package persistence

import "strings"

// CommonSortFields are sortable columns shared by every entity.
var CommonSortFields = map[string]bool{
	"created_at": true,
	"updated_at": true,
}

// BrandSortFields are the sortable columns for brand queries.
var BrandSortFields = map[string]bool{
	"name": true,
}

// SupplierSortFields are the sortable columns for supplier queries.
var SupplierSortFields = map[string]bool{
	"name":   true,
	"status": true,
}

// PurchaseOrderSortFields are the sortable columns for purchase order queries.
var PurchaseOrderSortFields = map[string]bool{
	"order_number": true,
	"order_date":   true,
	"total_amount": true,
	"status":       true,
}

// InventoryUnitSortFields are the sortable columns for inventory unit queries.
var InventoryUnitSortFields = map[string]bool{
	"model":         true,
	"imei":          true,
	"condition":     true,
	"cost_price":    true,
	"selling_price": true,
	"status":        true,
	"purchase_date": true,
}

// ValidateSortField returns the field if it is allowed for the entity,
// otherwise falls back to created_at.
func ValidateSortField(field string, allowed map[string]bool) string {
	field = strings.ToLower(strings.TrimSpace(field))
	if field == "" {
		return "created_at"
	}
	if allowed[field] || CommonSortFields[field] {
		return field
	}
	return "created_at"
}

// ValidateSortOrder normalizes the sort direction, defaulting to desc.
func ValidateSortOrder(order string) string {
	switch strings.ToLower(strings.TrimSpace(order)) {
	case "asc":
		return "asc"
	default:
		return "desc"
	}
}
