package model

import (
	"smeraldo/shared/model"
	"time"
)

const (
	TableName  = "inventory_items"
	EntityName = "inventory_item"

	FieldID                = "id"
	FieldName              = "name"
	FieldCategory          = "category"
	FieldCurrentStock      = "current_stock"
	FieldLowStockThreshold = "low_stock_threshold"
	FieldUnit              = "unit"
)

// InventoryItem is a counted supply. Stock changes only through movements.
type InventoryItem struct {
	ID                string `db:"id"`
	Name              string `db:"name"`
	Category          string `db:"category"`
	CurrentStock      int    `db:"current_stock"`
	LowStockThreshold int    `db:"low_stock_threshold"`
	Unit              string `db:"unit"`
	model.Metadata
}

// LowStock reports whether the item has reached its restock threshold.
func (i *InventoryItem) LowStock() bool {
	return i.CurrentStock <= i.LowStockThreshold
}

const (
	MovementTableName  = "stock_movements"
	MovementEntityName = "stock_movement"

	MovementFieldID            = "id"
	MovementFieldItemID        = "item_id"
	MovementFieldType          = "movement_type"
	MovementFieldQuantity      = "quantity"
	MovementFieldRecipientName = "recipient_name"
	MovementFieldLoggedBy      = "logged_by"
	MovementFieldDate          = "movement_date"
)

const (
	MovementStockIn  = "stock_in"
	MovementStockOut = "stock_out"
)

// StockMovement is an insert-only delta against an item's stock.
type StockMovement struct {
	ID            string    `db:"id"`
	ItemID        string    `db:"item_id"`
	MovementType  string    `db:"movement_type"`
	Quantity      int       `db:"quantity"`
	RecipientName *string   `db:"recipient_name"`
	LoggedBy      string    `db:"logged_by"`
	MovementDate  time.Time `db:"movement_date"`
	model.Metadata
}
