package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem unidad de inventario creada por una recepción (serializada o a granel).
type InventoryItem struct {
	ID                 string
	ProductID          string
	FacilityID         string
	LocationSeqID      string
	InventoryItemType  string
	StatusID           string
	SerialNumber       string
	QuantityOnHand     decimal.Decimal
	AvailableToPromise decimal.Decimal
	QuantityRejected   decimal.Decimal
	UOM                string
	OrderID            string
	OrderItemSeqID     string
	ReturnID           string
	ReturnItemSeqID    string
	DateReceived       time.Time
	CreatedBy          string
}
