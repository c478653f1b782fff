package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIN       = "IN"       // recepción aceptada
	MovementTypeREJECTED = "REJECTED" // cantidad rechazada, no suma al disponible
)

// InventoryMovement deja traza de cada recepción aplicada sobre un InventoryItem.
type InventoryMovement struct {
	ID              string
	TransactionID   string
	InventoryItemID string
	ProductID       string
	FacilityID      string
	Type            string
	Quantity        decimal.Decimal
	Reference       string // orden o devolución de origen (ej. "ORDER:WS10000/00001")
	Date            time.Time
	CreatedAt       time.Time
	CreatedBy       string
}
