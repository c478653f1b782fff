package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa el saldo disponible de un producto en una instalación (tabla materializada).
type Stock struct {
	ProductID  string
	FacilityID string
	Quantity   decimal.Decimal
	UpdatedAt  time.Time
}
