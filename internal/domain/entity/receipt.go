package entity

import "github.com/shopspring/decimal"

// Tipos de ítem de inventario.
const (
	InventoryItemSerialized = "SERIALIZED_INV_ITEM"
	InventoryItemNonSerial  = "NON_SERIAL_INV_ITEM"
)

// Estados de ítem de inventario.
const (
	InventoryStatusAvailable = "INV_AVAILABLE"
	InventoryStatusOnHold    = "INV_ON_HOLD"
)

// Tipos de referencia documental de una línea de recepción.
const (
	DocumentRefOrder  = "ORDER"
	DocumentRefReturn = "RETURN"
)

// DocumentRef referencia a la orden o devolución que origina la línea (DOCUMNTREF).
type DocumentRef struct {
	Kind    string
	ID      string
	LineNum string
}

// ReceiptLine vista transitoria de una línea del documento (RECEIPTLN o QUANTITY de SYNC_INVENTORY).
type ReceiptLine struct {
	ProductID     string // puede venir vacío
	Magnitude     string // VALUE tal cual llega
	Sign          string // SIGN: "+" acepta, cualquier otro valor rechaza
	UOM           string
	Disposition   string // DISPOSITN (acuses)
	ItemStatus    string // ITEMSTATUS (sincronización), se usa tal cual
	Ref           DocumentRef
	SerialNumbers []string
}

// QuantitySplit cantidades aceptada/rechazada; solo una de las dos es distinta de cero.
type QuantitySplit struct {
	Accepted decimal.Decimal
	Rejected decimal.Decimal
}

// ReceiptOperation solicitud de recepción de inventario para una unidad de trabajo.
type ReceiptOperation struct {
	ProductID         string
	FacilityID        string
	LocationSeqID     string
	InventoryItemType string
	QuantityAccepted  decimal.Decimal
	QuantityRejected  decimal.Decimal
	SerialNumber      string
	StatusID          string
	UOM               string
	Ref               DocumentRef
	UserLoginID       string
}
