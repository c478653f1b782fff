package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-oagis/internal/domain/entity"
)

// InventoryItemRepository puerto de persistencia para ítems de inventario recibidos.
type InventoryItemRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	// SerialExists indica si el serial ya fue recibido para el producto.
	SerialExists(ctx context.Context, productID, serialNumber string) (bool, error)
	// SumAvailableByProduct total disponible para prometer (ATP) del producto en todas las instalaciones.
	SumAvailableByProduct(ctx context.Context, productID string) (decimal.Decimal, error)
}
