package inventory

import (
	"context"

	"github.com/jhoicas/inventario-oagis/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad de cada recepción (ítem + movimiento + stock).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.InventoryItemRepository,
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
	) error) error
}
