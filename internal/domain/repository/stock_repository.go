package repository

import (
	"context"

	"github.com/jhoicas/inventario-oagis/internal/domain/entity"
)

// StockRepository define el puerto para consultar/actualizar stock por instalación+producto.
// Usado dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	Get(ctx context.Context, productID, facilityID string) (*entity.Stock, error)
	Upsert(ctx context.Context, stock *entity.Stock) error
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, productID, facilityID string) (*entity.Stock, error)
	ListByProduct(ctx context.Context, productID string) ([]*entity.Stock, error)
}
