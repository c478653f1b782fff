package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-oagis/internal/domain"
	"github.com/jhoicas/inventario-oagis/internal/domain/entity"
	"github.com/jhoicas/inventario-oagis/internal/domain/repository"
)

// ProductStock saldo de un producto por instalación junto con su total disponible para prometer.
type ProductStock struct {
	ProductID          string
	AvailableToPromise decimal.Decimal
	Facilities         []*entity.Stock
}

// QueryUseCase consultas de solo lectura sobre el inventario recibido.
type QueryUseCase struct {
	stockRepo    repository.StockRepository
	movementRepo repository.InventoryMovementRepository
	itemRepo     repository.InventoryItemRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(
	stockRepo repository.StockRepository,
	movementRepo repository.InventoryMovementRepository,
	itemRepo repository.InventoryItemRepository,
) *QueryUseCase {
	return &QueryUseCase{stockRepo: stockRepo, movementRepo: movementRepo, itemRepo: itemRepo}
}

// ProductStock devuelve el saldo del producto. facilityID vacío lista todas las instalaciones.
func (uc *QueryUseCase) ProductStock(ctx context.Context, productID, facilityID string) (*ProductStock, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, fmt.Errorf("producto requerido: %w", domain.ErrInvalidInput)
	}

	var facilities []*entity.Stock
	if facilityID != "" {
		s, err := uc.stockRepo.Get(ctx, productID, facilityID)
		if err != nil {
			return nil, err
		}
		if s != nil {
			facilities = append(facilities, s)
		}
	} else {
		list, err := uc.stockRepo.ListByProduct(ctx, productID)
		if err != nil {
			return nil, err
		}
		facilities = list
	}

	atp, err := uc.itemRepo.SumAvailableByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return &ProductStock{ProductID: productID, AvailableToPromise: atp, Facilities: facilities}, nil
}

// Movements lista los movimientos del producto, más recientes primero.
func (uc *QueryUseCase) Movements(ctx context.Context, productID string, limit, offset int) ([]*entity.InventoryMovement, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, fmt.Errorf("producto requerido: %w", domain.ErrInvalidInput)
	}
	return uc.movementRepo.ListByProduct(ctx, productID, limit, offset)
}
