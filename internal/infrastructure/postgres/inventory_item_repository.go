package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-oagis/internal/domain"
	"github.com/jhoicas/inventario-oagis/internal/domain/entity"
	"github.com/jhoicas/inventario-oagis/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo ítems de inventario sobre PostgreSQL (usable con pool o tx).
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

// Create persiste el ítem. Un serial repetido para el mismo producto devuelve domain.ErrDuplicate.
func (r *InventoryItemRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_items (
			id, product_id, facility_id, location_seq_id, inventory_item_type, status_id, serial_number,
			quantity_on_hand, available_to_promise, quantity_rejected, uom,
			order_id, order_item_seq_id, return_id, return_item_seq_id, date_received, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.ProductID, item.FacilityID, nullable(item.LocationSeqID), item.InventoryItemType,
		nullable(item.StatusID), nullable(item.SerialNumber),
		item.QuantityOnHand, item.AvailableToPromise, item.QuantityRejected, nullable(item.UOM),
		nullable(item.OrderID), nullable(item.OrderItemSeqID), nullable(item.ReturnID), nullable(item.ReturnItemSeqID),
		item.DateReceived, nullable(item.CreatedBy),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("serial %q del producto %s: %w", item.SerialNumber, item.ProductID, domain.ErrDuplicate)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("producto %s: %w", item.ProductID, domain.ErrNotFound)
		}
		return fmt.Errorf("create inventory item: %w", err)
	}
	return nil
}

// SerialExists indica si el serial ya fue recibido para el producto.
func (r *InventoryItemRepo) SerialExists(ctx context.Context, productID, serialNumber string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM inventory_items WHERE product_id = $1 AND serial_number = $2)`
	var exists bool
	if err := r.q.QueryRow(ctx, query, productID, serialNumber).Scan(&exists); err != nil {
		return false, fmt.Errorf("serial exists: %w", err)
	}
	return exists, nil
}

// SumAvailableByProduct total ATP del producto en todas las instalaciones.
func (r *InventoryItemRepo) SumAvailableByProduct(ctx context.Context, productID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(available_to_promise), 0) FROM inventory_items WHERE product_id = $1`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, productID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum available: %w", err)
	}
	return total, nil
}
