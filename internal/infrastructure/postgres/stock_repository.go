package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-oagis/internal/domain/entity"
	"github.com/jhoicas/inventario-oagis/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock actual de un producto en una instalación.
func (r *StockRepo) Get(ctx context.Context, productID, facilityID string) (*entity.Stock, error) {
	query := `
		SELECT product_id, facility_id, quantity, updated_at
		FROM stock WHERE product_id = $1 AND facility_id = $2`
	return r.scanOne(ctx, query, productID, facilityID, "get stock")
}

// GetForUpdate obtiene el stock y bloquea la fila para update (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(ctx context.Context, productID, facilityID string) (*entity.Stock, error) {
	query := `
		SELECT product_id, facility_id, quantity, updated_at
		FROM stock WHERE product_id = $1 AND facility_id = $2
		FOR UPDATE`
	return r.scanOne(ctx, query, productID, facilityID, "get stock for update")
}

func (r *StockRepo) scanOne(ctx context.Context, query, productID, facilityID, op string) (*entity.Stock, error) {
	var s entity.Stock
	err := r.q.QueryRow(ctx, query, productID, facilityID).Scan(
		&s.ProductID, &s.FacilityID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProductID: productID, FacilityID: facilityID, Quantity: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad en stock (por producto e instalación).
func (r *StockRepo) Upsert(ctx context.Context, stock *entity.Stock) error {
	query := `
		INSERT INTO stock (product_id, facility_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, facility_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(ctx, query, stock.ProductID, stock.FacilityID, stock.Quantity)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// ListByProduct saldo del producto en cada instalación, ordenado por instalación.
func (r *StockRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.Stock, error) {
	query := `
		SELECT product_id, facility_id, quantity, updated_at
		FROM stock WHERE product_id = $1
		ORDER BY facility_id`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock by product: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ProductID, &s.FacilityID, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
