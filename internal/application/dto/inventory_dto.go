package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-oagis/internal/application/inventory"
	"github.com/jhoicas/inventario-oagis/internal/domain/entity"
)

// FacilityStockDTO saldo de un producto en una instalación.
type FacilityStockDTO struct {
	FacilityID string          `json:"facility_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	UpdatedAt  time.Time       `json:"updated_at,omitzero"`
}

// ProductStockResponse respuesta de GET /api/inventory/products/:id/stock.
type ProductStockResponse struct {
	ProductID          string             `json:"product_id"`
	AvailableToPromise decimal.Decimal    `json:"available_to_promise"`
	Facilities         []FacilityStockDTO `json:"facilities"`
}

// MovementDTO movimiento de inventario generado por una recepción.
type MovementDTO struct {
	ID              string          `json:"id"`
	TransactionID   string          `json:"transaction_id"`
	InventoryItemID string          `json:"inventory_item_id"`
	FacilityID      string          `json:"facility_id"`
	Type            string          `json:"type"`
	Quantity        decimal.Decimal `json:"quantity"`
	Reference       string          `json:"reference,omitempty"`
	Date            time.Time       `json:"date"`
	CreatedBy       string          `json:"created_by,omitempty"`
}

// MovementListResponse página de movimientos de un producto.
type MovementListResponse struct {
	Items []MovementDTO `json:"items"`
	Page  PageResponse  `json:"page"`
}

// NewProductStockResponse convierte el saldo consultado al cuerpo HTTP.
func NewProductStockResponse(s *inventory.ProductStock) ProductStockResponse {
	out := ProductStockResponse{
		ProductID:          s.ProductID,
		AvailableToPromise: s.AvailableToPromise,
		Facilities:         make([]FacilityStockDTO, 0, len(s.Facilities)),
	}
	for _, f := range s.Facilities {
		out.Facilities = append(out.Facilities, FacilityStockDTO{
			FacilityID: f.FacilityID,
			Quantity:   f.Quantity,
			UpdatedAt:  f.UpdatedAt,
		})
	}
	return out
}

// NewMovementListResponse convierte los movimientos al cuerpo HTTP.
func NewMovementListResponse(list []*entity.InventoryMovement, page PageRequest) MovementListResponse {
	out := MovementListResponse{
		Items: make([]MovementDTO, 0, len(list)),
		Page:  PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, m := range list {
		out.Items = append(out.Items, MovementDTO{
			ID:              m.ID,
			TransactionID:   m.TransactionID,
			InventoryItemID: m.InventoryItemID,
			FacilityID:      m.FacilityID,
			Type:            m.Type,
			Quantity:        m.Quantity,
			Reference:       m.Reference,
			Date:            m.Date,
			CreatedBy:       m.CreatedBy,
		})
	}
	return out
}
