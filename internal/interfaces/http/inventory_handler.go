package http

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-oagis/internal/application/dto"
	"github.com/jhoicas/inventario-oagis/internal/application/inventory"
	"github.com/jhoicas/inventario-oagis/internal/domain"
	"github.com/jhoicas/inventario-oagis/internal/domain/entity"
)

// InventoryQuerier consultas de inventario; lo implementa *inventory.QueryUseCase.
type InventoryQuerier interface {
	ProductStock(ctx context.Context, productID, facilityID string) (*inventory.ProductStock, error)
	Movements(ctx context.Context, productID string, limit, offset int) ([]*entity.InventoryMovement, error)
}

// InventoryHandler maneja las consultas HTTP de saldo y movimientos.
type InventoryHandler struct {
	uc       InventoryQuerier
	validate *validator.Validate
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc InventoryQuerier) *InventoryHandler {
	return &InventoryHandler{uc: uc, validate: validator.New()}
}

// GetStock godoc
// @Summary      Saldo de un producto
// @Description  Saldo por instalación y total disponible para prometer.
// @Tags         inventory
// @Produce      json
// @Param        id           path   string  true   "ID del producto"
// @Param        facility_id  query  string  false  "Filtrar por instalación. Vacío = todas."
// @Success      200  {object}  dto.ProductStockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/products/{id}/stock [get]
func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	stock, err := h.uc.ProductStock(c.Context(), c.Params("id"), c.Query("facility_id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.NewProductStockResponse(stock))
}

// ListMovements godoc
// @Summary      Movimientos de un producto
// @Tags         inventory
// @Produce      json
// @Param        id      path   string  true   "ID del producto"
// @Param        limit   query  int     false  "Máximo de resultados (1-100, por defecto 20)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/products/{id}/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	page.DefaultPage()
	if err := h.validate.Struct(page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	list, err := h.uc.Movements(c.Context(), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.NewMovementListResponse(list, page))
}

// errorResponse traduce los errores de dominio a códigos HTTP.
func errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
