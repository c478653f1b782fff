package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-oagis/internal/domain"
	"github.com/jhoicas/inventario-oagis/internal/domain/entity"
	"github.com/jhoicas/inventario-oagis/internal/domain/repository"
)

// ReceiveInventoryUseCase recibe inventario de forma transaccional: crea el ítem,
// registra el movimiento IN y actualiza el stock de la instalación con bloqueo de fila.
type ReceiveInventoryUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	itemRepo    repository.InventoryItemRepository
	now         func() time.Time
}

// NewReceiveInventoryUseCase construye el caso de uso.
func NewReceiveInventoryUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	itemRepo repository.InventoryItemRepository,
) *ReceiveInventoryUseCase {
	return &ReceiveInventoryUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		itemRepo:    itemRepo,
		now:         time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *ReceiveInventoryUseCase) WithClock(now func() time.Time) *ReceiveInventoryUseCase {
	uc.now = now
	return uc
}

// ReceiveInventory aplica una operación de recepción. Los rechazos de negocio envuelven
// domain.ErrInvalidInput, domain.ErrNotFound o domain.ErrDuplicate; cualquier otro error
// es una falla de infraestructura.
func (uc *ReceiveInventoryUseCase) ReceiveInventory(ctx context.Context, op entity.ReceiptOperation) (*entity.InventoryItem, error) {
	if err := validateOperation(op); err != nil {
		return nil, err
	}

	product, err := uc.productRepo.GetByID(ctx, op.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto %s: %w", op.ProductID, domain.ErrNotFound)
	}
	if product.IsVirtual {
		return nil, fmt.Errorf("producto virtual %s no admite inventario: %w", op.ProductID, domain.ErrInvalidInput)
	}

	if op.InventoryItemType == entity.InventoryItemSerialized {
		exists, err := uc.itemRepo.SerialExists(ctx, op.ProductID, op.SerialNumber)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("serial %q ya recibido para %s: %w", op.SerialNumber, op.ProductID, domain.ErrDuplicate)
		}
	}

	now := uc.now()
	item := buildItem(op, now)
	txID := uuid.New().String()

	// Commit si todo ok, Rollback si algo falla (TxRunner.Run lo hace)
	err = uc.txRunner.Run(ctx, func(
		itemRepo repository.InventoryItemRepository,
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
	) error {
		if err := itemRepo.Create(ctx, item); err != nil {
			return err
		}
		if op.QuantityAccepted.IsPositive() {
			// Bloquea la fila de stock (SELECT FOR UPDATE) para evitar condiciones de carrera
			stock, err := stockRepo.GetForUpdate(ctx, op.ProductID, op.FacilityID)
			if err != nil {
				return err
			}
			stock.Quantity = stock.Quantity.Add(item.AvailableToPromise)
			stock.UpdatedAt = now
			if err := stockRepo.Upsert(ctx, stock); err != nil {
				return err
			}
			if err := movRepo.Create(ctx, buildMovement(item, entity.MovementTypeIN, op.QuantityAccepted, txID, now)); err != nil {
				return err
			}
		}
		if op.QuantityRejected.IsPositive() {
			return movRepo.Create(ctx, buildMovement(item, entity.MovementTypeREJECTED, op.QuantityRejected, txID, now))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// AvailableToPromise total disponible para prometer del producto.
func (uc *ReceiveInventoryUseCase) AvailableToPromise(ctx context.Context, productID string) (decimal.Decimal, error) {
	if productID == "" {
		return decimal.Zero, fmt.Errorf("producto requerido: %w", domain.ErrInvalidInput)
	}
	return uc.itemRepo.SumAvailableByProduct(ctx, productID)
}

func validateOperation(op entity.ReceiptOperation) error {
	switch {
	case op.ProductID == "":
		return fmt.Errorf("producto requerido: %w", domain.ErrInvalidInput)
	case op.FacilityID == "":
		return fmt.Errorf("instalación requerida: %w", domain.ErrInvalidInput)
	case op.QuantityAccepted.IsNegative() || op.QuantityRejected.IsNegative():
		return fmt.Errorf("cantidades negativas: %w", domain.ErrInvalidInput)
	case op.QuantityAccepted.IsZero() && op.QuantityRejected.IsZero():
		return fmt.Errorf("cantidad en cero: %w", domain.ErrInvalidInput)
	}
	switch op.InventoryItemType {
	case entity.InventoryItemNonSerial:
	case entity.InventoryItemSerialized:
		if op.SerialNumber == "" {
			return fmt.Errorf("ítem serializado sin serial: %w", domain.ErrInvalidInput)
		}
		if op.QuantityAccepted.Add(op.QuantityRejected).GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("ítem serializado con cantidad mayor a 1: %w", domain.ErrInvalidInput)
		}
	default:
		return fmt.Errorf("tipo de ítem %q: %w", op.InventoryItemType, domain.ErrInvalidInput)
	}
	return nil
}

// buildItem arma el ítem; los ítems en espera (INV_ON_HOLD) no suman al disponible.
func buildItem(op entity.ReceiptOperation, now time.Time) *entity.InventoryItem {
	atp := op.QuantityAccepted
	if op.StatusID == entity.InventoryStatusOnHold {
		atp = decimal.Zero
	}
	item := &entity.InventoryItem{
		ID:                 uuid.New().String(),
		ProductID:          op.ProductID,
		FacilityID:         op.FacilityID,
		LocationSeqID:      op.LocationSeqID,
		InventoryItemType:  op.InventoryItemType,
		StatusID:           op.StatusID,
		SerialNumber:       op.SerialNumber,
		QuantityOnHand:     op.QuantityAccepted,
		AvailableToPromise: atp,
		QuantityRejected:   op.QuantityRejected,
		UOM:                op.UOM,
		DateReceived:       now,
		CreatedBy:          op.UserLoginID,
	}
	switch op.Ref.Kind {
	case entity.DocumentRefOrder:
		item.OrderID, item.OrderItemSeqID = op.Ref.ID, op.Ref.LineNum
	case entity.DocumentRefReturn:
		item.ReturnID, item.ReturnItemSeqID = op.Ref.ID, op.Ref.LineNum
	}
	return item
}

func buildMovement(item *entity.InventoryItem, movType string, qty decimal.Decimal, txID string, now time.Time) *entity.InventoryMovement {
	return &entity.InventoryMovement{
		TransactionID:   txID,
		InventoryItemID: item.ID,
		ProductID:       item.ProductID,
		FacilityID:      item.FacilityID,
		Type:            movType,
		Quantity:        qty,
		Reference:       reference(item),
		Date:            now,
		CreatedAt:       now,
		CreatedBy:       item.CreatedBy,
	}
}

// reference texto de trazabilidad del movimiento (ej. "ORDER:WS10000/00001").
func reference(item *entity.InventoryItem) string {
	switch {
	case item.OrderID != "":
		return entity.DocumentRefOrder + ":" + item.OrderID + "/" + item.OrderItemSeqID
	case item.ReturnID != "":
		return entity.DocumentRefReturn + ":" + item.ReturnID + "/" + item.ReturnItemSeqID
	}
	return ""
}
