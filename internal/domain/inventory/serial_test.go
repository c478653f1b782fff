package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-oagis/internal/domain/entity"
	"github.com/jhoicas/inventario-oagis/internal/domain/inventory"
)

func template() entity.ReceiptOperation {
	return entity.ReceiptOperation{
		ProductID:   "PROD-1",
		FacilityID:  "WebStoreWarehouse",
		StatusID:    entity.InventoryStatusAvailable,
		Ref:         entity.DocumentRef{Kind: entity.DocumentRefOrder, ID: "PO100", LineNum: "00001"},
		UserLoginID: "system",
	}
}

func TestReconcileSerials_CantidadCoincide(t *testing.T) {
	ops, rec := inventory.ReconcileSerials(decimal.NewFromInt(3), []string{"A", "B", "C"}, template())

	assert.Nil(t, rec)
	require.Len(t, ops, 3)
	for i, sn := range []string{"A", "B", "C"} {
		assert.Equal(t, sn, ops[i].SerialNumber, "orden de entrada")
		assert.Equal(t, entity.InventoryItemSerialized, ops[i].InventoryItemType)
		assert.True(t, ops[i].QuantityAccepted.Equal(decimal.NewFromInt(1)))
		assert.True(t, ops[i].QuantityRejected.IsZero())
		assert.Equal(t, "PROD-1", ops[i].ProductID)
		assert.Equal(t, "PO100", ops[i].Ref.ID)
	}
}

// Cantidad 5 con 3 seriales: se registra el descuadre y aun así se emiten 3 operaciones.
func TestReconcileSerials_Descuadre(t *testing.T) {
	split, err := inventory.ResolveQuantity("5", "+")
	require.NoError(t, err)

	ops, rec := inventory.ReconcileSerials(split.Accepted, []string{"A", "B", "C"}, template())

	require.NotNil(t, rec)
	assert.Equal(t, entity.ReasonQuantitySerialMismatch, rec.ReasonCode)
	assert.Contains(t, rec.Description, "5")
	assert.Contains(t, rec.Description, "3")
	require.Len(t, ops, 3)
	for _, op := range ops {
		assert.True(t, op.QuantityAccepted.Equal(decimal.NewFromInt(1)))
	}
}

func TestReconcileSerials_DescuadreDecimal(t *testing.T) {
	ops, rec := inventory.ReconcileSerials(decimal.RequireFromString("2.5"), []string{"A", "B"}, template())
	require.NotNil(t, rec)
	assert.Len(t, ops, 2)
}

func TestReconcileSerials_SinSeriales(t *testing.T) {
	ops, rec := inventory.ReconcileSerials(decimal.RequireFromString("12.5"), nil, template())

	assert.Nil(t, rec)
	require.Len(t, ops, 1)
	assert.Equal(t, entity.InventoryItemNonSerial, ops[0].InventoryItemType)
	assert.True(t, ops[0].QuantityAccepted.Equal(decimal.RequireFromString("12.5")))
	assert.True(t, ops[0].QuantityRejected.IsZero())
	assert.Empty(t, ops[0].SerialNumber)
}

func TestReconcileSerials_AceptadoNoPositivo(t *testing.T) {
	split, err := inventory.ResolveQuantity("10", "-")
	require.NoError(t, err)
	assert.True(t, split.Rejected.Equal(decimal.NewFromInt(10)))

	for _, serials := range [][]string{nil, {"A"}, {"A", "B"}} {
		ops, rec := inventory.ReconcileSerials(split.Accepted, serials, template())
		assert.Empty(t, ops)
		assert.Nil(t, rec)
	}

	ops, rec := inventory.ReconcileSerials(decimal.NewFromInt(-2), []string{"A"}, template())
	assert.Empty(t, ops)
	assert.Nil(t, rec)
}

func TestRejectedOperation(t *testing.T) {
	op, ok := inventory.RejectedOperation(decimal.RequireFromString("4.5"), template())
	require.True(t, ok)
	assert.Equal(t, entity.InventoryItemNonSerial, op.InventoryItemType)
	assert.True(t, op.QuantityAccepted.IsZero())
	assert.True(t, op.QuantityRejected.Equal(decimal.RequireFromString("4.5")))
	assert.Empty(t, op.SerialNumber)
	assert.Equal(t, "PROD-1", op.ProductID)
	assert.Equal(t, "system", op.UserLoginID)

	for _, v := range []string{"0", "-1"} {
		_, ok := inventory.RejectedOperation(decimal.RequireFromString(v), template())
		assert.False(t, ok, "rechazado %s", v)
	}
}
