package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-oagis/internal/domain/entity"
)

// ReconcileSerials genera las operaciones de recepción de una línea a partir de la
// cantidad aceptada y los seriales recibidos.
//
//   - accepted <= 0: ninguna operación.
//   - con seriales: una operación SERIALIZED por serial (cantidad 1) en el orden de entrada;
//     si la cantidad de seriales no coincide con accepted se devuelve además un
//     ErrorRecord QuantitySerialMismatch, pero las operaciones se generan igual.
//   - sin seriales: una única operación NON_SERIAL con la cantidad completa.
//
// El template aporta producto, instalación, ubicación, estado, referencia y usuario.
func ReconcileSerials(accepted decimal.Decimal, serials []string, tmpl entity.ReceiptOperation) ([]entity.ReceiptOperation, *entity.ErrorRecord) {
	if !accepted.IsPositive() {
		return nil, nil
	}

	if len(serials) == 0 {
		op := tmpl
		op.InventoryItemType = entity.InventoryItemNonSerial
		op.SerialNumber = ""
		op.QuantityAccepted = accepted
		op.QuantityRejected = decimal.Zero
		return []entity.ReceiptOperation{op}, nil
	}

	var mismatch *entity.ErrorRecord
	if !accepted.Equal(decimal.NewFromInt(int64(len(serials)))) {
		desc := fmt.Sprintf("la cantidad aceptada [%s] no coincide con el número de seriales recibidos [%d]",
			accepted.String(), len(serials))
		mismatch = &entity.ErrorRecord{ReasonCode: entity.ReasonQuantitySerialMismatch, Description: desc}
	}

	ops := make([]entity.ReceiptOperation, 0, len(serials))
	for _, sn := range serials {
		op := tmpl
		op.InventoryItemType = entity.InventoryItemSerialized
		op.SerialNumber = sn
		op.QuantityAccepted = decimal.NewFromInt(1)
		op.QuantityRejected = decimal.Zero
		ops = append(ops, op)
	}
	return ops, mismatch
}

// RejectedOperation arma la operación NON_SERIAL que registra solo la cantidad rechazada.
// ok=false si rejected no es positivo.
func RejectedOperation(rejected decimal.Decimal, tmpl entity.ReceiptOperation) (op entity.ReceiptOperation, ok bool) {
	if !rejected.IsPositive() {
		return entity.ReceiptOperation{}, false
	}
	op = tmpl
	op.InventoryItemType = entity.InventoryItemNonSerial
	op.SerialNumber = ""
	op.QuantityAccepted = decimal.Zero
	op.QuantityRejected = rejected
	return op, true
}
