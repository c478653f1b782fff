package oagis

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-oagis/internal/domain/entity"
	"github.com/jhoicas/inventario-oagis/internal/domain/inventory"
)

// lineTarget destino de las operaciones de una línea; lo decide el tipo de documento.
// receiveRejected registra la cantidad rechazada como operación propia (SYNC_INVENTORY).
type lineTarget struct {
	facilityID      string
	locationSeqID   string
	receiveRejected bool
}

// processLine resuelve cantidad y estado, reconcilia seriales y envía cada operación en orden.
// Ningún error de la línea detiene las operaciones siguientes ni las demás líneas.
func (s *Service) processLine(ctx context.Context, b *batch, index int, line entity.ReceiptLine, target lineTarget) {
	desc := describeLine(index, line)

	split, err := inventory.ResolveQuantity(line.Magnitude, line.Sign)
	if err != nil {
		b.errs.Addf(entity.ReasonNumericFormat, "%s: %v", desc, err)
		b.log.Warn().Err(err).Str("product_id", line.ProductID).Msg("cantidad inválida, se omite la línea")
		return
	}

	tmpl := entity.ReceiptOperation{
		ProductID:     line.ProductID,
		FacilityID:    target.facilityID,
		LocationSeqID: target.locationSeqID,
		StatusID:      resolveStatus(line),
		UOM:           line.UOM,
		Ref:           line.Ref,
		UserLoginID:   b.userLoginID,
	}

	ops, mismatch := inventory.ReconcileSerials(split.Accepted, line.SerialNumbers, tmpl)
	if mismatch != nil {
		mismatch.Description = desc + ": " + mismatch.Description
		b.errs.Append(mismatch)
		b.log.Warn().Str("product_id", line.ProductID).Msg(mismatch.Description)
	}
	if len(ops) == 0 && target.receiveRejected {
		if op, ok := inventory.RejectedOperation(split.Rejected, tmpl); ok {
			ops = append(ops, op)
		}
	}
	if len(ops) == 0 {
		// TODO: los acuses aún no registran la cantidad rechazada; falta la ubicación de rechazo en OAGISConfig.
		b.log.Debug().Str("product_id", line.ProductID).Str("rejected", split.Rejected.String()).
			Msg("línea sin cantidad aceptada, no se generan recepciones")
		return
	}

	for _, op := range ops {
		s.submit(ctx, b, desc, op)
	}
}

// submit envía una operación y clasifica el error del servicio de recepción.
func (s *Service) submit(ctx context.Context, b *batch, desc string, op entity.ReceiptOperation) {
	b.operations++
	if _, err := s.receipts.ReceiveInventory(ctx, op); err != nil {
		code := classify(err, entity.ReasonReceiveInventoryService, entity.ReasonGenericService)
		target := desc
		if op.SerialNumber != "" {
			target = fmt.Sprintf("%s serial %q", desc, op.SerialNumber)
		}
		if code == entity.ReasonGenericService {
			b.errs.Addf(code, "error ejecutando receiveInventory en %s: %v", target, err)
		} else {
			b.errs.Addf(code, "%s: %v", target, err)
		}
		b.log.Error().Err(err).
			Str("reason_code", string(code)).
			Str("product_id", op.ProductID).
			Str("serial_number", op.SerialNumber).
			Msg("recepción de inventario rechazada")
	}
}

// resolveStatus usa el clasificador cuando la línea trae DISPOSITN; si no, el ITEMSTATUS tal cual.
// Una disposición desconocida deja el estado sin asignar.
func resolveStatus(line entity.ReceiptLine) string {
	if line.Disposition != "" {
		status, _ := inventory.ClassifyDisposition(line.Disposition)
		return status
	}
	return line.ItemStatus
}
