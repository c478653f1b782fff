package oagis

import (
	"context"

	"github.com/jhoicas/inventario-oagis/internal/domain/entity"
	"github.com/jhoicas/inventario-oagis/internal/infrastructure/oagisxml"
)

// ReceivePoAcknowledge procesa un acuse de recepción de orden de compra (RECEIPTLN con DOCUMNTREF a la orden).
func (s *Service) ReceivePoAcknowledge(ctx context.Context, req Request) Result {
	target := lineTarget{facilityID: s.settings.PoReceiptFacilityID}
	return s.run(ctx, entity.DocumentPoAcknowledge, req, s.settings.AckUserLoginID,
		func(ctx context.Context, b *batch, doc *oagisxml.Document) {
			for i, line := range doc.ReceiptLines(entity.DocumentRefOrder) {
				// el registro de auditoría conserva el DOCUMENTID de la última línea leída, aunque venga vacío
				b.orderID = line.Ref.ID
				s.processLine(ctx, b, i, line, target)
			}
		})
}

// ReceiveRmaAcknowledge procesa un acuse de recepción de devolución (DOCUMNTREF a la devolución).
func (s *Service) ReceiveRmaAcknowledge(ctx context.Context, req Request) Result {
	target := lineTarget{
		facilityID:    s.settings.PoReceiptFacilityID,
		locationSeqID: s.settings.ReturnReceiptLocationSeqID,
	}
	return s.run(ctx, entity.DocumentRmaAcknowledge, req, s.settings.AckUserLoginID,
		func(ctx context.Context, b *batch, doc *oagisxml.Document) {
			for i, line := range doc.ReceiptLines(entity.DocumentRefReturn) {
				s.processLine(ctx, b, i, line, target)
			}
		})
}
