package oagis

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-oagis/internal/domain/entity"
	"github.com/jhoicas/inventario-oagis/internal/infrastructure/oagisxml"
)

// SyncInventory procesa un SYNC_INVENTORY: consulta el disponible del ITEM, recibe la cantidad
// declarada solo si difiere del disponible y envía el correo de confirmación configurado.
func (s *Service) SyncInventory(ctx context.Context, req Request) Result {
	return s.run(ctx, entity.DocumentSyncInventory, req, s.settings.SyncUserLoginID,
		func(ctx context.Context, b *batch, doc *oagisxml.Document) {
			line, ok := doc.SyncInventoryLine()
			if !ok {
				b.log.Info().Msg("SYNC_INVENTORY sin QUANTITY, no hay líneas que procesar")
				return
			}

			atp, atpKnown := s.queryAvailable(ctx, b, line.ProductID)
			received := true
			if atpKnown && sameQuantity(line.Magnitude, atp) {
				received = false
				b.log.Info().Str("product_id", line.ProductID).Str("available", atp.String()).
					Msg("el valor declarado coincide con el disponible, no se recibe inventario")
			} else {
				s.processLine(ctx, b, 0, line, lineTarget{facilityID: s.settings.SyncFacilityID, receiveRejected: true})
			}

			available := ""
			if atpKnown {
				available = atp.String()
			}
			s.notifyConfirmation(ctx, b, AvailabilityReport{
				ReferenceID:    b.envelope.ReferenceID,
				LogicalID:      b.envelope.LogicalID,
				ProductID:      line.ProductID,
				FacilityID:     s.settings.SyncFacilityID,
				Declared:       line.Magnitude,
				AvailableTotal: available,
				Received:       received,
				GeneratedAt:    s.now(),
			})
		})
}

// queryAvailable consulta el ATP. Un error se registra y deja la comparación como desigual.
func (s *Service) queryAvailable(ctx context.Context, b *batch, productID string) (decimal.Decimal, bool) {
	atp, err := s.availability.AvailableToPromise(ctx, productID)
	if err != nil {
		code := classify(err, entity.ReasonInventoryAvailableService, entity.ReasonGenericService)
		if code == entity.ReasonGenericService {
			b.errs.Addf(code, "error ejecutando getProductInventoryAvailable para %q: %v", productID, err)
		} else {
			b.errs.Addf(code, "producto %q: %v", productID, err)
		}
		b.log.Error().Err(err).Str("reason_code", string(code)).Str("product_id", productID).
			Msg("error consultando inventario disponible")
		return decimal.Zero, false
	}
	return atp, true
}

// sameQuantity compara el VALUE declarado con el disponible como decimales.
func sameQuantity(magnitude string, atp decimal.Decimal) bool {
	declared, err := decimal.NewFromString(strings.TrimSpace(magnitude))
	if err != nil {
		return false
	}
	return declared.Equal(atp)
}

// notifyConfirmation envía el correo de confirmación si la tienda tiene plantilla configurada.
func (s *Service) notifyConfirmation(ctx context.Context, b *batch, report AvailabilityReport) {
	setting, err := s.emailSettings.Get(ctx, s.settings.ProductStoreID, s.settings.ConfirmEmailType)
	if err != nil {
		b.errs.Addf(entity.ReasonGenericEntity, "error obteniendo ProductStoreEmailSetting: %v", err)
		b.log.Error().Err(err).Msg("error obteniendo configuración de correo")
		return
	}
	if !setting.HasTemplate() {
		b.log.Debug().Str("product_store_id", s.settings.ProductStoreID).
			Msg("sin plantilla de confirmación, no se envía correo")
		return
	}

	contacts, err := s.contacts.ListByFacility(ctx, s.settings.SyncFacilityID, entity.ContactMechEmail)
	if err != nil {
		b.errs.Addf(entity.ReasonGenericEntity, "error obteniendo FacilityContactMech: %v", err)
		b.log.Error().Err(err).Msg("error obteniendo contactos de la instalación")
		return
	}
	to := make([]string, 0, len(contacts))
	for _, c := range contacts {
		if c.ContactMechTypeID == entity.ContactMechEmail && c.InfoString != "" {
			to = append(to, c.InfoString)
		}
	}

	n := Notification{
		To:           to,
		From:         setting.FromAddress,
		Cc:           setting.CcAddress,
		Bcc:          setting.BccAddress,
		Subject:      setting.Subject,
		ContentType:  setting.ContentType,
		BodyLocation: setting.BodyScreenLocation,
		Variables: map[string]any{
			"atptMap": map[string]any{"qoh": report.AvailableTotal},
		},
		Report: report,
	}
	if err := s.notifier.Send(ctx, n); err != nil {
		code := classify(err, entity.ReasonSendMailService, entity.ReasonGenericService)
		if code == entity.ReasonGenericService {
			b.errs.Addf(code, "error ejecutando sendMail: %v", err)
		} else {
			b.errs.Add(code, err.Error())
		}
		b.log.Error().Err(err).Str("reason_code", string(code)).Msg("error enviando confirmación")
		return
	}
	b.log.Info().Int("recipients", len(to)).Msg("confirmación de inventario enviada")
}
