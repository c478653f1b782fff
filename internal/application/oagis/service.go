// Package oagis concilia BODs OAGIS entrantes (SYNC_INVENTORY, acuse de recepción de PO y de RMA)
// contra el inventario: lee el sobre, procesa cada línea, registra la auditoría y acumula errores
// sin abortar el lote. Solo un documento ilegible termina el procesamiento de forma anticipada.
package oagis

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventario-oagis/internal/domain"
	"github.com/jhoicas/inventario-oagis/internal/domain/entity"
	"github.com/jhoicas/inventario-oagis/internal/infrastructure/oagisxml"
	"github.com/jhoicas/inventario-oagis/pkg/logger"
)

// Settings parámetros resueltos una vez al arranque e inyectados en el servicio.
type Settings struct {
	SyncFacilityID             string // instalación de SYNC_INVENTORY
	PoReceiptFacilityID        string // instalación de acuses de PO y RMA
	ReturnReceiptLocationSeqID string // ubicación de acuses de RMA
	SyncUserLoginID            string // identidad por defecto de SYNC_INVENTORY
	AckUserLoginID             string // identidad por defecto de los acuses
	ProductStoreID             string
	ConfirmEmailType           string
}

// Request documento recibido. UserLoginID vacío usa la identidad por defecto del tipo de documento.
type Request struct {
	Body        []byte
	UserLoginID string
}

// Service coordinador de lotes OAGIS. Es seguro para uso concurrente: cada llamada
// construye su propio sobre y registro de errores.
type Service struct {
	identity      IdentityResolver
	audit         AuditRecorder
	availability  AvailabilityQuerier
	receipts      ReceiptSubmitter
	contacts      ContactLookup
	emailSettings EmailSettingLookup
	notifier      Notifier
	settings      Settings
	log           *logger.Logger
	now           func() time.Time
}

// NewService construye el coordinador con todas sus dependencias.
func NewService(
	identity IdentityResolver,
	audit AuditRecorder,
	availability AvailabilityQuerier,
	receipts ReceiptSubmitter,
	contacts ContactLookup,
	emailSettings EmailSettingLookup,
	notifier Notifier,
	settings Settings,
	log *logger.Logger,
) *Service {
	return &Service{
		identity:      identity,
		audit:         audit,
		availability:  availability,
		receipts:      receipts,
		contacts:      contacts,
		emailSettings: emailSettings,
		notifier:      notifier,
		settings:      settings,
		log:           log,
		now:           time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// batch estado de un documento en curso.
type batch struct {
	kind        string
	stage       Stage
	envelope    entity.InboundMessage
	errs        entity.ErrorLog
	userLoginID string
	orderID     string
	operations  int
	log         *logger.Logger
}

// run ejecuta las etapas comunes y delega el procesamiento de líneas en processLines.
func (s *Service) run(
	ctx context.Context,
	kind string,
	req Request,
	defaultUser string,
	processLines func(ctx context.Context, b *batch, doc *oagisxml.Document),
) Result {
	b := &batch{kind: kind, stage: StageParsing, log: s.log}

	doc, err := oagisxml.Parse(req.Body)
	if err != nil {
		b.errs.Add(entity.ReasonParseError, err.Error())
		b.stage = StageFailed
		s.log.Error().Err(err).Str("document_kind", kind).Msg("documento OAGIS ilegible")
		return b.result()
	}

	b.envelope = doc.Envelope()
	b.envelope.DocumentKind = kind
	b.envelope.ReceivedAt = s.now()
	b.stage = StageEnvelopeExtracted
	b.log = s.log.WithFields(map[string]any{
		"document_kind": kind,
		"logical_id":    b.envelope.LogicalID,
		"reference_id":  b.envelope.ReferenceID,
	})

	b.userLoginID = s.resolveIdentity(ctx, b, req.UserLoginID, defaultUser)

	processLines(ctx, b, doc)
	b.stage = StageLinesProcessed

	s.recordAudit(ctx, b)
	b.stage = StageFinalized

	res := b.result()
	if res.Success {
		b.log.Info().Int("operations", b.operations).Msg("mensaje OAGIS procesado")
	} else {
		b.log.Warn().Int("operations", b.operations).Int("errors", len(res.Errors)).Msg("mensaje OAGIS procesado con errores")
	}
	return res
}

// resolveIdentity busca el usuario solicitado o el de por defecto. Si la búsqueda falla
// o el usuario no existe se continúa sin identidad; no es un error del mensaje.
func (s *Service) resolveIdentity(ctx context.Context, b *batch, requested, defaultUser string) string {
	id := requested
	if id == "" {
		id = defaultUser
	}
	if id == "" {
		return ""
	}
	user, err := s.identity.GetByID(ctx, id)
	if err != nil {
		b.log.Error().Err(err).Str("user_login_id", id).Msg("error obteniendo UserLogin")
		return ""
	}
	if user == nil || !user.Enabled {
		b.log.Warn().Str("user_login_id", id).Msg("UserLogin inexistente o deshabilitado")
		return ""
	}
	return user.UserLoginID
}

// recordAudit crea el registro OagisMessageInfo. Se intenta exactamente una vez por documento.
func (s *Service) recordAudit(ctx context.Context, b *batch) {
	info := &entity.OagisMessageInfo{
		InboundMessage: b.envelope,
		OrderID:        b.orderID,
		CreatedBy:      b.userLoginID,
		CreatedAt:      s.now(),
	}
	if err := s.audit.Create(ctx, info); err != nil {
		code := classify(err, entity.ReasonCreateMessageService, entity.ReasonCreateMessageInfo)
		if code == entity.ReasonCreateMessageService {
			b.errs.Add(code, err.Error())
		} else {
			b.errs.Addf(code, "error creando OagisMessageInfo para el mensaje entrante: %v", err)
		}
		b.log.Error().Err(err).Str("reason_code", string(code)).Msg("error registrando auditoría del mensaje")
	}
}

func (b *batch) result() Result {
	res := Result{
		ContentType: ContentTypePlain,
		Success:     b.errs.Empty(),
		Envelope:    b.envelope,
		Stage:       b.stage,
		Operations:  b.operations,
	}
	switch {
	case b.stage == StageFailed:
		res.Message = MessageParseFailed
	case res.Success:
		res.Message = MessageSuccess
	default:
		res.Message = MessageFailure
	}
	if !res.Success {
		res.Errors = b.errs.Records()
	}
	return res
}

// classify separa un rechazo de negocio (el servicio respondió con error) de una falla
// de infraestructura.
func classify(err error, rejection, failure entity.ReasonCode) entity.ReasonCode {
	if domain.IsRejection(err) {
		return rejection
	}
	return failure
}

func describeLine(index int, line entity.ReceiptLine) string {
	if line.Ref.ID != "" {
		return fmt.Sprintf("línea %d (producto %q, documento %s/%s)", index+1, line.ProductID, line.Ref.ID, line.Ref.LineNum)
	}
	return fmt.Sprintf("línea %d (producto %q)", index+1, line.ProductID)
}
