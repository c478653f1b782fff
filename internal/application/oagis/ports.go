package oagis

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-oagis/internal/domain/entity"
)

// IdentityResolver resuelve la identidad con la que se ejecutan las operaciones.
// Devuelve nil, nil si el usuario no existe.
type IdentityResolver interface {
	GetByID(ctx context.Context, userLoginID string) (*entity.UserLogin, error)
}

// AuditRecorder registra el mensaje procesado (auditoría e idempotencia).
// Un mensaje repetido es un rechazo de negocio (domain.ErrDuplicate).
type AuditRecorder interface {
	Create(ctx context.Context, info *entity.OagisMessageInfo) error
}

// AvailabilityQuerier total disponible para prometer de un producto.
type AvailabilityQuerier interface {
	AvailableToPromise(ctx context.Context, productID string) (decimal.Decimal, error)
}

// ReceiptSubmitter aplica una operación de recepción de inventario.
type ReceiptSubmitter interface {
	ReceiveInventory(ctx context.Context, op entity.ReceiptOperation) (*entity.InventoryItem, error)
}

// ContactLookup medios de contacto de una instalación.
type ContactLookup interface {
	ListByFacility(ctx context.Context, facilityID, contactMechTypeID string) ([]*entity.ContactMech, error)
}

// EmailSettingLookup configuración de correo de la tienda. nil, nil si no existe.
type EmailSettingLookup interface {
	Get(ctx context.Context, productStoreID, emailType string) (*entity.EmailSetting, error)
}

// Notifier envía la notificación de confirmación. Un rechazo del destinatario o del
// contenido envuelve domain.ErrServiceRejected; el resto son fallas de transporte.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}

// Notification correo de confirmación de SYNC_INVENTORY.
type Notification struct {
	To           []string
	From         string
	Cc           string
	Bcc          string
	Subject      string
	ContentType  string
	BodyLocation string
	Variables    map[string]any
	Report       AvailabilityReport
}

// AvailabilityReport datos del reporte PDF adjunto a la notificación.
type AvailabilityReport struct {
	ReferenceID    string
	LogicalID      string
	ProductID      string
	FacilityID     string
	Declared       string // VALUE recibido
	AvailableTotal string // ATP consultado; vacío si la consulta falló
	Received       bool   // false si el valor declarado coincidía con el disponible
	GeneratedAt    time.Time
}
