package entity

import "time"

// Tipos de documento OAGIS entrantes soportados.
const (
	DocumentSyncInventory  = "SYNC_INVENTORY"
	DocumentPoAcknowledge  = "RECEIVE_PO_ACKNOWLEDGE"
	DocumentRmaAcknowledge = "RECEIVE_RMA_ACKNOWLEDGE"
)

// InboundMessage es el sobre (CNTROLAREA) de un BOD recibido.
// Se construye una vez por documento y no se modifica después de la extracción.
type InboundMessage struct {
	LogicalID    string
	Component    string
	Task         string
	ReferenceID  string
	Confirmation string
	AuthID       string
	BsrVerb      string
	BsrNoun      string
	BsrRevision  string
	ReceivedAt   time.Time
	Outgoing     bool // siempre false para mensajes entrantes

	DocumentKind string
	Digest       string // SHA-256 del documento canónico (C14N)
}

// OagisMessageInfo registro de auditoría/idempotencia de un mensaje procesado.
type OagisMessageInfo struct {
	ID string
	InboundMessage

	OrderID   string // solo acuse de PO: último DOCUMENTID leído
	CreatedBy string
	CreatedAt time.Time
}

// UserLogin identidad con la que se ejecutan las operaciones de inventario.
type UserLogin struct {
	UserLoginID string
	PartyID     string
	Enabled     bool
}
