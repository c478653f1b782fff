package dto

import (
	"time"

	"github.com/jhoicas/inventario-oagis/internal/application/oagis"
	"github.com/jhoicas/inventario-oagis/internal/domain/entity"
)

// OagisResultResponse resultado del procesamiento de un BOD OAGIS.
type OagisResultResponse struct {
	ContentType string           `json:"content_type"`
	Success     bool             `json:"success"`
	Message     string           `json:"message"`
	Stage       string           `json:"stage"`
	Operations  int              `json:"operations"`
	Envelope    OagisEnvelopeDTO `json:"envelope"`
	Errors      []OagisErrorDTO  `json:"errors,omitempty"`
}

// OagisEnvelopeDTO sobre (CNTROLAREA) del documento recibido.
type OagisEnvelopeDTO struct {
	DocumentKind string    `json:"document_kind,omitempty"`
	LogicalID    string    `json:"logical_id,omitempty"`
	Component    string    `json:"component,omitempty"`
	Task         string    `json:"task,omitempty"`
	ReferenceID  string    `json:"reference_id,omitempty"`
	Confirmation string    `json:"confirmation,omitempty"`
	AuthID       string    `json:"auth_id,omitempty"`
	Digest       string    `json:"digest,omitempty"`
	ReceivedAt   time.Time `json:"received_at,omitzero"`
}

// OagisErrorDTO error registrado durante el procesamiento.
type OagisErrorDTO struct {
	ReasonCode  string `json:"reason_code"`
	Description string `json:"description"`
}

// NewOagisResultResponse convierte el resultado del servicio al cuerpo HTTP.
func NewOagisResultResponse(res oagis.Result) OagisResultResponse {
	out := OagisResultResponse{
		ContentType: res.ContentType,
		Success:     res.Success,
		Message:     res.Message,
		Stage:       string(res.Stage),
		Operations:  res.Operations,
		Envelope:    newEnvelopeDTO(res.Envelope),
	}
	for _, e := range res.Errors {
		out.Errors = append(out.Errors, OagisErrorDTO{ReasonCode: string(e.ReasonCode), Description: e.Description})
	}
	return out
}

// OagisMessageQuery parámetros de GET /api/oagis/messages.
type OagisMessageQuery struct {
	LogicalID   string `query:"logical_id"`
	Component   string `query:"component"`
	Task        string `query:"task"`
	ReferenceID string `query:"reference_id"`
}

// OagisMessageResponse registro de auditoría de un mensaje procesado.
type OagisMessageResponse struct {
	ID        string           `json:"id"`
	Envelope  OagisEnvelopeDTO `json:"envelope"`
	OrderID   string           `json:"order_id,omitempty"`
	CreatedBy string           `json:"created_by,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// NewOagisMessageResponse convierte el registro de auditoría al cuerpo HTTP.
func NewOagisMessageResponse(info *entity.OagisMessageInfo) OagisMessageResponse {
	return OagisMessageResponse{
		ID:        info.ID,
		Envelope:  newEnvelopeDTO(info.InboundMessage),
		OrderID:   info.OrderID,
		CreatedBy: info.CreatedBy,
		CreatedAt: info.CreatedAt,
	}
}

func newEnvelopeDTO(m entity.InboundMessage) OagisEnvelopeDTO {
	return OagisEnvelopeDTO{
		DocumentKind: m.DocumentKind,
		LogicalID:    m.LogicalID,
		Component:    m.Component,
		Task:         m.Task,
		ReferenceID:  m.ReferenceID,
		Confirmation: m.Confirmation,
		AuthID:       m.AuthID,
		Digest:       m.Digest,
		ReceivedAt:   m.ReceivedAt,
	}
}
