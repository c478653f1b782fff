package oagis

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-oagis/internal/domain"
	"github.com/jhoicas/inventario-oagis/internal/domain/entity"
	"github.com/jhoicas/inventario-oagis/internal/domain/repository"
)

// MessageKey clave de idempotencia de un mensaje recibido.
type MessageKey struct {
	LogicalID   string
	Component   string
	Task        string
	ReferenceID string
}

// MessageQuery consulta el registro de auditoría de mensajes procesados.
type MessageQuery struct {
	repo repository.OagisMessageRepository
}

// NewMessageQuery construye la consulta.
func NewMessageQuery(repo repository.OagisMessageRepository) *MessageQuery {
	return &MessageQuery{repo: repo}
}

// Get devuelve el mensaje registrado con la clave dada.
func (q *MessageQuery) Get(ctx context.Context, key MessageKey) (*entity.OagisMessageInfo, error) {
	if key.LogicalID == "" || key.Component == "" || key.Task == "" || key.ReferenceID == "" {
		return nil, fmt.Errorf("clave de mensaje incompleta: %w", domain.ErrInvalidInput)
	}
	info, err := q.repo.GetByKey(ctx, key.LogicalID, key.Component, key.Task, key.ReferenceID)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, fmt.Errorf("mensaje %s/%s: %w", key.LogicalID, key.ReferenceID, domain.ErrNotFound)
	}
	return info, nil
}
