package repository

import (
	"context"

	"github.com/jhoicas/inventario-oagis/internal/domain/entity"
)

// OagisMessageRepository registro de auditoría de mensajes OAGIS.
// Create devuelve domain.ErrDuplicate si ya existe la clave (logicalId, component, task, referenceId).
type OagisMessageRepository interface {
	Create(ctx context.Context, info *entity.OagisMessageInfo) error
	GetByKey(ctx context.Context, logicalID, component, task, referenceID string) (*entity.OagisMessageInfo, error)
}
