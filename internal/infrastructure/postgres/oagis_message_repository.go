package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-oagis/internal/domain"
	"github.com/jhoicas/inventario-oagis/internal/domain/entity"
	"github.com/jhoicas/inventario-oagis/internal/domain/repository"
)

var _ repository.OagisMessageRepository = (*OagisMessageRepo)(nil)

// OagisMessageRepo auditoría de mensajes OAGIS sobre PostgreSQL.
type OagisMessageRepo struct {
	q Querier
}

// NewOagisMessageRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOagisMessageRepository(q Querier) *OagisMessageRepo {
	return &OagisMessageRepo{q: q}
}

// Create inserta el registro. La clave (logical_id, component, task, reference_id) es única;
// un mensaje repetido devuelve domain.ErrDuplicate.
func (r *OagisMessageRepo) Create(ctx context.Context, info *entity.OagisMessageInfo) error {
	if info.ID == "" {
		info.ID = uuid.New().String()
	}
	query := `
		INSERT INTO oagis_message_info (
			id, logical_id, component, task, reference_id, confirmation, auth_id,
			bsr_verb, bsr_noun, bsr_revision, document_kind, digest, outgoing,
			received_at, order_id, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query,
		info.ID, info.LogicalID, info.Component, info.Task, info.ReferenceID, info.Confirmation, info.AuthID,
		info.BsrVerb, info.BsrNoun, info.BsrRevision, info.DocumentKind, info.Digest, info.Outgoing,
		info.ReceivedAt, nullable(info.OrderID), nullable(info.CreatedBy), info.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("mensaje %s/%s/%s/%s: %w",
				info.LogicalID, info.Component, info.Task, info.ReferenceID, domain.ErrDuplicate)
		}
		return fmt.Errorf("create oagis message info: %w", err)
	}
	return nil
}

// GetByKey busca el registro por su clave de negocio; nil, nil si no existe.
func (r *OagisMessageRepo) GetByKey(ctx context.Context, logicalID, component, task, referenceID string) (*entity.OagisMessageInfo, error) {
	query := `
		SELECT id, logical_id, component, task, reference_id, confirmation, auth_id,
			bsr_verb, bsr_noun, bsr_revision, document_kind, digest, outgoing,
			received_at, order_id, created_by, created_at
		FROM oagis_message_info
		WHERE logical_id = $1 AND component = $2 AND task = $3 AND reference_id = $4`
	var m entity.OagisMessageInfo
	var orderID, createdBy *string
	err := r.q.QueryRow(ctx, query, logicalID, component, task, referenceID).Scan(
		&m.ID, &m.LogicalID, &m.Component, &m.Task, &m.ReferenceID, &m.Confirmation, &m.AuthID,
		&m.BsrVerb, &m.BsrNoun, &m.BsrRevision, &m.DocumentKind, &m.Digest, &m.Outgoing,
		&m.ReceivedAt, &orderID, &createdBy, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get oagis message info: %w", err)
	}
	m.OrderID = deref(orderID)
	m.CreatedBy = deref(createdBy)
	return &m, nil
}
