package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-oagis/internal/domain/entity"
	"github.com/jhoicas/inventario-oagis/internal/domain/repository"
)

var _ repository.FacilityContactRepository = (*FacilityContactRepo)(nil)

// FacilityContactRepo medios de contacto de instalaciones sobre PostgreSQL.
type FacilityContactRepo struct {
	q Querier
}

// NewFacilityContactRepository construye el adaptador.
func NewFacilityContactRepository(q Querier) *FacilityContactRepo {
	return &FacilityContactRepo{q: q}
}

// ListByFacility medios de contacto vigentes del tipo indicado.
func (r *FacilityContactRepo) ListByFacility(ctx context.Context, facilityID, contactMechTypeID string) ([]*entity.ContactMech, error) {
	query := `
		SELECT cm.contact_mech_id, cm.contact_mech_type_id, cm.info_string
		FROM facility_contact_mechs fcm
		JOIN contact_mechs cm ON cm.contact_mech_id = fcm.contact_mech_id
		WHERE fcm.facility_id = $1 AND cm.contact_mech_type_id = $2
			AND (fcm.thru_date IS NULL OR fcm.thru_date > now())
		ORDER BY fcm.from_date`
	rows, err := r.q.Query(ctx, query, facilityID, contactMechTypeID)
	if err != nil {
		return nil, fmt.Errorf("list facility contacts: %w", err)
	}
	defer rows.Close()
	var list []*entity.ContactMech
	for rows.Next() {
		var c entity.ContactMech
		if err := rows.Scan(&c.ContactMechID, &c.ContactMechTypeID, &c.InfoString); err != nil {
			return nil, fmt.Errorf("scan contact mech: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
