package repository

import (
	"context"

	"github.com/jhoicas/inventario-oagis/internal/domain/entity"
)

// FacilityContactRepository medios de contacto asociados a una instalación.
type FacilityContactRepository interface {
	ListByFacility(ctx context.Context, facilityID, contactMechTypeID string) ([]*entity.ContactMech, error)
}
