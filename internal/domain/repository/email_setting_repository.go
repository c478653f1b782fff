package repository

import (
	"context"

	"github.com/jhoicas/inventario-oagis/internal/domain/entity"
)

// EmailSettingRepository configuración de correo por tienda y tipo de correo.
type EmailSettingRepository interface {
	// Get devuelve nil, nil si no hay configuración.
	Get(ctx context.Context, productStoreID, emailType string) (*entity.EmailSetting, error)
}
