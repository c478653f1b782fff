package repository

import (
	"context"

	"github.com/jhoicas/inventario-oagis/internal/domain/entity"
)

// UserLoginRepository consulta de identidades de ejecución.
type UserLoginRepository interface {
	GetByID(ctx context.Context, userLoginID string) (*entity.UserLogin, error)
}
