package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-oagis/internal/domain/entity"
	"github.com/jhoicas/inventario-oagis/internal/domain/repository"
)

var _ repository.UserLoginRepository = (*UserLoginRepo)(nil)

// UserLoginRepo identidades de ejecución sobre PostgreSQL.
type UserLoginRepo struct {
	q Querier
}

// NewUserLoginRepository construye el adaptador.
func NewUserLoginRepository(q Querier) *UserLoginRepo {
	return &UserLoginRepo{q: q}
}

// GetByID devuelve nil, nil si el usuario no existe.
func (r *UserLoginRepo) GetByID(ctx context.Context, userLoginID string) (*entity.UserLogin, error) {
	query := `SELECT user_login_id, party_id, enabled FROM user_logins WHERE user_login_id = $1`
	var u entity.UserLogin
	var partyID *string
	err := r.q.QueryRow(ctx, query, userLoginID).Scan(&u.UserLoginID, &partyID, &u.Enabled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user login: %w", err)
	}
	u.PartyID = deref(partyID)
	return &u, nil
}
