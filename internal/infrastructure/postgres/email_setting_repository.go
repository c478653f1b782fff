package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-oagis/internal/domain/entity"
	"github.com/jhoicas/inventario-oagis/internal/domain/repository"
)

var _ repository.EmailSettingRepository = (*EmailSettingRepo)(nil)

// EmailSettingRepo configuración de correo por tienda sobre PostgreSQL.
type EmailSettingRepo struct {
	q Querier
}

// NewEmailSettingRepository construye el adaptador.
func NewEmailSettingRepository(q Querier) *EmailSettingRepo {
	return &EmailSettingRepo{q: q}
}

// Get devuelve nil, nil si la tienda no tiene configuración para el tipo de correo.
func (r *EmailSettingRepo) Get(ctx context.Context, productStoreID, emailType string) (*entity.EmailSetting, error) {
	query := `
		SELECT product_store_id, email_type, body_screen_location, subject,
			from_address, cc_address, bcc_address, content_type
		FROM product_store_email_settings
		WHERE product_store_id = $1 AND email_type = $2`
	var s entity.EmailSetting
	var body, subject, from, cc, bcc, contentType *string
	err := r.q.QueryRow(ctx, query, productStoreID, emailType).Scan(
		&s.ProductStoreID, &s.EmailType, &body, &subject, &from, &cc, &bcc, &contentType,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get email setting: %w", err)
	}
	s.BodyScreenLocation = deref(body)
	s.Subject = deref(subject)
	s.FromAddress = deref(from)
	s.CcAddress = deref(cc)
	s.BccAddress = deref(bcc)
	s.ContentType = deref(contentType)
	return &s, nil
}
