package readstore

import (
	"context"

	"bundlestay/internal/infra"
	"bundlestay/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerReadStore struct {
	db *pgxpool.Pool
}

func NewCustomerReadStore(db *pgxpool.Pool) *CustomerReadStore {
	return &CustomerReadStore{db: db}
}

func (r *CustomerReadStore) FindWithCredentials(ctx context.Context, email string) (*usecase.CustomerCredentials, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, name, password_hash FROM users WHERE email = $1`,
		email,
	)

	var creds usecase.CustomerCredentials
	if err := row.Scan(&creds.ID, &creds.Email, &creds.Name, &creds.PasswordHash); err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer credentials", err)
	}
	return &creds, nil
}

var _ usecase.CredentialStore = (*CustomerReadStore)(nil)
