package repository

import (
	"context"

	"bundlestay/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.CustomerSnapshot, error) {
	var snap commands.CustomerSnapshot
	err := r.db.QueryRow(ctx,
		`SELECT id, email, name FROM users WHERE id = $1`, id,
	).Scan(&snap.ID, &snap.Email, &snap.Name)
	if err != nil {
		return nil, wrapPgErr("failed to find customer by id", err)
	}
	return &snap, nil
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*commands.CustomerSnapshot, error) {
	var snap commands.CustomerSnapshot
	err := r.db.QueryRow(ctx,
		`SELECT id, email, name FROM users WHERE email = $1`, email,
	).Scan(&snap.ID, &snap.Email, &snap.Name)
	if err != nil {
		return nil, wrapPgErr("failed to find customer by email", err)
	}
	return &snap, nil
}

func (r *CustomerRepository) Create(ctx context.Context, email, passwordHash, name string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, name) VALUES ($1, $2, $3, $4)`,
		id, email, passwordHash, name,
	)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create customer", err)
	}
	return id, nil
}

var _ commands.CustomerRepository = (*CustomerRepository)(nil)
