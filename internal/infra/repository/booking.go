package repository

import (
	"context"

	"bundlestay/internal/domain/booking"
	"bundlestay/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO bookings (id, user_id, package_id, check_in_date, total_cost_cents)
		 VALUES ($1, $2, $3, $4, $5)`,
		b.ID(), b.CustomerID(), b.PackageID(), b.CheckInDate(), b.TotalCostCents(),
	)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create booking", err)
	}
	return b.ID(), nil
}

var _ commands.BookingRepository = (*BookingRepository)(nil)
