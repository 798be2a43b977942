package readstore

import (
	"context"

	"bundlestay/internal/infra"
	"bundlestay/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	db *pgxpool.Pool
}

func NewBookingReadStore(db *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{db: db}
}

// FindAll returns the full ledger in the shape the dashboard aggregates over.
func (r *BookingReadStore) FindAll(ctx context.Context) ([]*queries.BookingRecord, error) {
	rows, err := r.db.Query(ctx,
		`SELECT p.hotel_name, b.check_in_date, b.total_cost_cents
		 FROM bookings b JOIN packages p ON p.id = b.package_id`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan booking ledger", err)
	}
	defer rows.Close()

	var records []*queries.BookingRecord
	for rows.Next() {
		var rec queries.BookingRecord
		if err := rows.Scan(&rec.HotelName, &rec.CheckInDate, &rec.TotalCostCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return records, nil
}

func (r *BookingReadStore) FindAllViews(ctx context.Context) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT b.id, b.user_id, u.email, p.hotel_name, b.check_in_date, b.total_cost_cents, b.created_at
		 FROM bookings b
		 JOIN users u ON u.id = b.user_id
		 JOIN packages p ON p.id = b.package_id
		 ORDER BY b.created_at DESC`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		var view queries.BookingView
		err := rows.Scan(&view.ID, &view.CustomerID, &view.CustomerEmail, &view.HotelName,
			&view.CheckInDate, &view.TotalCostCents, &view.CreatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking view row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking views", err)
	}
	return views, nil
}

var (
	_ queries.BookingReadStore     = (*BookingReadStore)(nil)
	_ queries.BookingViewReadStore = (*BookingReadStore)(nil)
)
