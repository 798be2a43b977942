package readstore

import (
	"context"

	"bundlestay/internal/infra"
	"bundlestay/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PackageReadStore struct {
	db *pgxpool.Pool
}

func NewPackageReadStore(db *pgxpool.Pool) *PackageReadStore {
	return &PackageReadStore{db: db}
}

func (r *PackageReadStore) FindByName(ctx context.Context, hotelName string) (*queries.PackageView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, hotel_name, duration_nights, unit_cost_cents, image_url, description, created_at
		 FROM packages WHERE hotel_name = $1`,
		hotelName,
	)

	var view queries.PackageView
	err := row.Scan(&view.ID, &view.HotelName, &view.DurationNights, &view.UnitCostCents,
		&view.ImageURL, &view.Description, &view.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("package not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find package by hotel name", err)
	}
	return &view, nil
}

func (r *PackageReadStore) FindAll(ctx context.Context) ([]*queries.PackageView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, hotel_name, duration_nights, unit_cost_cents, image_url, description, created_at
		 FROM packages ORDER BY hotel_name`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list packages", err)
	}
	defer rows.Close()

	var views []*queries.PackageView
	for rows.Next() {
		var view queries.PackageView
		err := rows.Scan(&view.ID, &view.HotelName, &view.DurationNights, &view.UnitCostCents,
			&view.ImageURL, &view.Description, &view.CreatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan package row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate packages", err)
	}
	return views, nil
}

var _ queries.PackageReadStore = (*PackageReadStore)(nil)
