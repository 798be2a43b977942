package repository

import (
	"context"

	"bundlestay/internal/domain/catalog"
	"bundlestay/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/google/uuid"
)

type PackageRepository struct {
	db *pgxpool.Pool
}

func NewPackageRepository(db *pgxpool.Pool) *PackageRepository {
	return &PackageRepository{db: db}
}

func (r *PackageRepository) FindByName(ctx context.Context, hotelName string) (*commands.PackageSnapshot, error) {
	var snap commands.PackageSnapshot
	err := r.db.QueryRow(ctx,
		`SELECT id, hotel_name, duration_nights, unit_cost_cents FROM packages WHERE hotel_name = $1`,
		hotelName,
	).Scan(&snap.ID, &snap.HotelName, &snap.DurationNights, &snap.UnitCostCents)
	if err != nil {
		return nil, wrapPgErr("failed to find package by hotel name", err)
	}
	return &snap, nil
}

func (r *PackageRepository) Create(ctx context.Context, pkg *catalog.Package) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO packages (id, hotel_name, duration_nights, unit_cost_cents, image_url, description)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		pkg.ID(), pkg.HotelName(), pkg.DurationNights(), pkg.UnitCostCents(), pkg.ImageURL(), pkg.Description(),
	)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create package", err)
	}
	return pkg.ID(), nil
}

var _ commands.PackageRepository = (*PackageRepository)(nil)
