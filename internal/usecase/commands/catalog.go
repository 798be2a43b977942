package commands

import (
	"context"

	"bundlestay/internal/domain/catalog"
	"bundlestay/internal/infra"
	"bundlestay/internal/pkg/errs"
)

type CreatePackageParams struct {
	HotelName      string
	DurationNights int
	UnitCostCents  int64
	ImageURL       string
	Description    string
}

type CatalogCommands interface {
	// CreatePackage rejects duplicate hotel names as a domain error rather
	// than upserting; idempotent ingestion is the caller's concern.
	CreatePackage(ctx context.Context, params CreatePackageParams) (*PackageSnapshot, error)
}

type catalogCommandsImpl struct {
	packageRepo PackageRepository
}

func NewCatalogCommands(packageRepo PackageRepository) CatalogCommands {
	return &catalogCommandsImpl{packageRepo: packageRepo}
}

func (c *catalogCommandsImpl) CreatePackage(ctx context.Context, params CreatePackageParams) (*PackageSnapshot, error) {
	pkg, err := catalog.NewPackage(
		params.HotelName,
		params.DurationNights,
		params.UnitCostCents,
		params.ImageURL,
		params.Description,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPackageSpec)
	}

	id, err := c.packageRepo.Create(ctx, pkg)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrPackageAlreadyExists
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &PackageSnapshot{
		ID:             id,
		HotelName:      pkg.HotelName(),
		DurationNights: pkg.DurationNights(),
		UnitCostCents:  pkg.UnitCostCents(),
	}, nil
}
