package queries

import (
	"context"
	"log/slog"

	"bundlestay/internal/infra"
	"bundlestay/internal/pkg/errs"
)

type PackageReadStore interface {
	FindByName(ctx context.Context, hotelName string) (*PackageView, error)
	FindAll(ctx context.Context) ([]*PackageView, error)
}

// CatalogCache is a best-effort read-through cache for the package list.
// Cache failures degrade to the database, never to the caller.
type CatalogCache interface {
	GetPackages(ctx context.Context) ([]*PackageView, error)
	SetPackages(ctx context.Context, packages []*PackageView) error
}

type CatalogQueries interface {
	GetByName(ctx context.Context, hotelName string) (*PackageView, error)
	ListAll(ctx context.Context) ([]*PackageView, error)
}

type catalogQueriesImpl struct {
	readStore PackageReadStore
	cache     CatalogCache
}

func NewCatalogQueries(readStore PackageReadStore, cache CatalogCache) CatalogQueries {
	return &catalogQueriesImpl{
		readStore: readStore,
		cache:     cache,
	}
}

func (q *catalogQueriesImpl) GetByName(ctx context.Context, hotelName string) (*PackageView, error) {
	pkg, err := q.readStore.FindByName(ctx, hotelName)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPackageNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return pkg, nil
}

func (q *catalogQueriesImpl) ListAll(ctx context.Context) ([]*PackageView, error) {
	if q.cache != nil {
		cached, err := q.cache.GetPackages(ctx)
		if err != nil {
			slog.Warn("catalog cache read failed", "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	packages, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if q.cache != nil {
		if err := q.cache.SetPackages(ctx, packages); err != nil {
			slog.Warn("catalog cache write failed", "error", err)
		}
	}

	return packages, nil
}
