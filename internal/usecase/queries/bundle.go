package queries

import (
	"context"

	"bundlestay/internal/domain/bundle"
	"bundlestay/internal/domain/catalog"
	"bundlestay/internal/infra"
	"bundlestay/internal/pkg/clock"
	"bundlestay/internal/pkg/errs"

	"github.com/google/uuid"
)

type BundleReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BundleRecord, error)
	// FindByCustomer returns bundles ordered by purchase date ascending.
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*BundleRecord, error)
}

type BundleQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BundleView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*BundleView, error)
}

type bundleQueriesImpl struct {
	readStore BundleReadStore
	clock     clock.Clock
}

func NewBundleQueries(readStore BundleReadStore, clock clock.Clock) BundleQueries {
	return &bundleQueriesImpl{
		readStore: readStore,
		clock:     clock,
	}
}

func (q *bundleQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BundleView, error) {
	record, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBundleNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return q.toView(record), nil
}

func (q *bundleQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*BundleView, error) {
	records, err := q.readStore.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	views := make([]*BundleView, len(records))
	for i, record := range records {
		views[i] = q.toView(record)
	}
	return views, nil
}

// toView reconstructs the purchase entity to derive expiry and per-item
// status, and reprices the selection from the joined live catalog data.
// Historic bundles therefore reflect current prices, not purchase-time
// prices; that asymmetry with booking totals is intentional.
func (q *bundleQueriesImpl) toView(record *BundleRecord) *BundleView {
	now := q.clock.Now()

	items := make([]bundle.Item, len(record.Items))
	packages := make([]*catalog.Package, len(record.Items))
	for i, item := range record.Items {
		items[i] = bundle.ReconstructItem(item.ID, item.PackageID, item.Utilised)
		packages[i] = catalog.ReconstructPackage(
			item.PackageID, item.HotelName, item.DurationNights, item.UnitCostCents,
			"", "", record.PurchasedAt,
		)
	}
	purchase := bundle.ReconstructPurchase(record.ID, record.CustomerID, record.PurchasedAt, items)
	quote := bundle.PriceSelection(packages)

	itemViews := make([]BundleItemView, len(record.Items))
	for i, item := range record.Items {
		itemViews[i] = BundleItemView{
			ItemID:    item.ID,
			PackageID: item.PackageID,
			HotelName: item.HotelName,
			Utilised:  item.Utilised,
			Status:    string(purchase.ItemStatusAt(items[i], now)),
		}
	}

	return &BundleView{
		ID:          record.ID,
		CustomerID:  record.CustomerID,
		PurchasedAt: record.PurchasedAt,
		ExpiryDate:  purchase.ExpiryDate(),
		Expired:     purchase.IsExpired(now),
		Pricing: QuoteView{
			ItemCount:       quote.ItemCount,
			TotalCents:      quote.TotalCents,
			DiscountPercent: quote.DiscountPercent,
			DiscountedCents: quote.DiscountedCents,
		},
		Items: itemViews,
	}
}
