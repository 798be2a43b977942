package readstore

import (
	"context"

	"bundlestay/internal/infra"
	"bundlestay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BundleReadStore struct {
	db *pgxpool.Pool
}

func NewBundleReadStore(db *pgxpool.Pool) *BundleReadStore {
	return &BundleReadStore{db: db}
}

func (r *BundleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BundleRecord, error) {
	records, err := r.queryBundles(ctx,
		`SELECT bp.id, bp.user_id, bp.purchased_at,
		        bi.id, bi.package_id, p.hotel_name, p.duration_nights, p.unit_cost_cents, bi.utilised
		 FROM bundle_purchases bp
		 JOIN bundle_items bi ON bi.purchase_id = bp.id
		 JOIN packages p ON p.id = bi.package_id
		 WHERE bp.id = $1
		 ORDER BY bi.position`,
		id,
	)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, infra.WrapRepoErr("bundle not found", nil, infra.KindNotFound)
	}
	return records[0], nil
}

func (r *BundleReadStore) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.BundleRecord, error) {
	return r.queryBundles(ctx,
		`SELECT bp.id, bp.user_id, bp.purchased_at,
		        bi.id, bi.package_id, p.hotel_name, p.duration_nights, p.unit_cost_cents, bi.utilised
		 FROM bundle_purchases bp
		 JOIN bundle_items bi ON bi.purchase_id = bp.id
		 JOIN packages p ON p.id = bi.package_id
		 WHERE bp.user_id = $1
		 ORDER BY bp.purchased_at, bp.id, bi.position`,
		customerID,
	)
}

// queryBundles scans joined purchase+item rows, grouping consecutive rows
// that share a purchase id into one record. Both call sites order by
// purchase so grouping stays contiguous.
func (r *BundleReadStore) queryBundles(ctx context.Context, sql string, args ...any) ([]*queries.BundleRecord, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bundles", err)
	}
	defer rows.Close()

	var records []*queries.BundleRecord
	var current *queries.BundleRecord
	for rows.Next() {
		var rec queries.BundleRecord
		var item queries.BundleItemRecord
		err := rows.Scan(&rec.ID, &rec.CustomerID, &rec.PurchasedAt,
			&item.ID, &item.PackageID, &item.HotelName, &item.DurationNights,
			&item.UnitCostCents, &item.Utilised)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan bundle row", err)
		}
		if current == nil || current.ID != rec.ID {
			records = append(records, &rec)
			current = records[len(records)-1]
		}
		current.Items = append(current.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bundles", err)
	}
	return records, nil
}

var _ queries.BundleReadStore = (*BundleReadStore)(nil)
