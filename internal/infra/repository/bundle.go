package repository

import (
	"context"
	"log/slog"
	"time"

	"bundlestay/internal/domain/bundle"
	"bundlestay/internal/infra"
	"bundlestay/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	insertBundleItemSQL = `INSERT INTO bundle_items (id, purchase_id, package_id, utilised, position)
		 VALUES ($1, $2, $3, $4, $5)`
	selectBundleItemsSQL = `SELECT id, package_id, utilised FROM bundle_items WHERE purchase_id = $1 ORDER BY position`
)

type BundleRepository struct {
	db *pgxpool.Pool
}

func NewBundleRepository(db *pgxpool.Pool) *BundleRepository {
	return &BundleRepository{db: db}
}

// Create persists the purchase and all of its items in one transaction;
// a bundle is never visible half-written.
func (r *BundleRepository) Create(ctx context.Context, p *bundle.Purchase) (uuid.UUID, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to begin bundle transaction", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && rollbackErr != pgx.ErrTxClosed {
			slog.Warn("failed to rollback bundle transaction", "error", rollbackErr)
		}
	}()

	_, err = tx.Exec(ctx,
		`INSERT INTO bundle_purchases (id, user_id, purchased_at) VALUES ($1, $2, $3)`,
		p.ID(), p.CustomerID(), p.PurchasedAt(),
	)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create bundle purchase", err)
	}

	for position, item := range p.Items() {
		_, err = tx.Exec(ctx, insertBundleItemSQL,
			item.ID(), p.ID(), item.PackageID(), item.Utilised(), position,
		)
		if err != nil {
			return uuid.Nil, wrapPgErr("failed to create bundle item", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, wrapPgErr("failed to commit bundle transaction", err)
	}
	return p.ID(), nil
}

func (r *BundleRepository) FindByID(ctx context.Context, id uuid.UUID) (*bundle.Purchase, error) {
	var (
		customerID  uuid.UUID
		purchasedAt time.Time
	)
	err := r.db.QueryRow(ctx,
		`SELECT user_id, purchased_at FROM bundle_purchases WHERE id = $1`, id,
	).Scan(&customerID, &purchasedAt)
	if err != nil {
		return nil, wrapPgErr("failed to find bundle by id", err)
	}

	rows, err := r.db.Query(ctx, selectBundleItemsSQL, id)
	if err != nil {
		return nil, wrapPgErr("failed to load bundle items", err)
	}
	defer rows.Close()

	var items []bundle.Item
	for rows.Next() {
		var (
			itemID    uuid.UUID
			packageID uuid.UUID
			utilised  bool
		)
		if err := rows.Scan(&itemID, &packageID, &utilised); err != nil {
			return nil, wrapPgErr("failed to scan bundle item", err)
		}
		items = append(items, bundle.ReconstructItem(itemID, packageID, utilised))
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to iterate bundle items", err)
	}
	if len(items) == 0 {
		return nil, infra.WrapRepoErr("bundle has no items", nil, infra.KindNotFound)
	}

	return bundle.ReconstructPurchase(id, customerID, purchasedAt, items), nil
}

func (r *BundleRepository) UpdateUtilisation(ctx context.Context, p *bundle.Purchase) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return wrapPgErr("failed to begin utilisation transaction", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && rollbackErr != pgx.ErrTxClosed {
			slog.Warn("failed to rollback utilisation transaction", "error", rollbackErr)
		}
	}()

	for _, item := range p.Items() {
		_, err := tx.Exec(ctx,
			`UPDATE bundle_items SET utilised = $1 WHERE id = $2`,
			item.Utilised(), item.ID(),
		)
		if err != nil {
			return wrapPgErr("failed to update bundle item utilisation", err)
		}
	}

	return tx.Commit(ctx)
}

var _ commands.BundleRepository = (*BundleRepository)(nil)
