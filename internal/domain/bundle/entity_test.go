//go:build unit

package bundle_test

import (
	"testing"
	"time"

	"bundlestay/internal/domain/bundle"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPurchase(t *testing.T) {
	customerID := uuid.New()
	purchasedAt := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		pkgA, pkgB := uuid.New(), uuid.New()

		actual, err := bundle.NewPurchase(customerID, []uuid.UUID{pkgA, pkgB}, purchasedAt)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, customerID, actual.CustomerID())
		assert.Equal(t, purchasedAt, actual.PurchasedAt())

		items := actual.Items()
		require.Len(t, items, 2)
		assert.Equal(t, pkgA, items[0].PackageID())
		assert.Equal(t, pkgB, items[1].PackageID())
		for _, item := range items {
			assert.False(t, item.Utilised())
			assert.NotEqual(t, uuid.Nil, item.ID())
		}
	})

	t.Run("empty selection is rejected", func(t *testing.T) {
		_, err := bundle.NewPurchase(customerID, nil, purchasedAt)
		assert.ErrorIs(t, err, bundle.ErrEmptySelection)
	})

	t.Run("missing customer is rejected", func(t *testing.T) {
		_, err := bundle.NewPurchase(uuid.Nil, []uuid.UUID{uuid.New()}, purchasedAt)
		assert.ErrorIs(t, err, bundle.ErrNoCustomer)
	})

	t.Run("purchase timestamp is normalized to UTC", func(t *testing.T) {
		loc := time.FixedZone("UTC+9", 9*3600)
		local := time.Date(2024, 3, 15, 19, 30, 0, 0, loc)

		actual, err := bundle.NewPurchase(customerID, []uuid.UUID{uuid.New()}, local)
		require.NoError(t, err)
		assert.Equal(t, time.UTC, actual.PurchasedAt().Location())
		assert.True(t, actual.PurchasedAt().Equal(local))
	})

	t.Run("duplicate packages get distinct items", func(t *testing.T) {
		pkg := uuid.New()

		actual, err := bundle.NewPurchase(customerID, []uuid.UUID{pkg, pkg}, purchasedAt)
		require.NoError(t, err)

		items := actual.Items()
		require.Len(t, items, 2)
		assert.NotEqual(t, items[0].ID(), items[1].ID())
	})
}

func TestPurchaseExpiry(t *testing.T) {
	purchasedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	purchase, err := bundle.NewPurchase(uuid.New(), []uuid.UUID{uuid.New()}, purchasedAt)
	require.NoError(t, err)

	expiry := purchasedAt.Add(bundle.Validity)
	assert.Equal(t, expiry, purchase.ExpiryDate())

	tests := []struct {
		name    string
		now     time.Time
		expired bool
	}{
		{"just purchased", purchasedAt, false},
		{"one second before expiry", expiry.Add(-time.Second), false},
		{"exact expiry instant still valid", expiry, false},
		{"one second past expiry", expiry.Add(time.Second), true},
		{"a year past expiry", expiry.AddDate(1, 0, 0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expired, purchase.IsExpired(tt.now))
		})
	}
}

func TestItemStatusAt(t *testing.T) {
	purchasedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	pkg := uuid.New()
	purchase, err := bundle.NewPurchase(uuid.New(), []uuid.UUID{pkg}, purchasedAt)
	require.NoError(t, err)

	beforeExpiry := purchasedAt.Add(bundle.Validity / 2)
	afterExpiry := purchasedAt.Add(bundle.Validity + time.Hour)

	t.Run("fresh item is un-utilised", func(t *testing.T) {
		item := purchase.Items()[0]
		assert.Equal(t, bundle.StatusUnutilised, purchase.ItemStatusAt(item, beforeExpiry))
	})

	t.Run("unutilised item reports expired after validity window", func(t *testing.T) {
		item := purchase.Items()[0]
		assert.Equal(t, bundle.StatusExpired, purchase.ItemStatusAt(item, afterExpiry))
	})

	t.Run("utilisation takes precedence over expiry", func(t *testing.T) {
		purchase.MarkUtilised(pkg)
		item := purchase.Items()[0]
		assert.Equal(t, bundle.StatusUtilised, purchase.ItemStatusAt(item, afterExpiry))
	})
}

func TestMarkUtilised(t *testing.T) {
	purchasedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("flips only matching items", func(t *testing.T) {
		pkgA, pkgB := uuid.New(), uuid.New()
		purchase, err := bundle.NewPurchase(uuid.New(), []uuid.UUID{pkgA, pkgB}, purchasedAt)
		require.NoError(t, err)

		flipped := purchase.MarkUtilised(pkgA)
		assert.Equal(t, 1, flipped)

		items := purchase.Items()
		assert.True(t, items[0].Utilised())
		assert.False(t, items[1].Utilised())
	})

	t.Run("flips every duplicate of the package", func(t *testing.T) {
		pkg := uuid.New()
		purchase, err := bundle.NewPurchase(uuid.New(), []uuid.UUID{pkg, pkg, uuid.New()}, purchasedAt)
		require.NoError(t, err)

		flipped := purchase.MarkUtilised(pkg)
		assert.Equal(t, 2, flipped)

		items := purchase.Items()
		assert.True(t, items[0].Utilised())
		assert.True(t, items[1].Utilised())
		assert.False(t, items[2].Utilised())
	})

	t.Run("unknown package flips nothing", func(t *testing.T) {
		purchase, err := bundle.NewPurchase(uuid.New(), []uuid.UUID{uuid.New()}, purchasedAt)
		require.NoError(t, err)

		assert.Equal(t, 0, purchase.MarkUtilised(uuid.New()))
		assert.False(t, purchase.Items()[0].Utilised())
	})

	t.Run("marking twice is idempotent", func(t *testing.T) {
		pkg := uuid.New()
		purchase, err := bundle.NewPurchase(uuid.New(), []uuid.UUID{pkg}, purchasedAt)
		require.NoError(t, err)

		assert.Equal(t, 1, purchase.MarkUtilised(pkg))
		assert.Equal(t, 1, purchase.MarkUtilised(pkg))
		assert.True(t, purchase.Items()[0].Utilised())
	})

	t.Run("items accessor returns a copy", func(t *testing.T) {
		pkg := uuid.New()
		purchase, err := bundle.NewPurchase(uuid.New(), []uuid.UUID{pkg}, purchasedAt)
		require.NoError(t, err)

		items := purchase.Items()
		items[0] = bundle.ReconstructItem(items[0].ID(), items[0].PackageID(), true)
		assert.False(t, purchase.Items()[0].Utilised())
	})
}
