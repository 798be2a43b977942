//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"bundlestay/internal/domain/bundle"
	"bundlestay/internal/infra"
	"bundlestay/internal/pkg/clock"
	"bundlestay/internal/pkg/errs"
	"bundlestay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBundleReadStore struct {
	mock.Mock
}

func (m *MockBundleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BundleRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.BundleRecord), args.Error(1)
}

func (m *MockBundleReadStore) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.BundleRecord, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*queries.BundleRecord), args.Error(1)
}

func TestBundleGetByID(t *testing.T) {
	purchasedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	now := purchasedAt.Add(30 * 24 * time.Hour)

	record := &queries.BundleRecord{
		ID:          uuid.New(),
		CustomerID:  uuid.New(),
		PurchasedAt: purchasedAt,
		Items: []queries.BundleItemRecord{
			{ID: uuid.New(), PackageID: uuid.New(), HotelName: "HotelA", DurationNights: 2, UnitCostCents: 15000, Utilised: true},
			{ID: uuid.New(), PackageID: uuid.New(), HotelName: "HotelB", DurationNights: 1, UnitCostCents: 20000, Utilised: false},
		},
	}

	t.Run("derives expiry, status and live pricing", func(t *testing.T) {
		store := new(MockBundleReadStore)
		store.On("FindByID", mock.Anything, record.ID).Return(record, nil)

		q := queries.NewBundleQueries(store, clock.NewMockClock(now))
		view, err := q.GetByID(context.Background(), record.ID)
		require.NoError(t, err)

		assert.Equal(t, purchasedAt.Add(bundle.Validity), view.ExpiryDate)
		assert.False(t, view.Expired)

		require.Len(t, view.Items, 2)
		assert.Equal(t, string(bundle.StatusUtilised), view.Items[0].Status)
		assert.Equal(t, string(bundle.StatusUnutilised), view.Items[1].Status)

		// 2x150.00 + 1x200.00 at 10% off
		assert.Equal(t, int64(50000), view.Pricing.TotalCents)
		assert.Equal(t, 10, view.Pricing.DiscountPercent)
		assert.Equal(t, int64(45000), view.Pricing.DiscountedCents)
	})

	t.Run("expired bundle reports per-item expiry except utilised", func(t *testing.T) {
		store := new(MockBundleReadStore)
		store.On("FindByID", mock.Anything, record.ID).Return(record, nil)

		afterExpiry := purchasedAt.Add(bundle.Validity + time.Hour)
		q := queries.NewBundleQueries(store, clock.NewMockClock(afterExpiry))
		view, err := q.GetByID(context.Background(), record.ID)
		require.NoError(t, err)

		assert.True(t, view.Expired)
		assert.Equal(t, string(bundle.StatusUtilised), view.Items[0].Status)
		assert.Equal(t, string(bundle.StatusExpired), view.Items[1].Status)
	})

	t.Run("unknown bundle", func(t *testing.T) {
		store := new(MockBundleReadStore)
		id := uuid.New()
		store.On("FindByID", mock.Anything, id).Return(nil, infra.WrapRepoErr("bundle not found", nil, infra.KindNotFound))

		q := queries.NewBundleQueries(store, clock.NewMockClock(now))
		_, err := q.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, errs.ErrBundleNotFound)
	})
}

func TestBundleListByCustomer(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	customerID := uuid.New()

	t.Run("preserves read store ordering", func(t *testing.T) {
		older := &queries.BundleRecord{
			ID: uuid.New(), CustomerID: customerID,
			PurchasedAt: now.AddDate(0, -2, 0),
			Items:       []queries.BundleItemRecord{{ID: uuid.New(), PackageID: uuid.New(), HotelName: "A", DurationNights: 1, UnitCostCents: 100}},
		}
		newer := &queries.BundleRecord{
			ID: uuid.New(), CustomerID: customerID,
			PurchasedAt: now.AddDate(0, -1, 0),
			Items:       []queries.BundleItemRecord{{ID: uuid.New(), PackageID: uuid.New(), HotelName: "B", DurationNights: 1, UnitCostCents: 100}},
		}

		store := new(MockBundleReadStore)
		store.On("FindByCustomer", mock.Anything, customerID).Return([]*queries.BundleRecord{older, newer}, nil)

		q := queries.NewBundleQueries(store, clock.NewMockClock(now))
		views, err := q.ListByCustomer(context.Background(), customerID)
		require.NoError(t, err)

		require.Len(t, views, 2)
		assert.Equal(t, older.ID, views[0].ID)
		assert.Equal(t, newer.ID, views[1].ID)
	})

	t.Run("read store failure", func(t *testing.T) {
		store := new(MockBundleReadStore)
		store.On("FindByCustomer", mock.Anything, customerID).Return(nil, infra.WrapRepoErr("boom", assert.AnError))

		q := queries.NewBundleQueries(store, clock.NewMockClock(now))
		_, err := q.ListByCustomer(context.Background(), customerID)
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}
