//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"bundlestay/internal/infra"
	"bundlestay/internal/pkg/errs"
	"bundlestay/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingReadStore struct {
	mock.Mock
}

func (m *MockBookingReadStore) FindAll(ctx context.Context) ([]*queries.BookingRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*queries.BookingRecord), args.Error(1)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRevenueByDate(t *testing.T) {
	t.Run("sums per hotel per date and sorts each series", func(t *testing.T) {
		store := new(MockBookingReadStore)
		store.On("FindAll", mock.Anything).Return([]*queries.BookingRecord{
			{HotelName: "HotelX", CheckInDate: day(2024, 1, 2), TotalCostCents: 3000},
			{HotelName: "HotelX", CheckInDate: day(2024, 1, 1), TotalCostCents: 10000},
			{HotelName: "HotelX", CheckInDate: day(2024, 1, 1), TotalCostCents: 5000},
			{HotelName: "HotelY", CheckInDate: day(2024, 2, 10), TotalCostCents: 7500},
		}, nil)

		q := queries.NewDashboardQueries(store)
		series, err := q.RevenueByDate(context.Background())
		require.NoError(t, err)

		want := map[string][]queries.RevenuePoint{
			"HotelX": {
				{Date: "2024-01-01", TotalCents: 15000},
				{Date: "2024-01-02", TotalCents: 3000},
			},
			"HotelY": {
				{Date: "2024-02-10", TotalCents: 7500},
			},
		}
		if diff := cmp.Diff(want, series); diff != "" {
			t.Errorf("revenue series mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty ledger yields empty map", func(t *testing.T) {
		store := new(MockBookingReadStore)
		store.On("FindAll", mock.Anything).Return([]*queries.BookingRecord{}, nil)

		q := queries.NewDashboardQueries(store)
		series, err := q.RevenueByDate(context.Background())
		require.NoError(t, err)
		assert.Empty(t, series)
	})

	t.Run("read store failure surfaces as database error", func(t *testing.T) {
		store := new(MockBookingReadStore)
		store.On("FindAll", mock.Anything).Return(nil, infra.WrapRepoErr("boom", assert.AnError))

		q := queries.NewDashboardQueries(store)
		_, err := q.RevenueByDate(context.Background())
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}

func TestBookingsByMonth(t *testing.T) {
	t.Run("counts per hotel per month label", func(t *testing.T) {
		store := new(MockBookingReadStore)
		store.On("FindAll", mock.Anything).Return([]*queries.BookingRecord{
			{HotelName: "HotelX", CheckInDate: day(2024, 1, 5), TotalCostCents: 100},
			{HotelName: "HotelX", CheckInDate: day(2024, 1, 20), TotalCostCents: 100},
			{HotelName: "HotelX", CheckInDate: day(2024, 2, 1), TotalCostCents: 100},
			{HotelName: "HotelY", CheckInDate: day(2023, 12, 31), TotalCostCents: 100},
		}, nil)

		q := queries.NewDashboardQueries(store)
		counts, err := q.BookingsByMonth(context.Background())
		require.NoError(t, err)

		want := map[string]map[string]int{
			"HotelX": {
				"January 2024":  2,
				"February 2024": 1,
			},
			"HotelY": {
				"December 2023": 1,
			},
		}
		if diff := cmp.Diff(want, counts); diff != "" {
			t.Errorf("month counts mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("read store failure surfaces as database error", func(t *testing.T) {
		store := new(MockBookingReadStore)
		store.On("FindAll", mock.Anything).Return(nil, infra.WrapRepoErr("boom", assert.AnError))

		q := queries.NewDashboardQueries(store)
		_, err := q.BookingsByMonth(context.Background())
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}
