package queries

import (
	"context"
	"sort"

	"bundlestay/internal/pkg/errs"
)

type BookingReadStore interface {
	FindAll(ctx context.Context) ([]*BookingRecord, error)
}

// DashboardQueries builds the two dashboard read models. Both are pure
// recomputations over the full booking ledger on every call; nothing is
// cached or maintained incrementally.
type DashboardQueries interface {
	RevenueByDate(ctx context.Context) (map[string][]RevenuePoint, error)
	BookingsByMonth(ctx context.Context) (map[string]map[string]int, error)
}

type dashboardQueriesImpl struct {
	readStore BookingReadStore
}

func NewDashboardQueries(readStore BookingReadStore) DashboardQueries {
	return &dashboardQueriesImpl{readStore: readStore}
}

const dateKeyLayout = "2006-01-02"

// RevenueByDate sums booking totals per hotel per check-in date and emits
// each hotel's series in ascending date order.
func (q *dashboardQueriesImpl) RevenueByDate(ctx context.Context) (map[string][]RevenuePoint, error) {
	bookings, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	costByDate := make(map[string]map[string]int64)
	for _, b := range bookings {
		dateKey := b.CheckInDate.Format(dateKeyLayout)
		if costByDate[b.HotelName] == nil {
			costByDate[b.HotelName] = make(map[string]int64)
		}
		costByDate[b.HotelName][dateKey] += b.TotalCostCents
	}

	series := make(map[string][]RevenuePoint, len(costByDate))
	for hotel, amounts := range costByDate {
		points := make([]RevenuePoint, 0, len(amounts))
		for date, total := range amounts {
			points = append(points, RevenuePoint{Date: date, TotalCents: total})
		}
		sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
		series[hotel] = points
	}
	return series, nil
}

// BookingsByMonth counts bookings per hotel per calendar month. Month keys
// are human-readable labels like "January 2022"; hotel keys sort
// alphabetically when the map is rendered as JSON.
func (q *dashboardQueriesImpl) BookingsByMonth(ctx context.Context) (map[string]map[string]int, error) {
	bookings, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	byMonth := make(map[string]map[string]int)
	for _, b := range bookings {
		monthKey := b.CheckInDate.Format("January 2006")
		if byMonth[b.HotelName] == nil {
			byMonth[b.HotelName] = make(map[string]int)
		}
		byMonth[b.HotelName][monthKey]++
	}
	return byMonth, nil
}
