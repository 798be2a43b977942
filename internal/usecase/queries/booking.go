package queries

import (
	"context"

	"bundlestay/internal/pkg/errs"
)

type BookingViewReadStore interface {
	FindAllViews(ctx context.Context) ([]*BookingView, error)
}

type BookingQueries interface {
	ListAll(ctx context.Context) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingViewReadStore
}

func NewBookingQueries(readStore BookingViewReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context) ([]*BookingView, error) {
	views, err := q.readStore.FindAllViews(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
