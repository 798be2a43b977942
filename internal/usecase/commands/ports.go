package commands

import (
	"context"

	"bundlestay/internal/domain/booking"
	"bundlestay/internal/domain/bundle"
	"bundlestay/internal/domain/catalog"

	"github.com/google/uuid"
)

// Write-side snapshots keep the command layer off the read-side query types.
type CustomerSnapshot struct {
	ID    uuid.UUID
	Email string
	Name  string
}

type PackageSnapshot struct {
	ID             uuid.UUID
	HotelName      string
	DurationNights int
	UnitCostCents  int64
}

type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CustomerSnapshot, error)
	FindByEmail(ctx context.Context, email string) (*CustomerSnapshot, error)
	Create(ctx context.Context, email, passwordHash, name string) (uuid.UUID, error)
}

type PackageRepository interface {
	FindByName(ctx context.Context, hotelName string) (*PackageSnapshot, error)
	Create(ctx context.Context, pkg *catalog.Package) (uuid.UUID, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
}

type BundleRepository interface {
	Create(ctx context.Context, p *bundle.Purchase) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*bundle.Purchase, error)
	// UpdateUtilisation persists the current utilised flags of every item.
	// Last writer wins; no optimistic concurrency at this layer.
	UpdateUtilisation(ctx context.Context, p *bundle.Purchase) error
}

// EventPublisher emits post-write domain events. Failures are the
// publisher's problem to report; commands log and move on.
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, payload any) error
}
