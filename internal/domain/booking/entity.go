package booking

import (
	"errors"
	"time"

	"bundlestay/internal/domain/catalog"

	"github.com/google/uuid"
)

var (
	ErrNoCustomer = errors.New("booking requires a customer")
	ErrNoPackage  = errors.New("booking requires a package")
)

// Booking is one reservation of a package. The total cost is snapshotted
// from the package at creation time and never recomputed, so later catalog
// price changes do not touch existing bookings.
type Booking struct {
	id             uuid.UUID
	customerID     uuid.UUID
	packageID      uuid.UUID
	checkInDate    time.Time
	totalCostCents int64
	createdAt      time.Time
}

func NewBooking(customerID uuid.UUID, pkg *catalog.Package, checkInDate time.Time) (*Booking, error) {
	if customerID == uuid.Nil {
		return nil, ErrNoCustomer
	}
	if pkg == nil {
		return nil, ErrNoPackage
	}

	return &Booking{
		id:             uuid.New(),
		customerID:     customerID,
		packageID:      pkg.ID(),
		checkInDate:    truncateToDate(checkInDate),
		totalCostCents: pkg.TotalCostCents(),
	}, nil
}

func ReconstructBooking(id, customerID, packageID uuid.UUID, checkInDate time.Time, totalCostCents int64, createdAt time.Time) *Booking {
	return &Booking{
		id:             id,
		customerID:     customerID,
		packageID:      packageID,
		checkInDate:    checkInDate,
		totalCostCents: totalCostCents,
		createdAt:      createdAt,
	}
}

// CheckOutDate is the check-in date advanced by the stay duration. Used to
// chain itinerary bookings back to back.
func (b *Booking) CheckOutDate(durationNights int) time.Time {
	return b.checkInDate.AddDate(0, 0, durationNights)
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) CustomerID() uuid.UUID  { return b.customerID }
func (b *Booking) PackageID() uuid.UUID   { return b.packageID }
func (b *Booking) CheckInDate() time.Time { return b.checkInDate }
func (b *Booking) TotalCostCents() int64  { return b.totalCostCents }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }

// check-in dates carry no time-of-day semantics
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
