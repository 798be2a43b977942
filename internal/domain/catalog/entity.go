package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyHotelName  = errors.New("hotel name is required")
	ErrInvalidDuration = errors.New("duration must be at least one night")
	ErrNegativeCost    = errors.New("unit cost cannot be negative")
)

// Package is a hotel stay offer identified by its hotel name. Pricing data
// is immutable once the package is referenced by a booking; bookings
// snapshot the total at creation time.
type Package struct {
	id             uuid.UUID
	hotelName      string
	durationNights int
	unitCostCents  int64
	imageURL       string
	description    string
	createdAt      time.Time
}

func NewPackage(hotelName string, durationNights int, unitCostCents int64, imageURL, description string) (*Package, error) {
	hotelName = strings.TrimSpace(hotelName)
	if hotelName == "" {
		return nil, ErrEmptyHotelName
	}
	if durationNights < 1 {
		return nil, ErrInvalidDuration
	}
	if unitCostCents < 0 {
		return nil, ErrNegativeCost
	}

	return &Package{
		id:             uuid.New(),
		hotelName:      hotelName,
		durationNights: durationNights,
		unitCostCents:  unitCostCents,
		imageURL:       imageURL,
		description:    description,
	}, nil
}

func ReconstructPackage(id uuid.UUID, hotelName string, durationNights int, unitCostCents int64, imageURL, description string, createdAt time.Time) *Package {
	return &Package{
		id:             id,
		hotelName:      hotelName,
		durationNights: durationNights,
		unitCostCents:  unitCostCents,
		imageURL:       imageURL,
		description:    description,
		createdAt:      createdAt,
	}
}

// TotalCostCents is the full price of the stay: nightly unit cost times
// the number of nights.
func (p *Package) TotalCostCents() int64 {
	return p.unitCostCents * int64(p.durationNights)
}

func (p *Package) ID() uuid.UUID        { return p.id }
func (p *Package) HotelName() string    { return p.hotelName }
func (p *Package) DurationNights() int  { return p.durationNights }
func (p *Package) UnitCostCents() int64 { return p.unitCostCents }
func (p *Package) ImageURL() string     { return p.imageURL }
func (p *Package) Description() string  { return p.description }
func (p *Package) CreatedAt() time.Time { return p.createdAt }
