package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"bundlestay/internal/domain/booking"
	"bundlestay/internal/domain/catalog"
	"bundlestay/internal/infra"
	"bundlestay/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingResult struct {
	BookingID      uuid.UUID
	HotelName      string
	CheckInDate    time.Time
	TotalCostCents int64
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, customerID uuid.UUID, hotelName string, checkIn time.Time) (*BookingResult, error)
	// CreateItinerary chains stays back to back: each booking checks in the
	// day the previous stay ends. Unknown hotels are skipped without
	// consuming itinerary time; an unknown customer aborts the whole run.
	CreateItinerary(ctx context.Context, customerID uuid.UUID, start time.Time, hotelNames []string) ([]*BookingResult, error)
}

type bookingCommandsImpl struct {
	customerRepo CustomerRepository
	packageRepo  PackageRepository
	bookingRepo  BookingRepository
	publisher    EventPublisher
	bookingTopic string
}

func NewBookingCommands(
	customerRepo CustomerRepository,
	packageRepo PackageRepository,
	bookingRepo BookingRepository,
	publisher EventPublisher,
	bookingTopic string,
) BookingCommands {
	return &bookingCommandsImpl{
		customerRepo: customerRepo,
		packageRepo:  packageRepo,
		bookingRepo:  bookingRepo,
		publisher:    publisher,
		bookingTopic: bookingTopic,
	}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, customerID uuid.UUID, hotelName string, checkIn time.Time) (*BookingResult, error) {
	customer, err := c.resolveCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	pkg, err := c.resolvePackage(ctx, hotelName)
	if err != nil {
		return nil, err
	}

	result, _, err := c.createOne(ctx, customer, pkg, checkIn)
	return result, err
}

func (c *bookingCommandsImpl) CreateItinerary(ctx context.Context, customerID uuid.UUID, start time.Time, hotelNames []string) ([]*BookingResult, error) {
	if len(hotelNames) == 0 {
		return nil, errs.ErrEmptyItinerary
	}

	customer, err := c.resolveCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	results := make([]*BookingResult, 0, len(hotelNames))
	checkIn := start
	for _, hotelName := range hotelNames {
		pkg, err := c.resolvePackage(ctx, hotelName)
		if err != nil {
			if errors.Is(err, errs.ErrPackageNotFound) {
				slog.Warn("skipping unknown hotel in itinerary", "hotel_name", hotelName)
				continue
			}
			return nil, err
		}

		result, entity, err := c.createOne(ctx, customer, pkg, checkIn)
		if err != nil {
			return nil, err
		}
		results = append(results, result)

		checkIn = entity.CheckOutDate(pkg.DurationNights())
	}

	return results, nil
}

func (c *bookingCommandsImpl) createOne(ctx context.Context, customer *CustomerSnapshot, pkg *catalog.Package, checkIn time.Time) (*BookingResult, *booking.Booking, error) {
	entity, err := booking.NewBooking(customer.ID, pkg, checkIn)
	if err != nil {
		return nil, nil, err
	}

	id, err := c.bookingRepo.Create(ctx, entity)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c.publishBookingCreated(ctx, id, customer, pkg, entity)

	result := &BookingResult{
		BookingID:      id,
		HotelName:      pkg.HotelName(),
		CheckInDate:    entity.CheckInDate(),
		TotalCostCents: entity.TotalCostCents(),
	}
	return result, entity, nil
}

func (c *bookingCommandsImpl) publishBookingCreated(ctx context.Context, id uuid.UUID, customer *CustomerSnapshot, pkg *catalog.Package, entity *booking.Booking) {
	if c.publisher == nil {
		return
	}

	event := map[string]any{
		"type":             "booking_created",
		"booking_id":       id,
		"customer_email":   customer.Email,
		"hotel_name":       pkg.HotelName(),
		"check_in_date":    entity.CheckInDate().Format("2006-01-02"),
		"total_cost_cents": entity.TotalCostCents(),
	}
	if err := c.publisher.Publish(ctx, c.bookingTopic, id.String(), event); err != nil {
		slog.Warn("failed to publish booking event", "booking_id", id, "error", err)
	}
}

func (c *bookingCommandsImpl) resolveCustomer(ctx context.Context, customerID uuid.UUID) (*CustomerSnapshot, error) {
	customer, err := c.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCustomerNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return customer, nil
}

func (c *bookingCommandsImpl) resolvePackage(ctx context.Context, hotelName string) (*catalog.Package, error) {
	snap, err := c.packageRepo.FindByName(ctx, hotelName)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPackageNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return catalog.ReconstructPackage(
		snap.ID, snap.HotelName, snap.DurationNights, snap.UnitCostCents, "", "", time.Time{},
	), nil
}
