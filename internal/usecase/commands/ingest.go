package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"bundlestay/internal/infra"
	"bundlestay/internal/pkg/errs"
	"bundlestay/internal/pkg/password"
)

type Datatype string

const (
	DatatypeUsers       Datatype = "Users"
	DatatypePackages    Datatype = "Packages"
	DatatypeBookings    Datatype = "Bookings"
	DatatypeItineraries Datatype = "ItineraryBookings"
)

// Row is one parsed upload record, a mapping of column name to raw value.
type Row map[string]string

// Report summarises a bulk run. Partial success is the expected outcome:
// bad rows are skipped and counted, never fatal to the batch.
type Report struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

type IngestCommands interface {
	Run(ctx context.Context, datatype Datatype, rows []Row) (*Report, error)
}

type ingestCommandsImpl struct {
	customerRepo CustomerRepository
	catalog      CatalogCommands
	bookings     BookingCommands
}

func NewIngestCommands(customerRepo CustomerRepository, catalog CatalogCommands, bookings BookingCommands) IngestCommands {
	return &ingestCommandsImpl{
		customerRepo: customerRepo,
		catalog:      catalog,
		bookings:     bookings,
	}
}

func (c *ingestCommandsImpl) Run(ctx context.Context, datatype Datatype, rows []Row) (*Report, error) {
	switch datatype {
	case DatatypeUsers:
		return c.ingestUsers(ctx, rows), nil
	case DatatypePackages:
		return c.ingestPackages(ctx, rows), nil
	case DatatypeBookings:
		return c.ingestBookings(ctx, rows), nil
	case DatatypeItineraries:
		return c.ingestItineraries(ctx, rows), nil
	default:
		return nil, errs.ErrUnknownDatatype
	}
}

func (c *ingestCommandsImpl) ingestUsers(ctx context.Context, rows []Row) *Report {
	report := &Report{}
	for _, row := range rows {
		hash, err := password.HashPassword(row["password"])
		if err != nil {
			slog.Warn("skipping user row, bad password", "email", row["email"], "error", err)
			report.Skipped++
			continue
		}

		if _, err := c.customerRepo.Create(ctx, strings.TrimSpace(row["email"]), hash, row["name"]); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				slog.Warn("skipping user row, email already registered", "email", row["email"])
			} else {
				slog.Warn("skipping user row", "email", row["email"], "error", err)
			}
			report.Skipped++
			continue
		}
		report.Created++
	}
	return report
}

func (c *ingestCommandsImpl) ingestPackages(ctx context.Context, rows []Row) *Report {
	report := &Report{}
	for _, row := range rows {
		duration, err := strconv.Atoi(strings.TrimSpace(row["duration"]))
		if err != nil {
			slog.Warn("skipping package row, bad duration", "hotel_name", row["hotel_name"], "duration", row["duration"])
			report.Skipped++
			continue
		}

		unitCost, err := parseCostCents(row["unit_cost"])
		if err != nil {
			slog.Warn("skipping package row, bad unit cost", "hotel_name", row["hotel_name"], "unit_cost", row["unit_cost"])
			report.Skipped++
			continue
		}

		_, err = c.catalog.CreatePackage(ctx, CreatePackageParams{
			HotelName:      row["hotel_name"],
			DurationNights: duration,
			UnitCostCents:  unitCost,
			ImageURL:       row["image_url"],
			Description:    row["description"],
		})
		if err != nil {
			slog.Warn("skipping package row", "hotel_name", row["hotel_name"], "error", err)
			report.Skipped++
			continue
		}
		report.Created++
	}
	return report
}

func (c *ingestCommandsImpl) ingestBookings(ctx context.Context, rows []Row) *Report {
	report := &Report{}
	for _, row := range rows {
		checkIn, err := time.Parse("2006-01-02", strings.TrimSpace(row["check_in_date"]))
		if err != nil {
			slog.Warn("skipping booking row, invalid date", "check_in_date", row["check_in_date"])
			report.Skipped++
			continue
		}

		customer, err := c.customerRepo.FindByEmail(ctx, strings.TrimSpace(row["customer"]))
		if err != nil {
			slog.Warn("skipping booking row, unknown customer", "customer", row["customer"])
			report.Skipped++
			continue
		}

		if _, err := c.bookings.CreateBooking(ctx, customer.ID, row["hotel_name"], checkIn); err != nil {
			slog.Warn("skipping booking row", "hotel_name", row["hotel_name"], "error", err)
			report.Skipped++
			continue
		}
		report.Created++
	}
	return report
}

func (c *ingestCommandsImpl) ingestItineraries(ctx context.Context, rows []Row) *Report {
	report := &Report{}
	for _, row := range rows {
		start, ok := parseItineraryDate(row["check_in_date"])
		if !ok {
			slog.Warn("skipping itinerary row, invalid date", "check_in_date", row["check_in_date"])
			report.Skipped++
			continue
		}

		customer, err := c.customerRepo.FindByEmail(ctx, strings.TrimSpace(row["customer"]))
		if err != nil {
			slog.Warn("skipping itinerary row, unknown customer", "customer", row["customer"])
			report.Skipped++
			continue
		}

		hotelNames := parseHotelNames(row["hotel_names"])
		if len(hotelNames) == 0 {
			slog.Warn("skipping itinerary row, no hotels listed")
			report.Skipped++
			continue
		}

		created, err := c.bookings.CreateItinerary(ctx, customer.ID, start, hotelNames)
		if err != nil {
			slog.Warn("skipping itinerary row", "error", err)
			report.Skipped++
			continue
		}
		report.Created += len(created)
	}
	return report
}

// Itinerary uploads arrive in DD/MM/YYYY from the booking form and
// YYYY-MM-DD from exports; accept both.
func parseItineraryDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{"02/01/2006", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseHotelNames accepts a JSON array (tolerating single quotes) and
// falls back to a comma-separated list with quotes stripped per token.
func parseHotelNames(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var names []string
	if err := json.Unmarshal([]byte(strings.ReplaceAll(raw, "'", `"`)), &names); err == nil {
		return names
	}

	for _, token := range strings.Split(raw, ",") {
		token = strings.Trim(strings.TrimSpace(token), `"'`)
		if token != "" {
			names = append(names, token)
		}
	}
	return names
}

// parseCostCents converts a decimal dollar amount like "123.45" to cents
// without going through floats.
func parseCostCents(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	whole, frac, _ := strings.Cut(raw, ".")

	cents, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, err
	}
	cents *= 100

	if frac != "" {
		if len(frac) > 2 {
			frac = frac[:2]
		}
		for len(frac) < 2 {
			frac += "0"
		}
		f, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, err
		}
		if cents < 0 || strings.HasPrefix(whole, "-") {
			cents -= f
		} else {
			cents += f
		}
	}
	return cents, nil
}
