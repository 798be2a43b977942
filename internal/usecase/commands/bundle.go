package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"bundlestay/internal/domain/bundle"
	"bundlestay/internal/domain/catalog"
	"bundlestay/internal/infra"
	"bundlestay/internal/pkg/clock"
	"bundlestay/internal/pkg/errs"

	"github.com/google/uuid"
)

type CreateBundleResult struct {
	BundleID    uuid.UUID
	PurchasedAt time.Time
	Quote       bundle.Quote
	Message     string
}

type MarkUtilisedResult struct {
	BundleID     uuid.UUID
	PackageID    uuid.UUID
	ItemsFlipped int
}

type BundleCommands interface {
	// CreateBundle resolves the selection against the catalog, skipping
	// unknown hotel names, and persists the purchase with every item
	// unutilised. The returned quote is informational only; it is not
	// stored with the purchase.
	CreateBundle(ctx context.Context, customerID uuid.UUID, hotelNames []string) (*CreateBundleResult, error)
	// MarkUtilised flips every item in the bundle referencing the package.
	// With duplicate packages in one bundle the match is ambiguous and all
	// matches flip; disambiguation would need a per-item identifier.
	MarkUtilised(ctx context.Context, bundleID, packageID uuid.UUID) (*MarkUtilisedResult, error)
}

type bundleCommandsImpl struct {
	customerRepo CustomerRepository
	packageRepo  PackageRepository
	bundleRepo   BundleRepository
	publisher    EventPublisher
	bundleTopic  string
	clock        clock.Clock
}

func NewBundleCommands(
	customerRepo CustomerRepository,
	packageRepo PackageRepository,
	bundleRepo BundleRepository,
	publisher EventPublisher,
	bundleTopic string,
	clock clock.Clock,
) BundleCommands {
	return &bundleCommandsImpl{
		customerRepo: customerRepo,
		packageRepo:  packageRepo,
		bundleRepo:   bundleRepo,
		publisher:    publisher,
		bundleTopic:  bundleTopic,
		clock:        clock,
	}
}

func (c *bundleCommandsImpl) CreateBundle(ctx context.Context, customerID uuid.UUID, hotelNames []string) (*CreateBundleResult, error) {
	if len(hotelNames) == 0 {
		return nil, errs.ErrEmptyBundleSelection
	}

	customer, err := c.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCustomerNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	packages, err := c.resolveSelection(ctx, hotelNames)
	if err != nil {
		return nil, err
	}
	if len(packages) == 0 {
		return nil, errs.ErrEmptyBundleSelection
	}

	packageIDs := make([]uuid.UUID, len(packages))
	for i, pkg := range packages {
		packageIDs[i] = pkg.ID()
	}

	purchase, err := bundle.NewPurchase(customer.ID, packageIDs, c.clock.Now())
	if err != nil {
		return nil, err
	}

	id, err := c.bundleRepo.Create(ctx, purchase)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	quote := bundle.PriceSelection(packages)
	c.publishBundlePurchased(ctx, id, customer, packages, quote)

	return &CreateBundleResult{
		BundleID:    id,
		PurchasedAt: purchase.PurchasedAt(),
		Quote:       quote,
		Message:     confirmationMessage(quote, packages),
	}, nil
}

func (c *bundleCommandsImpl) MarkUtilised(ctx context.Context, bundleID, packageID uuid.UUID) (*MarkUtilisedResult, error) {
	purchase, err := c.bundleRepo.FindByID(ctx, bundleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBundleNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	flipped := purchase.MarkUtilised(packageID)
	if flipped > 0 {
		if err := c.bundleRepo.UpdateUtilisation(ctx, purchase); err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	return &MarkUtilisedResult{
		BundleID:     bundleID,
		PackageID:    packageID,
		ItemsFlipped: flipped,
	}, nil
}

// resolveSelection drops hotel names the catalog cannot resolve; bundle
// purchase is a user-facing action over a pre-rendered package list, so an
// unknown name is stale UI state, not a fatal input.
func (c *bundleCommandsImpl) resolveSelection(ctx context.Context, hotelNames []string) ([]*catalog.Package, error) {
	packages := make([]*catalog.Package, 0, len(hotelNames))
	for _, hotelName := range hotelNames {
		snap, err := c.packageRepo.FindByName(ctx, hotelName)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				slog.Warn("dropping unknown package from bundle selection", "hotel_name", hotelName)
				continue
			}
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		packages = append(packages, catalog.ReconstructPackage(
			snap.ID, snap.HotelName, snap.DurationNights, snap.UnitCostCents, "", "", time.Time{},
		))
	}
	return packages, nil
}

func (c *bundleCommandsImpl) publishBundlePurchased(ctx context.Context, id uuid.UUID, customer *CustomerSnapshot, packages []*catalog.Package, quote bundle.Quote) {
	if c.publisher == nil {
		return
	}

	hotelNames := make([]string, len(packages))
	for i, pkg := range packages {
		hotelNames[i] = pkg.HotelName()
	}

	event := map[string]any{
		"type":             "bundle_purchased",
		"bundle_id":        id,
		"customer_email":   customer.Email,
		"hotel_names":      hotelNames,
		"total_cents":      quote.TotalCents,
		"discounted_cents": quote.DiscountedCents,
	}
	if err := c.publisher.Publish(ctx, c.bundleTopic, id.String(), event); err != nil {
		slog.Warn("failed to publish bundle event", "bundle_id", id, "error", err)
	}
}

func confirmationMessage(quote bundle.Quote, packages []*catalog.Package) string {
	if quote.ItemCount == 1 {
		return fmt.Sprintf(
			"Bundle (single) purchased: %s. Total cost $%s. Utilised flags set to false.",
			packages[0].HotelName(), formatDollars(quote.TotalCents),
		)
	}
	return fmt.Sprintf(
		"Bundle purchased with %d packages. Original $%s, discounted total $%s (%d%% off). All utilised flags set to false.",
		quote.ItemCount, formatDollars(quote.TotalCents), formatDollars(quote.DiscountedCents), quote.DiscountPercent,
	)
}

// formatDollars renders cents as a dollar amount with thousands separators,
// e.g. 123456789 -> "1,234,567.89".
func formatDollars(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}

	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	out := fmt.Sprintf("%s.%02d", b.String(), frac)
	if neg {
		return "-" + out
	}
	return out
}
