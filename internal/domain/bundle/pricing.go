package bundle

import "bundlestay/internal/domain/catalog"

// Tiered discount by item count: singles pay full price, small bundles
// get 10% off, four or more get 20% off.
func DiscountPercent(itemCount int) int {
	switch {
	case itemCount >= 4:
		return 20
	case itemCount >= 2:
		return 10
	default:
		return 0
	}
}

// Quote is informational pricing for a selection. It is never persisted;
// the purchase record stores only package references, so quotes are
// recomputed from live catalog prices on every display.
type Quote struct {
	ItemCount       int
	TotalCents      int64
	DiscountPercent int
	DiscountedCents int64
}

// PriceSelection sums list prices over the selection and applies the
// tiered discount, rounding to the nearest cent.
func PriceSelection(packages []*catalog.Package) Quote {
	var total int64
	for _, pkg := range packages {
		total += pkg.TotalCostCents()
	}

	pct := DiscountPercent(len(packages))
	discounted := applyPercentDiscount(total, pct)

	return Quote{
		ItemCount:       len(packages),
		TotalCents:      total,
		DiscountPercent: pct,
		DiscountedCents: discounted,
	}
}

func applyPercentDiscount(cents int64, pct int) int64 {
	if pct <= 0 {
		return cents
	}
	// round half up to cent precision
	return (cents*int64(100-pct) + 50) / 100
}
