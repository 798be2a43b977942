//go:build unit

package bundle_test

import (
	"testing"
	"time"

	"bundlestay/internal/domain/bundle"
	"bundlestay/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		itemCount int
		want      int
	}{
		{0, 0},
		{1, 0},
		{2, 10},
		{3, 10},
		{4, 20},
		{5, 20},
		{10, 20},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, bundle.DiscountPercent(tt.itemCount), "itemCount=%d", tt.itemCount)
	}
}

func TestPriceSelection(t *testing.T) {
	mkPkg := func(nights int, unitCents int64) *catalog.Package {
		return catalog.ReconstructPackage(uuid.New(), "Hotel", nights, unitCents, "", "", time.Time{})
	}

	t.Run("single package pays full price", func(t *testing.T) {
		quote := bundle.PriceSelection([]*catalog.Package{mkPkg(3, 10000)})

		assert.Equal(t, 1, quote.ItemCount)
		assert.Equal(t, int64(30000), quote.TotalCents)
		assert.Equal(t, 0, quote.DiscountPercent)
		assert.Equal(t, int64(30000), quote.DiscountedCents)
	})

	t.Run("pair gets ten percent off", func(t *testing.T) {
		quote := bundle.PriceSelection([]*catalog.Package{
			mkPkg(2, 15000), // 300.00
			mkPkg(1, 20000), // 200.00
		})

		assert.Equal(t, 2, quote.ItemCount)
		assert.Equal(t, int64(50000), quote.TotalCents)
		assert.Equal(t, 10, quote.DiscountPercent)
		assert.Equal(t, int64(45000), quote.DiscountedCents)
	})

	t.Run("four or more gets twenty percent off", func(t *testing.T) {
		packages := []*catalog.Package{
			mkPkg(1, 10000),
			mkPkg(1, 10000),
			mkPkg(1, 10000),
			mkPkg(1, 10000),
		}
		quote := bundle.PriceSelection(packages)

		assert.Equal(t, int64(40000), quote.TotalCents)
		assert.Equal(t, 20, quote.DiscountPercent)
		assert.Equal(t, int64(32000), quote.DiscountedCents)
	})

	t.Run("discount rounds half up to the cent", func(t *testing.T) {
		// 10% off 5345 = 4810.5, rounds to 4811
		quote := bundle.PriceSelection([]*catalog.Package{
			mkPkg(1, 2345),
			mkPkg(1, 3000),
		})

		assert.Equal(t, int64(5345), quote.TotalCents)
		assert.Equal(t, int64(4811), quote.DiscountedCents)
	})

	t.Run("empty selection prices to zero", func(t *testing.T) {
		quote := bundle.PriceSelection(nil)

		assert.Equal(t, 0, quote.ItemCount)
		assert.Equal(t, int64(0), quote.TotalCents)
		assert.Equal(t, int64(0), quote.DiscountedCents)
	})
}
