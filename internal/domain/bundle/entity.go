package bundle

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptySelection = errors.New("bundle requires at least one package")
	ErrNoCustomer     = errors.New("bundle requires a customer")
)

// Validity is how long bundled packages stay redeemable after purchase.
const Validity = 365 * 24 * time.Hour

// ItemStatus is derived at read time, never stored. Utilisation takes
// precedence over expiry.
type ItemStatus string

const (
	StatusUtilised   ItemStatus = "Utilised"
	StatusExpired    ItemStatus = "Expired"
	StatusUnutilised ItemStatus = "Un-utilised"
)

// Item is one package slot inside a bundle. It has no lifecycle of its
// own; the owning Purchase controls it.
type Item struct {
	id        uuid.UUID
	packageID uuid.UUID
	utilised  bool
}

func NewItem(packageID uuid.UUID) Item {
	return Item{
		id:        uuid.New(),
		packageID: packageID,
		utilised:  false,
	}
}

func ReconstructItem(id, packageID uuid.UUID, utilised bool) Item {
	return Item{id: id, packageID: packageID, utilised: utilised}
}

func (i Item) ID() uuid.UUID        { return i.id }
func (i Item) PackageID() uuid.UUID { return i.packageID }
func (i Item) Utilised() bool       { return i.utilised }

// Purchase is one multi-package purchase event. The item set is fixed at
// creation; only utilisation flags may flip afterwards.
type Purchase struct {
	id          uuid.UUID
	customerID  uuid.UUID
	purchasedAt time.Time
	items       []Item
}

// NewPurchase creates a bundle with every item unutilised. purchasedAt is
// expected to be the current time in UTC.
func NewPurchase(customerID uuid.UUID, packageIDs []uuid.UUID, purchasedAt time.Time) (*Purchase, error) {
	if customerID == uuid.Nil {
		return nil, ErrNoCustomer
	}
	if len(packageIDs) == 0 {
		return nil, ErrEmptySelection
	}

	items := make([]Item, len(packageIDs))
	for i, pkgID := range packageIDs {
		items[i] = NewItem(pkgID)
	}

	return &Purchase{
		id:          uuid.New(),
		customerID:  customerID,
		purchasedAt: purchasedAt.UTC(),
		items:       items,
	}, nil
}

func ReconstructPurchase(id, customerID uuid.UUID, purchasedAt time.Time, items []Item) *Purchase {
	return &Purchase{
		id:          id,
		customerID:  customerID,
		purchasedAt: purchasedAt,
		items:       items,
	}
}

// ExpiryDate is always derived from the purchase timestamp, never stored.
func (p *Purchase) ExpiryDate() time.Time {
	return p.purchasedAt.Add(Validity)
}

// IsExpired reports whether now is strictly after the expiry date. The
// exact expiry instant itself still counts as valid.
func (p *Purchase) IsExpired(now time.Time) bool {
	return now.After(p.ExpiryDate())
}

// ItemStatusAt derives the effective status of one item. Expiry is
// bundle-wide; a utilised item reports Utilised even after expiry.
func (p *Purchase) ItemStatusAt(item Item, now time.Time) ItemStatus {
	if item.Utilised() {
		return StatusUtilised
	}
	if p.IsExpired(now) {
		return StatusExpired
	}
	return StatusUnutilised
}

// MarkUtilised flips every item referencing packageID and returns how many
// were flipped. When a bundle holds the same package twice the match is
// ambiguous; all matches flip, mirroring redemption by package identity.
func (p *Purchase) MarkUtilised(packageID uuid.UUID) int {
	flipped := 0
	for i := range p.items {
		if p.items[i].packageID == packageID {
			p.items[i].utilised = true
			flipped++
		}
	}
	return flipped
}

func (p *Purchase) ID() uuid.UUID          { return p.id }
func (p *Purchase) CustomerID() uuid.UUID  { return p.customerID }
func (p *Purchase) PurchasedAt() time.Time { return p.purchasedAt }

// Items returns a copy so callers cannot mutate the fixed item set.
func (p *Purchase) Items() []Item {
	out := make([]Item, len(p.items))
	copy(out, p.items)
	return out
}
