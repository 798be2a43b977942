package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type PackageView struct {
	ID             uuid.UUID `json:"id"`
	HotelName      string    `json:"hotel_name"`
	DurationNights int       `json:"duration_nights"`
	UnitCostCents  int64     `json:"unit_cost_cents"`
	ImageURL       string    `json:"image_url"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
}

type BookingView struct {
	ID             uuid.UUID `json:"id"`
	CustomerID     uuid.UUID `json:"customer_id"`
	CustomerEmail  string    `json:"customer_email"`
	HotelName      string    `json:"hotel_name"`
	CheckInDate    time.Time `json:"check_in_date"`
	TotalCostCents int64     `json:"total_cost_cents"`
	CreatedAt      time.Time `json:"created_at"`
}

// BookingRecord is the minimal ledger row the aggregation reporter scans.
type BookingRecord struct {
	HotelName      string
	CheckInDate    time.Time
	TotalCostCents int64
}

type QuoteView struct {
	ItemCount       int   `json:"item_count"`
	TotalCents      int64 `json:"total_cents"`
	DiscountPercent int   `json:"discount_percent"`
	DiscountedCents int64 `json:"discounted_cents"`
}

type BundleItemView struct {
	ItemID    uuid.UUID `json:"item_id"`
	PackageID uuid.UUID `json:"package_id"`
	HotelName string    `json:"hotel_name"`
	Utilised  bool      `json:"utilised"`
	Status    string    `json:"status"`
}

type BundleView struct {
	ID          uuid.UUID        `json:"id"`
	CustomerID  uuid.UUID        `json:"customer_id"`
	PurchasedAt time.Time        `json:"purchased_at"`
	ExpiryDate  time.Time        `json:"expiry_date"`
	Expired     bool             `json:"expired"`
	Pricing     QuoteView        `json:"pricing"`
	Items       []BundleItemView `json:"items"`
}

// Raw persistence shapes handed up by the bundle read store. The per-item
// package attributes are joined in so pricing can be recomputed from live
// catalog data without a second round trip.
type BundleItemRecord struct {
	ID             uuid.UUID
	PackageID      uuid.UUID
	HotelName      string
	DurationNights int
	UnitCostCents  int64
	Utilised       bool
}

type BundleRecord struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	PurchasedAt time.Time
	Items       []BundleItemRecord
}

type AuthorizedCustomerView struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

type RevenuePoint struct {
	Date       string `json:"date"`
	TotalCents int64  `json:"total_cents"`
}
