package response

import (
	"time"

	"bundlestay/internal/usecase/commands"
	"bundlestay/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuoteResponse struct {
	ItemCount       int   `json:"itemCount"`
	TotalCents      int64 `json:"totalCents"`
	DiscountPercent int   `json:"discountPercent"`
	DiscountedCents int64 `json:"discountedCents"`
}

type BundleItemResponse struct {
	ItemID    uuid.UUID `json:"itemId"`
	PackageID uuid.UUID `json:"packageId"`
	HotelName string    `json:"hotelName"`
	Utilised  bool      `json:"utilised"`
	Status    string    `json:"status"`
}

type BundleResponse struct {
	ID          uuid.UUID            `json:"id"`
	CustomerID  uuid.UUID            `json:"customerId"`
	PurchasedAt time.Time            `json:"purchasedAt"`
	ExpiryDate  time.Time            `json:"expiryDate"`
	Expired     bool                 `json:"expired"`
	Pricing     QuoteResponse        `json:"pricing"`
	Items       []BundleItemResponse `json:"items"`
}

type BundleCreatedResponse struct {
	BundleID    uuid.UUID     `json:"bundleId"`
	PurchasedAt time.Time     `json:"purchasedAt"`
	Pricing     QuoteResponse `json:"pricing"`
	Message     string        `json:"message"`
}

type MarkUtilisedResponse struct {
	BundleID     uuid.UUID `json:"bundleId"`
	PackageID    uuid.UUID `json:"packageId"`
	ItemsFlipped int       `json:"itemsFlipped"`
}

func FromBundleView(view *queries.BundleView) *BundleResponse {
	items := make([]BundleItemResponse, len(view.Items))
	for i, item := range view.Items {
		items[i] = BundleItemResponse{
			ItemID:    item.ItemID,
			PackageID: item.PackageID,
			HotelName: item.HotelName,
			Utilised:  item.Utilised,
			Status:    item.Status,
		}
	}
	return &BundleResponse{
		ID:          view.ID,
		CustomerID:  view.CustomerID,
		PurchasedAt: view.PurchasedAt,
		ExpiryDate:  view.ExpiryDate,
		Expired:     view.Expired,
		Pricing:     fromQuoteView(view.Pricing),
		Items:       items,
	}
}

func FromBundleViews(views []*queries.BundleView) []*BundleResponse {
	resps := make([]*BundleResponse, len(views))
	for i, view := range views {
		resps[i] = FromBundleView(view)
	}
	return resps
}

func FromCreateBundleResult(result *commands.CreateBundleResult) BundleCreatedResponse {
	return BundleCreatedResponse{
		BundleID:    result.BundleID,
		PurchasedAt: result.PurchasedAt,
		Pricing: QuoteResponse{
			ItemCount:       result.Quote.ItemCount,
			TotalCents:      result.Quote.TotalCents,
			DiscountPercent: result.Quote.DiscountPercent,
			DiscountedCents: result.Quote.DiscountedCents,
		},
		Message: result.Message,
	}
}

func FromMarkUtilisedResult(result *commands.MarkUtilisedResult) MarkUtilisedResponse {
	return MarkUtilisedResponse{
		BundleID:     result.BundleID,
		PackageID:    result.PackageID,
		ItemsFlipped: result.ItemsFlipped,
	}
}

func fromQuoteView(q queries.QuoteView) QuoteResponse {
	return QuoteResponse{
		ItemCount:       q.ItemCount,
		TotalCents:      q.TotalCents,
		DiscountPercent: q.DiscountPercent,
		DiscountedCents: q.DiscountedCents,
	}
}
