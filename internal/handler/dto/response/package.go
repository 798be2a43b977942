package response

import (
	"time"

	"bundlestay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PackageResponse struct {
	ID             uuid.UUID `json:"id"`
	HotelName      string    `json:"hotelName"`
	DurationNights int       `json:"durationNights"`
	UnitCostCents  int64     `json:"unitCostCents"`
	TotalCostCents int64     `json:"totalCostCents"`
	ImageURL       string    `json:"imageUrl"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"createdAt"`
}

func FromPackageView(view *queries.PackageView) (*PackageResponse, error) {
	var resp PackageResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	resp.TotalCostCents = view.UnitCostCents * int64(view.DurationNights)
	return &resp, nil
}

func FromPackageViews(views []*queries.PackageView) ([]*PackageResponse, error) {
	resps := make([]*PackageResponse, len(views))
	for i, view := range views {
		resp, err := FromPackageView(view)
		if err != nil {
			return nil, err
		}
		resps[i] = resp
	}
	return resps, nil
}
