package request

import (
	"bundlestay/internal/usecase/commands"
)

type CreatePackageRequest struct {
	HotelName      string `json:"hotel_name" binding:"required"`
	DurationNights int    `json:"duration_nights" binding:"required,min=1"`
	UnitCostCents  int64  `json:"unit_cost_cents" binding:"required,min=0"`
	ImageURL       string `json:"image_url,omitempty"`
	Description    string `json:"description,omitempty"`
}

func (r CreatePackageRequest) ToParams() commands.CreatePackageParams {
	return commands.CreatePackageParams{
		HotelName:      r.HotelName,
		DurationNights: r.DurationNights,
		UnitCostCents:  r.UnitCostCents,
		ImageURL:       r.ImageURL,
		Description:    r.Description,
	}
}
