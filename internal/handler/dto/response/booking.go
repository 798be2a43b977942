package response

import (
	"time"

	"bundlestay/internal/usecase/commands"
	"bundlestay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID             uuid.UUID `json:"id"`
	CustomerID     uuid.UUID `json:"customerId"`
	CustomerEmail  string    `json:"customerEmail"`
	HotelName      string    `json:"hotelName"`
	CheckInDate    time.Time `json:"checkInDate"`
	TotalCostCents int64     `json:"totalCostCents"`
	CreatedAt      time.Time `json:"createdAt"`
}

type BookingCreatedResponse struct {
	BookingID      uuid.UUID `json:"bookingId"`
	HotelName      string    `json:"hotelName"`
	CheckInDate    time.Time `json:"checkInDate"`
	TotalCostCents int64     `json:"totalCostCents"`
}

func FromBookingView(view *queries.BookingView) (*BookingResponse, error) {
	var resp BookingResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromBookingViews(views []*queries.BookingView) ([]*BookingResponse, error) {
	resps := make([]*BookingResponse, len(views))
	for i, view := range views {
		resp, err := FromBookingView(view)
		if err != nil {
			return nil, err
		}
		resps[i] = resp
	}
	return resps, nil
}

func FromBookingResult(result *commands.BookingResult) BookingCreatedResponse {
	return BookingCreatedResponse{
		BookingID:      result.BookingID,
		HotelName:      result.HotelName,
		CheckInDate:    result.CheckInDate,
		TotalCostCents: result.TotalCostCents,
	}
}

func FromBookingResults(results []*commands.BookingResult) []BookingCreatedResponse {
	resps := make([]BookingCreatedResponse, len(results))
	for i, result := range results {
		resps[i] = FromBookingResult(result)
	}
	return resps
}
