package request

import "time"

type CreateBookingRequest struct {
	HotelName   string    `json:"hotel_name" binding:"required"`
	CheckInDate time.Time `json:"check_in_date" binding:"required"`
}

type CreateItineraryRequest struct {
	StartDate  time.Time `json:"start_date" binding:"required"`
	HotelNames []string  `json:"hotel_names" binding:"required,min=1"`
}
