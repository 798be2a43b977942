package request

import "github.com/google/uuid"

type CreateBundleRequest struct {
	HotelNames []string `json:"hotel_names" binding:"required,min=1"`
}

type MarkUtilisedRequest struct {
	PackageID uuid.UUID `json:"package_id" binding:"required"`
}
