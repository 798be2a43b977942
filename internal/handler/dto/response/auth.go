package response

import (
	"bundlestay/internal/usecase"
	"bundlestay/internal/usecase/queries"
)

type LoginResponse struct {
	AccessToken string                         `json:"access_token"`
	Customer    queries.AuthorizedCustomerView `json:"customer"`
}

func FromLoginResult(result *usecase.LoginResult) LoginResponse {
	return LoginResponse{
		AccessToken: result.Token,
		Customer:    result.Customer,
	}
}
