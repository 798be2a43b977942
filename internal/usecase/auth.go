package usecase

import (
	"context"

	"bundlestay/internal/infra"
	"bundlestay/internal/pkg/errs"
	"bundlestay/internal/pkg/jwt"
	"bundlestay/internal/pkg/password"
	"bundlestay/internal/usecase/queries"

	"github.com/google/uuid"
)

// CustomerCredentials is the write-side shape needed to verify a login.
type CustomerCredentials struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
}

type CredentialStore interface {
	FindWithCredentials(ctx context.Context, email string) (*CustomerCredentials, error)
}

type LoginResult struct {
	Token    string
	Customer queries.AuthorizedCustomerView
}

type AuthUseCase interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authUseCaseImpl struct {
	credentials CredentialStore
	jwtService  *jwt.Service
}

func NewAuthUseCase(credentials CredentialStore, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		credentials: credentials,
		jwtService:  jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	creds, err := a.credentials.FindWithCredentials(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// same error as a bad password so callers can't enumerate accounts
			return nil, errs.ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(creds.PasswordHash, plainPassword); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(creds.ID, creds.Email)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &LoginResult{
		Token: token,
		Customer: queries.AuthorizedCustomerView{
			ID:    creds.ID,
			Email: creds.Email,
			Name:  creds.Name,
		},
	}, nil
}
