//go:build unit

package commands_test

import (
	"context"

	"bundlestay/internal/domain/booking"
	"bundlestay/internal/domain/bundle"
	"bundlestay/internal/domain/catalog"
	"bundlestay/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.CustomerSnapshot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commands.CustomerSnapshot), args.Error(1)
}

func (m *MockCustomerRepository) FindByEmail(ctx context.Context, email string) (*commands.CustomerSnapshot, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commands.CustomerSnapshot), args.Error(1)
}

func (m *MockCustomerRepository) Create(ctx context.Context, email, passwordHash, name string) (uuid.UUID, error) {
	args := m.Called(ctx, email, passwordHash, name)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type MockPackageRepository struct {
	mock.Mock
}

func (m *MockPackageRepository) FindByName(ctx context.Context, hotelName string) (*commands.PackageSnapshot, error) {
	args := m.Called(ctx, hotelName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commands.PackageSnapshot), args.Error(1)
}

func (m *MockPackageRepository) Create(ctx context.Context, pkg *catalog.Package) (uuid.UUID, error) {
	args := m.Called(ctx, pkg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	args := m.Called(ctx, b)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type MockBundleRepository struct {
	mock.Mock
}

func (m *MockBundleRepository) Create(ctx context.Context, p *bundle.Purchase) (uuid.UUID, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockBundleRepository) FindByID(ctx context.Context, id uuid.UUID) (*bundle.Purchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bundle.Purchase), args.Error(1)
}

func (m *MockBundleRepository) UpdateUtilisation(ctx context.Context, p *bundle.Purchase) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, topic, key string, payload any) error {
	args := m.Called(ctx, topic, key, payload)
	return args.Error(0)
}
