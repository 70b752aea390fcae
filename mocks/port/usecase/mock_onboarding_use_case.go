package usecase

import (
	context "context"

	entity "github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	mock "github.com/stretchr/testify/mock"
)

// MockOnboardingUseCase is a mock type for the OnboardingUseCase type
type MockOnboardingUseCase struct {
	mock.Mock
}

// PrimeWallets provides a mock function with given fields: ctx, cash, bank
func (_m *MockOnboardingUseCase) PrimeWallets(ctx context.Context, cash string, bank string) ([]entity.Wallet, error) {
	ret := _m.Called(ctx, cash, bank)

	var r0 []entity.Wallet
	if rf, ok := ret.Get(0).(func(context.Context, string, string) []entity.Wallet); ok {
		r0 = rf(ctx, cash, bank)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.Wallet)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, cash, bank)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Complete provides a mock function with given fields: ctx, currency, locale
func (_m *MockOnboardingUseCase) Complete(ctx context.Context, currency string, locale string) (*entity.User, error) {
	ret := _m.Called(ctx, currency, locale)

	var r0 *entity.User
	if rf, ok := ret.Get(0).(func(context.Context, string, string) *entity.User); ok {
		r0 = rf(ctx, currency, locale)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, currency, locale)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockOnboardingUseCase creates a new instance of MockOnboardingUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockOnboardingUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOnboardingUseCase {
	m := &MockOnboardingUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
