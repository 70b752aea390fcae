package persistence

import (
	context "context"

	entity "github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	mock "github.com/stretchr/testify/mock"
)

// MockWalletRepository is a mock type for the WalletRepository type
type MockWalletRepository struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx
func (_m *MockWalletRepository) List(ctx context.Context) ([]entity.Wallet, error) {
	ret := _m.Called(ctx)

	var r0 []entity.Wallet
	if rf, ok := ret.Get(0).(func(context.Context) []entity.Wallet); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.Wallet)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockWalletRepository) GetByID(ctx context.Context, id string) (*entity.Wallet, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Wallet
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.Wallet); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Wallet)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetByType provides a mock function with given fields: ctx, walletType
func (_m *MockWalletRepository) GetByType(ctx context.Context, walletType entity.WalletType) (*entity.Wallet, error) {
	ret := _m.Called(ctx, walletType)

	var r0 *entity.Wallet
	if rf, ok := ret.Get(0).(func(context.Context, entity.WalletType) *entity.Wallet); ok {
		r0 = rf(ctx, walletType)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Wallet)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.WalletType) error); ok {
		r1 = rf(ctx, walletType)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Create provides a mock function with given fields: ctx, wallet
func (_m *MockWalletRepository) Create(ctx context.Context, wallet entity.NewWallet) (*entity.Wallet, error) {
	ret := _m.Called(ctx, wallet)

	var r0 *entity.Wallet
	if rf, ok := ret.Get(0).(func(context.Context, entity.NewWallet) *entity.Wallet); ok {
		r0 = rf(ctx, wallet)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Wallet)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.NewWallet) error); ok {
		r1 = rf(ctx, wallet)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateBalance provides a mock function with given fields: ctx, id, delta
func (_m *MockWalletRepository) UpdateBalance(ctx context.Context, id string, delta float64) (*entity.Wallet, error) {
	ret := _m.Called(ctx, id, delta)

	var r0 *entity.Wallet
	if rf, ok := ret.Get(0).(func(context.Context, string, float64) *entity.Wallet); ok {
		r0 = rf(ctx, id, delta)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Wallet)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, float64) error); ok {
		r1 = rf(ctx, id, delta)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SetBalance provides a mock function with given fields: ctx, id, balance
func (_m *MockWalletRepository) SetBalance(ctx context.Context, id string, balance float64) (*entity.Wallet, error) {
	ret := _m.Called(ctx, id, balance)

	var r0 *entity.Wallet
	if rf, ok := ret.Get(0).(func(context.Context, string, float64) *entity.Wallet); ok {
		r0 = rf(ctx, id, balance)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Wallet)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, float64) error); ok {
		r1 = rf(ctx, id, balance)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockWalletRepository creates a new instance of MockWalletRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockWalletRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWalletRepository {
	m := &MockWalletRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
