package persistence

import (
	context "context"
	time "time"

	entity "github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	mock "github.com/stretchr/testify/mock"
)

// MockTransactionRepository is a mock type for the TransactionRepository type
type MockTransactionRepository struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx
func (_m *MockTransactionRepository) List(ctx context.Context) ([]entity.Transaction, error) {
	ret := _m.Called(ctx)

	var r0 []entity.Transaction
	if rf, ok := ret.Get(0).(func(context.Context) []entity.Transaction); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.Transaction)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListBetween provides a mock function with given fields: ctx, from, to
func (_m *MockTransactionRepository) ListBetween(ctx context.Context, from time.Time, to time.Time) ([]entity.Transaction, error) {
	ret := _m.Called(ctx, from, to)

	var r0 []entity.Transaction
	if rf, ok := ret.Get(0).(func(context.Context, time.Time, time.Time) []entity.Transaction); ok {
		r0 = rf(ctx, from, to)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.Transaction)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, time.Time, time.Time) error); ok {
		r1 = rf(ctx, from, to)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListByWallet provides a mock function with given fields: ctx, walletID
func (_m *MockTransactionRepository) ListByWallet(ctx context.Context, walletID string) ([]entity.Transaction, error) {
	ret := _m.Called(ctx, walletID)

	var r0 []entity.Transaction
	if rf, ok := ret.Get(0).(func(context.Context, string) []entity.Transaction); ok {
		r0 = rf(ctx, walletID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.Transaction)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, walletID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockTransactionRepository) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Transaction
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.Transaction); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Transaction)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CreateAndApply provides a mock function with given fields: ctx, tx
func (_m *MockTransactionRepository) CreateAndApply(ctx context.Context, tx entity.NewTransaction) (*entity.Transaction, error) {
	ret := _m.Called(ctx, tx)

	var r0 *entity.Transaction
	if rf, ok := ret.Get(0).(func(context.Context, entity.NewTransaction) *entity.Transaction); ok {
		r0 = rf(ctx, tx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Transaction)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.NewTransaction) error); ok {
		r1 = rf(ctx, tx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SumByCategory provides a mock function with given fields: ctx, txType, from, to
func (_m *MockTransactionRepository) SumByCategory(ctx context.Context, txType entity.TransactionType, from time.Time, to time.Time) (map[string]float64, error) {
	ret := _m.Called(ctx, txType, from, to)

	var r0 map[string]float64
	if rf, ok := ret.Get(0).(func(context.Context, entity.TransactionType, time.Time, time.Time) map[string]float64); ok {
		r0 = rf(ctx, txType, from, to)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[string]float64)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.TransactionType, time.Time, time.Time) error); ok {
		r1 = rf(ctx, txType, from, to)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Totals provides a mock function with given fields: ctx, from, to
func (_m *MockTransactionRepository) Totals(ctx context.Context, from time.Time, to time.Time) (float64, float64, error) {
	ret := _m.Called(ctx, from, to)

	var r0 float64
	if rf, ok := ret.Get(0).(func(context.Context, time.Time, time.Time) float64); ok {
		r0 = rf(ctx, from, to)
	} else {
		r0 = ret.Get(0).(float64)
	}

	var r1 float64
	if rf, ok := ret.Get(1).(func(context.Context, time.Time, time.Time) float64); ok {
		r1 = rf(ctx, from, to)
	} else {
		r1 = ret.Get(1).(float64)
	}

	var r2 error
	if rf, ok := ret.Get(2).(func(context.Context, time.Time, time.Time) error); ok {
		r2 = rf(ctx, from, to)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// NewMockTransactionRepository creates a new instance of MockTransactionRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTransactionRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionRepository {
	m := &MockTransactionRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
