package persistence

import (
	context "context"

	persistence "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/persistence"
	mock "github.com/stretchr/testify/mock"
)

// MockUnitOfWork is a mock type for the UnitOfWork type
type MockUnitOfWork struct {
	mock.Mock
}

// Begin provides a mock function with given fields: ctx
func (_m *MockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	ret := _m.Called(ctx)

	var r0 context.Context
	if rf, ok := ret.Get(0).(func(context.Context) context.Context); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(context.Context)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Commit provides a mock function with given fields: ctx
func (_m *MockUnitOfWork) Commit(ctx context.Context) error {
	ret := _m.Called(ctx)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Rollback provides a mock function with given fields: ctx
func (_m *MockUnitOfWork) Rollback(ctx context.Context) error {
	ret := _m.Called(ctx)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// GetUserRepository provides a mock function with given fields: ctx
func (_m *MockUnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	ret := _m.Called(ctx)

	var r0 persistence.UserRepository
	if rf, ok := ret.Get(0).(func(context.Context) persistence.UserRepository); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(persistence.UserRepository)
	}

	return r0
}

// GetWalletRepository provides a mock function with given fields: ctx
func (_m *MockUnitOfWork) GetWalletRepository(ctx context.Context) persistence.WalletRepository {
	ret := _m.Called(ctx)

	var r0 persistence.WalletRepository
	if rf, ok := ret.Get(0).(func(context.Context) persistence.WalletRepository); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(persistence.WalletRepository)
	}

	return r0
}

// GetTransactionRepository provides a mock function with given fields: ctx
func (_m *MockUnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	ret := _m.Called(ctx)

	var r0 persistence.TransactionRepository
	if rf, ok := ret.Get(0).(func(context.Context) persistence.TransactionRepository); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(persistence.TransactionRepository)
	}

	return r0
}

// GetBillRepository provides a mock function with given fields: ctx
func (_m *MockUnitOfWork) GetBillRepository(ctx context.Context) persistence.BillRepository {
	ret := _m.Called(ctx)

	var r0 persistence.BillRepository
	if rf, ok := ret.Get(0).(func(context.Context) persistence.BillRepository); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(persistence.BillRepository)
	}

	return r0
}

// GetBillPaymentRepository provides a mock function with given fields: ctx
func (_m *MockUnitOfWork) GetBillPaymentRepository(ctx context.Context) persistence.BillPaymentRepository {
	ret := _m.Called(ctx)

	var r0 persistence.BillPaymentRepository
	if rf, ok := ret.Get(0).(func(context.Context) persistence.BillPaymentRepository); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(persistence.BillPaymentRepository)
	}

	return r0
}

// NewMockUnitOfWork creates a new instance of MockUnitOfWork. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockUnitOfWork(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUnitOfWork {
	m := &MockUnitOfWork{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
