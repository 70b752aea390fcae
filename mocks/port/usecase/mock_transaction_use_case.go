package usecase

import (
	context "context"
	time "time"

	entity "github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	usecase "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/usecase"
	mock "github.com/stretchr/testify/mock"
)

// MockTransactionUseCase is a mock type for the TransactionUseCase type
type MockTransactionUseCase struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, req
func (_m *MockTransactionUseCase) Create(ctx context.Context, req usecase.TransactionRequest) (*entity.Transaction, error) {
	ret := _m.Called(ctx, req)

	var r0 *entity.Transaction
	if rf, ok := ret.Get(0).(func(context.Context, usecase.TransactionRequest) *entity.Transaction); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Transaction)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, usecase.TransactionRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// List provides a mock function with given fields: ctx, month
func (_m *MockTransactionUseCase) List(ctx context.Context, month time.Time) ([]entity.Transaction, error) {
	ret := _m.Called(ctx, month)

	var r0 []entity.Transaction
	if rf, ok := ret.Get(0).(func(context.Context, time.Time) []entity.Transaction); ok {
		r0 = rf(ctx, month)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.Transaction)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, time.Time) error); ok {
		r1 = rf(ctx, month)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockTransactionUseCase creates a new instance of MockTransactionUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTransactionUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionUseCase {
	m := &MockTransactionUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
