package usecase

import (
	context "context"
	time "time"

	usecase "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/usecase"
	mock "github.com/stretchr/testify/mock"
)

// MockBillUseCase is a mock type for the BillUseCase type
type MockBillUseCase struct {
	mock.Mock
}

// RollForward provides a mock function with given fields: ctx, now
func (_m *MockBillUseCase) RollForward(ctx context.Context, now time.Time) (*usecase.RollForwardResult, error) {
	ret := _m.Called(ctx, now)

	var r0 *usecase.RollForwardResult
	if rf, ok := ret.Get(0).(func(context.Context, time.Time) *usecase.RollForwardResult); ok {
		r0 = rf(ctx, now)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.RollForwardResult)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, time.Time) error); ok {
		r1 = rf(ctx, now)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Pay provides a mock function with given fields: ctx, req
func (_m *MockBillUseCase) Pay(ctx context.Context, req usecase.PayBillRequest) (*usecase.PayBillResult, error) {
	ret := _m.Called(ctx, req)

	var r0 *usecase.PayBillResult
	if rf, ok := ret.Get(0).(func(context.Context, usecase.PayBillRequest) *usecase.PayBillResult); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.PayBillResult)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, usecase.PayBillRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockBillUseCase creates a new instance of MockBillUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockBillUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBillUseCase {
	m := &MockBillUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
