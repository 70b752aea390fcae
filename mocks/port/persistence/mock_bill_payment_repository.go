package persistence

import (
	context "context"

	entity "github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	mock "github.com/stretchr/testify/mock"
)

// MockBillPaymentRepository is a mock type for the BillPaymentRepository type
type MockBillPaymentRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, payment
func (_m *MockBillPaymentRepository) Create(ctx context.Context, payment entity.NewBillPayment) (*entity.BillPayment, error) {
	ret := _m.Called(ctx, payment)

	var r0 *entity.BillPayment
	if rf, ok := ret.Get(0).(func(context.Context, entity.NewBillPayment) *entity.BillPayment); ok {
		r0 = rf(ctx, payment)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.BillPayment)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.NewBillPayment) error); ok {
		r1 = rf(ctx, payment)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockBillPaymentRepository) GetByID(ctx context.Context, id string) (*entity.BillPayment, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.BillPayment
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.BillPayment); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.BillPayment)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListByBill provides a mock function with given fields: ctx, billID
func (_m *MockBillPaymentRepository) ListByBill(ctx context.Context, billID string) ([]entity.BillPayment, error) {
	ret := _m.Called(ctx, billID)

	var r0 []entity.BillPayment
	if rf, ok := ret.Get(0).(func(context.Context, string) []entity.BillPayment); ok {
		r0 = rf(ctx, billID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.BillPayment)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, billID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockBillPaymentRepository creates a new instance of MockBillPaymentRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockBillPaymentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBillPaymentRepository {
	m := &MockBillPaymentRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
