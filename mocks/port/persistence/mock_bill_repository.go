package persistence

import (
	context "context"
	time "time"

	entity "github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	mock "github.com/stretchr/testify/mock"
)

// MockBillRepository is a mock type for the BillRepository type
type MockBillRepository struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx
func (_m *MockBillRepository) List(ctx context.Context) ([]entity.Bill, error) {
	ret := _m.Called(ctx)

	var r0 []entity.Bill
	if rf, ok := ret.Get(0).(func(context.Context) []entity.Bill); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.Bill)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListActive provides a mock function with given fields: ctx
func (_m *MockBillRepository) ListActive(ctx context.Context) ([]entity.Bill, error) {
	ret := _m.Called(ctx)

	var r0 []entity.Bill
	if rf, ok := ret.Get(0).(func(context.Context) []entity.Bill); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.Bill)
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
func (_m *MockBillRepository) GetByID(ctx context.Context, id string) (*entity.Bill, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Bill
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.Bill); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Bill)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Create provides a mock function with given fields: ctx, bill
func (_m *MockBillRepository) Create(ctx context.Context, bill entity.NewBill) (*entity.Bill, error) {
	ret := _m.Called(ctx, bill)

	var r0 *entity.Bill
	if rf, ok := ret.Get(0).(func(context.Context, entity.NewBill) *entity.Bill); ok {
		r0 = rf(ctx, bill)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Bill)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.NewBill) error); ok {
		r1 = rf(ctx, bill)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateSchedule provides a mock function with given fields: ctx, id, nextDue
func (_m *MockBillRepository) UpdateSchedule(ctx context.Context, id string, nextDue time.Time) (*entity.Bill, error) {
	ret := _m.Called(ctx, id, nextDue)

	var r0 *entity.Bill
	if rf, ok := ret.Get(0).(func(context.Context, string, time.Time) *entity.Bill); ok {
		r0 = rf(ctx, id, nextDue)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Bill)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, time.Time) error); ok {
		r1 = rf(ctx, id, nextDue)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SetPaid provides a mock function with given fields: ctx, id, paid
func (_m *MockBillRepository) SetPaid(ctx context.Context, id string, paid bool) (*entity.Bill, error) {
	ret := _m.Called(ctx, id, paid)

	var r0 *entity.Bill
	if rf, ok := ret.Get(0).(func(context.Context, string, bool) *entity.Bill); ok {
		r0 = rf(ctx, id, paid)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Bill)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, bool) error); ok {
		r1 = rf(ctx, id, paid)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockBillRepository creates a new instance of MockBillRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockBillRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBillRepository {
	m := &MockBillRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
