package usecase

import (
	context "context"
	time "time"

	entity "github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	mock "github.com/stretchr/testify/mock"
)

// MockBudgetUseCase is a mock type for the BudgetUseCase type
type MockBudgetUseCase struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, categoryID, monthlyLimit
func (_m *MockBudgetUseCase) Create(ctx context.Context, categoryID string, monthlyLimit string) (*entity.Budget, error) {
	ret := _m.Called(ctx, categoryID, monthlyLimit)

	var r0 *entity.Budget
	if rf, ok := ret.Get(0).(func(context.Context, string, string) *entity.Budget); ok {
		r0 = rf(ctx, categoryID, monthlyLimit)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Budget)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, categoryID, monthlyLimit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Status provides a mock function with given fields: ctx, month
func (_m *MockBudgetUseCase) Status(ctx context.Context, month time.Time) ([]entity.BudgetStatus, error) {
	ret := _m.Called(ctx, month)

	var r0 []entity.BudgetStatus
	if rf, ok := ret.Get(0).(func(context.Context, time.Time) []entity.BudgetStatus); ok {
		r0 = rf(ctx, month)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.BudgetStatus)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, time.Time) error); ok {
		r1 = rf(ctx, month)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockBudgetUseCase creates a new instance of MockBudgetUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockBudgetUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBudgetUseCase {
	m := &MockBudgetUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
