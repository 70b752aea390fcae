package persistence

import (
	context "context"

	entity "github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	mock "github.com/stretchr/testify/mock"
)

// MockBudgetRepository is a mock type for the BudgetRepository type
type MockBudgetRepository struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx
func (_m *MockBudgetRepository) List(ctx context.Context) ([]entity.Budget, error) {
	ret := _m.Called(ctx)

	var r0 []entity.Budget
	if rf, ok := ret.Get(0).(func(context.Context) []entity.Budget); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.Budget)
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
func (_m *MockBudgetRepository) GetByID(ctx context.Context, id string) (*entity.Budget, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Budget
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.Budget); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Budget)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetByCategoryID provides a mock function with given fields: ctx, categoryID
func (_m *MockBudgetRepository) GetByCategoryID(ctx context.Context, categoryID string) (*entity.Budget, error) {
	ret := _m.Called(ctx, categoryID)

	var r0 *entity.Budget
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.Budget); ok {
		r0 = rf(ctx, categoryID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Budget)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, categoryID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Create provides a mock function with given fields: ctx, budget
func (_m *MockBudgetRepository) Create(ctx context.Context, budget entity.NewBudget) (*entity.Budget, error) {
	ret := _m.Called(ctx, budget)

	var r0 *entity.Budget
	if rf, ok := ret.Get(0).(func(context.Context, entity.NewBudget) *entity.Budget); ok {
		r0 = rf(ctx, budget)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Budget)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.NewBudget) error); ok {
		r1 = rf(ctx, budget)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateLimit provides a mock function with given fields: ctx, id, limit
func (_m *MockBudgetRepository) UpdateLimit(ctx context.Context, id string, limit float64) (*entity.Budget, error) {
	ret := _m.Called(ctx, id, limit)

	var r0 *entity.Budget
	if rf, ok := ret.Get(0).(func(context.Context, string, float64) *entity.Budget); ok {
		r0 = rf(ctx, id, limit)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Budget)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, float64) error); ok {
		r1 = rf(ctx, id, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockBudgetRepository creates a new instance of MockBudgetRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockBudgetRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBudgetRepository {
	m := &MockBudgetRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
