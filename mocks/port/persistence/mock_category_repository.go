package persistence

import (
	context "context"

	entity "github.com/amirhossein-jamali/pocket-ledger/internal/domain/entity"
	mock "github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a mock type for the CategoryRepository type
type MockCategoryRepository struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx
func (_m *MockCategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	ret := _m.Called(ctx)

	var r0 []entity.Category
	if rf, ok := ret.Get(0).(func(context.Context) []entity.Category); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.Category)
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
func (_m *MockCategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Category
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.Category); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Category)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetByName provides a mock function with given fields: ctx, name
func (_m *MockCategoryRepository) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	ret := _m.Called(ctx, name)

	var r0 *entity.Category
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.Category); ok {
		r0 = rf(ctx, name)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Category)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, name)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListNames provides a mock function with given fields: ctx
func (_m *MockCategoryRepository) ListNames(ctx context.Context) (map[string]struct{}, error) {
	ret := _m.Called(ctx)

	var r0 map[string]struct{}
	if rf, ok := ret.Get(0).(func(context.Context) map[string]struct{}); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[string]struct{})
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Create provides a mock function with given fields: ctx, category
func (_m *MockCategoryRepository) Create(ctx context.Context, category entity.NewCategory) (*entity.Category, error) {
	ret := _m.Called(ctx, category)

	var r0 *entity.Category
	if rf, ok := ret.Get(0).(func(context.Context, entity.NewCategory) *entity.Category); ok {
		r0 = rf(ctx, category)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Category)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.NewCategory) error); ok {
		r1 = rf(ctx, category)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockCategoryRepository creates a new instance of MockCategoryRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockCategoryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCategoryRepository {
	m := &MockCategoryRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
