package core

import (
	time "time"

	mock "github.com/stretchr/testify/mock"
)

// MockTimeProvider is a mock type for the TimeProvider type
type MockTimeProvider struct {
	mock.Mock
}

// Now provides a mock function with given fields:
func (_m *MockTimeProvider) Now() time.Time {
	ret := _m.Called()

	if rf, ok := ret.Get(0).(func() time.Time); ok {
		return rf()
	}
	return ret.Get(0).(time.Time)
}

// Since provides a mock function with given fields: t
func (_m *MockTimeProvider) Since(t time.Time) time.Duration {
	ret := _m.Called(t)

	if rf, ok := ret.Get(0).(func(time.Time) time.Duration); ok {
		return rf(t)
	}
	return ret.Get(0).(time.Duration)
}

// NewMockTimeProvider creates a new instance of MockTimeProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTimeProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTimeProvider {
	m := &MockTimeProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
