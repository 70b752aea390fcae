package usecase

import (
	context "context"
	time "time"

	usecase "github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/usecase"
	mock "github.com/stretchr/testify/mock"
)

// MockReportUseCase is a mock type for the ReportUseCase type
type MockReportUseCase struct {
	mock.Mock
}

// MonthlyOverview provides a mock function with given fields: ctx, month
func (_m *MockReportUseCase) MonthlyOverview(ctx context.Context, month time.Time) (*usecase.MonthlyOverview, error) {
	ret := _m.Called(ctx, month)

	var r0 *usecase.MonthlyOverview
	if rf, ok := ret.Get(0).(func(context.Context, time.Time) *usecase.MonthlyOverview); ok {
		r0 = rf(ctx, month)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.MonthlyOverview)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, time.Time) error); ok {
		r1 = rf(ctx, month)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockReportUseCase creates a new instance of MockReportUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockReportUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportUseCase {
	m := &MockReportUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
