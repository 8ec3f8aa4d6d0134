package mocks

import (
	"context"

	"quicksell/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockNotificationService is a mock type for the NotificationService type
type MockNotificationService struct {
	mock.Mock
}

type MockNotificationService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockNotificationService) EXPECT() *MockNotificationService_Expecter {
	return &MockNotificationService_Expecter{mock: &_m.Mock}
}

// Push provides a mock function with given fields: ctx, tokens, notification
func (_m *MockNotificationService) Push(ctx context.Context, tokens []string, notification *service.PushNotification) (*service.PushReport, error) {
	ret := _m.Called(ctx, tokens, notification)

	if len(ret) == 0 {
		panic("no return value specified for Push")
	}

	var r0 *service.PushReport
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, []string, *service.PushNotification) (*service.PushReport, error)); ok {
		return rf(ctx, tokens, notification)
	}
	if rf, ok := ret.Get(0).(func(context.Context, []string, *service.PushNotification) *service.PushReport); ok {
		r0 = rf(ctx, tokens, notification)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*service.PushReport)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, []string, *service.PushNotification) error); ok {
		r1 = rf(ctx, tokens, notification)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockNotificationService_Push_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Push'
type MockNotificationService_Push_Call struct {
	*mock.Call
}

// Push is a helper method to define mock.On call
//   - ctx context.Context
//   - tokens []string
//   - notification *service.PushNotification
func (_e *MockNotificationService_Expecter) Push(ctx interface{}, tokens interface{}, notification interface{}) *MockNotificationService_Push_Call {
	return &MockNotificationService_Push_Call{Call: _e.mock.On("Push", ctx, tokens, notification)}
}

func (_c *MockNotificationService_Push_Call) Run(run func(ctx context.Context, tokens []string, notification *service.PushNotification)) *MockNotificationService_Push_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 []string
		if args[1] != nil {
			arg1 = args[1].([]string)
		}
		var arg2 *service.PushNotification
		if args[2] != nil {
			arg2 = args[2].(*service.PushNotification)
		}
		run(arg0, arg1, arg2)
	})
	return _c
}

func (_c *MockNotificationService_Push_Call) Return(_a0 *service.PushReport, _a1 error) *MockNotificationService_Push_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockNotificationService_Push_Call) RunAndReturn(run func(context.Context, []string, *service.PushNotification) (*service.PushReport, error)) *MockNotificationService_Push_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockNotificationService creates a new instance of MockNotificationService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockNotificationService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNotificationService {
	mock := &MockNotificationService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
