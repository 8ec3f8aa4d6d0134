package mocks

import (
	"quicksell/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTokenService is a mock type for the TokenService type
type MockTokenService struct {
	mock.Mock
}

type MockTokenService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenService) EXPECT() *MockTokenService_Expecter {
	return &MockTokenService_Expecter{mock: &_m.Mock}
}

// IssueTokens provides a mock function with given fields: userID
func (_m *MockTokenService) IssueTokens(userID uuid.UUID) (*service.TokenPair, error) {
	ret := _m.Called(userID)

	if len(ret) == 0 {
		panic("no return value specified for IssueTokens")
	}

	var r0 *service.TokenPair
	var r1 error
	if rf, ok := ret.Get(0).(func(uuid.UUID) (*service.TokenPair, error)); ok {
		return rf(userID)
	}
	if rf, ok := ret.Get(0).(func(uuid.UUID) *service.TokenPair); ok {
		r0 = rf(userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*service.TokenPair)
		}
	}

	if rf, ok := ret.Get(1).(func(uuid.UUID) error); ok {
		r1 = rf(userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTokenService_IssueTokens_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'IssueTokens'
type MockTokenService_IssueTokens_Call struct {
	*mock.Call
}

// IssueTokens is a helper method to define mock.On call
//   - userID uuid.UUID
func (_e *MockTokenService_Expecter) IssueTokens(userID interface{}) *MockTokenService_IssueTokens_Call {
	return &MockTokenService_IssueTokens_Call{Call: _e.mock.On("IssueTokens", userID)}
}

func (_c *MockTokenService_IssueTokens_Call) Run(run func(userID uuid.UUID)) *MockTokenService_IssueTokens_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 uuid.UUID
		if args[0] != nil {
			arg0 = args[0].(uuid.UUID)
		}
		run(arg0)
	})
	return _c
}

func (_c *MockTokenService_IssueTokens_Call) Return(_a0 *service.TokenPair, _a1 error) *MockTokenService_IssueTokens_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTokenService_IssueTokens_Call) RunAndReturn(run func(uuid.UUID) (*service.TokenPair, error)) *MockTokenService_IssueTokens_Call {
	_c.Call.Return(run)
	return _c
}

// ParseToken provides a mock function with given fields: raw
func (_m *MockTokenService) ParseToken(raw string) (*service.Claims, error) {
	ret := _m.Called(raw)

	if len(ret) == 0 {
		panic("no return value specified for ParseToken")
	}

	var r0 *service.Claims
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (*service.Claims, error)); ok {
		return rf(raw)
	}
	if rf, ok := ret.Get(0).(func(string) *service.Claims); ok {
		r0 = rf(raw)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*service.Claims)
		}
	}

	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(raw)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTokenService_ParseToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ParseToken'
type MockTokenService_ParseToken_Call struct {
	*mock.Call
}

// ParseToken is a helper method to define mock.On call
//   - raw string
func (_e *MockTokenService_Expecter) ParseToken(raw interface{}) *MockTokenService_ParseToken_Call {
	return &MockTokenService_ParseToken_Call{Call: _e.mock.On("ParseToken", raw)}
}

func (_c *MockTokenService_ParseToken_Call) Run(run func(raw string)) *MockTokenService_ParseToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 string
		if args[0] != nil {
			arg0 = args[0].(string)
		}
		run(arg0)
	})
	return _c
}

func (_c *MockTokenService_ParseToken_Call) Return(_a0 *service.Claims, _a1 error) *MockTokenService_ParseToken_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTokenService_ParseToken_Call) RunAndReturn(run func(string) (*service.Claims, error)) *MockTokenService_ParseToken_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockTokenService creates a new instance of MockTokenService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	mock := &MockTokenService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
