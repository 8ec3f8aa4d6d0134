package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockPasswordPolicy is a mock type for the PasswordPolicy type
type MockPasswordPolicy struct {
	mock.Mock
}

type MockPasswordPolicy_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPasswordPolicy) EXPECT() *MockPasswordPolicy_Expecter {
	return &MockPasswordPolicy_Expecter{mock: &_m.Mock}
}

// Validate provides a mock function with given fields: password
func (_m *MockPasswordPolicy) Validate(password string) error {
	ret := _m.Called(password)

	if len(ret) == 0 {
		panic("no return value specified for Validate")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(string) error); ok {
		r0 = rf(password)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockPasswordPolicy_Validate_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Validate'
type MockPasswordPolicy_Validate_Call struct {
	*mock.Call
}

// Validate is a helper method to define mock.On call
//   - password string
func (_e *MockPasswordPolicy_Expecter) Validate(password interface{}) *MockPasswordPolicy_Validate_Call {
	return &MockPasswordPolicy_Validate_Call{Call: _e.mock.On("Validate", password)}
}

func (_c *MockPasswordPolicy_Validate_Call) Run(run func(password string)) *MockPasswordPolicy_Validate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 string
		if args[0] != nil {
			arg0 = args[0].(string)
		}
		run(arg0)
	})
	return _c
}

func (_c *MockPasswordPolicy_Validate_Call) Return(_a0 error) *MockPasswordPolicy_Validate_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockPasswordPolicy_Validate_Call) RunAndReturn(run func(string) error) *MockPasswordPolicy_Validate_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockPasswordPolicy creates a new instance of MockPasswordPolicy. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockPasswordPolicy(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordPolicy {
	mock := &MockPasswordPolicy{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
