package mocks

import (
	"context"

	"quicksell/internal/domain/entity"
	"quicksell/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAccountUsecase is a mock type for the AccountUsecase type
type MockAccountUsecase struct {
	mock.Mock
}

type MockAccountUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAccountUsecase) EXPECT() *MockAccountUsecase_Expecter {
	return &MockAccountUsecase_Expecter{mock: &_m.Mock}
}

// ValidatePassword provides a mock function with given fields: password
func (_m *MockAccountUsecase) ValidatePassword(password string) error {
	ret := _m.Called(password)

	if len(ret) == 0 {
		panic("no return value specified for ValidatePassword")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(string) error); ok {
		r0 = rf(password)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockAccountUsecase_ValidatePassword_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ValidatePassword'
type MockAccountUsecase_ValidatePassword_Call struct {
	*mock.Call
}

// ValidatePassword is a helper method to define mock.On call
//   - password string
func (_e *MockAccountUsecase_Expecter) ValidatePassword(password interface{}) *MockAccountUsecase_ValidatePassword_Call {
	return &MockAccountUsecase_ValidatePassword_Call{Call: _e.mock.On("ValidatePassword", password)}
}

func (_c *MockAccountUsecase_ValidatePassword_Call) Run(run func(password string)) *MockAccountUsecase_ValidatePassword_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 string
		if args[0] != nil {
			arg0 = args[0].(string)
		}
		run(arg0)
	})
	return _c
}

func (_c *MockAccountUsecase_ValidatePassword_Call) Return(_a0 error) *MockAccountUsecase_ValidatePassword_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockAccountUsecase_ValidatePassword_Call) RunAndReturn(run func(string) error) *MockAccountUsecase_ValidatePassword_Call {
	_c.Call.Return(run)
	return _c
}

// Register provides a mock function with given fields: ctx, input
func (_m *MockAccountUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for Register")
	}

	var r0 *entity.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.RegisterInput) (*entity.User, error)); ok {
		return rf(ctx, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.RegisterInput) *entity.User); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *usecase.RegisterInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAccountUsecase_Register_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Register'
type MockAccountUsecase_Register_Call struct {
	*mock.Call
}

// Register is a helper method to define mock.On call
//   - ctx context.Context
//   - input *usecase.RegisterInput
func (_e *MockAccountUsecase_Expecter) Register(ctx interface{}, input interface{}) *MockAccountUsecase_Register_Call {
	return &MockAccountUsecase_Register_Call{Call: _e.mock.On("Register", ctx, input)}
}

func (_c *MockAccountUsecase_Register_Call) Run(run func(ctx context.Context, input *usecase.RegisterInput)) *MockAccountUsecase_Register_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 *usecase.RegisterInput
		if args[1] != nil {
			arg1 = args[1].(*usecase.RegisterInput)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockAccountUsecase_Register_Call) Return(_a0 *entity.User, _a1 error) *MockAccountUsecase_Register_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAccountUsecase_Register_Call) RunAndReturn(run func(context.Context, *usecase.RegisterInput) (*entity.User, error)) *MockAccountUsecase_Register_Call {
	_c.Call.Return(run)
	return _c
}

// Login provides a mock function with given fields: ctx, input
func (_m *MockAccountUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for Login")
	}

	var r0 *usecase.LoginOutput
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.LoginInput) (*usecase.LoginOutput, error)); ok {
		return rf(ctx, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.LoginInput) *usecase.LoginOutput); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*usecase.LoginOutput)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *usecase.LoginInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAccountUsecase_Login_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Login'
type MockAccountUsecase_Login_Call struct {
	*mock.Call
}

// Login is a helper method to define mock.On call
//   - ctx context.Context
//   - input *usecase.LoginInput
func (_e *MockAccountUsecase_Expecter) Login(ctx interface{}, input interface{}) *MockAccountUsecase_Login_Call {
	return &MockAccountUsecase_Login_Call{Call: _e.mock.On("Login", ctx, input)}
}

func (_c *MockAccountUsecase_Login_Call) Run(run func(ctx context.Context, input *usecase.LoginInput)) *MockAccountUsecase_Login_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 *usecase.LoginInput
		if args[1] != nil {
			arg1 = args[1].(*usecase.LoginInput)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockAccountUsecase_Login_Call) Return(_a0 *usecase.LoginOutput, _a1 error) *MockAccountUsecase_Login_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAccountUsecase_Login_Call) RunAndReturn(run func(context.Context, *usecase.LoginInput) (*usecase.LoginOutput, error)) *MockAccountUsecase_Login_Call {
	_c.Call.Return(run)
	return _c
}

// GetAccount provides a mock function with given fields: ctx, userID
func (_m *MockAccountUsecase) GetAccount(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for GetAccount")
	}

	var r0 *entity.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.User, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *entity.User); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAccountUsecase_GetAccount_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetAccount'
type MockAccountUsecase_GetAccount_Call struct {
	*mock.Call
}

// GetAccount is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
func (_e *MockAccountUsecase_Expecter) GetAccount(ctx interface{}, userID interface{}) *MockAccountUsecase_GetAccount_Call {
	return &MockAccountUsecase_GetAccount_Call{Call: _e.mock.On("GetAccount", ctx, userID)}
}

func (_c *MockAccountUsecase_GetAccount_Call) Run(run func(ctx context.Context, userID uuid.UUID)) *MockAccountUsecase_GetAccount_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 uuid.UUID
		if args[1] != nil {
			arg1 = args[1].(uuid.UUID)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockAccountUsecase_GetAccount_Call) Return(_a0 *entity.User, _a1 error) *MockAccountUsecase_GetAccount_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAccountUsecase_GetAccount_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.User, error)) *MockAccountUsecase_GetAccount_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockAccountUsecase creates a new instance of MockAccountUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAccountUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountUsecase {
	mock := &MockAccountUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
