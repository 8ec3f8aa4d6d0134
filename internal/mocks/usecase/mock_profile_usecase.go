package mocks

import (
	"context"

	"quicksell/internal/domain/entity"
	"quicksell/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProfileUsecase is a mock type for the ProfileUsecase type
type MockProfileUsecase struct {
	mock.Mock
}

type MockProfileUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockProfileUsecase) EXPECT() *MockProfileUsecase_Expecter {
	return &MockProfileUsecase_Expecter{mock: &_m.Mock}
}

// GetOwnProfile provides a mock function with given fields: ctx, userID
func (_m *MockProfileUsecase) GetOwnProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for GetOwnProfile")
	}

	var r0 *entity.Profile
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.Profile, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *entity.Profile); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Profile)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProfileUsecase_GetOwnProfile_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetOwnProfile'
type MockProfileUsecase_GetOwnProfile_Call struct {
	*mock.Call
}

// GetOwnProfile is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
func (_e *MockProfileUsecase_Expecter) GetOwnProfile(ctx interface{}, userID interface{}) *MockProfileUsecase_GetOwnProfile_Call {
	return &MockProfileUsecase_GetOwnProfile_Call{Call: _e.mock.On("GetOwnProfile", ctx, userID)}
}

func (_c *MockProfileUsecase_GetOwnProfile_Call) Run(run func(ctx context.Context, userID uuid.UUID)) *MockProfileUsecase_GetOwnProfile_Call {
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

func (_c *MockProfileUsecase_GetOwnProfile_Call) Return(_a0 *entity.Profile, _a1 error) *MockProfileUsecase_GetOwnProfile_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProfileUsecase_GetOwnProfile_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.Profile, error)) *MockProfileUsecase_GetOwnProfile_Call {
	_c.Call.Return(run)
	return _c
}

// GetProfile provides a mock function with given fields: ctx, profileID
func (_m *MockProfileUsecase) GetProfile(ctx context.Context, profileID uuid.UUID) (*entity.Profile, error) {
	ret := _m.Called(ctx, profileID)

	if len(ret) == 0 {
		panic("no return value specified for GetProfile")
	}

	var r0 *entity.Profile
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.Profile, error)); ok {
		return rf(ctx, profileID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *entity.Profile); ok {
		r0 = rf(ctx, profileID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Profile)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, profileID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProfileUsecase_GetProfile_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetProfile'
type MockProfileUsecase_GetProfile_Call struct {
	*mock.Call
}

// GetProfile is a helper method to define mock.On call
//   - ctx context.Context
//   - profileID uuid.UUID
func (_e *MockProfileUsecase_Expecter) GetProfile(ctx interface{}, profileID interface{}) *MockProfileUsecase_GetProfile_Call {
	return &MockProfileUsecase_GetProfile_Call{Call: _e.mock.On("GetProfile", ctx, profileID)}
}

func (_c *MockProfileUsecase_GetProfile_Call) Run(run func(ctx context.Context, profileID uuid.UUID)) *MockProfileUsecase_GetProfile_Call {
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

func (_c *MockProfileUsecase_GetProfile_Call) Return(_a0 *entity.Profile, _a1 error) *MockProfileUsecase_GetProfile_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProfileUsecase_GetProfile_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.Profile, error)) *MockProfileUsecase_GetProfile_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateProfile provides a mock function with given fields: ctx, userID, input
func (_m *MockProfileUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	ret := _m.Called(ctx, userID, input)

	if len(ret) == 0 {
		panic("no return value specified for UpdateProfile")
	}

	var r0 *entity.Profile
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *usecase.UpdateProfileInput) (*entity.Profile, error)); ok {
		return rf(ctx, userID, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *usecase.UpdateProfileInput) *entity.Profile); ok {
		r0 = rf(ctx, userID, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Profile)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, *usecase.UpdateProfileInput) error); ok {
		r1 = rf(ctx, userID, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProfileUsecase_UpdateProfile_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateProfile'
type MockProfileUsecase_UpdateProfile_Call struct {
	*mock.Call
}

// UpdateProfile is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
//   - input *usecase.UpdateProfileInput
func (_e *MockProfileUsecase_Expecter) UpdateProfile(ctx interface{}, userID interface{}, input interface{}) *MockProfileUsecase_UpdateProfile_Call {
	return &MockProfileUsecase_UpdateProfile_Call{Call: _e.mock.On("UpdateProfile", ctx, userID, input)}
}

func (_c *MockProfileUsecase_UpdateProfile_Call) Run(run func(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput)) *MockProfileUsecase_UpdateProfile_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 uuid.UUID
		if args[1] != nil {
			arg1 = args[1].(uuid.UUID)
		}
		var arg2 *usecase.UpdateProfileInput
		if args[2] != nil {
			arg2 = args[2].(*usecase.UpdateProfileInput)
		}
		run(arg0, arg1, arg2)
	})
	return _c
}

func (_c *MockProfileUsecase_UpdateProfile_Call) Return(_a0 *entity.Profile, _a1 error) *MockProfileUsecase_UpdateProfile_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProfileUsecase_UpdateProfile_Call) RunAndReturn(run func(context.Context, uuid.UUID, *usecase.UpdateProfileInput) (*entity.Profile, error)) *MockProfileUsecase_UpdateProfile_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockProfileUsecase creates a new instance of MockProfileUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockProfileUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProfileUsecase {
	mock := &MockProfileUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
