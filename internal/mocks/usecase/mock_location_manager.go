package mocks

import (
	"context"

	"quicksell/internal/domain/entity"
	"quicksell/internal/domain/repository"
	"quicksell/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockLocationManager is a mock type for the LocationManager type
type MockLocationManager struct {
	mock.Mock
}

type MockLocationManager_Expecter struct {
	mock *mock.Mock
}

func (_m *MockLocationManager) EXPECT() *MockLocationManager_Expecter {
	return &MockLocationManager_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, repo, input
func (_m *MockLocationManager) Create(ctx context.Context, repo repository.LocationRepository, input *usecase.LocationInput) (*entity.Location, error) {
	ret := _m.Called(ctx, repo, input)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 *entity.Location
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, repository.LocationRepository, *usecase.LocationInput) (*entity.Location, error)); ok {
		return rf(ctx, repo, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, repository.LocationRepository, *usecase.LocationInput) *entity.Location); ok {
		r0 = rf(ctx, repo, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Location)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, repository.LocationRepository, *usecase.LocationInput) error); ok {
		r1 = rf(ctx, repo, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockLocationManager_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockLocationManager_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - repo repository.LocationRepository
//   - input *usecase.LocationInput
func (_e *MockLocationManager_Expecter) Create(ctx interface{}, repo interface{}, input interface{}) *MockLocationManager_Create_Call {
	return &MockLocationManager_Create_Call{Call: _e.mock.On("Create", ctx, repo, input)}
}

func (_c *MockLocationManager_Create_Call) Run(run func(ctx context.Context, repo repository.LocationRepository, input *usecase.LocationInput)) *MockLocationManager_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 repository.LocationRepository
		if args[1] != nil {
			arg1 = args[1].(repository.LocationRepository)
		}
		var arg2 *usecase.LocationInput
		if args[2] != nil {
			arg2 = args[2].(*usecase.LocationInput)
		}
		run(arg0, arg1, arg2)
	})
	return _c
}

func (_c *MockLocationManager_Create_Call) Return(_a0 *entity.Location, _a1 error) *MockLocationManager_Create_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockLocationManager_Create_Call) RunAndReturn(run func(context.Context, repository.LocationRepository, *usecase.LocationInput) (*entity.Location, error)) *MockLocationManager_Create_Call {
	_c.Call.Return(run)
	return _c
}

// Update provides a mock function with given fields: ctx, repo, current, input
func (_m *MockLocationManager) Update(ctx context.Context, repo repository.LocationRepository, current *entity.Location, input *usecase.LocationInput) (*entity.Location, error) {
	ret := _m.Called(ctx, repo, current, input)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 *entity.Location
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, repository.LocationRepository, *entity.Location, *usecase.LocationInput) (*entity.Location, error)); ok {
		return rf(ctx, repo, current, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, repository.LocationRepository, *entity.Location, *usecase.LocationInput) *entity.Location); ok {
		r0 = rf(ctx, repo, current, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Location)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, repository.LocationRepository, *entity.Location, *usecase.LocationInput) error); ok {
		r1 = rf(ctx, repo, current, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockLocationManager_Update_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Update'
type MockLocationManager_Update_Call struct {
	*mock.Call
}

// Update is a helper method to define mock.On call
//   - ctx context.Context
//   - repo repository.LocationRepository
//   - current *entity.Location
//   - input *usecase.LocationInput
func (_e *MockLocationManager_Expecter) Update(ctx interface{}, repo interface{}, current interface{}, input interface{}) *MockLocationManager_Update_Call {
	return &MockLocationManager_Update_Call{Call: _e.mock.On("Update", ctx, repo, current, input)}
}

func (_c *MockLocationManager_Update_Call) Run(run func(ctx context.Context, repo repository.LocationRepository, current *entity.Location, input *usecase.LocationInput)) *MockLocationManager_Update_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 repository.LocationRepository
		if args[1] != nil {
			arg1 = args[1].(repository.LocationRepository)
		}
		var arg2 *entity.Location
		if args[2] != nil {
			arg2 = args[2].(*entity.Location)
		}
		var arg3 *usecase.LocationInput
		if args[3] != nil {
			arg3 = args[3].(*usecase.LocationInput)
		}
		run(arg0, arg1, arg2, arg3)
	})
	return _c
}

func (_c *MockLocationManager_Update_Call) Return(_a0 *entity.Location, _a1 error) *MockLocationManager_Update_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockLocationManager_Update_Call) RunAndReturn(run func(context.Context, repository.LocationRepository, *entity.Location, *usecase.LocationInput) (*entity.Location, error)) *MockLocationManager_Update_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockLocationManager creates a new instance of MockLocationManager. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockLocationManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLocationManager {
	mock := &MockLocationManager{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
