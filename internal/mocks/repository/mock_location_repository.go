package mocks

import (
	"context"

	"quicksell/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/mock"
)

// MockLocationRepository is a mock type for the LocationRepository type
type MockLocationRepository struct {
	mock.Mock
}

type MockLocationRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockLocationRepository) EXPECT() *MockLocationRepository_Expecter {
	return &MockLocationRepository_Expecter{mock: &_m.Mock}
}

// FindOrCreateByCoordinates provides a mock function with given fields: ctx, coordinates
func (_m *MockLocationRepository) FindOrCreateByCoordinates(ctx context.Context, coordinates orb.Point) (*entity.Location, bool, error) {
	ret := _m.Called(ctx, coordinates)

	if len(ret) == 0 {
		panic("no return value specified for FindOrCreateByCoordinates")
	}

	var r0 *entity.Location
	var r1 bool
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, orb.Point) (*entity.Location, bool, error)); ok {
		return rf(ctx, coordinates)
	}
	if rf, ok := ret.Get(0).(func(context.Context, orb.Point) *entity.Location); ok {
		r0 = rf(ctx, coordinates)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Location)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, orb.Point) bool); ok {
		r1 = rf(ctx, coordinates)
	} else {
		r1 = ret.Get(1).(bool)
	}

	if rf, ok := ret.Get(2).(func(context.Context, orb.Point) error); ok {
		r2 = rf(ctx, coordinates)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// MockLocationRepository_FindOrCreateByCoordinates_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindOrCreateByCoordinates'
type MockLocationRepository_FindOrCreateByCoordinates_Call struct {
	*mock.Call
}

// FindOrCreateByCoordinates is a helper method to define mock.On call
//   - ctx context.Context
//   - coordinates orb.Point
func (_e *MockLocationRepository_Expecter) FindOrCreateByCoordinates(ctx interface{}, coordinates interface{}) *MockLocationRepository_FindOrCreateByCoordinates_Call {
	return &MockLocationRepository_FindOrCreateByCoordinates_Call{Call: _e.mock.On("FindOrCreateByCoordinates", ctx, coordinates)}
}

func (_c *MockLocationRepository_FindOrCreateByCoordinates_Call) Run(run func(ctx context.Context, coordinates orb.Point)) *MockLocationRepository_FindOrCreateByCoordinates_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 orb.Point
		if args[1] != nil {
			arg1 = args[1].(orb.Point)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockLocationRepository_FindOrCreateByCoordinates_Call) Return(_a0 *entity.Location, _a1 bool, _a2 error) *MockLocationRepository_FindOrCreateByCoordinates_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *MockLocationRepository_FindOrCreateByCoordinates_Call) RunAndReturn(run func(context.Context, orb.Point) (*entity.Location, bool, error)) *MockLocationRepository_FindOrCreateByCoordinates_Call {
	_c.Call.Return(run)
	return _c
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockLocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	var r0 *entity.Location
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.Location, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *entity.Location); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Location)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockLocationRepository_FindByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByID'
type MockLocationRepository_FindByID_Call struct {
	*mock.Call
}

// FindByID is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockLocationRepository_Expecter) FindByID(ctx interface{}, id interface{}) *MockLocationRepository_FindByID_Call {
	return &MockLocationRepository_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id)}
}

func (_c *MockLocationRepository_FindByID_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockLocationRepository_FindByID_Call {
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

func (_c *MockLocationRepository_FindByID_Call) Return(_a0 *entity.Location, _a1 error) *MockLocationRepository_FindByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockLocationRepository_FindByID_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.Location, error)) *MockLocationRepository_FindByID_Call {
	_c.Call.Return(run)
	return _c
}

// Update provides a mock function with given fields: ctx, location
func (_m *MockLocationRepository) Update(ctx context.Context, location *entity.Location) error {
	ret := _m.Called(ctx, location)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Location) error); ok {
		r0 = rf(ctx, location)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockLocationRepository_Update_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Update'
type MockLocationRepository_Update_Call struct {
	*mock.Call
}

// Update is a helper method to define mock.On call
//   - ctx context.Context
//   - location *entity.Location
func (_e *MockLocationRepository_Expecter) Update(ctx interface{}, location interface{}) *MockLocationRepository_Update_Call {
	return &MockLocationRepository_Update_Call{Call: _e.mock.On("Update", ctx, location)}
}

func (_c *MockLocationRepository_Update_Call) Run(run func(ctx context.Context, location *entity.Location)) *MockLocationRepository_Update_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 *entity.Location
		if args[1] != nil {
			arg1 = args[1].(*entity.Location)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockLocationRepository_Update_Call) Return(_a0 error) *MockLocationRepository_Update_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockLocationRepository_Update_Call) RunAndReturn(run func(context.Context, *entity.Location) error) *MockLocationRepository_Update_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockLocationRepository creates a new instance of MockLocationRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockLocationRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLocationRepository {
	mock := &MockLocationRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
