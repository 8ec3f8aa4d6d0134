package mocks

import (
	"quicksell/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockRepositoryFactory is a mock type for the RepositoryFactory type
type MockRepositoryFactory struct {
	mock.Mock
}

type MockRepositoryFactory_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRepositoryFactory) EXPECT() *MockRepositoryFactory_Expecter {
	return &MockRepositoryFactory_Expecter{mock: &_m.Mock}
}

// UserRepo provides a mock function with given fields:
func (_m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for UserRepo")
	}

	var r0 repository.UserRepository
	if rf, ok := ret.Get(0).(func() repository.UserRepository); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(repository.UserRepository)
		}
	}

	return r0
}

// MockRepositoryFactory_UserRepo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UserRepo'
type MockRepositoryFactory_UserRepo_Call struct {
	*mock.Call
}

// UserRepo is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) UserRepo() *MockRepositoryFactory_UserRepo_Call {
	return &MockRepositoryFactory_UserRepo_Call{Call: _e.mock.On("UserRepo")}
}

func (_c *MockRepositoryFactory_UserRepo_Call) Run(run func()) *MockRepositoryFactory_UserRepo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_UserRepo_Call) Return(_a0 repository.UserRepository) *MockRepositoryFactory_UserRepo_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_UserRepo_Call) RunAndReturn(run func() repository.UserRepository) *MockRepositoryFactory_UserRepo_Call {
	_c.Call.Return(run)
	return _c
}

// ProfileRepo provides a mock function with given fields:
func (_m *MockRepositoryFactory) ProfileRepo() repository.ProfileRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for ProfileRepo")
	}

	var r0 repository.ProfileRepository
	if rf, ok := ret.Get(0).(func() repository.ProfileRepository); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(repository.ProfileRepository)
		}
	}

	return r0
}

// MockRepositoryFactory_ProfileRepo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ProfileRepo'
type MockRepositoryFactory_ProfileRepo_Call struct {
	*mock.Call
}

// ProfileRepo is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) ProfileRepo() *MockRepositoryFactory_ProfileRepo_Call {
	return &MockRepositoryFactory_ProfileRepo_Call{Call: _e.mock.On("ProfileRepo")}
}

func (_c *MockRepositoryFactory_ProfileRepo_Call) Run(run func()) *MockRepositoryFactory_ProfileRepo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_ProfileRepo_Call) Return(_a0 repository.ProfileRepository) *MockRepositoryFactory_ProfileRepo_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_ProfileRepo_Call) RunAndReturn(run func() repository.ProfileRepository) *MockRepositoryFactory_ProfileRepo_Call {
	_c.Call.Return(run)
	return _c
}

// DeviceRepo provides a mock function with given fields:
func (_m *MockRepositoryFactory) DeviceRepo() repository.DeviceRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for DeviceRepo")
	}

	var r0 repository.DeviceRepository
	if rf, ok := ret.Get(0).(func() repository.DeviceRepository); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(repository.DeviceRepository)
		}
	}

	return r0
}

// MockRepositoryFactory_DeviceRepo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeviceRepo'
type MockRepositoryFactory_DeviceRepo_Call struct {
	*mock.Call
}

// DeviceRepo is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) DeviceRepo() *MockRepositoryFactory_DeviceRepo_Call {
	return &MockRepositoryFactory_DeviceRepo_Call{Call: _e.mock.On("DeviceRepo")}
}

func (_c *MockRepositoryFactory_DeviceRepo_Call) Run(run func()) *MockRepositoryFactory_DeviceRepo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_DeviceRepo_Call) Return(_a0 repository.DeviceRepository) *MockRepositoryFactory_DeviceRepo_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_DeviceRepo_Call) RunAndReturn(run func() repository.DeviceRepository) *MockRepositoryFactory_DeviceRepo_Call {
	_c.Call.Return(run)
	return _c
}

// LocationRepo provides a mock function with given fields:
func (_m *MockRepositoryFactory) LocationRepo() repository.LocationRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for LocationRepo")
	}

	var r0 repository.LocationRepository
	if rf, ok := ret.Get(0).(func() repository.LocationRepository); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(repository.LocationRepository)
		}
	}

	return r0
}

// MockRepositoryFactory_LocationRepo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'LocationRepo'
type MockRepositoryFactory_LocationRepo_Call struct {
	*mock.Call
}

// LocationRepo is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) LocationRepo() *MockRepositoryFactory_LocationRepo_Call {
	return &MockRepositoryFactory_LocationRepo_Call{Call: _e.mock.On("LocationRepo")}
}

func (_c *MockRepositoryFactory_LocationRepo_Call) Run(run func()) *MockRepositoryFactory_LocationRepo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_LocationRepo_Call) Return(_a0 repository.LocationRepository) *MockRepositoryFactory_LocationRepo_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_LocationRepo_Call) RunAndReturn(run func() repository.LocationRepository) *MockRepositoryFactory_LocationRepo_Call {
	_c.Call.Return(run)
	return _c
}

// CategoryRepo provides a mock function with given fields:
func (_m *MockRepositoryFactory) CategoryRepo() repository.CategoryRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for CategoryRepo")
	}

	var r0 repository.CategoryRepository
	if rf, ok := ret.Get(0).(func() repository.CategoryRepository); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(repository.CategoryRepository)
		}
	}

	return r0
}

// MockRepositoryFactory_CategoryRepo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CategoryRepo'
type MockRepositoryFactory_CategoryRepo_Call struct {
	*mock.Call
}

// CategoryRepo is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) CategoryRepo() *MockRepositoryFactory_CategoryRepo_Call {
	return &MockRepositoryFactory_CategoryRepo_Call{Call: _e.mock.On("CategoryRepo")}
}

func (_c *MockRepositoryFactory_CategoryRepo_Call) Run(run func()) *MockRepositoryFactory_CategoryRepo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_CategoryRepo_Call) Return(_a0 repository.CategoryRepository) *MockRepositoryFactory_CategoryRepo_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_CategoryRepo_Call) RunAndReturn(run func() repository.CategoryRepository) *MockRepositoryFactory_CategoryRepo_Call {
	_c.Call.Return(run)
	return _c
}

// ListingRepo provides a mock function with given fields:
func (_m *MockRepositoryFactory) ListingRepo() repository.ListingRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for ListingRepo")
	}

	var r0 repository.ListingRepository
	if rf, ok := ret.Get(0).(func() repository.ListingRepository); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(repository.ListingRepository)
		}
	}

	return r0
}

// MockRepositoryFactory_ListingRepo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListingRepo'
type MockRepositoryFactory_ListingRepo_Call struct {
	*mock.Call
}

// ListingRepo is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) ListingRepo() *MockRepositoryFactory_ListingRepo_Call {
	return &MockRepositoryFactory_ListingRepo_Call{Call: _e.mock.On("ListingRepo")}
}

func (_c *MockRepositoryFactory_ListingRepo_Call) Run(run func()) *MockRepositoryFactory_ListingRepo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_ListingRepo_Call) Return(_a0 repository.ListingRepository) *MockRepositoryFactory_ListingRepo_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_ListingRepo_Call) RunAndReturn(run func() repository.ListingRepository) *MockRepositoryFactory_ListingRepo_Call {
	_c.Call.Return(run)
	return _c
}

// ChatRepo provides a mock function with given fields:
func (_m *MockRepositoryFactory) ChatRepo() repository.ChatRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for ChatRepo")
	}

	var r0 repository.ChatRepository
	if rf, ok := ret.Get(0).(func() repository.ChatRepository); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(repository.ChatRepository)
		}
	}

	return r0
}

// MockRepositoryFactory_ChatRepo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ChatRepo'
type MockRepositoryFactory_ChatRepo_Call struct {
	*mock.Call
}

// ChatRepo is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) ChatRepo() *MockRepositoryFactory_ChatRepo_Call {
	return &MockRepositoryFactory_ChatRepo_Call{Call: _e.mock.On("ChatRepo")}
}

func (_c *MockRepositoryFactory_ChatRepo_Call) Run(run func()) *MockRepositoryFactory_ChatRepo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_ChatRepo_Call) Return(_a0 repository.ChatRepository) *MockRepositoryFactory_ChatRepo_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_ChatRepo_Call) RunAndReturn(run func() repository.ChatRepository) *MockRepositoryFactory_ChatRepo_Call {
	_c.Call.Return(run)
	return _c
}

// MessageRepo provides a mock function with given fields:
func (_m *MockRepositoryFactory) MessageRepo() repository.MessageRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for MessageRepo")
	}

	var r0 repository.MessageRepository
	if rf, ok := ret.Get(0).(func() repository.MessageRepository); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(repository.MessageRepository)
		}
	}

	return r0
}

// MockRepositoryFactory_MessageRepo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'MessageRepo'
type MockRepositoryFactory_MessageRepo_Call struct {
	*mock.Call
}

// MessageRepo is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) MessageRepo() *MockRepositoryFactory_MessageRepo_Call {
	return &MockRepositoryFactory_MessageRepo_Call{Call: _e.mock.On("MessageRepo")}
}

func (_c *MockRepositoryFactory_MessageRepo_Call) Run(run func()) *MockRepositoryFactory_MessageRepo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_MessageRepo_Call) Return(_a0 repository.MessageRepository) *MockRepositoryFactory_MessageRepo_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_MessageRepo_Call) RunAndReturn(run func() repository.MessageRepository) *MockRepositoryFactory_MessageRepo_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockRepositoryFactory creates a new instance of MockRepositoryFactory. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	mock := &MockRepositoryFactory{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
