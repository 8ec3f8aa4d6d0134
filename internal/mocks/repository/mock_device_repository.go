package mocks

import (
	"context"

	"quicksell/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockDeviceRepository is a mock type for the DeviceRepository type
type MockDeviceRepository struct {
	mock.Mock
}

type MockDeviceRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockDeviceRepository) EXPECT() *MockDeviceRepository_Expecter {
	return &MockDeviceRepository_Expecter{mock: &_m.Mock}
}

// FindOrCreateByFCMID provides a mock function with given fields: ctx, fcmID
func (_m *MockDeviceRepository) FindOrCreateByFCMID(ctx context.Context, fcmID string) (*entity.Device, bool, error) {
	ret := _m.Called(ctx, fcmID)

	if len(ret) == 0 {
		panic("no return value specified for FindOrCreateByFCMID")
	}

	var r0 *entity.Device
	var r1 bool
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.Device, bool, error)); ok {
		return rf(ctx, fcmID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.Device); ok {
		r0 = rf(ctx, fcmID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Device)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) bool); ok {
		r1 = rf(ctx, fcmID)
	} else {
		r1 = ret.Get(1).(bool)
	}

	if rf, ok := ret.Get(2).(func(context.Context, string) error); ok {
		r2 = rf(ctx, fcmID)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// MockDeviceRepository_FindOrCreateByFCMID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindOrCreateByFCMID'
type MockDeviceRepository_FindOrCreateByFCMID_Call struct {
	*mock.Call
}

// FindOrCreateByFCMID is a helper method to define mock.On call
//   - ctx context.Context
//   - fcmID string
func (_e *MockDeviceRepository_Expecter) FindOrCreateByFCMID(ctx interface{}, fcmID interface{}) *MockDeviceRepository_FindOrCreateByFCMID_Call {
	return &MockDeviceRepository_FindOrCreateByFCMID_Call{Call: _e.mock.On("FindOrCreateByFCMID", ctx, fcmID)}
}

func (_c *MockDeviceRepository_FindOrCreateByFCMID_Call) Run(run func(ctx context.Context, fcmID string)) *MockDeviceRepository_FindOrCreateByFCMID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 string
		if args[1] != nil {
			arg1 = args[1].(string)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockDeviceRepository_FindOrCreateByFCMID_Call) Return(_a0 *entity.Device, _a1 bool, _a2 error) *MockDeviceRepository_FindOrCreateByFCMID_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *MockDeviceRepository_FindOrCreateByFCMID_Call) RunAndReturn(run func(context.Context, string) (*entity.Device, bool, error)) *MockDeviceRepository_FindOrCreateByFCMID_Call {
	_c.Call.Return(run)
	return _c
}

// FindActiveByOwner provides a mock function with given fields: ctx, ownerID
func (_m *MockDeviceRepository) FindActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Device, error) {
	ret := _m.Called(ctx, ownerID)

	if len(ret) == 0 {
		panic("no return value specified for FindActiveByOwner")
	}

	var r0 []*entity.Device
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) ([]*entity.Device, error)); ok {
		return rf(ctx, ownerID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) []*entity.Device); ok {
		r0 = rf(ctx, ownerID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Device)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, ownerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockDeviceRepository_FindActiveByOwner_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindActiveByOwner'
type MockDeviceRepository_FindActiveByOwner_Call struct {
	*mock.Call
}

// FindActiveByOwner is a helper method to define mock.On call
//   - ctx context.Context
//   - ownerID uuid.UUID
func (_e *MockDeviceRepository_Expecter) FindActiveByOwner(ctx interface{}, ownerID interface{}) *MockDeviceRepository_FindActiveByOwner_Call {
	return &MockDeviceRepository_FindActiveByOwner_Call{Call: _e.mock.On("FindActiveByOwner", ctx, ownerID)}
}

func (_c *MockDeviceRepository_FindActiveByOwner_Call) Run(run func(ctx context.Context, ownerID uuid.UUID)) *MockDeviceRepository_FindActiveByOwner_Call {
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

func (_c *MockDeviceRepository_FindActiveByOwner_Call) Return(_a0 []*entity.Device, _a1 error) *MockDeviceRepository_FindActiveByOwner_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockDeviceRepository_FindActiveByOwner_Call) RunAndReturn(run func(context.Context, uuid.UUID) ([]*entity.Device, error)) *MockDeviceRepository_FindActiveByOwner_Call {
	_c.Call.Return(run)
	return _c
}

// Update provides a mock function with given fields: ctx, device
func (_m *MockDeviceRepository) Update(ctx context.Context, device *entity.Device) error {
	ret := _m.Called(ctx, device)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Device) error); ok {
		r0 = rf(ctx, device)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockDeviceRepository_Update_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Update'
type MockDeviceRepository_Update_Call struct {
	*mock.Call
}

// Update is a helper method to define mock.On call
//   - ctx context.Context
//   - device *entity.Device
func (_e *MockDeviceRepository_Expecter) Update(ctx interface{}, device interface{}) *MockDeviceRepository_Update_Call {
	return &MockDeviceRepository_Update_Call{Call: _e.mock.On("Update", ctx, device)}
}

func (_c *MockDeviceRepository_Update_Call) Run(run func(ctx context.Context, device *entity.Device)) *MockDeviceRepository_Update_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 *entity.Device
		if args[1] != nil {
			arg1 = args[1].(*entity.Device)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockDeviceRepository_Update_Call) Return(_a0 error) *MockDeviceRepository_Update_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockDeviceRepository_Update_Call) RunAndReturn(run func(context.Context, *entity.Device) error) *MockDeviceRepository_Update_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockDeviceRepository creates a new instance of MockDeviceRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockDeviceRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDeviceRepository {
	mock := &MockDeviceRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
