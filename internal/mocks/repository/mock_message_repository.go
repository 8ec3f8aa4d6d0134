package mocks

import (
	"context"

	"quicksell/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockMessageRepository is a mock type for the MessageRepository type
type MockMessageRepository struct {
	mock.Mock
}

type MockMessageRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockMessageRepository) EXPECT() *MockMessageRepository_Expecter {
	return &MockMessageRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, message
func (_m *MockMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	ret := _m.Called(ctx, message)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Message) error); ok {
		r0 = rf(ctx, message)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockMessageRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockMessageRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - message *entity.Message
func (_e *MockMessageRepository_Expecter) Create(ctx interface{}, message interface{}) *MockMessageRepository_Create_Call {
	return &MockMessageRepository_Create_Call{Call: _e.mock.On("Create", ctx, message)}
}

func (_c *MockMessageRepository_Create_Call) Run(run func(ctx context.Context, message *entity.Message)) *MockMessageRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 *entity.Message
		if args[1] != nil {
			arg1 = args[1].(*entity.Message)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockMessageRepository_Create_Call) Return(_a0 error) *MockMessageRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockMessageRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.Message) error) *MockMessageRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// FindLatestByChat provides a mock function with given fields: ctx, chatID
func (_m *MockMessageRepository) FindLatestByChat(ctx context.Context, chatID uuid.UUID) (*entity.Message, error) {
	ret := _m.Called(ctx, chatID)

	if len(ret) == 0 {
		panic("no return value specified for FindLatestByChat")
	}

	var r0 *entity.Message
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.Message, error)); ok {
		return rf(ctx, chatID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *entity.Message); ok {
		r0 = rf(ctx, chatID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Message)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, chatID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockMessageRepository_FindLatestByChat_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindLatestByChat'
type MockMessageRepository_FindLatestByChat_Call struct {
	*mock.Call
}

// FindLatestByChat is a helper method to define mock.On call
//   - ctx context.Context
//   - chatID uuid.UUID
func (_e *MockMessageRepository_Expecter) FindLatestByChat(ctx interface{}, chatID interface{}) *MockMessageRepository_FindLatestByChat_Call {
	return &MockMessageRepository_FindLatestByChat_Call{Call: _e.mock.On("FindLatestByChat", ctx, chatID)}
}

func (_c *MockMessageRepository_FindLatestByChat_Call) Run(run func(ctx context.Context, chatID uuid.UUID)) *MockMessageRepository_FindLatestByChat_Call {
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

func (_c *MockMessageRepository_FindLatestByChat_Call) Return(_a0 *entity.Message, _a1 error) *MockMessageRepository_FindLatestByChat_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockMessageRepository_FindLatestByChat_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.Message, error)) *MockMessageRepository_FindLatestByChat_Call {
	_c.Call.Return(run)
	return _c
}

// FindByChat provides a mock function with given fields: ctx, chatID, limit, offset
func (_m *MockMessageRepository) FindByChat(ctx context.Context, chatID uuid.UUID, limit int, offset int) ([]*entity.Message, error) {
	ret := _m.Called(ctx, chatID, limit, offset)

	if len(ret) == 0 {
		panic("no return value specified for FindByChat")
	}

	var r0 []*entity.Message
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, int, int) ([]*entity.Message, error)); ok {
		return rf(ctx, chatID, limit, offset)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, int, int) []*entity.Message); ok {
		r0 = rf(ctx, chatID, limit, offset)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Message)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, int, int) error); ok {
		r1 = rf(ctx, chatID, limit, offset)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockMessageRepository_FindByChat_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByChat'
type MockMessageRepository_FindByChat_Call struct {
	*mock.Call
}

// FindByChat is a helper method to define mock.On call
//   - ctx context.Context
//   - chatID uuid.UUID
//   - limit int
//   - offset int
func (_e *MockMessageRepository_Expecter) FindByChat(ctx interface{}, chatID interface{}, limit interface{}, offset interface{}) *MockMessageRepository_FindByChat_Call {
	return &MockMessageRepository_FindByChat_Call{Call: _e.mock.On("FindByChat", ctx, chatID, limit, offset)}
}

func (_c *MockMessageRepository_FindByChat_Call) Run(run func(ctx context.Context, chatID uuid.UUID, limit int, offset int)) *MockMessageRepository_FindByChat_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 uuid.UUID
		if args[1] != nil {
			arg1 = args[1].(uuid.UUID)
		}
		var arg2 int
		if args[2] != nil {
			arg2 = args[2].(int)
		}
		var arg3 int
		if args[3] != nil {
			arg3 = args[3].(int)
		}
		run(arg0, arg1, arg2, arg3)
	})
	return _c
}

func (_c *MockMessageRepository_FindByChat_Call) Return(_a0 []*entity.Message, _a1 error) *MockMessageRepository_FindByChat_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockMessageRepository_FindByChat_Call) RunAndReturn(run func(context.Context, uuid.UUID, int, int) ([]*entity.Message, error)) *MockMessageRepository_FindByChat_Call {
	_c.Call.Return(run)
	return _c
}

// MarkRead provides a mock function with given fields: ctx, chatID, readerID
func (_m *MockMessageRepository) MarkRead(ctx context.Context, chatID uuid.UUID, readerID uuid.UUID) (int64, error) {
	ret := _m.Called(ctx, chatID, readerID)

	if len(ret) == 0 {
		panic("no return value specified for MarkRead")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) (int64, error)); ok {
		return rf(ctx, chatID, readerID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) int64); ok {
		r0 = rf(ctx, chatID, readerID)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r1 = rf(ctx, chatID, readerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockMessageRepository_MarkRead_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'MarkRead'
type MockMessageRepository_MarkRead_Call struct {
	*mock.Call
}

// MarkRead is a helper method to define mock.On call
//   - ctx context.Context
//   - chatID uuid.UUID
//   - readerID uuid.UUID
func (_e *MockMessageRepository_Expecter) MarkRead(ctx interface{}, chatID interface{}, readerID interface{}) *MockMessageRepository_MarkRead_Call {
	return &MockMessageRepository_MarkRead_Call{Call: _e.mock.On("MarkRead", ctx, chatID, readerID)}
}

func (_c *MockMessageRepository_MarkRead_Call) Run(run func(ctx context.Context, chatID uuid.UUID, readerID uuid.UUID)) *MockMessageRepository_MarkRead_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 uuid.UUID
		if args[1] != nil {
			arg1 = args[1].(uuid.UUID)
		}
		var arg2 uuid.UUID
		if args[2] != nil {
			arg2 = args[2].(uuid.UUID)
		}
		run(arg0, arg1, arg2)
	})
	return _c
}

func (_c *MockMessageRepository_MarkRead_Call) Return(_a0 int64, _a1 error) *MockMessageRepository_MarkRead_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockMessageRepository_MarkRead_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID) (int64, error)) *MockMessageRepository_MarkRead_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockMessageRepository creates a new instance of MockMessageRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockMessageRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMessageRepository {
	mock := &MockMessageRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
