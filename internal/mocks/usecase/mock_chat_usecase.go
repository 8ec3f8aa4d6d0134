package mocks

import (
	"context"

	"quicksell/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockChatUsecase is a mock type for the ChatUsecase type
type MockChatUsecase struct {
	mock.Mock
}

type MockChatUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockChatUsecase) EXPECT() *MockChatUsecase_Expecter {
	return &MockChatUsecase_Expecter{mock: &_m.Mock}
}

// CreateChat provides a mock function with given fields: ctx, userID, input
func (_m *MockChatUsecase) CreateChat(ctx context.Context, userID uuid.UUID, input *usecase.CreateChatInput) (*usecase.ChatOutput, error) {
	ret := _m.Called(ctx, userID, input)

	if len(ret) == 0 {
		panic("no return value specified for CreateChat")
	}

	var r0 *usecase.ChatOutput
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *usecase.CreateChatInput) (*usecase.ChatOutput, error)); ok {
		return rf(ctx, userID, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *usecase.CreateChatInput) *usecase.ChatOutput); ok {
		r0 = rf(ctx, userID, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*usecase.ChatOutput)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, *usecase.CreateChatInput) error); ok {
		r1 = rf(ctx, userID, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockChatUsecase_CreateChat_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateChat'
type MockChatUsecase_CreateChat_Call struct {
	*mock.Call
}

// CreateChat is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
//   - input *usecase.CreateChatInput
func (_e *MockChatUsecase_Expecter) CreateChat(ctx interface{}, userID interface{}, input interface{}) *MockChatUsecase_CreateChat_Call {
	return &MockChatUsecase_CreateChat_Call{Call: _e.mock.On("CreateChat", ctx, userID, input)}
}

func (_c *MockChatUsecase_CreateChat_Call) Run(run func(ctx context.Context, userID uuid.UUID, input *usecase.CreateChatInput)) *MockChatUsecase_CreateChat_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 uuid.UUID
		if args[1] != nil {
			arg1 = args[1].(uuid.UUID)
		}
		var arg2 *usecase.CreateChatInput
		if args[2] != nil {
			arg2 = args[2].(*usecase.CreateChatInput)
		}
		run(arg0, arg1, arg2)
	})
	return _c
}

func (_c *MockChatUsecase_CreateChat_Call) Return(_a0 *usecase.ChatOutput, _a1 error) *MockChatUsecase_CreateChat_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockChatUsecase_CreateChat_Call) RunAndReturn(run func(context.Context, uuid.UUID, *usecase.CreateChatInput) (*usecase.ChatOutput, error)) *MockChatUsecase_CreateChat_Call {
	_c.Call.Return(run)
	return _c
}

// GetChat provides a mock function with given fields: ctx, userID, chatID
func (_m *MockChatUsecase) GetChat(ctx context.Context, userID uuid.UUID, chatID uuid.UUID) (*usecase.ChatOutput, error) {
	ret := _m.Called(ctx, userID, chatID)

	if len(ret) == 0 {
		panic("no return value specified for GetChat")
	}

	var r0 *usecase.ChatOutput
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) (*usecase.ChatOutput, error)); ok {
		return rf(ctx, userID, chatID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) *usecase.ChatOutput); ok {
		r0 = rf(ctx, userID, chatID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*usecase.ChatOutput)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r1 = rf(ctx, userID, chatID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockChatUsecase_GetChat_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetChat'
type MockChatUsecase_GetChat_Call struct {
	*mock.Call
}

// GetChat is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
//   - chatID uuid.UUID
func (_e *MockChatUsecase_Expecter) GetChat(ctx interface{}, userID interface{}, chatID interface{}) *MockChatUsecase_GetChat_Call {
	return &MockChatUsecase_GetChat_Call{Call: _e.mock.On("GetChat", ctx, userID, chatID)}
}

func (_c *MockChatUsecase_GetChat_Call) Run(run func(ctx context.Context, userID uuid.UUID, chatID uuid.UUID)) *MockChatUsecase_GetChat_Call {
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

func (_c *MockChatUsecase_GetChat_Call) Return(_a0 *usecase.ChatOutput, _a1 error) *MockChatUsecase_GetChat_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockChatUsecase_GetChat_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID) (*usecase.ChatOutput, error)) *MockChatUsecase_GetChat_Call {
	_c.Call.Return(run)
	return _c
}

// ListChats provides a mock function with given fields: ctx, userID
func (_m *MockChatUsecase) ListChats(ctx context.Context, userID uuid.UUID) ([]*usecase.ChatOutput, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for ListChats")
	}

	var r0 []*usecase.ChatOutput
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) ([]*usecase.ChatOutput, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) []*usecase.ChatOutput); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*usecase.ChatOutput)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockChatUsecase_ListChats_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListChats'
type MockChatUsecase_ListChats_Call struct {
	*mock.Call
}

// ListChats is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
func (_e *MockChatUsecase_Expecter) ListChats(ctx interface{}, userID interface{}) *MockChatUsecase_ListChats_Call {
	return &MockChatUsecase_ListChats_Call{Call: _e.mock.On("ListChats", ctx, userID)}
}

func (_c *MockChatUsecase_ListChats_Call) Run(run func(ctx context.Context, userID uuid.UUID)) *MockChatUsecase_ListChats_Call {
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

func (_c *MockChatUsecase_ListChats_Call) Return(_a0 []*usecase.ChatOutput, _a1 error) *MockChatUsecase_ListChats_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockChatUsecase_ListChats_Call) RunAndReturn(run func(context.Context, uuid.UUID) ([]*usecase.ChatOutput, error)) *MockChatUsecase_ListChats_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockChatUsecase creates a new instance of MockChatUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockChatUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockChatUsecase {
	mock := &MockChatUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
