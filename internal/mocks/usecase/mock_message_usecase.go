package mocks

import (
	"context"

	"quicksell/internal/domain/entity"
	"quicksell/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockMessageUsecase is a mock type for the MessageUsecase type
type MockMessageUsecase struct {
	mock.Mock
}

type MockMessageUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockMessageUsecase) EXPECT() *MockMessageUsecase_Expecter {
	return &MockMessageUsecase_Expecter{mock: &_m.Mock}
}

// SendMessage provides a mock function with given fields: ctx, userID, chatID, input
func (_m *MockMessageUsecase) SendMessage(ctx context.Context, userID uuid.UUID, chatID uuid.UUID, input *usecase.SendMessageInput) (*entity.Message, error) {
	ret := _m.Called(ctx, userID, chatID, input)

	if len(ret) == 0 {
		panic("no return value specified for SendMessage")
	}

	var r0 *entity.Message
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, *usecase.SendMessageInput) (*entity.Message, error)); ok {
		return rf(ctx, userID, chatID, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, *usecase.SendMessageInput) *entity.Message); ok {
		r0 = rf(ctx, userID, chatID, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Message)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID, *usecase.SendMessageInput) error); ok {
		r1 = rf(ctx, userID, chatID, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockMessageUsecase_SendMessage_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SendMessage'
type MockMessageUsecase_SendMessage_Call struct {
	*mock.Call
}

// SendMessage is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
//   - chatID uuid.UUID
//   - input *usecase.SendMessageInput
func (_e *MockMessageUsecase_Expecter) SendMessage(ctx interface{}, userID interface{}, chatID interface{}, input interface{}) *MockMessageUsecase_SendMessage_Call {
	return &MockMessageUsecase_SendMessage_Call{Call: _e.mock.On("SendMessage", ctx, userID, chatID, input)}
}

func (_c *MockMessageUsecase_SendMessage_Call) Run(run func(ctx context.Context, userID uuid.UUID, chatID uuid.UUID, input *usecase.SendMessageInput)) *MockMessageUsecase_SendMessage_Call {
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
		var arg3 *usecase.SendMessageInput
		if args[3] != nil {
			arg3 = args[3].(*usecase.SendMessageInput)
		}
		run(arg0, arg1, arg2, arg3)
	})
	return _c
}

func (_c *MockMessageUsecase_SendMessage_Call) Return(_a0 *entity.Message, _a1 error) *MockMessageUsecase_SendMessage_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockMessageUsecase_SendMessage_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID, *usecase.SendMessageInput) (*entity.Message, error)) *MockMessageUsecase_SendMessage_Call {
	_c.Call.Return(run)
	return _c
}

// ListMessages provides a mock function with given fields: ctx, userID, chatID, page
func (_m *MockMessageUsecase) ListMessages(ctx context.Context, userID uuid.UUID, chatID uuid.UUID, page *usecase.PageInput) ([]*entity.Message, error) {
	ret := _m.Called(ctx, userID, chatID, page)

	if len(ret) == 0 {
		panic("no return value specified for ListMessages")
	}

	var r0 []*entity.Message
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, *usecase.PageInput) ([]*entity.Message, error)); ok {
		return rf(ctx, userID, chatID, page)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, *usecase.PageInput) []*entity.Message); ok {
		r0 = rf(ctx, userID, chatID, page)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Message)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID, *usecase.PageInput) error); ok {
		r1 = rf(ctx, userID, chatID, page)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockMessageUsecase_ListMessages_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListMessages'
type MockMessageUsecase_ListMessages_Call struct {
	*mock.Call
}

// ListMessages is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
//   - chatID uuid.UUID
//   - page *usecase.PageInput
func (_e *MockMessageUsecase_Expecter) ListMessages(ctx interface{}, userID interface{}, chatID interface{}, page interface{}) *MockMessageUsecase_ListMessages_Call {
	return &MockMessageUsecase_ListMessages_Call{Call: _e.mock.On("ListMessages", ctx, userID, chatID, page)}
}

func (_c *MockMessageUsecase_ListMessages_Call) Run(run func(ctx context.Context, userID uuid.UUID, chatID uuid.UUID, page *usecase.PageInput)) *MockMessageUsecase_ListMessages_Call {
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
		var arg3 *usecase.PageInput
		if args[3] != nil {
			arg3 = args[3].(*usecase.PageInput)
		}
		run(arg0, arg1, arg2, arg3)
	})
	return _c
}

func (_c *MockMessageUsecase_ListMessages_Call) Return(_a0 []*entity.Message, _a1 error) *MockMessageUsecase_ListMessages_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockMessageUsecase_ListMessages_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID, *usecase.PageInput) ([]*entity.Message, error)) *MockMessageUsecase_ListMessages_Call {
	_c.Call.Return(run)
	return _c
}

// MarkRead provides a mock function with given fields: ctx, userID, chatID
func (_m *MockMessageUsecase) MarkRead(ctx context.Context, userID uuid.UUID, chatID uuid.UUID) (int64, error) {
	ret := _m.Called(ctx, userID, chatID)

	if len(ret) == 0 {
		panic("no return value specified for MarkRead")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) (int64, error)); ok {
		return rf(ctx, userID, chatID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) int64); ok {
		r0 = rf(ctx, userID, chatID)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r1 = rf(ctx, userID, chatID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockMessageUsecase_MarkRead_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'MarkRead'
type MockMessageUsecase_MarkRead_Call struct {
	*mock.Call
}

// MarkRead is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
//   - chatID uuid.UUID
func (_e *MockMessageUsecase_Expecter) MarkRead(ctx interface{}, userID interface{}, chatID interface{}) *MockMessageUsecase_MarkRead_Call {
	return &MockMessageUsecase_MarkRead_Call{Call: _e.mock.On("MarkRead", ctx, userID, chatID)}
}

func (_c *MockMessageUsecase_MarkRead_Call) Run(run func(ctx context.Context, userID uuid.UUID, chatID uuid.UUID)) *MockMessageUsecase_MarkRead_Call {
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

func (_c *MockMessageUsecase_MarkRead_Call) Return(_a0 int64, _a1 error) *MockMessageUsecase_MarkRead_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockMessageUsecase_MarkRead_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID) (int64, error)) *MockMessageUsecase_MarkRead_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockMessageUsecase creates a new instance of MockMessageUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockMessageUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMessageUsecase {
	mock := &MockMessageUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
