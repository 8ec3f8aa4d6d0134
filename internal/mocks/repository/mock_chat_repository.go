package mocks

import (
	"context"

	"quicksell/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockChatRepository is a mock type for the ChatRepository type
type MockChatRepository struct {
	mock.Mock
}

type MockChatRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockChatRepository) EXPECT() *MockChatRepository_Expecter {
	return &MockChatRepository_Expecter{mock: &_m.Mock}
}

// FindOrCreate provides a mock function with given fields: ctx, creatorID, interlocutorID, listingID
func (_m *MockChatRepository) FindOrCreate(ctx context.Context, creatorID uuid.UUID, interlocutorID uuid.UUID, listingID uuid.UUID) (*entity.Chat, bool, error) {
	ret := _m.Called(ctx, creatorID, interlocutorID, listingID)

	if len(ret) == 0 {
		panic("no return value specified for FindOrCreate")
	}

	var r0 *entity.Chat
	var r1 bool
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, uuid.UUID) (*entity.Chat, bool, error)); ok {
		return rf(ctx, creatorID, interlocutorID, listingID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, uuid.UUID) *entity.Chat); ok {
		r0 = rf(ctx, creatorID, interlocutorID, listingID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Chat)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID, uuid.UUID) bool); ok {
		r1 = rf(ctx, creatorID, interlocutorID, listingID)
	} else {
		r1 = ret.Get(1).(bool)
	}

	if rf, ok := ret.Get(2).(func(context.Context, uuid.UUID, uuid.UUID, uuid.UUID) error); ok {
		r2 = rf(ctx, creatorID, interlocutorID, listingID)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// MockChatRepository_FindOrCreate_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindOrCreate'
type MockChatRepository_FindOrCreate_Call struct {
	*mock.Call
}

// FindOrCreate is a helper method to define mock.On call
//   - ctx context.Context
//   - creatorID uuid.UUID
//   - interlocutorID uuid.UUID
//   - listingID uuid.UUID
func (_e *MockChatRepository_Expecter) FindOrCreate(ctx interface{}, creatorID interface{}, interlocutorID interface{}, listingID interface{}) *MockChatRepository_FindOrCreate_Call {
	return &MockChatRepository_FindOrCreate_Call{Call: _e.mock.On("FindOrCreate", ctx, creatorID, interlocutorID, listingID)}
}

func (_c *MockChatRepository_FindOrCreate_Call) Run(run func(ctx context.Context, creatorID uuid.UUID, interlocutorID uuid.UUID, listingID uuid.UUID)) *MockChatRepository_FindOrCreate_Call {
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
		var arg3 uuid.UUID
		if args[3] != nil {
			arg3 = args[3].(uuid.UUID)
		}
		run(arg0, arg1, arg2, arg3)
	})
	return _c
}

func (_c *MockChatRepository_FindOrCreate_Call) Return(_a0 *entity.Chat, _a1 bool, _a2 error) *MockChatRepository_FindOrCreate_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *MockChatRepository_FindOrCreate_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID, uuid.UUID) (*entity.Chat, bool, error)) *MockChatRepository_FindOrCreate_Call {
	_c.Call.Return(run)
	return _c
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockChatRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Chat, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	var r0 *entity.Chat
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.Chat, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *entity.Chat); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Chat)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockChatRepository_FindByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByID'
type MockChatRepository_FindByID_Call struct {
	*mock.Call
}

// FindByID is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockChatRepository_Expecter) FindByID(ctx interface{}, id interface{}) *MockChatRepository_FindByID_Call {
	return &MockChatRepository_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id)}
}

func (_c *MockChatRepository_FindByID_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockChatRepository_FindByID_Call {
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

func (_c *MockChatRepository_FindByID_Call) Return(_a0 *entity.Chat, _a1 error) *MockChatRepository_FindByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockChatRepository_FindByID_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.Chat, error)) *MockChatRepository_FindByID_Call {
	_c.Call.Return(run)
	return _c
}

// FindByParticipant provides a mock function with given fields: ctx, userID
func (_m *MockChatRepository) FindByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.Chat, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for FindByParticipant")
	}

	var r0 []*entity.Chat
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) ([]*entity.Chat, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) []*entity.Chat); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Chat)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockChatRepository_FindByParticipant_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByParticipant'
type MockChatRepository_FindByParticipant_Call struct {
	*mock.Call
}

// FindByParticipant is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
func (_e *MockChatRepository_Expecter) FindByParticipant(ctx interface{}, userID interface{}) *MockChatRepository_FindByParticipant_Call {
	return &MockChatRepository_FindByParticipant_Call{Call: _e.mock.On("FindByParticipant", ctx, userID)}
}

func (_c *MockChatRepository_FindByParticipant_Call) Run(run func(ctx context.Context, userID uuid.UUID)) *MockChatRepository_FindByParticipant_Call {
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

func (_c *MockChatRepository_FindByParticipant_Call) Return(_a0 []*entity.Chat, _a1 error) *MockChatRepository_FindByParticipant_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockChatRepository_FindByParticipant_Call) RunAndReturn(run func(context.Context, uuid.UUID) ([]*entity.Chat, error)) *MockChatRepository_FindByParticipant_Call {
	_c.Call.Return(run)
	return _c
}

// Update provides a mock function with given fields: ctx, chat
func (_m *MockChatRepository) Update(ctx context.Context, chat *entity.Chat) error {
	ret := _m.Called(ctx, chat)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Chat) error); ok {
		r0 = rf(ctx, chat)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockChatRepository_Update_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Update'
type MockChatRepository_Update_Call struct {
	*mock.Call
}

// Update is a helper method to define mock.On call
//   - ctx context.Context
//   - chat *entity.Chat
func (_e *MockChatRepository_Expecter) Update(ctx interface{}, chat interface{}) *MockChatRepository_Update_Call {
	return &MockChatRepository_Update_Call{Call: _e.mock.On("Update", ctx, chat)}
}

func (_c *MockChatRepository_Update_Call) Run(run func(ctx context.Context, chat *entity.Chat)) *MockChatRepository_Update_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 *entity.Chat
		if args[1] != nil {
			arg1 = args[1].(*entity.Chat)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockChatRepository_Update_Call) Return(_a0 error) *MockChatRepository_Update_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockChatRepository_Update_Call) RunAndReturn(run func(context.Context, *entity.Chat) error) *MockChatRepository_Update_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockChatRepository creates a new instance of MockChatRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockChatRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockChatRepository {
	mock := &MockChatRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
