package mocks

import (
	"context"

	"quicksell/internal/domain/entity"
	"quicksell/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockListingRepository is a mock type for the ListingRepository type
type MockListingRepository struct {
	mock.Mock
}

type MockListingRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockListingRepository) EXPECT() *MockListingRepository_Expecter {
	return &MockListingRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, listing
func (_m *MockListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	ret := _m.Called(ctx, listing)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Listing) error); ok {
		r0 = rf(ctx, listing)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockListingRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockListingRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - listing *entity.Listing
func (_e *MockListingRepository_Expecter) Create(ctx interface{}, listing interface{}) *MockListingRepository_Create_Call {
	return &MockListingRepository_Create_Call{Call: _e.mock.On("Create", ctx, listing)}
}

func (_c *MockListingRepository_Create_Call) Run(run func(ctx context.Context, listing *entity.Listing)) *MockListingRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 *entity.Listing
		if args[1] != nil {
			arg1 = args[1].(*entity.Listing)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockListingRepository_Create_Call) Return(_a0 error) *MockListingRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockListingRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.Listing) error) *MockListingRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockListingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	var r0 *entity.Listing
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.Listing, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *entity.Listing); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Listing)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockListingRepository_FindByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByID'
type MockListingRepository_FindByID_Call struct {
	*mock.Call
}

// FindByID is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockListingRepository_Expecter) FindByID(ctx interface{}, id interface{}) *MockListingRepository_FindByID_Call {
	return &MockListingRepository_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id)}
}

func (_c *MockListingRepository_FindByID_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockListingRepository_FindByID_Call {
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

func (_c *MockListingRepository_FindByID_Call) Return(_a0 *entity.Listing, _a1 error) *MockListingRepository_FindByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockListingRepository_FindByID_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.Listing, error)) *MockListingRepository_FindByID_Call {
	_c.Call.Return(run)
	return _c
}

// Find provides a mock function with given fields: ctx, filter
func (_m *MockListingRepository) Find(ctx context.Context, filter repository.ListingFilter) ([]*entity.Listing, error) {
	ret := _m.Called(ctx, filter)

	if len(ret) == 0 {
		panic("no return value specified for Find")
	}

	var r0 []*entity.Listing
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, repository.ListingFilter) ([]*entity.Listing, error)); ok {
		return rf(ctx, filter)
	}
	if rf, ok := ret.Get(0).(func(context.Context, repository.ListingFilter) []*entity.Listing); ok {
		r0 = rf(ctx, filter)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Listing)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, repository.ListingFilter) error); ok {
		r1 = rf(ctx, filter)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockListingRepository_Find_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Find'
type MockListingRepository_Find_Call struct {
	*mock.Call
}

// Find is a helper method to define mock.On call
//   - ctx context.Context
//   - filter repository.ListingFilter
func (_e *MockListingRepository_Expecter) Find(ctx interface{}, filter interface{}) *MockListingRepository_Find_Call {
	return &MockListingRepository_Find_Call{Call: _e.mock.On("Find", ctx, filter)}
}

func (_c *MockListingRepository_Find_Call) Run(run func(ctx context.Context, filter repository.ListingFilter)) *MockListingRepository_Find_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 repository.ListingFilter
		if args[1] != nil {
			arg1 = args[1].(repository.ListingFilter)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockListingRepository_Find_Call) Return(_a0 []*entity.Listing, _a1 error) *MockListingRepository_Find_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockListingRepository_Find_Call) RunAndReturn(run func(context.Context, repository.ListingFilter) ([]*entity.Listing, error)) *MockListingRepository_Find_Call {
	_c.Call.Return(run)
	return _c
}

// Update provides a mock function with given fields: ctx, listing
func (_m *MockListingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	ret := _m.Called(ctx, listing)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Listing) error); ok {
		r0 = rf(ctx, listing)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockListingRepository_Update_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Update'
type MockListingRepository_Update_Call struct {
	*mock.Call
}

// Update is a helper method to define mock.On call
//   - ctx context.Context
//   - listing *entity.Listing
func (_e *MockListingRepository_Expecter) Update(ctx interface{}, listing interface{}) *MockListingRepository_Update_Call {
	return &MockListingRepository_Update_Call{Call: _e.mock.On("Update", ctx, listing)}
}

func (_c *MockListingRepository_Update_Call) Run(run func(ctx context.Context, listing *entity.Listing)) *MockListingRepository_Update_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 *entity.Listing
		if args[1] != nil {
			arg1 = args[1].(*entity.Listing)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockListingRepository_Update_Call) Return(_a0 error) *MockListingRepository_Update_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockListingRepository_Update_Call) RunAndReturn(run func(context.Context, *entity.Listing) error) *MockListingRepository_Update_Call {
	_c.Call.Return(run)
	return _c
}

// IncrementViews provides a mock function with given fields: ctx, id
func (_m *MockListingRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for IncrementViews")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockListingRepository_IncrementViews_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'IncrementViews'
type MockListingRepository_IncrementViews_Call struct {
	*mock.Call
}

// IncrementViews is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockListingRepository_Expecter) IncrementViews(ctx interface{}, id interface{}) *MockListingRepository_IncrementViews_Call {
	return &MockListingRepository_IncrementViews_Call{Call: _e.mock.On("IncrementViews", ctx, id)}
}

func (_c *MockListingRepository_IncrementViews_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockListingRepository_IncrementViews_Call {
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

func (_c *MockListingRepository_IncrementViews_Call) Return(_a0 error) *MockListingRepository_IncrementViews_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockListingRepository_IncrementViews_Call) RunAndReturn(run func(context.Context, uuid.UUID) error) *MockListingRepository_IncrementViews_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockListingRepository creates a new instance of MockListingRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockListingRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockListingRepository {
	mock := &MockListingRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
