package mocks

import (
	"context"

	"quicksell/internal/domain/entity"
	"quicksell/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockListingUsecase is a mock type for the ListingUsecase type
type MockListingUsecase struct {
	mock.Mock
}

type MockListingUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockListingUsecase) EXPECT() *MockListingUsecase_Expecter {
	return &MockListingUsecase_Expecter{mock: &_m.Mock}
}

// CreateListing provides a mock function with given fields: ctx, userID, input
func (_m *MockListingUsecase) CreateListing(ctx context.Context, userID uuid.UUID, input *usecase.CreateListingInput) (*entity.Listing, error) {
	ret := _m.Called(ctx, userID, input)

	if len(ret) == 0 {
		panic("no return value specified for CreateListing")
	}

	var r0 *entity.Listing
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *usecase.CreateListingInput) (*entity.Listing, error)); ok {
		return rf(ctx, userID, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *usecase.CreateListingInput) *entity.Listing); ok {
		r0 = rf(ctx, userID, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Listing)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, *usecase.CreateListingInput) error); ok {
		r1 = rf(ctx, userID, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockListingUsecase_CreateListing_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateListing'
type MockListingUsecase_CreateListing_Call struct {
	*mock.Call
}

// CreateListing is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
//   - input *usecase.CreateListingInput
func (_e *MockListingUsecase_Expecter) CreateListing(ctx interface{}, userID interface{}, input interface{}) *MockListingUsecase_CreateListing_Call {
	return &MockListingUsecase_CreateListing_Call{Call: _e.mock.On("CreateListing", ctx, userID, input)}
}

func (_c *MockListingUsecase_CreateListing_Call) Run(run func(ctx context.Context, userID uuid.UUID, input *usecase.CreateListingInput)) *MockListingUsecase_CreateListing_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 uuid.UUID
		if args[1] != nil {
			arg1 = args[1].(uuid.UUID)
		}
		var arg2 *usecase.CreateListingInput
		if args[2] != nil {
			arg2 = args[2].(*usecase.CreateListingInput)
		}
		run(arg0, arg1, arg2)
	})
	return _c
}

func (_c *MockListingUsecase_CreateListing_Call) Return(_a0 *entity.Listing, _a1 error) *MockListingUsecase_CreateListing_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockListingUsecase_CreateListing_Call) RunAndReturn(run func(context.Context, uuid.UUID, *usecase.CreateListingInput) (*entity.Listing, error)) *MockListingUsecase_CreateListing_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateListing provides a mock function with given fields: ctx, userID, listingID, input
func (_m *MockListingUsecase) UpdateListing(ctx context.Context, userID uuid.UUID, listingID uuid.UUID, input *usecase.UpdateListingInput) (*entity.Listing, error) {
	ret := _m.Called(ctx, userID, listingID, input)

	if len(ret) == 0 {
		panic("no return value specified for UpdateListing")
	}

	var r0 *entity.Listing
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, *usecase.UpdateListingInput) (*entity.Listing, error)); ok {
		return rf(ctx, userID, listingID, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, *usecase.UpdateListingInput) *entity.Listing); ok {
		r0 = rf(ctx, userID, listingID, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Listing)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID, *usecase.UpdateListingInput) error); ok {
		r1 = rf(ctx, userID, listingID, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockListingUsecase_UpdateListing_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateListing'
type MockListingUsecase_UpdateListing_Call struct {
	*mock.Call
}

// UpdateListing is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
//   - listingID uuid.UUID
//   - input *usecase.UpdateListingInput
func (_e *MockListingUsecase_Expecter) UpdateListing(ctx interface{}, userID interface{}, listingID interface{}, input interface{}) *MockListingUsecase_UpdateListing_Call {
	return &MockListingUsecase_UpdateListing_Call{Call: _e.mock.On("UpdateListing", ctx, userID, listingID, input)}
}

func (_c *MockListingUsecase_UpdateListing_Call) Run(run func(ctx context.Context, userID uuid.UUID, listingID uuid.UUID, input *usecase.UpdateListingInput)) *MockListingUsecase_UpdateListing_Call {
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
		var arg3 *usecase.UpdateListingInput
		if args[3] != nil {
			arg3 = args[3].(*usecase.UpdateListingInput)
		}
		run(arg0, arg1, arg2, arg3)
	})
	return _c
}

func (_c *MockListingUsecase_UpdateListing_Call) Return(_a0 *entity.Listing, _a1 error) *MockListingUsecase_UpdateListing_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockListingUsecase_UpdateListing_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID, *usecase.UpdateListingInput) (*entity.Listing, error)) *MockListingUsecase_UpdateListing_Call {
	_c.Call.Return(run)
	return _c
}

// GetListing provides a mock function with given fields: ctx, listingID
func (_m *MockListingUsecase) GetListing(ctx context.Context, listingID uuid.UUID) (*entity.Listing, error) {
	ret := _m.Called(ctx, listingID)

	if len(ret) == 0 {
		panic("no return value specified for GetListing")
	}

	var r0 *entity.Listing
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.Listing, error)); ok {
		return rf(ctx, listingID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *entity.Listing); ok {
		r0 = rf(ctx, listingID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Listing)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, listingID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockListingUsecase_GetListing_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetListing'
type MockListingUsecase_GetListing_Call struct {
	*mock.Call
}

// GetListing is a helper method to define mock.On call
//   - ctx context.Context
//   - listingID uuid.UUID
func (_e *MockListingUsecase_Expecter) GetListing(ctx interface{}, listingID interface{}) *MockListingUsecase_GetListing_Call {
	return &MockListingUsecase_GetListing_Call{Call: _e.mock.On("GetListing", ctx, listingID)}
}

func (_c *MockListingUsecase_GetListing_Call) Run(run func(ctx context.Context, listingID uuid.UUID)) *MockListingUsecase_GetListing_Call {
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

func (_c *MockListingUsecase_GetListing_Call) Return(_a0 *entity.Listing, _a1 error) *MockListingUsecase_GetListing_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockListingUsecase_GetListing_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.Listing, error)) *MockListingUsecase_GetListing_Call {
	_c.Call.Return(run)
	return _c
}

// ListListings provides a mock function with given fields: ctx, input
func (_m *MockListingUsecase) ListListings(ctx context.Context, input *usecase.ListListingsInput) ([]*entity.Listing, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for ListListings")
	}

	var r0 []*entity.Listing
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.ListListingsInput) ([]*entity.Listing, error)); ok {
		return rf(ctx, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.ListListingsInput) []*entity.Listing); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Listing)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *usecase.ListListingsInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockListingUsecase_ListListings_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListListings'
type MockListingUsecase_ListListings_Call struct {
	*mock.Call
}

// ListListings is a helper method to define mock.On call
//   - ctx context.Context
//   - input *usecase.ListListingsInput
func (_e *MockListingUsecase_Expecter) ListListings(ctx interface{}, input interface{}) *MockListingUsecase_ListListings_Call {
	return &MockListingUsecase_ListListings_Call{Call: _e.mock.On("ListListings", ctx, input)}
}

func (_c *MockListingUsecase_ListListings_Call) Run(run func(ctx context.Context, input *usecase.ListListingsInput)) *MockListingUsecase_ListListings_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 *usecase.ListListingsInput
		if args[1] != nil {
			arg1 = args[1].(*usecase.ListListingsInput)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockListingUsecase_ListListings_Call) Return(_a0 []*entity.Listing, _a1 error) *MockListingUsecase_ListListings_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockListingUsecase_ListListings_Call) RunAndReturn(run func(context.Context, *usecase.ListListingsInput) ([]*entity.Listing, error)) *MockListingUsecase_ListListings_Call {
	_c.Call.Return(run)
	return _c
}

// ListingQRCode provides a mock function with given fields: ctx, listingID
func (_m *MockListingUsecase) ListingQRCode(ctx context.Context, listingID uuid.UUID) ([]byte, error) {
	ret := _m.Called(ctx, listingID)

	if len(ret) == 0 {
		panic("no return value specified for ListingQRCode")
	}

	var r0 []byte
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) ([]byte, error)); ok {
		return rf(ctx, listingID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) []byte); ok {
		r0 = rf(ctx, listingID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]byte)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, listingID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockListingUsecase_ListingQRCode_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListingQRCode'
type MockListingUsecase_ListingQRCode_Call struct {
	*mock.Call
}

// ListingQRCode is a helper method to define mock.On call
//   - ctx context.Context
//   - listingID uuid.UUID
func (_e *MockListingUsecase_Expecter) ListingQRCode(ctx interface{}, listingID interface{}) *MockListingUsecase_ListingQRCode_Call {
	return &MockListingUsecase_ListingQRCode_Call{Call: _e.mock.On("ListingQRCode", ctx, listingID)}
}

func (_c *MockListingUsecase_ListingQRCode_Call) Run(run func(ctx context.Context, listingID uuid.UUID)) *MockListingUsecase_ListingQRCode_Call {
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

func (_c *MockListingUsecase_ListingQRCode_Call) Return(_a0 []byte, _a1 error) *MockListingUsecase_ListingQRCode_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockListingUsecase_ListingQRCode_Call) RunAndReturn(run func(context.Context, uuid.UUID) ([]byte, error)) *MockListingUsecase_ListingQRCode_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockListingUsecase creates a new instance of MockListingUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockListingUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockListingUsecase {
	mock := &MockListingUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
