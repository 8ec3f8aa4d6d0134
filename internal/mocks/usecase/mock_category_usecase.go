package mocks

import (
	"context"

	"quicksell/internal/domain/entity"
	"quicksell/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockCategoryUsecase is a mock type for the CategoryUsecase type
type MockCategoryUsecase struct {
	mock.Mock
}

type MockCategoryUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCategoryUsecase) EXPECT() *MockCategoryUsecase_Expecter {
	return &MockCategoryUsecase_Expecter{mock: &_m.Mock}
}

// ResolveLeaf provides a mock function with given fields: ctx, repo, name
func (_m *MockCategoryUsecase) ResolveLeaf(ctx context.Context, repo repository.CategoryRepository, name string) (*entity.Category, error) {
	ret := _m.Called(ctx, repo, name)

	if len(ret) == 0 {
		panic("no return value specified for ResolveLeaf")
	}

	var r0 *entity.Category
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, repository.CategoryRepository, string) (*entity.Category, error)); ok {
		return rf(ctx, repo, name)
	}
	if rf, ok := ret.Get(0).(func(context.Context, repository.CategoryRepository, string) *entity.Category); ok {
		r0 = rf(ctx, repo, name)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Category)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, repository.CategoryRepository, string) error); ok {
		r1 = rf(ctx, repo, name)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCategoryUsecase_ResolveLeaf_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ResolveLeaf'
type MockCategoryUsecase_ResolveLeaf_Call struct {
	*mock.Call
}

// ResolveLeaf is a helper method to define mock.On call
//   - ctx context.Context
//   - repo repository.CategoryRepository
//   - name string
func (_e *MockCategoryUsecase_Expecter) ResolveLeaf(ctx interface{}, repo interface{}, name interface{}) *MockCategoryUsecase_ResolveLeaf_Call {
	return &MockCategoryUsecase_ResolveLeaf_Call{Call: _e.mock.On("ResolveLeaf", ctx, repo, name)}
}

func (_c *MockCategoryUsecase_ResolveLeaf_Call) Run(run func(ctx context.Context, repo repository.CategoryRepository, name string)) *MockCategoryUsecase_ResolveLeaf_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 repository.CategoryRepository
		if args[1] != nil {
			arg1 = args[1].(repository.CategoryRepository)
		}
		var arg2 string
		if args[2] != nil {
			arg2 = args[2].(string)
		}
		run(arg0, arg1, arg2)
	})
	return _c
}

func (_c *MockCategoryUsecase_ResolveLeaf_Call) Return(_a0 *entity.Category, _a1 error) *MockCategoryUsecase_ResolveLeaf_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCategoryUsecase_ResolveLeaf_Call) RunAndReturn(run func(context.Context, repository.CategoryRepository, string) (*entity.Category, error)) *MockCategoryUsecase_ResolveLeaf_Call {
	_c.Call.Return(run)
	return _c
}

// ListCategories provides a mock function with given fields: ctx
func (_m *MockCategoryUsecase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListCategories")
	}

	var r0 []*entity.Category
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]*entity.Category, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []*entity.Category); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Category)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCategoryUsecase_ListCategories_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListCategories'
type MockCategoryUsecase_ListCategories_Call struct {
	*mock.Call
}

// ListCategories is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockCategoryUsecase_Expecter) ListCategories(ctx interface{}) *MockCategoryUsecase_ListCategories_Call {
	return &MockCategoryUsecase_ListCategories_Call{Call: _e.mock.On("ListCategories", ctx)}
}

func (_c *MockCategoryUsecase_ListCategories_Call) Run(run func(ctx context.Context)) *MockCategoryUsecase_ListCategories_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		run(arg0)
	})
	return _c
}

func (_c *MockCategoryUsecase_ListCategories_Call) Return(_a0 []*entity.Category, _a1 error) *MockCategoryUsecase_ListCategories_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCategoryUsecase_ListCategories_Call) RunAndReturn(run func(context.Context) ([]*entity.Category, error)) *MockCategoryUsecase_ListCategories_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockCategoryUsecase creates a new instance of MockCategoryUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockCategoryUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCategoryUsecase {
	mock := &MockCategoryUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
