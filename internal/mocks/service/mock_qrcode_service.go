package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockQRCodeService is a mock type for the QRCodeService type
type MockQRCodeService struct {
	mock.Mock
}

type MockQRCodeService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockQRCodeService) EXPECT() *MockQRCodeService_Expecter {
	return &MockQRCodeService_Expecter{mock: &_m.Mock}
}

// GenerateListingQR provides a mock function with given fields: link
func (_m *MockQRCodeService) GenerateListingQR(link string) ([]byte, error) {
	ret := _m.Called(link)

	if len(ret) == 0 {
		panic("no return value specified for GenerateListingQR")
	}

	var r0 []byte
	var r1 error
	if rf, ok := ret.Get(0).(func(string) ([]byte, error)); ok {
		return rf(link)
	}
	if rf, ok := ret.Get(0).(func(string) []byte); ok {
		r0 = rf(link)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]byte)
		}
	}

	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(link)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockQRCodeService_GenerateListingQR_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GenerateListingQR'
type MockQRCodeService_GenerateListingQR_Call struct {
	*mock.Call
}

// GenerateListingQR is a helper method to define mock.On call
//   - link string
func (_e *MockQRCodeService_Expecter) GenerateListingQR(link interface{}) *MockQRCodeService_GenerateListingQR_Call {
	return &MockQRCodeService_GenerateListingQR_Call{Call: _e.mock.On("GenerateListingQR", link)}
}

func (_c *MockQRCodeService_GenerateListingQR_Call) Run(run func(link string)) *MockQRCodeService_GenerateListingQR_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 string
		if args[0] != nil {
			arg0 = args[0].(string)
		}
		run(arg0)
	})
	return _c
}

func (_c *MockQRCodeService_GenerateListingQR_Call) Return(_a0 []byte, _a1 error) *MockQRCodeService_GenerateListingQR_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockQRCodeService_GenerateListingQR_Call) RunAndReturn(run func(string) ([]byte, error)) *MockQRCodeService_GenerateListingQR_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockQRCodeService creates a new instance of MockQRCodeService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockQRCodeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQRCodeService {
	mock := &MockQRCodeService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
