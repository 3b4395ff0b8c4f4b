// Package mocks provides testify mocks for the domain package.
package mocks

import (
	"github.com/mouse-blink/dirdoc/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockWorkflow is a testify mock of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

// NewMockWorkflow creates a MockWorkflow whose expectations are asserted when
// the test ends.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	wf := &MockWorkflow{}
	wf.Mock.Test(t)

	t.Cleanup(func() { wf.AssertExpectations(t) })

	return wf
}

func (_m *MockWorkflow) Generate(args domain.GenerateArgs) error {
	ret := _m.Called(args)
	return ret.Error(0)
}

func (_m *MockWorkflow) List(args domain.ListArgs) error {
	ret := _m.Called(args)
	return ret.Error(0)
}

func (_m *MockWorkflow) View(args domain.ViewArgs) error {
	ret := _m.Called(args)
	return ret.Error(0)
}
