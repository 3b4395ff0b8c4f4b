// Package mocks provides testify mocks for the controller package.
package mocks

import (
	"context"

	m "github.com/mouse-blink/dirdoc/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockUI is a testify mock of controller.UI.
type MockUI struct {
	mock.Mock
}

// NewMockUI creates a MockUI whose expectations are asserted when the test ends.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mockUI := &MockUI{}
	mockUI.Mock.Test(t)

	t.Cleanup(func() { mockUI.AssertExpectations(t) })

	return mockUI
}

func (_m *MockUI) Start(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

func (_m *MockUI) Wait() {
	_m.Called()
}

func (_m *MockUI) DisplayScan(total int) {
	_m.Called(total)
}

func (_m *MockUI) DisplayNoFiles() {
	_m.Called()
}

func (_m *MockUI) DisplayProcessing(done, total int, rel string) {
	_m.Called(done, total, rel)
}

func (_m *MockUI) DisplayWriting(output m.Path) {
	_m.Called(output)
}

func (_m *MockUI) DisplaySummary(summary m.Summary) {
	_m.Called(summary)
}

func (_m *MockUI) DisplayCandidates(entries []m.FileEntry) error {
	ret := _m.Called(entries)
	return ret.Error(0)
}

func (_m *MockUI) DisplayDocument(doc m.Document) error {
	ret := _m.Called(doc)
	return ret.Error(0)
}
