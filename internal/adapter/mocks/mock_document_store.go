// Package mocks provides testify mocks for the adapter package.
package mocks

import (
	m "github.com/mouse-blink/dirdoc/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockDocumentStore is a testify mock of adapter.DocumentStore.
type MockDocumentStore struct {
	mock.Mock
}

// NewMockDocumentStore creates a MockDocumentStore whose expectations are
// asserted when the test ends.
func NewMockDocumentStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDocumentStore {
	store := &MockDocumentStore{}
	store.Mock.Test(t)

	t.Cleanup(func() { store.AssertExpectations(t) })

	return store
}

func (_m *MockDocumentStore) Save(path m.Path, doc m.Document) error {
	ret := _m.Called(path, doc)
	return ret.Error(0)
}

func (_m *MockDocumentStore) Load(path m.Path) (m.Document, error) {
	ret := _m.Called(path)

	var doc m.Document
	if fn, ok := ret.Get(0).(func(m.Path) m.Document); ok {
		doc = fn(path)
	} else if ret.Get(0) != nil {
		doc = ret.Get(0).(m.Document)
	}

	return doc, ret.Error(1)
}
