// Package sparsemock has testify mocks of the sparse package interfaces.
package sparsemock

import (
	"github.com/stretchr/testify/mock"

	"github.com/slok/sparsetest/internal/sparse"
)

var _ sparse.File = &MockFile{}

// MockFile is a mock of sparse.File.
type MockFile struct {
	mock.Mock
}

func (m *MockFile) WriteAt(p []byte, off int64) (int, error) {
	args := m.Called(p, off)
	return args.Int(0), args.Error(1)
}

func (m *MockFile) Truncate(size int64) error {
	args := m.Called(size)
	return args.Error(0)
}

func (m *MockFile) Allocation() (sparse.Allocation, error) {
	args := m.Called()
	return args.Get(0).(sparse.Allocation), args.Error(1)
}

func (m *MockFile) Close() error {
	args := m.Called()
	return args.Error(0)
}
