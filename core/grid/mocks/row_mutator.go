package mocks

import (
	"movie-grid/core/grid"
	"movie-grid/core/reconcile"

	"github.com/stretchr/testify/mock"
)

// RowMutator is a mock implementation of grid.RowMutator.
// Successful calls complete their animation immediately.
type RowMutator struct {
	mock.Mock
}

func (m *RowMutator) CreateCell(column int, item reconcile.Item, done grid.DoneFunc) error {
	args := m.Called(column, item)
	return complete(args.Error(0), done)
}

func (m *RowMutator) TransposeCell(from, to int, incoming reconcile.Slot, done grid.DoneFunc) error {
	args := m.Called(from, to, incoming)
	return complete(args.Error(0), done)
}

func (m *RowMutator) DeleteCell(column int, done grid.DoneFunc) error {
	args := m.Called(column)
	return complete(args.Error(0), done)
}

func (m *RowMutator) Consolidate() error {
	args := m.Called()
	return args.Error(0)
}

func complete(err error, done grid.DoneFunc) error {
	if err == nil {
		done()
	}
	return err
}
