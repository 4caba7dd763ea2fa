// Code generated by MockGen. DO NOT EDIT.
// Source: service.go
//
// Generated by this command:
//
//	mockgen -source=service.go -destination=repository_mock.go -package=reconcile
//

// Package reconcile is a generated GoMock package.
package reconcile

import (
	context "context"
	reflect "reflect"
	time "time"

	checkpoint "github.com/MrJamesThe3rd/tally/internal/checkpoint"
	ledger "github.com/MrJamesThe3rd/tally/internal/ledger"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockRepository is a mock of Repository interface.
type MockRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRepositoryMockRecorder
	isgomock struct{}
}

// MockRepositoryMockRecorder is the mock recorder for MockRepository.
type MockRepositoryMockRecorder struct {
	mock *MockRepository
}

// NewMockRepository creates a new mock instance.
func NewMockRepository(ctrl *gomock.Controller) *MockRepository {
	mock := &MockRepository{ctrl: ctrl}
	mock.recorder = &MockRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRepository) EXPECT() *MockRepositoryMockRecorder {
	return m.recorder
}

// GetCheckpoint mocks base method.
func (m *MockRepository) GetCheckpoint(ctx context.Context, id uuid.UUID) (*checkpoint.Checkpoint, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCheckpoint", ctx, id)
	ret0, _ := ret[0].(*checkpoint.Checkpoint)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCheckpoint indicates an expected call of GetCheckpoint.
func (mr *MockRepositoryMockRecorder) GetCheckpoint(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCheckpoint", reflect.TypeOf((*MockRepository)(nil).GetCheckpoint), ctx, id)
}

// LatestCheckpoint mocks base method.
func (m *MockRepository) LatestCheckpoint(ctx context.Context, accountID uuid.UUID) (*checkpoint.Checkpoint, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LatestCheckpoint", ctx, accountID)
	ret0, _ := ret[0].(*checkpoint.Checkpoint)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LatestCheckpoint indicates an expected call of LatestCheckpoint.
func (mr *MockRepositoryMockRecorder) LatestCheckpoint(ctx, accountID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LatestCheckpoint", reflect.TypeOf((*MockRepository)(nil).LatestCheckpoint), ctx, accountID)
}

// ListWindow mocks base method.
func (m *MockRepository) ListWindow(ctx context.Context, accountID uuid.UUID, after *time.Time, until time.Time) ([]*ledger.RawTransaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListWindow", ctx, accountID, after, until)
	ret0, _ := ret[0].([]*ledger.RawTransaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListWindow indicates an expected call of ListWindow.
func (mr *MockRepositoryMockRecorder) ListWindow(ctx, accountID, after, until any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListWindow", reflect.TypeOf((*MockRepository)(nil).ListWindow), ctx, accountID, after, until)
}

// PreviousCheckpoint mocks base method.
func (m *MockRepository) PreviousCheckpoint(ctx context.Context, accountID uuid.UUID, before time.Time) (*checkpoint.Checkpoint, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PreviousCheckpoint", ctx, accountID, before)
	ret0, _ := ret[0].(*checkpoint.Checkpoint)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PreviousCheckpoint indicates an expected call of PreviousCheckpoint.
func (mr *MockRepositoryMockRecorder) PreviousCheckpoint(ctx, accountID, before any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PreviousCheckpoint", reflect.TypeOf((*MockRepository)(nil).PreviousCheckpoint), ctx, accountID, before)
}
