// Code generated by MockGen. DO NOT EDIT.
// Source: service.go
//
// Generated by this command:
//
//	mockgen -source=service.go -destination=repository_mock.go -package=checkpoint
//

// Package checkpoint is a generated GoMock package.
package checkpoint

import (
	context "context"
	reflect "reflect"

	uuid "github.com/google/uuid"
	decimal "github.com/shopspring/decimal"
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

// DeleteCheckpoint mocks base method.
func (m *MockRepository) DeleteCheckpoint(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteCheckpoint", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteCheckpoint indicates an expected call of DeleteCheckpoint.
func (mr *MockRepositoryMockRecorder) DeleteCheckpoint(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteCheckpoint", reflect.TypeOf((*MockRepository)(nil).DeleteCheckpoint), ctx, id)
}

// GetCheckpoint mocks base method.
func (m *MockRepository) GetCheckpoint(ctx context.Context, id uuid.UUID) (*Checkpoint, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCheckpoint", ctx, id)
	ret0, _ := ret[0].(*Checkpoint)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCheckpoint indicates an expected call of GetCheckpoint.
func (mr *MockRepositoryMockRecorder) GetCheckpoint(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCheckpoint", reflect.TypeOf((*MockRepository)(nil).GetCheckpoint), ctx, id)
}

// ListCheckpoints mocks base method.
func (m *MockRepository) ListCheckpoints(ctx context.Context, accountID uuid.UUID) ([]*Checkpoint, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListCheckpoints", ctx, accountID)
	ret0, _ := ret[0].([]*Checkpoint)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListCheckpoints indicates an expected call of ListCheckpoints.
func (mr *MockRepositoryMockRecorder) ListCheckpoints(ctx, accountID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListCheckpoints", reflect.TypeOf((*MockRepository)(nil).ListCheckpoints), ctx, accountID)
}

// SetCalculatedBalance mocks base method.
func (m *MockRepository) SetCalculatedBalance(ctx context.Context, id uuid.UUID, calculated decimal.Decimal) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetCalculatedBalance", ctx, id, calculated)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetCalculatedBalance indicates an expected call of SetCalculatedBalance.
func (mr *MockRepositoryMockRecorder) SetCalculatedBalance(ctx, id, calculated any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetCalculatedBalance", reflect.TypeOf((*MockRepository)(nil).SetCalculatedBalance), ctx, id, calculated)
}

// UpsertCheckpoint mocks base method.
func (m *MockRepository) UpsertCheckpoint(ctx context.Context, cp *Checkpoint) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertCheckpoint", ctx, cp)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpsertCheckpoint indicates an expected call of UpsertCheckpoint.
func (mr *MockRepositoryMockRecorder) UpsertCheckpoint(ctx, cp any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertCheckpoint", reflect.TypeOf((*MockRepository)(nil).UpsertCheckpoint), ctx, cp)
}
