// Code generated by MockGen. DO NOT EDIT.
// Source: service.go
//
// Generated by this command:
//
//	mockgen -source=service.go -destination=repository_mock.go -package=split
//

// Package split is a generated GoMock package.
package split

import (
	context "context"
	reflect "reflect"

	ledger "github.com/MrJamesThe3rd/tally/internal/ledger"
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

// GetRawTransaction mocks base method.
func (m *MockRepository) GetRawTransaction(ctx context.Context, id string) (*ledger.RawTransaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRawTransaction", ctx, id)
	ret0, _ := ret[0].(*ledger.RawTransaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRawTransaction indicates an expected call of GetRawTransaction.
func (mr *MockRepositoryMockRecorder) GetRawTransaction(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRawTransaction", reflect.TypeOf((*MockRepository)(nil).GetRawTransaction), ctx, id)
}

// ListMainTransactions mocks base method.
func (m *MockRepository) ListMainTransactions(ctx context.Context, rawID string) ([]*ledger.MainTransaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListMainTransactions", ctx, rawID)
	ret0, _ := ret[0].([]*ledger.MainTransaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListMainTransactions indicates an expected call of ListMainTransactions.
func (mr *MockRepositoryMockRecorder) ListMainTransactions(ctx, rawID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListMainTransactions", reflect.TypeOf((*MockRepository)(nil).ListMainTransactions), ctx, rawID)
}

// ReplaceMainTransactions mocks base method.
func (m *MockRepository) ReplaceMainTransactions(ctx context.Context, rawID string, mains []*ledger.MainTransaction) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReplaceMainTransactions", ctx, rawID, mains)
	ret0, _ := ret[0].(error)
	return ret0
}

// ReplaceMainTransactions indicates an expected call of ReplaceMainTransactions.
func (mr *MockRepositoryMockRecorder) ReplaceMainTransactions(ctx, rawID, mains any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReplaceMainTransactions", reflect.TypeOf((*MockRepository)(nil).ReplaceMainTransactions), ctx, rawID, mains)
}
