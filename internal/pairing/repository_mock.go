// Code generated by MockGen. DO NOT EDIT.
// Source: service.go
//
// Generated by this command:
//
//	mockgen -source=service.go -destination=repository_mock.go -package=pairing
//

// Package pairing is a generated GoMock package.
package pairing

import (
	context "context"
	reflect "reflect"

	account "github.com/MrJamesThe3rd/tally/internal/account"
	ledger "github.com/MrJamesThe3rd/tally/internal/ledger"
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

// Begin mocks base method.
func (m *MockRepository) Begin(ctx context.Context) (Tx, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Begin", ctx)
	ret0, _ := ret[0].(Tx)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Begin indicates an expected call of Begin.
func (mr *MockRepositoryMockRecorder) Begin(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Begin", reflect.TypeOf((*MockRepository)(nil).Begin), ctx)
}

// GetAccount mocks base method.
func (m *MockRepository) GetAccount(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAccount", ctx, id)
	ret0, _ := ret[0].(*account.Account)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAccount indicates an expected call of GetAccount.
func (mr *MockRepositoryMockRecorder) GetAccount(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAccount", reflect.TypeOf((*MockRepository)(nil).GetAccount), ctx, id)
}

// GetMainTransaction mocks base method.
func (m *MockRepository) GetMainTransaction(ctx context.Context, id uuid.UUID) (*ledger.MainTransaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMainTransaction", ctx, id)
	ret0, _ := ret[0].(*ledger.MainTransaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetMainTransaction indicates an expected call of GetMainTransaction.
func (mr *MockRepositoryMockRecorder) GetMainTransaction(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMainTransaction", reflect.TypeOf((*MockRepository)(nil).GetMainTransaction), ctx, id)
}

// MockTx is a mock of Tx interface.
type MockTx struct {
	ctrl     *gomock.Controller
	recorder *MockTxMockRecorder
	isgomock struct{}
}

// MockTxMockRecorder is the mock recorder for MockTx.
type MockTxMockRecorder struct {
	mock *MockTx
}

// NewMockTx creates a new mock instance.
func NewMockTx(ctrl *gomock.Controller) *MockTx {
	mock := &MockTx{ctrl: ctrl}
	mock.recorder = &MockTxMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTx) EXPECT() *MockTxMockRecorder {
	return m.recorder
}

// ClearDrawdownRef mocks base method.
func (m *MockTx) ClearDrawdownRef(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClearDrawdownRef", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// ClearDrawdownRef indicates an expected call of ClearDrawdownRef.
func (mr *MockTxMockRecorder) ClearDrawdownRef(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClearDrawdownRef", reflect.TypeOf((*MockTx)(nil).ClearDrawdownRef), ctx, id)
}

// ClearMatched mocks base method.
func (m *MockTx) ClearMatched(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClearMatched", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// ClearMatched indicates an expected call of ClearMatched.
func (mr *MockTxMockRecorder) ClearMatched(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClearMatched", reflect.TypeOf((*MockTx)(nil).ClearMatched), ctx, id)
}

// Commit mocks base method.
func (m *MockTx) Commit() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Commit")
	ret0, _ := ret[0].(error)
	return ret0
}

// Commit indicates an expected call of Commit.
func (mr *MockTxMockRecorder) Commit() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Commit", reflect.TypeOf((*MockTx)(nil).Commit))
}

// DeleteTransaction mocks base method.
func (m *MockTx) DeleteTransaction(ctx context.Context, mainID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteTransaction", ctx, mainID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteTransaction indicates an expected call of DeleteTransaction.
func (mr *MockTxMockRecorder) DeleteTransaction(ctx, mainID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteTransaction", reflect.TypeOf((*MockTx)(nil).DeleteTransaction), ctx, mainID)
}

// ListCreditMemos mocks base method.
func (m *MockTx) ListCreditMemos(ctx context.Context, drawdownID uuid.UUID) ([]*ledger.MainTransaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListCreditMemos", ctx, drawdownID)
	ret0, _ := ret[0].([]*ledger.MainTransaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListCreditMemos indicates an expected call of ListCreditMemos.
func (mr *MockTxMockRecorder) ListCreditMemos(ctx, drawdownID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListCreditMemos", reflect.TypeOf((*MockTx)(nil).ListCreditMemos), ctx, drawdownID)
}

// RestoreDrawdownPrincipal mocks base method.
func (m *MockTx) RestoreDrawdownPrincipal(ctx context.Context, drawdownID uuid.UUID, amount decimal.Decimal) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RestoreDrawdownPrincipal", ctx, drawdownID, amount)
	ret0, _ := ret[0].(error)
	return ret0
}

// RestoreDrawdownPrincipal indicates an expected call of RestoreDrawdownPrincipal.
func (mr *MockTxMockRecorder) RestoreDrawdownPrincipal(ctx, drawdownID, amount any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RestoreDrawdownPrincipal", reflect.TypeOf((*MockTx)(nil).RestoreDrawdownPrincipal), ctx, drawdownID, amount)
}

// Rollback mocks base method.
func (m *MockTx) Rollback() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Rollback")
	ret0, _ := ret[0].(error)
	return ret0
}

// Rollback indicates an expected call of Rollback.
func (mr *MockTxMockRecorder) Rollback() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Rollback", reflect.TypeOf((*MockTx)(nil).Rollback))
}

// SetMatched mocks base method.
func (m *MockTx) SetMatched(ctx context.Context, id, partner uuid.UUID) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetMatched", ctx, id, partner)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SetMatched indicates an expected call of SetMatched.
func (mr *MockTxMockRecorder) SetMatched(ctx, id, partner any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetMatched", reflect.TypeOf((*MockTx)(nil).SetMatched), ctx, id, partner)
}
