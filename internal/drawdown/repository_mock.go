// Code generated by MockGen. DO NOT EDIT.
// Source: service.go
//
// Generated by this command:
//
//	mockgen -source=service.go -destination=repository_mock.go -package=drawdown
//

// Package drawdown is a generated GoMock package.
package drawdown

import (
	context "context"
	reflect "reflect"

	account "github.com/MrJamesThe3rd/tally/internal/account"
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

// GetCounterparty mocks base method.
func (m *MockRepository) GetCounterparty(ctx context.Context, id uuid.UUID) (*Counterparty, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCounterparty", ctx, id)
	ret0, _ := ret[0].(*Counterparty)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCounterparty indicates an expected call of GetCounterparty.
func (mr *MockRepositoryMockRecorder) GetCounterparty(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCounterparty", reflect.TypeOf((*MockRepository)(nil).GetCounterparty), ctx, id)
}

// GetDrawdown mocks base method.
func (m *MockRepository) GetDrawdown(ctx context.Context, id uuid.UUID) (*Drawdown, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetDrawdown", ctx, id)
	ret0, _ := ret[0].(*Drawdown)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetDrawdown indicates an expected call of GetDrawdown.
func (mr *MockRepositoryMockRecorder) GetDrawdown(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetDrawdown", reflect.TypeOf((*MockRepository)(nil).GetDrawdown), ctx, id)
}

// ListDrawdowns mocks base method.
func (m *MockRepository) ListDrawdowns(ctx context.Context, accountID uuid.UUID) ([]*Drawdown, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListDrawdowns", ctx, accountID)
	ret0, _ := ret[0].([]*Drawdown)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListDrawdowns indicates an expected call of ListDrawdowns.
func (mr *MockRepositoryMockRecorder) ListDrawdowns(ctx, accountID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListDrawdowns", reflect.TypeOf((*MockRepository)(nil).ListDrawdowns), ctx, accountID)
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

// CreateDrawdown mocks base method.
func (m *MockTx) CreateDrawdown(ctx context.Context, dd *Drawdown) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateDrawdown", ctx, dd)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateDrawdown indicates an expected call of CreateDrawdown.
func (mr *MockTxMockRecorder) CreateDrawdown(ctx, dd any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateDrawdown", reflect.TypeOf((*MockTx)(nil).CreateDrawdown), ctx, dd)
}

// CreateTransaction mocks base method.
func (m *MockTx) CreateTransaction(ctx context.Context, raw *ledger.RawTransaction, main *ledger.MainTransaction) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateTransaction", ctx, raw, main)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateTransaction indicates an expected call of CreateTransaction.
func (mr *MockTxMockRecorder) CreateTransaction(ctx, raw, main any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateTransaction", reflect.TypeOf((*MockTx)(nil).CreateTransaction), ctx, raw, main)
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

// UpdateDrawdown mocks base method.
func (m *MockTx) UpdateDrawdown(ctx context.Context, dd *Drawdown) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateDrawdown", ctx, dd)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateDrawdown indicates an expected call of UpdateDrawdown.
func (mr *MockTxMockRecorder) UpdateDrawdown(ctx, dd any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateDrawdown", reflect.TypeOf((*MockTx)(nil).UpdateDrawdown), ctx, dd)
}
