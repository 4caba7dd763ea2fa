// Code generated by MockGen. DO NOT EDIT.
// Source: service.go
//
// Generated by this command:
//
//	mockgen -source=service.go -destination=repository_mock.go -package=ledger
//

// Package ledger is a generated GoMock package.
package ledger

import (
	context "context"
	reflect "reflect"
	time "time"

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

// BeginImport mocks base method.
func (m *MockRepository) BeginImport(ctx context.Context, accountID uuid.UUID, minDate, maxDate time.Time) (ImportTx, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BeginImport", ctx, accountID, minDate, maxDate)
	ret0, _ := ret[0].(ImportTx)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// BeginImport indicates an expected call of BeginImport.
func (mr *MockRepositoryMockRecorder) BeginImport(ctx, accountID, minDate, maxDate any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BeginImport", reflect.TypeOf((*MockRepository)(nil).BeginImport), ctx, accountID, minDate, maxDate)
}

// CreateRawTransaction mocks base method.
func (m *MockRepository) CreateRawTransaction(ctx context.Context, raw *RawTransaction, main *MainTransaction) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateRawTransaction", ctx, raw, main)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateRawTransaction indicates an expected call of CreateRawTransaction.
func (mr *MockRepositoryMockRecorder) CreateRawTransaction(ctx, raw, main any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateRawTransaction", reflect.TypeOf((*MockRepository)(nil).CreateRawTransaction), ctx, raw, main)
}

// DeleteRawTransaction mocks base method.
func (m *MockRepository) DeleteRawTransaction(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteRawTransaction", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteRawTransaction indicates an expected call of DeleteRawTransaction.
func (mr *MockRepositoryMockRecorder) DeleteRawTransaction(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteRawTransaction", reflect.TypeOf((*MockRepository)(nil).DeleteRawTransaction), ctx, id)
}

// GetMainTransaction mocks base method.
func (m *MockRepository) GetMainTransaction(ctx context.Context, id uuid.UUID) (*MainTransaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMainTransaction", ctx, id)
	ret0, _ := ret[0].(*MainTransaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetMainTransaction indicates an expected call of GetMainTransaction.
func (mr *MockRepositoryMockRecorder) GetMainTransaction(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMainTransaction", reflect.TypeOf((*MockRepository)(nil).GetMainTransaction), ctx, id)
}

// GetRawTransaction mocks base method.
func (m *MockRepository) GetRawTransaction(ctx context.Context, id string) (*RawTransaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRawTransaction", ctx, id)
	ret0, _ := ret[0].(*RawTransaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRawTransaction indicates an expected call of GetRawTransaction.
func (mr *MockRepositoryMockRecorder) GetRawTransaction(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRawTransaction", reflect.TypeOf((*MockRepository)(nil).GetRawTransaction), ctx, id)
}

// ListMainTransactions mocks base method.
func (m *MockRepository) ListMainTransactions(ctx context.Context, rawID string) ([]*MainTransaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListMainTransactions", ctx, rawID)
	ret0, _ := ret[0].([]*MainTransaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListMainTransactions indicates an expected call of ListMainTransactions.
func (mr *MockRepositoryMockRecorder) ListMainTransactions(ctx, rawID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListMainTransactions", reflect.TypeOf((*MockRepository)(nil).ListMainTransactions), ctx, rawID)
}

// ListRawTransactions mocks base method.
func (m *MockRepository) ListRawTransactions(ctx context.Context, filter ListFilter) ([]*RawTransaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListRawTransactions", ctx, filter)
	ret0, _ := ret[0].([]*RawTransaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListRawTransactions indicates an expected call of ListRawTransactions.
func (mr *MockRepositoryMockRecorder) ListRawTransactions(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListRawTransactions", reflect.TypeOf((*MockRepository)(nil).ListRawTransactions), ctx, filter)
}

// MockImportTx is a mock of ImportTx interface.
type MockImportTx struct {
	ctrl     *gomock.Controller
	recorder *MockImportTxMockRecorder
	isgomock struct{}
}

// MockImportTxMockRecorder is the mock recorder for MockImportTx.
type MockImportTxMockRecorder struct {
	mock *MockImportTx
}

// NewMockImportTx creates a new mock instance.
func NewMockImportTx(ctrl *gomock.Controller) *MockImportTx {
	mock := &MockImportTx{ctrl: ctrl}
	mock.recorder = &MockImportTxMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockImportTx) EXPECT() *MockImportTxMockRecorder {
	return m.recorder
}

// Commit mocks base method.
func (m *MockImportTx) Commit() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Commit")
	ret0, _ := ret[0].(error)
	return ret0
}

// Commit indicates an expected call of Commit.
func (mr *MockImportTxMockRecorder) Commit() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Commit", reflect.TypeOf((*MockImportTx)(nil).Commit))
}

// CreateCheckpoint mocks base method.
func (m *MockImportTx) CreateCheckpoint(ctx context.Context, accountID uuid.UUID, date time.Time, declared decimal.Decimal, batchID uuid.UUID) (uuid.UUID, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateCheckpoint", ctx, accountID, date, declared, batchID)
	ret0, _ := ret[0].(uuid.UUID)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateCheckpoint indicates an expected call of CreateCheckpoint.
func (mr *MockImportTxMockRecorder) CreateCheckpoint(ctx, accountID, date, declared, batchID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateCheckpoint", reflect.TypeOf((*MockImportTx)(nil).CreateCheckpoint), ctx, accountID, date, declared, batchID)
}

// CreateRawTransactions mocks base method.
func (m *MockImportTx) CreateRawTransactions(ctx context.Context, accountID uuid.UUID, rows []ImportRow) ([]*RawTransaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateRawTransactions", ctx, accountID, rows)
	ret0, _ := ret[0].([]*RawTransaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateRawTransactions indicates an expected call of CreateRawTransactions.
func (mr *MockImportTxMockRecorder) CreateRawTransactions(ctx, accountID, rows any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateRawTransactions", reflect.TypeOf((*MockImportTx)(nil).CreateRawTransactions), ctx, accountID, rows)
}

// FindDuplicates mocks base method.
func (m *MockImportTx) FindDuplicates(ctx context.Context, accountID uuid.UUID, rows []ImportRow) ([]*RawTransaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindDuplicates", ctx, accountID, rows)
	ret0, _ := ret[0].([]*RawTransaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindDuplicates indicates an expected call of FindDuplicates.
func (mr *MockImportTxMockRecorder) FindDuplicates(ctx, accountID, rows any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindDuplicates", reflect.TypeOf((*MockImportTx)(nil).FindDuplicates), ctx, accountID, rows)
}

// Rollback mocks base method.
func (m *MockImportTx) Rollback() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Rollback")
	ret0, _ := ret[0].(error)
	return ret0
}

// Rollback indicates an expected call of Rollback.
func (mr *MockImportTxMockRecorder) Rollback() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Rollback", reflect.TypeOf((*MockImportTx)(nil).Rollback))
}
