package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/ledger/store"
)

// Sequence numbers come from a MAX+1 subquery, so every path that inserts
// raw transactions must hold the account's advisory lock for the duration
// of the database transaction. These tests pin the lock acquisition order.

func TestCreateRawTransaction_SerializesPerAccount(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("pg_advisory_xact_lock").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("INSERT INTO raw_transactions").
		WillReturnRows(sqlmock.NewRows([]string{"sequence", "created_at"}).
			AddRow(1, time.Now()))
	mock.ExpectQuery("INSERT INTO main_transactions").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).
			AddRow(time.Now()))
	mock.ExpectCommit()

	s := store.New(db)

	amount := decimal.NewFromInt(100)
	raw := &ledger.RawTransaction{
		ID:          ledger.NewRawID(),
		AccountID:   uuid.New(),
		Date:        time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		Description: "COFFEE",
		Debit:       &amount,
	}

	err = s.CreateRawTransaction(context.Background(), raw, ledger.DefaultMain(raw))
	require.NoError(t, err)
	require.Equal(t, 1, raw.Sequence)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBeginImport_SerializesPerAccount(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("pg_advisory_xact_lock").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	s := store.New(db)

	day := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	itx, err := s.BeginImport(context.Background(), uuid.New(), day, day)
	require.NoError(t, err)
	require.NoError(t, itx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRawTransaction_SingleTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := ledger.NewRawID()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM main_transactions").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE raw_transactions SET deleted_at").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	s := store.New(db)

	require.NoError(t, s.DeleteRawTransaction(context.Background(), id))
	require.NoError(t, mock.ExpectationsWereMet())
}
