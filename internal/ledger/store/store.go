package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectRawColumns = `
	r.id, r.account_id, r.date, r.description, r.debit, r.credit, r.balance,
	r.is_balance_adjustment, r.checkpoint_id, r.sequence, r.created_at, r.deleted_at
`

func scanRaw(s scanner) (*ledger.RawTransaction, error) {
	var (
		raw                   ledger.RawTransaction
		debit, credit, balance sql.NullString
	)

	if err := s.Scan(
		&raw.ID, &raw.AccountID, &raw.Date, &raw.Description, &debit, &credit, &balance,
		&raw.IsBalanceAdjustment, &raw.CheckpointID, &raw.Sequence, &raw.CreatedAt, &raw.DeletedAt,
	); err != nil {
		return nil, err
	}

	var err error

	if raw.Debit, err = nullDecimal(debit); err != nil {
		return nil, err
	}

	if raw.Credit, err = nullDecimal(credit); err != nil {
		return nil, err
	}

	if raw.Balance, err = nullDecimal(balance); err != nil {
		return nil, err
	}

	return &raw, nil
}

const selectMainColumns = `
	m.id, m.raw_transaction_id, m.account_id, m.type_code, m.category_id, m.amount,
	m.direction, m.is_split, m.split_sequence, m.matched_transaction_id, m.drawdown_id,
	m.credit_memo_of_drawdown_id, m.notes, m.date, m.description, m.created_at, m.updated_at
`

func scanMain(s scanner) (*ledger.MainTransaction, error) {
	var (
		main             ledger.MainTransaction
		typeStr, dirStr  string
		amount           string
		notes            sql.NullString
	)

	if err := s.Scan(
		&main.ID, &main.RawTransactionID, &main.AccountID, &typeStr, &main.CategoryID, &amount,
		&dirStr, &main.IsSplit, &main.SplitSequence, &main.MatchedID, &main.DrawdownID,
		&main.CreditMemoOfID, &notes, &main.Date, &main.Description, &main.CreatedAt, &main.UpdatedAt,
	); err != nil {
		return nil, err
	}

	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("parsing amount: %w", err)
	}

	main.Type = ledger.TypeCode(typeStr)
	main.Direction = ledger.Direction(dirStr)
	main.Amount = parsed
	main.Notes = notes.String

	return &main, nil
}

func nullDecimal(v sql.NullString) (*decimal.Decimal, error) {
	if !v.Valid {
		return nil, nil
	}

	d, err := decimal.NewFromString(v.String)
	if err != nil {
		return nil, fmt.Errorf("parsing decimal: %w", err)
	}

	return &d, nil
}

func decimalArg(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}

	return d.String()
}

// insertRawQuery assigns the per-(account, date) sequence at insert time so
// same-day entries keep a deterministic order. MAX+1 is only safe while the
// caller holds the account's advisory lock, see lockAccount.
const insertRawQuery = `
	INSERT INTO raw_transactions
		(id, account_id, date, description, debit, credit, balance, is_balance_adjustment, sequence, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8,
		COALESCE((SELECT MAX(sequence) + 1 FROM raw_transactions WHERE account_id = $2 AND date = $3), 1),
		NOW())
	RETURNING sequence, created_at
`

const insertMainQuery = `
	INSERT INTO main_transactions
		(id, raw_transaction_id, account_id, type_code, category_id, amount, direction,
		 is_split, split_sequence, matched_transaction_id, drawdown_id, credit_memo_of_drawdown_id,
		 notes, date, description, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW())
	RETURNING created_at
`

func insertRaw(ctx context.Context, q queryer, raw *ledger.RawTransaction) error {
	err := q.QueryRowContext(ctx, insertRawQuery,
		raw.ID,
		raw.AccountID,
		raw.Date,
		raw.Description,
		decimalArg(raw.Debit),
		decimalArg(raw.Credit),
		decimalArg(raw.Balance),
		raw.IsBalanceAdjustment,
	).Scan(&raw.Sequence, &raw.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting raw transaction: %w", err)
	}

	return nil
}

func insertMain(ctx context.Context, q queryer, main *ledger.MainTransaction) error {
	err := q.QueryRowContext(ctx, insertMainQuery,
		main.ID,
		main.RawTransactionID,
		main.AccountID,
		main.Type,
		main.CategoryID,
		main.Amount.String(),
		main.Direction,
		main.IsSplit,
		main.SplitSequence,
		main.MatchedID,
		main.DrawdownID,
		main.CreditMemoOfID,
		main.Notes,
		main.Date,
		main.Description,
	).Scan(&main.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting main transaction: %w", err)
	}

	return nil
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) CreateRawTransaction(ctx context.Context, raw *ledger.RawTransaction, main *ledger.MainTransaction) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if err := lockAccount(ctx, dbTx, raw.AccountID); err != nil {
		return err
	}

	if err := insertRaw(ctx, dbTx, raw); err != nil {
		return err
	}

	if err := insertMain(ctx, dbTx, main); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) GetRawTransaction(ctx context.Context, id string) (*ledger.RawTransaction, error) {
	query := `SELECT ` + selectRawColumns + `
		FROM raw_transactions r
		WHERE r.id = $1 AND r.deleted_at IS NULL`

	raw, err := scanRaw(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting raw transaction: %w", err)
	}

	return raw, nil
}

func (s *Store) ListRawTransactions(ctx context.Context, filter ledger.ListFilter) ([]*ledger.RawTransaction, error) {
	query := `SELECT ` + selectRawColumns + `
		FROM raw_transactions r
		WHERE r.deleted_at IS NULL`

	var args []any

	argIdx := 1

	if filter.AccountID != nil {
		query += fmt.Sprintf(" AND r.account_id = $%d", argIdx)

		args = append(args, *filter.AccountID)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND r.date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND r.date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY r.date ASC, r.sequence ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing raw transactions: %w", err)
	}
	defer rows.Close()

	var txs []*ledger.RawTransaction

	for rows.Next() {
		raw, err := scanRaw(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning raw transaction: %w", err)
		}

		txs = append(txs, raw)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating raw transactions: %w", err)
	}

	return txs, nil
}

// DeleteRawTransaction soft-deletes the raw transaction and removes its main
// transactions in one database transaction.
func (s *Store) DeleteRawTransaction(ctx context.Context, id string) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx,
		`DELETE FROM main_transactions WHERE raw_transaction_id = $1`, id); err != nil {
		return fmt.Errorf("deleting main transactions: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx,
		`UPDATE raw_transactions SET deleted_at = NOW() WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting raw transaction: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) GetMainTransaction(ctx context.Context, id uuid.UUID) (*ledger.MainTransaction, error) {
	query := `SELECT ` + selectMainColumns + `
		FROM main_transactions m
		WHERE m.id = $1`

	main, err := scanMain(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting main transaction: %w", err)
	}

	return main, nil
}

func (s *Store) ListMainTransactions(ctx context.Context, rawID string) ([]*ledger.MainTransaction, error) {
	query := `SELECT ` + selectMainColumns + `
		FROM main_transactions m
		WHERE m.raw_transaction_id = $1
		ORDER BY m.split_sequence ASC`

	rows, err := s.db.QueryContext(ctx, query, rawID)
	if err != nil {
		return nil, fmt.Errorf("listing main transactions: %w", err)
	}
	defer rows.Close()

	var mains []*ledger.MainTransaction

	for rows.Next() {
		main, err := scanMain(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning main transaction: %w", err)
		}

		mains = append(mains, main)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating main transactions: %w", err)
	}

	return mains, nil
}

func accountLockKey(accountID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write([]byte(accountID.String()))

	return int64(h.Sum64())
}

// lockAccount takes the account's transaction-scoped advisory lock.
// Sequence numbers are assigned with a MAX+1 subquery, so every write that
// inserts raw transactions for an account must hold this lock or two
// concurrent inserts on the same date would get the same sequence.
func lockAccount(ctx context.Context, q queryer, accountID uuid.UUID) error {
	if _, err := q.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", accountLockKey(accountID)); err != nil {
		return fmt.Errorf("acquiring account lock: %w", err)
	}

	return nil
}

type importTx struct {
	tx *sql.Tx
}

func (s *Store) BeginImport(ctx context.Context, accountID uuid.UUID, minDate, maxDate time.Time) (ledger.ImportTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning import tx: %w", err)
	}

	if err := lockAccount(ctx, dbTx, accountID); err != nil {
		dbTx.Rollback()
		return nil, err
	}

	return &importTx{tx: dbTx}, nil
}

func (itx *importTx) Commit() error   { return itx.tx.Commit() }
func (itx *importTx) Rollback() error { return itx.tx.Rollback() }

func (itx *importTx) FindDuplicates(ctx context.Context, accountID uuid.UUID, rows []ledger.ImportRow) ([]*ledger.RawTransaction, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	type lookupKey struct {
		Date        string
		Amount      string
		Direction   ledger.Direction
		Description string
	}

	minDate := rows[0].Date
	maxDate := rows[0].Date
	keySet := make(map[lookupKey]struct{}, len(rows))

	for _, row := range rows {
		if row.Date.Before(minDate) {
			minDate = row.Date
		}

		if row.Date.After(maxDate) {
			maxDate = row.Date
		}

		amount, dir := row.Debit, ledger.Debit
		if amount == nil {
			amount, dir = row.Credit, ledger.Credit
		}

		keySet[lookupKey{
			Date:        row.Date.Format(time.DateOnly),
			Amount:      amount.String(),
			Direction:   dir,
			Description: row.Description,
		}] = struct{}{}
	}

	query := `SELECT ` + selectRawColumns + `
		FROM raw_transactions r
		WHERE r.deleted_at IS NULL AND r.account_id = $1 AND r.date >= $2 AND r.date <= $3
		ORDER BY r.date ASC, r.sequence ASC`

	dbRows, err := itx.tx.QueryContext(ctx, query, accountID, minDate, maxDate)
	if err != nil {
		return nil, fmt.Errorf("finding duplicates: %w", err)
	}
	defer dbRows.Close()

	var duplicates []*ledger.RawTransaction

	for dbRows.Next() {
		raw, err := scanRaw(dbRows)
		if err != nil {
			return nil, fmt.Errorf("scanning raw transaction: %w", err)
		}

		k := lookupKey{
			Date:        raw.Date.Format(time.DateOnly),
			Amount:      raw.Amount().String(),
			Direction:   raw.Direction(),
			Description: raw.Description,
		}

		if _, found := keySet[k]; !found {
			continue
		}

		duplicates = append(duplicates, raw)
	}

	if err := dbRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating duplicate rows: %w", err)
	}

	return duplicates, nil
}

func (itx *importTx) CreateRawTransactions(ctx context.Context, accountID uuid.UUID, rows []ledger.ImportRow) ([]*ledger.RawTransaction, error) {
	created := make([]*ledger.RawTransaction, 0, len(rows))

	for _, row := range rows {
		raw := &ledger.RawTransaction{
			ID:          ledger.NewRawID(),
			AccountID:   accountID,
			Date:        row.Date,
			Description: row.Description,
			Debit:       row.Debit,
			Credit:      row.Credit,
			Balance:     row.Balance,
		}

		if err := insertRaw(ctx, itx.tx, raw); err != nil {
			return nil, err
		}

		if err := insertMain(ctx, itx.tx, ledger.DefaultMain(raw)); err != nil {
			return nil, err
		}

		created = append(created, raw)
	}

	return created, nil
}

func (itx *importTx) CreateCheckpoint(ctx context.Context, accountID uuid.UUID, date time.Time, declared decimal.Decimal, batchID uuid.UUID) (uuid.UUID, error) {
	query := `
		INSERT INTO balance_checkpoints (id, account_id, checkpoint_date, declared_balance, import_batch_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (account_id, checkpoint_date)
		DO UPDATE SET declared_balance = EXCLUDED.declared_balance, import_batch_id = EXCLUDED.import_batch_id
		RETURNING id
	`

	var id uuid.UUID
	if err := itx.tx.QueryRowContext(ctx, query, uuid.New(), accountID, date, declared.String(), batchID).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("creating checkpoint: %w", err)
	}

	return id, nil
}
