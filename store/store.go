package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"git.cmcode.dev/cmcode/finance-manager-tui/lib"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS transactions (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	kind        TEXT NOT NULL CHECK (kind IN ('income', 'expense')),
	amount      TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	date        TEXT NOT NULL
)`

// Store persists transactions in a single SQLite table. It owns its
// connection; construct it once and pass it to whatever needs it.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// Open opens (or creates) the SQLite database at path and ensures the schema
// exists. Parent directories are created as needed.
func Open(path string, log zerolog.Logger) (*Store, error) {
	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return nil, fmt.Errorf("failed to make database directory for %v: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db %v: %w", path, err)
	}

	// one process, one writer
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("create schema: %w", err)
	}

	log.Debug().Str("path", path).Msg("opened database")

	return &Store{db: db, log: log}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}

// Create validates f and inserts it, returning the new id. Ids are never
// reused, even after the row holding them is deleted.
func (s *Store) Create(ctx context.Context, f lib.Fields) (int64, error) {
	if err := f.Validate(); err != nil {
		return 0, err
	}

	res, err := s.db.ExecContext(
		ctx,
		"INSERT INTO transactions (kind, amount, description, date) VALUES (?, ?, ?, ?)",
		f.Kind.String(), f.Amount.String(), f.Description, lib.FormatAsDate(f.Date),
	)
	if err != nil {
		return 0, fmt.Errorf("insert transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert transaction: last insert id: %w", err)
	}

	s.log.Info().Int64("id", id).Str("kind", f.Kind.String()).Str("amount", f.Amount.String()).Msg("created transaction")

	return id, nil
}

// ReadAll returns every transaction in id order.
func (s *Store) ReadAll(ctx context.Context) ([]lib.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, kind, amount, description, date FROM transactions ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	out := []lib.Transaction{}

	for rows.Next() {
		tx, err := scan(rows)
		if err != nil {
			return nil, err
		}

		out = append(out, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}

	return out, nil
}

// Get returns the transaction with the given id, or a *lib.NotFoundError.
func (s *Store) Get(ctx context.Context, id int64) (lib.Transaction, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, kind, amount, description, date FROM transactions WHERE id = ?", id)

	tx, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return lib.Transaction{}, &lib.NotFoundError{ID: id}
	}

	if err != nil {
		return lib.Transaction{}, err
	}

	return tx, nil
}

// Update replaces every mutable field of the transaction with the given id.
func (s *Store) Update(ctx context.Context, id int64, f lib.Fields) error {
	if err := f.Validate(); err != nil {
		return err
	}

	res, err := s.db.ExecContext(
		ctx,
		"UPDATE transactions SET kind = ?, amount = ?, description = ?, date = ? WHERE id = ?",
		f.Kind.String(), f.Amount.String(), f.Description, lib.FormatAsDate(f.Date), id,
	)
	if err != nil {
		return fmt.Errorf("update transaction %v: %w", id, err)
	}

	if err := affected(res, id); err != nil {
		return err
	}

	s.log.Info().Int64("id", id).Str("kind", f.Kind.String()).Str("amount", f.Amount.String()).Msg("updated transaction")

	return nil
}

// Delete permanently removes the transaction with the given id.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete transaction %v: %w", id, err)
	}

	if err := affected(res, id); err != nil {
		return err
	}

	s.log.Info().Int64("id", id).Msg("deleted transaction")

	return nil
}

// Balance returns total income minus total expenses. Amounts are summed as
// decimals rather than with SQL SUM, which would go through floating point.
func (s *Store) Balance(ctx context.Context) (decimal.Decimal, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT kind, amount FROM transactions")
	if err != nil {
		return decimal.Zero, fmt.Errorf("query balance: %w", err)
	}
	defer rows.Close()

	total := decimal.Zero

	for rows.Next() {
		var kind, amount string

		if err := rows.Scan(&kind, &amount); err != nil {
			return decimal.Zero, fmt.Errorf("scan balance row: %w", err)
		}

		a, err := decimal.NewFromString(amount)
		if err != nil {
			return decimal.Zero, fmt.Errorf("parse stored amount %q: %w", amount, err)
		}

		if lib.Kind(kind) == lib.KindExpense {
			a = a.Neg()
		}

		total = total.Add(a)
	}

	if err := rows.Err(); err != nil {
		return decimal.Zero, fmt.Errorf("query balance: %w", err)
	}

	return total, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(r scanner) (lib.Transaction, error) {
	var (
		tx           lib.Transaction
		kind, amount string
		date         string
	)

	err := r.Scan(&tx.ID, &kind, &amount, &tx.Description, &date)
	if errors.Is(err, sql.ErrNoRows) {
		return tx, err
	}

	if err != nil {
		return tx, fmt.Errorf("scan transaction: %w", err)
	}

	tx.Kind = lib.Kind(kind)

	tx.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return tx, fmt.Errorf("parse stored amount %q of transaction %v: %w", amount, tx.ID, err)
	}

	tx.Date, err = lib.ParseDate(date)
	if err != nil {
		return tx, fmt.Errorf("parse stored date of transaction %v: %w", tx.ID, err)
	}

	return tx, nil
}

func affected(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for transaction %v: %w", id, err)
	}

	if n == 0 {
		return &lib.NotFoundError{ID: id}
	}

	return nil
}
