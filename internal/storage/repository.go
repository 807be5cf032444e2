package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"fintrack/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

const transactionColumns = "id, description, amount_cents, type, category, date, created_at"

func (r *SQLiteRepository) List(ctx context.Context, offset, limit int) ([]core.Transaction, error) {
	if limit <= 0 {
		limit = -1 // SQLite treats a negative LIMIT as unlimited
	}
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+transactionColumns+" FROM transactions ORDER BY id LIMIT ? OFFSET ?",
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	transactions := make([]core.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return transactions, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id int64) (core.Transaction, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE id = ?", id)
	t, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Transaction{}, ErrNotFound
	}
	if err != nil {
		return core.Transaction{}, err
	}
	return t, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, in core.TransactionInput) (core.Transaction, error) {
	createdAt := time.Now().UTC().Truncate(time.Second)
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (description, amount_cents, type, category, date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		in.Description, in.Amount.Cents, string(in.Type), in.Category,
		in.Date.UTC().Format(time.RFC3339), createdAt.Format(time.RFC3339))
	if err != nil {
		return core.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.Transaction{}, fmt.Errorf("create transaction: last insert id: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved",
		"id", id,
		"description", in.Description,
		"amount_cents", in.Amount.Cents,
		"type", in.Type,
		"category", in.Category)

	return core.Transaction{
		ID:          id,
		Description: in.Description,
		Amount:      in.Amount,
		Type:        in.Type,
		Category:    in.Category,
		Date:        in.Date,
		CreatedAt:   core.Date{Time: createdAt},
	}, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, id int64, patch core.TransactionPatch) (core.Transaction, error) {
	current, err := r.Get(ctx, id)
	if err != nil {
		return core.Transaction{}, err
	}
	patch.Apply(&current)

	_, err = r.db.ExecContext(ctx,
		`UPDATE transactions SET description = ?, amount_cents = ?, type = ?, category = ?, date = ?
		 WHERE id = ?`,
		current.Description, current.Amount.Cents, string(current.Type),
		current.Category, current.Date.UTC().Format(time.RFC3339), id)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("update transaction %d: %w", id, err)
	}
	return current, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete transaction %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete transaction %d: rows affected: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (core.Transaction, error) {
	var (
		t            core.Transaction
		typ          string
		dateStr      string
		createdAtStr string
	)
	if err := row.Scan(&t.ID, &t.Description, &t.Amount.Cents, &typ, &t.Category, &dateStr, &createdAtStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Transaction{}, err
		}
		return core.Transaction{}, fmt.Errorf("scan transaction: %w", err)
	}
	t.Type = core.TransactionType(typ)

	date, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("parse stored date %q: %w", dateStr, err)
	}
	t.Date = core.Date{Time: date}

	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("parse stored created_at %q: %w", createdAtStr, err)
	}
	t.CreatedAt = core.Date{Time: createdAt}
	return t, nil
}
