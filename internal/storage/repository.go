package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"expenses/internal/core"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when an expense id does not exist.
var ErrNotFound = errors.New("expense not found")

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
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

// Ping reports whether the store is reachable.
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Insert stores a new expense and returns its assigned id.
func (r *SQLiteRepository) Insert(ctx context.Context, e core.Expense) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (description, amount, category, date) VALUES (?, ?, ?, ?)`,
		e.Description, e.Amount, e.Category, e.Date.String(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert expense: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}

	slog.InfoContext(ctx, "Expense saved",
		"id", id,
		"description", e.Description,
		"amount", e.Amount,
		"category", e.Category,
		"date", e.Date.String())

	return id, nil
}

// Get retrieves a single expense by id, or ErrNotFound.
func (r *SQLiteRepository) Get(ctx context.Context, id int64) (core.Expense, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, description, amount, category, date FROM expenses WHERE id = ?`, id)

	e, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Expense{}, ErrNotFound
	}
	if err != nil {
		return core.Expense{}, fmt.Errorf("get expense %d: %w", id, err)
	}
	return e, nil
}

// Update replaces every mutable field of an existing expense.
func (r *SQLiteRepository) Update(ctx context.Context, e core.Expense) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE expenses SET description = ?, amount = ?, category = ?, date = ? WHERE id = ?`,
		e.Description, e.Amount, e.Category, e.Date.String(), e.ID,
	)
	if err != nil {
		return fmt.Errorf("update expense %d: %w", e.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete permanently removes an expense, or returns ErrNotFound.
func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete expense %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns matching expenses, most recent date first and newest id first
// among same-day entries.
func (r *SQLiteRepository) List(ctx context.Context, f Filter) ([]core.Expense, error) {
	where, args := f.where()
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, description, amount, category, date FROM expenses`+where+
			` ORDER BY date DESC, id DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []core.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// CategoryTotals sums amounts per category under the same filter as List.
// Group order is whatever the engine emits.
func (r *SQLiteRepository) CategoryTotals(ctx context.Context, f Filter) ([]core.CategoryTotal, error) {
	where, args := f.where()
	return r.queryTotals(ctx,
		`SELECT category, SUM(amount) FROM expenses`+where+` GROUP BY category`, args)
}

// CategoryTotalsByRecency sums amounts per category, with groups ordered by
// each category's most recent expense date, oldest-activity group first.
func (r *SQLiteRepository) CategoryTotalsByRecency(ctx context.Context, f Filter) ([]core.CategoryTotal, error) {
	where, args := f.where()
	return r.queryTotals(ctx,
		`SELECT category, SUM(amount) FROM expenses`+where+
			` GROUP BY category ORDER BY MAX(date)`, args)
}

func (r *SQLiteRepository) queryTotals(ctx context.Context, query string, args []any) ([]core.CategoryTotal, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("category totals: %w", err)
	}
	defer rows.Close()

	var totals []core.CategoryTotal
	for rows.Next() {
		var ct core.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total); err != nil {
			return nil, fmt.Errorf("scan category total: %w", err)
		}
		totals = append(totals, ct)
	}
	return totals, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (core.Expense, error) {
	var (
		e       core.Expense
		dateStr string
	)
	if err := row.Scan(&e.ID, &e.Description, &e.Amount, &e.Category, &dateStr); err != nil {
		return core.Expense{}, err
	}
	d, err := core.ParseDate(dateStr)
	if err != nil {
		return core.Expense{}, fmt.Errorf("stored date %q: %w", dateStr, err)
	}
	e.Date = d
	return e, nil
}
