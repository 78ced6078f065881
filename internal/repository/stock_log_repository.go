package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Gaurav-Soni24/backend-inventory/internal/domain"
)

// StockLogRepository defines the interface for stock log data access
type StockLogRepository interface {
	// CreateAndAdjustStock persists the log and applies its delta to the
	// product's stock in a single transaction. The stock update is an
	// in-place increment, so concurrent submissions against the same
	// product serialize at the store and never lose an update. Returns
	// ErrProductNotFound (and persists nothing) when the product row is
	// gone.
	CreateAndAdjustStock(ctx context.Context, log *domain.StockLog) error

	List(ctx context.Context) ([]*domain.StockLog, error)
	Search(ctx context.Context, logType, date string) ([]*domain.StockLog, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
}

type stockLogRepository struct {
	db *sql.DB
}

// NewStockLogRepository creates a new instance of StockLogRepository
func NewStockLogRepository(db *sql.DB) StockLogRepository {
	return &stockLogRepository{db: db}
}

func (r *stockLogRepository) CreateAndAdjustStock(ctx context.Context, log *domain.StockLog) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// The stock update runs first so a vanished product surfaces as
	// zero rows before the log insert can trip the foreign key.
	update := `
		UPDATE products
		SET stock = stock + $2, updated_at = $3
		WHERE id = $1
	`

	result, err := tx.ExecContext(ctx, update, log.ProductID, log.Delta(), log.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to adjust stock: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	insert := `
		INSERT INTO stock_logs (id, product_id, product_name, type, quantity, date, time, created_by, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = tx.ExecContext(
		ctx,
		insert,
		log.ID,
		log.ProductID,
		log.ProductName,
		log.Type,
		log.Quantity,
		log.Date,
		log.Time,
		log.User,
		log.Notes,
		log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create stock log: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit stock adjustment: %w", err)
	}

	return nil
}

// List returns every stock log, newest first.
func (r *stockLogRepository) List(ctx context.Context) ([]*domain.StockLog, error) {
	query := `
		SELECT id, product_id, product_name, type, quantity, date, time, created_by, notes, created_at
		FROM stock_logs
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock logs: %w", err)
	}
	defer rows.Close()

	return collectStockLogs(rows)
}

// Search filters by movement type and/or date. Empty parameters match
// everything, mirroring optional query-string filters.
func (r *stockLogRepository) Search(ctx context.Context, logType, date string) ([]*domain.StockLog, error) {
	query := `
		SELECT id, product_id, product_name, type, quantity, date, time, created_by, notes, created_at
		FROM stock_logs
		WHERE ($1 = '' OR type = $1)
		  AND ($2 = '' OR date = $2)
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, logType, date)
	if err != nil {
		return nil, fmt.Errorf("failed to search stock logs: %w", err)
	}
	defer rows.Close()

	return collectStockLogs(rows)
}

// CountSince returns the number of logs created at or after the cutoff.
func (r *stockLogRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM stock_logs WHERE created_at >= $1`

	var count int
	if err := r.db.QueryRowContext(ctx, query, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count stock logs: %w", err)
	}

	return count, nil
}

func collectStockLogs(rows *sql.Rows) ([]*domain.StockLog, error) {
	logs := []*domain.StockLog{}
	for rows.Next() {
		log := &domain.StockLog{}
		err := rows.Scan(
			&log.ID,
			&log.ProductID,
			&log.ProductName,
			&log.Type,
			&log.Quantity,
			&log.Date,
			&log.Time,
			&log.User,
			&log.Notes,
			&log.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock log: %w", err)
		}
		logs = append(logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stock logs: %w", err)
	}

	return logs, nil
}
