package holiday

import (
	"context"
	"fmt"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/dbmetrics"
	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/psqlbuilder"
)

// Repository persists store-configured holiday entries. Dates are stored as
// text because fixed entries are MM-DD, not full dates; parsing happens in
// the domain resolver, which skips malformed rows instead of failing.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a holiday repository over db.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll fetches every configured holiday entry.
func (r *Repository) GetAll(ctx context.Context) ([]domain.HolidayEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("holiday_date", "name", "kind", "year").
		From("store_holidays").
		OrderBy("holiday_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]domain.HolidayEntry, 0)
	for rows.Next() {
		var entry domain.HolidayEntry
		if err := rows.Scan(&entry.Date, &entry.Name, &entry.Kind, &entry.Year); err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}

// ReplaceAll swaps the whole holiday table for the given entries. The settings
// screen always submits the full list, so replace-all keeps the storage dumb.
// Must run inside a managed transaction.
func (r *Repository) ReplaceAll(ctx context.Context, entries []domain.HolidayEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("store_holidays").ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceAll - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceAll - execute delete: %v", ErrExecQuery, err)
	}

	if len(entries) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("store_holidays").
		Columns("holiday_date", "name", "kind", "year")
	for _, entry := range entries {
		insertBuilder = insertBuilder.Values(entry.Date, entry.Name, entry.Kind, entry.Year)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceAll - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceAll - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
