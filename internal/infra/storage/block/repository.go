package block

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/dbmetrics"
	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/psqlbuilder"
)

// Repository persists manual agenda blocks.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates an agenda-block repository over db.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new block.
func (r *Repository) Create(ctx context.Context, block *domain.AgendaBlock) (*domain.AgendaBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("agenda_blocks").
		Columns("public_id", "block_date", "start_time", "end_time", "reason").
		Values(block.PublicID, block.Date, block.StartTime, block.EndTime, block.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&block.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	block.CreatedAt = createdAt.Time

	return block, nil
}

// GetByDateRange fetches every block intersecting [start, end]. Inside a
// managed transaction a single-date read is locked FOR UPDATE, matching the
// appointment repository's locking discipline.
func (r *Repository) GetByDateRange(ctx context.Context, start, end time.Time) ([]*domain.AgendaBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id", "public_id", "block_date", "start_time", "end_time", "reason", "created_at",
	).
		From("agenda_blocks").
		Where(squirrel.GtOrEq{"block_date": start}).
		Where(squirrel.LtOrEq{"block_date": end}).
		OrderBy("block_date ASC, start_time ASC")

	if dbmetrics.IsInTransaction(ctx) && start.Equal(end) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.AgendaBlock, 0)
	for rows.Next() {
		var block domain.AgendaBlock
		var createdAt sql.NullTime

		err := rows.Scan(
			&block.ID,
			&block.PublicID,
			&block.Date,
			&block.StartTime,
			&block.EndTime,
			&block.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByDateRange - scan row: %v", ErrScanRow, err)
		}
		block.CreatedAt = createdAt.Time
		blocks = append(blocks, &block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

// Delete removes a block by its UUID.
func (r *Repository) Delete(ctx context.Context, publicID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("agenda_blocks").
		Where(squirrel.Eq{"public_id": publicID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBlockNotFound
	}
	return nil
}
