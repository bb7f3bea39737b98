package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/dbmetrics"
	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/psqlbuilder"
)

// The working policy is a single row; the fixed ID keeps upserts trivial.
const settingsRowID = 1

// Repository persists the store working policy.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a settings repository over db.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWorkingPolicy fetches the saved policy, or ErrSettingsNotFound when the
// store never saved one.
func (r *Repository) GetWorkingPolicy(ctx context.Context) (*domain.WorkingPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"work_on_saturdays", "work_on_sundays", "day_start", "day_end",
	).
		From("scheduling_settings").
		Where(squirrel.Eq{"id": settingsRowID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingPolicy - build select query: %v", ErrBuildQuery, err)
	}

	var policy domain.WorkingPolicy
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&policy.WorkOnSaturdays,
		&policy.WorkOnSundays,
		&policy.DayStart,
		&policy.DayEnd,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingPolicy - scan settings: %v", ErrScanRow, err)
	}

	return &policy, nil
}

// SaveWorkingPolicy upserts the policy row.
func (r *Repository) SaveWorkingPolicy(ctx context.Context, policy domain.WorkingPolicy) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("scheduling_settings").
		Columns("id", "work_on_saturdays", "work_on_sundays", "day_start", "day_end").
		Values(settingsRowID, policy.WorkOnSaturdays, policy.WorkOnSundays, policy.DayStart, policy.DayEnd).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			work_on_saturdays = EXCLUDED.work_on_saturdays,
			work_on_sundays = EXCLUDED.work_on_sundays,
			day_start = EXCLUDED.day_start,
			day_end = EXCLUDED.day_end,
			updated_at = NOW()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SaveWorkingPolicy - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SaveWorkingPolicy - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}
