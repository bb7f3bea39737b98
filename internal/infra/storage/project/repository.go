package project

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

var selectColumns = []string{
	"id",
	"code",
	"customer_name",
	"current_step_id",
	"step_entered_at",
	"assembly_status",
	"assembly_forecast_date",
	"assembly_scheduled_date",
	"assembly_team_id",
	"assembly_team_name",
	"post_assembly_status",
	"post_assembly_forecast_date",
	"post_assembly_scheduled_date",
	"post_assembly_team_id",
	"post_assembly_team_name",
	"assistance_status",
	"assistance_forecast_date",
	"assistance_scheduled_date",
	"assistance_team_id",
	"assistance_team_name",
	"active",
	"created_at",
	"updated_at",
}

// trackColumnPrefix maps a schedule track to its column prefix.
func trackColumnPrefix(track domain.ScheduleTrack) (string, error) {
	switch track {
	case domain.TrackAssembly:
		return "assembly", nil
	case domain.TrackPostAssembly:
		return "post_assembly", nil
	case domain.TrackAssistance:
		return "assistance", nil
	default:
		return "", domain.ErrUnknownTrack
	}
}

// Repository persists workflow batch records.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a project repository over db.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID fetches one project.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("projects").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	project, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan project: %v", ErrScanRow, err)
	}
	return project, nil
}

// GetActive fetches every project still moving through the workflow, ordered
// for the SLA board.
func (r *Repository) GetActive(ctx context.Context) ([]*domain.Project, error) {
	return r.getMany(ctx, squirrel.Eq{"active": true})
}

// GetScheduledInWindow fetches active projects whose assembly forecast or
// scheduled date falls inside [start, end], for the timeline view.
func (r *Repository) GetScheduledInWindow(ctx context.Context, start, end time.Time) ([]*domain.Project, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	window := squirrel.Or{
		squirrel.And{
			squirrel.GtOrEq{"assembly_scheduled_date": start},
			squirrel.LtOrEq{"assembly_scheduled_date": end},
		},
		squirrel.And{
			squirrel.GtOrEq{"assembly_forecast_date": start},
			squirrel.LtOrEq{"assembly_forecast_date": end},
		},
	}

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("projects").
		Where(squirrel.Eq{"active": true}).
		Where(window).
		OrderBy("code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetScheduledInWindow - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetScheduledInWindow - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanProjects(rows)
}

func (r *Repository) getMany(ctx context.Context, where squirrel.Eq) ([]*domain.Project, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("projects").
		Where(where).
		OrderBy("code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getMany - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getMany - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanProjects(rows)
}

// UpdateTrack persists one scheduling track of a project.
func (r *Repository) UpdateTrack(ctx context.Context, id int64, track domain.ScheduleTrack, record domain.SchedulingRecord) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	prefix, err := trackColumnPrefix(track)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Update("projects").
		Set(prefix+"_status", record.Status).
		Set(prefix+"_forecast_date", record.ForecastDate).
		Set(prefix+"_scheduled_date", record.ScheduledDate).
		Set(prefix+"_team_id", record.TeamID).
		Set(prefix+"_team_name", record.TeamName).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateTrack - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateTrack - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateTrack - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var project domain.Project
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&project.ID,
		&project.Code,
		&project.CustomerName,
		&project.CurrentStepID,
		&project.StepEnteredAt,
		&project.Assembly.Status,
		&project.Assembly.ForecastDate,
		&project.Assembly.ScheduledDate,
		&project.Assembly.TeamID,
		&project.Assembly.TeamName,
		&project.PostAssembly.Status,
		&project.PostAssembly.ForecastDate,
		&project.PostAssembly.ScheduledDate,
		&project.PostAssembly.TeamID,
		&project.PostAssembly.TeamName,
		&project.Assistance.Status,
		&project.Assistance.ForecastDate,
		&project.Assistance.ScheduledDate,
		&project.Assistance.TeamID,
		&project.Assistance.TeamName,
		&project.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	project.CreatedAt = createdAt.Time
	project.UpdatedAt = updatedAt.Time
	return &project, nil
}

func scanProjects(rows *sql.Rows) ([]*domain.Project, error) {
	projects := make([]*domain.Project, 0)

	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanProjects - scan row: %v", ErrScanRow, err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanProjects - rows error: %v", ErrScanRow, err)
	}

	return projects, nil
}
