package apply_step_schedule

import (
	"context"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/integrations/teamservice"
)

// ProjectRepository is the project storage surface this use case needs.
type ProjectRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	UpdateTrack(ctx context.Context, id int64, track domain.ScheduleTrack, record domain.SchedulingRecord) error
}

// HolidayRepository reads the store holiday table.
type HolidayRepository interface {
	GetAll(ctx context.Context) ([]domain.HolidayEntry, error)
}

// SettingsRepository reads the working-day policy.
type SettingsRepository interface {
	GetWorkingPolicy(ctx context.Context) (*domain.WorkingPolicy, error)
}

// TeamServiceClient resolves crew display names from the staffing service.
type TeamServiceClient interface {
	GetTeamWithGracefulDegradation(ctx context.Context, teamID int64) (*teamservice.Team, error)
}

// TransactionManager runs fn inside a serializable transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the application logger surface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
