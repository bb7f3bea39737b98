package get_timeline

import (
	"context"
	"time"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
)

// ProjectRepository reads projects with an assembly date inside the window.
type ProjectRepository interface {
	GetScheduledInWindow(ctx context.Context, start, end time.Time) ([]*domain.Project, error)
}

// AppointmentRepository reads agenda appointments.
type AppointmentRepository interface {
	GetWithFilter(ctx context.Context, filter domain.AgendaFilter) ([]*domain.Appointment, error)
}

// HolidayRepository reads the store holiday table.
type HolidayRepository interface {
	GetAll(ctx context.Context) ([]domain.HolidayEntry, error)
}

// SettingsRepository reads the working-day policy.
type SettingsRepository interface {
	GetWorkingPolicy(ctx context.Context) (*domain.WorkingPolicy, error)
}

// Logger is the application logger surface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
