package agenda

import (
	"context"
	"time"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
)

// AppointmentRepository is the appointment storage surface the service needs.
type AppointmentRepository interface {
	GetByPublicID(ctx context.Context, publicID string) (*domain.Appointment, error)
	GetWithFilter(ctx context.Context, filter domain.AgendaFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// BlockRepository is the agenda block storage surface the service needs.
type BlockRepository interface {
	Create(ctx context.Context, block *domain.AgendaBlock) (*domain.AgendaBlock, error)
	GetByDateRange(ctx context.Context, start, end time.Time) ([]*domain.AgendaBlock, error)
	Delete(ctx context.Context, publicID string) error
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
