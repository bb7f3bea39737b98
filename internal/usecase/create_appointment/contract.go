package create_appointment

import (
	"context"
	"time"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
)

// AppointmentRepository is the appointment storage surface this use case needs.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	GetWithFilter(ctx context.Context, filter domain.AgendaFilter) ([]*domain.Appointment, error)
}

// BlockRepository reads manual agenda blocks.
type BlockRepository interface {
	GetByDateRange(ctx context.Context, start, end time.Time) ([]*domain.AgendaBlock, error)
}

// HolidayRepository reads the store holiday table.
type HolidayRepository interface {
	GetAll(ctx context.Context) ([]domain.HolidayEntry, error)
}

// SettingsRepository reads the working-day policy.
type SettingsRepository interface {
	GetWorkingPolicy(ctx context.Context) (*domain.WorkingPolicy, error)
}

// TransactionManager runs fn inside a serializable transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider abstracts the current time for testing.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the application logger surface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
