package evaluate_deadlines

import (
	"context"
	"time"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
)

// ProjectRepository reads the active workflow batch.
type ProjectRepository interface {
	GetActive(ctx context.Context) ([]*domain.Project, error)
}

// HolidayRepository reads the store holiday table.
type HolidayRepository interface {
	GetAll(ctx context.Context) ([]domain.HolidayEntry, error)
}

// SettingsRepository reads the working-day policy.
type SettingsRepository interface {
	GetWorkingPolicy(ctx context.Context) (*domain.WorkingPolicy, error)
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
