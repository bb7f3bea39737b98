package settings

import (
	"context"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
)

// SettingsRepository persists the scheduling settings row.
type SettingsRepository interface {
	GetWorkingPolicy(ctx context.Context) (*domain.WorkingPolicy, error)
	SaveWorkingPolicy(ctx context.Context, policy domain.WorkingPolicy) error
}

// HolidayRepository persists the store holiday table.
type HolidayRepository interface {
	GetAll(ctx context.Context) ([]domain.HolidayEntry, error)
	ReplaceAll(ctx context.Context, entries []domain.HolidayEntry) error
}

// TransactionManager runs fn inside a serializable transaction. Holiday
// replacement is a delete-then-insert and must be atomic.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the application logger surface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
