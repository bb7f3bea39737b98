package complete_appointment

import "context"

type AgendaService interface {
	CompleteAppointment(ctx context.Context, publicID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
