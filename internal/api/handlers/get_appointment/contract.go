package get_appointment

import (
	"context"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/service/agenda/models"
)

type AgendaService interface {
	GetAppointment(ctx context.Context, publicID string) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
