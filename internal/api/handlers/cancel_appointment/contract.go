package cancel_appointment

import (
	"context"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/service/agenda/models"
)

type AgendaService interface {
	CancelAppointment(ctx context.Context, req *models.CancelAppointmentRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
