package get_day_agenda

import (
	"context"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/service/agenda/models"
)

type AgendaService interface {
	GetDayAgenda(ctx context.Context, req *models.GetDayAgendaRequest) (*models.DayAgendaResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
