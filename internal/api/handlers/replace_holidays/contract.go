package replace_holidays

import (
	"context"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/service/settings/models"
)

type SettingsService interface {
	ReplaceHolidays(ctx context.Context, req *models.ReplaceHolidaysRequest) (*models.HolidayListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
