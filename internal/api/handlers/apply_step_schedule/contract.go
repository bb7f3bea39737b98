package apply_step_schedule

import (
	"context"

	applyStepSchedule "github.com/ottoncsilva/fluxo-mobili-sub002/internal/usecase/apply_step_schedule"
)

type ApplyStepScheduleUseCase interface {
	Execute(ctx context.Context, req *applyStepSchedule.Request) (*applyStepSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
