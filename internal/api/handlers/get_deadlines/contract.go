package get_deadlines

import (
	"context"

	evaluateDeadlines "github.com/ottoncsilva/fluxo-mobili-sub002/internal/usecase/evaluate_deadlines"
)

type EvaluateDeadlinesUseCase interface {
	Execute(ctx context.Context) (*evaluateDeadlines.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
