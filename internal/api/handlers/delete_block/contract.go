package delete_block

import "context"

type AgendaService interface {
	DeleteBlock(ctx context.Context, publicID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
