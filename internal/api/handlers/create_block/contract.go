package create_block

import (
	"context"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/service/agenda/models"
)

type AgendaService interface {
	CreateBlock(ctx context.Context, req *models.CreateBlockRequest) (*models.BlockResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
