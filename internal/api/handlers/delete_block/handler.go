package delete_block

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/api/handlers"
	agendaService "github.com/ottoncsilva/fluxo-mobili-sub002/internal/service/agenda"
)

const (
	msgInvalidPublicID = "identificador do bloqueio inválido"
	msgBlockNotFound   = "bloqueio não encontrado"
)

type Handler struct {
	service AgendaService
	logger  Logger
}

func NewHandler(service AgendaService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/agenda/blocks/{publicId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	publicID := mux.Vars(r)["publicId"]

	err := h.service.DeleteBlock(r.Context(), publicID)
	if err != nil {
		switch {
		case errors.Is(err, agendaService.ErrBlockNotFound):
			h.logger.Warn("DELETE /agenda/blocks/%s - Not found", publicID)
			handlers.RespondNotFound(w, msgBlockNotFound)

		case errors.Is(err, agendaService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPublicID)

		default:
			h.logger.Error("DELETE /agenda/blocks/%s - Failed: %v", publicID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /agenda/blocks/%s - Deleted", publicID)
	handlers.RespondNoContent(w)
}
