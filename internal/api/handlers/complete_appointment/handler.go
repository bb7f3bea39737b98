package complete_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/api/handlers"
	agendaService "github.com/ottoncsilva/fluxo-mobili-sub002/internal/service/agenda"
)

const (
	msgInvalidPublicID     = "identificador da visita inválido"
	msgAppointmentNotFound = "visita não encontrada"
	msgCannotComplete      = "esta visita não pode ser concluída"
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

// Handle PATCH /api/v1/appointments/{publicId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	publicID := mux.Vars(r)["publicId"]

	err := h.service.CompleteAppointment(r.Context(), publicID)
	if err != nil {
		switch {
		case errors.Is(err, agendaService.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/%s/complete - Not found", publicID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, agendaService.ErrCannotComplete):
			h.logger.Warn("PATCH /appointments/%s/complete - Not active", publicID)
			handlers.RespondError(w, http.StatusConflict, msgCannotComplete)

		case errors.Is(err, agendaService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPublicID)

		default:
			h.logger.Error("PATCH /appointments/%s/complete - Failed: %v", publicID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/%s/complete - Completed", publicID)
	handlers.RespondNoContent(w)
}
