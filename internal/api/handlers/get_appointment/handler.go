package get_appointment

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

// Handle GET /api/v1/appointments/{publicId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	publicID := mux.Vars(r)["publicId"]

	result, err := h.service.GetAppointment(r.Context(), publicID)
	if err != nil {
		switch {
		case errors.Is(err, agendaService.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/%s - Not found", publicID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, agendaService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPublicID)

		default:
			h.logger.Error("GET /appointments/%s - Failed: %v", publicID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
