package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/api/handlers"
	agendaService "github.com/ottoncsilva/fluxo-mobili-sub002/internal/service/agenda"
	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/service/agenda/models"
)

const (
	msgInvalidRequestBody  = "corpo da requisição inválido"
	msgInvalidInput        = "dados de cancelamento inválidos"
	msgAppointmentNotFound = "visita não encontrada"
	msgCannotCancel        = "esta visita não pode ser cancelada"
)

// cancelRequestBody is the HTTP body; the public ID comes from the path.
type cancelRequestBody struct {
	CancellationReason string `json:"cancellationReason"`
}

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

// Handle PATCH /api/v1/appointments/{publicId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	publicID := mux.Vars(r)["publicId"]

	var body cancelRequestBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("PATCH /appointments/%s/cancel - Invalid request body: %v", publicID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.CancelAppointment(r.Context(), &models.CancelAppointmentRequest{
		PublicID:           publicID,
		CancellationReason: body.CancellationReason,
	})
	if err != nil {
		switch {
		case errors.Is(err, agendaService.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/%s/cancel - Not found", publicID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, agendaService.ErrCannotCancel):
			h.logger.Warn("PATCH /appointments/%s/cancel - Cannot cancel", publicID)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		case errors.Is(err, agendaService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /appointments/%s/cancel - Failed: %v", publicID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/%s/cancel - Cancelled", publicID)
	handlers.RespondNoContent(w)
}
