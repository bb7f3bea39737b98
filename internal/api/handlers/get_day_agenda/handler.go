package get_day_agenda

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/api/handlers"
	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
	agendaService "github.com/ottoncsilva/fluxo-mobili-sub002/internal/service/agenda"
	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/service/agenda/models"
)

const (
	msgInvalidDate  = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidInput = "parâmetros inválidos"
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

// Handle GET /api/v1/agenda/{date}
// Optional query parameter: includeInactive=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := mux.Vars(r)["date"]

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /agenda/%s - Invalid date: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	includeInactive := r.URL.Query().Get("includeInactive") == "true"

	result, err := h.service.GetDayAgenda(r.Context(), &models.GetDayAgendaRequest{
		Date:            date,
		IncludeInactive: includeInactive,
	})
	if err != nil {
		switch {
		case errors.Is(err, agendaService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /agenda/%s - Failed: %v", rawDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
