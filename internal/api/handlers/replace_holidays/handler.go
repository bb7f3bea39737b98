package replace_holidays

import (
	"errors"
	"net/http"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/api/handlers"
	settingsService "github.com/ottoncsilva/fluxo-mobili-sub002/internal/service/settings"
	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidInput       = "lista de feriados inválida"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/settings/holidays
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ReplaceHolidaysRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings/holidays - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ReplaceHolidays(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settingsService.ErrInvalidInput):
			h.logger.Warn("PUT /settings/holidays - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /settings/holidays - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /settings/holidays - Holiday table replaced with %d entry(ies)", len(result.Holidays))
	handlers.RespondJSON(w, http.StatusOK, result)
}
