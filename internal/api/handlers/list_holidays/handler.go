package list_holidays

import (
	"net/http"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/api/handlers"
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

// Handle GET /api/v1/settings/holidays
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListHolidays(r.Context())
	if err != nil {
		h.logger.Error("GET /settings/holidays - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
