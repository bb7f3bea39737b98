package get_timeline

import (
	"errors"
	"net/http"
	"time"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/api/handlers"
	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
	getTimeline "github.com/ottoncsilva/fluxo-mobili-sub002/internal/usecase/get_timeline"
)

const (
	msgInvalidDates   = "parâmetros start e end são obrigatórios no formato YYYY-MM-DD"
	msgInvalidInput   = "janela de datas inválida"
	msgWindowTooLarge = "a janela solicitada é grande demais"
)

type Handler struct {
	useCase GetTimelineUseCase
	logger  Logger
}

func NewHandler(useCase GetTimelineUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/timeline?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	start, err := time.Parse(domain.DateFormat, query.Get("start"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	end, err := time.Parse(domain.DateFormat, query.Get("end"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getTimeline.Request{
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		switch {
		case errors.Is(err, getTimeline.ErrWindowTooLarge):
			h.logger.Warn("GET /timeline - Window too large: %s to %s", query.Get("start"), query.Get("end"))
			handlers.RespondBadRequest(w, msgWindowTooLarge)

		case errors.Is(err, getTimeline.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /timeline - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
