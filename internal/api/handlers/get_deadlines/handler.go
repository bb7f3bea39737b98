package get_deadlines

import (
	"net/http"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/api/handlers"
)

type Handler struct {
	useCase EvaluateDeadlinesUseCase
	logger  Logger
}

func NewHandler(useCase EvaluateDeadlinesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/deadlines
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /deadlines - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
