package apply_step_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/api/handlers"
	applyStepSchedule "github.com/ottoncsilva/fluxo-mobili-sub002/internal/usecase/apply_step_schedule"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidProjectID   = "identificador do projeto inválido"
	msgInvalidDate        = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidInput       = "dados de agendamento inválidos"
	msgProjectNotFound    = "projeto não encontrado"
	msgTeamNotFound       = "equipe não encontrada"
	msgInvalidTransition  = "transição de status inválida"
	msgNonWorkingDay      = "a data selecionada não é um dia útil"
)

type Handler struct {
	useCase ApplyStepScheduleUseCase
	logger  Logger
}

func NewHandler(useCase ApplyStepScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/projects/{projectId}/tracks/{track}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	track := vars["track"]

	projectID, err := strconv.ParseInt(vars["projectId"], 10, 64)
	if err != nil || projectID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidProjectID)
		return
	}

	var req ApplyStepScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /projects/%d/tracks/%s - Invalid request body: %v", projectID, track, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(projectID, track)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, applyStepSchedule.ErrProjectNotFound):
			h.logger.Warn("PATCH /projects/%d/tracks/%s - Project not found", projectID, track)
			handlers.RespondNotFound(w, msgProjectNotFound)

		case errors.Is(err, applyStepSchedule.ErrTeamNotFound):
			h.logger.Warn("PATCH /projects/%d/tracks/%s - Team not found", projectID, track)
			handlers.RespondNotFound(w, msgTeamNotFound)

		case errors.Is(err, applyStepSchedule.ErrInvalidTransition):
			h.logger.Warn("PATCH /projects/%d/tracks/%s - Invalid transition: %v", projectID, track, err)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		case errors.Is(err, applyStepSchedule.ErrNonWorkingDay):
			handlers.RespondBadRequest(w, msgNonWorkingDay)

		case errors.Is(err, applyStepSchedule.ErrInvalidInput):
			h.logger.Warn("PATCH /projects/%d/tracks/%s - Invalid input: %v", projectID, track, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /projects/%d/tracks/%s - Failed: %v", projectID, track, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /projects/%d/tracks/%s - Status now %s", projectID, track, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
