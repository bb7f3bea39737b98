package reschedule_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/api/handlers"
	rescheduleAppointment "github.com/ottoncsilva/fluxo-mobili-sub002/internal/usecase/reschedule_appointment"
)

const (
	msgInvalidRequestBody  = "corpo da requisição inválido"
	msgInvalidDate         = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidInput        = "dados de reagendamento inválidos"
	msgAppointmentNotFound = "visita não encontrada"
	msgCannotReschedule    = "esta visita não pode ser reagendada"
	msgDateInPast          = "a nova data está no passado"
	msgNonWorkingDay       = "a nova data não é um dia útil"
	msgOutsideWorkingHours = "o novo horário está fora do expediente da loja"
	msgScheduleConflict    = "já existe uma visita ou bloqueio neste horário"
)

type Handler struct {
	useCase RescheduleAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{publicId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	publicID := mux.Vars(r)["publicId"]

	var req RescheduleAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/%s/reschedule - Invalid request body: %v", publicID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(publicID)
	if err != nil {
		h.logger.Warn("PATCH /appointments/%s/reschedule - Failed to parse request: %v", publicID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/%s/reschedule - Not found", publicID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, rescheduleAppointment.ErrCannotReschedule):
			h.logger.Warn("PATCH /appointments/%s/reschedule - Cannot reschedule", publicID)
			handlers.RespondError(w, http.StatusConflict, msgCannotReschedule)

		case errors.Is(err, rescheduleAppointment.ErrScheduleConflict):
			h.logger.Warn("PATCH /appointments/%s/reschedule - Conflict on %s %s", publicID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgScheduleConflict)

		case errors.Is(err, rescheduleAppointment.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, rescheduleAppointment.ErrNonWorkingDay):
			handlers.RespondBadRequest(w, msgNonWorkingDay)

		case errors.Is(err, rescheduleAppointment.ErrOutsideWorkingHours):
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, rescheduleAppointment.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/%s/reschedule - Invalid input: %v", publicID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /appointments/%s/reschedule - Failed: %v", publicID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/%s/reschedule - Moved to %s %s", publicID, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
