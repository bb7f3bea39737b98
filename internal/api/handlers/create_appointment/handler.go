package create_appointment

import (
	"errors"
	"net/http"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/api/handlers"
	createAppointment "github.com/ottoncsilva/fluxo-mobili-sub002/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody  = "corpo da requisição inválido"
	msgInvalidDate         = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidInput        = "dados da visita inválidos"
	msgDateInPast          = "a data da visita está no passado"
	msgNonWorkingDay       = "a data selecionada não é um dia útil"
	msgOutsideWorkingHours = "o horário está fora do expediente da loja"
	msgScheduleConflict    = "já existe uma visita ou bloqueio neste horário"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrScheduleConflict):
			h.logger.Warn("POST /appointments - Conflict: customer=%s, date=%s", req.CustomerName, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgScheduleConflict)

		case errors.Is(err, createAppointment.ErrNonWorkingDay):
			h.logger.Warn("POST /appointments - Non-working day: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgNonWorkingDay)

		case errors.Is(err, createAppointment.ErrDateInPast):
			h.logger.Warn("POST /appointments - Date in past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("POST /appointments - Outside working hours: time=%s", req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: customer=%s, error=%v",
				req.CustomerName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: public_id=%s, date=%s", result.PublicID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
