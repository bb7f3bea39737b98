package create_block

import (
	"errors"
	"net/http"
	"time"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/api/handlers"
	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
	agendaService "github.com/ottoncsilva/fluxo-mobili-sub002/internal/service/agenda"
	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/service/agenda/models"
	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/types"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDate        = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidTime        = "formato de horário inválido, esperado HH:MM"
	msgInvalidInput       = "dados do bloqueio inválidos"
)

// createBlockBody is the HTTP body with string-typed date and times.
type createBlockBody struct {
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "13:00"
	EndTime   string `json:"endTime"`   // "18:00"
	Reason    string `json:"reason"`
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

// Handle POST /api/v1/agenda/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var body createBlockBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /agenda/blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, body.Date)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startTime, err := types.NewTimeStringFromString(body.StartTime)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	endTime, err := types.NewTimeStringFromString(body.EndTime)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.service.CreateBlock(r.Context(), &models.CreateBlockRequest{
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Reason:    body.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, agendaService.ErrInvalidInput):
			h.logger.Warn("POST /agenda/blocks - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /agenda/blocks - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /agenda/blocks - Block created: public_id=%s, date=%s", result.PublicID, body.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
