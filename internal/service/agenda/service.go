package agenda

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
	appointmentRepo "github.com/ottoncsilva/fluxo-mobili-sub002/internal/infra/storage/appointment"
	blockRepo "github.com/ottoncsilva/fluxo-mobili-sub002/internal/infra/storage/block"
	settingsRepo "github.com/ottoncsilva/fluxo-mobili-sub002/internal/infra/storage/settings"
	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/service/agenda/models"
	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/ptr"
)

// Service exposes the store agenda: appointments, manual blocks and the
// day view the front desk works from.
type Service struct {
	appointmentRepo AppointmentRepository
	blockRepo       BlockRepository
	holidayRepo     HolidayRepository
	settingsRepo    SettingsRepository
	logger          Logger
}

// NewService creates the agenda service.
func NewService(
	appointmentRepo AppointmentRepository,
	blockRepo BlockRepository,
	holidayRepo HolidayRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		blockRepo:       blockRepo,
		holidayRepo:     holidayRepo,
		settingsRepo:    settingsRepo,
		logger:          logger,
	}
}

// GetAppointment fetches one appointment by its public ID.
func (s *Service) GetAppointment(ctx context.Context, publicID string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetAppointment: fetching appointment public_id=%s", publicID)

	if _, err := uuid.Parse(publicID); err != nil {
		return nil, fmt.Errorf("%w: publicID must be a valid UUID", ErrInvalidInput)
	}

	appointment, err := s.appointmentRepo.GetByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetAppointment: appointment %s not found", publicID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetAppointment: repository error for %s: %v", publicID, err)
		return nil, fmt.Errorf("%w: GetAppointment - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appointment), nil
}

// CancelAppointment cancels one appointment with a reason. Completed and
// already cancelled appointments cannot be cancelled again.
func (s *Service) CancelAppointment(ctx context.Context, req *models.CancelAppointmentRequest) error {
	s.logger.Info("CancelAppointment: cancelling appointment public_id=%s", req.PublicID)

	if _, err := uuid.Parse(req.PublicID); err != nil {
		return fmt.Errorf("%w: publicID must be a valid UUID", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CancellationReason) == "" {
		return fmt.Errorf("%w: cancellationReason is required", ErrInvalidInput)
	}
	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellationReason must not exceed %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	appointment, err := s.appointmentRepo.GetByPublicID(ctx, req.PublicID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("CancelAppointment: appointment %s not found", req.PublicID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("CancelAppointment: repository error for %s: %v", req.PublicID, err)
		return fmt.Errorf("%w: CancelAppointment - repository error: %v", ErrInternal, err)
	}

	if !appointment.CanBeCancelled() {
		s.logger.Warn("CancelAppointment: appointment %s has status %s", req.PublicID, appointment.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, appointment.ID, req.CancellationReason); err != nil {
		s.logger.Error("CancelAppointment: failed to cancel %s: %v", req.PublicID, err)
		return fmt.Errorf("%w: CancelAppointment - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CancelAppointment: cancelled appointment id=%d", appointment.ID)
	return nil
}

// CompleteAppointment marks a visit as done after the measurement happened.
func (s *Service) CompleteAppointment(ctx context.Context, publicID string) error {
	s.logger.Info("CompleteAppointment: completing appointment public_id=%s", publicID)

	if _, err := uuid.Parse(publicID); err != nil {
		return fmt.Errorf("%w: publicID must be a valid UUID", ErrInvalidInput)
	}

	appointment, err := s.appointmentRepo.GetByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("CompleteAppointment: repository error for %s: %v", publicID, err)
		return fmt.Errorf("%w: CompleteAppointment - repository error: %v", ErrInternal, err)
	}

	if !appointment.IsActive() {
		s.logger.Warn("CompleteAppointment: appointment %s has status %s", publicID, appointment.Status)
		return ErrCannotComplete
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, appointment.ID, domain.AppointmentCompleted); err != nil {
		s.logger.Error("CompleteAppointment: failed to update %s: %v", publicID, err)
		return fmt.Errorf("%w: CompleteAppointment - repository error: %v", ErrInternal, err)
	}

	return nil
}

// GetDayAgenda fetches one day: working-day flag, appointments and blocks.
func (s *Service) GetDayAgenda(ctx context.Context, req *models.GetDayAgendaRequest) (*models.DayAgendaResponse, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	s.logger.Info("GetDayAgenda: fetching agenda for %s", req.Date.Format(domain.DateFormat))

	workingDay, err := s.isWorkingDay(ctx, req.Date)
	if err != nil {
		return nil, err
	}

	appointments, err := s.appointmentRepo.GetWithFilter(ctx, domain.AgendaFilter{
		StartDate:       ptr.Ptr(req.Date),
		EndDate:         ptr.Ptr(req.Date),
		IncludeInactive: req.IncludeInactive,
	})
	if err != nil {
		s.logger.Error("GetDayAgenda: failed to load appointments: %v", err)
		return nil, fmt.Errorf("%w: GetDayAgenda - repository error: %v", ErrInternal, err)
	}

	blocks, err := s.blockRepo.GetByDateRange(ctx, req.Date, req.Date)
	if err != nil {
		s.logger.Error("GetDayAgenda: failed to load blocks: %v", err)
		return nil, fmt.Errorf("%w: GetDayAgenda - repository error: %v", ErrInternal, err)
	}

	return &models.DayAgendaResponse{
		Date:         req.Date.Format(domain.DateFormat),
		WorkingDay:   workingDay,
		Appointments: models.FromDomainAppointmentList(appointments),
		Blocks:       models.FromDomainBlockList(blocks),
	}, nil
}

// CreateBlock blocks a window of agenda time. Blocks may overlap existing
// appointments on purpose, e.g. closing the afternoon after a confirmed
// visit the team still intends to honor.
func (s *Service) CreateBlock(ctx context.Context, req *models.CreateBlockRequest) (*models.BlockResponse, error) {
	s.logger.Info("CreateBlock: date=%s, window=%s-%s", req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}
	if !req.StartTime.IsBefore(req.EndTime) {
		return nil, fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Reason) == "" {
		return nil, fmt.Errorf("%w: reason is required", ErrInvalidInput)
	}

	block := &domain.AgendaBlock{
		PublicID:  uuid.NewString(),
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
	}

	created, err := s.blockRepo.Create(ctx, block)
	if err != nil {
		s.logger.Error("CreateBlock: failed to create block: %v", err)
		return nil, fmt.Errorf("%w: CreateBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlock: created block id=%d public_id=%s", created.ID, created.PublicID)
	return models.FromDomainBlock(created), nil
}

// DeleteBlock removes a manual agenda block.
func (s *Service) DeleteBlock(ctx context.Context, publicID string) error {
	s.logger.Info("DeleteBlock: deleting block public_id=%s", publicID)

	if _, err := uuid.Parse(publicID); err != nil {
		return fmt.Errorf("%w: publicID must be a valid UUID", ErrInvalidInput)
	}

	if err := s.blockRepo.Delete(ctx, publicID); err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Warn("DeleteBlock: block %s not found", publicID)
			return ErrBlockNotFound
		}
		s.logger.Error("DeleteBlock: failed to delete %s: %v", publicID, err)
		return fmt.Errorf("%w: DeleteBlock - repository error: %v", ErrInternal, err)
	}

	return nil
}

// isWorkingDay resolves the policy and holiday set for date's year.
func (s *Service) isWorkingDay(ctx context.Context, date time.Time) (bool, error) {
	policy, err := s.settingsRepo.GetWorkingPolicy(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			fallback := domain.DefaultWorkingPolicy()
			policy = &fallback
		} else {
			s.logger.Error("GetDayAgenda: failed to load settings: %v", err)
			return false, fmt.Errorf("%w: failed to load settings: %v", ErrInternal, err)
		}
	}

	entries, err := s.holidayRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetDayAgenda: failed to load holidays: %v", err)
		return false, fmt.Errorf("%w: failed to load holidays: %v", ErrInternal, err)
	}

	holidays, skipped := domain.ResolveHolidays(domain.NationalHolidays, entries, []int{date.Year()})
	for _, sk := range skipped {
		s.logger.Warn("GetDayAgenda: skipped malformed holiday %q: %s", sk.Entry.Name, sk.Reason)
	}

	return domain.IsWorkingDay(date, holidays, *policy), nil
}
