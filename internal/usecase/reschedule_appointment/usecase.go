package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
	appointmentRepo "github.com/ottoncsilva/fluxo-mobili-sub002/internal/infra/storage/appointment"
	settingsRepo "github.com/ottoncsilva/fluxo-mobili-sub002/internal/infra/storage/settings"
	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/ptr"
)

// UseCase moves an appointment to a new agenda window.
type UseCase struct {
	appointmentRepo AppointmentRepository
	blockRepo       BlockRepository
	holidayRepo     HolidayRepository
	settingsRepo    SettingsRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase wires the use case dependencies.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	blockRepo BlockRepository,
	holidayRepo HolidayRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		blockRepo:       blockRepo,
		holidayRepo:     holidayRepo,
		settingsRepo:    settingsRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute reschedules the appointment inside a serializable transaction. The
// appointment's own interval is excluded from the conflict check so moving it
// within its current window never collides with itself.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: public_id=%s, new_date=%s, new_time=%s",
		req.PublicID, req.NewDate.Format(domain.DateFormat), req.NewStartTime)

	// 1. Validate request shape
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Current time
	now := uc.timeProvider.Now()
	if err := validateDateNotPast(req.NewDate, now); err != nil {
		uc.logger.Warn("RescheduleAppointment: date %s is in the past", req.NewDate.Format(domain.DateFormat))
		return nil, err
	}

	var result *domain.Appointment

	// 3. Storage work in a serializable transaction
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Load the appointment
		current, err := uc.appointmentRepo.GetByPublicID(txCtx, req.PublicID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("RescheduleAppointment: appointment %s not found", req.PublicID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("RescheduleAppointment: failed to load appointment %s: %v", req.PublicID, err)
			return fmt.Errorf("%w: failed to load appointment: %v", ErrInternal, err)
		}

		// 3.2. Only pending and confirmed appointments move
		if !current.CanBeRescheduled() {
			uc.logger.Warn("RescheduleAppointment: appointment %s has status %s", req.PublicID, current.Status)
			return ErrCannotReschedule
		}

		// 3.3. Working-day policy and holidays for the target date
		policy, err := uc.loadPolicy(txCtx)
		if err != nil {
			return err
		}

		holidays, err := uc.loadHolidays(txCtx, req.NewDate.Year())
		if err != nil {
			return err
		}

		if !domain.IsWorkingDay(req.NewDate, holidays, policy) {
			uc.logger.Warn("RescheduleAppointment: %s is not a working day", req.NewDate.Format(domain.DateFormat))
			return ErrNonWorkingDay
		}

		// 3.4. Build the moved appointment
		moved := *current
		moved.Date = req.NewDate
		moved.StartTime = req.NewStartTime
		if req.DurationMinutes != nil {
			moved.DurationMinutes = *req.DurationMinutes
		}

		candidateInterval, err := moved.Interval()
		if err != nil {
			if errors.Is(err, domain.ErrDegenerateInterval) {
				return fmt.Errorf("%w: appointment window is empty", ErrInvalidInput)
			}
			return fmt.Errorf("%w: failed to build interval: %v", ErrInternal, err)
		}

		if err := validateWithinWorkingHours(candidateInterval, req.NewDate, policy); err != nil {
			uc.logger.Warn("RescheduleAppointment: window %s outside working hours", req.NewStartTime)
			return err
		}

		// 3.5. Conflict check against the target day, excluding itself
		existing, err := uc.collectDayIntervals(txCtx, req.NewDate)
		if err != nil {
			return err
		}

		hasConflict, err := domain.HasConflict(candidateInterval, existing, current.PublicID)
		if err != nil {
			uc.logger.Error("RescheduleAppointment: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}
		if hasConflict {
			uc.logger.Warn("RescheduleAppointment: conflict on %s starting %s",
				req.NewDate.Format(domain.DateFormat), req.NewStartTime)
			return ErrScheduleConflict
		}

		// 3.6. Persist the move
		if err := uc.appointmentRepo.Reschedule(txCtx, current.ID, &moved); err != nil {
			uc.logger.Error("RescheduleAppointment: failed to persist move: %v", err)
			return fmt.Errorf("%w: failed to persist move: %v", ErrInternal, err)
		}

		result = &moved
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleAppointment: moved appointment id=%d to %s %s",
		result.ID, result.Date.Format(domain.DateFormat), result.StartTime)

	return &Response{
		ID:              result.ID,
		PublicID:        result.PublicID,
		ProjectID:       result.ProjectID,
		CustomerName:    result.CustomerName,
		CustomerPhone:   result.CustomerPhone,
		Address:         result.Address,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

func (uc *UseCase) loadPolicy(ctx context.Context) (domain.WorkingPolicy, error) {
	policy, err := uc.settingsRepo.GetWorkingPolicy(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Info("RescheduleAppointment: no saved settings, using default policy")
			return domain.DefaultWorkingPolicy(), nil
		}
		uc.logger.Error("RescheduleAppointment: failed to load settings: %v", err)
		return domain.WorkingPolicy{}, fmt.Errorf("%w: failed to load settings: %v", ErrInternal, err)
	}
	return *policy, nil
}

func (uc *UseCase) loadHolidays(ctx context.Context, year int) (domain.HolidaySet, error) {
	entries, err := uc.holidayRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("RescheduleAppointment: failed to load holidays: %v", err)
		return nil, fmt.Errorf("%w: failed to load holidays: %v", ErrInternal, err)
	}

	holidays, skipped := domain.ResolveHolidays(domain.NationalHolidays, entries, []int{year})
	for _, s := range skipped {
		uc.logger.Warn("RescheduleAppointment: skipped malformed holiday %q: %s", s.Entry.Name, s.Reason)
	}
	return holidays, nil
}

func (uc *UseCase) collectDayIntervals(ctx context.Context, date time.Time) ([]domain.Interval, error) {
	filter := domain.AgendaFilter{
		StartDate:       ptr.Ptr(date),
		EndDate:         ptr.Ptr(date),
		IncludeInactive: false,
	}

	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("RescheduleAppointment: failed to load appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to load appointments: %v", ErrInternal, err)
	}

	blocks, err := uc.blockRepo.GetByDateRange(ctx, date, date)
	if err != nil {
		uc.logger.Error("RescheduleAppointment: failed to load blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to load blocks: %v", ErrInternal, err)
	}

	intervals := make([]domain.Interval, 0, len(appointments)+len(blocks))
	for _, a := range appointments {
		interval, err := a.Interval()
		if err != nil {
			uc.logger.Warn("RescheduleAppointment: skipping appointment %s with bad interval: %v", a.PublicID, err)
			continue
		}
		intervals = append(intervals, interval)
	}
	for _, b := range blocks {
		interval, err := b.Interval()
		if err != nil {
			uc.logger.Warn("RescheduleAppointment: skipping block %s with bad interval: %v", b.PublicID, err)
			continue
		}
		intervals = append(intervals, interval)
	}

	return intervals, nil
}
