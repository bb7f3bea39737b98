package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
	settingsRepo "github.com/ottoncsilva/fluxo-mobili-sub002/internal/infra/storage/settings"
	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/ptr"
)

// UseCase creates a measurement appointment on the store agenda.
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

// Execute creates the appointment inside a serializable transaction so two
// collaborators cannot book the same window concurrently.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: customer=%s, date=%s, time=%s",
		req.CustomerName, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Validate request shape
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Current time and derived defaults
	now := uc.timeProvider.Now()
	if err := validateDateNotPast(req.Date, now); err != nil {
		uc.logger.Warn("CreateAppointment: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultAppointmentDurationMinutes
	}

	var result *domain.Appointment

	// 3. Storage work in a serializable transaction
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Working-day policy, store default when none saved yet
		policy, err := uc.loadPolicy(txCtx)
		if err != nil {
			return err
		}

		// 3.2. Holiday set for the requested year
		holidays, err := uc.loadHolidays(txCtx, req.Date.Year())
		if err != nil {
			return err
		}

		// 3.3. The agenda only opens on working days
		if !domain.IsWorkingDay(req.Date, holidays, policy) {
			uc.logger.Warn("CreateAppointment: %s is not a working day", req.Date.Format(domain.DateFormat))
			return ErrNonWorkingDay
		}

		// 3.4. Normalize the candidate into an interval
		candidate := &domain.Appointment{
			PublicID:        uuid.NewString(),
			ProjectID:       req.ProjectID,
			CustomerName:    req.CustomerName,
			CustomerPhone:   req.CustomerPhone,
			Address:         req.Address,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: duration,
			Status:          domain.AppointmentPending,
			Notes:           req.Notes,
		}

		candidateInterval, err := candidate.Interval()
		if err != nil {
			if errors.Is(err, domain.ErrDegenerateInterval) {
				return fmt.Errorf("%w: appointment window is empty", ErrInvalidInput)
			}
			return fmt.Errorf("%w: failed to build interval: %v", ErrInternal, err)
		}

		if err := validateWithinWorkingHours(candidateInterval, req.Date, policy); err != nil {
			uc.logger.Warn("CreateAppointment: window %s outside working hours", req.StartTime)
			return err
		}

		// 3.5. Existing intervals on that date, locked FOR UPDATE
		existing, err := uc.collectDayIntervals(txCtx, req.Date)
		if err != nil {
			return err
		}

		// 3.6. Conflict check, open intervals so touching edges is fine
		conflicts, err := domain.FindConflicts(candidateInterval, existing, "")
		if err != nil {
			uc.logger.Error("CreateAppointment: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}
		if len(conflicts) > 0 {
			uc.logger.Warn("CreateAppointment: %d conflict(s) on %s starting %s",
				len(conflicts), req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrScheduleConflict
		}

		// 3.7. Persist
		created, err := uc.appointmentRepo.Create(txCtx, candidate)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d public_id=%s", result.ID, result.PublicID)

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

// loadPolicy fetches the stored working-day policy, falling back to the
// store default when settings were never saved.
func (uc *UseCase) loadPolicy(ctx context.Context) (domain.WorkingPolicy, error) {
	policy, err := uc.settingsRepo.GetWorkingPolicy(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Info("CreateAppointment: no saved settings, using default policy")
			return domain.DefaultWorkingPolicy(), nil
		}
		uc.logger.Error("CreateAppointment: failed to load settings: %v", err)
		return domain.WorkingPolicy{}, fmt.Errorf("%w: failed to load settings: %v", ErrInternal, err)
	}
	return *policy, nil
}

// loadHolidays resolves national plus store holidays for year. Malformed
// entries are skipped with a warning, never failing the whole operation.
func (uc *UseCase) loadHolidays(ctx context.Context, year int) (domain.HolidaySet, error) {
	entries, err := uc.holidayRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to load holidays: %v", err)
		return nil, fmt.Errorf("%w: failed to load holidays: %v", ErrInternal, err)
	}

	holidays, skipped := domain.ResolveHolidays(domain.NationalHolidays, entries, []int{year})
	for _, s := range skipped {
		uc.logger.Warn("CreateAppointment: skipped malformed holiday %q: %s", s.Entry.Name, s.Reason)
	}
	return holidays, nil
}

// collectDayIntervals gathers the active appointment and block intervals on
// date. Rows with an unbuildable interval are skipped with a warning so one
// bad row cannot freeze the whole agenda.
func (uc *UseCase) collectDayIntervals(ctx context.Context, date time.Time) ([]domain.Interval, error) {
	filter := domain.AgendaFilter{
		StartDate:       ptr.Ptr(date),
		EndDate:         ptr.Ptr(date),
		IncludeInactive: false,
	}

	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to load appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to load appointments: %v", ErrInternal, err)
	}

	blocks, err := uc.blockRepo.GetByDateRange(ctx, date, date)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to load blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to load blocks: %v", ErrInternal, err)
	}

	intervals := make([]domain.Interval, 0, len(appointments)+len(blocks))
	for _, a := range appointments {
		interval, err := a.Interval()
		if err != nil {
			uc.logger.Warn("CreateAppointment: skipping appointment %s with bad interval: %v", a.PublicID, err)
			continue
		}
		intervals = append(intervals, interval)
	}
	for _, b := range blocks {
		interval, err := b.Interval()
		if err != nil {
			uc.logger.Warn("CreateAppointment: skipping block %s with bad interval: %v", b.PublicID, err)
			continue
		}
		intervals = append(intervals, interval)
	}

	return intervals, nil
}
