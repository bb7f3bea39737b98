package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
	settingsRepo "github.com/ottoncsilva/fluxo-mobili-sub002/internal/infra/storage/settings"
	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/service/settings/models"
)

// Service manages the scheduling configuration: the working-day policy and
// the store holiday table.
type Service struct {
	settingsRepo SettingsRepository
	holidayRepo  HolidayRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService creates the settings service.
func NewService(
	settingsRepo SettingsRepository,
	holidayRepo HolidayRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		holidayRepo:  holidayRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetSettings fetches the working-day policy, falling back to the default
// when nothing was saved yet.
func (s *Service) GetSettings(ctx context.Context) (*models.SettingsResponse, error) {
	policy, err := s.settingsRepo.GetWorkingPolicy(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Info("GetSettings: no saved settings, returning defaults")
			fallback := domain.DefaultWorkingPolicy()
			return models.FromDomainPolicy(fallback), nil
		}
		s.logger.Error("GetSettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSettings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPolicy(*policy), nil
}

// UpdateSettings replaces the working-day policy.
func (s *Service) UpdateSettings(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("UpdateSettings: saturdays=%t, sundays=%t, hours=%s-%s",
		req.WorkOnSaturdays, req.WorkOnSundays, req.DayStart, req.DayEnd)

	if err := req.DayStart.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid dayStart: %v", ErrInvalidInput, err)
	}
	if err := req.DayEnd.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid dayEnd: %v", ErrInvalidInput, err)
	}
	if !req.DayStart.IsBefore(req.DayEnd) {
		return nil, fmt.Errorf("%w: dayEnd must be after dayStart", ErrInvalidInput)
	}

	policy := req.ToDomainPolicy()
	if err := s.settingsRepo.SaveWorkingPolicy(ctx, policy); err != nil {
		s.logger.Error("UpdateSettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateSettings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPolicy(policy), nil
}

// ListHolidays fetches the store holiday table as stored, unresolved.
func (s *Service) ListHolidays(ctx context.Context) (*models.HolidayListResponse, error) {
	entries, err := s.holidayRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("ListHolidays: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListHolidays - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHolidays(entries), nil
}

// ReplaceHolidays atomically replaces the whole store holiday table. Entries
// that would not resolve for the current year are still stored; the resolver
// skips them at read time, so a typo never blocks saving the rest.
func (s *Service) ReplaceHolidays(ctx context.Context, req *models.ReplaceHolidaysRequest) (*models.HolidayListResponse, error) {
	s.logger.Info("ReplaceHolidays: replacing holiday table with %d entry(ies)", len(req.Holidays))

	entries := make([]domain.HolidayEntry, 0, len(req.Holidays))
	for i, h := range req.Holidays {
		kind := domain.HolidayKind(h.Kind)
		if kind != domain.HolidayFixed && kind != domain.HolidaySpecific {
			return nil, fmt.Errorf("%w: holiday %d has unknown kind %q", ErrInvalidInput, i, h.Kind)
		}
		if strings.TrimSpace(h.Date) == "" {
			return nil, fmt.Errorf("%w: holiday %d is missing a date", ErrInvalidInput, i)
		}
		if strings.TrimSpace(h.Name) == "" {
			return nil, fmt.Errorf("%w: holiday %d is missing a name", ErrInvalidInput, i)
		}

		entries = append(entries, domain.HolidayEntry{
			Date: h.Date,
			Name: h.Name,
			Kind: kind,
			Year: h.Year,
		})
	}

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		return s.holidayRepo.ReplaceAll(txCtx, entries)
	})
	if err != nil {
		s.logger.Error("ReplaceHolidays: repository error: %v", err)
		return nil, fmt.Errorf("%w: ReplaceHolidays - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHolidays(entries), nil
}
