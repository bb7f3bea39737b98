package get_timeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
	settingsRepo "github.com/ottoncsilva/fluxo-mobili-sub002/internal/infra/storage/settings"
	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/ptr"
)

// UseCase lays out the installation board for a date window.
type UseCase struct {
	projectRepo     ProjectRepository
	appointmentRepo AppointmentRepository
	holidayRepo     HolidayRepository
	settingsRepo    SettingsRepository
	logger          Logger
}

// NewUseCase wires the use case dependencies.
func NewUseCase(
	projectRepo ProjectRepository,
	appointmentRepo AppointmentRepository,
	holidayRepo HolidayRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		projectRepo:     projectRepo,
		appointmentRepo: appointmentRepo,
		holidayRepo:     holidayRepo,
		settingsRepo:    settingsRepo,
		logger:          logger,
	}
}

// Execute builds the board. All layout math is fraction based so the caller
// can render at any width.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Validate the window
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}

	start := midnight(req.StartDate)
	end := midnight(req.EndDate)
	totalDays := int(end.Sub(start).Hours()/24) + 1
	if totalDays > domain.MaxTimelineWindowDays {
		uc.logger.Warn("GetTimeline: window of %d day(s) exceeds the %d day maximum", totalDays, domain.MaxTimelineWindowDays)
		return nil, ErrWindowTooLarge
	}

	// 2. Policy and holidays covering every year the window touches
	policy, err := uc.loadPolicy(ctx)
	if err != nil {
		return nil, err
	}

	holidays, err := uc.loadHolidays(ctx, yearsIn(start, end))
	if err != nil {
		return nil, err
	}

	// 3. Day columns
	columns := make([]Column, 0, totalDays)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		col := domain.DayColumnPosition(start, totalDays, day)
		columns = append(columns, Column{
			Date:       day,
			Offset:     col.OffsetFraction,
			Width:      col.WidthFraction,
			NonWorking: domain.IsNonWorkingDay(day, holidays, policy),
		})
	}

	// 4. Assembly bars
	projects, err := uc.projectRepo.GetScheduledInWindow(ctx, start, end)
	if err != nil {
		uc.logger.Error("GetTimeline: failed to load projects: %v", err)
		return nil, fmt.Errorf("%w: failed to load projects: %v", ErrInternal, err)
	}

	projectBars := make([]ProjectBar, 0, len(projects))
	for _, p := range projects {
		date, confirmed := assemblyDate(p)
		if date == nil {
			continue
		}

		bar := domain.BarSpan(*date, assemblyBarDurationDays, start, totalDays)
		projectBars = append(projectBars, ProjectBar{
			ProjectID:    p.ID,
			Code:         p.Code,
			CustomerName: p.CustomerName,
			Date:         *date,
			Confirmed:    confirmed,
			TeamName:     p.Assembly.TeamName,
			Left:         bar.LeftFraction,
			Width:        bar.WidthFraction,
		})
	}

	// 5. Measurement appointment bars
	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, domain.AgendaFilter{
		StartDate:       ptr.Ptr(start),
		EndDate:         ptr.Ptr(end),
		IncludeInactive: false,
	})
	if err != nil {
		uc.logger.Error("GetTimeline: failed to load appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to load appointments: %v", ErrInternal, err)
	}

	appointmentBars := make([]AppointmentBar, 0, len(appointments))
	for _, a := range appointments {
		bar := domain.BarSpan(a.Date, 1, start, totalDays)
		appointmentBars = append(appointmentBars, AppointmentBar{
			PublicID:     a.PublicID,
			CustomerName: a.CustomerName,
			Date:         a.Date,
			Status:       string(a.Status),
			Left:         bar.LeftFraction,
			Width:        bar.WidthFraction,
		})
	}

	uc.logger.Info("GetTimeline: %d day(s), %d project bar(s), %d appointment bar(s)",
		totalDays, len(projectBars), len(appointmentBars))

	return &Response{
		StartDate:       start,
		EndDate:         end,
		TotalDays:       totalDays,
		Columns:         columns,
		ProjectBars:     projectBars,
		AppointmentBars: appointmentBars,
	}, nil
}

// assemblyDate picks the date an assembly bar renders at. A scheduled date
// wins over a forecast.
func assemblyDate(p *domain.Project) (*time.Time, bool) {
	if p.Assembly.ScheduledDate != nil {
		return p.Assembly.ScheduledDate, true
	}
	if p.Assembly.ForecastDate != nil {
		return p.Assembly.ForecastDate, false
	}
	return nil, false
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// yearsIn lists the calendar years the window touches.
func yearsIn(start, end time.Time) []int {
	years := make([]int, 0, end.Year()-start.Year()+1)
	for y := start.Year(); y <= end.Year(); y++ {
		years = append(years, y)
	}
	return years
}

func (uc *UseCase) loadPolicy(ctx context.Context) (domain.WorkingPolicy, error) {
	policy, err := uc.settingsRepo.GetWorkingPolicy(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return domain.DefaultWorkingPolicy(), nil
		}
		uc.logger.Error("GetTimeline: failed to load settings: %v", err)
		return domain.WorkingPolicy{}, fmt.Errorf("%w: failed to load settings: %v", ErrInternal, err)
	}
	return *policy, nil
}

func (uc *UseCase) loadHolidays(ctx context.Context, years []int) (domain.HolidaySet, error) {
	entries, err := uc.holidayRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("GetTimeline: failed to load holidays: %v", err)
		return nil, fmt.Errorf("%w: failed to load holidays: %v", ErrInternal, err)
	}

	holidays, skipped := domain.ResolveHolidays(domain.NationalHolidays, entries, years)
	for _, s := range skipped {
		uc.logger.Warn("GetTimeline: skipped malformed holiday %q: %s", s.Entry.Name, s.Reason)
	}
	return holidays, nil
}
