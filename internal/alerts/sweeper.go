package alerts

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
	evaluateDeadlines "github.com/ottoncsilva/fluxo-mobili-sub002/internal/usecase/evaluate_deadlines"
	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/metrics"
)

// sweepTimeout bounds one evaluation run.
const sweepTimeout = 2 * time.Minute

// EvaluateDeadlinesUseCase is the board evaluator the sweeper runs.
type EvaluateDeadlinesUseCase interface {
	Execute(ctx context.Context) (*evaluateDeadlines.Response, error)
}

// Logger is the application logger surface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Sweeper periodically re-evaluates every active project's SLA position and
// publishes the per-tier counts as gauges. Overdue transitions show up in the
// logs; no outbound notification is sent from here.
type Sweeper struct {
	useCase EvaluateDeadlinesUseCase
	metrics *metrics.Metrics
	logger  Logger
	cron    *cron.Cron
}

// NewSweeper creates a sweeper; metricsCollector may be nil when metrics are
// disabled.
func NewSweeper(useCase EvaluateDeadlinesUseCase, metricsCollector *metrics.Metrics, logger Logger) *Sweeper {
	return &Sweeper{
		useCase: useCase,
		metrics: metricsCollector,
		logger:  logger,
		cron:    cron.New(),
	}
}

// Start registers the sweep on the given cron schedule ("*/15 * * * *") and
// runs one sweep immediately so the gauges are populated at boot.
func (s *Sweeper) Start(schedule string) error {
	if _, err := s.cron.AddFunc(schedule, s.sweep); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("Alerts sweeper started with schedule %q", schedule)

	go s.sweep()
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Alerts sweeper stopped")
}

func (s *Sweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	result, err := s.useCase.Execute(ctx)
	if err != nil {
		s.logger.Error("Alerts sweep failed: %v", err)
		return
	}

	if s.metrics != nil {
		for tier, count := range result.TierCounts {
			s.metrics.SetDeadlineTierCount(string(tier), count)
		}
	}

	if overdue := result.TierCounts[domain.TierOverdue]; overdue > 0 {
		s.logger.Warn("Alerts sweep: %d project(s) overdue", overdue)
	}
}
