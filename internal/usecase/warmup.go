package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/olympic-data-hub/internal/domain/olympics"
	"github.com/sourcegraph/conc/pool"
)

// Warmup runs every fixed catalog statement once so the result cache is
// populated before the first page view. All statements are attempted; the
// returned error joins every failure.
func (s *DashboardService) Warmup(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Warmup")
	defer span.End()

	p := pool.New().WithContext(ctx).WithMaxGoroutines(s.opts.WarmupWorkers)
	for _, stmt := range olympics.FixedStatements(s.opts.TopAthletesLimit) {
		p.Go(func(ctx context.Context) error {
			if _, err := s.querier.Query(ctx, stmt); err != nil {
				return fmt.Errorf("warm %s: %w", stmt.Name, err)
			}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		span.RecordError(err)
		return err
	}
	s.logger.InfoContext(ctx, "result cache warmed", "statements", len(olympics.FixedStatements(s.opts.TopAthletesLimit)))
	return nil
}
