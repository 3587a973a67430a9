package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/olympic-data-hub/internal/domain/dataset"
	"github.com/riskibarqy/olympic-data-hub/internal/domain/olympics"
)

// TableSummary is the size of one warehouse table. Err is set when either
// count could not be fetched.
type TableSummary struct {
	Table   string `json:"table"`
	Rows    int64  `json:"rows"`
	Columns int    `json:"columns"`
	Err     error  `json:"-"`
}

// DatasetSummary counts rows and columns of every warehouse table, fanning
// the lookups out over a bounded worker pool. Order follows olympics.Tables.
func (s *DashboardService) DatasetSummary(ctx context.Context) ([]TableSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.DatasetSummary")
	defer span.End()

	tables := olympics.Tables()
	out := make([]TableSummary, len(tables))

	pool, err := ants.NewPool(s.opts.SummaryWorkers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, table := range tables {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			out[i] = s.summarizeTable(ctx, table)
			if out[i].Err != nil {
				s.logger.WarnContext(ctx, "summarize table failed", "table", table, "error", out[i].Err)
			}
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit table summary to worker pool: %w", err)
		}
	}
	workers.Wait()

	return out, nil
}

func (s *DashboardService) summarizeTable(ctx context.Context, table string) TableSummary {
	sum := TableSummary{Table: table}

	countStmt, err := olympics.TableRowCount(table)
	if err != nil {
		sum.Err = err
		return sum
	}
	counted, err := s.querier.Query(ctx, countStmt)
	if err != nil {
		sum.Err = err
		return sum
	}
	rows, ok := dataset.Float(counted.Cell(0, olympics.ColRowCount))
	if !ok {
		sum.Err = fmt.Errorf("row count of %s is not numeric", table)
		return sum
	}
	sum.Rows = int64(rows)

	colsStmt, err := olympics.TableColumns(table)
	if err != nil {
		sum.Err = err
		return sum
	}
	shape, err := s.querier.Query(ctx, colsStmt)
	if err != nil {
		sum.Err = err
		return sum
	}
	sum.Columns = len(shape.Columns)
	return sum
}
