package postgres

import (
	"context"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/olympic-data-hub/internal/domain/dataset"
	"github.com/riskibarqy/olympic-data-hub/internal/platform/logging"
	"github.com/riskibarqy/olympic-data-hub/internal/platform/resilience"
	"github.com/riskibarqy/olympic-data-hub/internal/usecase"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// QueryObserver receives the outcome and latency of every statement.
type QueryObserver interface {
	ObserveQuery(statement string, err error, elapsed time.Duration)
}

type Options struct {
	// QueryTimeout bounds each statement; zero leaves it to the caller's context.
	QueryTimeout time.Duration
	Breaker      *resilience.CircuitBreaker
	Observer     QueryObserver
	Logger       *logging.Logger
}

// Connector runs catalog statements on a shared warehouse handle. It never
// retries; failures are marked as dependency unavailability.
type Connector struct {
	db   *sqlx.DB
	opts Options
}

func NewConnector(db *sqlx.DB, opts Options) *Connector {
	if opts.Logger == nil {
		opts.Logger = logging.Default()
	}
	return &Connector{db: db, opts: opts}
}

func (c *Connector) Ping(ctx context.Context) error {
	if err := c.db.PingContext(ctx); err != nil {
		return crerr.Mark(crerr.Wrap(err, "ping warehouse"), usecase.ErrDependencyUnavailable)
	}
	return nil
}

func (c *Connector) Query(ctx context.Context, stmt dataset.Statement) (dataset.Table, error) {
	if err := stmt.Validate(); err != nil {
		return dataset.Table{}, crerr.Wrap(err, "invalid statement")
	}

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(attribute.String("warehouse.statement", stmt.Name))
	}

	if c.opts.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.QueryTimeout)
		defer cancel()
	}

	started := time.Now()
	var table dataset.Table
	run := func(ctx context.Context) error {
		var err error
		table, err = c.query(ctx, stmt)
		return err
	}

	var err error
	if c.opts.Breaker != nil {
		err = c.opts.Breaker.Execute(ctx, run)
	} else {
		err = run(ctx)
	}
	elapsed := time.Since(started)

	if c.opts.Observer != nil {
		c.opts.Observer.ObserveQuery(stmt.Name, err, elapsed)
	}
	if err != nil {
		c.opts.Logger.WarnContext(ctx, "warehouse statement failed",
			"statement", stmt.Name,
			"duration_ms", elapsed.Milliseconds(),
			"error", err,
		)
		return dataset.Table{}, crerr.Mark(crerr.Wrapf(err, "query %s", stmt.Name), usecase.ErrDependencyUnavailable)
	}

	c.opts.Logger.DebugContext(ctx, "warehouse statement done",
		"statement", stmt.Name,
		"rows", table.Len(),
		"duration_ms", elapsed.Milliseconds(),
	)
	return table, nil
}

func (c *Connector) query(ctx context.Context, stmt dataset.Statement) (dataset.Table, error) {
	rows, err := c.db.QueryxContext(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return dataset.Table{}, err
	}
	defer func() {
		_ = rows.Close()
	}()

	columns, err := rows.Columns()
	if err != nil {
		return dataset.Table{}, crerr.Wrap(err, "read columns")
	}

	table := dataset.Table{Columns: normalizeColumns(columns), Rows: [][]any{}}
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return dataset.Table{}, crerr.Wrap(err, "scan row")
		}
		for i := range values {
			values[i] = normalizeValue(values[i])
		}
		table.Rows = append(table.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return dataset.Table{}, crerr.Wrap(err, "iterate rows")
	}

	return table, nil
}

// normalizeColumns upper-cases result columns. Unquoted identifiers are
// case-insensitive in the warehouse and postgres reports them lower-cased.
func normalizeColumns(columns []string) []string {
	out := make([]string, len(columns))
	for i, col := range columns {
		out[i] = strings.ToUpper(col)
	}
	return out
}

// normalizeValue turns driver byte slices into numbers or text. lib/pq
// returns NUMERIC (for example SUM over BIGINT) as its text form.
func normalizeValue(v any) any {
	b, ok := v.([]byte)
	if !ok {
		return v
	}
	s := string(b)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
