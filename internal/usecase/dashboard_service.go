package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/olympic-data-hub/internal/domain/dataset"
	"github.com/riskibarqy/olympic-data-hub/internal/domain/olympics"
	"github.com/riskibarqy/olympic-data-hub/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const (
	appTitle = "Olympic Games Data Hub"
	logoURL  = "https://upload.wikimedia.org/wikipedia/commons/5/5c/Olympic_rings_without_rims.svg"
)

// ViewObserver is notified after every view render.
type ViewObserver interface {
	ViewRendered(view string, err error)
}

type DashboardOptions struct {
	TopAthletesLimit int
	SummaryWorkers   int
	WarmupWorkers    int
}

func (o DashboardOptions) normalize() DashboardOptions {
	if o.TopAthletesLimit <= 0 {
		o.TopAthletesLimit = olympics.DefaultTopAthletesLimit
	}
	if o.SummaryWorkers <= 0 {
		o.SummaryWorkers = len(olympics.Tables())
	}
	if o.WarmupWorkers <= 0 {
		o.WarmupWorkers = 4
	}
	return o
}

type renderFunc func(ctx context.Context, p *page, sel Selection) error

type viewEntry struct {
	view   View
	render renderFunc
}

// DashboardService renders the dashboard views. Every call recomputes only
// the requested view; results are reused through the querier's cache.
type DashboardService struct {
	querier  dataset.Querier
	logger   *logging.Logger
	observer ViewObserver
	opts     DashboardOptions
	views    []viewEntry
}

func NewDashboardService(querier dataset.Querier, logger *logging.Logger, observer ViewObserver, opts DashboardOptions) *DashboardService {
	if logger == nil {
		logger = logging.Default()
	}
	s := &DashboardService{
		querier:  querier,
		logger:   logger,
		observer: observer,
		opts:     opts.normalize(),
	}
	s.views = []viewEntry{
		{view: View{ID: ViewAppInfo, Name: "App Info"}, render: s.renderAppInfo},
		{view: View{ID: ViewGoldMedalComparison, Name: "Gold Medal Comparison by Country"}, render: s.renderGoldMedalComparison},
		{view: View{ID: ViewPerformanceTrends, Name: "Performance Trends by Country"}, render: s.renderPerformanceTrends},
		{view: View{ID: ViewMedalDistribution, Name: "Olympic Medals Distribution Over Time"}, render: s.renderMedalDistribution},
		{view: View{ID: ViewTopAthletes, Name: "Top Athletes by Medals"}, render: s.renderTopAthletes},
		{view: View{ID: ViewEventParticipation, Name: "Event Participation Analysis"}, render: s.renderEventParticipation},
	}
	return s
}

// Menu lists the views in navigation order.
func (s *DashboardService) Menu() Menu {
	return Menu{Title: appTitle, LogoURL: logoURL, Views: s.Views()}
}

func (s *DashboardService) Views() []View {
	out := make([]View, 0, len(s.views))
	for _, v := range s.views {
		out = append(out, v.view)
	}
	return out
}

func (s *DashboardService) lookup(id ViewID) (viewEntry, bool) {
	for _, v := range s.views {
		if v.view.ID == id {
			return v, true
		}
	}
	return viewEntry{}, false
}

// Render computes one view for the given selection. Query failures do not
// fail the render; they appear as notices in the result.
func (s *DashboardService) Render(ctx context.Context, viewID ViewID, sel Selection) (ViewResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Render", attribute.String("view.id", string(viewID)))
	defer span.End()

	entry, ok := s.lookup(viewID)
	if !ok {
		return ViewResult{}, fmt.Errorf("%w: %q", ErrUnknownView, viewID)
	}

	p := &page{querier: s.querier, logger: s.logger.With("view", string(viewID))}
	err := entry.render(ctx, p, sel.normalize())
	if s.observer != nil {
		s.observer.ViewRendered(string(viewID), err)
	}
	if err != nil {
		span.RecordError(err)
		return ViewResult{}, err
	}

	return ViewResult{ID: entry.view.ID, Name: entry.view.Name, Blocks: p.blocks}, nil
}

// AthleteResults returns every event result of one athlete. Unlike view
// rendering, a warehouse failure is returned to the caller.
func (s *DashboardService) AthleteResults(ctx context.Context, athlete string) (dataset.Table, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.AthleteResults")
	defer span.End()

	athlete = strings.TrimSpace(athlete)
	if athlete == "" {
		return dataset.Table{}, fmt.Errorf("%w: athlete is required", ErrInvalidInput)
	}

	table, err := s.querier.Query(ctx, olympics.AthleteEventResults(athlete))
	if err != nil {
		return dataset.Table{}, fmt.Errorf("query athlete results: %w", err)
	}
	return table, nil
}

func (sel Selection) normalize() Selection {
	return Selection{
		Editions:     compactValues(sel.Editions),
		Countries:    compactValues(sel.Countries),
		EditionTypes: compactValues(sel.EditionTypes),
		Country:      strings.TrimSpace(sel.Country),
		Athlete:      strings.TrimSpace(sel.Athlete),
	}
}

func compactValues(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
