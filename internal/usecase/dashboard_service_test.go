package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/riskibarqy/olympic-data-hub/internal/domain/dataset"
	"github.com/riskibarqy/olympic-data-hub/internal/domain/olympics"
	datasetmock "github.com/riskibarqy/olympic-data-hub/internal/mocks/domain/dataset"
	"github.com/riskibarqy/olympic-data-hub/internal/platform/chart"
	"github.com/riskibarqy/olympic-data-hub/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func newTestService(q dataset.Querier) *DashboardService {
	return NewDashboardService(q, logging.NewNop(), nil, DashboardOptions{})
}

func expectQuery(q *datasetmock.Querier, stmt dataset.Statement, table dataset.Table) {
	q.On("Query", mock.Anything, stmt).Return(table, nil).Once()
}

func TestDashboardService_Views(t *testing.T) {
	t.Parallel()

	svc := newTestService(datasetmock.NewQuerier(t))
	want := []View{
		{ID: ViewAppInfo, Name: "App Info"},
		{ID: ViewGoldMedalComparison, Name: "Gold Medal Comparison by Country"},
		{ID: ViewPerformanceTrends, Name: "Performance Trends by Country"},
		{ID: ViewMedalDistribution, Name: "Olympic Medals Distribution Over Time"},
		{ID: ViewTopAthletes, Name: "Top Athletes by Medals"},
		{ID: ViewEventParticipation, Name: "Event Participation Analysis"},
	}

	got := svc.Menu()
	if got.Title != "Olympic Games Data Hub" || got.LogoURL == "" {
		t.Fatalf("unexpected menu header: %+v", got)
	}
	if len(got.Views) != len(want) {
		t.Fatalf("unexpected view count: got=%d want=%d", len(got.Views), len(want))
	}
	for i := range want {
		if got.Views[i] != want[i] {
			t.Fatalf("view %d: got=%+v want=%+v", i, got.Views[i], want[i])
		}
	}
}

// Each view may only run its own statements; the strict mock fails on any other call.
func TestDashboardService_Render_ViewIsolation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		view   ViewID
		expect func(q *datasetmock.Querier)
	}{
		{
			view: ViewGoldMedalComparison,
			expect: func(q *datasetmock.Querier) {
				expectQuery(q, olympics.GoldByEditionAndCountry(), goldByEditionFixture())
			},
		},
		{
			view: ViewPerformanceTrends,
			expect: func(q *datasetmock.Querier) {
				expectQuery(q, olympics.GoldTrendsByCountry(), goldTrendsFixture())
			},
		},
		{
			view: ViewMedalDistribution,
			expect: func(q *datasetmock.Querier) {
				expectQuery(q, olympics.MedalTotalsByYear(olympics.SeasonSummer), medalTotalsFixture())
				expectQuery(q, olympics.MedalTotalsByYear(olympics.SeasonWinter), medalTotalsFixture())
			},
		},
		{
			view: ViewTopAthletes,
			expect: func(q *datasetmock.Querier) {
				expectQuery(q, olympics.TopAthletesByMedals(10), topAthletesFixture())
				expectQuery(q, olympics.AthleteEventResults("Athlete 01"), athleteResultsFixture())
			},
		},
		{
			view: ViewEventParticipation,
			expect: func(q *datasetmock.Querier) {
				expectQuery(q, olympics.ParticipantsByEdition(olympics.SeasonSummer), participantsFixture())
				expectQuery(q, olympics.ParticipantsByEdition(olympics.SeasonWinter), participantsFixture())
			},
		},
		{
			view: ViewAppInfo,
			expect: func(q *datasetmock.Querier) {
				for _, table := range olympics.Tables() {
					count, _ := olympics.TableRowCount(table)
					cols, _ := olympics.TableColumns(table)
					expectQuery(q, count, dataset.Table{Columns: []string{olympics.ColRowCount}, Rows: [][]any{{int64(42)}}})
					expectQuery(q, cols, dataset.Table{Columns: []string{"A", "B", "C"}})
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(string(tc.view), func(t *testing.T) {
			t.Parallel()

			q := datasetmock.NewQuerier(t)
			tc.expect(q)

			got, err := newTestService(q).Render(context.Background(), tc.view, Selection{})
			if err != nil {
				t.Fatalf("render %s: %v", tc.view, err)
			}
			if got.ID != tc.view {
				t.Fatalf("unexpected view id %s", got.ID)
			}
			if notices := got.Notices(); len(notices) != 0 {
				t.Fatalf("unexpected notices: %+v", notices)
			}
		})
	}
}

func TestDashboardService_Render_QueryFailureYieldsNotice(t *testing.T) {
	t.Parallel()

	q := datasetmock.NewQuerier(t)
	q.On("Query", mock.Anything, olympics.GoldByEditionAndCountry()).
		Return(dataset.Table{}, errors.New("connection reset by peer")).
		Once()

	got, err := newTestService(q).Render(context.Background(), ViewGoldMedalComparison, Selection{})
	if err != nil {
		t.Fatalf("a failed query must not fail the render: %v", err)
	}

	notices := got.Notices()
	if len(notices) != 1 {
		t.Fatalf("expected one notice, got %+v", notices)
	}
	if notices[0].Level != NoticeError || notices[0].Message != "Error running query: connection reset by peer" {
		t.Fatalf("unexpected notice: %+v", notices[0])
	}

	charts := got.Charts()
	if len(charts) != 1 || len(charts[0].Series) != 0 {
		t.Fatalf("expected an empty chart after the notice, got %+v", charts)
	}
	if got.Blocks[1].Kind != BlockNotice {
		t.Fatalf("notice must appear where the query ran, got %s", got.Blocks[1].Kind)
	}
}

func TestDashboardService_Render_TopAthletesDrillDown(t *testing.T) {
	t.Parallel()

	q := datasetmock.NewQuerier(t)
	expectQuery(q, olympics.TopAthletesByMedals(10), topAthletesFixture())
	q.On("Query", mock.Anything, mock.MatchedBy(func(stmt dataset.Statement) bool {
		return stmt.Name == olympics.StmtAthleteEventResults &&
			len(stmt.Args) == 1 && stmt.Args[0] == "Athlete 04"
	})).Return(athleteResultsFixture(), nil).Once()

	got, err := newTestService(q).Render(context.Background(), ViewTopAthletes, Selection{Athlete: "Athlete 04"})
	if err != nil {
		t.Fatalf("render top athletes: %v", err)
	}
	q.AssertNumberOfCalls(t, "Query", 2)

	var widget *Widget
	var markdown string
	var table *dataset.Table
	for _, b := range got.Blocks {
		switch b.Kind {
		case BlockWidget:
			widget = b.Widget
		case BlockMarkdown:
			markdown = b.Text
		case BlockTable:
			table = b.Table
		}
	}
	if widget == nil || len(widget.Options) != 10 || widget.Selected[0] != "Athlete 04" {
		t.Fatalf("unexpected athlete widget: %+v", widget)
	}
	if markdown != "### Details of Athlete 04" {
		t.Fatalf("unexpected details heading %q", markdown)
	}
	if table == nil || table.Len() != 2 {
		t.Fatalf("unexpected details table: %+v", table)
	}

	bar := got.Charts()[0]
	if bar.Type != chart.TypeBar || bar.PointCount() != 10 || bar.YAxisTitle != "Number of Medals" {
		t.Fatalf("unexpected top athletes chart: %+v", bar)
	}
}

func TestDashboardService_Render_RejectsUnknownSelection(t *testing.T) {
	t.Parallel()

	q := datasetmock.NewQuerier(t)
	expectQuery(q, olympics.TopAthletesByMedals(10), topAthletesFixture())

	_, err := newTestService(q).Render(context.Background(), ViewTopAthletes, Selection{Athlete: "Nobody"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDashboardService_Render_UnknownView(t *testing.T) {
	t.Parallel()

	_, err := newTestService(datasetmock.NewQuerier(t)).Render(context.Background(), "medal-table", Selection{})
	if !errors.Is(err, ErrNotFound) || !errors.Is(err, ErrUnknownView) {
		t.Fatalf("expected ErrUnknownView, got %v", err)
	}
}

func TestDashboardService_Render_MedalDistribution(t *testing.T) {
	t.Parallel()

	q := datasetmock.NewQuerier(t)
	expectQuery(q, olympics.MedalTotalsByYear(olympics.SeasonSummer), medalTotalsFixture())
	expectQuery(q, olympics.MedalTotalsByYear(olympics.SeasonWinter), dataset.Empty())

	got, err := newTestService(q).Render(context.Background(), ViewMedalDistribution, Selection{})
	if err != nil {
		t.Fatalf("render medal distribution: %v", err)
	}

	charts := got.Charts()
	if len(charts) != 2 {
		t.Fatalf("expected summer and winter charts, got %d", len(charts))
	}
	if charts[0].Title != "Summer Olympics" || charts[1].Title != "Winter Olympics" {
		t.Fatalf("unexpected titles %q %q", charts[0].Title, charts[1].Title)
	}
	for _, fig := range charts {
		if len(fig.Series) != 3 {
			t.Fatalf("expected gold, silver and bronze series, got %d", len(fig.Series))
		}
	}
	for _, s := range charts[0].Series {
		if len(s.Points) != medalTotalsFixture().Len() {
			t.Fatalf("series %s has %d points", s.Name, len(s.Points))
		}
	}
	if charts[1].PointCount() != 0 {
		t.Fatalf("empty result must render empty series")
	}
}

func TestDashboardService_Render_GoldComparisonFilters(t *testing.T) {
	t.Parallel()

	q := datasetmock.NewQuerier(t)
	expectQuery(q, olympics.GoldByEditionAndCountry(), goldByEditionFixture())

	got, err := newTestService(q).Render(context.Background(), ViewGoldMedalComparison, Selection{
		Editions:  []string{"2012 Summer Olympics", "2016 Summer Olympics"},
		Countries: []string{"United States", "Norway"},
	})
	if err != nil {
		t.Fatalf("render gold comparison: %v", err)
	}

	var widgets []*Widget
	for _, b := range got.Blocks {
		if b.Kind == BlockWidget {
			widgets = append(widgets, b.Widget)
		}
	}
	if len(widgets) != 2 {
		t.Fatalf("expected edition and country widgets, got %d", len(widgets))
	}
	if len(widgets[0].Options) != 4 {
		t.Fatalf("edition options must come from the full result: %v", widgets[0].Options)
	}
	if strings.Join(widgets[1].Options, ",") != "United States,China,Great Britain" {
		t.Fatalf("country options must be narrowed by editions: %v", widgets[1].Options)
	}

	fig := got.Charts()[0]
	if len(fig.Series) != 1 || fig.Series[0].Name != "United States" || len(fig.Series[0].Points) != 2 {
		t.Fatalf("unexpected plotted set: %+v", fig.Series)
	}
}

func TestDashboardService_Render_PerformanceTrends(t *testing.T) {
	t.Parallel()

	t.Run("defaults to the first country", func(t *testing.T) {
		t.Parallel()

		q := datasetmock.NewQuerier(t)
		expectQuery(q, olympics.GoldTrendsByCountry(), goldTrendsFixture())

		got, err := newTestService(q).Render(context.Background(), ViewPerformanceTrends, Selection{})
		if err != nil {
			t.Fatalf("render performance trends: %v", err)
		}
		fig := got.Charts()[0]
		if fig.Title != "Performance Trend of Norway" || fig.LegendTitle != "Edition Type" {
			t.Fatalf("unexpected figure header: %+v", fig)
		}
		if len(fig.Series) != 2 || len(fig.Series[0].Points) != 1 || len(fig.Series[1].Points) != 3 {
			t.Fatalf("unexpected traces: %+v", fig.Series)
		}
	})

	t.Run("edition type narrows countries and traces", func(t *testing.T) {
		t.Parallel()

		q := datasetmock.NewQuerier(t)
		expectQuery(q, olympics.GoldTrendsByCountry(), goldTrendsFixture())

		got, err := newTestService(q).Render(context.Background(), ViewPerformanceTrends, Selection{
			EditionTypes: []string{"Summer"},
			Country:      "United States",
		})
		if err != nil {
			t.Fatalf("render performance trends: %v", err)
		}
		fig := got.Charts()[0]
		if len(fig.Series) != 1 || fig.Series[0].Name != "Summer Olympics" || len(fig.Series[0].Points) != 2 {
			t.Fatalf("unexpected traces: %+v", fig.Series)
		}
	})

	t.Run("country narrowed away falls back to the first option", func(t *testing.T) {
		t.Parallel()

		q := datasetmock.NewQuerier(t)
		expectQuery(q, olympics.GoldTrendsByCountry(), goldTrendsFixture())

		got, err := newTestService(q).Render(context.Background(), ViewPerformanceTrends, Selection{
			EditionTypes: []string{"Winter"},
			Country:      "United States",
		})
		if err != nil {
			t.Fatalf("narrowing must re-render, got %v", err)
		}
		var country *Widget
		for _, b := range got.Blocks {
			if b.Kind == BlockWidget && b.Widget.Key == WidgetKeyCountry {
				country = b.Widget
			}
		}
		if country == nil || strings.Join(country.Options, ",") != "Norway" || country.Selected[0] != "Norway" {
			t.Fatalf("unexpected country widget: %+v", country)
		}
		fig := got.Charts()[0]
		if fig.Title != "Performance Trend of Norway" || len(fig.Series) != 1 || len(fig.Series[0].Points) != 3 {
			t.Fatalf("unexpected figure: %+v", fig)
		}
	})

	t.Run("country never offered is rejected", func(t *testing.T) {
		t.Parallel()

		q := datasetmock.NewQuerier(t)
		expectQuery(q, olympics.GoldTrendsByCountry(), goldTrendsFixture())

		_, err := newTestService(q).Render(context.Background(), ViewPerformanceTrends, Selection{
			Country: "Atlantis",
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

// A failed source query must not turn a single-select value into a user error.
func TestDashboardService_Render_SelectionSurvivesQueryFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		view ViewID
		stmt dataset.Statement
		sel  Selection
	}{
		{
			name: "top athletes",
			view: ViewTopAthletes,
			stmt: olympics.TopAthletesByMedals(10),
			sel:  Selection{Athlete: "Michael Phelps"},
		},
		{
			name: "performance trends",
			view: ViewPerformanceTrends,
			stmt: olympics.GoldTrendsByCountry(),
			sel:  Selection{Country: "United States"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			q := datasetmock.NewQuerier(t)
			q.On("Query", mock.Anything, tc.stmt).Return(dataset.Table{}, errors.New("warehouse offline")).Once()

			got, err := newTestService(q).Render(context.Background(), tc.view, tc.sel)
			if err != nil {
				t.Fatalf("render must survive the failed query, got %v", err)
			}
			q.AssertNumberOfCalls(t, "Query", 1)

			notices := got.Notices()
			if len(notices) != 1 || notices[0].Message != "Error running query: warehouse offline" {
				t.Fatalf("unexpected notices: %+v", notices)
			}
			charts := got.Charts()
			if len(charts) != 1 || charts[0].PointCount() != 0 {
				t.Fatalf("expected one empty chart, got %+v", charts)
			}
		})
	}
}

func TestDashboardService_Render_TopAthletesTitleFollowsLimit(t *testing.T) {
	t.Parallel()

	q := datasetmock.NewQuerier(t)
	expectQuery(q, olympics.TopAthletesByMedals(5), dataset.Empty())

	svc := NewDashboardService(q, logging.NewNop(), nil, DashboardOptions{TopAthletesLimit: 5})
	got, err := svc.Render(context.Background(), ViewTopAthletes, Selection{})
	if err != nil {
		t.Fatalf("render top athletes: %v", err)
	}
	if title := got.Charts()[0].Title; title != "Top 5 Athletes by Number of Medals" {
		t.Fatalf("unexpected chart title %q", title)
	}
}

func TestDashboardService_Render_AppInfoSummaryFailure(t *testing.T) {
	t.Parallel()

	q := datasetmock.NewQuerier(t)
	q.On("Query", mock.Anything, mock.MatchedBy(func(stmt dataset.Statement) bool {
		_, table := olympics.SplitStatementName(stmt.Name)
		return table == olympics.TableResults
	})).Return(dataset.Table{}, errors.New("permission denied")).Once()
	q.On("Query", mock.Anything, mock.Anything).
		Return(dataset.Table{Columns: []string{olympics.ColRowCount}, Rows: [][]any{{int64(5)}}}, nil)

	got, err := newTestService(q).Render(context.Background(), ViewAppInfo, Selection{})
	if err != nil {
		t.Fatalf("render app info: %v", err)
	}

	notices := got.Notices()
	if len(notices) != 1 || !strings.Contains(notices[0].Message, "permission denied") {
		t.Fatalf("unexpected notices: %+v", notices)
	}
	var summary string
	for _, b := range got.Blocks {
		if b.Kind == BlockMarkdown && strings.HasPrefix(b.Text, "- **OLYMPICS_COUNTRY**") {
			summary = b.Text
		}
	}
	if strings.Count(summary, "\n")+1 != 5 || strings.Contains(summary, olympics.TableResults) {
		t.Fatalf("unexpected summary:\n%s", summary)
	}
	if !strings.Contains(summary, "- **OLYMPIC_GAMES**: (Rows: 5 - Columns: 1)") {
		t.Fatalf("unexpected summary line:\n%s", summary)
	}
}

func TestDashboardService_AthleteResults(t *testing.T) {
	t.Parallel()

	q := datasetmock.NewQuerier(t)
	svc := newTestService(q)

	if _, err := svc.AthleteResults(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	boom := errors.New("warehouse offline")
	q.On("Query", mock.Anything, olympics.AthleteEventResults("Michael Phelps")).Return(dataset.Table{}, boom).Once()
	if _, err := svc.AthleteResults(context.Background(), "Michael Phelps"); !errors.Is(err, boom) {
		t.Fatalf("expected warehouse error, got %v", err)
	}
}

func TestDashboardService_Warmup(t *testing.T) {
	t.Parallel()

	q := datasetmock.NewQuerier(t)
	boom := errors.New("timeout")
	for _, stmt := range olympics.FixedStatements(10) {
		if stmt.Name == olympics.StmtGoldTrendsByCountry {
			q.On("Query", mock.Anything, stmt).Return(dataset.Table{}, boom).Once()
			continue
		}
		expectQuery(q, stmt, dataset.Empty())
	}

	err := newTestService(q).Warmup(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected warmup to report the failed statement, got %v", err)
	}
	if !strings.Contains(err.Error(), olympics.StmtGoldTrendsByCountry) {
		t.Fatalf("error should name the statement: %v", err)
	}
}
