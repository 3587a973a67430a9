package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/olympic-data-hub/internal/domain/olympics"
	"github.com/riskibarqy/olympic-data-hub/internal/platform/chart"
)

func (s *DashboardService) renderTopAthletes(ctx context.Context, p *page, sel Selection) error {
	p.title("Top Athletes by Medals")

	table, loaded := p.tryQuery(ctx, olympics.TopAthletesByMedals(s.opts.TopAthletesLimit))

	p.chart(chart.Bar(table, olympics.ColAthlete, olympics.ColMedalCount,
		fmt.Sprintf("Top %d Athletes by Number of Medals", s.opts.TopAthletesLimit),
		chart.Labels{olympics.ColAthlete: "Athlete", olympics.ColMedalCount: "Number of Medals"},
	))

	options := table.Unique(olympics.ColAthlete)
	athlete, err := singleChoice{
		Field:   WidgetKeyAthlete,
		Options: options,
		All:     options,
		Loaded:  loaded,
	}.pick(sel.Athlete)
	if err != nil {
		return err
	}
	p.widget(Widget{
		Key:      WidgetKeyAthlete,
		Label:    "Select an Athlete to View Details",
		Kind:     WidgetSelect,
		Options:  options,
		Selected: selectedOf(athlete),
	})
	if athlete == "" {
		return nil
	}

	details := p.query(ctx, olympics.AthleteEventResults(athlete))
	p.markdown("### Details of " + athlete)
	p.table(details)
	return nil
}
