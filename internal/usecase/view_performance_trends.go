package usecase

import (
	"context"
	"slices"

	"github.com/riskibarqy/olympic-data-hub/internal/domain/olympics"
	"github.com/riskibarqy/olympic-data-hub/internal/platform/chart"
)

func (s *DashboardService) renderPerformanceTrends(ctx context.Context, p *page, sel Selection) error {
	p.title("Performance Trends by Country")

	table, loaded := p.tryQuery(ctx, olympics.GoldTrendsByCountry())

	p.widget(Widget{
		Key:      WidgetKeyEditionTypes,
		Label:    "Select Edition Types",
		Kind:     WidgetMultiSelect,
		Options:  table.Unique(olympics.ColEditionType),
		Selected: sel.EditionTypes,
	})
	filtered := table.FilterIn(olympics.ColEditionType, sel.EditionTypes)

	options := filtered.Unique(olympics.ColCountry)
	country, err := singleChoice{
		Field:   WidgetKeyCountry,
		Options: options,
		All:     table.Unique(olympics.ColCountry),
		Loaded:  loaded,
	}.pick(sel.Country)
	if err != nil {
		return err
	}
	p.widget(Widget{
		Key:      WidgetKeyCountry,
		Label:    "Select Country",
		Kind:     WidgetSelect,
		Options:  options,
		Selected: selectedOf(country),
	})

	countryTable := filtered.FilterEq(olympics.ColCountry, country)

	title := "Performance Trend"
	if country != "" {
		title = "Performance Trend of " + country
	}
	fig := chart.NewScatter(title)
	for _, season := range olympics.Seasons {
		if len(sel.EditionTypes) > 0 && !slices.Contains(sel.EditionTypes, string(season)) {
			continue
		}
		fig.AddTrace(
			countryTable.FilterEq(olympics.ColEditionType, string(season)),
			olympics.ColYear, olympics.ColGoldMedals,
			string(season)+" Olympics",
		)
	}
	fig.Layout("Year", "Gold Medals", "Edition Type")
	p.chart(*fig)
	return nil
}
