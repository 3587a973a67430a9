package usecase

import (
	"context"

	"github.com/riskibarqy/olympic-data-hub/internal/domain/olympics"
	"github.com/riskibarqy/olympic-data-hub/internal/platform/chart"
)

// Widget keys double as query parameter names.
const (
	WidgetKeyEditions     = "edition"
	WidgetKeyCountries    = "country_filter"
	WidgetKeyEditionTypes = "edition_type"
	WidgetKeyCountry      = "country"
	WidgetKeyAthlete      = "athlete"
)

func (s *DashboardService) renderGoldMedalComparison(ctx context.Context, p *page, sel Selection) error {
	p.title("Gold Medal Comparison by Country")

	table := p.query(ctx, olympics.GoldByEditionAndCountry())

	p.widget(Widget{
		Key:      WidgetKeyEditions,
		Label:    "Select Editions",
		Kind:     WidgetMultiSelect,
		Options:  table.Unique(olympics.ColEdition),
		Selected: sel.Editions,
	})
	filtered := table.FilterIn(olympics.ColEdition, sel.Editions)

	p.widget(Widget{
		Key:      WidgetKeyCountries,
		Label:    "Select Countries",
		Kind:     WidgetMultiSelect,
		Options:  filtered.Unique(olympics.ColCountry),
		Selected: sel.Countries,
	})
	filtered = filtered.FilterIn(olympics.ColCountry, sel.Countries)

	p.chart(chart.GroupedBar(filtered,
		olympics.ColEdition, olympics.ColTotalGold, olympics.ColCountry,
		"Gold Medals by Country and Edition",
		chart.Labels{olympics.ColEdition: "Edition", olympics.ColTotalGold: "Gold Medals"},
	))
	return nil
}
