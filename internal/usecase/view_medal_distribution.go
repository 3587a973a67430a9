package usecase

import (
	"context"

	"github.com/riskibarqy/olympic-data-hub/internal/domain/olympics"
	"github.com/riskibarqy/olympic-data-hub/internal/platform/chart"
)

func (s *DashboardService) renderMedalDistribution(ctx context.Context, p *page, _ Selection) error {
	p.title("Medal Distribution Over Time")

	for _, season := range olympics.Seasons {
		table := p.query(ctx, olympics.MedalTotalsByYear(season))

		fig := chart.NewScatter(string(season)+" Olympics").
			AddTrace(table, olympics.ColYear, olympics.ColTotalGold, "Gold Medals").
			AddTrace(table, olympics.ColYear, olympics.ColTotalSilver, "Silver Medals").
			AddTrace(table, olympics.ColYear, olympics.ColTotalBronze, "Bronze Medals").
			Layout("Year", "Number of Medals", "")
		p.chart(*fig)
	}
	return nil
}
