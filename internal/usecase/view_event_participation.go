package usecase

import (
	"context"

	"github.com/riskibarqy/olympic-data-hub/internal/domain/olympics"
	"github.com/riskibarqy/olympic-data-hub/internal/platform/chart"
)

func (s *DashboardService) renderEventParticipation(ctx context.Context, p *page, _ Selection) error {
	p.title("Event Participation Analysis")

	labels := chart.Labels{olympics.ColEdition: "Edition", olympics.ColNumParticipants: "Number of Participants"}
	for _, season := range olympics.Seasons {
		table := p.query(ctx, olympics.ParticipantsByEdition(season))
		p.chart(chart.Bar(table, olympics.ColEdition, olympics.ColNumParticipants,
			"Number of Participants per "+string(season)+" Event", labels))
	}
	return nil
}
