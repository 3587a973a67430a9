package usecase

import (
	"context"
	"fmt"
	"strings"
)

const (
	openingCeremonyURL = "https://upload.wikimedia.org/wikipedia/commons/b/b6/1896_Olympic_opening_ceremony.jpg"

	appInfoWelcome = "Welcome to the **Olympic Games Data Hub**! This application provides a comprehensive analysis of Olympic data, " +
		"offering insights into medal distribution, athlete performance, and more. " +
		"Explore various analyses to dive deep into the world of the Olympics."

	appInfoAnalyses = `- **Gold Medal Comparison by Country**: Compare the gold medal counts across different countries and editions. Visualize the performance of selected countries in a grouped bar chart.
- **Performance Trends by Country**: Analyze the performance trends of the selected country over the years, separate lines for summer and winter editions.
- **Olympic Medals Distribution Over Time**: View the distribution of gold, silver, and bronze medals over the history of Olympic Games. Track the trends in medal counts through interactive line charts.
- **Top Athletes by Medals**: Discover the top athletes based on their medal counts. This section highlights the athletes with the most medals across different events.
- **Event Participation Analysis**: Examine the number of athletes competing in the Olympic Games history. Get insights into the participation patterns of Olympic athletes.`
)

var appInfoCredits = []string{
	"This application was developed by Matteo Consoli. Logo and photos used in the landing page are hosted on Wikimedia",
	"All content and visuals provided are for educational and informational purposes. Please adhere to copyright and usage guidelines when sharing or using the data and images.",
	"Dataset provided under a public license from Kaggle: [Olympic Historical Dataset](https://www.kaggle.com/datasets/josephcheng123456/olympic-historical-dataset-from-olympediaorg). Data was webscraped from Olymedia.org.",
	"Thank you for exploring the Olympic Games Data Hub!",
}

func (s *DashboardService) renderAppInfo(ctx context.Context, p *page, _ Selection) error {
	p.title(appTitle + " - Overview")
	p.image(openingCeremonyURL)
	p.markdown(appInfoWelcome)
	p.markdown("### Available Analyses")
	p.markdown(appInfoAnalyses)

	p.markdown("### Dataset Summary")
	summaries, err := s.DatasetSummary(ctx)
	if err != nil {
		return err
	}
	lines := make([]string, 0, len(summaries))
	for _, sum := range summaries {
		if sum.Err != nil {
			p.errorNotice(queryErrorMessage(sum.Err))
			continue
		}
		lines = append(lines, fmt.Sprintf("- **%s**: (Rows: %d - Columns: %d)", sum.Table, sum.Rows, sum.Columns))
	}
	if len(lines) > 0 {
		p.markdown(strings.Join(lines, "\n"))
	}

	p.markdown("### Credits")
	for _, line := range appInfoCredits {
		p.markdown(line)
	}
	return nil
}
