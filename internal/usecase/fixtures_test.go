package usecase

import (
	"fmt"

	"github.com/riskibarqy/olympic-data-hub/internal/domain/dataset"
	"github.com/riskibarqy/olympic-data-hub/internal/domain/olympics"
)

func goldByEditionFixture() dataset.Table {
	return dataset.Table{
		Columns: []string{olympics.ColEdition, olympics.ColCountry, olympics.ColTotalGold},
		Rows: [][]any{
			{"2008 Summer Olympics", "China", int64(48)},
			{"2008 Summer Olympics", "United States", int64(36)},
			{"2012 Summer Olympics", "United States", int64(46)},
			{"2012 Summer Olympics", "China", int64(38)},
			{"2014 Winter Olympics", "Norway", int64(11)},
			{"2016 Summer Olympics", "United States", int64(46)},
			{"2016 Summer Olympics", "Great Britain", int64(27)},
		},
	}
}

func goldTrendsFixture() dataset.Table {
	return dataset.Table{
		Columns: []string{olympics.ColYear, olympics.ColEditionType, olympics.ColCountry, olympics.ColGoldMedals},
		Rows: [][]any{
			{int64(2008), "Summer", "Norway", int64(3)},
			{int64(2010), "Winter", "Norway", int64(9)},
			{int64(2012), "Summer", "United States", int64(46)},
			{int64(2014), "Winter", "Norway", int64(11)},
			{int64(2016), "Summer", "United States", int64(46)},
			{int64(2018), "Winter", "Norway", int64(14)},
		},
	}
}

func medalTotalsFixture() dataset.Table {
	return dataset.Table{
		Columns: []string{olympics.ColYear, olympics.ColTotalGold, olympics.ColTotalSilver, olympics.ColTotalBronze},
		Rows: [][]any{
			{int64(2008), int64(302), int64(303), int64(353)},
			{int64(2012), int64(302), int64(304), int64(356)},
			{int64(2016), int64(307), int64(307), int64(359)},
		},
	}
}

// topAthletesFixture ranks "Athlete 01" to "Athlete 10" by descending medal count.
func topAthletesFixture() dataset.Table {
	t := dataset.Table{Columns: []string{olympics.ColAthlete, olympics.ColMedalCount}}
	for i := 1; i <= 10; i++ {
		t.Rows = append(t.Rows, []any{fmt.Sprintf("Athlete %02d", i), int64(20 - i)})
	}
	return t
}

func athleteResultsFixture() dataset.Table {
	return dataset.Table{
		Columns: []string{olympics.ColEdition, olympics.ColSport, olympics.ColEvent, olympics.ColMedal},
		Rows: [][]any{
			{"2012 Summer Olympics", "Athletics", "100 metres, Men", "Gold"},
			{"2016 Summer Olympics", "Athletics", "4 x 100 metres Relay, Men", nil},
		},
	}
}

func participantsFixture() dataset.Table {
	return dataset.Table{
		Columns: []string{olympics.ColEdition, olympics.ColNumParticipants},
		Rows: [][]any{
			{"2016 Summer Olympics", int64(11238)},
			{"2012 Summer Olympics", int64(10519)},
			{"2008 Summer Olympics", int64(10899)},
		},
	}
}
