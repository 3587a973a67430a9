package olympics

import "fmt"

// Warehouse table names.
const (
	TableCountry            = "OLYMPICS_COUNTRY"
	TableGames              = "OLYMPIC_GAMES"
	TableAthleteBio         = "OLYMPIC_ATHLETE_BIO"
	TableAthleteEventResult = "OLYMPIC_ATHLETE_EVENT_RESULTS"
	TableResults            = "OLYMPIC_RESULTS"
	TableMedalTally         = "OLYMPIC_GAMES_MEDAL_TALLY"
)

// Tables lists every warehouse table in dataset summary order.
func Tables() []string {
	return []string{
		TableCountry,
		TableGames,
		TableAthleteBio,
		TableAthleteEventResult,
		TableResults,
		TableMedalTally,
	}
}

func ValidateTable(name string) error {
	for _, t := range Tables() {
		if t == name {
			return nil
		}
	}
	return fmt.Errorf("unknown table: %q", name)
}

// Result column names produced by the catalog statements.
const (
	ColYear            = "YEAR"
	ColEdition         = "EDITION"
	ColEditionType     = "EDITION_TYPE"
	ColCountry         = "COUNTRY"
	ColAthlete         = "ATHLETE"
	ColSport           = "SPORT"
	ColEvent           = "EVENT"
	ColMedal           = "MEDAL"
	ColTotalGold       = "TOTAL_GOLD"
	ColTotalSilver     = "TOTAL_SILVER"
	ColTotalBronze     = "TOTAL_BRONZE"
	ColGoldMedals      = "GOLD_MEDALS"
	ColMedalCount      = "MEDAL_COUNT"
	ColNumParticipants = "NUM_PARTICIPANTS"
	ColRowCount        = "ROW_COUNT"
)
