package memory

import "github.com/riskibarqy/olympic-data-hub/internal/domain/olympics"

// Dataset is the full content of an in-memory warehouse.
type Dataset struct {
	Countries    []olympics.Country
	Games        []olympics.GamesEdition
	Athletes     []olympics.Athlete
	EventResults []olympics.EventResult
	Events       []olympics.Event
	MedalTallies []olympics.MedalTally
}

const (
	edition2008Summer = "2008 Summer Olympics"
	edition2010Winter = "2010 Winter Olympics"
	edition2012Summer = "2012 Summer Olympics"
	edition2014Winter = "2014 Winter Olympics"
	edition2016Summer = "2016 Summer Olympics"
	edition2018Winter = "2018 Winter Olympics"
)

// SeedDataset returns a small slice of recent Games, enough to exercise every view.
func SeedDataset() Dataset {
	games := seedGames()
	results := seedEventResults(games)
	return Dataset{
		Countries:    seedCountries(),
		Games:        games,
		Athletes:     seedAthletes(),
		EventResults: results,
		Events:       eventsFromResults(results),
		MedalTallies: seedMedalTallies(games),
	}
}

func seedCountries() []olympics.Country {
	return []olympics.Country{
		{NOC: "CAN", Name: "Canada"},
		{NOC: "CHN", Name: "People's Republic of China"},
		{NOC: "GBR", Name: "Great Britain"},
		{NOC: "GER", Name: "Germany"},
		{NOC: "JAM", Name: "Jamaica"},
		{NOC: "NOR", Name: "Norway"},
		{NOC: "RUS", Name: "Russian Federation"},
		{NOC: "USA", Name: "United States"},
	}
}

func seedGames() []olympics.GamesEdition {
	return []olympics.GamesEdition{
		{ID: 26, Edition: edition2008Summer, Year: 2008, City: "Beijing", NOC: "CHN"},
		{ID: 58, Edition: edition2010Winter, Year: 2010, City: "Vancouver", NOC: "CAN"},
		{ID: 54, Edition: edition2012Summer, Year: 2012, City: "London", NOC: "GBR"},
		{ID: 60, Edition: edition2014Winter, Year: 2014, City: "Sochi", NOC: "RUS"},
		{ID: 59, Edition: edition2016Summer, Year: 2016, City: "Rio de Janeiro", NOC: "BRA"},
		{ID: 62, Edition: edition2018Winter, Year: 2018, City: "PyeongChang", NOC: "KOR"},
	}
}

func seedAthletes() []olympics.Athlete {
	return []olympics.Athlete{
		{ID: 89706, Name: "Michael Phelps", Sex: "Male", Born: "30 June 1985", Height: 193, Weight: 91, Country: "United States", CountryNOC: "USA"},
		{ID: 126013, Name: "Katie Ledecky", Sex: "Female", Born: "17 March 1997", Height: 183, Weight: 70, Country: "United States", CountryNOC: "USA"},
		{ID: 133171, Name: "Simone Biles", Sex: "Female", Born: "14 March 1997", Height: 142, Weight: 47, Country: "United States", CountryNOC: "USA"},
		{ID: 69210, Name: "Usain Bolt", Sex: "Male", Born: "21 August 1986", Height: 195, Weight: 94, Country: "Jamaica", CountryNOC: "JAM"},
		{ID: 114463, Name: "Sun Yang", Sex: "Male", Born: "1 December 1991", Height: 198, Weight: 89, Country: "People's Republic of China", CountryNOC: "CHN"},
		{ID: 87390, Name: "Jason Kenny", Sex: "Male", Born: "23 March 1988", Height: 178, Weight: 81, Country: "Great Britain", CountryNOC: "GBR"},
		{ID: 52836, Name: "Marit Bjørgen", Sex: "Female", Born: "21 March 1980", Height: 168, Weight: 68, Country: "Norway", CountryNOC: "NOR"},
		{ID: 15557, Name: "Ole Einar Bjørndalen", Sex: "Male", Born: "27 January 1974", Height: 179, Weight: 65, Country: "Norway", CountryNOC: "NOR"},
		{ID: 112170, Name: "Martin Fourcade", Sex: "Male", Born: "14 September 1988", Height: 185, Weight: 73, Country: "France", CountryNOC: "FRA"},
		{ID: 103320, Name: "Laura Dahlmeier", Sex: "Female", Born: "22 August 1993", Height: 160, Weight: 49, Country: "Germany", CountryNOC: "GER"},
		{ID: 95872, Name: "Charles Hamelin", Sex: "Male", Born: "14 April 1984", Height: 175, Weight: 70, Country: "Canada", CountryNOC: "CAN"},
	}
}

type seedResult struct {
	edition string
	sport   string
	event   string
	medal   string
	pos     string
}

type seedCareer struct {
	athleteID int64
	athlete   string
	noc       string
	results   []seedResult
}

func seedEventResults(games []olympics.GamesEdition) []olympics.EventResult {
	editionIDs := make(map[string]int64, len(games))
	for _, g := range games {
		editionIDs[g.Edition] = g.ID
	}

	careers := []seedCareer{
		{athleteID: 89706, athlete: "Michael Phelps", noc: "USA", results: []seedResult{
			{edition2008Summer, "Swimming", "400 metres Individual Medley, Men", olympics.MedalGold, "1"},
			{edition2008Summer, "Swimming", "200 metres Freestyle, Men", olympics.MedalGold, "1"},
			{edition2008Summer, "Swimming", "100 metres Butterfly, Men", olympics.MedalGold, "1"},
			{edition2008Summer, "Swimming", "4 x 100 metres Medley Relay, Men", olympics.MedalGold, "1"},
			{edition2012Summer, "Swimming", "400 metres Individual Medley, Men", "", "4"},
			{edition2012Summer, "Swimming", "200 metres Butterfly, Men", olympics.MedalSilver, "2"},
			{edition2012Summer, "Swimming", "100 metres Butterfly, Men", olympics.MedalGold, "1"},
			{edition2012Summer, "Swimming", "200 metres Individual Medley, Men", olympics.MedalGold, "1"},
			{edition2016Summer, "Swimming", "200 metres Butterfly, Men", olympics.MedalGold, "1"},
			{edition2016Summer, "Swimming", "100 metres Butterfly, Men", olympics.MedalSilver, "=2"},
			{edition2016Summer, "Swimming", "200 metres Individual Medley, Men", olympics.MedalGold, "1"},
		}},
		{athleteID: 52836, athlete: "Marit Bjørgen", noc: "NOR", results: []seedResult{
			{edition2010Winter, "Cross Country Skiing", "Sprint, Women", olympics.MedalGold, "1"},
			{edition2010Winter, "Cross Country Skiing", "15 kilometres Skiathlon, Women", olympics.MedalGold, "1"},
			{edition2010Winter, "Cross Country Skiing", "10 kilometres, Women", olympics.MedalBronze, "3"},
			{edition2014Winter, "Cross Country Skiing", "15 kilometres Skiathlon, Women", olympics.MedalGold, "1"},
			{edition2014Winter, "Cross Country Skiing", "30 kilometres, Women", olympics.MedalGold, "1"},
			{edition2018Winter, "Cross Country Skiing", "30 kilometres, Women", olympics.MedalGold, "1"},
			{edition2018Winter, "Cross Country Skiing", "15 kilometres Skiathlon, Women", olympics.MedalSilver, "2"},
			{edition2018Winter, "Cross Country Skiing", "10 kilometres, Women", olympics.MedalBronze, "3"},
		}},
		{athleteID: 69210, athlete: "Usain Bolt", noc: "JAM", results: []seedResult{
			{edition2008Summer, "Athletics", "100 metres, Men", olympics.MedalGold, "1"},
			{edition2008Summer, "Athletics", "200 metres, Men", olympics.MedalGold, "1"},
			{edition2012Summer, "Athletics", "100 metres, Men", olympics.MedalGold, "1"},
			{edition2012Summer, "Athletics", "200 metres, Men", olympics.MedalGold, "1"},
			{edition2012Summer, "Athletics", "4 x 100 metres Relay, Men", olympics.MedalGold, "1"},
			{edition2016Summer, "Athletics", "100 metres, Men", olympics.MedalGold, "1"},
			{edition2016Summer, "Athletics", "200 metres, Men", olympics.MedalGold, "1"},
		}},
		{athleteID: 126013, athlete: "Katie Ledecky", noc: "USA", results: []seedResult{
			{edition2012Summer, "Swimming", "800 metres Freestyle, Women", olympics.MedalGold, "1"},
			{edition2016Summer, "Swimming", "200 metres Freestyle, Women", olympics.MedalGold, "1"},
			{edition2016Summer, "Swimming", "400 metres Freestyle, Women", olympics.MedalGold, "1"},
			{edition2016Summer, "Swimming", "800 metres Freestyle, Women", olympics.MedalGold, "1"},
			{edition2016Summer, "Swimming", "4 x 100 metres Freestyle Relay, Women", olympics.MedalSilver, "2"},
		}},
		{athleteID: 133171, athlete: "Simone Biles", noc: "USA", results: []seedResult{
			{edition2016Summer, "Artistic Gymnastics", "Individual All-Around, Women", olympics.MedalGold, "1"},
			{edition2016Summer, "Artistic Gymnastics", "Team All-Around, Women", olympics.MedalGold, "1"},
			{edition2016Summer, "Artistic Gymnastics", "Vault, Women", olympics.MedalGold, "1"},
			{edition2016Summer, "Artistic Gymnastics", "Floor Exercise, Women", olympics.MedalGold, "1"},
			{edition2016Summer, "Artistic Gymnastics", "Balance Beam, Women", olympics.MedalBronze, "3"},
		}},
		{athleteID: 15557, athlete: "Ole Einar Bjørndalen", noc: "NOR", results: []seedResult{
			{edition2010Winter, "Biathlon", "4 x 7.5 kilometres Relay, Men", olympics.MedalGold, "1"},
			{edition2010Winter, "Biathlon", "20 kilometres, Men", olympics.MedalSilver, "2"},
			{edition2014Winter, "Biathlon", "10 kilometres Sprint, Men", olympics.MedalGold, "1"},
			{edition2014Winter, "Biathlon", "Mixed Relay", olympics.MedalGold, "1"},
		}},
		{athleteID: 114463, athlete: "Sun Yang", noc: "CHN", results: []seedResult{
			{edition2008Summer, "Swimming", "1,500 metres Freestyle, Men", "", "AC"},
			{edition2012Summer, "Swimming", "400 metres Freestyle, Men", olympics.MedalGold, "1"},
			{edition2012Summer, "Swimming", "1,500 metres Freestyle, Men", olympics.MedalGold, "1"},
			{edition2012Summer, "Swimming", "200 metres Freestyle, Men", olympics.MedalSilver, "=2"},
			{edition2016Summer, "Swimming", "200 metres Freestyle, Men", olympics.MedalGold, "1"},
			{edition2016Summer, "Swimming", "400 metres Freestyle, Men", olympics.MedalSilver, "2"},
		}},
		{athleteID: 87390, athlete: "Jason Kenny", noc: "GBR", results: []seedResult{
			{edition2008Summer, "Cycling Track", "Sprint, Men", olympics.MedalSilver, "2"},
			{edition2012Summer, "Cycling Track", "Sprint, Men", olympics.MedalGold, "1"},
			{edition2016Summer, "Cycling Track", "Sprint, Men", olympics.MedalGold, "1"},
			{edition2016Summer, "Cycling Track", "Keirin, Men", olympics.MedalGold, "1"},
		}},
		{athleteID: 112170, athlete: "Martin Fourcade", noc: "FRA", results: []seedResult{
			{edition2010Winter, "Biathlon", "15 kilometres Mass Start, Men", olympics.MedalSilver, "2"},
			{edition2014Winter, "Biathlon", "12.5 kilometres Pursuit, Men", olympics.MedalGold, "1"},
			{edition2018Winter, "Biathlon", "12.5 kilometres Pursuit, Men", olympics.MedalGold, "1"},
			{edition2018Winter, "Biathlon", "15 kilometres Mass Start, Men", olympics.MedalGold, "1"},
		}},
		{athleteID: 103320, athlete: "Laura Dahlmeier", noc: "GER", results: []seedResult{
			{edition2014Winter, "Biathlon", "7.5 kilometres Sprint, Women", "", "13"},
			{edition2018Winter, "Biathlon", "7.5 kilometres Sprint, Women", olympics.MedalGold, "1"},
			{edition2018Winter, "Biathlon", "10 kilometres Pursuit, Women", olympics.MedalGold, "1"},
			{edition2018Winter, "Biathlon", "15 kilometres, Women", olympics.MedalBronze, "3"},
		}},
		{athleteID: 95872, athlete: "Charles Hamelin", noc: "CAN", results: []seedResult{
			{edition2010Winter, "Short Track Speed Skating", "5,000 metres Relay, Men", olympics.MedalGold, "1"},
			{edition2014Winter, "Short Track Speed Skating", "1,500 metres, Men", olympics.MedalGold, "1"},
			{edition2018Winter, "Short Track Speed Skating", "1,000 metres, Men", "", "5"},
		}},
	}

	var out []olympics.EventResult
	var resultID int64 = 9000000
	for _, career := range careers {
		for _, r := range career.results {
			resultID++
			out = append(out, olympics.EventResult{
				Edition:     r.edition,
				EditionID:   editionIDs[r.edition],
				CountryNOC:  career.noc,
				Sport:       r.sport,
				Event:       r.event,
				ResultID:    resultID,
				Athlete:     career.athlete,
				AthleteID:   career.athleteID,
				Pos:         r.pos,
				Medal:       r.medal,
				IsTeamSport: false,
			})
		}
	}
	return out
}

func eventsFromResults(results []olympics.EventResult) []olympics.Event {
	out := make([]olympics.Event, 0, len(results))
	for _, r := range results {
		out = append(out, olympics.Event{
			ResultID:     r.ResultID,
			Title:        r.Event,
			Edition:      r.Edition,
			EditionID:    r.EditionID,
			Sport:        r.Sport,
			Participants: "",
		})
	}
	return out
}

func seedMedalTallies(games []olympics.GamesEdition) []olympics.MedalTally {
	type tally struct {
		country, noc         string
		gold, silver, bronze int64
	}
	byEdition := map[string][]tally{
		edition2008Summer: {
			{"People's Republic of China", "CHN", 48, 22, 30},
			{"United States", "USA", 36, 39, 37},
			{"Russian Federation", "RUS", 24, 13, 23},
			{"Great Britain", "GBR", 19, 13, 15},
			{"Germany", "GER", 16, 10, 15},
		},
		edition2010Winter: {
			{"Canada", "CAN", 14, 7, 5},
			{"Germany", "GER", 10, 13, 7},
			{"United States", "USA", 9, 15, 13},
			{"Norway", "NOR", 9, 8, 6},
		},
		edition2012Summer: {
			{"United States", "USA", 46, 29, 29},
			{"People's Republic of China", "CHN", 38, 27, 23},
			{"Great Britain", "GBR", 29, 17, 19},
			{"Russian Federation", "RUS", 24, 26, 32},
			{"Germany", "GER", 11, 19, 14},
		},
		edition2014Winter: {
			{"Russian Federation", "RUS", 13, 11, 9},
			{"Norway", "NOR", 11, 5, 10},
			{"Canada", "CAN", 10, 10, 5},
			{"United States", "USA", 9, 7, 12},
			{"Germany", "GER", 8, 6, 5},
		},
		edition2016Summer: {
			{"United States", "USA", 46, 37, 38},
			{"Great Britain", "GBR", 27, 23, 17},
			{"People's Republic of China", "CHN", 26, 18, 26},
			{"Russian Federation", "RUS", 19, 17, 20},
			{"Germany", "GER", 17, 10, 15},
		},
		edition2018Winter: {
			{"Norway", "NOR", 14, 14, 11},
			{"Germany", "GER", 14, 10, 7},
			{"Canada", "CAN", 11, 8, 10},
			{"United States", "USA", 9, 8, 6},
		},
	}

	var out []olympics.MedalTally
	for _, g := range games {
		for _, t := range byEdition[g.Edition] {
			out = append(out, olympics.MedalTally{
				Edition:    g.Edition,
				EditionID:  g.ID,
				Year:       g.Year,
				Country:    t.country,
				CountryNOC: t.noc,
				Gold:       t.gold,
				Silver:     t.silver,
				Bronze:     t.bronze,
			})
		}
	}
	return out
}
