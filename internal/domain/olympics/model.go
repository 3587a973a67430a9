package olympics

import (
	"fmt"
	"strings"
)

// Season splits editions into Summer and Winter Games.
type Season string

const (
	SeasonSummer Season = "Summer"
	SeasonWinter Season = "Winter"
)

var Seasons = []Season{SeasonSummer, SeasonWinter}

// SeasonOf classifies an edition name. Anything not named Summer is Winter,
// matching the warehouse CASE expression.
func SeasonOf(edition string) Season {
	if strings.Contains(edition, string(SeasonSummer)) {
		return SeasonSummer
	}
	return SeasonWinter
}

// Pattern is the LIKE pattern selecting editions of this season.
func (s Season) Pattern() string {
	return "%" + string(s) + "%"
}

func (s Season) Validate() error {
	switch s {
	case SeasonSummer, SeasonWinter:
		return nil
	default:
		return fmt.Errorf("invalid season: %q", s)
	}
}

// GamesEdition is one instance of the Olympic Games, e.g. "2016 Summer Olympics".
type GamesEdition struct {
	ID      int64
	Edition string
	Year    int
	City    string
	NOC     string
	IsHeld  string
}

func (g GamesEdition) Season() Season {
	return SeasonOf(g.Edition)
}

// Country is a participating nation or team keyed by its NOC code.
type Country struct {
	NOC  string
	Name string
}

// Athlete is a competitor from the biography table.
type Athlete struct {
	ID         int64
	Name       string
	Sex        string
	Born       string
	Height     float64
	Weight     float64
	Country    string
	CountryNOC string
}

// Event is one contested event of an edition.
type Event struct {
	ResultID     int64
	Title        string
	Edition      string
	EditionID    int64
	Sport        string
	Participants string
}

// Medal values as stored in the results table. Empty means no medal.
const (
	MedalGold   = "Gold"
	MedalSilver = "Silver"
	MedalBronze = "Bronze"
)

// EventResult is one athlete's placing in one event of one edition.
type EventResult struct {
	Edition     string
	EditionID   int64
	CountryNOC  string
	Sport       string
	Event       string
	ResultID    int64
	Athlete     string
	AthleteID   int64
	Pos         string
	Medal       string
	IsTeamSport bool
}

func (r EventResult) HasMedal() bool {
	return r.Medal != ""
}

// MedalTally aggregates medals for one country in one edition.
type MedalTally struct {
	Edition    string
	EditionID  int64
	Year       int
	Country    string
	CountryNOC string
	Gold       int64
	Silver     int64
	Bronze     int64
}

func (m MedalTally) Total() int64 {
	return m.Gold + m.Silver + m.Bronze
}

func (m MedalTally) Validate() error {
	if m.Edition == "" {
		return fmt.Errorf("medal tally edition is required")
	}
	if m.Country == "" {
		return fmt.Errorf("medal tally country is required")
	}
	if m.Gold < 0 || m.Silver < 0 || m.Bronze < 0 {
		return fmt.Errorf("medal counts must not be negative")
	}
	return nil
}
