package olympics

import (
	"strings"

	"github.com/riskibarqy/olympic-data-hub/internal/domain/dataset"
	"github.com/riskibarqy/olympic-data-hub/internal/platform/querybuilder"
)

// Statement names. Table-scoped statements append "/<TABLE>".
const (
	StmtGoldByEditionAndCountry = "gold_by_edition_and_country"
	StmtGoldTrendsByCountry     = "gold_trends_by_country"
	StmtMedalTotalsByYear       = "medal_totals_by_year"
	StmtTopAthletesByMedals     = "top_athletes_by_medals"
	StmtAthleteEventResults     = "athlete_event_results"
	StmtParticipantsByEdition   = "participants_by_edition"
	StmtTableRowCount           = "table_row_count"
	StmtTableColumns            = "table_columns"
)

const DefaultTopAthletesLimit = 10

func statement(name string, b *querybuilder.SelectBuilder) dataset.Statement {
	sql, args := b.MustSQL()
	return dataset.Statement{Name: name, SQL: sql, Args: args}
}

// GoldByEditionAndCountry sums gold medals per edition and country, most golds first.
func GoldByEditionAndCountry() dataset.Statement {
	return statement(StmtGoldByEditionAndCountry, querybuilder.
		Select(
			TableGames+".EDITION AS EDITION",
			TableMedalTally+".COUNTRY AS COUNTRY",
			"SUM(GOLD) AS TOTAL_GOLD",
		).
		From(TableGames).
		Join(TableMedalTally, TableGames+".EDITION_ID = "+TableMedalTally+".EDITION_ID").
		GroupBy(TableGames+".EDITION", TableMedalTally+".COUNTRY").
		OrderBy("TOTAL_GOLD DESC"))
}

// GoldTrendsByCountry sums gold medals per year, season and country.
func GoldTrendsByCountry() dataset.Statement {
	return statement(StmtGoldTrendsByCountry, querybuilder.
		Select(
			"YEAR",
			"CASE WHEN EDITION LIKE '%Summer%' THEN 'Summer' ELSE 'Winter' END AS EDITION_TYPE",
			"COUNTRY",
			"SUM(GOLD) AS GOLD_MEDALS",
		).
		From(TableMedalTally).
		GroupBy("YEAR", "COUNTRY", "EDITION_TYPE").
		OrderBy("YEAR", "GOLD_MEDALS DESC"))
}

// MedalTotalsByYear sums gold, silver and bronze per year for one season.
func MedalTotalsByYear(season Season) dataset.Statement {
	return statement(StmtMedalTotalsByYear, querybuilder.
		Select(
			"YEAR",
			"SUM(GOLD) AS TOTAL_GOLD",
			"SUM(SILVER) AS TOTAL_SILVER",
			"SUM(BRONZE) AS TOTAL_BRONZE",
		).
		From(TableMedalTally).
		Where(querybuilder.Like("EDITION", season.Pattern())).
		GroupBy("YEAR").
		OrderBy("YEAR"))
}

// TopAthletesByMedals ranks athletes by number of medals won.
func TopAthletesByMedals(limit int) dataset.Statement {
	if limit <= 0 {
		limit = DefaultTopAthletesLimit
	}
	return statement(StmtTopAthletesByMedals, querybuilder.
		Select("ATHLETE", "COUNT(MEDAL) AS MEDAL_COUNT").
		From(TableAthleteEventResult).
		GroupBy("ATHLETE").
		OrderBy("MEDAL_COUNT DESC").
		Limit(limit))
}

// AthleteEventResults lists every event result of one athlete, matched by exact name.
func AthleteEventResults(athlete string) dataset.Statement {
	return statement(StmtAthleteEventResults, querybuilder.
		Select("EDITION", "SPORT", "EVENT", "MEDAL").
		From(TableAthleteEventResult).
		Where(querybuilder.Eq("ATHLETE", athlete)))
}

// ParticipantsByEdition counts distinct athletes per edition of one season, newest first.
func ParticipantsByEdition(season Season) dataset.Statement {
	return statement(StmtParticipantsByEdition, querybuilder.
		Select("EDITION", "COUNT(DISTINCT ATHLETE_ID) AS NUM_PARTICIPANTS").
		From(TableAthleteEventResult).
		Where(querybuilder.Like("EDITION", season.Pattern())).
		GroupBy("EDITION").
		OrderBy("EDITION DESC"))
}

// TableRowCount counts the rows of a warehouse table.
func TableRowCount(table string) (dataset.Statement, error) {
	if err := ValidateTable(table); err != nil {
		return dataset.Statement{}, err
	}
	return statement(StmtTableRowCount+"/"+table, querybuilder.
		Select("COUNT(*) AS ROW_COUNT").
		From(table)), nil
}

// TableColumns selects no rows; the result carries only the column list.
func TableColumns(table string) (dataset.Statement, error) {
	if err := ValidateTable(table); err != nil {
		return dataset.Statement{}, err
	}
	return statement(StmtTableColumns+"/"+table, querybuilder.
		Select("*").
		From(table).
		Where(querybuilder.Expr("1=0"))), nil
}

// SplitStatementName separates a table-scoped statement name into its base and table.
func SplitStatementName(name string) (base, table string) {
	base, table, _ = strings.Cut(name, "/")
	return base, table
}

// FixedStatements returns the statements whose SQL does not depend on user input.
func FixedStatements(topAthletesLimit int) []dataset.Statement {
	return []dataset.Statement{
		GoldByEditionAndCountry(),
		GoldTrendsByCountry(),
		MedalTotalsByYear(SeasonSummer),
		MedalTotalsByYear(SeasonWinter),
		TopAthletesByMedals(topAthletesLimit),
		ParticipantsByEdition(SeasonSummer),
		ParticipantsByEdition(SeasonWinter),
	}
}
