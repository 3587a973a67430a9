package main

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/olympic-data-hub/internal/domain/olympics"
	"github.com/riskibarqy/olympic-data-hub/internal/infrastructure/warehouse/memory"
	"github.com/riskibarqy/olympic-data-hub/internal/platform/logging"
)

type seedStep struct {
	table string
	sql   string
	rows  [][]any
}

// seed replaces the warehouse tables with the bundled sample dataset in a
// single transaction.
func seed(ctx context.Context, dbURL string, logger *logging.Logger) error {
	db, err := sqlx.ConnectContext(ctx, "postgres", dbURL)
	if err != nil {
		return crerr.Wrap(err, "connect warehouse")
	}
	defer db.Close()

	steps := seedSteps(memory.SeedDataset())

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin seed transaction")
	}
	defer func() { _ = tx.Rollback() }()

	for i := len(steps) - 1; i >= 0; i-- {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+steps[i].table); err != nil {
			return crerr.Wrapf(err, "clear %s", steps[i].table)
		}
	}
	for _, step := range steps {
		for _, row := range step.rows {
			if _, err := tx.ExecContext(ctx, step.sql, row...); err != nil {
				return crerr.Wrapf(err, "insert into %s", step.table)
			}
		}
		logger.InfoContext(ctx, "seeded table", "table", step.table, "rows", len(step.rows))
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit seed transaction")
	}
	return nil
}

func seedSteps(data memory.Dataset) []seedStep {
	steps := []seedStep{
		{
			table: olympics.TableCountry,
			sql:   "INSERT INTO " + olympics.TableCountry + " (NOC, COUNTRY) VALUES ($1, $2)",
		},
		{
			table: olympics.TableGames,
			sql:   "INSERT INTO " + olympics.TableGames + " (EDITION, EDITION_ID, YEAR, CITY, COUNTRY_NOC, ISHELD) VALUES ($1, $2, $3, $4, $5, $6)",
		},
		{
			table: olympics.TableAthleteBio,
			sql:   "INSERT INTO " + olympics.TableAthleteBio + " (ATHLETE_ID, NAME, SEX, BORN, HEIGHT, WEIGHT, COUNTRY, COUNTRY_NOC) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
		},
		{
			table: olympics.TableAthleteEventResult,
			sql:   "INSERT INTO " + olympics.TableAthleteEventResult + " (EDITION, EDITION_ID, COUNTRY_NOC, SPORT, EVENT, RESULT_ID, ATHLETE, ATHLETE_ID, POS, MEDAL, ISTEAMSPORT) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)",
		},
		{
			table: olympics.TableResults,
			sql:   "INSERT INTO " + olympics.TableResults + " (RESULT_ID, EVENT_TITLE, EDITION, EDITION_ID, SPORT, RESULT_PARTICIPANTS) VALUES ($1, $2, $3, $4, $5, $6)",
		},
		{
			table: olympics.TableMedalTally,
			sql:   "INSERT INTO " + olympics.TableMedalTally + " (EDITION, EDITION_ID, YEAR, COUNTRY, COUNTRY_NOC, GOLD, SILVER, BRONZE, TOTAL) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)",
		},
	}

	for _, c := range data.Countries {
		steps[0].rows = append(steps[0].rows, []any{c.NOC, c.Name})
	}
	for _, g := range data.Games {
		steps[1].rows = append(steps[1].rows, []any{g.Edition, g.ID, g.Year, g.City, g.NOC, nullable(g.IsHeld)})
	}
	for _, a := range data.Athletes {
		steps[2].rows = append(steps[2].rows, []any{a.ID, a.Name, a.Sex, a.Born, a.Height, a.Weight, a.Country, a.CountryNOC})
	}
	for _, r := range data.EventResults {
		steps[3].rows = append(steps[3].rows, []any{r.Edition, r.EditionID, r.CountryNOC, r.Sport, r.Event, r.ResultID, r.Athlete, r.AthleteID, r.Pos, nullable(r.Medal), r.IsTeamSport})
	}
	for _, e := range data.Events {
		steps[4].rows = append(steps[4].rows, []any{e.ResultID, e.Title, e.Edition, e.EditionID, e.Sport, e.Participants})
	}
	for _, m := range data.MedalTallies {
		steps[5].rows = append(steps[5].rows, []any{m.Edition, m.EditionID, m.Year, m.Country, m.CountryNOC, m.Gold, m.Silver, m.Bronze, m.Total()})
	}
	return steps
}

// nullable stores empty strings as NULL, the way the source tables mark a
// missing medal.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
