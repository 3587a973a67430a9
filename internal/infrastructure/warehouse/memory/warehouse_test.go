package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/olympic-data-hub/internal/domain/dataset"
	"github.com/riskibarqy/olympic-data-hub/internal/domain/olympics"
)

func mustQuery(t *testing.T, w *Warehouse, stmt dataset.Statement) dataset.Table {
	t.Helper()
	table, err := w.Query(context.Background(), stmt)
	if err != nil {
		t.Fatalf("query %s: %v", stmt.Name, err)
	}
	return table
}

func TestWarehouse_GoldByEditionAndCountry(t *testing.T) {
	t.Parallel()

	table := mustQuery(t, NewSeeded(), olympics.GoldByEditionAndCountry())

	if got := table.Cell(0, olympics.ColEdition); got != edition2008Summer {
		t.Fatalf("expected top edition %q, got %v", edition2008Summer, got)
	}
	if got := table.Cell(0, olympics.ColTotalGold); got != int64(48) {
		t.Fatalf("expected 48 golds, got %v", got)
	}
	prev := int64(1 << 62)
	for i := 0; i < table.Len(); i++ {
		gold, _ := table.Cell(i, olympics.ColTotalGold).(int64)
		if gold > prev {
			t.Fatalf("row %d not sorted by golds descending", i)
		}
		prev = gold
	}
}

func TestWarehouse_GoldTrendsByCountry(t *testing.T) {
	t.Parallel()

	table := mustQuery(t, NewSeeded(), olympics.GoldTrendsByCountry())

	if got := table.Cell(0, olympics.ColYear); got != int64(2008) {
		t.Fatalf("expected first year 2008, got %v", got)
	}
	if got := table.Cell(0, olympics.ColEditionType); got != string(olympics.SeasonSummer) {
		t.Fatalf("expected Summer, got %v", got)
	}
	types := table.Unique(olympics.ColEditionType)
	if len(types) != 2 {
		t.Fatalf("expected both seasons, got %v", types)
	}
}

func TestWarehouse_MedalTotalsByYear(t *testing.T) {
	t.Parallel()

	w := NewSeeded()
	summer := mustQuery(t, w, olympics.MedalTotalsByYear(olympics.SeasonSummer))
	winter := mustQuery(t, w, olympics.MedalTotalsByYear(olympics.SeasonWinter))

	if got := summer.Unique(olympics.ColYear); len(got) != 3 || got[0] != "2008" || got[2] != "2016" {
		t.Fatalf("unexpected summer years: %v", got)
	}
	if got := summer.Cell(0, olympics.ColTotalGold); got != int64(143) {
		t.Fatalf("expected 143 golds in 2008, got %v", got)
	}
	if got := winter.Unique(olympics.ColYear); len(got) != 3 || got[0] != "2010" {
		t.Fatalf("unexpected winter years: %v", got)
	}
}

func TestWarehouse_TopAthletesByMedals(t *testing.T) {
	t.Parallel()

	w := NewSeeded()
	table := mustQuery(t, w, olympics.TopAthletesByMedals(olympics.DefaultTopAthletesLimit))

	if table.Len() != olympics.DefaultTopAthletesLimit {
		t.Fatalf("expected %d rows, got %d", olympics.DefaultTopAthletesLimit, table.Len())
	}
	if got := table.Cell(0, olympics.ColAthlete); got != "Michael Phelps" {
		t.Fatalf("expected Michael Phelps first, got %v", got)
	}
	if got := table.Cell(0, olympics.ColMedalCount); got != int64(10) {
		t.Fatalf("expected 10 medals, got %v", got)
	}

	short := mustQuery(t, w, olympics.TopAthletesByMedals(3))
	if short.Len() != 3 {
		t.Fatalf("expected limit 3 to apply, got %d rows", short.Len())
	}
}

func TestWarehouse_AthleteEventResults(t *testing.T) {
	t.Parallel()

	w := NewSeeded()
	table := mustQuery(t, w, olympics.AthleteEventResults("Usain Bolt"))
	if table.Len() != 7 {
		t.Fatalf("expected 7 results, got %d", table.Len())
	}

	phelps := mustQuery(t, w, olympics.AthleteEventResults("Michael Phelps"))
	empty := phelps.FilterEq(olympics.ColMedal, "")
	if empty.Len() != 1 {
		t.Fatalf("expected one result without a medal, got %d", empty.Len())
	}

	none := mustQuery(t, w, olympics.AthleteEventResults("Nobody"))
	if !none.IsEmpty() || len(none.Columns) != 4 {
		t.Fatalf("expected empty table with columns, got %+v", none)
	}
}

func TestWarehouse_ParticipantsByEdition(t *testing.T) {
	t.Parallel()

	table := mustQuery(t, NewSeeded(), olympics.ParticipantsByEdition(olympics.SeasonWinter))

	want := []struct {
		edition string
		count   int64
	}{
		{edition2018Winter, 4},
		{edition2014Winter, 5},
		{edition2010Winter, 4},
	}
	if table.Len() != len(want) {
		t.Fatalf("expected %d editions, got %d", len(want), table.Len())
	}
	for i, w := range want {
		if got := table.Cell(i, olympics.ColEdition); got != w.edition {
			t.Fatalf("row %d: expected %q, got %v", i, w.edition, got)
		}
		if got := table.Cell(i, olympics.ColNumParticipants); got != w.count {
			t.Fatalf("row %d: expected %d participants, got %v", i, w.count, got)
		}
	}
}

func TestWarehouse_TableSummaryStatements(t *testing.T) {
	t.Parallel()

	w := NewSeeded()
	for _, table := range olympics.Tables() {
		countStmt, err := olympics.TableRowCount(table)
		if err != nil {
			t.Fatalf("row count statement: %v", err)
		}
		count := mustQuery(t, w, countStmt)
		if count.Len() != 1 {
			t.Fatalf("%s: expected one row, got %d", table, count.Len())
		}

		colStmt, err := olympics.TableColumns(table)
		if err != nil {
			t.Fatalf("columns statement: %v", err)
		}
		cols := mustQuery(t, w, colStmt)
		if len(cols.Columns) == 0 || !cols.IsEmpty() {
			t.Fatalf("%s: expected columns without rows, got %+v", table, cols)
		}
	}

	count := mustQuery(t, w, mustStatement(t)(olympics.TableRowCount(olympics.TableGames)))
	if got := count.Cell(0, olympics.ColRowCount); got != int64(6) {
		t.Fatalf("expected 6 games, got %v", got)
	}
}

func TestWarehouse_RejectsUnknownStatements(t *testing.T) {
	t.Parallel()

	w := NewSeeded()
	_, err := w.Query(context.Background(), dataset.Statement{Name: "drop_everything", SQL: "DROP TABLE OLYMPIC_GAMES"})
	if err == nil {
		t.Fatalf("expected unknown statement to fail")
	}

	stmt := olympics.AthleteEventResults("x")
	stmt.Args = []any{42}
	if _, err := w.Query(context.Background(), stmt); err == nil {
		t.Fatalf("expected non-text argument to fail")
	}
}

func TestWarehouse_HonorsCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewSeeded().Query(ctx, olympics.GoldTrendsByCountry()); err == nil {
		t.Fatalf("expected canceled context error")
	}
}

func TestLike(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value, pattern string
		want           bool
	}{
		{"2016 Summer Olympics", "%Summer%", true},
		{"2018 Winter Olympics", "%Summer%", false},
		{"Summer", "Summer", true},
		{"2016 Summer Olympics", "2016%", true},
		{"2016 Summer Olympics", "%Games", false},
	}
	for _, tc := range cases {
		if got := like(tc.value, tc.pattern); got != tc.want {
			t.Fatalf("like(%q, %q) = %v, want %v", tc.value, tc.pattern, got, tc.want)
		}
	}
}

func mustStatement(t *testing.T) func(dataset.Statement, error) dataset.Statement {
	return func(stmt dataset.Statement, err error) dataset.Statement {
		t.Helper()
		if err != nil {
			t.Fatalf("statement: %v", err)
		}
		return stmt
	}
}
