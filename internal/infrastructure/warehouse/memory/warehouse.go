package memory

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/olympic-data-hub/internal/domain/dataset"
	"github.com/riskibarqy/olympic-data-hub/internal/domain/olympics"
)

var limitPattern = regexp.MustCompile(`(?i)\bLIMIT\s+(\d+)`)

// Warehouse answers catalog statements from an in-memory Dataset. It
// dispatches on the statement name, so only catalog statements are supported.
type Warehouse struct {
	mu   sync.RWMutex
	data Dataset
}

func New(data Dataset) *Warehouse {
	return &Warehouse{data: data}
}

// NewSeeded returns a warehouse loaded with SeedDataset.
func NewSeeded() *Warehouse {
	return New(SeedDataset())
}

// Replace swaps the whole dataset.
func (w *Warehouse) Replace(data Dataset) {
	w.mu.Lock()
	w.data = data
	w.mu.Unlock()
}

func (w *Warehouse) Query(ctx context.Context, stmt dataset.Statement) (dataset.Table, error) {
	if err := ctx.Err(); err != nil {
		return dataset.Table{}, err
	}
	if err := stmt.Validate(); err != nil {
		return dataset.Table{}, err
	}

	w.mu.RLock()
	defer w.mu.RUnlock()

	base, table := olympics.SplitStatementName(stmt.Name)
	switch base {
	case olympics.StmtGoldByEditionAndCountry:
		return w.goldByEditionAndCountry(), nil
	case olympics.StmtGoldTrendsByCountry:
		return w.goldTrendsByCountry(), nil
	case olympics.StmtMedalTotalsByYear:
		pattern, err := stringArg(stmt, 0)
		if err != nil {
			return dataset.Table{}, err
		}
		return w.medalTotalsByYear(pattern), nil
	case olympics.StmtTopAthletesByMedals:
		return w.topAthletesByMedals(limitOf(stmt.SQL)), nil
	case olympics.StmtAthleteEventResults:
		athlete, err := stringArg(stmt, 0)
		if err != nil {
			return dataset.Table{}, err
		}
		return w.athleteEventResults(athlete), nil
	case olympics.StmtParticipantsByEdition:
		pattern, err := stringArg(stmt, 0)
		if err != nil {
			return dataset.Table{}, err
		}
		return w.participantsByEdition(pattern), nil
	case olympics.StmtTableRowCount:
		n, ok := w.rowCount(table)
		if !ok {
			return dataset.Table{}, crerr.Newf("relation %q does not exist", table)
		}
		return dataset.Table{Columns: []string{olympics.ColRowCount}, Rows: [][]any{{n}}}, nil
	case olympics.StmtTableColumns:
		cols, ok := tableColumns[table]
		if !ok {
			return dataset.Table{}, crerr.Newf("relation %q does not exist", table)
		}
		return dataset.Table{Columns: append([]string(nil), cols...), Rows: [][]any{}}, nil
	default:
		return dataset.Table{}, crerr.Newf("statement %q is not supported by the memory warehouse", stmt.Name)
	}
}

func (w *Warehouse) goldByEditionAndCountry() dataset.Table {
	editions := make(map[int64]string, len(w.data.Games))
	for _, g := range w.data.Games {
		editions[g.ID] = g.Edition
	}

	type key struct{ edition, country string }
	totals := make(map[key]int64)
	var order []key
	for _, t := range w.data.MedalTallies {
		edition, ok := editions[t.EditionID]
		if !ok {
			continue
		}
		k := key{edition, t.Country}
		if _, seen := totals[k]; !seen {
			order = append(order, k)
		}
		totals[k] += t.Gold
	}
	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]] > totals[order[j]]
	})

	out := newTable(olympics.ColEdition, olympics.ColCountry, olympics.ColTotalGold)
	for _, k := range order {
		out.Rows = append(out.Rows, []any{k.edition, k.country, totals[k]})
	}
	return out
}

func (w *Warehouse) goldTrendsByCountry() dataset.Table {
	type key struct {
		year    int
		country string
		season  olympics.Season
	}
	totals := make(map[key]int64)
	var order []key
	for _, t := range w.data.MedalTallies {
		k := key{t.Year, t.Country, olympics.SeasonOf(t.Edition)}
		if _, seen := totals[k]; !seen {
			order = append(order, k)
		}
		totals[k] += t.Gold
	}
	sort.SliceStable(order, func(i, j int) bool {
		if order[i].year != order[j].year {
			return order[i].year < order[j].year
		}
		return totals[order[i]] > totals[order[j]]
	})

	out := newTable(olympics.ColYear, olympics.ColEditionType, olympics.ColCountry, olympics.ColGoldMedals)
	for _, k := range order {
		out.Rows = append(out.Rows, []any{int64(k.year), string(k.season), k.country, totals[k]})
	}
	return out
}

func (w *Warehouse) medalTotalsByYear(pattern string) dataset.Table {
	type sums struct{ gold, silver, bronze int64 }
	byYear := make(map[int]*sums)
	for _, t := range w.data.MedalTallies {
		if !like(t.Edition, pattern) {
			continue
		}
		s, ok := byYear[t.Year]
		if !ok {
			s = &sums{}
			byYear[t.Year] = s
		}
		s.gold += t.Gold
		s.silver += t.Silver
		s.bronze += t.Bronze
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	out := newTable(olympics.ColYear, olympics.ColTotalGold, olympics.ColTotalSilver, olympics.ColTotalBronze)
	for _, y := range years {
		s := byYear[y]
		out.Rows = append(out.Rows, []any{int64(y), s.gold, s.silver, s.bronze})
	}
	return out
}

func (w *Warehouse) topAthletesByMedals(limit int) dataset.Table {
	counts := make(map[string]int64)
	var names []string
	for _, r := range w.data.EventResults {
		if _, seen := counts[r.Athlete]; !seen {
			names = append(names, r.Athlete)
			counts[r.Athlete] = 0
		}
		if r.HasMedal() {
			counts[r.Athlete]++
		}
	}
	sort.SliceStable(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}

	out := newTable(olympics.ColAthlete, olympics.ColMedalCount)
	for _, name := range names {
		out.Rows = append(out.Rows, []any{name, counts[name]})
	}
	return out
}

func (w *Warehouse) athleteEventResults(athlete string) dataset.Table {
	out := newTable(olympics.ColEdition, olympics.ColSport, olympics.ColEvent, olympics.ColMedal)
	for _, r := range w.data.EventResults {
		if r.Athlete != athlete {
			continue
		}
		var medal any
		if r.HasMedal() {
			medal = r.Medal
		}
		out.Rows = append(out.Rows, []any{r.Edition, r.Sport, r.Event, medal})
	}
	return out
}

func (w *Warehouse) participantsByEdition(pattern string) dataset.Table {
	athletes := make(map[string]map[int64]struct{})
	for _, r := range w.data.EventResults {
		if !like(r.Edition, pattern) {
			continue
		}
		set, ok := athletes[r.Edition]
		if !ok {
			set = make(map[int64]struct{})
			athletes[r.Edition] = set
		}
		set[r.AthleteID] = struct{}{}
	}

	editions := make([]string, 0, len(athletes))
	for e := range athletes {
		editions = append(editions, e)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(editions)))

	out := newTable(olympics.ColEdition, olympics.ColNumParticipants)
	for _, e := range editions {
		out.Rows = append(out.Rows, []any{e, int64(len(athletes[e]))})
	}
	return out
}

func (w *Warehouse) rowCount(table string) (int64, bool) {
	switch table {
	case olympics.TableCountry:
		return int64(len(w.data.Countries)), true
	case olympics.TableGames:
		return int64(len(w.data.Games)), true
	case olympics.TableAthleteBio:
		return int64(len(w.data.Athletes)), true
	case olympics.TableAthleteEventResult:
		return int64(len(w.data.EventResults)), true
	case olympics.TableResults:
		return int64(len(w.data.Events)), true
	case olympics.TableMedalTally:
		return int64(len(w.data.MedalTallies)), true
	default:
		return 0, false
	}
}

var tableColumns = map[string][]string{
	olympics.TableCountry:            {"NOC", "COUNTRY"},
	olympics.TableGames:              {"EDITION", "EDITION_ID", "EDITION_URL", "YEAR", "CITY", "COUNTRY_FLAG_URL", "COUNTRY_NOC", "START_DATE", "END_DATE", "COMPETITION_DATE", "ISHELD"},
	olympics.TableAthleteBio:         {"ATHLETE_ID", "NAME", "SEX", "BORN", "HEIGHT", "WEIGHT", "COUNTRY", "COUNTRY_NOC", "DESCRIPTION", "SPECIAL_NOTES"},
	olympics.TableAthleteEventResult: {"EDITION", "EDITION_ID", "COUNTRY_NOC", "SPORT", "EVENT", "RESULT_ID", "ATHLETE", "ATHLETE_ID", "POS", "MEDAL", "ISTEAMSPORT"},
	olympics.TableResults:            {"RESULT_ID", "EVENT_TITLE", "EDITION", "EDITION_ID", "SPORT", "SPORT_URL", "RESULT_DATE", "RESULT_LOCATION", "RESULT_PARTICIPANTS", "RESULT_FORMAT", "RESULT_DETAIL", "RESULT_DESCRIPTION"},
	olympics.TableMedalTally:         {"EDITION", "EDITION_ID", "YEAR", "COUNTRY", "COUNTRY_NOC", "GOLD", "SILVER", "BRONZE", "TOTAL"},
}

func newTable(columns ...string) dataset.Table {
	return dataset.Table{Columns: columns, Rows: [][]any{}}
}

func stringArg(stmt dataset.Statement, i int) (string, error) {
	if i >= len(stmt.Args) {
		return "", crerr.Newf("statement %s: missing argument $%d", stmt.Name, i+1)
	}
	v, ok := stmt.Args[i].(string)
	if !ok {
		return "", crerr.Newf("statement %s: argument $%d must be text, got %T", stmt.Name, i+1, stmt.Args[i])
	}
	return v, nil
}

func limitOf(sql string) int {
	m := limitPattern.FindStringSubmatch(sql)
	if len(m) != 2 {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// like supports the '%' wildcard only, which is all the catalog uses.
func like(value, pattern string) bool {
	parts := strings.Split(pattern, "%")
	if len(parts) == 1 {
		return value == pattern
	}
	if !strings.HasPrefix(value, parts[0]) {
		return false
	}
	value = value[len(parts[0]):]
	last := parts[len(parts)-1]
	for _, part := range parts[1 : len(parts)-1] {
		idx := strings.Index(value, part)
		if idx < 0 {
			return false
		}
		value = value[idx+len(part):]
	}
	return strings.HasSuffix(value, last)
}
