package chart

import "github.com/riskibarqy/olympic-data-hub/internal/domain/dataset"

type Type string

const (
	TypeBar     Type = "bar"
	TypeLine    Type = "line"
	TypePie     Type = "pie"
	TypeScatter Type = "scatter"
)

const (
	ModeLines        = "lines"
	ModeLinesMarkers = "lines+markers"

	BarModeGroup = "group"
)

// Labels maps a column name to its display title.
type Labels map[string]string

// For returns the display title of column, falling back to the column name.
func (l Labels) For(column string) string {
	if title, ok := l[column]; ok && title != "" {
		return title
	}
	return column
}

type Point struct {
	X any     `json:"x"`
	Y float64 `json:"y"`
}

type Series struct {
	Name   string  `json:"name"`
	Mode   string  `json:"mode,omitempty"`
	Points []Point `json:"points"`
}

// Figure is a renderer-neutral chart description.
type Figure struct {
	Type        Type     `json:"type"`
	Title       string   `json:"title"`
	XAxisTitle  string   `json:"xAxisTitle,omitempty"`
	YAxisTitle  string   `json:"yAxisTitle,omitempty"`
	LegendTitle string   `json:"legendTitle,omitempty"`
	BarMode     string   `json:"barMode,omitempty"`
	Series      []Series `json:"series"`
}

// PointCount sums points across all series.
func (f Figure) PointCount() int {
	n := 0
	for _, s := range f.Series {
		n += len(s.Points)
	}
	return n
}

// points pairs column x with numeric column y. Rows whose y is not numeric
// are skipped; a missing column yields no points.
func points(table dataset.Table, x, y string) []Point {
	xi, yi := table.ColumnIndex(x), table.ColumnIndex(y)
	out := make([]Point, 0, table.Len())
	if xi < 0 || yi < 0 {
		return out
	}
	for _, row := range table.Rows {
		if xi >= len(row) || yi >= len(row) {
			continue
		}
		v, ok := dataset.Float(row[yi])
		if !ok {
			continue
		}
		out = append(out, Point{X: row[xi], Y: v})
	}
	return out
}
