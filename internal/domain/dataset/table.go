package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Table is a tabular query result: ordered columns and rows in the order
// the warehouse returned them. Column lookup is case-insensitive.
type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

func Empty() Table {
	return Table{Columns: []string{}, Rows: [][]any{}}
}

func (t Table) Len() int {
	return len(t.Rows)
}

func (t Table) IsEmpty() bool {
	return len(t.Rows) == 0
}

// ColumnIndex returns -1 when name is not a column.
func (t Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if strings.EqualFold(col, name) {
			return i
		}
	}
	return -1
}

func (t Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Column returns the raw values of one column, or nil when it does not exist.
func (t Table) Column(name string) []any {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	out := make([]any, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, cellAt(row, idx))
	}
	return out
}

// Cell returns the value of column name in row i.
func (t Table) Cell(i int, name string) any {
	idx := t.ColumnIndex(name)
	if idx < 0 || i < 0 || i >= len(t.Rows) {
		return nil
	}
	return cellAt(t.Rows[i], idx)
}

// Unique lists the distinct formatted values of a column in first-appearance order.
func (t Table) Unique(name string) []string {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return []string{}
	}
	seen := make(map[string]struct{}, len(t.Rows))
	out := make([]string, 0)
	for _, row := range t.Rows {
		v := FormatCell(cellAt(row, idx))
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// FilterIn keeps rows whose column value is one of values. An empty value
// list means no restriction. Filtering on a missing column yields no rows.
func (t Table) FilterIn(name string, values []string) Table {
	if len(values) == 0 {
		return t.Clone()
	}
	allowed := make(map[string]struct{}, len(values))
	for _, v := range values {
		allowed[v] = struct{}{}
	}
	return t.filter(name, func(v string) bool {
		_, ok := allowed[v]
		return ok
	})
}

// FilterEq keeps rows whose column value formats to exactly value.
func (t Table) FilterEq(name, value string) Table {
	return t.filter(name, func(v string) bool { return v == value })
}

func (t Table) filter(name string, keep func(string) bool) Table {
	out := Table{Columns: cloneColumns(t.Columns), Rows: [][]any{}}
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return out
	}
	for _, row := range t.Rows {
		if keep(FormatCell(cellAt(row, idx))) {
			out.Rows = append(out.Rows, cloneRow(row))
		}
	}
	return out
}

// Clone deep-copies the row slices. Cell values are shared.
func (t Table) Clone() Table {
	out := Table{Columns: cloneColumns(t.Columns), Rows: make([][]any, 0, len(t.Rows))}
	for _, row := range t.Rows {
		out.Rows = append(out.Rows, cloneRow(row))
	}
	return out
}

// Records returns rows as column-keyed maps, for JSON rendering.
func (t Table) Records() []map[string]any {
	out := make([]map[string]any, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]any, len(t.Columns))
		for i, col := range t.Columns {
			rec[col] = cellAt(row, i)
		}
		out = append(out, rec)
	}
	return out
}

func cellAt(row []any, idx int) any {
	if idx < 0 || idx >= len(row) {
		return nil
	}
	return row[idx]
}

func cloneColumns(cols []string) []string {
	if cols == nil {
		return []string{}
	}
	return append([]string(nil), cols...)
}

func cloneRow(row []any) []any {
	return append([]any(nil), row...)
}

// FormatCell renders a cell as display text. Whole floats print without a
// fractional part so 1996 and 1996.0 group together.
func FormatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case float32:
		return formatFloat(float64(x))
	case float64:
		return formatFloat(x)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format(time.RFC3339)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func formatFloat(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Float converts a numeric cell. ok is false for nil and non-numeric values.
func Float(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	case []byte:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(x)), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
