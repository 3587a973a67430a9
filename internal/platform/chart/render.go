package chart

import "github.com/riskibarqy/olympic-data-hub/internal/domain/dataset"

// Bar plots y against x as a single bar series.
func Bar(table dataset.Table, x, y, title string, labels Labels) Figure {
	return xyFigure(TypeBar, "", table, x, y, title, labels)
}

// Line plots y against x as a single line series.
func Line(table dataset.Table, x, y, title string, labels Labels) Figure {
	return xyFigure(TypeLine, ModeLines, table, x, y, title, labels)
}

func xyFigure(typ Type, mode string, table dataset.Table, x, y, title string, labels Labels) Figure {
	return Figure{
		Type:       typ,
		Title:      title,
		XAxisTitle: labels.For(x),
		YAxisTitle: labels.For(y),
		Series: []Series{{
			Name:   labels.For(y),
			Mode:   mode,
			Points: points(table, x, y),
		}},
	}
}

// Pie plots one slice per row, named by names and sized by values.
func Pie(table dataset.Table, names, values, title string, labels Labels) Figure {
	return Figure{
		Type:        TypePie,
		Title:       title,
		LegendTitle: labels.For(names),
		Series: []Series{{
			Name:   labels.For(values),
			Points: points(table, names, values),
		}},
	}
}

// GroupedBar plots one bar series per distinct value of color, in
// first-appearance order, side by side for each x.
func GroupedBar(table dataset.Table, x, y, color, title string, labels Labels) Figure {
	fig := Figure{
		Type:        TypeBar,
		Title:       title,
		XAxisTitle:  labels.For(x),
		YAxisTitle:  labels.For(y),
		LegendTitle: labels.For(color),
		BarMode:     BarModeGroup,
		Series:      []Series{},
	}
	for _, group := range table.Unique(color) {
		fig.Series = append(fig.Series, Series{
			Name:   group,
			Points: points(table.FilterEq(color, group), x, y),
		})
	}
	return fig
}

// NewScatter starts an empty scatter figure; traces are added with AddTrace.
func NewScatter(title string) *Figure {
	return &Figure{Type: TypeScatter, Title: title, Series: []Series{}}
}

// AddTrace appends a lines+markers trace of y against x.
func (f *Figure) AddTrace(table dataset.Table, x, y, name string) *Figure {
	f.Series = append(f.Series, Series{
		Name:   name,
		Mode:   ModeLinesMarkers,
		Points: points(table, x, y),
	})
	return f
}

func (f *Figure) Layout(xAxisTitle, yAxisTitle, legendTitle string) *Figure {
	f.XAxisTitle = xAxisTitle
	f.YAxisTitle = yAxisTitle
	f.LegendTitle = legendTitle
	return f
}
