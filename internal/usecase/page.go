package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/riskibarqy/olympic-data-hub/internal/domain/dataset"
	"github.com/riskibarqy/olympic-data-hub/internal/platform/chart"
	"github.com/riskibarqy/olympic-data-hub/internal/platform/logging"
)

// page accumulates the blocks of one view render.
type page struct {
	querier dataset.Querier
	logger  *logging.Logger
	blocks  []Block
}

func (p *page) title(text string) {
	p.blocks = append(p.blocks, Block{Kind: BlockTitle, Text: text})
}

func (p *page) image(url string) {
	p.blocks = append(p.blocks, Block{Kind: BlockImage, Image: url})
}

func (p *page) markdown(text string) {
	p.blocks = append(p.blocks, Block{Kind: BlockMarkdown, Text: text})
}

func (p *page) widget(w Widget) {
	if w.Options == nil {
		w.Options = []string{}
	}
	if w.Selected == nil {
		w.Selected = []string{}
	}
	p.blocks = append(p.blocks, Block{Kind: BlockWidget, Widget: &w})
}

func (p *page) chart(fig chart.Figure) {
	p.blocks = append(p.blocks, Block{Kind: BlockChart, Chart: &fig})
}

func (p *page) table(t dataset.Table) {
	p.blocks = append(p.blocks, Block{Kind: BlockTable, Table: &t})
}

func (p *page) errorNotice(message string) {
	p.blocks = append(p.blocks, Block{Kind: BlockNotice, Notice: &Notice{Level: NoticeError, Message: message}})
}

// query runs stmt. A failure is logged, shown as an error notice at the
// current position and replaced by an empty table so the page keeps rendering.
func (p *page) query(ctx context.Context, stmt dataset.Statement) dataset.Table {
	table, _ := p.tryQuery(ctx, stmt)
	return table
}

// tryQuery is query that also reports whether the warehouse answered.
func (p *page) tryQuery(ctx context.Context, stmt dataset.Statement) (dataset.Table, bool) {
	table, err := p.querier.Query(ctx, stmt)
	if err != nil {
		p.logger.WarnContext(ctx, "warehouse query failed", "statement", stmt.Name, "error", err)
		p.errorNotice(queryErrorMessage(err))
		return dataset.Empty(), false
	}
	return table, true
}

func queryErrorMessage(err error) string {
	return fmt.Sprintf("Error running query: %v", err)
}

// singleChoice is a single-select widget's candidates. Options may be a
// filtered subset of All, the values the unfiltered result offers. Loaded is
// false when the source query failed.
type singleChoice struct {
	Field   string
	Options []string
	All     []string
	Loaded  bool
}

// pick resolves a selected value. Empty, or a value narrowed away by another
// filter, takes the first option. A value the result never offered is
// rejected. Nothing is validated when the source query failed.
func (c singleChoice) pick(value string) (string, error) {
	if !c.Loaded {
		return "", nil
	}
	if value != "" && slices.Contains(c.Options, value) {
		return value, nil
	}
	if value != "" && !slices.Contains(c.All, value) {
		return "", fmt.Errorf("%w: %s %q is not an available option", ErrInvalidInput, c.Field, value)
	}
	if len(c.Options) == 0 {
		return "", nil
	}
	return c.Options[0], nil
}

func selectedOf(value string) []string {
	if value == "" {
		return []string{}
	}
	return []string{value}
}
