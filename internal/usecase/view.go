package usecase

import (
	"github.com/riskibarqy/olympic-data-hub/internal/domain/dataset"
	"github.com/riskibarqy/olympic-data-hub/internal/platform/chart"
)

type ViewID string

const (
	ViewAppInfo             ViewID = "app-info"
	ViewGoldMedalComparison ViewID = "gold-medal-comparison"
	ViewPerformanceTrends   ViewID = "performance-trends"
	ViewMedalDistribution   ViewID = "medal-distribution"
	ViewTopAthletes         ViewID = "top-athletes"
	ViewEventParticipation  ViewID = "event-participation"
)

// View is one entry of the navigation menu.
type View struct {
	ID   ViewID `json:"id"`
	Name string `json:"name"`
}

type Menu struct {
	Title   string `json:"title"`
	LogoURL string `json:"logoUrl"`
	Views   []View `json:"views"`
}

type BlockKind string

const (
	BlockTitle    BlockKind = "title"
	BlockImage    BlockKind = "image"
	BlockMarkdown BlockKind = "markdown"
	BlockWidget   BlockKind = "widget"
	BlockChart    BlockKind = "chart"
	BlockTable    BlockKind = "table"
	BlockNotice   BlockKind = "notice"
)

type WidgetKind string

const (
	WidgetSelect      WidgetKind = "select"
	WidgetMultiSelect WidgetKind = "multiselect"
)

// Widget is a selection control populated from distinct values of a result.
// Key is the query parameter that carries the user's choice.
type Widget struct {
	Key      string     `json:"key"`
	Label    string     `json:"label"`
	Kind     WidgetKind `json:"kind"`
	Options  []string   `json:"options"`
	Selected []string   `json:"selected"`
}

const NoticeError = "error"

type Notice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Block is one element of a rendered page. Exactly one payload field is set,
// matching Kind.
type Block struct {
	Kind   BlockKind      `json:"kind"`
	Text   string         `json:"text,omitempty"`
	Image  string         `json:"image,omitempty"`
	Widget *Widget        `json:"widget,omitempty"`
	Chart  *chart.Figure  `json:"chart,omitempty"`
	Table  *dataset.Table `json:"table,omitempty"`
	Notice *Notice        `json:"notice,omitempty"`
}

// ViewResult is a fully rendered view, blocks in top-to-bottom order.
type ViewResult struct {
	ID     ViewID  `json:"id"`
	Name   string  `json:"name"`
	Blocks []Block `json:"blocks"`
}

func (r ViewResult) Notices() []Notice {
	var out []Notice
	for _, b := range r.Blocks {
		if b.Kind == BlockNotice && b.Notice != nil {
			out = append(out, *b.Notice)
		}
	}
	return out
}

func (r ViewResult) Charts() []chart.Figure {
	var out []chart.Figure
	for _, b := range r.Blocks {
		if b.Kind == BlockChart && b.Chart != nil {
			out = append(out, *b.Chart)
		}
	}
	return out
}

// Selection carries the user's widget choices. Multi-select fields left
// empty mean no restriction; single-select fields left empty take the
// first available option.
type Selection struct {
	Editions     []string
	Countries    []string
	EditionTypes []string
	Country      string
	Athlete      string
}
