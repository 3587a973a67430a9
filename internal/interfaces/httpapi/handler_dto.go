package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/olympic-data-hub/internal/domain/dataset"
	"github.com/riskibarqy/olympic-data-hub/internal/usecase"
)

// Query parameter names match the widget keys the views emit.
type viewRequest struct {
	ViewID       string   `validate:"required,max=64"`
	Editions     []string `validate:"max=200,dive,max=128"`
	Countries    []string `validate:"max=300,dive,max=128"`
	EditionTypes []string `validate:"max=2,dive,oneof=Summer Winter"`
	Country      string   `validate:"max=128"`
	Athlete      string   `validate:"max=256"`
}

func viewRequestFromHTTP(r *http.Request) viewRequest {
	query := r.URL.Query()
	return viewRequest{
		ViewID:       strings.TrimSpace(r.PathValue("viewID")),
		Editions:     queryValues(query[usecase.WidgetKeyEditions]),
		Countries:    queryValues(query[usecase.WidgetKeyCountries]),
		EditionTypes: queryValues(query[usecase.WidgetKeyEditionTypes]),
		Country:      strings.TrimSpace(query.Get(usecase.WidgetKeyCountry)),
		Athlete:      strings.TrimSpace(query.Get(usecase.WidgetKeyAthlete)),
	}
}

func (r viewRequest) selection() usecase.Selection {
	return usecase.Selection{
		Editions:     r.Editions,
		Countries:    r.Countries,
		EditionTypes: r.EditionTypes,
		Country:      r.Country,
		Athlete:      r.Athlete,
	}
}

// queryValues drops blanks. A single comma-separated value is not split,
// since edition and country names may contain commas.
func queryValues(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

type athleteResultsRequest struct {
	Athlete string `validate:"required,max=256"`
	Format  string `validate:"omitempty,oneof=json csv"`
}

type athleteResultsDTO struct {
	Athlete string        `json:"athlete"`
	Results dataset.Table `json:"results"`
}

type tableSummaryDTO struct {
	Table   string `json:"table"`
	Rows    int64  `json:"rows"`
	Columns int    `json:"columns"`
	Error   string `json:"error,omitempty"`
}

func tableSummaryToDTO(s usecase.TableSummary) tableSummaryDTO {
	dto := tableSummaryDTO{Table: s.Table, Rows: s.Rows, Columns: s.Columns}
	if s.Err != nil {
		dto.Error = s.Err.Error()
	}
	return dto
}
