package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/olympic-data-hub/internal/platform/logging"
	"github.com/riskibarqy/olympic-data-hub/internal/usecase"
)

const (
	formatJSON = "json"
	formatCSV  = "csv"
)

type Handler struct {
	dashboardService *usecase.DashboardService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(dashboardService *usecase.DashboardService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		dashboardService: dashboardService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "httpapi.Handler.Index")
	defer span.End()

	w.Header().Set("Cache-Control", "no-cache")
	http.ServeFileFS(w, r, dashboardFS, "index.html")
}

func (h *Handler) ListViews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListViews")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, h.dashboardService.Menu())
}

func (h *Handler) GetView(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetView")
	defer span.End()

	req := viewRequestFromHTTP(r)
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.dashboardService.Render(ctx, usecase.ViewID(req.ViewID), req.selection())
	if err != nil {
		h.logger.WarnContext(ctx, "render view failed", "view", req.ViewID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) GetAthleteResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAthleteResults")
	defer span.End()

	query := r.URL.Query()
	req := athleteResultsRequest{
		Athlete: strings.TrimSpace(query.Get("athlete")),
		Format:  strings.ToLower(strings.TrimSpace(query.Get("format"))),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	table, err := h.dashboardService.AthleteResults(ctx, req.Athlete)
	if err != nil {
		h.logger.WarnContext(ctx, "athlete results failed", "athlete", req.Athlete, "error", err)
		writeError(ctx, w, err)
		return
	}

	if req.Format == formatCSV {
		if err := writeCSV(ctx, w, csvFilename(req.Athlete), table); err != nil {
			h.logger.ErrorContext(ctx, "write athlete results csv failed", "athlete", req.Athlete, "error", err)
		}
		return
	}

	writeSuccess(ctx, w, http.StatusOK, athleteResultsDTO{Athlete: req.Athlete, Results: table})
}

func (h *Handler) GetDatasetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDatasetSummary")
	defer span.End()

	summaries, err := h.dashboardService.DatasetSummary(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "dataset summary failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]tableSummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, tableSummaryToDTO(s))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
