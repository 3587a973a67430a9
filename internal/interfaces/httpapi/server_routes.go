package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metrics http.Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}
}

func registerDashboardRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /{$}", handler.Index)
	mux.HandleFunc("GET /v1/views", handler.ListViews)
	mux.HandleFunc("GET /v1/views/{viewID}", handler.GetView)
	mux.HandleFunc("GET /v1/athletes/results", handler.GetAthleteResults)
	mux.HandleFunc("GET /v1/dataset/summary", handler.GetDatasetSummary)
}
