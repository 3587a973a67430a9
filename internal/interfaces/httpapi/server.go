package httpapi

import (
	"net/http"

	"github.com/riskibarqy/olympic-data-hub/internal/platform/logging"
)

type RouterOptions struct {
	Logger             *logging.Logger
	CORSAllowedOrigins []string
	// Metrics serves GET /metrics when set.
	Metrics http.Handler
	// Recorder observes every request that reaches the mux.
	Recorder RequestRecorder
}

func NewRouter(handler *Handler, opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts.Metrics)
	registerDashboardRoutes(mux, handler)

	return RequestTracing(RequestID(RequestLogging(logger, CORS(opts.CORSAllowedOrigins, recoverPanic(logger, RequestMetrics(opts.Recorder, mux))))))
}
