package httpx

import (
	"log/slog"
	"net/http"

	"github.com/opsarc/jobdeck/internal/core"
	"github.com/opsarc/jobdeck/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Scheduler *service.Scheduler
	Store     core.JobStore
	Logger    *slog.Logger // Optional
}

// NewRouter creates and configures the HTTP router.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	jobHandlers := &JobHandlers{Scheduler: services.Scheduler, Store: services.Store}
	registerJobRoutes(mux, jobHandlers)
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	var handler http.Handler = mux
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler
}

func registerJobRoutes(mux *http.ServeMux, h *JobHandlers) {
	mux.HandleFunc("POST /api/job", h.CreateJob)
	mux.HandleFunc("GET /api/jobs", h.ListJobs)
}
