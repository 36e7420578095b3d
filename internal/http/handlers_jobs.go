// Package httpx provides HTTP handlers and utilities for the jobdeck API.
package httpx

import (
	stderrors "errors"
	"net/http"

	"github.com/opsarc/jobdeck/internal/core"
	"github.com/opsarc/jobdeck/internal/domain/model"
	"github.com/opsarc/jobdeck/internal/errors"
	"github.com/opsarc/jobdeck/internal/service"
)

// JobHandlers provides HTTP handlers for job submission and listing.
type JobHandlers struct {
	Scheduler *service.Scheduler
	Store     core.JobStore
}

// CreateJob handles POST /api/job: it validates the submission, creates the
// record, and schedules execution. The response carries the job as stored,
// still in status scheduled.
func (h *JobHandlers) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req model.CreateJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Scheduler.Submit(r.Context(), &req)
	if err != nil {
		if errors.IsValidation(err) {
			writeValidationError(w, err)
			return
		}
		WriteErrorMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	WriteJSON(w, http.StatusCreated, job)
}

// ListJobs handles GET /api/jobs: it returns the caller's jobs as a bare
// array, filtered by the required tenantId and the optional type.
func (h *JobHandlers) ListJobs(w http.ResponseWriter, r *http.Request) {
	tenantID := r.URL.Query().Get("tenantId")
	if tenantID == "" {
		WriteErrorMessage(w, http.StatusBadRequest, "Missing required parameter: tenantId is required")
		return
	}
	jobType := model.JobType(r.URL.Query().Get("type"))

	jobs, err := h.Store.ListByTenant(r.Context(), tenantID, jobType)
	if err != nil {
		WriteErrorMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	WriteJSON(w, http.StatusOK, jobs)
}

// writeValidationError renders an AppError with code validation as a 400,
// keeping per-field details when present.
func writeValidationError(w http.ResponseWriter, err error) {
	if details := errors.GetDetails(err); len(details) > 0 {
		WriteErrorDetails(w, http.StatusBadRequest, errMessage(err), details)
		return
	}
	WriteErrorMessage(w, http.StatusBadRequest, errMessage(err))
}

func errMessage(err error) string {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
