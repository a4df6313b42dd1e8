package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/codeclash-oj/codeclash/api/middleware"
	"github.com/codeclash-oj/codeclash/api/structs"
	submissionservice "github.com/codeclash-oj/codeclash/app/modules/submission/application"
	submissiondb "github.com/codeclash-oj/codeclash/app/modules/submission/infrastructure/repositories"
	"github.com/codeclash-oj/codeclash/app/shared/sharedtypes"
)

// SubmissionHandler serves submission creation and status lookups.
type SubmissionHandler struct {
	submissions submissionservice.Service
	logger      *slog.Logger
}

// NewSubmissionHandler creates a new SubmissionHandler.
func NewSubmissionHandler(submissions submissionservice.Service, logger *slog.Logger) *SubmissionHandler {
	return &SubmissionHandler{submissions: submissions, logger: logger}
}

// Create handles POST /api/submissions for the authenticated user.
func (h *SubmissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req structs.CreateSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProblemID == "" || req.Language == "" {
		respondError(w, http.StatusBadRequest, "problem_id and language are required")
		return
	}

	submission, err := h.submissions.CreateSubmission(r.Context(), userID, sharedtypes.ProblemID(req.ProblemID), req.Language)
	if err != nil {
		h.logger.Error("failed to create submission", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to create submission")
		return
	}

	respondJSON(w, http.StatusCreated, structs.NewSubmission(*submission, requestLocation(r)))
}

// Get handles GET /api/submissions/{submissionID}.
func (h *SubmissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "submissionID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid submission id")
		return
	}

	submission, err := h.submissions.GetSubmission(r.Context(), sharedtypes.SubmissionID(id))
	if err != nil {
		if errors.Is(err, submissiondb.ErrSubmissionNotFound) {
			respondError(w, http.StatusNotFound, "submission not found")
			return
		}
		h.logger.Error("failed to get submission", "submission_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to get submission")
		return
	}

	respondJSON(w, http.StatusOK, structs.NewSubmission(*submission, requestLocation(r)))
}

// List handles GET /api/submissions for the authenticated user, newest
// first.
func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	rows, err := h.submissions.ListUserSubmissions(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to list submissions", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list submissions")
		return
	}

	loc := requestLocation(r)
	out := make([]structs.Submission, 0, len(rows))
	for _, row := range rows {
		out = append(out, structs.NewSubmission(row, loc))
	}
	respondJSON(w, http.StatusOK, out)
}
