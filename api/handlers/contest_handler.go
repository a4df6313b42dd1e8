package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/codeclash-oj/codeclash/api/middleware"
	"github.com/codeclash-oj/codeclash/api/structs"
	contestservice "github.com/codeclash-oj/codeclash/app/modules/contest/application"
	contestdb "github.com/codeclash-oj/codeclash/app/modules/contest/infrastructure/repositories"
	"github.com/codeclash-oj/codeclash/app/shared/sharedtypes"
)

// ContestHandler serves contest definitions and registration.
type ContestHandler struct {
	contests contestservice.Service
	logger   *slog.Logger
}

// NewContestHandler creates a new ContestHandler.
func NewContestHandler(contests contestservice.Service, logger *slog.Logger) *ContestHandler {
	return &ContestHandler{contests: contests, logger: logger}
}

// Create handles POST /api/contests (admin only).
func (h *ContestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req structs.CreateContestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	problemIDs := make([]sharedtypes.ProblemID, 0, len(req.ProblemIDs))
	for _, p := range req.ProblemIDs {
		problemIDs = append(problemIDs, sharedtypes.ProblemID(p))
	}

	def, err := h.contests.CreateContest(r.Context(), req.Name, problemIDs, req.StartTime, req.EndTime)
	if err != nil {
		if errors.Is(err, contestservice.ErrInvalidContest) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to create contest", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to create contest")
		return
	}

	respondJSON(w, http.StatusCreated, structs.NewContest(def, requestLocation(r)))
}

// Get handles GET /api/contests/{contestID}.
func (h *ContestHandler) Get(w http.ResponseWriter, r *http.Request) {
	contestID, err := contestIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid contest id")
		return
	}

	def, err := h.contests.GetContest(r.Context(), contestID)
	if err != nil {
		if errors.Is(err, contestdb.ErrContestNotFound) {
			respondError(w, http.StatusNotFound, "contest not found")
			return
		}
		h.logger.Error("failed to get contest", "contest_id", contestID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to get contest")
		return
	}

	respondJSON(w, http.StatusOK, structs.NewContest(def, requestLocation(r)))
}

// List handles GET /api/contests.
func (h *ContestHandler) List(w http.ResponseWriter, r *http.Request) {
	defs, err := h.contests.ListContests(r.Context())
	if err != nil {
		h.logger.Error("failed to list contests", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list contests")
		return
	}

	loc := requestLocation(r)
	out := make([]structs.Contest, 0, len(defs))
	for _, def := range defs {
		out = append(out, structs.NewContest(def, loc))
	}
	respondJSON(w, http.StatusOK, out)
}

// Register handles POST /api/contests/{contestID}/register for the
// authenticated user.
func (h *ContestHandler) Register(w http.ResponseWriter, r *http.Request) {
	contestID, err := contestIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid contest id")
		return
	}
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.contests.Register(r.Context(), contestID, userID); err != nil {
		switch {
		case errors.Is(err, contestdb.ErrContestNotFound):
			respondError(w, http.StatusNotFound, "contest not found")
		case errors.Is(err, contestdb.ErrDuplicateRegistration):
			respondError(w, http.StatusConflict, "already registered")
		case errors.Is(err, contestservice.ErrRegistrationClosed):
			respondError(w, http.StatusConflict, "registration closed")
		default:
			h.logger.Error("failed to register", "contest_id", contestID, "user_id", userID, "error", err)
			respondError(w, http.StatusInternalServerError, "failed to register")
		}
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"message": "registered"})
}
