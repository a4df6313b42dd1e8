package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/xuri/excelize/v2"

	"github.com/codeclash-oj/codeclash/api/structs"
	contestservice "github.com/codeclash-oj/codeclash/app/modules/contest/application"
	contestdb "github.com/codeclash-oj/codeclash/app/modules/contest/infrastructure/repositories"
	standingsservice "github.com/codeclash-oj/codeclash/app/modules/standings/application"
	standingstypes "github.com/codeclash-oj/codeclash/app/modules/standings/domain/types"
	"github.com/codeclash-oj/codeclash/app/shared/sharedtypes"
)

// StandingsHandler serves the ranked scoreboard and its XLSX export.
type StandingsHandler struct {
	contests  contestservice.Service
	standings standingsservice.Service
	logger    *slog.Logger
}

// NewStandingsHandler creates a new StandingsHandler.
func NewStandingsHandler(contests contestservice.Service, standings standingsservice.Service, logger *slog.Logger) *StandingsHandler {
	return &StandingsHandler{contests: contests, standings: standings, logger: logger}
}

var errBadContestID = errors.New("invalid contest id")

func (h *StandingsHandler) load(r *http.Request) (sharedtypes.ContestDefinition, []standingstypes.StandingsEntry, error) {
	contestID, err := contestIDParam(r)
	if err != nil {
		return sharedtypes.ContestDefinition{}, nil, errBadContestID
	}
	def, err := h.contests.GetContest(r.Context(), contestID)
	if err != nil {
		return sharedtypes.ContestDefinition{}, nil, err
	}
	entries, err := h.standings.GetStandings(r.Context(), contestID)
	if err != nil {
		return sharedtypes.ContestDefinition{}, nil, err
	}
	return def, entries, nil
}

// Get handles GET /api/contests/{contestID}/standings.
func (h *StandingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	def, entries, err := h.load(r)
	if err != nil {
		switch {
		case errors.Is(err, errBadContestID):
			respondError(w, http.StatusBadRequest, "invalid contest id")
		case errors.Is(err, contestdb.ErrContestNotFound):
			respondError(w, http.StatusNotFound, "contest not found")
		default:
			h.logger.Error("failed to compute standings", "error", err)
			respondError(w, http.StatusInternalServerError, "failed to compute standings")
		}
		return
	}

	respondJSON(w, http.StatusOK, structs.StandingsResponse{
		Contest: structs.NewContest(def, requestLocation(r)),
		Rows:    structs.NewStandingsRows(def, entries),
	})
}

// Export handles GET /api/contests/{contestID}/standings/export and streams
// the scoreboard as an XLSX workbook.
func (h *StandingsHandler) Export(w http.ResponseWriter, r *http.Request) {
	def, entries, err := h.load(r)
	if err != nil {
		switch {
		case errors.Is(err, errBadContestID):
			respondError(w, http.StatusBadRequest, "invalid contest id")
		case errors.Is(err, contestdb.ErrContestNotFound):
			respondError(w, http.StatusNotFound, "contest not found")
		default:
			h.logger.Error("failed to export standings", "error", err)
			respondError(w, http.StatusInternalServerError, "failed to export standings")
		}
		return
	}

	file := excelize.NewFile()
	defer file.Close()

	const sheet = "Standings"
	if err := file.SetSheetName("Sheet1", sheet); err != nil {
		h.logger.Error("failed to build workbook", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to export standings")
		return
	}

	header := []any{"Rank", "User", "Solved", "Score", "Penalty"}
	for _, problemID := range def.ProblemIDs {
		header = append(header, string(problemID))
	}
	if err := file.SetSheetRow(sheet, "A1", &header); err != nil {
		h.logger.Error("failed to build workbook", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to export standings")
		return
	}

	for i, row := range structs.NewStandingsRows(def, entries) {
		cells := []any{row.Rank, row.UserID, row.SolvedCount, row.TotalScore, row.TotalPenalty}
		for _, cell := range row.Problems {
			cells = append(cells, exportCell(cell))
		}
		anchor, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			h.logger.Error("failed to build workbook", "error", err)
			respondError(w, http.StatusInternalServerError, "failed to export standings")
			return
		}
		if err := file.SetSheetRow(sheet, anchor, &cells); err != nil {
			h.logger.Error("failed to build workbook", "error", err)
			respondError(w, http.StatusInternalServerError, "failed to export standings")
			return
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("standings-%d.xlsx", def.ID)))
	if err := file.Write(w); err != nil {
		h.logger.Error("failed to stream workbook", "error", err)
	}
}

func exportCell(cell structs.ProblemCell) string {
	switch cell.State {
	case string(standingstypes.ProblemSolved):
		mark := "+"
		if cell.PenaltyAttempts > 0 {
			mark = fmt.Sprintf("+%d", cell.PenaltyAttempts)
		}
		if cell.FirstBlood {
			mark += "!"
		}
		return mark
	case string(standingstypes.ProblemAttempted):
		return fmt.Sprintf("-%d", cell.Attempts)
	case string(standingstypes.ProblemPending):
		return "?"
	default:
		return ""
	}
}
