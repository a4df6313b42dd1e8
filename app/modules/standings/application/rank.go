package standingsservice

import (
	"sort"

	standingstypes "github.com/codeclash-oj/codeclash/app/modules/standings/domain/types"
)

// rankEntries orders the scoreboard and fills in rank numbers 1..N.
//
// Sort keys, in order: solved count descending, total score descending, total
// penalty ascending, first solve time ascending (participants who solved
// nothing sort after everyone with a solve), and finally user ID ascending.
// The user ID key makes the order total, so no two rows ever share a rank;
// ranks are position-based and strictly increasing.
func rankEntries(entries []standingstypes.StandingsEntry) []standingstypes.StandingsEntry {
	sort.Slice(entries, func(i, j int) bool {
		return standingsLess(entries[i], entries[j])
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

func standingsLess(a, b standingstypes.StandingsEntry) bool {
	if a.SolvedCount != b.SolvedCount {
		return a.SolvedCount > b.SolvedCount
	}
	if a.TotalScore != b.TotalScore {
		return a.TotalScore > b.TotalScore
	}
	if a.TotalPenalty != b.TotalPenalty {
		return a.TotalPenalty < b.TotalPenalty
	}
	switch {
	case a.FirstSolveTime == nil && b.FirstSolveTime != nil:
		return false
	case a.FirstSolveTime != nil && b.FirstSolveTime == nil:
		return true
	case a.FirstSolveTime != nil && b.FirstSolveTime != nil && *a.FirstSolveTime != *b.FirstSolveTime:
		return *a.FirstSolveTime < *b.FirstSolveTime
	}
	return a.UserID < b.UserID
}
