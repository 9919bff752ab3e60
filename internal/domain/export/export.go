// Package export flattens leaderboard rows into tabular payloads for CSV
// download. The aggregation core stays format-agnostic; only header/row
// shaping lives here.
package export

import (
	"strconv"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/results"
)

// IndividualHeader is the column order for individual leaderboard exports.
var IndividualHeader = []string{
	"rank", "shooter", "number", "club", "province",
	"discipline", "age_class", "score", "x", "v", "stages", "status",
}

// TeamHeader is the column order for team leaderboard exports.
var TeamHeader = []string{
	"rank", "team", "province", "discipline",
	"score", "x", "v", "members", "scores_counted",
}

// IndividualRows flattens individual results into CSV rows matching
// IndividualHeader.
// PRE: rows are ranked (as returned by the aggregator)
// POST: one output row per input row, same order
func IndividualRows(rows []results.IndividualResult) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			strconv.Itoa(r.Rank),
			r.ShooterName,
			r.ShooterNumber,
			r.Club,
			r.Province,
			r.DisciplineName,
			r.AgeClassification,
			formatScore(r.TotalScore),
			strconv.Itoa(r.TotalX),
			strconv.Itoa(r.TotalV),
			strconv.Itoa(r.StagesCompleted),
			statusLabel(r),
		})
	}
	return out
}

// TeamRows flattens team results into CSV rows matching TeamHeader.
// PRE: rows are ranked (as returned by the aggregator)
// POST: one output row per input row, same order
func TeamRows(rows []results.TeamResult) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			strconv.Itoa(r.Rank),
			r.TeamName,
			r.Province,
			r.DisciplineName,
			formatScore(r.TotalScore),
			strconv.Itoa(r.TotalX),
			strconv.Itoa(r.TotalV),
			strconv.Itoa(r.MemberCount),
			strconv.Itoa(r.ScoresCounted),
		})
	}
	return out
}

// formatScore renders a total with the 3-decimal V-bonus visible.
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func statusLabel(r results.IndividualResult) string {
	switch {
	case r.HasDQ:
		return "DQ"
	case r.HasDNF:
		return "DNF"
	}
	return ""
}
