// Package results implements the leaderboard aggregation: folding verified
// per-stage scores into ranked individual and team result lists. All
// functions are pure; callers fetch a full snapshot, aggregate, and discard
// the previous result.
package results

import (
	"cmp"
	"math"
	"slices"
)

// UnknownLabel is shown when a registration references metadata that can't
// be resolved. Missing metadata degrades the display, never the aggregation.
const UnknownLabel = "Unknown"

// VerifiedScore is the slice of a stage score the aggregator consumes.
// Score is already the ranking score: zero for DNF/DQ attempts.
type VerifiedScore struct {
	RegistrationID string
	StageID        string
	Score          float64
	XCount         int
	VCount         int
	IsDNF          bool
	IsDQ           bool
}

// Entry carries the registration display metadata one leaderboard row needs.
type Entry struct {
	RegistrationID    string
	ShooterName       string
	ShooterNumber     string
	Club              string
	Province          string
	DisciplineID      string
	DisciplineName    string
	TeamID            string
	AgeClassification string
}

// IndividualResult is one ranked leaderboard row.
type IndividualResult struct {
	Rank              int
	RegistrationID    string
	ShooterName       string
	ShooterNumber     string
	Club              string
	Province          string
	DisciplineID      string
	DisciplineName    string
	TeamID            string
	AgeClassification string
	TotalScore        float64
	TotalX            int
	TotalV            int
	StagesCompleted   int
	HasDNF            bool
	HasDQ             bool
}

// Anomaly reports a score row excluded from an aggregation. Anomalies are
// reported, not fatal: one malformed record never aborts the whole run.
type Anomaly struct {
	RegistrationID string
	Reason         string
}

// AggregateIndividual folds verified scores into ranked individual results.
// Scores referencing an unknown registration are excluded and reported.
// PRE: scores contain only verified rows (Score already zeroed for DNF/DQ)
// POST: results sorted per compareIndividual with 1-based ranks; empty
// input yields an empty slice, never an error
func AggregateIndividual(scores []VerifiedScore, entries []Entry) ([]IndividualResult, []Anomaly) {
	byRegistration := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byRegistration[e.RegistrationID] = e
	}

	// Fold in first-seen order so residual ties stay deterministic.
	index := make(map[string]int)
	var rows []IndividualResult
	var anomalies []Anomaly

	for _, s := range scores {
		e, ok := byRegistration[s.RegistrationID]
		if !ok {
			anomalies = append(anomalies, Anomaly{
				RegistrationID: s.RegistrationID,
				Reason:         "score references unknown registration",
			})
			continue
		}
		i, seen := index[s.RegistrationID]
		if !seen {
			i = len(rows)
			index[s.RegistrationID] = i
			rows = append(rows, IndividualResult{
				RegistrationID:    e.RegistrationID,
				ShooterName:       displayOrUnknown(e.ShooterName),
				ShooterNumber:     e.ShooterNumber,
				Club:              e.Club,
				Province:          e.Province,
				DisciplineID:      e.DisciplineID,
				DisciplineName:    displayOrUnknown(e.DisciplineName),
				TeamID:            e.TeamID,
				AgeClassification: e.AgeClassification,
			})
		}
		rows[i].TotalScore += s.Score
		rows[i].TotalX += s.XCount
		rows[i].TotalV += s.VCount
		rows[i].StagesCompleted++
		if s.IsDNF {
			rows[i].HasDNF = true
		}
		if s.IsDQ {
			rows[i].HasDQ = true
		}
	}

	for i := range rows {
		rows[i].TotalScore = roundTo3(rows[i].TotalScore)
	}

	slices.SortStableFunc(rows, compareIndividual)
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows, anomalies
}

// compareIndividual orders leaderboard rows: DNF/DQ strictly last, then
// score, X count, V count, each descending. Residual ties keep input order
// via the stable sort.
func compareIndividual(a, b IndividualResult) int {
	aOut := a.HasDNF || a.HasDQ
	bOut := b.HasDNF || b.HasDQ
	if aOut != bOut {
		if aOut {
			return 1
		}
		return -1
	}
	return CompareTotals(a.TotalScore, a.TotalX, a.TotalV, b.TotalScore, b.TotalX, b.TotalV)
}

// CompareTotals is the shared (score, X, V) descending comparator used for
// both individual and team ranking.
func CompareTotals(scoreA float64, xA, vA int, scoreB float64, xB, vB int) int {
	if c := cmp.Compare(scoreB, scoreA); c != 0 {
		return c
	}
	if c := cmp.Compare(xB, xA); c != 0 {
		return c
	}
	return cmp.Compare(vB, vA)
}

func displayOrUnknown(s string) string {
	if s == "" {
		return UnknownLabel
	}
	return s
}

func roundTo3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
