package projections

import (
	"context"
	"log/slog"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/metrics"
	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/results"
)

// GetIndividualLeaderboardQuery carries query parameters. Filters are
// optional; zero values include everything.
type GetIndividualLeaderboardQuery struct {
	CompetitionID     string
	DisciplineID      string
	AgeClassification string
	SearchText        string
}

// GetIndividualLeaderboardResult carries the ranked rows plus any score
// rows excluded as anomalous.
type GetIndividualLeaderboardResult struct {
	Rows      []results.IndividualResult
	Anomalies []results.Anomaly
}

// GetIndividualLeaderboardDeps holds dependencies for the query.
type GetIndividualLeaderboardDeps struct {
	RegistrationStore RegistrationStore
	ShooterStore      ShooterStore
	DisciplineStore   DisciplineStore
	ScoreStore        ScoreStore
	Metrics           *metrics.Metrics // optional
}

// QueryIndividualLeaderboard recomputes the individual leaderboard from the
// current verified-score snapshot. Every call is a full recompute; callers
// poll and replace their previous result wholesale.
// PRE: CompetitionID is non-empty
// POST: Rows ranked 1..n after filtering; anomalies reported, never fatal
func QueryIndividualLeaderboard(ctx context.Context, query GetIndividualLeaderboardQuery, deps GetIndividualLeaderboardDeps) (GetIndividualLeaderboardResult, error) {
	scores, err := deps.ScoreStore.ListVerifiedByCompetitionID(ctx, query.CompetitionID)
	if err != nil {
		return GetIndividualLeaderboardResult{}, err
	}
	entries, err := snapshotEntries(ctx, query.CompetitionID, deps.RegistrationStore, deps.ShooterStore, deps.DisciplineStore)
	if err != nil {
		return GetIndividualLeaderboardResult{}, err
	}

	// Aggregate over the full registration set so anomaly detection sees
	// every known registration, then filter the rows and re-rank. Filtering
	// commutes with aggregation, so this equals filtering entries up front.
	rows, anomalies := results.AggregateIndividual(verifiedSlice(scores), entries)
	rows = results.Filter(rows, results.FilterOptions{
		DisciplineID:      query.DisciplineID,
		AgeClassification: query.AgeClassification,
		SearchText:        query.SearchText,
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}

	if deps.Metrics != nil {
		deps.Metrics.LeaderboardBuilt()
		deps.Metrics.AggregationAnomalies(len(anomalies))
	}
	for _, a := range anomalies {
		slog.Warn("leaderboard_anomaly", "competition_id", query.CompetitionID, "registration_id", a.RegistrationID, "reason", a.Reason)
	}

	return GetIndividualLeaderboardResult{Rows: rows, Anomalies: anomalies}, nil
}
