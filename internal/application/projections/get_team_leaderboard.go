package projections

import (
	"context"
	"log/slog"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/metrics"
	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/results"
)

// GetTeamLeaderboardQuery carries query parameters.
type GetTeamLeaderboardQuery struct {
	CompetitionID string
	DisciplineID  string // optional
}

// GetTeamLeaderboardResult carries the ranked team rows plus anomalies.
type GetTeamLeaderboardResult struct {
	Rows      []results.TeamResult
	Anomalies []results.Anomaly
}

// GetTeamLeaderboardDeps holds dependencies for the query.
type GetTeamLeaderboardDeps struct {
	RegistrationStore RegistrationStore
	ShooterStore      ShooterStore
	DisciplineStore   DisciplineStore
	TeamStore         TeamStore
	ScoreStore        ScoreStore
	Metrics           *metrics.Metrics // optional
}

// QueryTeamLeaderboard recomputes the team leaderboard from the current
// verified-score snapshot. Full recompute on every call.
// PRE: CompetitionID is non-empty
// POST: Rows ranked 1..n after filtering; anomalies reported, never fatal
func QueryTeamLeaderboard(ctx context.Context, query GetTeamLeaderboardQuery, deps GetTeamLeaderboardDeps) (GetTeamLeaderboardResult, error) {
	scores, err := deps.ScoreStore.ListVerifiedByCompetitionID(ctx, query.CompetitionID)
	if err != nil {
		return GetTeamLeaderboardResult{}, err
	}
	entries, err := snapshotEntries(ctx, query.CompetitionID, deps.RegistrationStore, deps.ShooterStore, deps.DisciplineStore)
	if err != nil {
		return GetTeamLeaderboardResult{}, err
	}
	teamRows, err := deps.TeamStore.ListByCompetitionID(ctx, query.CompetitionID)
	if err != nil {
		return GetTeamLeaderboardResult{}, err
	}
	infos := make([]results.TeamInfo, 0, len(teamRows))
	for _, t := range teamRows {
		infos = append(infos, results.TeamInfo{ID: t.ID, Name: t.Name, Province: t.Province})
	}

	rows, anomalies := results.AggregateTeams(verifiedSlice(scores), entries, infos)
	rows = results.FilterTeams(rows, query.DisciplineID)
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

	return GetTeamLeaderboardResult{Rows: rows, Anomalies: anomalies}, nil
}
