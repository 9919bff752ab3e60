package projections

import (
	"context"

	domainCompetition "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/competition"
)

// GetCompetitionDashboardQuery carries query parameters.
type GetCompetitionDashboardQuery struct {
	CompetitionID string
}

// GetCompetitionDashboardResult summarizes one competition's progress for
// officials: how much has been shot and how much still needs verification.
type GetCompetitionDashboardResult struct {
	Competition     domainCompetition.Competition
	StageCount      int
	Registrations   int
	ScoresSubmitted int
	ScoresVerified  int
	ScoresPending   int
}

// GetCompetitionDashboardDeps holds dependencies for the query.
type GetCompetitionDashboardDeps struct {
	CompetitionStore  CompetitionStore
	StageStore        StageStore
	RegistrationStore RegistrationStore
	ScoreStore        ScoreStore
}

// QueryCompetitionDashboard assembles the verification progress summary.
// PRE: CompetitionID resolves to an existing competition
// POST: counts reflect the current snapshot
func QueryCompetitionDashboard(ctx context.Context, query GetCompetitionDashboardQuery, deps GetCompetitionDashboardDeps) (GetCompetitionDashboardResult, error) {
	c, err := deps.CompetitionStore.GetByID(ctx, query.CompetitionID)
	if err != nil {
		return GetCompetitionDashboardResult{}, err
	}
	stages, err := deps.StageStore.ListByCompetitionID(ctx, query.CompetitionID)
	if err != nil {
		return GetCompetitionDashboardResult{}, err
	}
	regs, err := deps.RegistrationStore.ListByCompetitionID(ctx, query.CompetitionID)
	if err != nil {
		return GetCompetitionDashboardResult{}, err
	}
	all, err := deps.ScoreStore.ListByCompetitionID(ctx, query.CompetitionID)
	if err != nil {
		return GetCompetitionDashboardResult{}, err
	}

	verified := 0
	for _, s := range all {
		if s.IsVerified() {
			verified++
		}
	}

	return GetCompetitionDashboardResult{
		Competition:     c,
		StageCount:      len(stages),
		Registrations:   len(regs),
		ScoresSubmitted: len(all),
		ScoresVerified:  verified,
		ScoresPending:   len(all) - verified,
	}, nil
}
