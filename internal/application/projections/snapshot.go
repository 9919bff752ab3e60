package projections

import (
	"context"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/results"
	domainScore "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/score"
)

// snapshotEntries assembles the aggregator's Entry rows from the current
// registration, shooter and discipline state of one competition. Missing
// shooter or discipline references are left blank so the aggregator
// degrades them to its Unknown label.
func snapshotEntries(ctx context.Context, competitionID string, regs RegistrationStore, shooters ShooterStore, disciplines DisciplineStore) ([]results.Entry, error) {
	registrations, err := regs.ListByCompetitionID(ctx, competitionID)
	if err != nil {
		return nil, err
	}

	shooterIDs := make([]string, 0, len(registrations))
	for _, r := range registrations {
		shooterIDs = append(shooterIDs, r.ShooterID)
	}
	shooterRows, err := shooters.ListByIDs(ctx, shooterIDs)
	if err != nil {
		return nil, err
	}
	shooterByID := make(map[string]int, len(shooterRows))
	for i, s := range shooterRows {
		shooterByID[s.ID] = i
	}

	disciplineRows, err := disciplines.List(ctx)
	if err != nil {
		return nil, err
	}
	disciplineName := make(map[string]string, len(disciplineRows))
	for _, d := range disciplineRows {
		disciplineName[d.ID] = d.Name
	}

	entries := make([]results.Entry, 0, len(registrations))
	for _, r := range registrations {
		e := results.Entry{
			RegistrationID:    r.ID,
			DisciplineID:      r.DisciplineID,
			DisciplineName:    disciplineName[r.DisciplineID],
			TeamID:            r.TeamID,
			AgeClassification: r.AgeClassification,
		}
		if i, ok := shooterByID[r.ShooterID]; ok {
			e.ShooterName = shooterRows[i].Name
			e.ShooterNumber = shooterRows[i].Number
			e.Club = shooterRows[i].Club
			e.Province = shooterRows[i].Province
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// verifiedSlice converts persisted scores to the aggregator's input shape,
// zeroing the ranking score for DNF/DQ attempts.
func verifiedSlice(scores []domainScore.StageScore) []results.VerifiedScore {
	out := make([]results.VerifiedScore, 0, len(scores))
	for _, s := range scores {
		out = append(out, results.VerifiedScore{
			RegistrationID: s.RegistrationID,
			StageID:        s.StageID,
			Score:          s.RankingScore(),
			XCount:         s.XCount,
			VCount:         s.VCount,
			IsDNF:          s.IsDNF,
			IsDQ:           s.IsDQ,
		})
	}
	return out
}
