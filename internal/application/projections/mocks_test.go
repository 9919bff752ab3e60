package projections

import (
	"context"
	"database/sql"

	domainCompetition "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/competition"
	domainDiscipline "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/discipline"
	domainRegistration "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/registration"
	domainScore "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/score"
	domainShooter "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/shooter"
	domainTeam "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/team"
)

type mockCompetitionStore struct {
	byID map[string]domainCompetition.Competition
}

func (m *mockCompetitionStore) GetByID(_ context.Context, id string) (domainCompetition.Competition, error) {
	c, ok := m.byID[id]
	if !ok {
		return domainCompetition.Competition{}, sql.ErrNoRows
	}
	return c, nil
}

func (m *mockCompetitionStore) List(_ context.Context) ([]domainCompetition.Competition, error) {
	out := make([]domainCompetition.Competition, 0, len(m.byID))
	for _, c := range m.byID {
		out = append(out, c)
	}
	return out, nil
}

type mockStageStore struct {
	stages []domainCompetition.Stage
}

func (m *mockStageStore) ListByCompetitionID(_ context.Context, competitionID string) ([]domainCompetition.Stage, error) {
	var out []domainCompetition.Stage
	for _, s := range m.stages {
		if s.CompetitionID == competitionID {
			out = append(out, s)
		}
	}
	return out, nil
}

type mockRegistrationStore struct {
	regs []domainRegistration.Registration
}

func (m *mockRegistrationStore) ListByCompetitionID(_ context.Context, competitionID string) ([]domainRegistration.Registration, error) {
	var out []domainRegistration.Registration
	for _, r := range m.regs {
		if r.CompetitionID == competitionID {
			out = append(out, r)
		}
	}
	return out, nil
}

type mockShooterStore struct {
	byID map[string]domainShooter.Shooter
}

func (m *mockShooterStore) ListByIDs(_ context.Context, ids []string) ([]domainShooter.Shooter, error) {
	var out []domainShooter.Shooter
	for _, id := range ids {
		if s, ok := m.byID[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

type mockDisciplineStore struct {
	disciplines []domainDiscipline.Discipline
}

func (m *mockDisciplineStore) List(_ context.Context) ([]domainDiscipline.Discipline, error) {
	return m.disciplines, nil
}

type mockTeamStore struct {
	teams []domainTeam.Team
}

func (m *mockTeamStore) ListByCompetitionID(_ context.Context, competitionID string) ([]domainTeam.Team, error) {
	var out []domainTeam.Team
	for _, t := range m.teams {
		if t.CompetitionID == competitionID {
			out = append(out, t)
		}
	}
	return out, nil
}

// mockScoreStore keys scores by registration the way the real store's join
// does; compByReg stands in for the registration table.
type mockScoreStore struct {
	scores    []domainScore.StageScore
	compByReg map[string]string
}

func (m *mockScoreStore) ListByCompetitionID(_ context.Context, competitionID string) ([]domainScore.StageScore, error) {
	return m.filter(competitionID, func(domainScore.StageScore) bool { return true }), nil
}

func (m *mockScoreStore) ListVerifiedByCompetitionID(_ context.Context, competitionID string) ([]domainScore.StageScore, error) {
	return m.filter(competitionID, func(s domainScore.StageScore) bool { return s.IsVerified() }), nil
}

func (m *mockScoreStore) ListUnverifiedByCompetitionID(_ context.Context, competitionID string) ([]domainScore.StageScore, error) {
	return m.filter(competitionID, func(s domainScore.StageScore) bool { return !s.IsVerified() }), nil
}

func (m *mockScoreStore) filter(competitionID string, keep func(domainScore.StageScore) bool) []domainScore.StageScore {
	var out []domainScore.StageScore
	for _, s := range m.scores {
		if m.compByReg[s.RegistrationID] == competitionID && keep(s) {
			out = append(out, s)
		}
	}
	return out
}
