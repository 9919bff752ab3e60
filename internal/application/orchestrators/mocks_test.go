package orchestrators

import (
	"context"
	"database/sql"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/email"
	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/account"
	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/competition"
	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/discipline"
	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/news"
	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/registration"
	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/score"
	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/shooter"
)

// In-memory mock stores shared by the orchestrator tests.

type mockAccountStore struct {
	byID    map[string]account.Account
	byEmail map[string]account.Account
	saved   []account.Account
}

func newMockAccountStore() *mockAccountStore {
	return &mockAccountStore{byID: map[string]account.Account{}, byEmail: map[string]account.Account{}}
}

func (m *mockAccountStore) add(a account.Account) {
	m.byID[a.ID] = a
	m.byEmail[a.Email] = a
}

func (m *mockAccountStore) GetByID(_ context.Context, id string) (account.Account, error) {
	a, ok := m.byID[id]
	if !ok {
		return account.Account{}, sql.ErrNoRows
	}
	return a, nil
}

func (m *mockAccountStore) GetByEmail(_ context.Context, e string) (account.Account, error) {
	a, ok := m.byEmail[e]
	if !ok {
		return account.Account{}, sql.ErrNoRows
	}
	return a, nil
}

func (m *mockAccountStore) Save(_ context.Context, a account.Account) error {
	m.saved = append(m.saved, a)
	m.add(a)
	return nil
}

type mockCompetitionStore struct {
	byID  map[string]competition.Competition
	saved []competition.Competition
}

func newMockCompetitionStore() *mockCompetitionStore {
	return &mockCompetitionStore{byID: map[string]competition.Competition{}}
}

func (m *mockCompetitionStore) GetByID(_ context.Context, id string) (competition.Competition, error) {
	c, ok := m.byID[id]
	if !ok {
		return competition.Competition{}, sql.ErrNoRows
	}
	return c, nil
}

func (m *mockCompetitionStore) Save(_ context.Context, c competition.Competition) error {
	m.saved = append(m.saved, c)
	m.byID[c.ID] = c
	return nil
}

type mockStageStore struct {
	byID  map[string]competition.Stage
	saved []competition.Stage
}

func newMockStageStore() *mockStageStore {
	return &mockStageStore{byID: map[string]competition.Stage{}}
}

func (m *mockStageStore) GetByID(_ context.Context, id string) (competition.Stage, error) {
	s, ok := m.byID[id]
	if !ok {
		return competition.Stage{}, sql.ErrNoRows
	}
	return s, nil
}

func (m *mockStageStore) Save(_ context.Context, s competition.Stage) error {
	m.saved = append(m.saved, s)
	m.byID[s.ID] = s
	return nil
}

type mockDisciplineStore struct {
	byID   map[string]discipline.Discipline
	byName map[string]discipline.Discipline
	saved  []discipline.Discipline
}

func newMockDisciplineStore() *mockDisciplineStore {
	return &mockDisciplineStore{byID: map[string]discipline.Discipline{}, byName: map[string]discipline.Discipline{}}
}

func (m *mockDisciplineStore) add(d discipline.Discipline) {
	m.byID[d.ID] = d
	m.byName[d.Name] = d
}

func (m *mockDisciplineStore) GetByID(_ context.Context, id string) (discipline.Discipline, error) {
	d, ok := m.byID[id]
	if !ok {
		return discipline.Discipline{}, sql.ErrNoRows
	}
	return d, nil
}

func (m *mockDisciplineStore) GetByName(_ context.Context, name string) (discipline.Discipline, error) {
	d, ok := m.byName[name]
	if !ok {
		return discipline.Discipline{}, sql.ErrNoRows
	}
	return d, nil
}

func (m *mockDisciplineStore) Save(_ context.Context, d discipline.Discipline) error {
	m.saved = append(m.saved, d)
	m.add(d)
	return nil
}

type mockShooterStore struct {
	byID map[string]shooter.Shooter
}

func newMockShooterStore() *mockShooterStore {
	return &mockShooterStore{byID: map[string]shooter.Shooter{}}
}

func (m *mockShooterStore) GetByID(_ context.Context, id string) (shooter.Shooter, error) {
	s, ok := m.byID[id]
	if !ok {
		return shooter.Shooter{}, sql.ErrNoRows
	}
	return s, nil
}

type mockRegistrationStore struct {
	byID  map[string]registration.Registration
	saved []registration.Registration
}

func newMockRegistrationStore() *mockRegistrationStore {
	return &mockRegistrationStore{byID: map[string]registration.Registration{}}
}

func (m *mockRegistrationStore) GetByID(_ context.Context, id string) (registration.Registration, error) {
	r, ok := m.byID[id]
	if !ok {
		return registration.Registration{}, sql.ErrNoRows
	}
	return r, nil
}

func (m *mockRegistrationStore) GetByShooterAndDiscipline(_ context.Context, competitionID, shooterID, disciplineID string) (registration.Registration, error) {
	for _, r := range m.byID {
		if r.CompetitionID == competitionID && r.ShooterID == shooterID && r.DisciplineID == disciplineID {
			return r, nil
		}
	}
	return registration.Registration{}, sql.ErrNoRows
}

func (m *mockRegistrationStore) Save(_ context.Context, r registration.Registration) error {
	m.saved = append(m.saved, r)
	m.byID[r.ID] = r
	return nil
}

type mockScoreStore struct {
	byID  map[string]score.StageScore
	saved []score.StageScore
}

func newMockScoreStore() *mockScoreStore {
	return &mockScoreStore{byID: map[string]score.StageScore{}}
}

func (m *mockScoreStore) GetByID(_ context.Context, id string) (score.StageScore, error) {
	s, ok := m.byID[id]
	if !ok {
		return score.StageScore{}, sql.ErrNoRows
	}
	return s, nil
}

func (m *mockScoreStore) GetByRegistrationAndStage(_ context.Context, registrationID, stageID string) (score.StageScore, error) {
	for _, s := range m.byID {
		if s.RegistrationID == registrationID && s.StageID == stageID {
			return s, nil
		}
	}
	return score.StageScore{}, sql.ErrNoRows
}

func (m *mockScoreStore) Save(_ context.Context, s score.StageScore) error {
	m.saved = append(m.saved, s)
	// Enforce the one-score-per-registration-per-stage upsert like SQLite does
	for id, existing := range m.byID {
		if existing.RegistrationID == s.RegistrationID && existing.StageID == s.StageID {
			delete(m.byID, id)
		}
	}
	m.byID[s.ID] = s
	return nil
}

type mockArticleStore struct {
	byID  map[string]news.Article
	saved []news.Article
}

func newMockArticleStore() *mockArticleStore {
	return &mockArticleStore{byID: map[string]news.Article{}}
}

func (m *mockArticleStore) GetByID(_ context.Context, id string) (news.Article, error) {
	a, ok := m.byID[id]
	if !ok {
		return news.Article{}, sql.ErrNoRows
	}
	return a, nil
}

func (m *mockArticleStore) Save(_ context.Context, a news.Article) error {
	m.saved = append(m.saved, a)
	m.byID[a.ID] = a
	return nil
}

type mockEmailSender struct {
	sent []email.SendRequest
	err  error
}

func (m *mockEmailSender) Send(_ context.Context, req email.SendRequest) (email.SendResult, error) {
	if m.err != nil {
		return email.SendResult{}, m.err
	}
	m.sent = append(m.sent, req)
	return email.SendResult{MessageID: "mock-1"}, nil
}
