package web

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/http/middleware"
	accountDomain "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/account"
	competitionDomain "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/competition"
	disciplineDomain "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/discipline"
	newsDomain "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/news"
	registrationDomain "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/registration"
	scoreDomain "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/score"
	shooterDomain "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/shooter"
	teamDomain "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/team"
)

// Mock implementations for testing

type mockAccountStore struct {
	accounts map[string]accountDomain.Account // by ID
}

func (m *mockAccountStore) GetByID(_ context.Context, id string) (accountDomain.Account, error) {
	if a, ok := m.accounts[id]; ok {
		return a, nil
	}
	return accountDomain.Account{}, sql.ErrNoRows
}

func (m *mockAccountStore) GetByEmail(_ context.Context, email string) (accountDomain.Account, error) {
	for _, a := range m.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return accountDomain.Account{}, sql.ErrNoRows
}

func (m *mockAccountStore) Save(_ context.Context, a accountDomain.Account) error {
	if m.accounts == nil {
		m.accounts = make(map[string]accountDomain.Account)
	}
	m.accounts[a.ID] = a
	return nil
}

func (m *mockAccountStore) List(_ context.Context) ([]accountDomain.Account, error) {
	var list []accountDomain.Account
	for _, a := range m.accounts {
		list = append(list, a)
	}
	return list, nil
}

type mockShooterStore struct {
	shooters map[string]shooterDomain.Shooter
}

func (m *mockShooterStore) GetByID(_ context.Context, id string) (shooterDomain.Shooter, error) {
	if s, ok := m.shooters[id]; ok {
		return s, nil
	}
	return shooterDomain.Shooter{}, sql.ErrNoRows
}

func (m *mockShooterStore) GetByNumber(_ context.Context, number string) (shooterDomain.Shooter, error) {
	for _, s := range m.shooters {
		if s.Number == number {
			return s, nil
		}
	}
	return shooterDomain.Shooter{}, sql.ErrNoRows
}

func (m *mockShooterStore) Save(_ context.Context, s shooterDomain.Shooter) error {
	if m.shooters == nil {
		m.shooters = make(map[string]shooterDomain.Shooter)
	}
	m.shooters[s.ID] = s
	return nil
}

func (m *mockShooterStore) ListActive(_ context.Context) ([]shooterDomain.Shooter, error) {
	var list []shooterDomain.Shooter
	for _, s := range m.shooters {
		if s.Status == shooterDomain.StatusActive {
			list = append(list, s)
		}
	}
	return list, nil
}

func (m *mockShooterStore) ListByIDs(_ context.Context, ids []string) ([]shooterDomain.Shooter, error) {
	var list []shooterDomain.Shooter
	for _, id := range ids {
		if s, ok := m.shooters[id]; ok {
			list = append(list, s)
		}
	}
	return list, nil
}

type mockDisciplineStore struct {
	disciplines map[string]disciplineDomain.Discipline
}

func (m *mockDisciplineStore) GetByID(_ context.Context, id string) (disciplineDomain.Discipline, error) {
	if d, ok := m.disciplines[id]; ok {
		return d, nil
	}
	return disciplineDomain.Discipline{}, sql.ErrNoRows
}

func (m *mockDisciplineStore) GetByName(_ context.Context, name string) (disciplineDomain.Discipline, error) {
	for _, d := range m.disciplines {
		if d.Name == name {
			return d, nil
		}
	}
	return disciplineDomain.Discipline{}, sql.ErrNoRows
}

func (m *mockDisciplineStore) Save(_ context.Context, d disciplineDomain.Discipline) error {
	if m.disciplines == nil {
		m.disciplines = make(map[string]disciplineDomain.Discipline)
	}
	m.disciplines[d.ID] = d
	return nil
}

func (m *mockDisciplineStore) List(_ context.Context) ([]disciplineDomain.Discipline, error) {
	var list []disciplineDomain.Discipline
	for _, d := range m.disciplines {
		list = append(list, d)
	}
	return list, nil
}

type mockCompetitionStore struct {
	competitions map[string]competitionDomain.Competition
}

func (m *mockCompetitionStore) GetByID(_ context.Context, id string) (competitionDomain.Competition, error) {
	if c, ok := m.competitions[id]; ok {
		return c, nil
	}
	return competitionDomain.Competition{}, sql.ErrNoRows
}

func (m *mockCompetitionStore) Save(_ context.Context, c competitionDomain.Competition) error {
	if m.competitions == nil {
		m.competitions = make(map[string]competitionDomain.Competition)
	}
	m.competitions[c.ID] = c
	return nil
}

func (m *mockCompetitionStore) List(_ context.Context) ([]competitionDomain.Competition, error) {
	var list []competitionDomain.Competition
	for _, c := range m.competitions {
		list = append(list, c)
	}
	return list, nil
}

func (m *mockCompetitionStore) ListByStatus(_ context.Context, status string) ([]competitionDomain.Competition, error) {
	var list []competitionDomain.Competition
	for _, c := range m.competitions {
		if c.Status == status {
			list = append(list, c)
		}
	}
	return list, nil
}

type mockStageStore struct {
	stages map[string]competitionDomain.Stage
}

func (m *mockStageStore) GetByID(_ context.Context, id string) (competitionDomain.Stage, error) {
	if s, ok := m.stages[id]; ok {
		return s, nil
	}
	return competitionDomain.Stage{}, sql.ErrNoRows
}

func (m *mockStageStore) Save(_ context.Context, s competitionDomain.Stage) error {
	if m.stages == nil {
		m.stages = make(map[string]competitionDomain.Stage)
	}
	m.stages[s.ID] = s
	return nil
}

func (m *mockStageStore) ListByCompetitionID(_ context.Context, competitionID string) ([]competitionDomain.Stage, error) {
	var list []competitionDomain.Stage
	for _, s := range m.stages {
		if s.CompetitionID == competitionID {
			list = append(list, s)
		}
	}
	return list, nil
}

type mockTeamStore struct {
	teams map[string]teamDomain.Team
}

func (m *mockTeamStore) GetByID(_ context.Context, id string) (teamDomain.Team, error) {
	if t, ok := m.teams[id]; ok {
		return t, nil
	}
	return teamDomain.Team{}, sql.ErrNoRows
}

func (m *mockTeamStore) Save(_ context.Context, t teamDomain.Team) error {
	if m.teams == nil {
		m.teams = make(map[string]teamDomain.Team)
	}
	m.teams[t.ID] = t
	return nil
}

func (m *mockTeamStore) ListByCompetitionID(_ context.Context, competitionID string) ([]teamDomain.Team, error) {
	var list []teamDomain.Team
	for _, t := range m.teams {
		if t.CompetitionID == competitionID {
			list = append(list, t)
		}
	}
	return list, nil
}

type mockRegistrationStore struct {
	registrations map[string]registrationDomain.Registration
}

func (m *mockRegistrationStore) GetByID(_ context.Context, id string) (registrationDomain.Registration, error) {
	if r, ok := m.registrations[id]; ok {
		return r, nil
	}
	return registrationDomain.Registration{}, sql.ErrNoRows
}

func (m *mockRegistrationStore) GetByShooterAndDiscipline(_ context.Context, competitionID, shooterID, disciplineID string) (registrationDomain.Registration, error) {
	for _, r := range m.registrations {
		if r.CompetitionID == competitionID && r.ShooterID == shooterID && r.DisciplineID == disciplineID {
			return r, nil
		}
	}
	return registrationDomain.Registration{}, sql.ErrNoRows
}

func (m *mockRegistrationStore) Save(_ context.Context, r registrationDomain.Registration) error {
	if m.registrations == nil {
		m.registrations = make(map[string]registrationDomain.Registration)
	}
	m.registrations[r.ID] = r
	return nil
}

func (m *mockRegistrationStore) ListByCompetitionID(_ context.Context, competitionID string) ([]registrationDomain.Registration, error) {
	var list []registrationDomain.Registration
	for _, r := range m.registrations {
		if r.CompetitionID == competitionID {
			list = append(list, r)
		}
	}
	return list, nil
}

// mockScoreStore keys scores by registration+stage, enforcing the same
// one-score-per-stage upsert the SQLite store's unique index does.
type mockScoreStore struct {
	scores    map[string]scoreDomain.StageScore // by ID
	compByReg map[string]string
}

func (m *mockScoreStore) GetByID(_ context.Context, id string) (scoreDomain.StageScore, error) {
	if s, ok := m.scores[id]; ok {
		return s, nil
	}
	return scoreDomain.StageScore{}, sql.ErrNoRows
}

func (m *mockScoreStore) GetByRegistrationAndStage(_ context.Context, registrationID, stageID string) (scoreDomain.StageScore, error) {
	for _, s := range m.scores {
		if s.RegistrationID == registrationID && s.StageID == stageID {
			return s, nil
		}
	}
	return scoreDomain.StageScore{}, sql.ErrNoRows
}

func (m *mockScoreStore) Save(_ context.Context, sc scoreDomain.StageScore) error {
	if m.scores == nil {
		m.scores = make(map[string]scoreDomain.StageScore)
	}
	for id, s := range m.scores {
		if s.RegistrationID == sc.RegistrationID && s.StageID == sc.StageID && id != sc.ID {
			delete(m.scores, id)
		}
	}
	m.scores[sc.ID] = sc
	return nil
}

func (m *mockScoreStore) ListByCompetitionID(_ context.Context, competitionID string) ([]scoreDomain.StageScore, error) {
	return m.filter(competitionID, func(scoreDomain.StageScore) bool { return true }), nil
}

func (m *mockScoreStore) ListVerifiedByCompetitionID(_ context.Context, competitionID string) ([]scoreDomain.StageScore, error) {
	return m.filter(competitionID, func(s scoreDomain.StageScore) bool { return s.IsVerified() }), nil
}

func (m *mockScoreStore) ListUnverifiedByCompetitionID(_ context.Context, competitionID string) ([]scoreDomain.StageScore, error) {
	return m.filter(competitionID, func(s scoreDomain.StageScore) bool { return !s.IsVerified() }), nil
}

func (m *mockScoreStore) filter(competitionID string, keep func(scoreDomain.StageScore) bool) []scoreDomain.StageScore {
	var list []scoreDomain.StageScore
	for _, s := range m.scores {
		if m.compByReg[s.RegistrationID] == competitionID && keep(s) {
			list = append(list, s)
		}
	}
	return list
}

type mockNewsStore struct {
	articles map[string]newsDomain.Article
}

func (m *mockNewsStore) GetByID(_ context.Context, id string) (newsDomain.Article, error) {
	if a, ok := m.articles[id]; ok {
		return a, nil
	}
	return newsDomain.Article{}, sql.ErrNoRows
}

func (m *mockNewsStore) Save(_ context.Context, a newsDomain.Article) error {
	if m.articles == nil {
		m.articles = make(map[string]newsDomain.Article)
	}
	m.articles[a.ID] = a
	return nil
}

func (m *mockNewsStore) ListPublished(_ context.Context) ([]newsDomain.Article, error) {
	var list []newsDomain.Article
	for _, a := range m.articles {
		if a.IsPublished() {
			list = append(list, a)
		}
	}
	return list, nil
}

func (m *mockNewsStore) List(_ context.Context) ([]newsDomain.Article, error) {
	var list []newsDomain.Article
	for _, a := range m.articles {
		list = append(list, a)
	}
	return list, nil
}

// testStores wires fresh mocks into the package globals and returns them
// for seeding and inspection.
type testStores struct {
	accounts      *mockAccountStore
	shooters      *mockShooterStore
	disciplines   *mockDisciplineStore
	competitions  *mockCompetitionStore
	stages        *mockStageStore
	teams         *mockTeamStore
	registrations *mockRegistrationStore
	scores        *mockScoreStore
	news          *mockNewsStore
}

func setupTestStores(t *testing.T) *testStores {
	t.Helper()

	ts := &testStores{
		accounts:      &mockAccountStore{accounts: make(map[string]accountDomain.Account)},
		shooters:      &mockShooterStore{shooters: make(map[string]shooterDomain.Shooter)},
		disciplines:   &mockDisciplineStore{disciplines: make(map[string]disciplineDomain.Discipline)},
		competitions:  &mockCompetitionStore{competitions: make(map[string]competitionDomain.Competition)},
		stages:        &mockStageStore{stages: make(map[string]competitionDomain.Stage)},
		teams:         &mockTeamStore{teams: make(map[string]teamDomain.Team)},
		registrations: &mockRegistrationStore{registrations: make(map[string]registrationDomain.Registration)},
		scores:        &mockScoreStore{scores: make(map[string]scoreDomain.StageScore), compByReg: make(map[string]string)},
		news:          &mockNewsStore{articles: make(map[string]newsDomain.Article)},
	}
	stores = &Stores{
		AccountStore:      ts.accounts,
		ShooterStore:      ts.shooters,
		DisciplineStore:   ts.disciplines,
		CompetitionStore:  ts.competitions,
		StageStore:        ts.stages,
		TeamStore:         ts.teams,
		RegistrationStore: ts.registrations,
		ScoreStore:        ts.scores,
		NewsStore:         ts.news,
	}
	sessions = middleware.NewSessionStore()
	appMetrics = nil
	emailSender = nil
	return ts
}

// seedOfficial stores an official account and returns a context carrying
// its session.
func (ts *testStores) seedOfficial(t *testing.T, ctx context.Context) context.Context {
	t.Helper()
	ts.accounts.accounts["off-1"] = accountDomain.Account{
		ID: "off-1", Email: "official@shootsa.org.za", Role: accountDomain.RoleOfficial, CreatedAt: time.Now(),
	}
	return middleware.ContextWithSession(ctx, middleware.Session{
		AccountID: "off-1", Email: "official@shootsa.org.za", Role: accountDomain.RoleOfficial, CreatedAt: time.Now(),
	})
}

// seedAdmin stores an admin account and returns a context carrying its session.
func (ts *testStores) seedAdmin(t *testing.T, ctx context.Context) context.Context {
	t.Helper()
	ts.accounts.accounts["adm-1"] = accountDomain.Account{
		ID: "adm-1", Email: "admin@shootsa.org.za", Role: accountDomain.RoleAdmin, CreatedAt: time.Now(),
	}
	return middleware.ContextWithSession(ctx, middleware.Session{
		AccountID: "adm-1", Email: "admin@shootsa.org.za", Role: accountDomain.RoleAdmin, CreatedAt: time.Now(),
	})
}

// seedCompetitionFixture stores an open competition with one prone stage,
// one active shooter and one registration.
func (ts *testStores) seedCompetitionFixture(t *testing.T) {
	t.Helper()
	ts.disciplines.disciplines["d1"] = disciplineDomain.Discipline{ID: "d1", Name: "Prone", StageCount: 2, Order: 1}
	ts.competitions.competitions["comp-1"] = competitionDomain.Competition{
		ID: "comp-1", Name: "Gauteng Open", Location: "Pretoria",
		StartDate: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		Status:    competitionDomain.StatusOpen, CreatedBy: "adm-1", CreatedAt: time.Now(),
	}
	ts.stages.stages["st-1"] = competitionDomain.Stage{
		ID: "st-1", CompetitionID: "comp-1", DisciplineID: "d1", Number: 1,
		ScoringRounds: 10, SighterCount: 2, MaxScorePerShot: 5,
	}
	ts.shooters.shooters["sh-1"] = shooterDomain.Shooter{
		ID: "sh-1", Name: "Anna Botha", Number: "SA-100", Club: "Pretoria RC",
		Province: "Gauteng", Status: shooterDomain.StatusActive,
	}
	ts.registrations.registrations["reg-1"] = registrationDomain.Registration{
		ID: "reg-1", CompetitionID: "comp-1", ShooterID: "sh-1",
		DisciplineID: "d1", AgeClassification: registrationDomain.AgeOpen,
	}
	ts.scores.compByReg["reg-1"] = "comp-1"
}
