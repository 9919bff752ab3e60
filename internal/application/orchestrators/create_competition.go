package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/competition"
	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/discipline"
)

// CompetitionStore defines the competition persistence needed here.
type CompetitionStore interface {
	Save(ctx context.Context, c competition.Competition) error
}

// StageStoreForCreate defines the stage persistence needed here.
type StageStoreForCreate interface {
	Save(ctx context.Context, s competition.Stage) error
}

// DisciplineLookupStore resolves the disciplines a competition hosts.
type DisciplineLookupStore interface {
	GetByID(ctx context.Context, id string) (discipline.Discipline, error)
}

// CreateCompetitionInput carries input for the create-competition orchestrator.
type CreateCompetitionInput struct {
	Name          string
	Location      string
	StartDate     time.Time
	EndDate       time.Time
	DisciplineIDs []string // stages are generated per discipline
	CreatedBy     string   // account ID

	// Stage parameters; zero values fall back to the federation defaults.
	ScoringRounds   int
	SighterCount    int
	MaxScorePerShot int
}

// CreateCompetitionResult carries the created competition and its stages.
type CreateCompetitionResult struct {
	Competition competition.Competition
	Stages      []competition.Stage
}

// CreateCompetitionDeps holds dependencies for CreateCompetition.
type CreateCompetitionDeps struct {
	CompetitionStore CompetitionStore
	StageStore       StageStoreForCreate
	DisciplineStore  DisciplineLookupStore
}

// ExecuteCreateCompetition creates a draft competition and generates its
// stages: one stage per discipline per that discipline's stage count.
// PRE: Name and StartDate set; DisciplineIDs non-empty and resolvable
// POST: Competition persisted in draft status with all stages persisted
func ExecuteCreateCompetition(ctx context.Context, input CreateCompetitionInput, deps CreateCompetitionDeps) (CreateCompetitionResult, error) {
	if len(input.DisciplineIDs) == 0 {
		return CreateCompetitionResult{}, errors.New("at least one discipline is required")
	}

	if input.ScoringRounds <= 0 {
		input.ScoringRounds = competition.DefaultScoringRounds
	}
	if input.SighterCount < 0 {
		input.SighterCount = competition.DefaultSighterCount
	}
	if input.MaxScorePerShot <= 0 {
		input.MaxScorePerShot = competition.DefaultMaxScorePerShot
	}

	c := competition.Competition{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Location:  input.Location,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Status:    competition.StatusDraft,
		CreatedBy: input.CreatedBy,
		CreatedAt: time.Now(),
	}
	if err := c.Validate(); err != nil {
		return CreateCompetitionResult{}, err
	}

	// Resolve disciplines before persisting anything
	var stages []competition.Stage
	for _, disciplineID := range input.DisciplineIDs {
		d, err := deps.DisciplineStore.GetByID(ctx, disciplineID)
		if err != nil {
			return CreateCompetitionResult{}, errors.New("discipline not found: " + disciplineID)
		}
		for n := 1; n <= d.StageCount; n++ {
			st := competition.Stage{
				ID:              uuid.New().String(),
				CompetitionID:   c.ID,
				DisciplineID:    d.ID,
				Number:          n,
				ScoringRounds:   input.ScoringRounds,
				SighterCount:    input.SighterCount,
				MaxScorePerShot: input.MaxScorePerShot,
			}
			if err := st.Validate(); err != nil {
				return CreateCompetitionResult{}, err
			}
			stages = append(stages, st)
		}
	}

	if err := deps.CompetitionStore.Save(ctx, c); err != nil {
		return CreateCompetitionResult{}, err
	}
	for _, st := range stages {
		if err := deps.StageStore.Save(ctx, st); err != nil {
			return CreateCompetitionResult{}, err
		}
	}

	slog.Info("competition_event", "event", "competition_created", "competition_id", c.ID, "name", c.Name, "stages", len(stages))

	return CreateCompetitionResult{Competition: c, Stages: stages}, nil
}
