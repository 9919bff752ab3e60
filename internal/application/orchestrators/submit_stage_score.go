package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/metrics"
	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/competition"
	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/registration"
	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/score"
)

// StageLookupStore resolves a stage by ID.
type StageLookupStore interface {
	GetByID(ctx context.Context, id string) (competition.Stage, error)
}

// RegistrationLookupStore resolves a registration by ID.
type RegistrationLookupStore interface {
	GetByID(ctx context.Context, id string) (registration.Registration, error)
}

// ScoreStoreForSubmit defines the score persistence needed here.
type ScoreStoreForSubmit interface {
	GetByRegistrationAndStage(ctx context.Context, registrationID, stageID string) (score.StageScore, error)
	Save(ctx context.Context, s score.StageScore) error
}

// SubmitStageScoreInput carries one stage attempt's raw shot entries.
type SubmitStageScoreInput struct {
	RegistrationID string
	StageID        string
	SighterMode    string
	Shots          []score.Shot
	IsDNF          bool
	IsDQ           bool
}

// SubmitStageScoreDeps holds dependencies for SubmitStageScore.
type SubmitStageScoreDeps struct {
	StageStore        StageLookupStore
	RegistrationStore RegistrationLookupStore
	CompetitionStore  CompetitionLookupStore
	ScoreStore        ScoreStoreForSubmit
	Metrics           *metrics.Metrics // optional
}

var (
	ErrStageNotFound        = errors.New("stage not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrScoreVerified        = errors.New("score has been verified and can no longer be changed")
	ErrStageNotInDiscipline = errors.New("stage does not belong to the registration's discipline")
)

// ExecuteSubmitStageScore computes and persists the score for one stage
// attempt. Resubmission replaces the previous attempt until an official
// verifies it; after verification the score is immutable.
// PRE: registration and stage exist and match; competition accepts scores
// POST: StageScore persisted with computed totals and full shot record
// INVARIANT: One StageScore per registration per stage
func ExecuteSubmitStageScore(ctx context.Context, input SubmitStageScoreInput, deps SubmitStageScoreDeps) (score.StageScore, error) {
	reg, err := deps.RegistrationStore.GetByID(ctx, input.RegistrationID)
	if err != nil {
		return score.StageScore{}, ErrRegistrationNotFound
	}
	st, err := deps.StageStore.GetByID(ctx, input.StageID)
	if err != nil {
		return score.StageScore{}, ErrStageNotFound
	}
	if st.DisciplineID != reg.DisciplineID || st.CompetitionID != reg.CompetitionID {
		return score.StageScore{}, ErrStageNotInDiscipline
	}

	c, err := deps.CompetitionStore.GetByID(ctx, reg.CompetitionID)
	if err != nil {
		return score.StageScore{}, ErrCompetitionNotFound
	}
	if c.IsFinalized() {
		return score.StageScore{}, competition.ErrFinalized
	}

	// A verified score is immutable
	if existing, err := deps.ScoreStore.GetByRegistrationAndStage(ctx, input.RegistrationID, input.StageID); err == nil {
		if existing.IsVerified() {
			return score.StageScore{}, ErrScoreVerified
		}
	}

	sc, err := score.BuildStageScore(input.Shots, st.Definition(), input.SighterMode, input.IsDNF, input.IsDQ)
	if err != nil {
		return score.StageScore{}, err
	}
	sc.ID = uuid.New().String()
	sc.RegistrationID = input.RegistrationID
	sc.StageID = input.StageID
	sc.SubmittedAt = time.Now()

	if err := sc.Validate(); err != nil {
		return score.StageScore{}, err
	}
	if err := deps.ScoreStore.Save(ctx, sc); err != nil {
		return score.StageScore{}, err
	}

	if deps.Metrics != nil {
		deps.Metrics.ScoreSubmitted()
	}
	slog.Info("score_event", "event", "score_submitted",
		"registration_id", sc.RegistrationID, "stage_id", sc.StageID,
		"total_score", sc.TotalScore, "x_count", sc.XCount, "v_count", sc.VCount,
		"dnf", sc.IsDNF, "dq", sc.IsDQ)

	return sc, nil
}
