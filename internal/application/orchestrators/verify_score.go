package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/metrics"
	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/score"
)

// ScoreStoreForVerify defines the score persistence needed here.
type ScoreStoreForVerify interface {
	GetByID(ctx context.Context, id string) (score.StageScore, error)
	Save(ctx context.Context, s score.StageScore) error
}

// VerifyScoreInput carries input for the verify-score orchestrator.
type VerifyScoreInput struct {
	ScoreID    string
	VerifiedBy string // account ID of the verifying official
}

// VerifyScoreDeps holds dependencies for VerifyScore.
type VerifyScoreDeps struct {
	ScoreStore   ScoreStoreForVerify
	AccountStore AccountLookupStore
	Metrics      *metrics.Metrics // optional
}

var (
	ErrScoreNotFound  = errors.New("score not found")
	ErrNotAuthorized  = errors.New("account is not authorized to verify scores")
	ErrVerifierNotSet = errors.New("verifying account is required")
)

// ExecuteVerifyScore marks a submitted score verified, making it eligible
// for leaderboard inclusion and immutable to further submission.
// PRE: score exists and is unverified; verifier is an admin or official
// POST: VerifiedAt/VerifiedBy set and persisted
// INVARIANT: Verification happens at most once per score
func ExecuteVerifyScore(ctx context.Context, input VerifyScoreInput, deps VerifyScoreDeps) (score.StageScore, error) {
	if input.VerifiedBy == "" {
		return score.StageScore{}, ErrVerifierNotSet
	}

	verifier, err := deps.AccountStore.GetByID(ctx, input.VerifiedBy)
	if err != nil {
		return score.StageScore{}, ErrNotAuthorized
	}
	if !verifier.CanVerifyScores() {
		return score.StageScore{}, ErrNotAuthorized
	}

	sc, err := deps.ScoreStore.GetByID(ctx, input.ScoreID)
	if err != nil {
		return score.StageScore{}, ErrScoreNotFound
	}
	if err := sc.Verify(input.VerifiedBy, time.Now()); err != nil {
		return score.StageScore{}, err
	}
	if err := deps.ScoreStore.Save(ctx, sc); err != nil {
		return score.StageScore{}, err
	}

	if deps.Metrics != nil {
		deps.Metrics.ScoreVerified()
	}
	slog.Info("score_event", "event", "score_verified",
		"score_id", sc.ID, "registration_id", sc.RegistrationID,
		"verified_by", input.VerifiedBy, "role", verifier.Role)

	return sc, nil
}
