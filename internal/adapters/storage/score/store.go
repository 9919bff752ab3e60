package score

import (
	"context"

	domain "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/score"
)

// Store persists StageScore state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.StageScore, error)
	GetByRegistrationAndStage(ctx context.Context, registrationID, stageID string) (domain.StageScore, error)
	Save(ctx context.Context, value domain.StageScore) error
	ListByCompetitionID(ctx context.Context, competitionID string) ([]domain.StageScore, error)
	ListVerifiedByCompetitionID(ctx context.Context, competitionID string) ([]domain.StageScore, error)
	ListUnverifiedByCompetitionID(ctx context.Context, competitionID string) ([]domain.StageScore, error)
}
