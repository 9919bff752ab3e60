package competition

import (
	"context"

	domain "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/competition"
)

// Store persists Competition state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Competition, error)
	Save(ctx context.Context, value domain.Competition) error
	List(ctx context.Context) ([]domain.Competition, error)
	ListByStatus(ctx context.Context, status string) ([]domain.Competition, error)
}

// StageStore persists Stage state.
type StageStore interface {
	GetByID(ctx context.Context, id string) (domain.Stage, error)
	Save(ctx context.Context, value domain.Stage) error
	ListByCompetitionID(ctx context.Context, competitionID string) ([]domain.Stage, error)
}
