package team

import (
	"context"

	domain "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/team"
)

// Store persists Team state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Team, error)
	Save(ctx context.Context, value domain.Team) error
	ListByCompetitionID(ctx context.Context, competitionID string) ([]domain.Team, error)
}
