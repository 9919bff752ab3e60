package discipline

import (
	"context"

	domain "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/discipline"
)

// Store persists Discipline state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Discipline, error)
	GetByName(ctx context.Context, name string) (domain.Discipline, error)
	Save(ctx context.Context, value domain.Discipline) error
	List(ctx context.Context) ([]domain.Discipline, error)
}
