package shooter

import (
	"context"

	domain "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/shooter"
)

// Store persists Shooter state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Shooter, error)
	GetByNumber(ctx context.Context, number string) (domain.Shooter, error)
	Save(ctx context.Context, value domain.Shooter) error
	ListActive(ctx context.Context) ([]domain.Shooter, error)
	ListByIDs(ctx context.Context, ids []string) ([]domain.Shooter, error)
}
