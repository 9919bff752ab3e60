package account

import (
	"context"

	domain "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/account"
)

// Store persists Account state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Account, error)
	GetByEmail(ctx context.Context, email string) (domain.Account, error)
	Save(ctx context.Context, value domain.Account) error
	List(ctx context.Context) ([]domain.Account, error)
}
