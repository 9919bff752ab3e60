package news

import (
	"context"

	domain "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/news"
)

// Store persists Article state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Article, error)
	Save(ctx context.Context, value domain.Article) error
	ListPublished(ctx context.Context) ([]domain.Article, error)
	List(ctx context.Context) ([]domain.Article, error)
}
