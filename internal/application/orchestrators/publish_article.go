package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/news"
)

// ArticleStore defines the article persistence needed here.
type ArticleStore interface {
	GetByID(ctx context.Context, id string) (news.Article, error)
	Save(ctx context.Context, a news.Article) error
}

// CreateArticleInput carries input for drafting a news article.
type CreateArticleInput struct {
	Title    string
	Body     string // markdown
	AuthorID string
}

// CreateArticleDeps holds dependencies for CreateArticle.
type CreateArticleDeps struct {
	ArticleStore ArticleStore
}

// ExecuteCreateArticle drafts a news article.
// PRE: Title and Body are non-empty
// POST: Article persisted in draft status
func ExecuteCreateArticle(ctx context.Context, input CreateArticleInput, deps CreateArticleDeps) (news.Article, error) {
	a := news.Article{
		ID:        uuid.New().String(),
		Title:     input.Title,
		Body:      input.Body,
		Status:    news.StatusDraft,
		AuthorID:  input.AuthorID,
		CreatedAt: time.Now(),
	}
	if err := a.Validate(); err != nil {
		return news.Article{}, err
	}
	if err := deps.ArticleStore.Save(ctx, a); err != nil {
		return news.Article{}, err
	}
	slog.Info("news_event", "event", "article_drafted", "article_id", a.ID, "title", a.Title)
	return a, nil
}

// PublishArticleInput carries input for the publish orchestrator.
type PublishArticleInput struct {
	ArticleID string
}

// ErrArticleNotFound is returned when the article ID cannot be resolved.
var ErrArticleNotFound = errors.New("article not found")

// ExecutePublishArticle transitions a draft article to published.
// PRE: article exists and is a draft
// POST: Article published with PublishedAt set
func ExecutePublishArticle(ctx context.Context, input PublishArticleInput, deps CreateArticleDeps) (news.Article, error) {
	a, err := deps.ArticleStore.GetByID(ctx, input.ArticleID)
	if err != nil {
		return news.Article{}, ErrArticleNotFound
	}
	if err := a.Publish(time.Now()); err != nil {
		return news.Article{}, err
	}
	if err := deps.ArticleStore.Save(ctx, a); err != nil {
		return news.Article{}, err
	}
	slog.Info("news_event", "event", "article_published", "article_id", a.ID, "title", a.Title)
	return a, nil
}
