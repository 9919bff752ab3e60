package news

import (
	"errors"
	"strings"
	"time"
)

// Article status constants.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Max length constants.
const (
	MaxTitleLength = 200
	MaxBodyLength  = 20000
)

// Domain errors
var (
	ErrEmptyTitle       = errors.New("article title cannot be empty")
	ErrEmptyBody        = errors.New("article body cannot be empty")
	ErrInvalidStatus    = errors.New("article status must be 'draft' or 'published'")
	ErrAlreadyPublished = errors.New("article is already published")
)

// Article is a federation news item. The body is markdown, rendered at the
// HTTP boundary with raw HTML escaped.
type Article struct {
	ID          string
	Title       string
	Body        string
	Status      string
	AuthorID    string // account ID
	CreatedAt   time.Time
	PublishedAt time.Time // zero until published
}

// Validate checks if the Article has valid data.
// PRE: Article struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Article) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return ErrEmptyTitle
	}
	if len(a.Title) > MaxTitleLength {
		return errors.New("article title cannot exceed 200 characters")
	}
	if strings.TrimSpace(a.Body) == "" {
		return ErrEmptyBody
	}
	if len(a.Body) > MaxBodyLength {
		return errors.New("article body cannot exceed 20000 characters")
	}
	if a.Status != StatusDraft && a.Status != StatusPublished {
		return ErrInvalidStatus
	}
	return nil
}

// IsPublished returns true if the article is visible to the public.
// INVARIANT: Status field is not mutated
func (a *Article) IsPublished() bool {
	return a.Status == StatusPublished
}

// Publish moves a draft article to published.
// PRE: Article is a draft
// POST: Status is published, PublishedAt is set
func (a *Article) Publish(at time.Time) error {
	if a.Status == StatusPublished {
		return ErrAlreadyPublished
	}
	a.Status = StatusPublished
	a.PublishedAt = at
	return nil
}
