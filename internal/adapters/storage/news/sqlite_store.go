package news

import (
	"context"
	"database/sql"
	"time"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/storage"
	domain "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/news"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves an Article by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Article, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, body, status, author_id, created_at, published_at
		 FROM article WHERE id = ?`, id)
	return scanArticle(row)
}

// Save persists an Article to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, a domain.Article) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO article (id, title, body, status, author_id, created_at, published_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   title=excluded.title, body=excluded.body, status=excluded.status,
		   published_at=excluded.published_at`,
		a.ID, a.Title, a.Body, a.Status, nullStr(a.AuthorID),
		a.CreatedAt.Format(timeLayout), nullTime(a.PublishedAt))
	return err
}

// ListPublished retrieves published Articles, newest first.
func (s *SQLiteStore) ListPublished(ctx context.Context) ([]domain.Article, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, body, status, author_id, created_at, published_at
		 FROM article WHERE status = 'published' ORDER BY published_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanArticles(rows)
}

// List retrieves all Articles including drafts, newest first.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Article, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, body, status, author_id, created_at, published_at
		 FROM article ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanArticles(rows)
}

func scanArticle(row *sql.Row) (domain.Article, error) {
	var a domain.Article
	var createdAt string
	var authorID, publishedAt sql.NullString
	err := row.Scan(&a.ID, &a.Title, &a.Body, &a.Status, &authorID, &createdAt, &publishedAt)
	if err != nil {
		return domain.Article{}, err
	}
	a.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	if authorID.Valid {
		a.AuthorID = authorID.String
	}
	if publishedAt.Valid {
		a.PublishedAt, _ = time.Parse(timeLayout, publishedAt.String)
	}
	return a, nil
}

func scanArticles(rows *sql.Rows) ([]domain.Article, error) {
	var articles []domain.Article
	for rows.Next() {
		var a domain.Article
		var createdAt string
		var authorID, publishedAt sql.NullString
		if err := rows.Scan(&a.ID, &a.Title, &a.Body, &a.Status, &authorID, &createdAt, &publishedAt); err != nil {
			return nil, err
		}
		a.CreatedAt, _ = time.Parse(timeLayout, createdAt)
		if authorID.Valid {
			a.AuthorID = authorID.String
		}
		if publishedAt.Valid {
			a.PublishedAt, _ = time.Parse(timeLayout, publishedAt.String)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

func nullStr(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func nullTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.Format(timeLayout)
}
