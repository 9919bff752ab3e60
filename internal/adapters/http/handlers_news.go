package web

import (
	"net/http"
	"time"
)

// newsItem is the public shape of one published article.
type newsItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	BodyHTML    string    `json:"body_html"`
	PublishedAt time.Time `json:"published_at"`
}

// handleNews handles GET /api/news — published articles with rendered
// markdown bodies.
func handleNews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	articles, err := stores.NewsStore.ListPublished(ctx)
	if err != nil {
		internalError(w, err)
		return
	}

	items := make([]newsItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, newsItem{
			ID:          a.ID,
			Title:       a.Title,
			BodyHTML:    renderMarkdown(a.Body),
			PublishedAt: a.PublishedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"articles": items})
}
