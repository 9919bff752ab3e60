package news_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/news"
)

// TestArticle_Validate tests validation of Article.
func TestArticle_Validate(t *testing.T) {
	tests := []struct {
		name    string
		a       news.Article
		wantErr bool
	}{
		{
			name:    "valid draft",
			a:       news.Article{ID: "1", Title: "Nationals dates announced", Body: "See the **calendar**.", Status: news.StatusDraft, AuthorID: "acct1"},
			wantErr: false,
		},
		{
			name:    "empty title",
			a:       news.Article{ID: "2", Body: "body", Status: news.StatusDraft},
			wantErr: true,
		},
		{
			name:    "empty body",
			a:       news.Article{ID: "3", Title: "t", Status: news.StatusDraft},
			wantErr: true,
		},
		{
			name:    "bogus status",
			a:       news.Article{ID: "4", Title: "t", Body: "b", Status: "archived"},
			wantErr: true,
		},
		{
			name:    "oversized body",
			a:       news.Article{ID: "5", Title: "t", Body: strings.Repeat("x", news.MaxBodyLength+1), Status: news.StatusDraft},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.a.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Article.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestArticle_Publish tests the draft-to-published transition.
func TestArticle_Publish(t *testing.T) {
	at := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	t.Run("publish draft", func(t *testing.T) {
		a := news.Article{Title: "t", Body: "b", Status: news.StatusDraft}
		if err := a.Publish(at); err != nil {
			t.Fatalf("Publish() unexpected error: %v", err)
		}
		if !a.IsPublished() || !a.PublishedAt.Equal(at) {
			t.Errorf("after publish: %+v", a)
		}
	})

	t.Run("publish twice", func(t *testing.T) {
		a := news.Article{Status: news.StatusPublished}
		if err := a.Publish(at); err != news.ErrAlreadyPublished {
			t.Errorf("error = %v, want ErrAlreadyPublished", err)
		}
	})
}
