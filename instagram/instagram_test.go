package instagram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"atelier/models"
	"atelier/repo"
)

func newTestHandler() (*Handler, *repo.Memory[models.InstagramPost]) {
	store := repo.NewMemory[models.InstagramPost](func(a, b models.InstagramPost) bool {
		return a.Date.After(b.Date)
	})
	return NewHandler(store), store
}

func TestSeedIsIdempotentByPrecheck(t *testing.T) {
	ctx := context.Background()
	h, store := newTestHandler()

	w := httptest.NewRecorder()
	h.Seed(w, httptest.NewRequest(http.MethodPost, "/admin/api/instagram/seed", nil), nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("first seed: expected 201, got %d", w.Code)
	}
	var first map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &first)
	if first["status"] != "seeded" {
		t.Fatalf("first seed status = %v", first["status"])
	}

	after, _ := store.Count(ctx, repo.Filter{})
	if after != int64(len(SamplePosts())) {
		t.Fatalf("expected %d seeded posts, got %d", len(SamplePosts()), after)
	}

	w = httptest.NewRecorder()
	h.Seed(w, httptest.NewRequest(http.MethodPost, "/admin/api/instagram/seed", nil), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("second seed: expected 200, got %d", w.Code)
	}
	var second map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &second)
	if second["status"] != "skipped" {
		t.Fatalf("second seed status = %v", second["status"])
	}

	unchanged, _ := store.Count(ctx, repo.Filter{})
	if unchanged != after {
		t.Fatalf("second seed changed collection size: %d -> %d", after, unchanged)
	}
}

func TestStatsAreDerived(t *testing.T) {
	ctx := context.Background()
	h, store := newTestHandler()
	_ = store.Create(ctx, models.InstagramPost{ID: "ig1", Likes: 10, Comments: 2, Saves: 1})
	_ = store.Create(ctx, models.InstagramPost{ID: "ig2", Likes: 5, Comments: 3, Saves: 4})

	w := httptest.NewRecorder()
	h.GetStats(w, httptest.NewRequest(http.MethodGet, "/api/instagram/stats", nil), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var stats models.InstagramStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := models.InstagramStats{Posts: 2, Likes: 15, Comments: 5, Saves: 5}
	if stats != want {
		t.Fatalf("stats = %+v, want %+v", stats, want)
	}
}

func TestListFiltersByUsername(t *testing.T) {
	ctx := context.Background()
	h, store := newTestHandler()
	_ = store.Create(ctx, models.InstagramPost{ID: "ig1", Username: "atelier.studio"})
	_ = store.Create(ctx, models.InstagramPost{ID: "ig2", Username: "someone.else"})

	w := httptest.NewRecorder()
	h.GetPosts(w, httptest.NewRequest(http.MethodGet, "/api/instagram?username=atelier.studio", nil), nil)
	var posts []models.InstagramPost
	if err := json.Unmarshal(w.Body.Bytes(), &posts); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(posts) != 1 || posts[0].ID != "ig1" {
		t.Fatalf("expected only atelier.studio posts, got %+v", posts)
	}
}
