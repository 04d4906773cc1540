package blog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"atelier/models"
	"atelier/repo"

	"github.com/julienschmidt/httprouter"
)

func newTestHandler() (*Handler, *repo.Memory[models.BlogPost]) {
	store := repo.NewMemory[models.BlogPost](func(a, b models.BlogPost) bool {
		return a.Date.After(b.Date)
	})
	return NewHandler(store), store
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	h, _ := newTestHandler()

	body := `{"title":"Studio Notes","content":"Some words","category":"news"}`
	w := httptest.NewRecorder()
	h.CreatePost(w, httptest.NewRequest(http.MethodPost, "/admin/api/blog", strings.NewReader(body)), nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created models.BlogPost
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.ID == "" || created.Slug != "studio-notes" {
		t.Fatalf("unexpected created post: %+v", created)
	}

	w = httptest.NewRecorder()
	h.GetPost(w, httptest.NewRequest(http.MethodGet, "/api/blog/post/"+created.ID, nil),
		httprouter.Params{{Key: "id", Value: created.ID}})
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", w.Code)
	}

	var got models.BlogPost
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode got: %v", err)
	}
	if got.ID != created.ID || got.Title != "Studio Notes" || got.Content != "Some words" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestCreateRejectsDuplicateSlug(t *testing.T) {
	h, store := newTestHandler()
	_ = store.Create(context.Background(), models.BlogPost{ID: "b1", Title: "Hello", Slug: "hello", Content: "x"})

	body := `{"title":"Hello","content":"other words"}`
	w := httptest.NewRecorder()
	h.CreatePost(w, httptest.NewRequest(http.MethodPost, "/admin/api/blog", strings.NewReader(body)), nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate slug, got %d", w.Code)
	}

	n, _ := store.Count(context.Background(), repo.Filter{})
	if n != 1 {
		t.Fatalf("duplicate slug must not write; collection has %d docs", n)
	}
}

func TestCreateRequiresTitleAndContent(t *testing.T) {
	h, _ := newTestHandler()
	w := httptest.NewRecorder()
	h.CreatePost(w, httptest.NewRequest(http.MethodPost, "/admin/api/blog", strings.NewReader(`{"title":"x"}`)), nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetPostBySlug(t *testing.T) {
	h, store := newTestHandler()
	_ = store.Create(context.Background(), models.BlogPost{ID: "b1", Title: "Hello", Slug: "hello"})

	w := httptest.NewRecorder()
	h.GetPostBySlug(w, httptest.NewRequest(http.MethodGet, "/api/blog/slug/hello", nil),
		httprouter.Params{{Key: "slug", Value: "hello"}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	h.GetPostBySlug(w, httptest.NewRequest(http.MethodGet, "/api/blog/slug/nope", nil),
		httprouter.Params{{Key: "slug", Value: "nope"}})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	h, store := newTestHandler()
	_ = store.Create(context.Background(), models.BlogPost{ID: "b1", Title: "x"})
	ps := httprouter.Params{{Key: "id", Value: "b1"}}

	w := httptest.NewRecorder()
	h.DeletePost(w, httptest.NewRequest(http.MethodDelete, "/admin/api/blog/b1", nil), ps)
	if w.Code != http.StatusOK {
		t.Fatalf("first delete: expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	h.GetPost(w, httptest.NewRequest(http.MethodGet, "/api/blog/post/b1", nil), ps)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", w.Code)
	}

	// repeat delete is a no-op success, not an error
	w = httptest.NewRecorder()
	h.DeletePost(w, httptest.NewRequest(http.MethodDelete, "/admin/api/blog/b1", nil), ps)
	if w.Code != http.StatusOK {
		t.Fatalf("second delete: expected 200, got %d", w.Code)
	}
}

func TestUpdateMergesAndChecksSlug(t *testing.T) {
	ctx := context.Background()
	h, store := newTestHandler()
	_ = store.Create(ctx, models.BlogPost{ID: "b1", Title: "One", Slug: "one", Content: "c1"})
	_ = store.Create(ctx, models.BlogPost{ID: "b2", Title: "Two", Slug: "two", Content: "c2"})

	// slug collision with another post
	w := httptest.NewRecorder()
	h.UpdatePost(w, httptest.NewRequest(http.MethodPut, "/admin/api/blog/b2", strings.NewReader(`{"slug":"one"}`)),
		httprouter.Params{{Key: "id", Value: "b2"}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for slug collision, got %d", w.Code)
	}

	// keeping your own slug is fine
	w = httptest.NewRecorder()
	h.UpdatePost(w, httptest.NewRequest(http.MethodPut, "/admin/api/blog/b2",
		strings.NewReader(`{"slug":"two","title":"Two v2"}`)),
		httprouter.Params{{Key: "id", Value: "b2"}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	got, _ := store.GetByID(ctx, "b2")
	if got.Title != "Two v2" || got.Content != "c2" {
		t.Fatalf("merge failed: %+v", got)
	}

	// missing id
	w = httptest.NewRecorder()
	h.UpdatePost(w, httptest.NewRequest(http.MethodPut, "/admin/api/blog/nope", strings.NewReader(`{"title":"x"}`)),
		httprouter.Params{{Key: "id", Value: "nope"}})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestListFiltersByCategory(t *testing.T) {
	ctx := context.Background()
	h, store := newTestHandler()
	_ = store.Create(ctx, models.BlogPost{ID: "b1", Category: "news"})
	_ = store.Create(ctx, models.BlogPost{ID: "b2", Category: "design"})

	w := httptest.NewRecorder()
	h.GetPosts(w, httptest.NewRequest(http.MethodGet, "/api/blog?category=news", nil), nil)
	var posts []models.BlogPost
	if err := json.Unmarshal(w.Body.Bytes(), &posts); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(posts) != 1 || posts[0].ID != "b1" {
		t.Fatalf("expected only the news post, got %+v", posts)
	}
}
