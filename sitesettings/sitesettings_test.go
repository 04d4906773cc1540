package sitesettings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"atelier/models"
	"atelier/repo"
)

func newTestHandler() (*Handler, *repo.Memory[models.SiteSettings]) {
	store := repo.NewMemory[models.SiteSettings](nil)
	return NewHandler(store, "atelier-public"), store
}

func TestGetCreatesDefaultsOnce(t *testing.T) {
	h, store := newTestHandler()

	w := httptest.NewRecorder()
	h.Get(w, httptest.NewRequest(http.MethodGet, "/api/settings", nil), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var settings models.SiteSettings
	if err := json.Unmarshal(w.Body.Bytes(), &settings); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if settings.ID != SettingsID || settings.General.SiteName == "" {
		t.Fatalf("unexpected defaults: %+v", settings)
	}
	if settings.Appearance.StorageBucket != "atelier-public" {
		t.Fatalf("bucket not echoed: %+v", settings.Appearance)
	}

	n, _ := store.Count(context.Background(), repo.Filter{})
	if n != 1 {
		t.Fatalf("expected singleton, have %d docs", n)
	}

	// second read must not create another document
	w = httptest.NewRecorder()
	h.Get(w, httptest.NewRequest(http.MethodGet, "/api/settings", nil), nil)
	n, _ = store.Count(context.Background(), repo.Filter{})
	if n != 1 {
		t.Fatalf("second read created a document; have %d", n)
	}
}

func TestUpdateReplacesSectionInPlace(t *testing.T) {
	h, store := newTestHandler()

	body := `{"seo":{"metaTitle":"New title","metaDescription":"New description"}}`
	w := httptest.NewRecorder()
	h.Update(w, httptest.NewRequest(http.MethodPut, "/admin/api/settings", strings.NewReader(body)), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	got, err := store.GetByID(context.Background(), SettingsID)
	if err != nil {
		t.Fatalf("settings not stored: %v", err)
	}
	if got.SEO.MetaTitle != "New title" {
		t.Fatalf("seo section not updated: %+v", got.SEO)
	}
	// untouched sections keep their defaults
	if got.General.SiteName == "" {
		t.Fatalf("general section lost: %+v", got.General)
	}

	n, _ := store.Count(context.Background(), repo.Filter{})
	if n != 1 {
		t.Fatalf("update must keep a single document, have %d", n)
	}
}
