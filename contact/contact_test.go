package contact

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"atelier/config"
)

type recordingSender struct {
	sent []string
	err  error
}

func (s *recordingSender) Send(to, subject, body string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, subject)
	return nil
}

func configured() config.Config {
	return config.Config{
		EmailUser: "site@example.com",
		EmailPass: "app-password",
		ContactTo: "site@example.com",
	}
}

func submit(h *Handler, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.Submit(w, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body)), nil)
	return w
}

func TestSubmitSendsEnvelope(t *testing.T) {
	sender := &recordingSender{}
	h := NewHandler(configured(), sender)

	w := submit(h, `{"name":"Ada","email":"ada@example.com","subject":"Hi","message":"Hello there"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"success":true`) {
		t.Fatalf("expected success body, got %s", w.Body.String())
	}
	if len(sender.sent) != 1 || sender.sent[0] != "[contact] Hi" {
		t.Fatalf("unexpected sends: %v", sender.sent)
	}
}

func TestSubmitRejectsEmptyFields(t *testing.T) {
	sender := &recordingSender{}
	h := NewHandler(configured(), sender)

	w := submit(h, `{"name":"","email":"a@b.com","subject":"s","message":"m"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if len(sender.sent) != 0 {
		t.Fatal("validation failure must not reach the relay")
	}
}

func TestSubmitWithoutCredentialsIsConfigError(t *testing.T) {
	sender := &recordingSender{}
	h := NewHandler(config.Config{}, sender)

	w := submit(h, `{"name":"Ada","email":"ada@example.com","subject":"Hi","message":"Hello"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "not configured") {
		t.Fatalf("expected config error message, got %s", w.Body.String())
	}
	if len(sender.sent) != 0 {
		t.Fatal("missing credentials must not reach the relay")
	}
}

func TestSubmitPropagatesRelayFailure(t *testing.T) {
	sender := &recordingSender{err: errors.New("connection refused")}
	h := NewHandler(configured(), sender)

	w := submit(h, `{"name":"Ada","email":"ada@example.com","subject":"Hi","message":"Hello"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "connection refused") {
		t.Fatalf("expected underlying cause in body, got %s", w.Body.String())
	}
}
