package handler

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/courtside/pickleball-platform/internal/newsletter"
	"github.com/gorilla/mux"
)

type fakeNewsletterRepo struct {
	byEmail map[string]newsletter.Subscriber
}

func newFakeNewsletterRepo() *fakeNewsletterRepo {
	return &fakeNewsletterRepo{byEmail: make(map[string]newsletter.Subscriber)}
}

func (f *fakeNewsletterRepo) Subscribe(s newsletter.Subscriber) error {
	if _, ok := f.byEmail[s.Email]; ok {
		return uniqueViolation()
	}
	f.byEmail[s.Email] = s
	return nil
}

func (f *fakeNewsletterRepo) Subscribers() ([]newsletter.Subscriber, error) {
	all := make([]newsletter.Subscriber, 0, len(f.byEmail))
	for _, s := range f.byEmail {
		all = append(all, s)
	}
	return all, nil
}

func (f *fakeNewsletterRepo) Unsubscribe(email string) error {
	if _, ok := f.byEmail[email]; !ok {
		return sql.ErrNoRows
	}
	delete(f.byEmail, email)
	return nil
}

func TestSubscribeNewsletterHandler(t *testing.T) {
	repo := newFakeNewsletterRepo()
	router := mux.NewRouter()
	svr := newTestServer(router)
	router.HandleFunc("/newsletter/subscribe", SubscribeNewsletterHandler(svr, repo)).Methods("POST")

	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantMessage string
	}{
		{"valid", `{"email":"ana@example.com"}`, http.StatusCreated, "Successfully subscribed to newsletter"},
		{"duplicate", `{"email":"ana@example.com"}`, http.StatusBadRequest, "Email is already subscribed"},
		{"empty", `{"email":""}`, http.StatusBadRequest, "Email is required"},
		{"invalid email", `{"email":"not-an-email"}`, http.StatusBadRequest, "invalid email"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/newsletter/subscribe", strings.NewReader(tc.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tc.wantStatus {
				t.Fatalf("got status %d, want %d: %s", w.Code, tc.wantStatus, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), tc.wantMessage) {
				t.Errorf("expected message %q, got: %s", tc.wantMessage, w.Body.String())
			}
		})
	}
	if len(repo.byEmail) != 1 {
		t.Fatalf("expected 1 subscriber, got %d", len(repo.byEmail))
	}
}

func TestUnsubscribeNewsletterHandler(t *testing.T) {
	repo := newFakeNewsletterRepo()
	repo.Subscribe(newsletter.Subscriber{ID: "abc", Email: "ana@example.com"})
	router := mux.NewRouter()
	svr := newTestServer(router)
	router.HandleFunc("/newsletter/unsubscribe/{email}", UnsubscribeNewsletterHandler(svr, repo)).Methods("DELETE")

	req := httptest.NewRequest("DELETE", "/newsletter/unsubscribe/ana@example.com", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", w.Code, w.Body.String())
	}
	if len(repo.byEmail) != 0 {
		t.Fatal("expected subscriber removed")
	}

	req = httptest.NewRequest("DELETE", "/newsletter/unsubscribe/unknown@example.com", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Email not found") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}
