package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/courtside/pickleball-platform/internal/tournament"
	"github.com/gorilla/mux"
)

type fakeTournamentRepo struct {
	tournaments map[string]tournament.Tournament
}

func newFakeTournamentRepo() *fakeTournamentRepo {
	return &fakeTournamentRepo{tournaments: make(map[string]tournament.Tournament)}
}

func (f *fakeTournamentRepo) Create(t tournament.Tournament) error {
	f.tournaments[t.ID] = t
	return nil
}

func (f *fakeTournamentRepo) All() ([]tournament.Tournament, error) {
	all := make([]tournament.Tournament, 0, len(f.tournaments))
	for _, t := range f.tournaments {
		all = append(all, t)
	}
	return all, nil
}

func (f *fakeTournamentRepo) ByStatus(status string) ([]tournament.Tournament, error) {
	var out []tournament.Tournament
	for _, t := range f.tournaments {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTournamentRepo) GetByID(id string) (tournament.Tournament, error) {
	t, ok := f.tournaments[id]
	if !ok {
		return tournament.Tournament{}, sql.ErrNoRows
	}
	return t, nil
}

func (f *fakeTournamentRepo) Update(t tournament.Tournament) error {
	existing, ok := f.tournaments[t.ID]
	if !ok {
		return sql.ErrNoRows
	}
	t.Status = existing.Status
	t.CreatedAt = existing.CreatedAt
	f.tournaments[t.ID] = t
	return nil
}

func (f *fakeTournamentRepo) UpdateStatus(id, status string) error {
	t, ok := f.tournaments[id]
	if !ok {
		return sql.ErrNoRows
	}
	t.Status = status
	f.tournaments[id] = t
	return nil
}

func (f *fakeTournamentRepo) Delete(id string) error {
	if _, ok := f.tournaments[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.tournaments, id)
	return nil
}

func TestCreateTournamentHandler(t *testing.T) {
	repo := newFakeTournamentRepo()
	router := mux.NewRouter()
	svr := newTestServer(router)
	router.HandleFunc("/tournaments/add", CreateTournamentHandler(svr, repo)).Methods("POST")

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"valid", `{"name":"Open Slam","organizer":"PPA","location":"Austin","country":"USA","description":"Pro event","locationCoords":[30.26,-97.74]}`, http.StatusCreated},
		{"missing coords", `{"name":"Open Slam","location":"Austin","country":"USA","description":"Pro event"}`, http.StatusBadRequest},
		{"one coord", `{"name":"Open Slam","location":"Austin","country":"USA","description":"Pro event","locationCoords":[30.26]}`, http.StatusBadRequest},
		{"missing name", `{"location":"Austin","country":"USA","description":"Pro event","locationCoords":[30.26,-97.74]}`, http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/tournaments/add", strings.NewReader(tc.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tc.wantStatus {
				t.Fatalf("got status %d, want %d: %s", w.Code, tc.wantStatus, w.Body.String())
			}
		})
	}
	if len(repo.tournaments) != 1 {
		t.Fatalf("expected 1 stored tournament, got %d", len(repo.tournaments))
	}
	for _, stored := range repo.tournaments {
		if stored.Status != tournament.StatusPending {
			t.Errorf("expected new submission pending, got status %q", stored.Status)
		}
	}
}

func TestUpdateTournamentStatusHandlerRequiresAdmin(t *testing.T) {
	repo := newFakeTournamentRepo()
	repo.Create(tournament.Tournament{ID: "abc", Name: "Open Slam", Status: tournament.StatusPending})
	router := mux.NewRouter()
	svr := newTestServer(router)
	router.HandleFunc("/tournaments/status/{id}", UpdateTournamentStatusHandler(svr, repo)).Methods("PATCH")

	// anonymous caller
	req := httptest.NewRequest("PATCH", "/tournaments/status/abc", strings.NewReader(`{"status":"approved"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("got status %d, want 401 for anonymous caller", w.Code)
	}

	// signed-in user without the admin claim
	req = httptest.NewRequest("PATCH", "/tournaments/status/abc", strings.NewReader(`{"status":"approved"}`))
	req.AddCookie(signedSessionCookie(t, svr, false))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("got status %d, want 401 for non-admin", w.Code)
	}
	if repo.tournaments["abc"].Status != tournament.StatusPending {
		t.Fatal("status must not change for unauthorized callers")
	}

	// admin
	req = httptest.NewRequest("PATCH", "/tournaments/status/abc", strings.NewReader(`{"status":"approved"}`))
	req.AddCookie(signedSessionCookie(t, svr, true))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", w.Code, w.Body.String())
	}
	if repo.tournaments["abc"].Status != tournament.StatusApproved {
		t.Errorf("expected status approved, got %q", repo.tournaments["abc"].Status)
	}

	// admin with a bogus status value
	req = httptest.NewRequest("PATCH", "/tournaments/status/abc", strings.NewReader(`{"status":"archived"}`))
	req.AddCookie(signedSessionCookie(t, svr, true))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400 for invalid status", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid status value") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestListTournamentsByStatusHandler(t *testing.T) {
	repo := newFakeTournamentRepo()
	repo.Create(tournament.Tournament{ID: "a", Name: "Pending Cup", Status: tournament.StatusPending})
	repo.Create(tournament.Tournament{ID: "b", Name: "Approved Cup", Status: tournament.StatusApproved})
	router := mux.NewRouter()
	svr := newTestServer(router)
	router.HandleFunc("/tournaments/approved", ListTournamentsByStatusHandler(svr, repo, tournament.StatusApproved)).Methods("GET")

	req := httptest.NewRequest("GET", "/tournaments/approved", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}
	var tournaments []tournament.Tournament
	if err := json.NewDecoder(w.Body).Decode(&tournaments); err != nil {
		t.Fatalf("unable to decode response: %v", err)
	}
	if len(tournaments) != 1 || tournaments[0].Name != "Approved Cup" {
		t.Errorf("unexpected result: %+v", tournaments)
	}
}
