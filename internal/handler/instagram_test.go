package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/courtside/pickleball-platform/internal/instagram"
	"github.com/gorilla/mux"
)

type fakeInstagramRepo struct {
	links map[string]instagram.Link
	urls  map[string]bool
}

func newFakeInstagramRepo() *fakeInstagramRepo {
	return &fakeInstagramRepo{links: make(map[string]instagram.Link), urls: make(map[string]bool)}
}

func (f *fakeInstagramRepo) Create(l instagram.Link) error {
	if f.urls[l.URL] {
		return uniqueViolation()
	}
	f.links[l.ID] = l
	f.urls[l.URL] = true
	return nil
}

func (f *fakeInstagramRepo) All() ([]instagram.Link, error) {
	all := make([]instagram.Link, 0, len(f.links))
	for _, l := range f.links {
		all = append(all, l)
	}
	return all, nil
}

func (f *fakeInstagramRepo) Update(l instagram.Link) error {
	existing, ok := f.links[l.ID]
	if !ok {
		return sql.ErrNoRows
	}
	delete(f.urls, existing.URL)
	f.links[l.ID] = l
	f.urls[l.URL] = true
	return nil
}

func (f *fakeInstagramRepo) UpdateTitle(id, title string) error {
	l, ok := f.links[id]
	if !ok {
		return sql.ErrNoRows
	}
	l.Title = title
	f.links[id] = l
	return nil
}

func (f *fakeInstagramRepo) Delete(id string) (instagram.Link, error) {
	l, ok := f.links[id]
	if !ok {
		return instagram.Link{}, sql.ErrNoRows
	}
	delete(f.links, id)
	delete(f.urls, l.URL)
	return l, nil
}

func TestCreateInstagramLinkHandler(t *testing.T) {
	repo := newFakeInstagramRepo()
	router := mux.NewRouter()
	svr := newTestServer(router)
	router.HandleFunc("/instagram", CreateInstagramLinkHandler(svr, repo)).Methods("POST")

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"valid post url", `{"url":"https://www.instagram.com/p/Cxyz123/"}`, http.StatusCreated},
		{"valid reel url", `{"url":"https://instagram.com/reel/AbC_d-1"}`, http.StatusCreated},
		{"duplicate url", `{"url":"https://www.instagram.com/p/Cxyz123/"}`, http.StatusBadRequest},
		{"wrong host", `{"url":"https://notinstagram.com/p/Cxyz123/"}`, http.StatusBadRequest},
		{"profile path", `{"url":"https://www.instagram.com/someprofile/"}`, http.StatusBadRequest},
		{"empty", `{"url":""}`, http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/instagram", strings.NewReader(tc.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tc.wantStatus {
				t.Fatalf("got status %d, want %d: %s", w.Code, tc.wantStatus, w.Body.String())
			}
		})
	}
	if len(repo.links) != 2 {
		t.Fatalf("expected 2 stored links, got %d", len(repo.links))
	}
}

func TestDeleteInstagramLinkHandlerReturnsDeletedRecord(t *testing.T) {
	repo := newFakeInstagramRepo()
	repo.Create(instagram.Link{ID: "abc", URL: "https://www.instagram.com/p/Cxyz123/"})
	router := mux.NewRouter()
	svr := newTestServer(router)
	router.HandleFunc("/instagram/{id}", DeleteInstagramLinkHandler(svr, repo)).Methods("DELETE")

	req := httptest.NewRequest("DELETE", "/instagram/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", w.Code, w.Body.String())
	}
	var res struct {
		Message string         `json:"message"`
		Data    instagram.Link `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("unable to decode response: %v", err)
	}
	if res.Data.URL != "https://www.instagram.com/p/Cxyz123/" {
		t.Errorf("expected deleted record in response, got %+v", res.Data)
	}

	req = httptest.NewRequest("DELETE", "/instagram/abc", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404 on repeat delete", w.Code)
	}
}

func TestUpdateInstagramLinkHandlerValidatesURL(t *testing.T) {
	repo := newFakeInstagramRepo()
	repo.Create(instagram.Link{ID: "abc", URL: "https://www.instagram.com/p/Cxyz123/"})
	router := mux.NewRouter()
	svr := newTestServer(router)
	router.HandleFunc("/instagram/{id}", UpdateInstagramLinkHandler(svr, repo)).Methods("PUT")

	req := httptest.NewRequest("PUT", "/instagram/abc", strings.NewReader(`{"url":"https://example.com/p/x"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}

	req = httptest.NewRequest("PUT", "/instagram/abc", strings.NewReader(`{"url":"https://www.instagram.com/tv/Other99/"}`))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", w.Code, w.Body.String())
	}
	if repo.links["abc"].URL != "https://www.instagram.com/tv/Other99/" {
		t.Errorf("expected url updated, got %s", repo.links["abc"].URL)
	}
}
