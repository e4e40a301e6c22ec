package handler

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/courtside/pickleball-platform/internal/inquiry"
	"github.com/gorilla/mux"
)

type fakeInquiryRepo struct {
	inquiries map[string]inquiry.Inquiry
}

func newFakeInquiryRepo() *fakeInquiryRepo {
	return &fakeInquiryRepo{inquiries: make(map[string]inquiry.Inquiry)}
}

func (f *fakeInquiryRepo) Create(i inquiry.Inquiry) error {
	f.inquiries[i.ID] = i
	return nil
}

func (f *fakeInquiryRepo) All() ([]inquiry.Inquiry, error) {
	all := make([]inquiry.Inquiry, 0, len(f.inquiries))
	for _, i := range f.inquiries {
		all = append(all, i)
	}
	return all, nil
}

func (f *fakeInquiryRepo) GetByID(id string) (inquiry.Inquiry, error) {
	i, ok := f.inquiries[id]
	if !ok {
		return inquiry.Inquiry{}, sql.ErrNoRows
	}
	return i, nil
}

func (f *fakeInquiryRepo) Update(i inquiry.Inquiry) error {
	existing, ok := f.inquiries[i.ID]
	if !ok {
		return sql.ErrNoRows
	}
	i.CreatedAt = existing.CreatedAt
	f.inquiries[i.ID] = i
	return nil
}

func (f *fakeInquiryRepo) Delete(id string) error {
	if _, ok := f.inquiries[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.inquiries, id)
	return nil
}

func TestCreateInquiryHandlerStripsMarkup(t *testing.T) {
	repo := newFakeInquiryRepo()
	router := mux.NewRouter()
	svr := newTestServer(router)
	router.HandleFunc("/inquiry", CreateInquiryHandler(svr, repo)).Methods("POST")

	body := `{"name":"<script>alert(1)</script>Ana","company":"Paddle <b>Co</b>","email":"ana@paddle.co","message":"Interested in a <img src=x> banner"}`
	req := httptest.NewRequest("POST", "/inquiry", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("got status %d, want 201: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"success":true`) {
		t.Errorf("expected success envelope, got: %s", w.Body.String())
	}
	if len(repo.inquiries) != 1 {
		t.Fatalf("expected 1 stored inquiry, got %d", len(repo.inquiries))
	}
	for _, i := range repo.inquiries {
		if strings.Contains(i.Name, "<script>") || i.Name != "Ana" {
			t.Errorf("expected markup stripped from name, got %q", i.Name)
		}
		if i.Company != "Paddle Co" {
			t.Errorf("expected markup stripped from company, got %q", i.Company)
		}
		if strings.Contains(i.Message, "<img") {
			t.Errorf("expected markup stripped from message, got %q", i.Message)
		}
	}
}

func TestGetInquiryHandlerNotFound(t *testing.T) {
	repo := newFakeInquiryRepo()
	router := mux.NewRouter()
	svr := newTestServer(router)
	router.HandleFunc("/inquiry/{id}", GetInquiryHandler(svr, repo)).Methods("GET")

	req := httptest.NewRequest("GET", "/inquiry/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"success":false`) {
		t.Errorf("expected failure envelope, got: %s", w.Body.String())
	}
}

func TestDeleteInquiryHandler(t *testing.T) {
	repo := newFakeInquiryRepo()
	repo.Create(inquiry.Inquiry{ID: "abc", Name: "Ana", Company: "Paddle Co"})
	router := mux.NewRouter()
	svr := newTestServer(router)
	router.HandleFunc("/inquiry/{id}", DeleteInquiryHandler(svr, repo)).Methods("DELETE")

	req := httptest.NewRequest("DELETE", "/inquiry/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", w.Code, w.Body.String())
	}
	if len(repo.inquiries) != 0 {
		t.Fatal("expected inquiry removed")
	}

	req = httptest.NewRequest("DELETE", "/inquiry/abc", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404 on repeat delete", w.Code)
	}
}
