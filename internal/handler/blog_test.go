package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/courtside/pickleball-platform/internal/blog"
	"github.com/gorilla/mux"
)

type fakeBlogRepo struct {
	posts map[string]blog.BlogPost
	order []string
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{posts: make(map[string]blog.BlogPost)}
}

func (f *fakeBlogRepo) Create(bp blog.BlogPost) error {
	f.posts[bp.ID] = bp
	f.order = append(f.order, bp.ID)
	return nil
}

func (f *fakeBlogRepo) All() ([]blog.BlogPost, error) {
	all := make([]blog.BlogPost, 0, len(f.order))
	for i := len(f.order) - 1; i >= 0; i-- {
		all = append(all, f.posts[f.order[i]])
	}
	return all, nil
}

func (f *fakeBlogRepo) GetByID(id string) (blog.BlogPost, error) {
	bp, ok := f.posts[id]
	if !ok {
		return blog.BlogPost{}, sql.ErrNoRows
	}
	return bp, nil
}

func (f *fakeBlogRepo) Update(bp blog.BlogPost) error {
	existing, ok := f.posts[bp.ID]
	if !ok {
		return sql.ErrNoRows
	}
	bp.CreatedAt = existing.CreatedAt
	f.posts[bp.ID] = bp
	return nil
}

func (f *fakeBlogRepo) Delete(id string) (blog.BlogPost, error) {
	bp, ok := f.posts[id]
	if !ok {
		return blog.BlogPost{}, sql.ErrNoRows
	}
	delete(f.posts, id)
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return bp, nil
}

type disabledAnnouncer struct{}

func (disabledAnnouncer) Enabled() bool { return false }
func (disabledAnnouncer) AnnounceBlogPost(ctx context.Context, bp blog.BlogPost) error {
	return nil
}

type fakeMetaStore struct {
	values map[string]string
}

func (f *fakeMetaStore) SetValue(key, val string) error {
	if f.values == nil {
		f.values = make(map[string]string)
	}
	f.values[key] = val
	return nil
}

func TestCreateBlogPostHandler(t *testing.T) {
	repo := newFakeBlogRepo()
	router := mux.NewRouter()
	svr := newTestServer(router)
	router.HandleFunc("/blogs/add", CreateBlogPostHandler(svr, repo, disabledAnnouncer{}, &fakeMetaStore{})).Methods("POST")

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"valid", `{"name":"Ana","heading":"Dinking 101","description":"Learn to **dink**"}`, http.StatusCreated},
		{"missing heading", `{"name":"Ana","description":"text"}`, http.StatusBadRequest},
		{"missing name", `{"heading":"A","description":"text"}`, http.StatusBadRequest},
		{"bad json", `{`, http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/blogs/add", strings.NewReader(tc.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tc.wantStatus {
				t.Fatalf("got status %d, want %d: %s", w.Code, tc.wantStatus, w.Body.String())
			}
		})
	}
	if len(repo.posts) != 1 {
		t.Fatalf("expected 1 stored post, got %d", len(repo.posts))
	}
	for _, bp := range repo.posts {
		if bp.Slug != "dinking-101" {
			t.Errorf("expected slug dinking-101, got %s", bp.Slug)
		}
	}
}

func TestGetBlogPostHandlerNotFound(t *testing.T) {
	repo := newFakeBlogRepo()
	router := mux.NewRouter()
	svr := newTestServer(router)
	router.HandleFunc("/blogs/{id}", GetBlogPostHandler(svr, repo)).Methods("GET")

	req := httptest.NewRequest("GET", "/blogs/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", w.Code)
	}
}

func TestDeleteBlogPostHandlerReturnsDeletedRecord(t *testing.T) {
	repo := newFakeBlogRepo()
	repo.Create(blog.BlogPost{ID: "abc", AuthorName: "Ana", Heading: "Dinking 101", Description: "text"})
	router := mux.NewRouter()
	svr := newTestServer(router)
	router.HandleFunc("/blogs/delete/{id}", DeleteBlogPostHandler(svr, repo)).Methods("DELETE")

	req := httptest.NewRequest("DELETE", "/blogs/delete/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", w.Code, w.Body.String())
	}
	var res struct {
		Message     string        `json:"message"`
		DeletedBlog blog.BlogPost `json:"deletedBlog"`
	}
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("unable to decode response: %v", err)
	}
	if res.DeletedBlog.ID != "abc" || res.DeletedBlog.AuthorName != "Ana" {
		t.Errorf("expected deleted record in response, got %+v", res.DeletedBlog)
	}
	if len(repo.posts) != 0 {
		t.Errorf("expected post removed from repo")
	}

	// second delete on the same id is a 404
	req = httptest.NewRequest("DELETE", "/blogs/delete/abc", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404 on repeat delete", w.Code)
	}
}

func TestListBlogPostsHandlerRendersMarkdown(t *testing.T) {
	repo := newFakeBlogRepo()
	repo.Create(blog.BlogPost{ID: "abc", AuthorName: "Ana", Heading: "Dinking 101", Description: "Learn to **dink**"})
	router := mux.NewRouter()
	svr := newTestServer(router)
	router.HandleFunc("/blogs", ListBlogPostsHandler(svr, repo)).Methods("GET")

	req := httptest.NewRequest("GET", "/blogs", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}
	var posts []blog.BlogPost
	if err := json.NewDecoder(w.Body).Decode(&posts); err != nil {
		t.Fatalf("unable to decode response: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
	if !strings.Contains(posts[0].DescriptionHTML, "<strong>dink</strong>") {
		t.Errorf("expected rendered markdown, got %q", posts[0].DescriptionHTML)
	}
}

func TestUpdateBlogPostHandlerNotFound(t *testing.T) {
	repo := newFakeBlogRepo()
	router := mux.NewRouter()
	svr := newTestServer(router)
	router.HandleFunc("/blogs/update/{id}", UpdateBlogPostHandler(svr, repo)).Methods("PUT")

	req := httptest.NewRequest("PUT", "/blogs/update/nope", strings.NewReader(`{"name":"Ana","heading":"A","description":"text"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", w.Code)
	}
}
