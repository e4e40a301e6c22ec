package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/courtside/pickleball-platform/internal/blog"
	"github.com/courtside/pickleball-platform/internal/meta"
	"github.com/courtside/pickleball-platform/internal/render"
	"github.com/courtside/pickleball-platform/internal/server"
	"github.com/dustin/go-humanize"
	"github.com/gorilla/mux"
	"github.com/gosimple/slug"
	"github.com/segmentio/ksuid"
)

type blogRepository interface {
	Create(bp blog.BlogPost) error
	All() ([]blog.BlogPost, error)
	GetByID(id string) (blog.BlogPost, error)
	Update(bp blog.BlogPost) error
	Delete(id string) (blog.BlogPost, error)
}

type blogAnnouncer interface {
	Enabled() bool
	AnnounceBlogPost(ctx context.Context, bp blog.BlogPost) error
}

type metaSaver interface {
	SetValue(key, val string) error
}

func decorateBlogPost(bp *blog.BlogPost) {
	bp.DescriptionHTML = render.MarkdownToHTML(bp.Description)
	bp.CreatedAtHumanized = humanize.Time(bp.CreatedAt)
}

func CreateBlogPostHandler(svr server.Server, blogRepo blogRepository, announcer blogAnnouncer, metaRepo metaSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rq blog.CreateRq
		if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
			return
		}
		if rq.AuthorName == "" || rq.Heading == "" || rq.Description == "" {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "name, heading and description are required"})
			return
		}
		bp := blog.BlogPost{
			ID:          ksuid.New().String(),
			AuthorName:  rq.AuthorName,
			Heading:     rq.Heading,
			Slug:        slug.Make(rq.Heading),
			Description: rq.Description,
			ImageURL:    rq.ImageURL,
			CreatedAt:   time.Now(),
		}
		if err := blogRepo.Create(bp); err != nil {
			svr.Log(err, "unable to create blog post")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Error creating blog"})
			return
		}
		if err := svr.CacheDelete(server.CacheKeyBlogPosts); err != nil {
			svr.Log(err, "unable to cleanup blog post cache after create")
		}
		if announcer.Enabled() {
			go func(bp blog.BlogPost) {
				if err := announcer.AnnounceBlogPost(context.Background(), bp); err != nil {
					svr.Log(err, "unable to announce blog post on telegram")
					return
				}
				if err := metaRepo.SetValue(meta.KeyLastAnnouncedBlogPost, bp.ID); err != nil {
					svr.Log(err, "unable to save last announced blog post marker")
				}
			}(bp)
		}
		decorateBlogPost(&bp)
		svr.JSON(w, http.StatusCreated, map[string]interface{}{"message": "Blog created successfully", "newBlog": bp})
	}
}

func ListBlogPostsHandler(svr server.Server, blogRepo blogRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cached, ok := svr.CacheGet(server.CacheKeyBlogPosts); ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		}
		posts, err := blogRepo.All()
		if err != nil {
			svr.Log(err, "unable to list blog posts")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Error fetching blogs"})
			return
		}
		for i := range posts {
			decorateBlogPost(&posts[i])
		}
		out, err := json.Marshal(posts)
		if err != nil {
			svr.Log(err, "unable to marshal blog posts")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Error fetching blogs"})
			return
		}
		if err := svr.CacheSet(server.CacheKeyBlogPosts, out); err != nil {
			svr.Log(err, "unable to cache blog posts")
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(out)
	}
}

func GetBlogPostHandler(svr server.Server, blogRepo blogRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		bp, err := blogRepo.GetByID(vars["id"])
		if err == sql.ErrNoRows {
			svr.JSON(w, http.StatusNotFound, map[string]string{"message": "Blog not found"})
			return
		}
		if err != nil {
			svr.Log(err, "unable to get blog post")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Error fetching blog"})
			return
		}
		decorateBlogPost(&bp)
		svr.JSON(w, http.StatusOK, bp)
	}
}

func UpdateBlogPostHandler(svr server.Server, blogRepo blogRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		var rq blog.UpdateRq
		if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
			return
		}
		if rq.AuthorName == "" || rq.Heading == "" || rq.Description == "" {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"message": "name, heading and description are required"})
			return
		}
		bp := blog.BlogPost{
			ID:          vars["id"],
			AuthorName:  rq.AuthorName,
			Heading:     rq.Heading,
			Slug:        slug.Make(rq.Heading),
			Description: rq.Description,
			ImageURL:    rq.ImageURL,
		}
		if err := blogRepo.Update(bp); err == sql.ErrNoRows {
			svr.JSON(w, http.StatusNotFound, map[string]string{"message": "Blog not found"})
			return
		} else if err != nil {
			svr.Log(err, "unable to update blog post")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Error updating blog"})
			return
		}
		if err := svr.CacheDelete(server.CacheKeyBlogPosts); err != nil {
			svr.Log(err, "unable to cleanup blog post cache after update")
		}
		updated, err := blogRepo.GetByID(vars["id"])
		if err != nil {
			svr.Log(err, "unable to reload blog post after update")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Error updating blog"})
			return
		}
		decorateBlogPost(&updated)
		svr.JSON(w, http.StatusOK, map[string]interface{}{"message": "Blog updated successfully", "updatedBlog": updated})
	}
}

func DeleteBlogPostHandler(svr server.Server, blogRepo blogRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		deleted, err := blogRepo.Delete(vars["id"])
		if err == sql.ErrNoRows {
			svr.JSON(w, http.StatusNotFound, map[string]string{"message": "Blog not found"})
			return
		}
		if err != nil {
			svr.Log(err, "unable to delete blog post")
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"message": "Error deleting blog"})
			return
		}
		if err := svr.CacheDelete(server.CacheKeyBlogPosts); err != nil {
			svr.Log(err, "unable to cleanup blog post cache after delete")
		}
		decorateBlogPost(&deleted)
		svr.JSON(w, http.StatusOK, map[string]interface{}{"message": "Blog deleted successfully", "deletedBlog": deleted})
	}
}
