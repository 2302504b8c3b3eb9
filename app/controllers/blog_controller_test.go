package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"sahayog/app/models"
	"sahayog/app/repositories/mock"
	"sahayog/app/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBlogRouter(t *testing.T) (*mux.Router, *services.BlogService) {
	service := services.NewBlogService(mock.NewBlogRepository())
	controller := NewBlogController(service)

	router := mux.NewRouter()
	router.HandleFunc("/api/blog", controller.Index).Methods("GET")
	router.HandleFunc("/api/blog", controller.Create).Methods("POST")
	router.HandleFunc("/api/blog/{id:[0-9]+}", controller.Update).Methods("PUT")
	router.HandleFunc("/api/blog/{id:[0-9]+}", controller.Delete).Methods("DELETE")

	return router, service
}

func TestBlogControllerCreate(t *testing.T) {
	router, _ := setupBlogRouter(t)

	t.Run("valid post", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/blog",
			`{"title":"Hello","content":"World","author":"Admin"}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success bool            `json:"success"`
			Post    models.BlogPost `json:"post"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "Hello", resp.Post.Title)
		assert.NotZero(t, resp.Post.ID)
		assert.NotEmpty(t, resp.Post.Date)
	})

	t.Run("empty title", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/blog",
			`{"title":"","content":"World","author":"Admin"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBlogControllerIndex(t *testing.T) {
	router, service := setupBlogRouter(t)

	a, err := service.CreatePost("A", "Content A", "Admin", "")
	require.NoError(t, err)
	b, err := service.CreatePost("B", "Content B", "Admin", "")
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodGet, "/api/blog", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var posts []models.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 2)
	assert.Equal(t, b.ID, posts[0].ID)
	assert.Equal(t, a.ID, posts[1].ID)
}

func TestBlogControllerUpdate(t *testing.T) {
	router, service := setupBlogRouter(t)

	post, err := service.CreatePost("Original", "Content", "Admin", "")
	require.NoError(t, err)

	t.Run("partial update", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut,
			"/api/blog/"+strconv.FormatInt(post.ID, 10), `{"title":"X"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		posts, err := service.ListPosts()
		require.NoError(t, err)
		assert.Equal(t, "X", posts[0].Title)
		assert.Equal(t, "Content", posts[0].Content)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, "/api/blog/99999", `{"title":"X"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBlogControllerDelete(t *testing.T) {
	router, service := setupBlogRouter(t)

	post, err := service.CreatePost("Doomed", "Content", "Admin", "")
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodDelete,
		"/api/blog/"+strconv.FormatInt(post.ID, 10), "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete,
		"/api/blog/"+strconv.FormatInt(post.ID, 10), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
