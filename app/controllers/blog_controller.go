package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"sahayog/app/models"
	"sahayog/app/services"

	"github.com/gorilla/mux"
)

// BlogController handles HTTP requests for blog posts
type BlogController struct {
	blogService *services.BlogService
}

// NewBlogController creates a new BlogController
func NewBlogController(blogService *services.BlogService) *BlogController {
	return &BlogController{blogService: blogService}
}

type createPostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	ImageURL string `json:"imageUrl"`
}

// Index lists all posts, newest first
func (bc *BlogController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := bc.blogService.ListPosts()
	if err != nil {
		sendServiceError(w, err, "Blog post not found")
		return
	}
	sendJSON(w, posts)
}

// Create handles creating a new post
func (bc *BlogController) Create(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	post, err := bc.blogService.CreatePost(req.Title, req.Content, req.Author, req.ImageURL)
	if err != nil {
		sendServiceError(w, err, "Blog post not found")
		return
	}

	sendJSON(w, map[string]interface{}{
		"success": true,
		"message": "Blog post created successfully",
		"post":    post,
	})
}

// Update handles a partial update of an existing post
func (bc *BlogController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		sendError(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	var update models.BlogPostUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := bc.blogService.UpdatePost(id, update); err != nil {
		sendServiceError(w, err, "Blog post not found")
		return
	}
	sendJSON(w, map[string]interface{}{
		"success": true,
		"message": "Blog post updated successfully",
	})
}

// Delete handles deleting a post
func (bc *BlogController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		sendError(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	if err := bc.blogService.DeletePost(id); err != nil {
		sendServiceError(w, err, "Blog post not found")
		return
	}
	sendJSON(w, map[string]interface{}{
		"success": true,
		"message": "Blog post deleted successfully",
	})
}

func postID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
