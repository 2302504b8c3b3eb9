package services

import (
	"fmt"

	"sahayog/app/models"
	"sahayog/app/repositories"
)

// BlogService handles business logic for blog posts
type BlogService struct {
	blogRepo repositories.BlogRepository
}

// NewBlogService creates a new BlogService
func NewBlogService(blogRepo repositories.BlogRepository) *BlogService {
	return &BlogService{blogRepo: blogRepo}
}

// CreatePost validates and creates a new blog post.
func (s *BlogService) CreatePost(title, content, author, imageURL string) (*models.BlogPost, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}
	if author == "" {
		return nil, fmt.Errorf("%w: author is required", ErrValidation)
	}

	post := &models.BlogPost{
		Title:    title,
		Content:  content,
		Author:   author,
		ImageURL: imageURL,
	}
	if err := s.blogRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts returns all posts, newest first.
func (s *BlogService) ListPosts() ([]models.BlogPost, error) {
	return s.blogRepo.List()
}

// UpdatePost merges the provided fields into an existing post. Fields
// that are provided must not be blanked out.
func (s *BlogService) UpdatePost(id int64, update models.BlogPostUpdate) error {
	if update.Title != nil && *update.Title == "" {
		return fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}
	if update.Content != nil && *update.Content == "" {
		return fmt.Errorf("%w: content cannot be empty", ErrValidation)
	}
	return s.blogRepo.Update(id, update)
}

// DeletePost removes a post by id.
func (s *BlogService) DeletePost(id int64) error {
	return s.blogRepo.Delete(id)
}
