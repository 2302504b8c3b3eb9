package models

import (
	"errors"
	"time"
)

// Validate checks if the post meets all validation requirements
func (p *BlogPost) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.Date == "" {
		return errors.New("date cannot be empty")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *BlogPost) BeforeCreate() {
	if p.Date == "" {
		p.Date = time.Now().UTC().Format(time.RFC3339)
	}
}

// Apply merges the provided fields into the post. ID and Date are never
// touched.
func (u BlogPostUpdate) Apply(p *BlogPost) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Content != nil {
		p.Content = *u.Content
	}
	if u.Author != nil {
		p.Author = *u.Author
	}
	if u.ImageURL != nil {
		p.ImageURL = *u.ImageURL
	}
}
