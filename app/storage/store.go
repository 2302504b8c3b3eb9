// Package storage persists whole named documents. Each document is one
// JSON value read and written wholesale; callers never observe a missing
// document as an error.
package storage

import "errors"

// Document names used by the application.
const (
	DocDonations = "donations"
	DocBlogPosts = "blog-posts"
	DocAdmin     = "admin"
)

// ErrWrite signals that persisting a document failed. Callers must treat
// the in-flight mutation as aborted.
var ErrWrite = errors.New("storage write failed")

// Store loads and saves whole documents by name.
type Store interface {
	// Load unmarshals the named document into v. A missing or unparsable
	// document leaves v untouched and returns nil, so callers always get
	// a structurally valid default.
	Load(name string, v any) error

	// Save overwrites the named document with the JSON encoding of v.
	// Failures wrap ErrWrite.
	Save(name string, v any) error
}
