package repositories

import (
	"sync"

	"sahayog/app/models"
	"sahayog/app/storage"
)

// StoreBlogRepository implements BlogRepository over a document Store.
// Posts are kept newest first inside the document, so listing is a plain
// snapshot and creation prepends.
type StoreBlogRepository struct {
	store storage.Store
	mutex sync.Mutex
}

// NewStoreBlogRepository creates a new StoreBlogRepository
func NewStoreBlogRepository(store storage.Store) *StoreBlogRepository {
	return &StoreBlogRepository{store: store}
}

func (r *StoreBlogRepository) load() (*models.BlogDocument, error) {
	var doc models.BlogDocument
	if err := r.store.Load(storage.DocBlogPosts, &doc); err != nil {
		return nil, err
	}
	if doc.Posts == nil {
		doc.Posts = []models.BlogPost{}
	}
	return &doc, nil
}

// Create assigns a fresh id and creation date, then prepends the post.
func (r *StoreBlogRepository) Create(post *models.BlogPost) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}

	ids := make([]int64, 0, len(doc.Posts))
	for _, p := range doc.Posts {
		ids = append(ids, p.ID)
	}
	post.ID = nextID(ids)
	post.BeforeCreate()

	doc.Posts = append([]models.BlogPost{*post}, doc.Posts...)
	return r.store.Save(storage.DocBlogPosts, doc)
}

// List returns all posts, newest first.
func (r *StoreBlogRepository) List() ([]models.BlogPost, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	out := make([]models.BlogPost, len(doc.Posts))
	copy(out, doc.Posts)
	return out, nil
}

// Update merges the provided fields into an existing post. ID and Date
// are immutable.
func (r *StoreBlogRepository) Update(id int64, update models.BlogPostUpdate) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}

	for i := range doc.Posts {
		if doc.Posts[i].ID == id {
			update.Apply(&doc.Posts[i])
			return r.store.Save(storage.DocBlogPosts, doc)
		}
	}
	return ErrNotFound
}

// Delete removes a post by id.
func (r *StoreBlogRepository) Delete(id int64) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}

	for i := range doc.Posts {
		if doc.Posts[i].ID == id {
			doc.Posts = append(doc.Posts[:i], doc.Posts[i+1:]...)
			return r.store.Save(storage.DocBlogPosts, doc)
		}
	}
	return ErrNotFound
}
