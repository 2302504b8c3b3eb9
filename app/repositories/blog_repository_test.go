package repositories

import (
	"testing"

	"sahayog/app/models"
	"sahayog/app/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPost(t *testing.T, repo *StoreBlogRepository, title string) models.BlogPost {
	p := &models.BlogPost{Title: title, Content: "Content of " + title, Author: "Admin"}
	require.NoError(t, repo.Create(p))
	return *p
}

func TestBlogRepository(t *testing.T) {
	t.Run("create assigns id and date", func(t *testing.T) {
		repo := NewStoreBlogRepository(storage.NewMemStore())

		p := createTestPost(t, repo, "Hello")
		assert.Greater(t, p.ID, int64(0))
		assert.NotEmpty(t, p.Date)
	})

	t.Run("list returns newest first", func(t *testing.T) {
		repo := NewStoreBlogRepository(storage.NewMemStore())

		a := createTestPost(t, repo, "A")
		b := createTestPost(t, repo, "B")

		posts, err := repo.List()
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, b.ID, posts[0].ID)
		assert.Equal(t, a.ID, posts[1].ID)
	})

	t.Run("update merges only provided fields", func(t *testing.T) {
		repo := NewStoreBlogRepository(storage.NewMemStore())

		p := createTestPost(t, repo, "Original")

		title := "X"
		require.NoError(t, repo.Update(p.ID, models.BlogPostUpdate{Title: &title}))

		posts, err := repo.List()
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "X", posts[0].Title)
		assert.Equal(t, p.Content, posts[0].Content)
		assert.Equal(t, p.Author, posts[0].Author)
		assert.Equal(t, p.Date, posts[0].Date)
		assert.Equal(t, p.ID, posts[0].ID)
	})

	t.Run("update unknown id fails", func(t *testing.T) {
		repo := NewStoreBlogRepository(storage.NewMemStore())

		title := "X"
		assert.ErrorIs(t, repo.Update(999, models.BlogPostUpdate{Title: &title}), ErrNotFound)
	})

	t.Run("delete removes the post", func(t *testing.T) {
		repo := NewStoreBlogRepository(storage.NewMemStore())

		p := createTestPost(t, repo, "Doomed")
		require.NoError(t, repo.Delete(p.ID))

		posts, err := repo.List()
		require.NoError(t, err)
		assert.Empty(t, posts)

		assert.ErrorIs(t, repo.Delete(p.ID), ErrNotFound)
	})
}

func TestAdminRepository(t *testing.T) {
	t.Run("falls back to default credential", func(t *testing.T) {
		repo := NewStoreAdminRepository(storage.NewMemStore())

		cred, err := repo.Credential()
		require.NoError(t, err)
		assert.Equal(t, "admin", cred.Username)
		assert.NotEmpty(t, cred.Password)
	})

	t.Run("set and read back", func(t *testing.T) {
		repo := NewStoreAdminRepository(storage.NewMemStore())

		in := models.AdminCredential{Username: "root", Password: "hunter2"}
		require.NoError(t, repo.SetCredential(in))

		cred, err := repo.Credential()
		require.NoError(t, err)
		assert.Equal(t, in, cred)
	})

	t.Run("rejects incomplete credential", func(t *testing.T) {
		repo := NewStoreAdminRepository(storage.NewMemStore())
		assert.Error(t, repo.SetCredential(models.AdminCredential{Username: "root"}))
	})
}
