// Package mock provides in-memory repository implementations for tests.
package mock

import (
	"sync"

	"sahayog/app/models"
	"sahayog/app/repositories"

	"github.com/shopspring/decimal"
)

type LedgerRepository struct {
	pending  []models.Donation
	approved []models.Donation
	nextID   int64
	mutex    sync.Mutex

	// Err, when set, is returned by every operation.
	Err error
}

func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{nextID: 1}
}

func (m *LedgerRepository) AddPending(donation *models.Donation) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.Err != nil {
		return m.Err
	}

	donation.ID = m.nextID
	m.nextID++
	donation.BeforeCreate()
	m.pending = append(m.pending, *donation)
	return nil
}

func (m *LedgerRepository) Pending() ([]models.Donation, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	out := make([]models.Donation, len(m.pending))
	copy(out, m.pending)
	return out, nil
}

func (m *LedgerRepository) Approve(id int64) (*models.Donation, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	for i, d := range m.pending {
		if d.ID == id {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			m.approved = append(m.approved, d)
			return &d, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *LedgerRepository) Reject(id int64) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.Err != nil {
		return m.Err
	}

	for i, d := range m.pending {
		if d.ID == id {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (m *LedgerRepository) RaisedAmount() (decimal.Decimal, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.Err != nil {
		return decimal.Zero, m.Err
	}

	total := decimal.Zero
	for _, d := range m.approved {
		total = total.Add(d.Amount)
	}
	return total, nil
}

type BlogRepository struct {
	posts  []models.BlogPost
	nextID int64
	mutex  sync.Mutex
}

func NewBlogRepository() *BlogRepository {
	return &BlogRepository{nextID: 1}
}

func (m *BlogRepository) Create(post *models.BlogPost) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.ID = m.nextID
	m.nextID++
	post.BeforeCreate()
	m.posts = append([]models.BlogPost{*post}, m.posts...)
	return nil
}

func (m *BlogRepository) List() ([]models.BlogPost, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	out := make([]models.BlogPost, len(m.posts))
	copy(out, m.posts)
	return out, nil
}

func (m *BlogRepository) Update(id int64, update models.BlogPostUpdate) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for i := range m.posts {
		if m.posts[i].ID == id {
			update.Apply(&m.posts[i])
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (m *BlogRepository) Delete(id int64) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for i := range m.posts {
		if m.posts[i].ID == id {
			m.posts = append(m.posts[:i], m.posts[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

type AdminRepository struct {
	cred models.AdminCredential
}

func NewAdminRepository(cred models.AdminCredential) *AdminRepository {
	return &AdminRepository{cred: cred}
}

func (m *AdminRepository) Credential() (models.AdminCredential, error) {
	return m.cred, nil
}

func (m *AdminRepository) SetCredential(cred models.AdminCredential) error {
	m.cred = cred
	return nil
}
