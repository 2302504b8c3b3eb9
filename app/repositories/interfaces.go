package repositories

import (
	"errors"

	"sahayog/app/models"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("record not found")
)

// LedgerRepository defines data access for the donation ledger
type LedgerRepository interface {
	AddPending(donation *models.Donation) error
	Pending() ([]models.Donation, error)
	Approve(id int64) (*models.Donation, error)
	Reject(id int64) error
	RaisedAmount() (decimal.Decimal, error)
}

// BlogRepository defines data access for blog posts
type BlogRepository interface {
	Create(post *models.BlogPost) error
	List() ([]models.BlogPost, error)
	Update(id int64, update models.BlogPostUpdate) error
	Delete(id int64) error
}

// AdminRepository defines access to the admin credential record
type AdminRepository interface {
	Credential() (models.AdminCredential, error)
	SetCredential(cred models.AdminCredential) error
}
