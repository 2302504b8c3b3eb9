package models

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Amounts serialize as plain JSON numbers, matching the persisted
	// document layout.
	decimal.MarshalJSONWithoutQuotes = true
}

// Donation is a single donation submission. It lives in the pending set
// until an admin approves or rejects it; both transitions are terminal.
type Donation struct {
	ID         int64           `json:"id" validate:"required,gt=0"`
	Name       string          `json:"name" validate:"required"`
	Amount     decimal.Decimal `json:"amount" validate:"-"`
	Screenshot string          `json:"screenshot,omitempty" validate:"-"`
	Timestamp  string          `json:"timestamp" validate:"required"`
}

// LedgerDocument is the whole persisted donation ledger: the pending and
// approved sets plus the raised aggregate. RaisedAmount is derived from
// the approved set and recomputed on load.
type LedgerDocument struct {
	PendingDonations  []Donation      `json:"pendingDonations"`
	ApprovedDonations []Donation      `json:"approvedDonations"`
	RaisedAmount      decimal.Decimal `json:"raisedAmount"`
}

// BlogPost is a single article. Posts are stored newest first.
type BlogPost struct {
	ID       int64  `json:"id" validate:"required,gt=0"`
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Author   string `json:"author" validate:"required"`
	Date     string `json:"date" validate:"required"`
	ImageURL string `json:"imageUrl,omitempty" validate:"-"`
}

// BlogPostUpdate carries a partial update. Nil fields are left untouched;
// ID and Date are not updatable.
type BlogPostUpdate struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Author   *string `json:"author"`
	ImageURL *string `json:"imageUrl"`
}

// BlogDocument is the whole persisted blog collection.
type BlogDocument struct {
	Posts []BlogPost `json:"posts"`
}

// AdminCredential is the single static admin record. It is read-only at
// runtime and provisioned through the CLI.
type AdminCredential struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SuccessStory is a static showcase entry served by the stories endpoint.
type SuccessStory struct {
	ID          int64       `json:"id"`
	Icon        string      `json:"icon"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Content     string      `json:"content"`
	Footer      StoryFooter `json:"footer"`
}

// StoryFooter holds the headline metric shown under a story.
type StoryFooter struct {
	Metric string `json:"metric"`
	Icon   string `json:"icon"`
}
