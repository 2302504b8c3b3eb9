package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDonationValidate(t *testing.T) {
	t.Run("valid donation", func(t *testing.T) {
		d := &Donation{
			ID:        1700000000000,
			Name:      "Alice",
			Amount:    decimal.NewFromInt(500),
			Timestamp: "2024-01-01T00:00:00Z",
		}
		assert.NoError(t, d.Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		d := &Donation{
			ID:        1700000000000,
			Amount:    decimal.NewFromInt(500),
			Timestamp: "2024-01-01T00:00:00Z",
		}
		assert.Error(t, d.Validate())
	})

	t.Run("zero amount", func(t *testing.T) {
		d := &Donation{
			ID:        1700000000000,
			Name:      "Alice",
			Amount:    decimal.Zero,
			Timestamp: "2024-01-01T00:00:00Z",
		}
		assert.Error(t, d.Validate())
	})

	t.Run("negative amount", func(t *testing.T) {
		d := &Donation{
			ID:        1700000000000,
			Name:      "Alice",
			Amount:    decimal.NewFromInt(-5),
			Timestamp: "2024-01-01T00:00:00Z",
		}
		assert.Error(t, d.Validate())
	})
}

func TestDonationBeforeCreate(t *testing.T) {
	d := &Donation{Name: "Alice", Amount: decimal.NewFromInt(10)}
	d.BeforeCreate()
	assert.NotEmpty(t, d.Timestamp)

	// Already-set timestamps are preserved
	fixed := "2024-01-01T00:00:00Z"
	d2 := &Donation{Name: "Bob", Timestamp: fixed}
	d2.BeforeCreate()
	assert.Equal(t, fixed, d2.Timestamp)
}

func TestLedgerDocumentNormalize(t *testing.T) {
	t.Run("empty document gets non-nil sets", func(t *testing.T) {
		var doc LedgerDocument
		doc.Normalize()
		assert.NotNil(t, doc.PendingDonations)
		assert.NotNil(t, doc.ApprovedDonations)
		assert.True(t, doc.RaisedAmount.IsZero())
	})

	t.Run("raised amount is recomputed from approved set", func(t *testing.T) {
		doc := LedgerDocument{
			ApprovedDonations: []Donation{
				{ID: 1, Name: "A", Amount: decimal.NewFromInt(100)},
				{ID: 2, Name: "B", Amount: decimal.RequireFromString("49.95")},
			},
			// Out-of-sync stored value, e.g. a hand-edited document
			RaisedAmount: decimal.NewFromInt(9999),
		}
		doc.Normalize()
		assert.True(t, doc.RaisedAmount.Equal(decimal.RequireFromString("149.95")))
	})
}

func TestLedgerDocumentFindPending(t *testing.T) {
	doc := LedgerDocument{
		PendingDonations: []Donation{{ID: 10}, {ID: 20}},
	}
	assert.Equal(t, 0, doc.FindPending(10))
	assert.Equal(t, 1, doc.FindPending(20))
	assert.Equal(t, -1, doc.FindPending(30))
}
