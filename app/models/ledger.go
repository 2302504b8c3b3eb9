package models

import "github.com/shopspring/decimal"

// Normalize makes a freshly loaded ledger structurally valid: both sets
// non-nil and the raised aggregate recomputed from the approved set. The
// aggregate is derived on every load so a hand-edited document can never
// leave it out of sync.
func (l *LedgerDocument) Normalize() {
	if l.PendingDonations == nil {
		l.PendingDonations = []Donation{}
	}
	if l.ApprovedDonations == nil {
		l.ApprovedDonations = []Donation{}
	}
	total := decimal.Zero
	for _, d := range l.ApprovedDonations {
		total = total.Add(d.Amount)
	}
	l.RaisedAmount = total
}

// FindPending returns the index of the pending donation with the given id,
// or -1 when absent.
func (l *LedgerDocument) FindPending(id int64) int {
	for i, d := range l.PendingDonations {
		if d.ID == id {
			return i
		}
	}
	return -1
}
