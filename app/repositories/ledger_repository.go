package repositories

import (
	"sync"
	"time"

	"sahayog/app/models"
	"sahayog/app/storage"

	"github.com/shopspring/decimal"
)

// StoreLedgerRepository implements LedgerRepository over a document Store.
// Every operation is a full load-mutate-save cycle on the donations
// document; the mutex serializes those cycles so in-process callers never
// race on the whole-document write.
type StoreLedgerRepository struct {
	store storage.Store
	mutex sync.Mutex
}

// NewStoreLedgerRepository creates a new StoreLedgerRepository
func NewStoreLedgerRepository(store storage.Store) *StoreLedgerRepository {
	return &StoreLedgerRepository{store: store}
}

func (r *StoreLedgerRepository) load() (*models.LedgerDocument, error) {
	var doc models.LedgerDocument
	if err := r.store.Load(storage.DocDonations, &doc); err != nil {
		return nil, err
	}
	doc.Normalize()
	return &doc, nil
}

// AddPending appends a new donation to the pending set. The donation gets
// a fresh unique id and, if missing, a creation timestamp.
func (r *StoreLedgerRepository) AddPending(donation *models.Donation) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}

	donation.ID = nextID(ledgerIDs(doc))
	donation.BeforeCreate()

	doc.PendingDonations = append(doc.PendingDonations, *donation)
	return r.store.Save(storage.DocDonations, doc)
}

// Pending returns a snapshot of the pending set in arrival order.
func (r *StoreLedgerRepository) Pending() ([]models.Donation, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	out := make([]models.Donation, len(doc.PendingDonations))
	copy(out, doc.PendingDonations)
	return out, nil
}

// Approve moves a pending donation into the approved set and adds its
// amount to the raised aggregate, all in one document write. A second
// call with the same id fails with ErrNotFound since the id has left
// the pending set.
func (r *StoreLedgerRepository) Approve(id int64) (*models.Donation, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}

	i := doc.FindPending(id)
	if i < 0 {
		return nil, ErrNotFound
	}

	donation := doc.PendingDonations[i]
	doc.PendingDonations = append(doc.PendingDonations[:i], doc.PendingDonations[i+1:]...)
	doc.ApprovedDonations = append(doc.ApprovedDonations, donation)
	doc.RaisedAmount = doc.RaisedAmount.Add(donation.Amount)

	if err := r.store.Save(storage.DocDonations, doc); err != nil {
		return nil, err
	}
	return &donation, nil
}

// Reject removes a pending donation permanently. The aggregate is not
// touched.
func (r *StoreLedgerRepository) Reject(id int64) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}

	i := doc.FindPending(id)
	if i < 0 {
		return ErrNotFound
	}

	doc.PendingDonations = append(doc.PendingDonations[:i], doc.PendingDonations[i+1:]...)
	return r.store.Save(storage.DocDonations, doc)
}

// RaisedAmount returns the aggregate of all approved amounts.
func (r *StoreLedgerRepository) RaisedAmount() (decimal.Decimal, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	doc, err := r.load()
	if err != nil {
		return decimal.Zero, err
	}
	return doc.RaisedAmount, nil
}

func ledgerIDs(doc *models.LedgerDocument) []int64 {
	ids := make([]int64, 0, len(doc.PendingDonations)+len(doc.ApprovedDonations))
	for _, d := range doc.PendingDonations {
		ids = append(ids, d.ID)
	}
	for _, d := range doc.ApprovedDonations {
		ids = append(ids, d.ID)
	}
	return ids
}

// nextID derives a creation-timestamp id, bumped past any existing id so
// two records created in the same millisecond stay distinct.
func nextID(existing []int64) int64 {
	id := time.Now().UnixMilli()
	for _, e := range existing {
		if id <= e {
			id = e + 1
		}
	}
	return id
}
