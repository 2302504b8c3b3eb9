package repositories

import (
	"sync"

	"sahayog/app/models"
	"sahayog/app/storage"
)

// Fallback credential used when no admin document has been provisioned,
// so a fresh deployment is reachable before `sahayog admin` is run.
var defaultCredential = models.AdminCredential{
	Username: "admin",
	Password: "project@4123",
}

// StoreAdminRepository implements AdminRepository over a document Store.
type StoreAdminRepository struct {
	store storage.Store
	mutex sync.Mutex
}

// NewStoreAdminRepository creates a new StoreAdminRepository
func NewStoreAdminRepository(store storage.Store) *StoreAdminRepository {
	return &StoreAdminRepository{store: store}
}

// Credential returns the stored admin record, or the default when none
// has been provisioned.
func (r *StoreAdminRepository) Credential() (models.AdminCredential, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var cred models.AdminCredential
	if err := r.store.Load(storage.DocAdmin, &cred); err != nil {
		return models.AdminCredential{}, err
	}
	if cred.Username == "" {
		return defaultCredential, nil
	}
	return cred, nil
}

// SetCredential overwrites the admin record. Used by CLI provisioning
// only; the running service never writes it.
func (r *StoreAdminRepository) SetCredential(cred models.AdminCredential) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if err := cred.Validate(); err != nil {
		return err
	}
	return r.store.Save(storage.DocAdmin, cred)
}
