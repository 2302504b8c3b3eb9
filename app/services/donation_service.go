package services

import (
	"errors"
	"fmt"
	"strings"

	"sahayog/app/models"
	"sahayog/app/repositories"

	"github.com/shopspring/decimal"
)

// ErrValidation marks caller input the service refused. Controllers map
// it to a 400 response.
var ErrValidation = errors.New("validation failed")

// DonationService handles business logic for the donation ledger
type DonationService struct {
	ledgerRepo repositories.LedgerRepository
}

// NewDonationService creates a new DonationService
func NewDonationService(ledgerRepo repositories.LedgerRepository) *DonationService {
	return &DonationService{ledgerRepo: ledgerRepo}
}

// Submit validates a donation submission and appends it to the pending
// set. The returned donation carries its assigned id and timestamp.
func (s *DonationService) Submit(name string, amount decimal.Decimal, screenshot string) (*models.Donation, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be a positive number", ErrValidation)
	}

	donation := &models.Donation{
		Name:       name,
		Amount:     amount,
		Screenshot: screenshot,
	}
	if err := s.ledgerRepo.AddPending(donation); err != nil {
		return nil, err
	}
	return donation, nil
}

// Pending returns the pending donations in arrival order.
func (s *DonationService) Pending() ([]models.Donation, error) {
	return s.ledgerRepo.Pending()
}

// Approve marks a pending donation as approved, counting its amount
// toward the raised total.
func (s *DonationService) Approve(id int64) (*models.Donation, error) {
	return s.ledgerRepo.Approve(id)
}

// Reject removes a pending donation without touching the total.
func (s *DonationService) Reject(id int64) error {
	return s.ledgerRepo.Reject(id)
}

// RaisedAmount returns the sum of all approved donation amounts.
func (s *DonationService) RaisedAmount() (decimal.Decimal, error) {
	return s.ledgerRepo.RaisedAmount()
}
