package models

import (
	"errors"
	"time"
)

// Validate checks if the donation meets all validation requirements
func (d *Donation) Validate() error {
	if err := validate.Struct(d); err != nil {
		return err
	}

	if !d.Amount.IsPositive() {
		return errors.New("amount must be positive")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (d *Donation) BeforeCreate() {
	if d.Timestamp == "" {
		d.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
}
