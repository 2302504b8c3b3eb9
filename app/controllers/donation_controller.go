package controllers

import (
	"encoding/json"
	"net/http"

	"sahayog/app/services"

	"github.com/shopspring/decimal"
)

// DonationController handles HTTP requests for the donation ledger
type DonationController struct {
	donationService *services.DonationService
}

// NewDonationController creates a new DonationController
func NewDonationController(donationService *services.DonationService) *DonationController {
	return &DonationController{donationService: donationService}
}

type submitDonationRequest struct {
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Screenshot string          `json:"screenshot"`
}

type donationIDRequest struct {
	ID int64 `json:"id"`
}

// Submit handles a public donation submission
func (dc *DonationController) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	donation, err := dc.donationService.Submit(req.Name, req.Amount, req.Screenshot)
	if err != nil {
		sendServiceError(w, err, "Donation not found")
		return
	}

	sendJSON(w, map[string]interface{}{
		"success":  true,
		"message":  "Donation submitted successfully and pending approval",
		"donation": donation,
	})
}

// Pending lists donations awaiting review, in arrival order
func (dc *DonationController) Pending(w http.ResponseWriter, r *http.Request) {
	pending, err := dc.donationService.Pending()
	if err != nil {
		sendServiceError(w, err, "Donation not found")
		return
	}
	sendJSON(w, pending)
}

// Approve moves a pending donation into the approved set
func (dc *DonationController) Approve(w http.ResponseWriter, r *http.Request) {
	var req donationIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.ID == 0 {
		sendError(w, "Donation ID is required", http.StatusBadRequest)
		return
	}

	if _, err := dc.donationService.Approve(req.ID); err != nil {
		sendServiceError(w, err, "Donation not found")
		return
	}
	sendJSON(w, map[string]interface{}{"success": true})
}

// Reject removes a pending donation permanently
func (dc *DonationController) Reject(w http.ResponseWriter, r *http.Request) {
	var req donationIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.ID == 0 {
		sendError(w, "Donation ID is required", http.StatusBadRequest)
		return
	}

	if err := dc.donationService.Reject(req.ID); err != nil {
		sendServiceError(w, err, "Donation not found")
		return
	}
	sendJSON(w, map[string]interface{}{"success": true})
}

// RaisedAmount reports the public fundraising total
func (dc *DonationController) RaisedAmount(w http.ResponseWriter, r *http.Request) {
	raised, err := dc.donationService.RaisedAmount()
	if err != nil {
		sendServiceError(w, err, "Donation not found")
		return
	}
	sendJSON(w, map[string]interface{}{"raisedAmount": raised})
}
