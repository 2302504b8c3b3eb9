package controllers

import (
	"encoding/json"
	"net/http"

	"sahayog/app/middleware"
	"sahayog/app/services"
)

const sessionMaxAge = 60 * 60 * 24 // one day

// AuthController handles admin login and session status
type AuthController struct {
	authService   *services.AuthService
	secureCookies bool
}

// NewAuthController creates a new AuthController. secureCookies should be
// set in production so the session marker is only sent over TLS.
func NewAuthController(authService *services.AuthService, secureCookies bool) *AuthController {
	return &AuthController{authService: authService, secureCookies: secureCookies}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies admin credentials and sets the session cookie
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	token, err := ac.authService.Login(req.Username, req.Password)
	if err != nil {
		sendServiceError(w, err, "Admin not found")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   ac.secureCookies,
	})
	sendJSON(w, map[string]interface{}{"success": true})
}

// Status reports whether the caller holds an admin session marker
func (ac *AuthController) Status(w http.ResponseWriter, r *http.Request) {
	_, err := r.Cookie(middleware.SessionCookie)
	sendJSON(w, map[string]interface{}{"isAdmin": err == nil})
}
