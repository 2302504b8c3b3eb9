package services

import (
	"crypto/subtle"
	"errors"

	"sahayog/app/repositories"

	"github.com/google/uuid"
)

// ErrInvalidCredentials marks a failed login attempt. Controllers map it
// to a 401 response.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService checks admin credentials and mints session tokens. The
// token is an opaque marker; the session gate only ever checks that one
// is present.
type AuthService struct {
	adminRepo repositories.AdminRepository
}

// NewAuthService creates a new AuthService
func NewAuthService(adminRepo repositories.AdminRepository) *AuthService {
	return &AuthService{adminRepo: adminRepo}
}

// Login verifies the credentials against the stored admin record and
// returns a fresh opaque session token.
func (s *AuthService) Login(username, password string) (string, error) {
	cred, err := s.adminRepo.Credential()
	if err != nil {
		return "", err
	}

	userOK := subtle.ConstantTimeCompare([]byte(cred.Username), []byte(username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(cred.Password), []byte(password)) == 1
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}

	return uuid.NewString(), nil
}
