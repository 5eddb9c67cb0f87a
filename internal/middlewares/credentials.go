package middlewares

import (
	"crypto/sha256"
	"crypto/subtle"

	"kamingo-landing/internal/config"
)

// VerifyAdminCredentials compares a submitted username/password pair against
// the configured admin credentials. Both the Basic-Auth guard and the form
// login endpoint go through this single check.
//
// Inputs are hashed before comparison so that the constant-time compare
// operates on fixed-length values and neither the length nor the position of
// the first mismatched character leaks through timing.
func VerifyAdminCredentials(cfg *config.Config, username, password string) bool {
	usernameHash := sha256.Sum256([]byte(username))
	passwordHash := sha256.Sum256([]byte(password))
	expectedUsernameHash := sha256.Sum256([]byte(cfg.Admin.Username))
	expectedPasswordHash := sha256.Sum256([]byte(cfg.Admin.Password))

	usernameMatch := subtle.ConstantTimeCompare(usernameHash[:], expectedUsernameHash[:])
	passwordMatch := subtle.ConstantTimeCompare(passwordHash[:], expectedPasswordHash[:])

	return usernameMatch&passwordMatch == 1
}
