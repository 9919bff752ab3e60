package account

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Max length constants for user-editable fields.
const (
	MaxEmailLength = 254
)

// Role constants
const (
	RoleAdmin    = "admin"    // federation administrator
	RoleOfficial = "official" // range official: enters and verifies scores
	RoleShooter  = "shooter"  // registered competitor
)

// ValidRoles contains all valid role values.
var ValidRoles = []string{RoleAdmin, RoleOfficial, RoleShooter}

// Domain errors
var (
	ErrEmptyEmail       = errors.New("email cannot be empty")
	ErrInvalidEmail     = errors.New("email must contain '@'")
	ErrInvalidRole      = errors.New("role must be one of: admin, official, shooter")
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrPasswordTooShort = errors.New("password must be at least 12 characters")
	ErrWrongPassword    = errors.New("incorrect password")
)

// Account holds credentials and role for one federation user.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	FailedLogins int
	LockedUntil  time.Time
}

// Validate checks if the Account has valid data.
// PRE: Account struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Email) == "" {
		return ErrEmptyEmail
	}
	if len(a.Email) > MaxEmailLength {
		return errors.New("email cannot exceed 254 characters")
	}
	if !strings.Contains(a.Email, "@") {
		return ErrInvalidEmail
	}
	if !isValidRole(a.Role) {
		return ErrInvalidRole
	}
	return nil
}

// SetPassword hashes and stores a password using bcrypt with cost 12.
// PRE: plaintext is non-empty and >= 12 characters
// POST: PasswordHash is set to bcrypt hash
func (a *Account) SetPassword(plaintext string) error {
	if plaintext == "" {
		return ErrEmptyPassword
	}
	if len(plaintext) < 12 {
		return ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), 12)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash.
// PRE: PasswordHash is set
// INVARIANT: Account fields are not mutated
func (a *Account) CheckPassword(plaintext string) error {
	if a.PasswordHash == "" {
		return ErrWrongPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(plaintext)); err != nil {
		return ErrWrongPassword
	}
	return nil
}

// IsLocked returns true if the account is currently locked out.
// INVARIANT: Account fields are not mutated
func (a *Account) IsLocked() bool {
	if a.LockedUntil.IsZero() {
		return false
	}
	return time.Now().Before(a.LockedUntil)
}

// RecordFailedLogin increments the failed login counter and locks the account after 5 failures.
// PRE: Account exists
// POST: FailedLogins incremented; LockedUntil set if >= 5 failures
func (a *Account) RecordFailedLogin() {
	a.FailedLogins++
	if a.FailedLogins >= 5 {
		a.LockedUntil = time.Now().Add(15 * time.Minute)
	}
}

// ResetFailedLogins clears the failed login counter and lock.
// PRE: Account exists
// POST: FailedLogins is 0, LockedUntil is zero
func (a *Account) ResetFailedLogins() {
	a.FailedLogins = 0
	a.LockedUntil = time.Time{}
}

// IsAdmin returns true if the account has admin role.
// INVARIANT: Account fields are not mutated
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanVerifyScores returns true for roles allowed to verify stage scores.
// INVARIANT: Account fields are not mutated
func (a *Account) CanVerifyScores() bool {
	return a.Role == RoleAdmin || a.Role == RoleOfficial
}

func isValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
