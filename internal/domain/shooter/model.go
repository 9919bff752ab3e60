package shooter

import (
	"errors"
	"strings"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength = 100
	MaxClubLength = 120
)

// Status constants
const (
	StatusActive   = "active"
	StatusArchived = "archived"
)

// Domain errors
var (
	ErrEmptyName       = errors.New("shooter name cannot be empty")
	ErrEmptyNumber     = errors.New("shooter number cannot be empty")
	ErrAlreadyArchived = errors.New("shooter is already archived")
	ErrNotArchived     = errors.New("shooter is not archived")
)

// Shooter holds state for one registered competitor.
type Shooter struct {
	ID        string
	AccountID string // optional link to a login account
	Name      string
	Number    string // federation-issued identifying number
	Club      string
	Province  string
	Status    string
}

// Validate checks if the Shooter has valid data.
// PRE: Shooter struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (s *Shooter) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	if len(s.Name) > MaxNameLength {
		return errors.New("shooter name cannot exceed 100 characters")
	}
	if strings.TrimSpace(s.Number) == "" {
		return ErrEmptyNumber
	}
	if len(s.Club) > MaxClubLength {
		return errors.New("club name cannot exceed 120 characters")
	}
	if s.Status != StatusActive && s.Status != StatusArchived {
		return errors.New("status must be 'active' or 'archived'")
	}
	return nil
}

// IsArchived returns true if the shooter is archived.
// INVARIANT: Status field is not mutated
func (s *Shooter) IsArchived() bool {
	return s.Status == StatusArchived
}

// Archive sets the shooter status to archived.
// PRE: Shooter is not already archived
// POST: Status is set to archived
func (s *Shooter) Archive() error {
	if s.Status == StatusArchived {
		return ErrAlreadyArchived
	}
	s.Status = StatusArchived
	return nil
}

// Restore sets the shooter status back to active.
// PRE: Shooter is currently archived
// POST: Status is set to active
func (s *Shooter) Restore() error {
	if s.Status != StatusArchived {
		return ErrNotArchived
	}
	s.Status = StatusActive
	return nil
}
