package discipline

import (
	"errors"
	"strings"
)

// Max length constants.
const (
	MaxNameLength        = 100
	MaxDescriptionLength = 2000
)

// Domain errors
var (
	ErrEmptyName = errors.New("discipline name cannot be empty")
)

// Discipline is one shooting discipline offered by the federation
// (e.g. 3-Position, Prone, Air Rifle).
type Discipline struct {
	ID          string
	Name        string
	Description string // markdown, published on the disciplines page
	StageCount  int    // stages shot per competition in this discipline
	Order       int    // display order
}

// Validate checks if the Discipline has valid data.
// PRE: Discipline struct is populated
// POST: Returns nil if valid, error otherwise
func (d *Discipline) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrEmptyName
	}
	if len(d.Name) > MaxNameLength {
		return errors.New("discipline name cannot exceed 100 characters")
	}
	if len(d.Description) > MaxDescriptionLength {
		return errors.New("discipline description cannot exceed 2000 characters")
	}
	if d.StageCount < 1 {
		return errors.New("discipline must have at least one stage")
	}
	return nil
}
