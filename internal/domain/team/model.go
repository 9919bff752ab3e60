package team

import (
	"errors"
	"strings"
)

// Max length constants.
const (
	MaxNameLength = 100
)

// Domain errors
var (
	ErrEmptyName          = errors.New("team name cannot be empty")
	ErrEmptyCompetitionID = errors.New("team competition ID is required")
	ErrEmptyDisciplineID  = errors.New("team discipline ID is required")
)

// Team is a named group of shooters entered in one discipline of one
// competition. Membership is expressed through registrations that carry the
// team ID.
type Team struct {
	ID            string
	CompetitionID string
	DisciplineID  string
	Name          string
	Province      string
}

// Validate checks if the Team has valid data.
// PRE: Team struct is populated
// POST: Returns nil if valid, error otherwise
func (t *Team) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyName
	}
	if len(t.Name) > MaxNameLength {
		return errors.New("team name cannot exceed 100 characters")
	}
	if t.CompetitionID == "" {
		return ErrEmptyCompetitionID
	}
	if t.DisciplineID == "" {
		return ErrEmptyDisciplineID
	}
	return nil
}
