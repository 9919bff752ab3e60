package registration

import "errors"

// Age classification constants.
const (
	AgeJunior  = "junior"
	AgeU21     = "u21"
	AgeOpen    = "open"
	AgeVeteran = "veteran"
)

// ValidAgeClassifications contains all valid age class values.
var ValidAgeClassifications = []string{AgeJunior, AgeU21, AgeOpen, AgeVeteran}

// Domain errors
var (
	ErrEmptyCompetitionID = errors.New("registration competition ID is required")
	ErrEmptyShooterID     = errors.New("registration shooter ID is required")
	ErrEmptyDisciplineID  = errors.New("registration discipline ID is required")
	ErrInvalidAgeClass    = errors.New("age classification must be one of: junior, u21, open, veteran")
)

// Registration links a shooter to a competition and discipline, optionally
// as part of a team. A registration has exactly one stage score per stage
// once verified.
type Registration struct {
	ID                string
	CompetitionID     string
	ShooterID         string
	DisciplineID      string
	TeamID            string // empty for individual entries
	AgeClassification string
}

// Validate checks if the Registration has valid data.
// PRE: Registration struct is populated
// POST: Returns nil if valid, error otherwise
func (r *Registration) Validate() error {
	if r.CompetitionID == "" {
		return ErrEmptyCompetitionID
	}
	if r.ShooterID == "" {
		return ErrEmptyShooterID
	}
	if r.DisciplineID == "" {
		return ErrEmptyDisciplineID
	}
	if !IsValidAgeClassification(r.AgeClassification) {
		return ErrInvalidAgeClass
	}
	return nil
}

// IsTeamEntry returns true if the registration belongs to a team.
// INVARIANT: fields are not mutated
func (r *Registration) IsTeamEntry() bool {
	return r.TeamID != ""
}

// IsValidAgeClassification reports whether the value is a recognised age
// class.
func IsValidAgeClassification(v string) bool {
	for _, a := range ValidAgeClassifications {
		if a == v {
			return true
		}
	}
	return false
}
