package competition

import (
	"errors"
	"strings"
	"time"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/score"
)

// Competition status constants.
const (
	StatusDraft     = "draft"     // being set up, not visible to shooters
	StatusOpen      = "open"      // registrations and score entry open
	StatusClosed    = "closed"    // score entry closed, verification ongoing
	StatusFinalized = "finalized" // all scores verified, results official
)

// Default stage parameters for federation competitions.
const (
	DefaultScoringRounds   = 10
	DefaultSighterCount    = 2
	DefaultMaxScorePerShot = 5
)

// Max length constants.
const (
	MaxNameLength     = 200
	MaxLocationLength = 200
)

// Domain errors
var (
	ErrEmptyName       = errors.New("competition name cannot be empty")
	ErrInvalidStatus   = errors.New("status must be one of: draft, open, closed, finalized")
	ErrDatesOutOfOrder = errors.New("competition end date cannot be before start date")
	ErrNotOpen         = errors.New("competition is not open")
	ErrFinalized       = errors.New("competition results have been finalized")
)

// Competition is one federation event hosting stages across disciplines.
type Competition struct {
	ID        string
	Name      string
	Location  string
	StartDate time.Time
	EndDate   time.Time // zero value means single-day
	Status    string
	CreatedBy string // account ID
	CreatedAt time.Time
}

// Validate checks the competition's invariants.
// PRE: none
// POST: returns nil if valid, error describing the first violation otherwise
func (c *Competition) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if len(c.Name) > MaxNameLength {
		return errors.New("competition name cannot exceed 200 characters")
	}
	if len(c.Location) > MaxLocationLength {
		return errors.New("competition location cannot exceed 200 characters")
	}
	if c.StartDate.IsZero() {
		return errors.New("competition start date is required")
	}
	if !c.EndDate.IsZero() && c.EndDate.Before(c.StartDate) {
		return ErrDatesOutOfOrder
	}
	if !isValidStatus(c.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// IsOpen returns true if registrations and score entry are accepted.
// INVARIANT: Status field is not mutated
func (c *Competition) IsOpen() bool {
	return c.Status == StatusOpen
}

// IsFinalized returns true once results are official.
// INVARIANT: Status field is not mutated
func (c *Competition) IsFinalized() bool {
	return c.Status == StatusFinalized
}

// allowedTransitions maps each status to its permitted successors.
// Closed competitions may reopen while verification uncovers problems;
// finalized is terminal.
var allowedTransitions = map[string][]string{
	StatusDraft:  {StatusOpen},
	StatusOpen:   {StatusClosed},
	StatusClosed: {StatusOpen, StatusFinalized},
}

// TransitionTo moves the competition to the next lifecycle status.
// PRE: target is a valid status
// POST: Status updated on success; unchanged on error
func (c *Competition) TransitionTo(target string) error {
	if !isValidStatus(target) {
		return ErrInvalidStatus
	}
	if c.Status == StatusFinalized {
		return ErrFinalized
	}
	for _, next := range allowedTransitions[c.Status] {
		if next == target {
			c.Status = target
			return nil
		}
	}
	return errors.New("cannot move competition from " + c.Status + " to " + target)
}

// Stage is one scoring stage within a competition, shot under a single
// discipline. It carries the stage definition the score calculator consumes.
type Stage struct {
	ID              string
	CompetitionID   string
	DisciplineID    string
	Number          int // 1-based position within the discipline's stages
	ScoringRounds   int
	SighterCount    int
	MaxScorePerShot int
}

// Validate checks the stage's invariants.
// PRE: none
// POST: returns nil if valid, error otherwise
func (s *Stage) Validate() error {
	if s.CompetitionID == "" {
		return errors.New("stage competition ID is required")
	}
	if s.DisciplineID == "" {
		return errors.New("stage discipline ID is required")
	}
	if s.Number < 1 {
		return errors.New("stage number must be 1 or greater")
	}
	if s.ScoringRounds < 1 {
		return errors.New("stage must have at least one scoring round")
	}
	if s.SighterCount < 0 {
		return errors.New("sighter count cannot be negative")
	}
	if s.MaxScorePerShot < 1 {
		return errors.New("max score per shot must be 1 or greater")
	}
	return nil
}

// Definition returns the scoring parameters in the shape the stage score
// calculator consumes.
func (s *Stage) Definition() score.StageDefinition {
	return score.StageDefinition{
		ScoringRounds:   s.ScoringRounds,
		SighterCount:    s.SighterCount,
		MaxScorePerShot: s.MaxScorePerShot,
	}
}

func isValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusOpen, StatusClosed, StatusFinalized:
		return true
	}
	return false
}
