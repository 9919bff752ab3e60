package score

import (
	"errors"
	"strings"
	"time"
)

// Sighter mode constants. The mode selects where the scoring window starts
// within the full recorded shot sequence.
const (
	CountSighter1 = "count_sighter_1" // window starts at shot 1
	CountSighter2 = "count_sighter_2" // window starts at shot 2
	CountNone     = "count_none"      // true sighters excluded, window starts at shot 3
)

// ShotRecordVersion marks the persisted shot encoding. Bump when the Shot
// wire format changes so old rows can be migrated.
const ShotRecordVersion = 1

// Domain errors
var (
	ErrInvalidStageDefinition = errors.New("scoring window cannot be computed: invalid stage definition")
	ErrEmptyRegistrationID    = errors.New("score registration ID is required")
	ErrEmptyStageID           = errors.New("score stage ID is required")
	ErrInvalidSighterMode     = errors.New("sighter mode must be one of: count_sighter_1, count_sighter_2, count_none")
	ErrAlreadyVerified        = errors.New("score has already been verified")
)

// Shot is one scoring attempt within a stage attempt. Round is the 1-based
// position within the full sequence, sighters included.
type Shot struct {
	Round int  `json:"round"`
	Score int  `json:"score"`
	IsX   bool `json:"is_x,omitempty"` // highest precision ring
	IsV   bool `json:"is_v,omitempty"` // second-highest precision ring
}

// StageDefinition carries the scoring parameters of one stage.
type StageDefinition struct {
	ScoringRounds   int // shots that count toward the score, typically 10
	SighterCount    int // practice shots before scoring, typically 2
	MaxScorePerShot int
}

// StageScore is the persisted result of one registration shooting one stage.
// The full shot record is retained for audit even when the ranking score is
// zeroed by DNF/DQ.
type StageScore struct {
	ID             string
	RegistrationID string
	StageID        string
	SighterMode    string
	TotalScore     float64
	XCount         int
	VCount         int
	IsDNF          bool
	IsDQ           bool
	Shots          []Shot
	Version        int // shot record format, see ShotRecordVersion
	SubmittedAt    time.Time
	VerifiedAt     time.Time // zero until verified
	VerifiedBy     string    // account ID of the verifying official
}

// Validate checks the score's invariants.
// PRE: none
// POST: returns nil if valid, error describing the first violation otherwise
func (s *StageScore) Validate() error {
	if strings.TrimSpace(s.RegistrationID) == "" {
		return ErrEmptyRegistrationID
	}
	if strings.TrimSpace(s.StageID) == "" {
		return ErrEmptyStageID
	}
	if !IsValidSighterMode(s.SighterMode) {
		return ErrInvalidSighterMode
	}
	return nil
}

// IsVerified reports whether an official has verified this score.
// INVARIANT: StageScore fields are not mutated
func (s *StageScore) IsVerified() bool {
	return !s.VerifiedAt.IsZero()
}

// Verify marks the score verified. Verification is one-shot: a verified
// score cannot be verified again or resubmitted.
// PRE: score is not yet verified; verifiedBy is non-empty
// POST: VerifiedAt and VerifiedBy are set
func (s *StageScore) Verify(verifiedBy string, at time.Time) error {
	if s.IsVerified() {
		return ErrAlreadyVerified
	}
	if strings.TrimSpace(verifiedBy) == "" {
		return errors.New("verifying official is required")
	}
	s.VerifiedAt = at
	s.VerifiedBy = verifiedBy
	return nil
}

// RankingScore returns the numeric score used for leaderboard ranking:
// zero when the attempt is DNF or DQ, TotalScore otherwise. X and V counts
// are retained either way.
// INVARIANT: StageScore fields are not mutated
func (s *StageScore) RankingScore() float64 {
	if s.IsDNF || s.IsDQ {
		return 0
	}
	return s.TotalScore
}

// IsValidSighterMode reports whether v is a known sighter mode.
func IsValidSighterMode(v string) bool {
	switch v {
	case CountSighter1, CountSighter2, CountNone:
		return true
	}
	return false
}
