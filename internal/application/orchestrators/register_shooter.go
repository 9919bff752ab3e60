package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/email"
	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/account"
	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/competition"
	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/registration"
	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/shooter"
)

// CompetitionLookupStore resolves a competition by ID.
type CompetitionLookupStore interface {
	GetByID(ctx context.Context, id string) (competition.Competition, error)
}

// ShooterLookupStore resolves a shooter by ID.
type ShooterLookupStore interface {
	GetByID(ctx context.Context, id string) (shooter.Shooter, error)
}

// RegistrationStoreForRegister defines the registration persistence needed here.
type RegistrationStoreForRegister interface {
	GetByShooterAndDiscipline(ctx context.Context, competitionID, shooterID, disciplineID string) (registration.Registration, error)
	Save(ctx context.Context, r registration.Registration) error
}

// AccountLookupStore resolves the shooter's account for the confirmation email.
type AccountLookupStore interface {
	GetByID(ctx context.Context, id string) (account.Account, error)
}

// RegisterShooterInput carries input for the register-shooter orchestrator.
type RegisterShooterInput struct {
	CompetitionID     string
	ShooterID         string
	DisciplineID      string
	TeamID            string // optional: empty for individual-only entry
	AgeClassification string
}

// RegisterShooterDeps holds dependencies for RegisterShooter.
type RegisterShooterDeps struct {
	CompetitionStore  CompetitionLookupStore
	ShooterStore      ShooterLookupStore
	RegistrationStore RegistrationStoreForRegister
	AccountStore      AccountLookupStore // optional: nil skips the confirmation email
	EmailSender       email.Sender       // optional: nil skips the confirmation email
	EmailFrom         string
}

var (
	ErrAlreadyRegistered   = errors.New("shooter is already registered for this discipline")
	ErrCompetitionNotOpen  = errors.New("competition is not open for registration")
	ErrShooterArchived     = errors.New("archived shooters cannot register")
	ErrShooterNotFound     = errors.New("shooter not found")
	ErrCompetitionNotFound = errors.New("competition not found")
)

// ExecuteRegisterShooter registers a shooter for one discipline at a
// competition, optionally as part of a team.
// PRE: competition is open; shooter is active; not already registered
// POST: Registration persisted; confirmation email sent best-effort
// INVARIANT: One registration per shooter per discipline per competition
func ExecuteRegisterShooter(ctx context.Context, input RegisterShooterInput, deps RegisterShooterDeps) (registration.Registration, error) {
	c, err := deps.CompetitionStore.GetByID(ctx, input.CompetitionID)
	if err != nil {
		return registration.Registration{}, ErrCompetitionNotFound
	}
	if !c.IsOpen() {
		return registration.Registration{}, ErrCompetitionNotOpen
	}

	sh, err := deps.ShooterStore.GetByID(ctx, input.ShooterID)
	if err != nil {
		return registration.Registration{}, ErrShooterNotFound
	}
	if sh.IsArchived() {
		return registration.Registration{}, ErrShooterArchived
	}

	if _, err := deps.RegistrationStore.GetByShooterAndDiscipline(ctx, input.CompetitionID, input.ShooterID, input.DisciplineID); err == nil {
		return registration.Registration{}, ErrAlreadyRegistered
	}

	r := registration.Registration{
		ID:                uuid.New().String(),
		CompetitionID:     input.CompetitionID,
		ShooterID:         input.ShooterID,
		DisciplineID:      input.DisciplineID,
		TeamID:            input.TeamID,
		AgeClassification: input.AgeClassification,
	}
	if err := r.Validate(); err != nil {
		return registration.Registration{}, err
	}

	if err := deps.RegistrationStore.Save(ctx, r); err != nil {
		return registration.Registration{}, err
	}

	slog.Info("registration_event", "event", "shooter_registered",
		"registration_id", r.ID, "competition_id", r.CompetitionID,
		"shooter_id", r.ShooterID, "discipline_id", r.DisciplineID, "team_entry", r.IsTeamEntry())

	// Best-effort confirmation email; registration stands even if it fails
	sendRegistrationConfirmation(ctx, deps, sh, c)

	return r, nil
}

func sendRegistrationConfirmation(ctx context.Context, deps RegisterShooterDeps, sh shooter.Shooter, c competition.Competition) {
	if deps.EmailSender == nil || deps.AccountStore == nil || sh.AccountID == "" {
		return
	}
	acct, err := deps.AccountStore.GetByID(ctx, sh.AccountID)
	if err != nil {
		return
	}
	_, err = deps.EmailSender.Send(ctx, email.SendRequest{
		To:      []string{acct.Email},
		From:    deps.EmailFrom,
		Subject: fmt.Sprintf("Registration confirmed: %s", c.Name),
		HTML: fmt.Sprintf("<p>Hi %s,</p><p>Your entry for <strong>%s</strong> has been confirmed. Good shooting!</p>",
			sh.Name, c.Name),
	})
	if err != nil {
		slog.Warn("registration_event", "event", "confirmation_email_failed", "shooter_id", sh.ID, "error", err)
	}
}
