package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/account"
)

// SeedAdminInput carries the bootstrap admin credentials.
type SeedAdminInput struct {
	Email    string
	Password string
}

// SeedAdminDeps holds dependencies for SeedAdmin.
type SeedAdminDeps struct {
	AccountStore AccountStoreForLogin
}

// ExecuteSeedAdmin creates the initial admin account if no account exists
// for the configured email. Safe to run on every startup.
// PRE: Email and Password are non-empty
// POST: An admin account exists for the email; existing accounts untouched
func ExecuteSeedAdmin(ctx context.Context, input SeedAdminInput, deps SeedAdminDeps) error {
	if _, err := deps.AccountStore.GetByEmail(ctx, input.Email); err == nil {
		return nil // already seeded
	}

	acct := account.Account{
		ID:        uuid.New().String(),
		Email:     input.Email,
		Role:      account.RoleAdmin,
		CreatedAt: time.Now(),
	}
	if err := acct.SetPassword(input.Password); err != nil {
		return err
	}
	if err := acct.Validate(); err != nil {
		return err
	}
	if err := deps.AccountStore.Save(ctx, acct); err != nil {
		return err
	}

	slog.Info("seed_event", "event", "admin_seeded", "email", input.Email)
	return nil
}
