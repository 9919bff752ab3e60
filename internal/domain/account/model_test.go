package account_test

import (
	"testing"
	"time"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/account"
)

// TestAccount_Validate tests validation of Account.
func TestAccount_Validate(t *testing.T) {
	tests := []struct {
		name    string
		a       account.Account
		wantErr bool
	}{
		{name: "valid admin", a: account.Account{Email: "admin@shootsa.org.za", Role: account.RoleAdmin}, wantErr: false},
		{name: "valid official", a: account.Account{Email: "ro@shootsa.org.za", Role: account.RoleOfficial}, wantErr: false},
		{name: "empty email", a: account.Account{Role: account.RoleShooter}, wantErr: true},
		{name: "email without at", a: account.Account{Email: "nope", Role: account.RoleShooter}, wantErr: true},
		{name: "bogus role", a: account.Account{Email: "x@y.z", Role: "superuser"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.a.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Account.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestAccount_Passwords tests hashing and verification round-trip.
func TestAccount_Passwords(t *testing.T) {
	a := account.Account{Email: "x@y.z", Role: account.RoleOfficial}

	if err := a.SetPassword("short"); err != account.ErrPasswordTooShort {
		t.Errorf("short password error = %v, want ErrPasswordTooShort", err)
	}
	if err := a.SetPassword("a long enough password"); err != nil {
		t.Fatalf("SetPassword() unexpected error: %v", err)
	}
	if err := a.CheckPassword("a long enough password"); err != nil {
		t.Errorf("CheckPassword() with correct password: %v", err)
	}
	if err := a.CheckPassword("wrong password entirely"); err != account.ErrWrongPassword {
		t.Errorf("CheckPassword() with wrong password = %v, want ErrWrongPassword", err)
	}
}

// TestAccount_Lockout tests the failed-login lockout counter.
func TestAccount_Lockout(t *testing.T) {
	a := account.Account{}
	for i := 0; i < 4; i++ {
		a.RecordFailedLogin()
	}
	if a.IsLocked() {
		t.Fatal("locked after 4 failures, want lock at 5")
	}
	a.RecordFailedLogin()
	if !a.IsLocked() {
		t.Fatal("not locked after 5 failures")
	}
	a.ResetFailedLogins()
	if a.IsLocked() || a.FailedLogins != 0 || !a.LockedUntil.Equal(time.Time{}) {
		t.Errorf("reset did not clear lockout: %+v", a)
	}
}

// TestAccount_CanVerifyScores tests role permissions for verification.
func TestAccount_CanVerifyScores(t *testing.T) {
	for role, want := range map[string]bool{
		account.RoleAdmin:    true,
		account.RoleOfficial: true,
		account.RoleShooter:  false,
	} {
		a := account.Account{Role: role}
		if got := a.CanVerifyScores(); got != want {
			t.Errorf("CanVerifyScores() for %s = %v, want %v", role, got, want)
		}
	}
}
