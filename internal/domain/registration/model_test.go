package registration_test

import (
	"testing"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/registration"
)

// TestRegistration_Validate tests validation of Registration.
func TestRegistration_Validate(t *testing.T) {
	tests := []struct {
		name    string
		r       registration.Registration
		wantErr bool
	}{
		{
			name:    "valid individual entry",
			r:       registration.Registration{ID: "1", CompetitionID: "c1", ShooterID: "s1", DisciplineID: "d1", AgeClassification: registration.AgeOpen},
			wantErr: false,
		},
		{
			name:    "valid team entry",
			r:       registration.Registration{ID: "2", CompetitionID: "c1", ShooterID: "s2", DisciplineID: "d1", TeamID: "t1", AgeClassification: registration.AgeJunior},
			wantErr: false,
		},
		{
			name:    "missing competition",
			r:       registration.Registration{ID: "3", ShooterID: "s1", DisciplineID: "d1", AgeClassification: registration.AgeOpen},
			wantErr: true,
		},
		{
			name:    "missing shooter",
			r:       registration.Registration{ID: "4", CompetitionID: "c1", DisciplineID: "d1", AgeClassification: registration.AgeOpen},
			wantErr: true,
		},
		{
			name:    "missing discipline",
			r:       registration.Registration{ID: "5", CompetitionID: "c1", ShooterID: "s1", AgeClassification: registration.AgeOpen},
			wantErr: true,
		},
		{
			name:    "bogus age class",
			r:       registration.Registration{ID: "6", CompetitionID: "c1", ShooterID: "s1", DisciplineID: "d1", AgeClassification: "senior"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Registration.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestRegistration_IsTeamEntry tests the team flag.
func TestRegistration_IsTeamEntry(t *testing.T) {
	r := registration.Registration{TeamID: ""}
	if r.IsTeamEntry() {
		t.Error("empty team ID must not be a team entry")
	}
	r.TeamID = "t1"
	if !r.IsTeamEntry() {
		t.Error("non-empty team ID must be a team entry")
	}
}
