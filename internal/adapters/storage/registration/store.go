package registration

import (
	"context"

	domain "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/registration"
)

// Store persists Registration state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Registration, error)
	GetByShooterAndDiscipline(ctx context.Context, competitionID, shooterID, disciplineID string) (domain.Registration, error)
	Save(ctx context.Context, value domain.Registration) error
	ListByCompetitionID(ctx context.Context, competitionID string) ([]domain.Registration, error)
}
