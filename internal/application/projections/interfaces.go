package projections

import (
	"context"

	domainCompetition "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/competition"
	domainDiscipline "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/discipline"
	domainRegistration "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/registration"
	domainScore "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/score"
	domainShooter "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/shooter"
	domainTeam "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/team"
)

// CompetitionStore interface for competition queries.
type CompetitionStore interface {
	GetByID(ctx context.Context, id string) (domainCompetition.Competition, error)
	List(ctx context.Context) ([]domainCompetition.Competition, error)
}

// StageStore interface for stage queries.
type StageStore interface {
	ListByCompetitionID(ctx context.Context, competitionID string) ([]domainCompetition.Stage, error)
}

// RegistrationStore interface for registration queries.
type RegistrationStore interface {
	ListByCompetitionID(ctx context.Context, competitionID string) ([]domainRegistration.Registration, error)
}

// ShooterStore interface for shooter queries.
type ShooterStore interface {
	ListByIDs(ctx context.Context, ids []string) ([]domainShooter.Shooter, error)
}

// DisciplineStore interface for discipline queries.
type DisciplineStore interface {
	List(ctx context.Context) ([]domainDiscipline.Discipline, error)
}

// TeamStore interface for team queries.
type TeamStore interface {
	ListByCompetitionID(ctx context.Context, competitionID string) ([]domainTeam.Team, error)
}

// ScoreStore interface for score queries.
type ScoreStore interface {
	ListByCompetitionID(ctx context.Context, competitionID string) ([]domainScore.StageScore, error)
	ListVerifiedByCompetitionID(ctx context.Context, competitionID string) ([]domainScore.StageScore, error)
	ListUnverifiedByCompetitionID(ctx context.Context, competitionID string) ([]domainScore.StageScore, error)
}
