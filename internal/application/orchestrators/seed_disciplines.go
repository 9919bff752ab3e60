package orchestrators

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/discipline"
)

// DisciplineStoreForSeed defines the store interface needed by SeedDisciplines.
type DisciplineStoreForSeed interface {
	GetByName(ctx context.Context, name string) (discipline.Discipline, error)
	Save(ctx context.Context, d discipline.Discipline) error
}

// SeedDisciplinesDeps holds dependencies for SeedDisciplines.
type SeedDisciplinesDeps struct {
	DisciplineStore DisciplineStoreForSeed
}

// defaultDisciplines are the federation's standard events. Stage counts
// follow the national match programme.
var defaultDisciplines = []discipline.Discipline{
	{Name: "3P", Description: "Three positions: prone, standing, kneeling", StageCount: 3, Order: 1},
	{Name: "Prone", Description: "Prone only", StageCount: 2, Order: 2},
	{Name: "Air Rifle", Description: "10m air rifle, standing", StageCount: 2, Order: 3},
	{Name: "Bench Rest", Description: "Supported bench rest", StageCount: 2, Order: 4},
}

// ExecuteSeedDisciplines inserts the standard disciplines that don't exist
// yet. Safe to run on every startup; existing rows are left untouched.
// PRE: none
// POST: Every default discipline exists by name
func ExecuteSeedDisciplines(ctx context.Context, deps SeedDisciplinesDeps) error {
	seeded := 0
	for _, d := range defaultDisciplines {
		if _, err := deps.DisciplineStore.GetByName(ctx, d.Name); err == nil {
			continue
		}
		d.ID = uuid.New().String()
		if err := d.Validate(); err != nil {
			return err
		}
		if err := deps.DisciplineStore.Save(ctx, d); err != nil {
			return err
		}
		seeded++
	}
	if seeded > 0 {
		slog.Info("seed_event", "event", "disciplines_seeded", "count", seeded)
	}
	return nil
}
