package team

import (
	"context"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/storage"
	domain "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/team"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Team by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Team, error) {
	var t domain.Team
	err := s.db.QueryRowContext(ctx,
		`SELECT id, competition_id, discipline_id, name, province
		 FROM team WHERE id = ?`, id).
		Scan(&t.ID, &t.CompetitionID, &t.DisciplineID, &t.Name, &t.Province)
	return t, err
}

// Save persists a Team to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, t domain.Team) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO team (id, competition_id, discipline_id, name, province)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   competition_id=excluded.competition_id, discipline_id=excluded.discipline_id,
		   name=excluded.name, province=excluded.province`,
		t.ID, t.CompetitionID, t.DisciplineID, t.Name, t.Province)
	return err
}

// ListByCompetitionID retrieves Teams entered in a competition.
// PRE: competitionID is non-empty
// POST: Returns teams ordered by name
func (s *SQLiteStore) ListByCompetitionID(ctx context.Context, competitionID string) ([]domain.Team, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, competition_id, discipline_id, name, province
		 FROM team WHERE competition_id = ? ORDER BY name`, competitionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []domain.Team
	for rows.Next() {
		var t domain.Team
		if err := rows.Scan(&t.ID, &t.CompetitionID, &t.DisciplineID, &t.Name, &t.Province); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}
