package registration

import (
	"context"
	"database/sql"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/storage"
	domain "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/registration"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Registration by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Registration, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, competition_id, shooter_id, discipline_id, team_id, age_classification
		 FROM registration WHERE id = ?`, id)
	return scanRegistration(row)
}

// GetByShooterAndDiscipline retrieves a Registration by its natural key.
// PRE: all IDs are non-empty
// POST: Returns the entity or sql.ErrNoRows
func (s *SQLiteStore) GetByShooterAndDiscipline(ctx context.Context, competitionID, shooterID, disciplineID string) (domain.Registration, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, competition_id, shooter_id, discipline_id, team_id, age_classification
		 FROM registration
		 WHERE competition_id = ? AND shooter_id = ? AND discipline_id = ?`,
		competitionID, shooterID, disciplineID)
	return scanRegistration(row)
}

// Save persists a Registration to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, r domain.Registration) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO registration (id, competition_id, shooter_id, discipline_id, team_id, age_classification)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   competition_id=excluded.competition_id, shooter_id=excluded.shooter_id,
		   discipline_id=excluded.discipline_id, team_id=excluded.team_id,
		   age_classification=excluded.age_classification`,
		r.ID, r.CompetitionID, r.ShooterID, r.DisciplineID, nullStr(r.TeamID), r.AgeClassification)
	return err
}

// ListByCompetitionID retrieves all Registrations for a competition.
// PRE: competitionID is non-empty
// POST: Returns registrations in insertion order
func (s *SQLiteStore) ListByCompetitionID(ctx context.Context, competitionID string) ([]domain.Registration, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, competition_id, shooter_id, discipline_id, team_id, age_classification
		 FROM registration WHERE competition_id = ? ORDER BY rowid`, competitionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []domain.Registration
	for rows.Next() {
		var r domain.Registration
		var teamID sql.NullString
		if err := rows.Scan(&r.ID, &r.CompetitionID, &r.ShooterID, &r.DisciplineID, &teamID, &r.AgeClassification); err != nil {
			return nil, err
		}
		if teamID.Valid {
			r.TeamID = teamID.String
		}
		regs = append(regs, r)
	}
	return regs, rows.Err()
}

func scanRegistration(row *sql.Row) (domain.Registration, error) {
	var r domain.Registration
	var teamID sql.NullString
	err := row.Scan(&r.ID, &r.CompetitionID, &r.ShooterID, &r.DisciplineID, &teamID, &r.AgeClassification)
	if err != nil {
		return domain.Registration{}, err
	}
	if teamID.Valid {
		r.TeamID = teamID.String
	}
	return r, nil
}

func nullStr(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
