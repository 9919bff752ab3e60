package competition

import (
	"context"
	"database/sql"
	"time"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/storage"
	domain "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/competition"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Competition by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Competition, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, location, start_date, end_date, status, created_by, created_at
		 FROM competition WHERE id = ?`, id)
	return scanCompetition(row)
}

// Save persists a Competition to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, c domain.Competition) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO competition (id, name, location, start_date, end_date, status, created_by, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name=excluded.name, location=excluded.location, start_date=excluded.start_date,
		   end_date=excluded.end_date, status=excluded.status`,
		c.ID, c.Name, c.Location, c.StartDate.Format(timeLayout), nullTime(c.EndDate),
		c.Status, nullStr(c.CreatedBy), c.CreatedAt.Format(timeLayout))
	return err
}

// List retrieves all Competitions, newest start date first.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Competition, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, location, start_date, end_date, status, created_by, created_at
		 FROM competition ORDER BY start_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCompetitions(rows)
}

// ListByStatus retrieves Competitions in the given status.
// PRE: status is a valid status constant
// POST: Returns matching competitions, newest start date first
func (s *SQLiteStore) ListByStatus(ctx context.Context, status string) ([]domain.Competition, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, location, start_date, end_date, status, created_by, created_at
		 FROM competition WHERE status = ? ORDER BY start_date DESC`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCompetitions(rows)
}

func scanCompetition(row *sql.Row) (domain.Competition, error) {
	var c domain.Competition
	var startDate, createdAt string
	var endDate, createdBy sql.NullString
	err := row.Scan(&c.ID, &c.Name, &c.Location, &startDate, &endDate, &c.Status, &createdBy, &createdAt)
	if err != nil {
		return domain.Competition{}, err
	}
	c.StartDate, _ = time.Parse(timeLayout, startDate)
	c.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	if endDate.Valid {
		c.EndDate, _ = time.Parse(timeLayout, endDate.String)
	}
	if createdBy.Valid {
		c.CreatedBy = createdBy.String
	}
	return c, nil
}

func scanCompetitions(rows *sql.Rows) ([]domain.Competition, error) {
	var comps []domain.Competition
	for rows.Next() {
		var c domain.Competition
		var startDate, createdAt string
		var endDate, createdBy sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &c.Location, &startDate, &endDate, &c.Status, &createdBy, &createdAt); err != nil {
			return nil, err
		}
		c.StartDate, _ = time.Parse(timeLayout, startDate)
		c.CreatedAt, _ = time.Parse(timeLayout, createdAt)
		if endDate.Valid {
			c.EndDate, _ = time.Parse(timeLayout, endDate.String)
		}
		if createdBy.Valid {
			c.CreatedBy = createdBy.String
		}
		comps = append(comps, c)
	}
	return comps, rows.Err()
}

// StageSQLiteStore implements StageStore using SQLite.
type StageSQLiteStore struct {
	db storage.SQLDB
}

// NewStageSQLiteStore creates a new StageSQLiteStore.
func NewStageSQLiteStore(db storage.SQLDB) *StageSQLiteStore {
	return &StageSQLiteStore{db: db}
}

// GetByID retrieves a Stage by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *StageSQLiteStore) GetByID(ctx context.Context, id string) (domain.Stage, error) {
	var st domain.Stage
	err := s.db.QueryRowContext(ctx,
		`SELECT id, competition_id, discipline_id, number, scoring_rounds, sighter_count, max_score_per_shot
		 FROM stage WHERE id = ?`, id).
		Scan(&st.ID, &st.CompetitionID, &st.DisciplineID, &st.Number,
			&st.ScoringRounds, &st.SighterCount, &st.MaxScorePerShot)
	return st, err
}

// Save persists a Stage to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *StageSQLiteStore) Save(ctx context.Context, st domain.Stage) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO stage (id, competition_id, discipline_id, number, scoring_rounds, sighter_count, max_score_per_shot)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   competition_id=excluded.competition_id, discipline_id=excluded.discipline_id,
		   number=excluded.number, scoring_rounds=excluded.scoring_rounds,
		   sighter_count=excluded.sighter_count, max_score_per_shot=excluded.max_score_per_shot`,
		st.ID, st.CompetitionID, st.DisciplineID, st.Number,
		st.ScoringRounds, st.SighterCount, st.MaxScorePerShot)
	return err
}

// ListByCompetitionID retrieves Stages for a competition in stage order.
// PRE: competitionID is non-empty
// POST: Returns stages ordered by discipline then number
func (s *StageSQLiteStore) ListByCompetitionID(ctx context.Context, competitionID string) ([]domain.Stage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, competition_id, discipline_id, number, scoring_rounds, sighter_count, max_score_per_shot
		 FROM stage WHERE competition_id = ? ORDER BY discipline_id, number`, competitionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stages []domain.Stage
	for rows.Next() {
		var st domain.Stage
		if err := rows.Scan(&st.ID, &st.CompetitionID, &st.DisciplineID, &st.Number,
			&st.ScoringRounds, &st.SighterCount, &st.MaxScorePerShot); err != nil {
			return nil, err
		}
		stages = append(stages, st)
	}
	return stages, rows.Err()
}

func nullStr(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func nullTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.Format(timeLayout)
}
