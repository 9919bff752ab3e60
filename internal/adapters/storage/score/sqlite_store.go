package score

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/storage"
	domain "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/score"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

const selectColumns = `id, registration_id, stage_id, sighter_mode, total_score,
	x_count, v_count, is_dnf, is_dq, shots, version, submitted_at, verified_at, verified_by`

// SQLiteStore implements Store using SQLite. Shot-by-shot detail is stored
// as a JSON column alongside the versioned record format marker, so older
// rows can be migrated if the shot encoding ever changes.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a StageScore by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.StageScore, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM stage_score WHERE id = ?`, id)
	return scanScore(row)
}

// GetByRegistrationAndStage retrieves the score one registration shot on
// one stage.
// PRE: registrationID and stageID are non-empty
// POST: Returns the entity or sql.ErrNoRows
func (s *SQLiteStore) GetByRegistrationAndStage(ctx context.Context, registrationID, stageID string) (domain.StageScore, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM stage_score
		 WHERE registration_id = ? AND stage_id = ?`, registrationID, stageID)
	return scanScore(row)
}

// Save persists a StageScore to the database (upsert on registration+stage).
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, sc domain.StageScore) error {
	shots, err := json.Marshal(sc.Shots)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO stage_score (id, registration_id, stage_id, sighter_mode, total_score,
		   x_count, v_count, is_dnf, is_dq, shots, version, submitted_at, verified_at, verified_by)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(registration_id, stage_id) DO UPDATE SET
		   sighter_mode=excluded.sighter_mode, total_score=excluded.total_score,
		   x_count=excluded.x_count, v_count=excluded.v_count,
		   is_dnf=excluded.is_dnf, is_dq=excluded.is_dq,
		   shots=excluded.shots, version=excluded.version,
		   submitted_at=excluded.submitted_at,
		   verified_at=excluded.verified_at, verified_by=excluded.verified_by`,
		sc.ID, sc.RegistrationID, sc.StageID, sc.SighterMode, sc.TotalScore,
		sc.XCount, sc.VCount, boolToInt(sc.IsDNF), boolToInt(sc.IsDQ),
		string(shots), sc.Version, sc.SubmittedAt.Format(timeLayout),
		nullTime(sc.VerifiedAt), nullStr(sc.VerifiedBy))
	return err
}

// ListByCompetitionID retrieves every score shot at a competition, joined
// through the registration table.
// PRE: competitionID is non-empty
// POST: Returns scores in submission order
func (s *SQLiteStore) ListByCompetitionID(ctx context.Context, competitionID string) ([]domain.StageScore, error) {
	return s.listForCompetition(ctx, competitionID, "")
}

// ListVerifiedByCompetitionID retrieves only verified scores for a
// competition. This is the snapshot the leaderboards aggregate over.
// PRE: competitionID is non-empty
// POST: Returns verified scores in submission order
func (s *SQLiteStore) ListVerifiedByCompetitionID(ctx context.Context, competitionID string) ([]domain.StageScore, error) {
	return s.listForCompetition(ctx, competitionID, "AND ss.verified_at IS NOT NULL")
}

// ListUnverifiedByCompetitionID retrieves scores still awaiting
// verification, oldest submission first.
// PRE: competitionID is non-empty
// POST: Returns unverified scores in submission order
func (s *SQLiteStore) ListUnverifiedByCompetitionID(ctx context.Context, competitionID string) ([]domain.StageScore, error) {
	return s.listForCompetition(ctx, competitionID, "AND ss.verified_at IS NULL")
}

func (s *SQLiteStore) listForCompetition(ctx context.Context, competitionID, extraWhere string) ([]domain.StageScore, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT ss.id, ss.registration_id, ss.stage_id, ss.sighter_mode, ss.total_score,
		   ss.x_count, ss.v_count, ss.is_dnf, ss.is_dq, ss.shots, ss.version,
		   ss.submitted_at, ss.verified_at, ss.verified_by
		 FROM stage_score ss
		 JOIN registration r ON r.id = ss.registration_id
		 WHERE r.competition_id = ? `+extraWhere+`
		 ORDER BY ss.submitted_at, ss.rowid`, competitionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanScores(rows)
}

func scanScore(row *sql.Row) (domain.StageScore, error) {
	var sc domain.StageScore
	var isDNF, isDQ int
	var shots, submittedAt string
	var verifiedAt, verifiedBy sql.NullString
	err := row.Scan(&sc.ID, &sc.RegistrationID, &sc.StageID, &sc.SighterMode, &sc.TotalScore,
		&sc.XCount, &sc.VCount, &isDNF, &isDQ, &shots, &sc.Version,
		&submittedAt, &verifiedAt, &verifiedBy)
	if err != nil {
		return domain.StageScore{}, err
	}
	return hydrateScore(sc, isDNF, isDQ, shots, submittedAt, verifiedAt, verifiedBy)
}

func scanScores(rows *sql.Rows) ([]domain.StageScore, error) {
	var scores []domain.StageScore
	for rows.Next() {
		var sc domain.StageScore
		var isDNF, isDQ int
		var shots, submittedAt string
		var verifiedAt, verifiedBy sql.NullString
		if err := rows.Scan(&sc.ID, &sc.RegistrationID, &sc.StageID, &sc.SighterMode, &sc.TotalScore,
			&sc.XCount, &sc.VCount, &isDNF, &isDQ, &shots, &sc.Version,
			&submittedAt, &verifiedAt, &verifiedBy); err != nil {
			return nil, err
		}
		hydrated, err := hydrateScore(sc, isDNF, isDQ, shots, submittedAt, verifiedAt, verifiedBy)
		if err != nil {
			return nil, err
		}
		scores = append(scores, hydrated)
	}
	return scores, rows.Err()
}

func hydrateScore(sc domain.StageScore, isDNF, isDQ int, shots, submittedAt string, verifiedAt, verifiedBy sql.NullString) (domain.StageScore, error) {
	sc.IsDNF = isDNF != 0
	sc.IsDQ = isDQ != 0
	if err := json.Unmarshal([]byte(shots), &sc.Shots); err != nil {
		return domain.StageScore{}, err
	}
	sc.SubmittedAt, _ = time.Parse(timeLayout, submittedAt)
	if verifiedAt.Valid {
		sc.VerifiedAt, _ = time.Parse(timeLayout, verifiedAt.String)
	}
	if verifiedBy.Valid {
		sc.VerifiedBy = verifiedBy.String
	}
	return sc, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
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
