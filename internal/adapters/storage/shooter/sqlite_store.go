package shooter

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/storage"
	domain "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/shooter"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Shooter by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Shooter, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, account_id, name, number, club, province, status
		 FROM shooter WHERE id = ?`, id)
	return scanShooter(row)
}

// GetByNumber retrieves a Shooter by federation number.
// PRE: number is non-empty
// POST: Returns the entity or sql.ErrNoRows
func (s *SQLiteStore) GetByNumber(ctx context.Context, number string) (domain.Shooter, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, account_id, name, number, club, province, status
		 FROM shooter WHERE number = ?`, number)
	return scanShooter(row)
}

// Save persists a Shooter to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, sh domain.Shooter) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO shooter (id, account_id, name, number, club, province, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   account_id=excluded.account_id, name=excluded.name, number=excluded.number,
		   club=excluded.club, province=excluded.province, status=excluded.status`,
		sh.ID, nullStr(sh.AccountID), sh.Name, sh.Number, sh.Club, sh.Province, sh.Status)
	return err
}

// ListActive retrieves all active Shooters ordered by name.
func (s *SQLiteStore) ListActive(ctx context.Context) ([]domain.Shooter, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, account_id, name, number, club, province, status
		 FROM shooter WHERE status = 'active' ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanShooters(rows)
}

// ListByIDs retrieves Shooters by ID set. Missing IDs are skipped, not errors.
// PRE: none (empty ids yields an empty slice)
// POST: Returns matching shooters in no particular order
func (s *SQLiteStore) ListByIDs(ctx context.Context, ids []string) ([]domain.Shooter, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, account_id, name, number, club, province, status
		 FROM shooter WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanShooters(rows)
}

func scanShooter(row *sql.Row) (domain.Shooter, error) {
	var sh domain.Shooter
	var accountID sql.NullString
	err := row.Scan(&sh.ID, &accountID, &sh.Name, &sh.Number, &sh.Club, &sh.Province, &sh.Status)
	if err != nil {
		return domain.Shooter{}, err
	}
	if accountID.Valid {
		sh.AccountID = accountID.String
	}
	return sh, nil
}

func scanShooters(rows *sql.Rows) ([]domain.Shooter, error) {
	var shooters []domain.Shooter
	for rows.Next() {
		var sh domain.Shooter
		var accountID sql.NullString
		if err := rows.Scan(&sh.ID, &accountID, &sh.Name, &sh.Number, &sh.Club, &sh.Province, &sh.Status); err != nil {
			return nil, err
		}
		if accountID.Valid {
			sh.AccountID = accountID.String
		}
		shooters = append(shooters, sh)
	}
	return shooters, rows.Err()
}

func nullStr(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
