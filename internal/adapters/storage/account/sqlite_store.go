package account

import (
	"context"
	"database/sql"
	"time"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/storage"
	domain "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/account"
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

// GetByID retrieves an Account by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Account, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, role, created_at, failed_logins, locked_until
		 FROM account WHERE id = ?`, id)
	return scanAccount(row)
}

// GetByEmail retrieves an Account by email address.
// PRE: email is non-empty
// POST: Returns the entity or sql.ErrNoRows
func (s *SQLiteStore) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, role, created_at, failed_logins, locked_until
		 FROM account WHERE email = ?`, email)
	return scanAccount(row)
}

// Save persists an Account to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, a domain.Account) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO account (id, email, password_hash, role, created_at, failed_logins, locked_until)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   email=excluded.email, password_hash=excluded.password_hash, role=excluded.role,
		   failed_logins=excluded.failed_logins, locked_until=excluded.locked_until`,
		a.ID, a.Email, a.PasswordHash, a.Role, a.CreatedAt.Format(timeLayout),
		a.FailedLogins, nullTime(a.LockedUntil))
	return err
}

// List retrieves all Accounts ordered by email.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Account, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, email, password_hash, role, created_at, failed_logins, locked_until
		 FROM account ORDER BY email`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var a domain.Account
		var createdAt string
		var lockedUntil sql.NullString
		if err := rows.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &createdAt, &a.FailedLogins, &lockedUntil); err != nil {
			return nil, err
		}
		a.CreatedAt, _ = time.Parse(timeLayout, createdAt)
		if lockedUntil.Valid {
			a.LockedUntil, _ = time.Parse(timeLayout, lockedUntil.String)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func scanAccount(row *sql.Row) (domain.Account, error) {
	var a domain.Account
	var createdAt string
	var lockedUntil sql.NullString
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &createdAt, &a.FailedLogins, &lockedUntil)
	if err != nil {
		return domain.Account{}, err
	}
	a.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	if lockedUntil.Valid {
		a.LockedUntil, _ = time.Parse(timeLayout, lockedUntil.String)
	}
	return a, nil
}

func nullTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.Format(timeLayout)
}
