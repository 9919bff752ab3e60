package discipline

import (
	"context"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/storage"
	domain "github.com/jfdercksen/sa-shooting-comp-sub000/internal/domain/discipline"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Discipline by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Discipline, error) {
	var d domain.Discipline
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, description, stage_count, display_order
		 FROM discipline WHERE id = ?`, id).
		Scan(&d.ID, &d.Name, &d.Description, &d.StageCount, &d.Order)
	return d, err
}

// GetByName retrieves a Discipline by name.
// PRE: name is non-empty
// POST: Returns the entity or sql.ErrNoRows
func (s *SQLiteStore) GetByName(ctx context.Context, name string) (domain.Discipline, error) {
	var d domain.Discipline
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, description, stage_count, display_order
		 FROM discipline WHERE name = ?`, name).
		Scan(&d.ID, &d.Name, &d.Description, &d.StageCount, &d.Order)
	return d, err
}

// Save persists a Discipline to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, d domain.Discipline) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO discipline (id, name, description, stage_count, display_order)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name=excluded.name, description=excluded.description,
		   stage_count=excluded.stage_count, display_order=excluded.display_order`,
		d.ID, d.Name, d.Description, d.StageCount, d.Order)
	return err
}

// List retrieves all Disciplines in display order.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Discipline, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, stage_count, display_order
		 FROM discipline ORDER BY display_order, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var disciplines []domain.Discipline
	for rows.Next() {
		var d domain.Discipline
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.StageCount, &d.Order); err != nil {
			return nil, err
		}
		disciplines = append(disciplines, d)
	}
	return disciplines, rows.Err()
}
