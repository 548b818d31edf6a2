package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound reports that no stored design has the requested id.
var ErrNotFound = errors.New("design not found")

// A Design is one saved pattern document plus its bookkeeping. Doc holds
// the document JSON exactly as the carve package wrote it.
type Design struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Doc       json.RawMessage `json:"doc"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

// Store persists designs in a SQLite database.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open opens the SQLite database at path, creating parent directories as
// needed. The caller owns the returned handle.
func Open(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// Init applies the schema.
func (s *Store) Init(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS designs (
            id         TEXT PRIMARY KEY,
            name       TEXT NOT NULL,
            doc        TEXT NOT NULL,
            created_at TEXT NOT NULL,
            updated_at TEXT NOT NULL
        )
    `)
	if err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Create stores doc under a fresh id.
func (s *Store) Create(ctx context.Context, name string, doc json.RawMessage) (*Design, error) {
	d := &Design{
		ID:        uuid.NewString(),
		Name:      name,
		Doc:       doc,
		CreatedAt: now(),
	}
	d.UpdatedAt = d.CreatedAt

	_, err := s.db.ExecContext(ctx, `
        INSERT INTO designs (id, name, doc, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?)
    `, d.ID, d.Name, string(d.Doc), d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert design: %w", err)
	}
	return d, nil
}

// Get returns the design with the given id.
func (s *Store) Get(ctx context.Context, id string) (*Design, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT id, name, doc, created_at, updated_at
        FROM designs
        WHERE id = ?
    `, id)

	var d Design
	var doc []byte
	if err := row.Scan(&d.ID, &d.Name, &doc, &d.CreatedAt, &d.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	d.Doc = doc
	return &d, nil
}

// List returns every stored design ordered by name.
func (s *Store) List(ctx context.Context) ([]Design, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, name, doc, created_at, updated_at
        FROM designs
        ORDER BY name
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var designs []Design
	for rows.Next() {
		var d Design
		var doc []byte
		if err := rows.Scan(&d.ID, &d.Name, &doc, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		d.Doc = doc
		designs = append(designs, d)
	}
	return designs, rows.Err()
}

// Update replaces the name and document of an existing design.
func (s *Store) Update(ctx context.Context, id, name string, doc json.RawMessage) (*Design, error) {
	res, err := s.db.ExecContext(ctx, `
        UPDATE designs SET name = ?, doc = ?, updated_at = ? WHERE id = ?
    `, name, string(doc), now(), id)
	if err != nil {
		return nil, fmt.Errorf("update design: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, ErrNotFound
	}
	return s.Get(ctx, id)
}

// UpdateDoc rewrites just the document body, keeping the name. This is the
// autosave path.
func (s *Store) UpdateDoc(ctx context.Context, id string, doc json.RawMessage) error {
	res, err := s.db.ExecContext(ctx, `
        UPDATE designs SET doc = ?, updated_at = ? WHERE id = ?
    `, string(doc), now(), id)
	if err != nil {
		return fmt.Errorf("update design doc: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the design with the given id.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM designs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete design: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrNotFound
	}
	return nil
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
