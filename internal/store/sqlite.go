// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/practice-partner/backend/internal/domain/questionbank"
)

const schema = `
CREATE TABLE IF NOT EXISTS roles (
    name TEXT PRIMARY KEY,
    position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS questions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    role TEXT NOT NULL,
    text TEXT NOT NULL,
    position INTEGER NOT NULL,
    UNIQUE (role, text),
    FOREIGN KEY (role) REFERENCES roles(name) ON DELETE CASCADE
);
`

// SQLiteBankStore persists question banks. Interview sessions are never
// written here.
type SQLiteBankStore struct {
	db *sql.DB
}

// Compile-time check: *SQLiteBankStore can back a questionbank.Sampler.
var _ questionbank.Lookup = (*SQLiteBankStore)(nil)

func NewSQLite(dbPath string) (*SQLiteBankStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// One connection: SQLite serializes writers anyway, and ":memory:"
	// databases are per-connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteBankStore{db: db}, nil
}

func (s *SQLiteBankStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Banks
// ============================================================================

// SeedBanks inserts the given banks. Roles and questions that already exist
// are left untouched, so seeding on every start is safe.
func (s *SQLiteBankStore) SeedBanks(ctx context.Context, banks []*questionbank.Bank) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var next int
	if err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(position) + 1, 0) FROM roles").Scan(&next); err != nil {
		return err
	}

	for _, b := range banks {
		res, err := tx.ExecContext(ctx, "INSERT OR IGNORE INTO roles (name, position) VALUES (?, ?)", b.Role, next)
		if err != nil {
			return fmt.Errorf("seed role %q: %w", b.Role, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			next++
		}

		for i, q := range b.Questions {
			if _, err := tx.ExecContext(ctx,
				"INSERT OR IGNORE INTO questions (role, text, position) VALUES (?, ?, ?)",
				b.Role, q, i,
			); err != nil {
				return fmt.Errorf("seed question for %q: %w", b.Role, err)
			}
		}
	}

	return tx.Commit()
}

// AddQuestion appends a question to a role, creating the role if needed.
// A question the role already holds yields questionbank.ErrDuplicateQuestion.
func (s *SQLiteBankStore) AddQuestion(ctx context.Context, role, question string) error {
	role = strings.TrimSpace(role)
	if role == "" {
		return fmt.Errorf("role cannot be empty")
	}
	b := questionbank.New(role)
	if err := b.AddQuestion(question); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"INSERT OR IGNORE INTO roles (name, position) SELECT ?, COALESCE(MAX(position) + 1, 0) FROM roles",
		role,
	); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO questions (role, text, position)
		 SELECT ?, ?, COALESCE(MAX(position) + 1, 0) FROM questions WHERE role = ?
		 ON CONFLICT (role, text) DO NOTHING`,
		role, b.Questions[0], role,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %q already in %q", questionbank.ErrDuplicateQuestion, b.Questions[0], role)
	}

	return tx.Commit()
}

// DeleteRole removes a role and its questions. Returns ErrNotFound if the
// role does not exist.
func (s *SQLiteBankStore) DeleteRole(ctx context.Context, role string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM roles WHERE name = ?", role)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteBankStore) Questions(ctx context.Context, role string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT text FROM questions WHERE role = ? ORDER BY position, id", role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []string{}
	for rows.Next() {
		var q string
		if err := rows.Scan(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (s *SQLiteBankStore) Roles(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM roles ORDER BY position, name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var r string
		if err := rows.Scan(&r); err != nil {
			return nil, err
		}
		roles = append(roles, r)
	}
	return roles, rows.Err()
}
