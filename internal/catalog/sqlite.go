// internal/catalog/sqlite.go
//
// SQLite-backed catalog Source.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying embedded migrations (idempotent, recorded in _migrations).
//   - Importing another Source so the database can be seeded from HCL.
//   - Serving categories, levels and words ordered by their catalog position.

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordsearch/assets"
)

// SQLite serves the catalog from a database.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if missing) a catalog database and migrates it.
func OpenSQLite(dsn string) (*SQLite, error) {
	// Ensure directory exists for ./data/catalog.db, etc.
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if err := migrate(db, assets.Migrations); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

// Close releases the database handle.
func (s *SQLite) Close() error { return s.db.Close() }

// migrate applies *.sql files from fsys in lexical order, each inside its own
// transaction, skipping files already recorded in _migrations.
func migrate(db *sql.DB, fsys fs.FS) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(fsys, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := fs.ReadFile(fsys, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// Empty reports whether the catalog has no categories yet.
func (s *SQLite) Empty(ctx context.Context) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM categories`).Scan(&n); err != nil {
		return false, err
	}
	return n == 0, nil
}

// Import replaces the stored catalog with the contents of src.
func (s *SQLite) Import(ctx context.Context, src Source) error {
	cats, err := src.Categories(ctx)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM categories`); err != nil {
		return fmt.Errorf("clear catalog: %w", err)
	}
	for ci, c := range cats {
		res, err := tx.ExecContext(ctx, `INSERT INTO categories (name, position) VALUES (?, ?)`, c.Name, ci)
		if err != nil {
			return fmt.Errorf("insert category %s: %w", c.Name, err)
		}
		catID, err := res.LastInsertId()
		if err != nil {
			return err
		}
		for _, l := range c.Levels {
			res, err := tx.ExecContext(ctx, `INSERT INTO levels (category_id, number) VALUES (?, ?)`, catID, l.Number)
			if err != nil {
				return fmt.Errorf("insert level %s/%d: %w", c.Name, l.Number, err)
			}
			lvlID, err := res.LastInsertId()
			if err != nil {
				return err
			}
			for wi, w := range l.Words {
				if _, err := tx.ExecContext(ctx, `INSERT INTO words (level_id, position, word) VALUES (?, ?, ?)`, lvlID, wi, w); err != nil {
					return fmt.Errorf("insert word %s: %w", w, err)
				}
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	log.Info().Int("categories", len(cats)).Msg("catalog imported")
	return nil
}

func (s *SQLite) Categories(ctx context.Context) ([]Category, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT c.name, l.number, w.word
        FROM categories c
        JOIN levels l ON l.category_id = c.id
        JOIN words w  ON w.level_id = l.id
        ORDER BY c.position ASC, l.number ASC, w.position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		var (
			name   string
			number int
			word   string
		)
		if err := rows.Scan(&name, &number, &word); err != nil {
			return nil, err
		}
		if len(out) == 0 || out[len(out)-1].Name != name {
			out = append(out, Category{Name: name})
		}
		cat := &out[len(out)-1]
		if len(cat.Levels) == 0 || cat.Levels[len(cat.Levels)-1].Number != number {
			cat.Levels = append(cat.Levels, Level{Number: number})
		}
		lvl := &cat.Levels[len(cat.Levels)-1]
		lvl.Words = append(lvl.Words, word)
	}
	return out, rows.Err()
}

func (s *SQLite) Category(ctx context.Context, name string) (Category, error) {
	var (
		id    int64
		canon string
	)
	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM categories WHERE name = ?`, name).Scan(&id, &canon)
	if errors.Is(err, sql.ErrNoRows) {
		return Category{}, fmt.Errorf("%w: %s", ErrCategoryNotFound, name)
	}
	if err != nil {
		return Category{}, err
	}

	rows, err := s.db.QueryContext(ctx, `
        SELECT l.number, w.word
        FROM levels l
        JOIN words w ON w.level_id = l.id
        WHERE l.category_id = ?
        ORDER BY l.number ASC, w.position ASC`, id)
	if err != nil {
		return Category{}, err
	}
	defer rows.Close()

	cat := Category{Name: canon}
	for rows.Next() {
		var (
			number int
			word   string
		)
		if err := rows.Scan(&number, &word); err != nil {
			return Category{}, err
		}
		if len(cat.Levels) == 0 || cat.Levels[len(cat.Levels)-1].Number != number {
			cat.Levels = append(cat.Levels, Level{Number: number})
		}
		lvl := &cat.Levels[len(cat.Levels)-1]
		lvl.Words = append(lvl.Words, word)
	}
	return cat, rows.Err()
}

func (s *SQLite) Words(ctx context.Context, category string, level int) ([]string, error) {
	cat, err := s.Category(ctx, category)
	if err != nil {
		return nil, err
	}
	for _, l := range cat.Levels {
		if l.Number == level {
			return l.Words, nil
		}
	}
	return nil, fmt.Errorf("%w: %s/%d", ErrLevelNotFound, cat.Name, level)
}
