package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const stateSchemaVersion = 1

// State is persisted in a single sqlite file. Each row carries the full
// record as a JSON blob plus the scalar columns queries and ordering need.
// Saves replace the whole state inside one transaction, so a crash can never
// leave a half-written mix of old and new rows.

func (s Store) statePath() string {
	return filepath.Join(s.Dir, "state.db")
}

func (s Store) openState(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.statePath())
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := migrateState(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func migrateState(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`PRAGMA journal_mode=WAL`,
		`CREATE TABLE IF NOT EXISTS state_meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS notebooks (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			doc TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS folders (
			id TEXT PRIMARY KEY,
			notebook_id TEXT NOT NULL,
			parent_id TEXT,
			section_id TEXT,
			folder_type TEXT NOT NULL,
			position INTEGER NOT NULL,
			archived INTEGER NOT NULL,
			doc TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_folders_parent ON folders (notebook_id, parent_id)`,
		`CREATE TABLE IF NOT EXISTS pages (
			id TEXT PRIMARY KEY,
			notebook_id TEXT NOT NULL,
			folder_id TEXT,
			parent_page_id TEXT,
			section_id TEXT,
			position INTEGER NOT NULL,
			archived INTEGER NOT NULL,
			doc TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_pages_folder ON pages (notebook_id, folder_id)`,
		`CREATE INDEX IF NOT EXISTS idx_pages_parent ON pages (parent_page_id)`,
		`CREATE TABLE IF NOT EXISTS sections (
			id TEXT PRIMARY KEY,
			notebook_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			doc TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate state db: %w", err)
		}
	}
	_, err := db.ExecContext(ctx,
		`INSERT INTO state_meta (key, value) VALUES ('schema_version', ?)
		 ON CONFLICT(key) DO NOTHING`, fmt.Sprint(stateSchemaVersion))
	if err != nil {
		return fmt.Errorf("migrate state db: %w", err)
	}
	return nil
}

func (s Store) LoadSQLite(ctx context.Context) (*DB, error) {
	sdb, err := s.openState(ctx)
	if err != nil {
		return nil, err
	}
	defer sdb.Close()

	out := &DB{Version: stateSchemaVersion}

	var current sql.NullString
	err = sdb.QueryRowContext(ctx,
		`SELECT value FROM state_meta WHERE key = 'current_notebook'`).Scan(&current)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("load state meta: %w", err)
	}
	if current.Valid {
		out.CurrentNotebookID = current.String
	}

	if err := loadDocs(ctx, sdb, `SELECT doc FROM notebooks`, &out.Notebooks); err != nil {
		return nil, err
	}
	if err := loadDocs(ctx, sdb, `SELECT doc FROM folders`, &out.Folders); err != nil {
		return nil, err
	}
	if err := loadDocs(ctx, sdb, `SELECT doc FROM pages`, &out.Pages); err != nil {
		return nil, err
	}
	if err := loadDocs(ctx, sdb, `SELECT doc FROM sections`, &out.Sections); err != nil {
		return nil, err
	}
	return out, nil
}

func loadDocs[T any](ctx context.Context, sdb *sql.DB, query string, dst *[]T) error {
	rows, err := sdb.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("load state rows: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return fmt.Errorf("scan state row: %w", err)
		}
		var v T
		if err := json.Unmarshal([]byte(doc), &v); err != nil {
			return fmt.Errorf("decode state row: %w", err)
		}
		*dst = append(*dst, v)
	}
	return rows.Err()
}

func (s Store) SaveSQLite(ctx context.Context, db *DB) error {
	sdb, err := s.openState(ctx)
	if err != nil {
		return err
	}
	defer sdb.Close()

	tx, err := sdb.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"notebooks", "folders", "pages", "sections"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, n := range db.Notebooks {
		doc, err := json.Marshal(n)
		if err != nil {
			return fmt.Errorf("encode notebook %s: %w", n.ID, err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO notebooks (id, name, doc) VALUES (?, ?, ?)`,
			n.ID, n.Name, string(doc))
		if err != nil {
			return fmt.Errorf("save notebook %s: %w", n.ID, err)
		}
	}
	for _, f := range db.Folders {
		doc, err := json.Marshal(f)
		if err != nil {
			return fmt.Errorf("encode folder %s: %w", f.ID, err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO folders (id, notebook_id, parent_id, section_id, folder_type, position, archived, doc)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			f.ID, f.NotebookID, nullRef(f.ParentID), nullRef(f.SectionID),
			string(f.FolderType), f.Position, boolInt(f.Archived), string(doc))
		if err != nil {
			return fmt.Errorf("save folder %s: %w", f.ID, err)
		}
	}
	for _, p := range db.Pages {
		doc, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("encode page %s: %w", p.ID, err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO pages (id, notebook_id, folder_id, parent_page_id, section_id, position, archived, doc)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.NotebookID, nullRef(p.FolderID), nullRef(p.ParentPageID),
			nullRef(p.SectionID), p.Position, boolInt(p.Archived), string(doc))
		if err != nil {
			return fmt.Errorf("save page %s: %w", p.ID, err)
		}
	}
	for _, sec := range db.Sections {
		doc, err := json.Marshal(sec)
		if err != nil {
			return fmt.Errorf("encode section %s: %w", sec.ID, err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO sections (id, notebook_id, position, doc) VALUES (?, ?, ?, ?)`,
			sec.ID, sec.NotebookID, sec.Position, string(doc))
		if err != nil {
			return fmt.Errorf("save section %s: %w", sec.ID, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO state_meta (key, value) VALUES ('current_notebook', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		db.CurrentNotebookID)
	if err != nil {
		return fmt.Errorf("save state meta: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

func nullRef(p *string) any {
	if p == nil || *p == "" {
		return nil
	}
	return *p
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
