// Package storage keeps a local SQLite manifest of generated documents,
// so batches can be audited after the fact.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Record is one manifest row describing a generated document.
type Record struct {
	ID        string
	Domain    string
	Category  string
	Language  string
	Path      string
	SizeBytes int64
	CreatedAt time.Time
}

// Manifest is a SQLite-backed log of generated documents.
type Manifest struct {
	db *sql.DB
}

// Open creates or opens the manifest database at path.
func Open(path string) (*Manifest, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	m := &Manifest{db: db}
	if err := m.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init manifest schema: %w", err)
	}
	return m, nil
}

func (m *Manifest) Close() error {
	return m.db.Close()
}

func (m *Manifest) initSchema() error {
	_, err := m.db.Exec(`CREATE TABLE IF NOT EXISTS documents (
		id TEXT PRIMARY KEY,
		domain TEXT NOT NULL,
		category TEXT NOT NULL,
		language TEXT NOT NULL,
		path TEXT NOT NULL,
		size_bytes INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`)
	return err
}

// Append records a generated document.
func (m *Manifest) Append(ctx context.Context, rec Record) error {
	_, err := m.db.ExecContext(ctx,
		`INSERT INTO documents (id, domain, category, language, path, size_bytes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Domain, rec.Category, rec.Language, rec.Path, rec.SizeBytes, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("recording document %s: %w", rec.ID, err)
	}
	return nil
}

// CountByCategory returns per-category document counts for a domain.
func (m *Manifest) CountByCategory(ctx context.Context, domain string) (map[string]int, error) {
	rows, err := m.db.QueryContext(ctx,
		`SELECT category, COUNT(*) FROM documents WHERE domain = ? GROUP BY category`, domain)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var category string
		var n int
		if err := rows.Scan(&category, &n); err != nil {
			return nil, err
		}
		counts[category] = n
	}
	return counts, rows.Err()
}

// Recent returns the most recently generated documents, newest first.
func (m *Manifest) Recent(ctx context.Context, limit int) ([]Record, error) {
	rows, err := m.db.QueryContext(ctx,
		`SELECT id, domain, category, language, path, size_bytes, created_at
		 FROM documents ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Domain, &rec.Category, &rec.Language,
			&rec.Path, &rec.SizeBytes, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
