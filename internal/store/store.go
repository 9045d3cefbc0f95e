// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store caches fetched PubMed records in a SQLite database so
// repeated queries skip EFetch for records already seen.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/KomalGangwar/pubmed-pharma-finder/pkg/types"
)

const dbFile = "articles.db"

// Store is a PMID-keyed article cache backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open creates or opens the cache database under dir, creating the schema
// if it does not exist.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS articles (
		pmid       TEXT PRIMARY KEY,
		fetched_at TEXT NOT NULL,
		data       TEXT NOT NULL
	)`)
	return err
}

// Get returns the cached articles for the given PMIDs, keyed by PMID.
// Missing PMIDs are simply absent from the map. Rows whose payload no
// longer parses are skipped.
func (s *Store) Get(ctx context.Context, pmids []string) (map[string]types.Article, error) {
	if len(pmids) == 0 {
		return map[string]types.Article{}, nil
	}

	placeholders := strings.Repeat("?,", len(pmids))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, len(pmids))
	for i, id := range pmids {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT pmid, data FROM articles WHERE pmid IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("querying cache: %w", err)
	}
	defer rows.Close()

	found := make(map[string]types.Article)
	for rows.Next() {
		var pmid, data string
		if err := rows.Scan(&pmid, &data); err != nil {
			return nil, fmt.Errorf("scanning cache row: %w", err)
		}
		var art types.Article
		if err := json.Unmarshal([]byte(data), &art); err != nil {
			continue
		}
		found[pmid] = art
	}
	return found, rows.Err()
}

// Put stores articles in the cache, replacing existing entries.
func (s *Store) Put(ctx context.Context, articles []types.Article) error {
	if len(articles) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO articles (pmid, fetched_at, data) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, art := range articles {
		if art.PMID == "" {
			continue
		}
		data, err := json.Marshal(art)
		if err != nil {
			return fmt.Errorf("encoding article %s: %w", art.PMID, err)
		}
		if _, err := stmt.ExecContext(ctx, art.PMID, now, string(data)); err != nil {
			return fmt.Errorf("inserting article %s: %w", art.PMID, err)
		}
	}
	return tx.Commit()
}

// Stats returns the number of cached records and the oldest fetch time.
// The zero time is returned for an empty cache.
func (s *Store) Stats(ctx context.Context) (count int, oldest time.Time, err error) {
	var oldestStr sql.NullString
	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), MIN(fetched_at) FROM articles`).Scan(&count, &oldestStr)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("querying cache stats: %w", err)
	}
	if oldestStr.Valid {
		if t, parseErr := time.Parse(time.RFC3339, oldestStr.String); parseErr == nil {
			oldest = t
		}
	}
	return count, oldest, nil
}

// Clear removes all cached records.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM articles`); err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}
	return nil
}
