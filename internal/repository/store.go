// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package repository persists articulation documents and course catalogs in
// a SQLite store and serves the engine's lookups: documents by receiving
// course, group, section, or sending course, free-text title search, and
// catalog resolution for display enrichment.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/transfer-engine/internal/coursecode"
	"github.com/pdiddy/transfer-engine/pkg/types"
)

const (
	documentsDir = "documents"
	catalogDir   = "catalog"
	indexDir     = "index"
	dbFile       = "articulation.db"

	sideSending   = "sending"
	sideReceiving = "receiving"
)

// Store manages the articulation SQLite database.
type Store struct {
	db         *sql.DB
	dataDir    string
	maxResults int
}

// NewStore opens or creates the articulation database at
// dataDir/index/articulation.db, creating the schema if needed.
func NewStore(cfg types.RepositoryConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.DataDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, dataDir: cfg.DataDir, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			receiving_course TEXT NOT NULL,
			receiving_title TEXT,
			grp TEXT,
			group_title TEXT,
			group_logic_type TEXT,
			n_courses INTEGER,
			section TEXT,
			logic TEXT NOT NULL,
			sending_courses TEXT,
			source_file TEXT NOT NULL,
			UNIQUE(receiving_course, grp, section)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_receiving ON documents(receiving_course)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_group ON documents(grp, section)`,
		`CREATE TABLE IF NOT EXISTS courses (
			code TEXT NOT NULL,
			side TEXT NOT NULL,
			title TEXT,
			is_honors INTEGER,
			units REAL,
			PRIMARY KEY (code, side)
		)`,
		`CREATE TABLE IF NOT EXISTS indexing_status (
			source_file TEXT PRIMARY KEY,
			file_mod_time TEXT
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table over course code and title, with sync triggers.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='documents_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE documents_fts USING fts5(receiving_course, receiving_title, content=documents, content_rowid=rowid)`,
			`CREATE TRIGGER documents_ai AFTER INSERT ON documents BEGIN
				INSERT INTO documents_fts(rowid, receiving_course, receiving_title)
				VALUES (new.rowid, new.receiving_course, new.receiving_title);
			END`,
			`CREATE TRIGGER documents_ad AFTER DELETE ON documents BEGIN
				INSERT INTO documents_fts(documents_fts, rowid, receiving_course, receiving_title)
				VALUES('delete', old.rowid, old.receiving_course, old.receiving_title);
			END`,
			`CREATE TRIGGER documents_au AFTER UPDATE ON documents BEGIN
				INSERT INTO documents_fts(documents_fts, rowid, receiving_course, receiving_title)
				VALUES('delete', old.rowid, old.receiving_course, old.receiving_title);
				INSERT INTO documents_fts(rowid, receiving_course, receiving_title)
				VALUES (new.rowid, new.receiving_course, new.receiving_title);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// IngestSummary holds counts from one ingestion run.
type IngestSummary struct {
	Indexed int
	Updated int
	Skipped int
	Failed  int
}

// Total returns the number of source files processed.
func (s IngestSummary) Total() int {
	return s.Indexed + s.Updated + s.Skipped + s.Failed
}

// documentFile is the on-disk shape of one document fixture: either a bare
// list or a wrapped {documents: [...]} mapping.
type documentFile struct {
	Documents []types.RequirementDocument `yaml:"documents"`
}

// Ingest reads document YAML files from dataDir/documents/ and catalog
// files from dataDir/catalog/, populating the database. Unchanged files
// are detected by modification time and skipped, so repeat runs are
// incremental. Progress is written to w.
func (s *Store) Ingest(ctx context.Context, w io.Writer) (IngestSummary, error) {
	docsDir := filepath.Join(s.dataDir, documentsDir)

	entries, err := os.ReadDir(docsDir)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("reading documents directory %s: %w", docsDir, err)
	}

	var summary IngestSummary
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || (!strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml")) {
			continue
		}

		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		info, err := entry.Info()
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}
		modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

		var storedModTime string
		err = s.db.QueryRowContext(ctx,
			`SELECT file_mod_time FROM indexing_status WHERE source_file = ?`, name,
		).Scan(&storedModTime)
		if err == nil && storedModTime == modTime {
			fmt.Fprintf(w, "skipped %s\n", name)
			summary.Skipped++
			continue
		}
		isUpdate := err == nil

		docs, err := readDocumentFile(filepath.Join(docsDir, name))
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}

		if err := s.ingestFile(ctx, name, docs, modTime, isUpdate); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}

		if isUpdate {
			fmt.Fprintf(w, "updated %s (%d documents)\n", name, len(docs))
			summary.Updated++
		} else {
			fmt.Fprintf(w, "indexed %s (%d documents)\n", name, len(docs))
			summary.Indexed++
		}
	}

	if err := s.ingestCatalogs(ctx, w); err != nil {
		return summary, err
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d, skipped: %d, failed: %d\n",
		summary.Indexed, summary.Updated, summary.Skipped, summary.Failed)
	return summary, nil
}

// readDocumentFile parses a fixture as either a wrapped mapping or a bare
// document list.
func readDocumentFile(path string) ([]types.RequirementDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapped documentFile
	if err := yaml.Unmarshal(data, &wrapped); err == nil && len(wrapped.Documents) > 0 {
		return wrapped.Documents, nil
	}

	var bare []types.RequirementDocument
	if err := yaml.Unmarshal(data, &bare); err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return bare, nil
}

func (s *Store) ingestFile(ctx context.Context, name string, docs []types.RequirementDocument, modTime string, isUpdate bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if isUpdate {
		if _, err := tx.ExecContext(ctx, `DELETE FROM documents WHERE source_file = ?`, name); err != nil {
			return fmt.Errorf("deleting old documents: %w", err)
		}
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO documents
			(receiving_course, receiving_title, grp, group_title, group_logic_type, n_courses, section, logic, sending_courses, source_file)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, doc := range docs {
		receiving := coursecode.Normalize(doc.ReceivingCourse)
		if receiving == "" {
			continue
		}

		logicJSON, err := json.Marshal(doc.Logic)
		if err != nil {
			return fmt.Errorf("encoding logic for %s: %w", receiving, err)
		}

		// Index leaf codes even when the fixture omitted the sideband list.
		leaves := coursecode.NormalizeAll(doc.LeafCodes())
		leavesJSON, _ := json.Marshal(leaves)

		_, err = stmt.ExecContext(ctx,
			receiving, doc.ReceivingTitle,
			strings.TrimSpace(doc.Group), doc.GroupTitle, string(doc.GroupLogicType), doc.NCourses,
			strings.ToUpper(strings.TrimSpace(doc.Section)),
			string(logicJSON), string(leavesJSON), name,
		)
		if err != nil {
			return fmt.Errorf("inserting document %s: %w", receiving, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO indexing_status (source_file, file_mod_time) VALUES (?, ?)
		 ON CONFLICT(source_file) DO UPDATE SET file_mod_time=excluded.file_mod_time`,
		name, modTime,
	)
	if err != nil {
		return fmt.Errorf("updating indexing status: %w", err)
	}

	return tx.Commit()
}

// ingestCatalogs loads dataDir/catalog/sending.yaml and receiving.yaml when
// present. Missing catalog files are not an error; the engine tolerates an
// empty catalog.
func (s *Store) ingestCatalogs(ctx context.Context, w io.Writer) error {
	for _, side := range []string{sideSending, sideReceiving} {
		path := filepath.Join(s.dataDir, catalogDir, side+".yaml")
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return fmt.Errorf("reading catalog %s: %w", path, err)
		}

		var entries []types.CatalogEntry
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return fmt.Errorf("parsing catalog %s: %w", path, err)
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("beginning catalog transaction: %w", err)
		}
		for _, e := range entries {
			code := coursecode.Normalize(e.Code)
			if code == "" {
				continue
			}
			_, err := tx.ExecContext(ctx,
				`INSERT OR REPLACE INTO courses (code, side, title, is_honors, units) VALUES (?, ?, ?, ?, ?)`,
				code, side, e.Title, e.IsHonors, e.Units,
			)
			if err != nil {
				tx.Rollback()
				return fmt.Errorf("inserting catalog entry %s: %w", code, err)
			}
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing catalog: %w", err)
		}
		fmt.Fprintf(w, "catalog %s (%d courses)\n", side, len(entries))
	}
	return nil
}
