// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/transfer-engine/internal/coursecode"
	"github.com/pdiddy/transfer-engine/pkg/types"
)

const documentColumns = `receiving_course, receiving_title, grp, group_title, group_logic_type, n_courses, section, logic, sending_courses`

// FindByReceivingCourse returns the articulation document for one receiving
// course, or nil when no document exists. The input is normalized before
// lookup.
func (s *Store) FindByReceivingCourse(ctx context.Context, course string) (*types.RequirementDocument, error) {
	code := coursecode.Normalize(course)
	row := s.db.QueryRowContext(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE receiving_course = ? LIMIT 1`, code)

	doc, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("looking up %s: %w", code, err)
	}
	return doc, nil
}

// FindByGroup returns every document in a requirement group, ordered by
// section then receiving course.
func (s *Store) FindByGroup(ctx context.Context, group string) ([]types.RequirementDocument, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE grp = ? ORDER BY section, receiving_course`,
		strings.TrimSpace(group))
	if err != nil {
		return nil, fmt.Errorf("querying group %s: %w", group, err)
	}
	return scanDocuments(rows)
}

// FindBySection returns the documents of one section within a group.
func (s *Store) FindBySection(ctx context.Context, group, section string) ([]types.RequirementDocument, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE grp = ? AND section = ? ORDER BY receiving_course`,
		strings.TrimSpace(group), strings.ToUpper(strings.TrimSpace(section)))
	if err != nil {
		return nil, fmt.Errorf("querying group %s section %s: %w", group, section, err)
	}
	return scanDocuments(rows)
}

// FindBySendingCourse returns every document whose logic tree mentions the
// sending course, using the indexed leaf-code sideband.
func (s *Store) FindBySendingCourse(ctx context.Context, course string) ([]types.RequirementDocument, error) {
	code := coursecode.Normalize(course)
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+documentColumns+` FROM documents
		 WHERE EXISTS (SELECT 1 FROM json_each(documents.sending_courses) WHERE json_each.value = ?)
		 ORDER BY receiving_course`, code)
	if err != nil {
		return nil, fmt.Errorf("querying sending course %s: %w", code, err)
	}
	return scanDocuments(rows)
}

// All returns every stored document, ordered by group, section, then
// receiving course.
func (s *Store) All(ctx context.Context) ([]types.RequirementDocument, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+documentColumns+` FROM documents ORDER BY grp, section, receiving_course`)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	return scanDocuments(rows)
}

// Search runs a full-text query over receiving course codes and titles,
// returning documents ranked by FTS5 relevance, capped at the configured
// result limit.
func (s *Store) Search(ctx context.Context, query string) ([]types.RequirementDocument, error) {
	ftsQuery := escapeFTSQuery(query)
	if ftsQuery == "" {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+qualifiedColumns()+` FROM documents_fts f
		 JOIN documents d ON d.rowid = f.rowid
		 WHERE documents_fts MATCH ?
		 ORDER BY rank LIMIT ?`, ftsQuery, s.maxResults)
	if err != nil {
		return nil, fmt.Errorf("searching documents: %w", err)
	}
	return scanDocuments(rows)
}

// escapeFTSQuery quotes each term so punctuation in user queries cannot
// reach the FTS5 query parser.
func escapeFTSQuery(query string) string {
	terms := strings.Fields(query)
	quoted := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ReplaceAll(t, `"`, "")
		if t != "" {
			quoted = append(quoted, `"`+t+`"`)
		}
	}
	return strings.Join(quoted, " ")
}

func qualifiedColumns() string {
	cols := strings.Split(documentColumns, ", ")
	for i, c := range cols {
		cols[i] = "d." + c
	}
	return strings.Join(cols, ", ")
}

// Catalogs returns the sending and receiving course-code sets used for
// query-filter classification.
func (s *Store) Catalogs(ctx context.Context) (sending, receiving map[string]bool, err error) {
	rows, err := s.db.QueryContext(ctx, `SELECT code, side FROM courses`)
	if err != nil {
		return nil, nil, fmt.Errorf("querying catalogs: %w", err)
	}
	defer rows.Close()

	sending = map[string]bool{}
	receiving = map[string]bool{}
	for rows.Next() {
		var code, side string
		if err := rows.Scan(&code, &side); err != nil {
			return nil, nil, fmt.Errorf("scanning catalog row: %w", err)
		}
		switch side {
		case sideSending:
			sending[code] = true
		case sideReceiving:
			receiving[code] = true
		}
	}
	return sending, receiving, rows.Err()
}

// Lookup returns the catalog entry for a course code, preferring the
// sending-side entry on collision, or nil when the code is unknown.
func (s *Store) Lookup(ctx context.Context, course string) (*types.CatalogEntry, error) {
	code := coursecode.Normalize(course)
	row := s.db.QueryRowContext(ctx,
		`SELECT code, title, is_honors, units FROM courses WHERE code = ?
		 ORDER BY CASE side WHEN 'sending' THEN 0 ELSE 1 END LIMIT 1`, code)

	var e types.CatalogEntry
	err := row.Scan(&e.Code, &e.Title, &e.IsHonors, &e.Units)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("looking up catalog entry %s: %w", code, err)
	}
	return &e, nil
}

// LookupFunc adapts the store to the types.CatalogLookup signature used by
// the renderer.
func (s *Store) LookupFunc(ctx context.Context) types.CatalogLookup {
	return func(code string) (types.CatalogEntry, bool) {
		e, err := s.Lookup(ctx, code)
		if err != nil || e == nil {
			return types.CatalogEntry{}, false
		}
		return *e, true
	}
}

// Stats reports document and catalog counts for the stats mage target.
func (s *Store) Stats(ctx context.Context) (documents, courses int, err error) {
	if err = s.db.QueryRowContext(ctx, `SELECT count(*) FROM documents`).Scan(&documents); err != nil {
		return 0, 0, fmt.Errorf("counting documents: %w", err)
	}
	if err = s.db.QueryRowContext(ctx, `SELECT count(*) FROM courses`).Scan(&courses); err != nil {
		return 0, 0, fmt.Errorf("counting courses: %w", err)
	}
	return documents, courses, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*types.RequirementDocument, error) {
	var (
		doc        types.RequirementDocument
		logicType  sql.NullString
		section    sql.NullString
		group      sql.NullString
		groupTitle sql.NullString
		title      sql.NullString
		nCourses   sql.NullInt64
		logicJSON  string
		leavesJSON sql.NullString
	)
	err := row.Scan(&doc.ReceivingCourse, &title, &group, &groupTitle, &logicType, &nCourses, &section, &logicJSON, &leavesJSON)
	if err != nil {
		return nil, err
	}

	doc.ReceivingTitle = title.String
	doc.Group = group.String
	doc.GroupTitle = groupTitle.String
	doc.GroupLogicType = types.GroupLogicType(logicType.String)
	doc.NCourses = int(nCourses.Int64)
	doc.Section = section.String

	if err := json.Unmarshal([]byte(logicJSON), &doc.Logic); err != nil {
		return nil, fmt.Errorf("decoding logic for %s: %w", doc.ReceivingCourse, err)
	}
	if leavesJSON.Valid && leavesJSON.String != "" {
		if err := json.Unmarshal([]byte(leavesJSON.String), &doc.SendingCourses); err != nil {
			return nil, fmt.Errorf("decoding sending courses for %s: %w", doc.ReceivingCourse, err)
		}
	}
	return &doc, nil
}

func scanDocuments(rows *sql.Rows) ([]types.RequirementDocument, error) {
	defer rows.Close()

	var docs []types.RequirementDocument
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning document row: %w", err)
		}
		docs = append(docs, *doc)
	}
	return docs, rows.Err()
}
