// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package queryfilter

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/transfer-engine/internal/coursecode"
	"github.com/pdiddy/transfer-engine/pkg/types"
)

// Filters holds the course codes recovered from one query, split by which
// side of the transfer relationship they belong to. Field names keep the
// wire names used by downstream consumers (uc = receiving, ccc = sending).
type Filters struct {
	// ReceivingCourses are codes found in the receiving catalog only.
	ReceivingCourses []string `json:"uc_course" yaml:"uc_course"`

	// SendingCourses are codes found in the sending catalog, including
	// codes present in both catalogs (the sending side wins collisions).
	SendingCourses []string `json:"ccc_courses" yaml:"ccc_courses"`
}

// Extractor scans queries for course-code mentions using an injected
// tokenizer.
type Extractor struct {
	tok Tokenizer
}

// NewExtractor returns an Extractor using tok, or the RegexTokenizer when
// tok is nil.
func NewExtractor(tok Tokenizer) *Extractor {
	if tok == nil {
		tok = RegexTokenizer{}
	}
	return &Extractor{tok: tok}
}

// coordination tokens are skipped without resetting the subject prefix, so
// "CSE 8A and 8B" keeps CSE active for 8B.
var coordination = map[string]bool{
	"AND": true, "OR": true, "WITH": true, "TO": true, "FOR": true,
}

var (
	subjectToken = regexp.MustCompile(`^[A-Z]{2,5}$`)
	numberToken  = regexp.MustCompile(`^\d+[A-Z]{0,2}$`)
	fusedToken   = regexp.MustCompile(`^[A-Z]{2,5}\d+[A-Z]{0,2}$`)
)

// Filters recovers course codes mentioned in a query and classifies each
// against the two catalogs. A bare subject token followed by a number token
// forms a code and updates the active prefix; a number token alone
// continues the active prefix ("CSE 8A and 8B" → CSE 8A, CSE 8B). Codes in
// neither catalog are discarded; codes in both classify as sending-side.
// Output lists are deduplicated and sorted.
func (e *Extractor) Filters(query string, sendingCatalog, receivingCatalog map[string]bool) Filters {
	tokens := e.tok.Tokens(strings.ToUpper(query))

	receiving := map[string]bool{}
	sending := map[string]bool{}
	lastPrefix := ""

	for i, tok := range tokens {
		if coordination[tok] {
			continue
		}

		var code string
		switch {
		case subjectToken.MatchString(tok) && i+1 < len(tokens) && numberToken.MatchString(tokens[i+1]):
			code = tok + " " + tokens[i+1]
			lastPrefix = tok
		case numberToken.MatchString(tok) && lastPrefix != "":
			code = lastPrefix + " " + tok
		case fusedToken.MatchString(tok):
			code = coursecode.Normalize(tok)
			lastPrefix = coursecode.Subject(code)
		default:
			continue
		}

		inSending := sendingCatalog[code]
		inReceiving := receivingCatalog[code]
		switch {
		case inSending:
			sending[code] = true
		case inReceiving:
			receiving[code] = true
		}
	}

	return Filters{
		ReceivingCourses: sortedCodes(receiving),
		SendingCourses:   sortedCodes(sending),
	}
}

var (
	groupPattern   = regexp.MustCompile(`(?i)\bgroup\s*(\d+)\b`)
	sectionPattern = regexp.MustCompile(`(?i)\bgroup\s*(\d+)[\s,;]*section\s*([A-Za-z])\b`)
)

// GroupMatches returns the documents belonging to a group mentioned as
// "group N" in the query, or nil when no group is mentioned.
func GroupMatches(query string, docs []types.RequirementDocument) []types.RequirementDocument {
	m := groupPattern.FindStringSubmatch(query)
	if m == nil {
		return nil
	}
	group := m[1]

	var out []types.RequirementDocument
	for _, doc := range docs {
		if strings.TrimSpace(doc.Group) == group {
			out = append(out, doc)
		}
	}
	return out
}

// SectionMatches returns the documents belonging to a "group N section L"
// mention, matching the section letter case-insensitively.
func SectionMatches(query string, docs []types.RequirementDocument) []types.RequirementDocument {
	m := sectionPattern.FindStringSubmatch(query)
	if m == nil {
		return nil
	}
	group, section := m[1], strings.ToUpper(m[2])

	var out []types.RequirementDocument
	for _, doc := range docs {
		if strings.TrimSpace(doc.Group) == group &&
			strings.ToUpper(strings.TrimSpace(doc.Section)) == section {
			out = append(out, doc)
		}
	}
	return out
}

// ReverseMatches returns the documents whose sending-course lists mention
// any course appearing verbatim in the query.
func ReverseMatches(query string, docs []types.RequirementDocument) []types.RequirementDocument {
	upper := strings.ToUpper(query)

	var out []types.RequirementDocument
	for _, doc := range docs {
		for _, code := range doc.LeafCodes() {
			if norm := coursecode.Normalize(code); norm != "" && strings.Contains(upper, norm) {
				out = append(out, doc)
				break
			}
		}
	}
	return out
}

// Prefixes harvests the unique subject prefixes from a code set, sorted.
// Callers use it to seed prefix-aware scanning of follow-up questions.
func Prefixes(catalog map[string]bool) []string {
	set := map[string]bool{}
	for code := range catalog {
		if subject := coursecode.Subject(code); subject != "" {
			set[subject] = true
		}
	}
	return sortedCodes(set)
}

func sortedCodes(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	codes := make([]string, 0, len(set))
	for c := range set {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}
