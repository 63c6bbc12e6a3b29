// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package coursecode canonicalizes raw course-code strings into the
// "SUBJECT NUMBER[SUFFIX]" form used for every comparison in the engine.
// Codes arrive from noisy free text, so normalization degrades instead of
// failing: input that cannot be parsed comes back stripped and uppercased.
package coursecode

import (
	"regexp"
	"strings"
)

// codePattern matches a 2-5 letter subject followed by a number with up to
// two trailing letters (e.g. "CIS21JA", "MATH2BH").
var codePattern = regexp.MustCompile(`^([A-Z]{2,5})(\d+[A-Z]{0,2})`)

// Normalize canonicalizes a raw course code: uppercase, strip everything
// that is not a letter or digit, then split subject and number
// ("cis-21ja:" → "CIS 21JA"). Malformed input returns the stripped
// uppercased string unchanged. Normalize is pure and idempotent.
func Normalize(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(raw) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	stripped := b.String()

	m := codePattern.FindStringSubmatch(stripped)
	if m == nil {
		return stripped
	}
	return m[1] + " " + m[2]
}

// NormalizeAll normalizes every code in raw, preserving order.
func NormalizeAll(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		out = append(out, Normalize(r))
	}
	return out
}

// Set normalizes raw codes into a membership set.
func Set(raw []string) map[string]bool {
	set := make(map[string]bool, len(raw))
	for _, r := range raw {
		set[Normalize(r)] = true
	}
	return set
}

// Subject returns the subject prefix of a code ("CIS 22A" → "CIS"), or ""
// when the code has no subject/number split.
func Subject(code string) string {
	norm := Normalize(code)
	if i := strings.IndexByte(norm, ' '); i > 0 {
		return norm[:i]
	}
	return ""
}

// IsHonors reports whether a code carries the trailing honors suffix.
func IsHonors(code string) bool {
	return strings.HasSuffix(Normalize(code), "H")
}

// Base strips the honors suffix, if any ("MATH 1AH" → "MATH 1A").
func Base(code string) string {
	norm := Normalize(code)
	if strings.HasSuffix(norm, "H") {
		return strings.TrimSuffix(norm, "H")
	}
	return norm
}

// IsHonorsPair reports whether exactly one of the two codes is the honors
// variant of the other.
func IsHonorsPair(a, b string) bool {
	ha, hb := IsHonors(a), IsHonors(b)
	if ha == hb {
		return false
	}
	return Base(a) == Base(b)
}
