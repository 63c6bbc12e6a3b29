// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package queryfilter recovers course codes and group/section references
// from free-text questions. The scan needs only tokenization with
// punctuation stripping and one-token lookahead, so the tokenizer is a
// small injected strategy rather than a linguistic pipeline.
package queryfilter

import "regexp"

// Tokenizer splits free text into scan tokens.
type Tokenizer interface {
	Tokens(text string) []string
}

// RegexTokenizer tokenizes on whitespace and punctuation, yielding bare
// alphanumeric runs. It is the default tokenizer.
type RegexTokenizer struct{}

var tokenPattern = regexp.MustCompile(`[A-Za-z0-9]+`)

// Tokens returns the alphanumeric tokens of text, in order.
func (RegexTokenizer) Tokens(text string) []string {
	return tokenPattern.FindAllString(text, -1)
}
