// Package extractor implements the email extraction core: a fixed pattern
// scan over arbitrary text with case-insensitive, order-preserving
// deduplication of the matches.
package extractor

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// emailPattern matches addresses of the form local@domain.tld: the local
// part allows letters, digits and ._%+-, the domain allows letters, digits,
// dots and hyphens, and the TLD is two or more letters. Word boundaries on
// both ends keep surrounding punctuation out of the match.
var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// Result holds the outcome of one extraction pass.
type Result struct {
	// Emails are the unique addresses in first-occurrence order
	Emails []string
	// Count is the number of unique addresses
	Count int
	// TextLength is the length of the input text in characters
	TextLength int
}

// FindEmails returns the unique email addresses in text, in the order they
// first appear. Deduplication is case-insensitive and keeps the casing of
// the first occurrence: "John@Example.COM" followed by "john@example.com"
// yields only "John@Example.COM". The returned slice is never nil.
func FindEmails(text string) []string {
	matches := emailPattern.FindAllString(text, -1)

	seen := make(map[string]struct{}, len(matches))
	unique := make([]string, 0, len(matches))
	for _, email := range matches {
		lower := strings.ToLower(email)
		if _, dup := seen[lower]; dup {
			continue
		}
		seen[lower] = struct{}{}
		unique = append(unique, email)
	}
	return unique
}

// Extract runs the email pattern over text and reports the unique matches
// together with the match count and the character length of the input.
func Extract(text string) Result {
	emails := FindEmails(text)
	return Result{
		Emails:     emails,
		Count:      len(emails),
		TextLength: utf8.RuneCountInString(text),
	}
}

// MergeEmails combines already-extracted email lists into one, applying the
// same case-insensitive first-occurrence rule as FindEmails across group
// boundaries. Group order is preserved. The returned slice is never nil.
func MergeEmails(groups ...[]string) []string {
	merged := make([]string, 0)
	seen := make(map[string]struct{})
	for _, group := range groups {
		for _, email := range group {
			lower := strings.ToLower(email)
			if _, dup := seen[lower]; dup {
				continue
			}
			seen[lower] = struct{}{}
			merged = append(merged, email)
		}
	}
	return merged
}
