// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textproc normalizes case descriptions for vectorization and
// extracts participant names from the raw text.
package textproc

import (
	"regexp"
	"strings"
)

// Normalize lowercases text, replaces every rune that is not an ASCII letter
// or whitespace with a space, and collapses whitespace runs. The result
// contains only lowercase letters separated by single spaces, with no
// leading or trailing space. Normalize is idempotent.
func Normalize(text string) string {
	lowered := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' || r == '\v' {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// participantPattern matches "person" followed by a single-letter token, or
// any two consecutive word tokens. Alternation order matters: the literal
// "person X" form is preferred when both could match at the same position.
var participantPattern = regexp.MustCompile(`(?i)person\s+[A-Za-z]|[A-Za-z]+\s+[A-Za-z]+`)

// canonicalParticipants are checked as literal substrings of the raw text,
// in this order.
var canonicalParticipants = []struct {
	pattern *regexp.Regexp
	display string
}{
	{regexp.MustCompile(`(?i)person\s+a`), "Person A"},
	{regexp.MustCompile(`(?i)person\s+b`), "Person B"},
	{regexp.MustCompile(`(?i)person\s+c`), "Person C"},
}

// Participants scans the raw (non-normalized) case text for participant
// names. The generic pattern pass collects matches in encounter order,
// skipping the canonical "person a/b/c" forms and case-insensitive
// duplicates. A second pass appends the canonical "Person A"/"Person B"/
// "Person C" forms for each one detected anywhere in the text — appended
// unconditionally, so duplicates across the two passes can occur. That
// overlap is deliberate; callers rely on the canonical entries being
// present whenever the literal form appears.
func Participants(raw string) []string {
	var parties []string

	for _, match := range participantPattern.FindAllString(raw, -1) {
		lowered := strings.ToLower(match)
		if lowered == "person a" || lowered == "person b" || lowered == "person c" {
			continue
		}
		if containsFold(parties, lowered) {
			continue
		}
		parties = append(parties, match)
	}

	for _, c := range canonicalParticipants {
		if c.pattern.MatchString(raw) {
			parties = append(parties, c.display)
		}
	}

	return parties
}

// containsFold reports whether any entry's lowercase form equals lowered.
func containsFold(parties []string, lowered string) bool {
	for _, p := range parties {
		if strings.ToLower(p) == lowered {
			return true
		}
	}
	return false
}
