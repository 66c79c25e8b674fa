package main

import (
	"strings"
)

// Separators holds the three delimiter characters of an 835 file.
// Trading partners occasionally deviate from the standard set, so all
// three are configurable per ingestion.
type Separators struct {
	Segment   rune // segment terminator
	Element   rune // element separator
	Component rune // composite component separator
}

// DefaultSeparators returns the delimiter set used by the vast
// majority of remittance files: ~ | ^
func DefaultSeparators() Separators {
	return Separators{Segment: '~', Element: '|', Component: '^'}
}

// Segment is one terminator-delimited record: the verbatim text (for
// the audit trail) plus its trimmed fields.
type Segment struct {
	Text   string
	Fields []string
}

// Tokenize splits raw remittance text into segments, and each segment
// into trimmed fields. Empty or whitespace-only segments are dropped.
// No field-count validation happens here: a truncated segment passes
// through as-is and downstream access must go through fieldAt.
func Tokenize(text string, seps Separators) []Segment {
	var segments []Segment
	for _, raw := range strings.Split(text, string(seps.Segment)) {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		fields := strings.Split(trimmed, string(seps.Element))
		for i, f := range fields {
			fields[i] = strings.TrimSpace(f)
		}
		segments = append(segments, Segment{Text: trimmed, Fields: fields})
	}
	return segments
}

// SplitComposite decomposes a composite field (e.g. the SVC01
// qualifier^code^modifier triple) into its trimmed components. An
// empty field decomposes to nil.
func SplitComposite(field string, sep rune) []string {
	if strings.TrimSpace(field) == "" {
		return nil
	}
	parts := strings.Split(field, string(sep))
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// fieldAt is the bounds-checked field accessor. Out-of-range access
// means "field absent" and yields the empty string; truncated segments
// are expected input, not an error.
func fieldAt(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return fields[i]
}

// componentAt applies the same absent-not-error rule to composite
// components.
func componentAt(components []string, i int) string {
	if i < 0 || i >= len(components) {
		return ""
	}
	return components[i]
}
