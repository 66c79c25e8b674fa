package main

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected [][]string
	}{
		{
			name:  "basic segments",
			input: "CLP|ABC123|1|100.00~SVC|HC^A0428|100.00~",
			expected: [][]string{
				{"CLP", "ABC123", "1", "100.00"},
				{"SVC", "HC^A0428", "100.00"},
			},
		},
		{
			name:  "empty and whitespace-only segments dropped",
			input: "~  ~CLP|X~\n~PLB|Y~   \t~",
			expected: [][]string{
				{"CLP", "X"},
				{"PLB", "Y"},
			},
		},
		{
			name:  "fields trimmed",
			input: "CLP| ABC123 |1 | 100.00~",
			expected: [][]string{
				{"CLP", "ABC123", "1", "100.00"},
			},
		},
		{
			name:  "truncated segment passes through",
			input: "CLP~DTM|472~",
			expected: [][]string{
				{"CLP"},
				{"DTM", "472"},
			},
		},
		{
			name:  "trailing empty fields preserved",
			input: "CLP|ABC123|1|||~",
			expected: [][]string{
				{"CLP", "ABC123", "1", "", "", ""},
			},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments := Tokenize(tt.input, DefaultSeparators())
			if len(segments) != len(tt.expected) {
				t.Fatalf("expected %d segments, got %d", len(tt.expected), len(segments))
			}
			for i, seg := range segments {
				if !reflect.DeepEqual(seg.Fields, tt.expected[i]) {
					t.Errorf("segment %d: expected %v, got %v", i, tt.expected[i], seg.Fields)
				}
			}
		})
	}
}

func TestTokenizeCustomSeparators(t *testing.T) {
	seps := Separators{Segment: '\n', Element: '*', Component: ':'}
	segments := Tokenize("CLP*ABC*1\nSVC*HC:A0428*50", seps)

	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if segments[0].Fields[1] != "ABC" {
		t.Errorf("expected field 'ABC', got %q", segments[0].Fields[1])
	}

	components := SplitComposite(segments[1].Fields[1], seps.Component)
	if len(components) != 2 || components[1] != "A0428" {
		t.Errorf("expected components [HC A0428], got %v", components)
	}
}

func TestTokenizePreservesSegmentText(t *testing.T) {
	segments := Tokenize("  CLP|ABC123|1~SVC|HC^A0428|100.00~", DefaultSeparators())
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if segments[0].Text != "CLP|ABC123|1" {
		t.Errorf("expected verbatim segment text, got %q", segments[0].Text)
	}
	if segments[1].Text != "SVC|HC^A0428|100.00" {
		t.Errorf("expected verbatim segment text, got %q", segments[1].Text)
	}
}

func TestSplitComposite(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		expected []string
	}{
		{"qualifier code modifier", "HC^A0428^RJ", []string{"HC", "A0428", "RJ"}},
		{"qualifier only", "HC", []string{"HC"}},
		{"empty field", "", nil},
		{"whitespace-only field", "   ", nil},
		{"empty trailing component", "HC^", []string{"HC", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitComposite(tt.field, '^')
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestFieldAt(t *testing.T) {
	fields := []string{"CLP", "ABC123", "1"}

	if got := fieldAt(fields, 1); got != "ABC123" {
		t.Errorf("expected 'ABC123', got %q", got)
	}
	if got := fieldAt(fields, 3); got != "" {
		t.Errorf("expected empty string for out-of-range index, got %q", got)
	}
	if got := fieldAt(fields, -1); got != "" {
		t.Errorf("expected empty string for negative index, got %q", got)
	}
	if got := fieldAt(nil, 0); got != "" {
		t.Errorf("expected empty string for nil segment, got %q", got)
	}
}
