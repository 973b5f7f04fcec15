package ranges

import (
	"errors"
	"slices"
	"testing"

	"github.com/mydehq/numrange/internal/types"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []int
	}{
		{
			name:     "sample summary",
			input:    "1, 3, 6-8, 12-15",
			expected: []int{1, 3, 6, 7, 8, 12, 13, 14, 15},
		},
		{
			name:     "negative bounds",
			input:    "-3--1, 1-2",
			expected: []int{-3, -2, -1, 1, 2},
		},
		{
			name:     "range crossing zero",
			input:    "-1-1",
			expected: []int{-1, 0, 1},
		},
		{
			name:     "reversed range",
			input:    "5-3",
			expected: []int{3, 4, 5},
		},
		{
			name:     "spaces around hyphen",
			input:    "1 - 3",
			expected: []int{1, 2, 3},
		},
		{
			name:     "overlapping items",
			input:    "1, 1-2, 2-3, 3, 5, 5",
			expected: []int{1, 2, 3, 5},
		},
		{
			name:     "empty",
			input:    "",
			expected: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(got, tt.expected) {
				t.Errorf("Expand(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestExpand_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		item  string
	}{
		{name: "letter", input: "1, a", item: "a"},
		{name: "dangling hyphen", input: "5-", item: "5-"},
		{name: "three bounds", input: "1-2-3", item: "1-2-3"},
		{name: "double minus", input: "--1", item: "--1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Expand(tt.input)
			var rangeErr types.ErrInvalidRange
			if !errors.As(err, &rangeErr) {
				t.Fatalf("expected ErrInvalidRange, got %v", err)
			}
			if rangeErr.Item != tt.item {
				t.Errorf("Item = %q, want %q", rangeErr.Item, tt.item)
			}
		})
	}
}

func TestExpand_TooLarge(t *testing.T) {
	_, err := Expand("0-2000000")
	var rangeErr types.ErrInvalidRange
	if !errors.As(err, &rangeErr) || rangeErr.Reason != "too large" {
		t.Fatalf("expected too large error, got %v", err)
	}

	_, err = Expand("-9223372036854775807-9223372036854775807")
	if err == nil {
		t.Fatal("expected error for full int range")
	}
}
