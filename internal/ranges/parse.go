// Package ranges parses comma-separated integer lists and compresses them
// into run notation ("1, 3, 6-8").
package ranges

import (
	"slices"
	"strconv"
	"strings"

	"github.com/mydehq/numrange/internal/types"
)

// Parse parses "3, 1, 2, 2" into a sorted slice of distinct integers.
// Blank tokens are skipped. The first token that is not a base-10 integer
// aborts parsing with types.ErrInvalidToken.
func Parse(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return []int{}, nil
	}

	parts := strings.Split(s, ",")
	results := make([]int, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		num, err := strconv.Atoi(part)
		if err != nil {
			return nil, types.ErrInvalidToken{Token: part, Err: err}
		}
		results = append(results, num)
	}

	slices.Sort(results)
	return slices.Compact(results), nil
}
