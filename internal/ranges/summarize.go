package ranges

import (
	"slices"
	"strings"

	"github.com/mydehq/numrange/internal/types"
)

// Separator joins rendered runs in a summary
const Separator = ", "

// Compress groups nums into runs of consecutive values.
// The input is copied and sorted but not deduplicated: a repeated value
// closes the current run and opens a new one.
func Compress(nums []int) []types.Range {
	if len(nums) == 0 {
		return nil
	}

	sorted := slices.Clone(nums)
	slices.Sort(sorted)

	var runs []types.Range
	start, end := sorted[0], sorted[0]
	for _, n := range sorted[1:] {
		if n == end+1 {
			end = n
			continue
		}
		runs = append(runs, types.Range{Start: start, End: end})
		start, end = n, n
	}
	runs = append(runs, types.Range{Start: start, End: end})

	return runs
}

// Summarize renders nums as "1, 3, 6-8, 12-15".
func Summarize(nums []int) string {
	return Join(Compress(nums))
}

// Join renders runs in order, separated by Separator.
func Join(runs []types.Range) string {
	parts := make([]string, len(runs))
	for i, r := range runs {
		parts[i] = r.String()
	}
	return strings.Join(parts, Separator)
}

// FormatRange renders a single run
func FormatRange(start, end int) string {
	return types.Range{Start: start, End: end}.String()
}
