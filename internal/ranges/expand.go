package ranges

import (
	"slices"
	"strconv"
	"strings"

	"github.com/mydehq/numrange/internal/types"
)

// MaxExpand caps the number of values Expand will produce
const MaxExpand = 1 << 20

// Expand parses "1-3, 5, -3--1" back into a sorted slice of distinct integers.
func Expand(s string) ([]int, error) {
	results := []int{}
	parts := strings.Split(s, ",")

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		start, end, err := splitRange(part)
		if err != nil {
			return nil, err
		}

		// Normalize reversed ranges
		if start > end {
			start, end = end, start
		}

		// Compare in uint64 so that extreme bounds cannot overflow the count.
		if uint64(end-start) >= uint64(MaxExpand-len(results)) {
			return nil, types.ErrInvalidRange{Item: part, Reason: "too large"}
		}

		for i := start; ; i++ {
			results = append(results, i)
			if i == end {
				break
			}
		}
	}

	slices.Sort(results)
	return slices.Compact(results), nil
}

// splitRange splits "a-b" on the first hyphen that follows a digit, so a
// leading minus on either bound is kept with its number.
func splitRange(item string) (int, int, error) {
	sep := -1
	for i := 1; i < len(item); i++ {
		if item[i] != '-' {
			continue
		}
		if left := strings.TrimRight(item[:i], " \t"); left != "" && isDigit(left[len(left)-1]) {
			sep = i
			break
		}
	}

	if sep < 0 {
		n, err := strconv.Atoi(item)
		if err != nil {
			return 0, 0, types.ErrInvalidRange{Item: item}
		}
		return n, n, nil
	}

	start, err1 := strconv.Atoi(strings.TrimSpace(item[:sep]))
	end, err2 := strconv.Atoi(strings.TrimSpace(item[sep+1:]))
	if err1 != nil || err2 != nil {
		return 0, 0, types.ErrInvalidRange{Item: item}
	}
	return start, end, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
