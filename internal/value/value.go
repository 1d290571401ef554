// Package value parses user supplied integers. Values are signed 32-bit;
// anything wider is rejected instead of being truncated or widened.
package value

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalid    = errors.New("not an integer")
	ErrOutOfRange = errors.New("integer out of 32-bit range")
)

// Parse reads a base 10 integer, allowing a leading sign and surrounding
// whitespace.
func Parse(s string) (int32, error) {
	s = strings.TrimSpace(s)

	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%q: %w", s, ErrOutOfRange)
		}
		return 0, fmt.Errorf("%q: %w", s, ErrInvalid)
	}

	return int32(v), nil
}

// ParseAll parses every element of ss, stopping at the first failure.
// Empty elements are skipped so that "1,,2" and trailing commas are accepted.
func ParseAll(ss []string) ([]int32, error) {
	out := make([]int32, 0, len(ss))
	for i, s := range ss {
		if strings.TrimSpace(s) == "" {
			continue
		}

		v, err := Parse(s)
		if err != nil {
			return nil, fmt.Errorf("item [%d]: %w", i, err)
		}
		out = append(out, v)
	}

	return out, nil
}
