package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var sizeUnits = map[byte]int64{
	'B': 1,
	'K': 1 << 10,
	'M': 1 << 20,
	'G': 1 << 30,
	'T': 1 << 40,
}

// ParseSize turns "4096", "512K", "1.5M" or "2g" into a byte count.
// Units are binary (K = 1024). Negative, non-finite and out-of-range
// values are errors.
func ParseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty size string")
	}

	unit := int64(1)
	digits := s
	if u, ok := sizeUnits[strings.ToUpper(s[len(s)-1:])[0]]; ok {
		unit = u
		digits = s[:len(s)-1]
	}
	if digits == "" {
		return 0, fmt.Errorf("invalid size: %q", s)
	}

	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("negative size: %q", s)
		}
		if n > math.MaxInt64/unit {
			return 0, fmt.Errorf("size out of range: %q", s)
		}
		return n * unit, nil
	}

	f, err := strconv.ParseFloat(digits, 64)
	switch {
	case err != nil && !errors.Is(err, strconv.ErrRange):
		return 0, fmt.Errorf("invalid size: %q", s)
	case math.IsNaN(f):
		return 0, fmt.Errorf("invalid size: %q", s)
	case f < 0:
		return 0, fmt.Errorf("negative size: %q", s)
	case math.IsInf(f, 0) || f*float64(unit) >= math.MaxInt64:
		return 0, fmt.Errorf("size out of range: %q", s)
	}
	return int64(f * float64(unit)), nil
}

