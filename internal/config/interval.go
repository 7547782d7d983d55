// internal/config/interval.go
//
// Flexible cleanup-interval syntax.
//
// Operators write the log-cleanup interval however they think about it: a
// bare hour count (168), a product ("7x24"), days ("7d"), or hours
// ("168h").  All forms resolve to whole hours.  The parser lives outside
// LoggingConfig so it can be exercised with literal values.
package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseInterval resolves a raw scalar to an hour count.  Numeric values are
// used as-is; strings accept the "AxB", "Nd", and "Nh" forms
// case-insensitively, with surrounding whitespace tolerated.
func ParseInterval(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return nonNegative(v)
	case int64:
		return nonNegative(int(v))
	case uint64:
		return nonNegative(int(v))
	case float64:
		if v != float64(int(v)) {
			return 0, intervalErr(fmt.Sprintf("%v", v))
		}
		return nonNegative(int(v))
	case string:
		return parseIntervalString(v)
	}
	return 0, fmt.Errorf("cleanup interval must be a number or a string, got %T", value)
}

func parseIntervalString(raw string) (int, error) {
	s := strings.ToLower(strings.TrimSpace(raw))

	// "AxB": both sides are hours-per-unit factors, e.g. 7x24.
	if i := strings.IndexByte(s, 'x'); i >= 0 {
		left, lerr := strconv.Atoi(strings.TrimSpace(s[:i]))
		right, rerr := strconv.Atoi(strings.TrimSpace(s[i+1:]))
		if lerr != nil || rerr != nil || left < 0 || right < 0 {
			return 0, intervalErr(raw)
		}
		return left * right, nil
	}

	// "Nd": days.
	if strings.HasSuffix(s, "d") {
		n, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(s, "d")))
		if err != nil || n < 0 {
			return 0, intervalErr(raw)
		}
		return n * 24, nil
	}

	// "Nh": hours.
	if strings.HasSuffix(s, "h") {
		n, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(s, "h")))
		if err != nil || n < 0 {
			return 0, intervalErr(raw)
		}
		return n, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, intervalErr(raw)
	}
	return n, nil
}

func nonNegative(n int) (int, error) {
	if n < 0 {
		return 0, intervalErr(strconv.Itoa(n))
	}
	return n, nil
}

func intervalErr(input string) error {
	return fmt.Errorf("invalid cleanup interval %q: supported forms are 168, \"7x24\", \"7d\", and \"168h\"", input)
}
