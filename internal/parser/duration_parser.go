package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ParseError reports malformed duration or datetime text.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse '%s': %s", e.Input, e.Reason)
}

// unitSeconds maps a unit marker to its multiplier in seconds.
var unitSeconds = map[string]int64{
	"d": 86400,
	"h": 3600,
	"m": 60,
	"s": 1,
}

var durationTokenRegex = regexp.MustCompile(`(\d+)([dhms])`)

// ParseDuration converts a compact duration string into seconds.
// The input is a sequence of integer+unit tokens using d, h, m and s
// markers, in any order with each unit used at most once, e.g. "3h15s",
// "1d", "45m30s". Empty or malformed input fails with a ParseError.
func ParseDuration(input string) (int64, error) {
	trimmed := strings.TrimSpace(strings.ToLower(input))
	if trimmed == "" {
		return 0, &ParseError{Input: input, Reason: "empty duration"}
	}

	matches := durationTokenRegex.FindAllStringSubmatchIndex(trimmed, -1)
	if len(matches) == 0 {
		return 0, &ParseError{Input: input, Reason: "expected tokens like 3h, 15m, 30s or 1d"}
	}

	// Every character must belong to a token; gaps mean garbage in between.
	expected := 0
	for _, m := range matches {
		if m[0] != expected {
			return 0, &ParseError{Input: input, Reason: "unexpected text in duration"}
		}
		expected = m[1]
	}
	if expected != len(trimmed) {
		return 0, &ParseError{Input: input, Reason: "unexpected trailing text"}
	}

	var total int64
	seen := map[string]bool{}
	for _, m := range matches {
		value := trimmed[m[2]:m[3]]
		unit := trimmed[m[4]:m[5]]
		if seen[unit] {
			return 0, &ParseError{Input: input, Reason: fmt.Sprintf("unit '%s' given more than once", unit)}
		}
		seen[unit] = true

		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, &ParseError{Input: input, Reason: fmt.Sprintf("invalid number '%s'", value)}
		}
		total += n * unitSeconds[unit]
	}
	return total, nil
}
