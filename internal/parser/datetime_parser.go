package parser

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDateTime parses a free-form date/time expression and returns the
// instant as integer seconds since the epoch. Ambiguous day/month ordering
// resolves year-first and month-before-day, matching how dates like
// "2024-11-07" and "11/07/2024" are conventionally read. The expression is
// interpreted in the machine's local timezone unless tzName names an IANA
// zone, e.g. "America/New_York". Unparseable input fails with a ParseError.
func ParseDateTime(input string, tzName string) (int64, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, &ParseError{Input: input, Reason: "empty datetime"}
	}

	loc := time.Local
	if tzName != "" {
		var err error
		loc, err = time.LoadLocation(tzName)
		if err != nil {
			return 0, &ParseError{Input: tzName, Reason: "unknown timezone"}
		}
	}

	t, err := dateparse.ParseIn(trimmed, loc)
	if err != nil {
		return 0, &ParseError{Input: input, Reason: "unrecognized date/time"}
	}
	return t.Unix(), nil
}
