package parser

import (
	"errors"
	"testing"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"3h15s", 10815},
		{"1d", 86400},
		{"45m", 2700},
		{"90s", 90},
		{"1h30m", 5400},
		{"15s3h", 10815}, // any order
		{"1d2h3m4s", 86400 + 7200 + 180 + 4},
		{"  2H  ", 7200}, // case and whitespace tolerant
		{"0s", 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			if err != nil {
				t.Fatalf("ParseDuration(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("ParseDuration(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDurationRejects(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"abc",
		"3x",
		"h",
		"3h15", // trailing number without unit
		"3h3h", // unit repeated
		"1.5h", // no fractions
		"3h xyz",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDuration(input)
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("ParseDuration(%q): got %v, want ParseError", input, err)
			}
		})
	}
}
