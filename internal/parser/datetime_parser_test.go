package parser

import (
	"errors"
	"testing"
	"time"
)

func TestParseDateTimeLocal(t *testing.T) {
	got, err := ParseDateTime("2024-11-07 09:30", "")
	if err != nil {
		t.Fatalf("ParseDateTime: %v", err)
	}
	want := time.Date(2024, 11, 7, 9, 30, 0, 0, time.Local).Unix()
	if got != want {
		t.Fatalf("got %d, want %d", got, want)
	}
}

func TestParseDateTimeNamedZone(t *testing.T) {
	got, err := ParseDateTime("2024-11-07 09:30", "UTC")
	if err != nil {
		t.Fatalf("ParseDateTime: %v", err)
	}
	want := time.Date(2024, 11, 7, 9, 30, 0, 0, time.UTC).Unix()
	if got != want {
		t.Fatalf("got %d, want %d", got, want)
	}
}

func TestParseDateTimeFreeForm(t *testing.T) {
	// Month-name forms carry no day/month ambiguity.
	got, err := ParseDateTime("Nov 7, 2024 9:30am", "UTC")
	if err != nil {
		t.Fatalf("ParseDateTime: %v", err)
	}
	want := time.Date(2024, 11, 7, 9, 30, 0, 0, time.UTC).Unix()
	if got != want {
		t.Fatalf("got %d, want %d", got, want)
	}
}

func TestParseDateTimeMonthBeforeDay(t *testing.T) {
	// Ambiguous numeric dates read month first: 11/07 is November 7.
	got, err := ParseDateTime("11/07/2024", "UTC")
	if err != nil {
		t.Fatalf("ParseDateTime: %v", err)
	}
	want := time.Date(2024, 11, 7, 0, 0, 0, 0, time.UTC).Unix()
	if got != want {
		t.Fatalf("got %d, want %d", got, want)
	}
}

func TestParseDateTimeRejects(t *testing.T) {
	var parseErr *ParseError

	if _, err := ParseDateTime("", ""); !errors.As(err, &parseErr) {
		t.Fatalf("empty input: got %v, want ParseError", err)
	}
	if _, err := ParseDateTime("not a date at all", ""); !errors.As(err, &parseErr) {
		t.Fatalf("garbage input: got %v, want ParseError", err)
	}
	if _, err := ParseDateTime("2024-11-07", "Nowhere/Invalid"); !errors.As(err, &parseErr) {
		t.Fatalf("bad timezone: got %v, want ParseError", err)
	}
}
