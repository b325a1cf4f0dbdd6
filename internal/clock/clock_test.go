package clock

import (
	"testing"
	"time"
)

func TestSameDay(t *testing.T) {
	beforeMidnight := time.Date(2024, 11, 7, 23, 59, 59, 0, time.Local)
	afterMidnight := time.Date(2024, 11, 8, 0, 0, 1, 0, time.Local)

	if !SameDay(beforeMidnight, beforeMidnight.Add(-8*time.Hour)) {
		t.Fatalf("same date must compare equal")
	}
	if SameDay(beforeMidnight, afterMidnight) {
		t.Fatalf("two seconds across midnight are different dates")
	}
}

func TestStartOfDay(t *testing.T) {
	noon := time.Date(2024, 11, 7, 12, 34, 56, 0, time.Local)
	got := StartOfDay(noon)
	want := time.Date(2024, 11, 7, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("StartOfDay = %v, want %v", got, want)
	}
}

func TestFakeAdvance(t *testing.T) {
	f := &Fake{Current: time.Date(2024, 11, 7, 9, 0, 0, 0, time.Local)}
	before := f.Now()
	f.Advance(90 * time.Second)
	if got := f.Now().Sub(before); got != 90*time.Second {
		t.Fatalf("advanced %v, want 90s", got)
	}
}
