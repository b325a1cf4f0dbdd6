package report

import (
	"testing"
	"time"

	"github.com/dagraham/timemate/internal/models"
)

func rec(id uint, account string, seconds int64, effective time.Time, memo string) models.TimeRecord {
	return models.TimeRecord{
		ID:             id,
		Status:         models.StatusPaused,
		AccruedSeconds: seconds,
		EffectiveAt:    effective,
		Memo:           memo,
		Account:        models.Account{Name: account},
	}
}

func at(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.Local)
}

func TestBuildWeekPartition(t *testing.T) {
	// 2024-W45 runs Monday Nov 4 through Sunday Nov 10.
	records := []models.TimeRecord{
		rec(1, "alpha", 3600, at(2024, time.November, 4, 9, 0), ""),
		rec(2, "beta", 1800, at(2024, time.November, 4, 14, 0), "standup"),
		rec(3, "alpha", 7200, at(2024, time.November, 8, 10, 0), ""),
		rec(4, "alpha", 900, at(2024, time.November, 11, 9, 0), ""),  // next week
		rec(5, "beta", 900, at(2024, time.November, 3, 23, 59), ""), // prior week
	}

	rep := BuildWeek(records, 2024, 45)

	if !rep.Start.Equal(at(2024, time.November, 4, 0, 0)) {
		t.Fatalf("week start = %v, want Nov 4", rep.Start)
	}
	if rep.Total != 3600+1800+7200 {
		t.Fatalf("total = %d, want %d", rep.Total, 3600+1800+7200)
	}
	if len(rep.Days) != 2 {
		t.Fatalf("days = %d, want 2", len(rep.Days))
	}

	// Concatenated entries must reproduce exactly the in-window records.
	var ids []uint
	for _, day := range rep.Days {
		for _, e := range day.Entries {
			ids = append(ids, e.RecordID)
		}
	}
	want := []uint{1, 2, 3}
	if len(ids) != len(want) {
		t.Fatalf("entries = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("entries = %v, want %v", ids, want)
		}
	}

	if rep.Days[0].Subtotal != 5400 {
		t.Fatalf("Nov 4 subtotal = %d, want 5400", rep.Days[0].Subtotal)
	}
}

func TestBuildMonthGroupsByAccount(t *testing.T) {
	records := []models.TimeRecord{
		rec(1, "beta", 1800, at(2024, time.November, 5, 9, 0), ""),
		rec(2, "alpha", 3600, at(2024, time.November, 5, 10, 0), ""),
		rec(3, "alpha", 1200, at(2024, time.November, 20, 16, 0), ""),
		rec(4, "alpha", 600, at(2024, time.December, 1, 9, 0), ""), // next month
	}

	rep := BuildMonth(records, 2024, time.November)

	if rep.Total != 1800+3600+1200 {
		t.Fatalf("total = %d", rep.Total)
	}
	if len(rep.Accounts) != 2 {
		t.Fatalf("accounts = %d, want 2", len(rep.Accounts))
	}
	// sorted by account name
	if rep.Accounts[0].AccountName != "alpha" || rep.Accounts[1].AccountName != "beta" {
		t.Fatalf("account order = %s, %s", rep.Accounts[0].AccountName, rep.Accounts[1].AccountName)
	}
	alpha := rep.Accounts[0]
	if alpha.Subtotal != 4800 {
		t.Fatalf("alpha subtotal = %d, want 4800", alpha.Subtotal)
	}
	if len(alpha.Days) != 2 {
		t.Fatalf("alpha days = %d, want 2", len(alpha.Days))
	}
}

func TestBuildAccountSubstringFilter(t *testing.T) {
	nov := Month{Year: 2024, Month: time.November}

	// 13 entries for Billing in November summing to 12.6 hours.
	var records []models.TimeRecord
	var total int64
	for i := 0; i < 12; i++ {
		records = append(records,
			rec(uint(i+1), "Billing", 3600, at(2024, time.November, i+1, 9, 0), ""))
		total += 3600
	}
	records = append(records,
		rec(13, "Billing", 2160, at(2024, time.November, 15, 14, 0), "wrap-up"))
	total += 2160

	records = append(records,
		rec(20, "Illustrations", 1800, at(2024, time.November, 3, 9, 0), ""),
		rec(21, "Research", 3600, at(2024, time.November, 3, 10, 0), ""))

	rep := BuildAccount(records, "ill", &nov, &nov)

	if len(rep.Sections) != 2 {
		t.Fatalf("sections = %d, want 2 (Billing, Illustrations)", len(rep.Sections))
	}
	if rep.Sections[0].AccountName != "Billing" || rep.Sections[1].AccountName != "Illustrations" {
		t.Fatalf("matched %s and %s", rep.Sections[0].AccountName, rep.Sections[1].AccountName)
	}

	billing := rep.Sections[0]
	if len(billing.Months) != 1 {
		t.Fatalf("billing months = %d, want 1", len(billing.Months))
	}
	month := billing.Months[0]
	if len(month.Entries) != 13 {
		t.Fatalf("billing entries = %d, want 13", len(month.Entries))
	}
	if month.Subtotal != total {
		t.Fatalf("subtotal = %d, want %d", month.Subtotal, total)
	}
	if FormatHours(month.Subtotal) != "12.6h" {
		t.Fatalf("rendered subtotal = %s, want 12.6h", FormatHours(month.Subtotal))
	}
}

func TestBuildAccountMonthModes(t *testing.T) {
	records := []models.TimeRecord{
		rec(1, "alpha", 3600, at(2024, time.September, 10, 9, 0), ""),
		rec(2, "alpha", 1800, at(2024, time.November, 10, 9, 0), ""),
	}

	// No start month: span every month the account has records in.
	rep := BuildAccount(records, "alpha", nil, nil)
	if len(rep.Sections) != 1 {
		t.Fatalf("sections = %d", len(rep.Sections))
	}
	months := rep.Sections[0].Months
	if len(months) != 3 { // Sep, Oct, Nov
		t.Fatalf("months = %d, want 3", len(months))
	}
	if months[1].Subtotal != 0 {
		t.Fatalf("empty October subtotal = %d", months[1].Subtotal)
	}

	// Start only: that single month.
	sep := Month{Year: 2024, Month: time.September}
	rep = BuildAccount(records, "alpha", &sep, nil)
	if got := len(rep.Sections[0].Months); got != 1 {
		t.Fatalf("single-month report has %d months", got)
	}

	// Start and end: inclusive range.
	oct := Month{Year: 2024, Month: time.October}
	rep = BuildAccount(records, "alpha", &sep, &oct)
	if got := len(rep.Sections[0].Months); got != 2 {
		t.Fatalf("range report has %d months, want 2", got)
	}
}

func TestEntryOrderingTieBreak(t *testing.T) {
	same := at(2024, time.November, 5, 9, 0)
	records := []models.TimeRecord{
		rec(9, "alpha", 60, same, ""),
		rec(3, "alpha", 60, same, ""),
		rec(7, "alpha", 60, same.Add(-time.Hour), ""),
	}

	rep := BuildWeek(records, 2024, 45)
	entries := rep.Days[0].Entries
	want := []uint{7, 3, 9}
	for i := range want {
		if entries[i].RecordID != want[i] {
			t.Fatalf("order = %v, want %v", entries, want)
		}
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0.0h"},
		{179, "0.0h"},
		{180, "0.1h"}, // half-up
		{360, "0.1h"},
		{3600, "1.0h"},
		{45360, "12.6h"},
		{86400, "24.0h"},
	}
	for _, tt := range tests {
		if got := FormatHours(tt.seconds); got != tt.want {
			t.Fatalf("FormatHours(%d) = %s, want %s", tt.seconds, got, tt.want)
		}
	}
}

func TestISOWeekStart(t *testing.T) {
	tests := []struct {
		year, week int
		want       time.Time
	}{
		{2024, 1, at(2024, time.January, 1, 0, 0)},
		{2024, 45, at(2024, time.November, 4, 0, 0)},
		{2026, 1, at(2025, time.December, 29, 0, 0)}, // week 1 starts in prior year
	}
	for _, tt := range tests {
		got := ISOWeekStart(tt.year, tt.week)
		if !got.Equal(tt.want) {
			t.Fatalf("ISOWeekStart(%d, %d) = %v, want %v", tt.year, tt.week, got, tt.want)
		}
		if y, w := got.ISOWeek(); y != tt.year || w != tt.week {
			t.Fatalf("round trip gave %d-W%d", y, w)
		}
	}
}
