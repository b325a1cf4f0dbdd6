// Package report aggregates time records into weekly, monthly and
// per-account summaries. Aggregation is pure: it consumes records already
// loaded from the store, so it works the same over any storage engine.
package report

import (
	"sort"
	"strings"
	"time"

	"github.com/dagraham/timemate/internal/models"
)

// Entry is a single time record as it appears in a report.
type Entry struct {
	RecordID    uint
	AccountName string
	Seconds     int64
	EffectiveAt time.Time
	Memo        string
}

// DayGroup collects a day's entries with a subtotal.
type DayGroup struct {
	Date     time.Time // local midnight
	Entries  []Entry
	Subtotal int64
}

// WeekReport summarizes the seven days starting at Start, across accounts.
type WeekReport struct {
	Start time.Time // Monday, local midnight
	End   time.Time // Sunday, local midnight
	Days  []DayGroup
	Total int64
}

// AccountGroup collects one account's entries within a month report.
type AccountGroup struct {
	AccountName string
	Days        []DayGroup
	Subtotal    int64
}

// MonthReport summarizes a calendar month grouped by account, then day.
type MonthReport struct {
	Month    Month
	Accounts []AccountGroup
	Total    int64
}

// MonthGroup collects one month's entries within an account report.
type MonthGroup struct {
	Month    Month
	Entries  []Entry
	Subtotal int64
}

// AccountSection is one matched account's month-by-month history.
type AccountSection struct {
	AccountName string
	Months      []MonthGroup
	Total       int64
}

// AccountReport lists every account whose name matched the filter.
type AccountReport struct {
	Filter   string
	Sections []AccountSection
}

// toEntry converts a record; reports include records of any status, and a
// record contributes only its accrued seconds (a still-running interval is
// not counted until it stops).
func toEntry(r models.TimeRecord) Entry {
	return Entry{
		RecordID:    r.ID,
		AccountName: r.Account.Name,
		Seconds:     r.AccruedSeconds,
		EffectiveAt: r.EffectiveAt,
		Memo:        r.Memo,
	}
}

// sortEntries orders by effective timestamp ascending, breaking ties by
// record id ascending for determinism.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].EffectiveAt.Equal(entries[j].EffectiveAt) {
			return entries[i].EffectiveAt.Before(entries[j].EffectiveAt)
		}
		return entries[i].RecordID < entries[j].RecordID
	})
}

func sum(entries []Entry) int64 {
	var total int64
	for _, e := range entries {
		total += e.Seconds
	}
	return total
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// groupByDay splits sorted entries into per-day groups, ascending.
func groupByDay(entries []Entry) []DayGroup {
	sortEntries(entries)
	var days []DayGroup
	for _, e := range entries {
		day := dayOf(e.EffectiveAt)
		if len(days) == 0 || !days[len(days)-1].Date.Equal(day) {
			days = append(days, DayGroup{Date: day})
		}
		g := &days[len(days)-1]
		g.Entries = append(g.Entries, e)
		g.Subtotal += e.Seconds
	}
	return days
}

// BuildWeek summarizes the ISO week (isoYear, isoWeek) by calendar day
// across all accounts.
func BuildWeek(records []models.TimeRecord, isoYear, isoWeek int) WeekReport {
	start := ISOWeekStart(isoYear, isoWeek)
	end := start.AddDate(0, 0, 7)

	var entries []Entry
	for _, r := range records {
		if !r.EffectiveAt.Before(start) && r.EffectiveAt.Before(end) {
			entries = append(entries, toEntry(r))
		}
	}

	return WeekReport{
		Start: start,
		End:   start.AddDate(0, 0, 6),
		Days:  groupByDay(entries),
		Total: sum(entries),
	}
}

// BuildMonth summarizes a calendar month grouped by account and then by day.
func BuildMonth(records []models.TimeRecord, year int, month time.Month) MonthReport {
	m := Month{Year: year, Month: month}

	byAccount := map[string][]Entry{}
	for _, r := range records {
		if m.Contains(r.EffectiveAt) {
			byAccount[r.Account.Name] = append(byAccount[r.Account.Name], toEntry(r))
		}
	}

	names := make([]string, 0, len(byAccount))
	for name := range byAccount {
		names = append(names, name)
	}
	sort.Strings(names)

	rep := MonthReport{Month: m}
	for _, name := range names {
		entries := byAccount[name]
		group := AccountGroup{
			AccountName: name,
			Days:        groupByDay(entries),
			Subtotal:    sum(entries),
		}
		rep.Accounts = append(rep.Accounts, group)
		rep.Total += group.Subtotal
	}
	return rep
}

// BuildAccount reports all accounts whose name contains filter,
// case-insensitively, grouped by month. With no start month the report
// spans every month the account has records in; with only a start month it
// covers that single month; with both it covers the inclusive range.
func BuildAccount(records []models.TimeRecord, filter string, start, end *Month) AccountReport {
	needle := strings.ToLower(filter)

	byAccount := map[string][]Entry{}
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Account.Name), needle) {
			byAccount[r.Account.Name] = append(byAccount[r.Account.Name], toEntry(r))
		}
	}

	names := make([]string, 0, len(byAccount))
	for name := range byAccount {
		names = append(names, name)
	}
	sort.Strings(names)

	rep := AccountReport{Filter: filter}
	for _, name := range names {
		entries := byAccount[name]
		sortEntries(entries)

		first, last := monthSpan(entries, start, end)
		if first == nil {
			continue
		}

		section := AccountSection{AccountName: name}
		for m := *first; !last.Before(m); m = m.Next() {
			group := MonthGroup{Month: m}
			for _, e := range entries {
				if m.Contains(e.EffectiveAt) {
					group.Entries = append(group.Entries, e)
					group.Subtotal += e.Seconds
				}
			}
			section.Months = append(section.Months, group)
			section.Total += group.Subtotal
		}
		rep.Sections = append(rep.Sections, section)
	}
	return rep
}

// monthSpan resolves the month range for one account section.
func monthSpan(entries []Entry, start, end *Month) (*Month, *Month) {
	if start != nil {
		first := *start
		last := first
		if end != nil {
			last = *end
		}
		return &first, &last
	}
	if len(entries) == 0 {
		return nil, nil
	}
	// entries are sorted ascending by effective time
	first := MonthOf(entries[0].EffectiveAt)
	last := MonthOf(entries[len(entries)-1].EffectiveAt)
	return &first, &last
}
