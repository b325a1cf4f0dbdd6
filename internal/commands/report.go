package commands

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dagraham/timemate/internal/report"
)

var (
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	durationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dateStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	accountStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
)

var reportWeekCmd = &cobra.Command{
	Use:   "report-week [date|YYYY-Www]",
	Short: "Weekly report for the week containing a date",
	Long: `Report all time accrued in one week, grouped by day across all accounts.
The week may be given as an ISO week like 2024-W47 or as any date inside it.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		isoYear, isoWeek, err := parseWeekArg(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		records, err := store.ListRecords(false)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		rep := report.BuildWeek(records, isoYear, isoWeek)
		fmt.Printf("\n%s (%s to %s)\n",
			headingStyle.Render("Weekly Report"),
			rep.Start.Format("2006-01-02"),
			rep.End.Format("2006-01-02"))
		fmt.Printf("Total: %s\n", durationStyle.Render(report.FormatHours(rep.Total)))

		for _, day := range rep.Days {
			fmt.Printf("\n%s - %s\n",
				dateStyle.Render(day.Date.Format("Mon Jan 2")),
				durationStyle.Render(report.FormatHours(day.Subtotal)))
			for _, entry := range day.Entries {
				fmt.Printf("  %s %s%s %s\n",
					durationStyle.Render(report.FormatHours(entry.Seconds)),
					entry.EffectiveAt.Format("15:04"),
					memoSuffix(entry.Memo),
					accountStyle.Render(entry.AccountName))
			}
		}
	},
}

var reportMonthCmd = &cobra.Command{
	Use:   "report-month [YYYY-MM]",
	Short: "Monthly report grouped by account",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		month, err := parseMonthArg(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		records, err := store.ListRecords(false)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		rep := report.BuildMonth(records, month.Year, month.Month)
		fmt.Printf("\n%s %s - %s\n",
			headingStyle.Render("Monthly Report"),
			dateStyle.Render(rep.Month.Start().Format("Jan 2006")),
			durationStyle.Render(report.FormatHours(rep.Total)))

		for _, group := range rep.Accounts {
			fmt.Printf("\n%s - %s\n",
				accountStyle.Render(group.AccountName),
				durationStyle.Render(report.FormatHours(group.Subtotal)))
			for _, day := range group.Days {
				for _, entry := range day.Entries {
					fmt.Printf("  %s %s%s\n",
						durationStyle.Render(report.FormatHours(entry.Seconds)),
						entry.EffectiveAt.Format("02 15:04"),
						memoSuffix(entry.Memo))
				}
			}
		}
	},
}

var reportAccountCmd = &cobra.Command{
	Use:   "report-account [name-filter]",
	Short: "Per-account report grouped by month",
	Long: `Report accounts whose name contains the filter (case-insensitive).
Without --from the report spans all months with records; with only --from it
covers that single month; with --from and --to the inclusive range.

Examples:
  timemate report-account ill
  timemate report-account ill --from 2024-11
  timemate report-account client --from 2024-09 --to 2024-11`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()

		var start, end *report.Month
		if from, _ := cmd.Flags().GetString("from"); from != "" {
			m, err := parseMonthArg(from)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			start = &m
		}
		if to, _ := cmd.Flags().GetString("to"); to != "" {
			if start == nil {
				fmt.Println("Error: --to requires --from")
				return
			}
			m, err := parseMonthArg(to)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if m.Before(*start) {
				fmt.Println("Error: ending month cannot be before starting month")
				return
			}
			end = &m
		}

		records, err := store.ListRecords(false)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		rep := report.BuildAccount(records, args[0], start, end)
		if len(rep.Sections) == 0 {
			fmt.Printf("No accounts matching '%s' with records\n", args[0])
			return
		}

		for _, section := range rep.Sections {
			fmt.Printf("\n%s - %s\n",
				headingStyle.Render(section.AccountName),
				durationStyle.Render(report.FormatHours(section.Total)))
			for _, month := range section.Months {
				fmt.Printf("\n%s %s - %s\n",
					accountStyle.Render(section.AccountName),
					dateStyle.Render(month.Month.Start().Format("Jan 2006")),
					durationStyle.Render(report.FormatHours(month.Subtotal)))
				for _, entry := range month.Entries {
					fmt.Printf("  %s %s%s\n",
						durationStyle.Render(report.FormatHours(entry.Seconds)),
						entry.EffectiveAt.Format("02 15:04"),
						memoSuffix(entry.Memo))
				}
			}
		}
	},
}

// parseWeekArg accepts "2024-W47" or any date inside the week.
func parseWeekArg(arg string) (int, int, error) {
	var year, week int
	if n, err := fmt.Sscanf(arg, "%d-W%d", &year, &week); err == nil && n == 2 {
		if week < 1 || week > 53 {
			return 0, 0, fmt.Errorf("week must be between 1 and 53")
		}
		return year, week, nil
	}

	t, err := time.ParseInLocation("2006-01-02", arg, time.Local)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid week '%s': use YYYY-Www or YYYY-MM-DD", arg)
	}
	y, w := t.ISOWeek()
	return y, w, nil
}

// parseMonthArg parses YYYY-MM.
func parseMonthArg(arg string) (report.Month, error) {
	t, err := time.ParseInLocation("2006-01", arg, time.Local)
	if err != nil {
		return report.Month{}, fmt.Errorf("invalid month '%s': use YYYY-MM", arg)
	}
	return report.MonthOf(t), nil
}

// memoSuffix renders a memo in parentheses, or nothing.
func memoSuffix(memo string) string {
	if memo == "" {
		return ""
	}
	return fmt.Sprintf(" (%s)", memo)
}

func init() {
	reportAccountCmd.Flags().String("from", "", "Starting month (YYYY-MM)")
	reportAccountCmd.Flags().String("to", "", "Ending month (YYYY-MM)")
}
