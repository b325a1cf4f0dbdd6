package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dagraham/timemate/internal/report"
)

var archiveCmd = &cobra.Command{
	Use:     "archive [timer-id]",
	Aliases: []string{"a"},
	Short:   "Archive a timer",
	Long:    "Retire a timer permanently. A running timer is stopped first; an archived timer cannot be restarted.",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		recordID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid timer ID '%s'\n", args[0])
			return
		}

		record, err := svc.Archive(uint(recordID))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("🗃️  Archived timer #%d for %s (%s accrued)\n",
			record.ID, record.Account.Name, report.FormatHours(record.AccruedSeconds))
	},
}

var archiveOldCmd = &cobra.Command{
	Use:   "archive-old",
	Short: "Archive all timers from previous days",
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		count, err := svc.ArchiveBefore()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if count == 0 {
			fmt.Println("No timers from previous days")
			return
		}
		fmt.Printf("🗃️  Archived %d timer(s) from previous days\n", count)
	},
}
