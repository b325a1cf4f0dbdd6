package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/dagraham/timemate/internal/report"
	"github.com/dagraham/timemate/internal/tui"
)

var startCmd = &cobra.Command{
	Use:   "start [timer-id]",
	Short: "Start a timer",
	Long: `Start a timer. Any running timer is paused first. A timer last
started on a previous day is retired and replaced by a fresh timer for the
same account, so the started timer may have a new id.

Examples:
  timemate start 42         # Start timer with live UI
  timemate start 42 --no-ui # Start timer without UI`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		recordID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid timer ID '%s'\n", args[0])
			return
		}

		result, err := svc.Start(uint(recordID))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if result.Stopped != nil {
			fmt.Printf("⏸️  Paused timer #%d (%s accrued)\n",
				result.Stopped.ID, report.FormatHours(result.Stopped.AccruedSeconds))
		}
		if result.RolledOver {
			fmt.Printf("🗓️  Timer #%d was from a previous day; created timer #%d in its place\n",
				result.Archived.ID, result.Record.ID)
		}

		record, err := store.GetRecord(result.Record.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI {
			fmt.Printf("⏱️  Started timer #%d for %s\n", record.ID, record.Account.Name)
			fmt.Printf("Started at: %s\n", record.StartedAt.Format("15:04:05"))
		} else {
			if err := tui.RunTimerTUI(svc, *record); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		}
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop [timer-id]",
	Short: "Stop a running timer",
	Long:  "Stop the given timer, or the currently running timer when no id is given.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()

		if len(args) == 1 {
			recordID, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				fmt.Printf("Error: invalid timer ID '%s'\n", args[0])
				return
			}
			record, err := svc.Stop(uint(recordID))
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Printf("⏹️  Stopped timer #%d for %s\n", record.ID, record.Account.Name)
			fmt.Printf("Accrued today: %s\n", report.FormatHours(record.AccruedSeconds))
			return
		}

		record, err := svc.StopRunning()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if record == nil {
			fmt.Println("No running timer")
			return
		}
		fmt.Printf("⏹️  Stopped timer #%d for %s\n", record.ID, record.Account.Name)
		fmt.Printf("Accrued today: %s\n", report.FormatHours(record.AccruedSeconds))
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the running timer",
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		record, err := store.RunningRecord()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if record == nil {
			fmt.Println("No running timer")
			return
		}

		elapsed := time.Since(*record.StartedAt)
		total := record.AccruedSeconds + int64(elapsed.Seconds())
		fmt.Printf("⏱️  Timer #%d running for %s\n", record.ID, record.Account.Name)
		if record.Memo != "" {
			fmt.Printf("Memo: %s\n", record.Memo)
		}
		fmt.Printf("Started at: %s\n", record.StartedAt.Format("15:04:05"))
		fmt.Printf("Today so far: %s\n", report.FormatHours(total))
	},
}

func init() {
	startCmd.Flags().Bool("no-ui", false, "Start timer without the live UI")
}
