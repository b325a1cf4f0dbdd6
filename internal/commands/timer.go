package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dagraham/timemate/internal/models"
	"github.com/dagraham/timemate/internal/report"
)

var addTimerCmd = &cobra.Command{
	Use:   "add-timer [account]",
	Short: "Add a paused timer for an account",
	Long: `Add a timer for an account, creating the account if the name is new.
The account may be given by name or by numeric id.

Examples:
  timemate add-timer "client a"
  timemate add-timer 3 --memo "code review"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		account, err := store.ResolveAccount(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		memo, _ := cmd.Flags().GetString("memo")
		record := models.TimeRecord{
			AccountID:   account.ID,
			Status:      models.StatusPaused,
			EffectiveAt: time.Now(),
			Memo:        memo,
		}
		if err := store.CreateRecord(&record); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Added timer #%d for %s\n", record.ID, account.Name)
	},
}

var listTimersCmd = &cobra.Command{
	Use:     "list-timers",
	Aliases: []string{"timers", "ls"},
	Short:   "List timers",
	Long:    "List running and paused timers. Use --all to include inactive timers.",
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		all, _ := cmd.Flags().GetBool("all")

		records, err := store.ListRecords(!all)
		if err != nil {
			fmt.Printf("Error fetching timers: %v\n", err)
			return
		}
		if len(records) == 0 {
			fmt.Println("No timers found. Use 'timemate add-timer <account>' to create one.")
			return
		}

		now := time.Now()
		fmt.Printf("%-4s %-20s %-8s %-7s %-12s %s\n", "ID", "ACCOUNT", "STATUS", "TIME", "DATE", "MEMO")
		for _, record := range records {
			elapsed := record.AccruedSeconds
			if record.Running() && record.StartedAt != nil {
				elapsed += now.Unix() - record.StartedAt.Unix()
			}

			name := record.Account.Name
			if len(name) > 18 {
				name = name[:15] + "..."
			}

			fmt.Printf("%-4d %-20s %-8s %-7s %-12s %s\n",
				record.ID,
				name,
				record.Status,
				report.FormatHours(elapsed),
				record.EffectiveAt.Format("06-01-02"),
				record.Memo)
		}
	},
}

func init() {
	addTimerCmd.Flags().StringP("memo", "m", "", "Memo describing the time spent")
	listTimersCmd.Flags().Bool("all", false, "Include inactive timers")
}
