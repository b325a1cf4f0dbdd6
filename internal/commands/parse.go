package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dagraham/timemate/internal/parser"
)

var parseDurationCmd = &cobra.Command{
	Use:   "parse-duration [text]",
	Short: "Convert a duration like 3h15s to seconds",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		seconds, err := parser.ParseDuration(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("%d\n", seconds)
	},
}

var parseDatetimeCmd = &cobra.Command{
	Use:   "parse-datetime [text]",
	Short: "Convert a date/time expression to epoch seconds",
	Long: `Parse a free-form date/time expression and print the epoch seconds.
Interpreted in the local timezone unless --tz names an IANA zone.

Examples:
  timemate parse-datetime "2024-11-07 09:30"
  timemate parse-datetime "Nov 7 2024 9:30am" --tz America/New_York`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tz, _ := cmd.Flags().GetString("tz")
		seconds, err := parser.ParseDateTime(args[0], tz)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("%d  (%s)\n", seconds, time.Unix(seconds, 0).Format("2006-01-02 15:04 MST"))
	},
}

func init() {
	parseDatetimeCmd.Flags().String("tz", "", "IANA timezone name, e.g. America/New_York")
}
