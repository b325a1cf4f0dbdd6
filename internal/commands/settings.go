package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dagraham/timemate/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show application information",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("timemate %s\n", version)
		fmt.Printf("home:     %s\n", cfg.Home)
		fmt.Printf("database: %s\n", cfg.DatabasePath())
		fmt.Printf("logs:     %s\n", cfg.LogDir())
	},
}

var setHomeCmd = &cobra.Command{
	Use:   "set-home [path]",
	Short: "Set or clear the home directory override",
	Long: `Persist a home directory for the database and logs. With no
argument, the override is cleared and the default home is used again. The
TIMEMATE_HOME environment variable takes precedence over both.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		home := ""
		if len(args) == 1 {
			home = args[0]
		}
		if err := config.SetHome(home); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if home == "" {
			fmt.Println("Home directory override cleared")
			return
		}
		fmt.Printf("Home directory set to %s\n", home)
	},
}
