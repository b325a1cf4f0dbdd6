package commands

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dagraham/timemate/internal/clock"
	"github.com/dagraham/timemate/internal/config"
	"github.com/dagraham/timemate/internal/db"
	"github.com/dagraham/timemate/internal/logging"
	"github.com/dagraham/timemate/internal/timer"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "timemate",
	Short: "A CLI timer manager",
	Long: `timemate records time spent on named accounts through stoppable,
resumable timers and produces weekly, monthly and per-account reports.`,
}

// Shared application state, set up by initApp.
var (
	appCfg config.Config
	store  *db.Store
	svc    *timer.Service
	logger *log.Logger
)

// initApp resolves configuration, opens the store and wires the timer
// service. Panics on failure; nothing useful can run without the store.
func initApp() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	appCfg = cfg
	logger = logging.New(cfg.LogDir())

	s, err := db.Open(cfg.DatabasePath())
	if err != nil {
		panic(err)
	}
	store = s
	svc = timer.New(store, clock.Real{}, logger)
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("timemate %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.AddCommand(addAccountCmd)
	rootCmd.AddCommand(listAccountsCmd)
	rootCmd.AddCommand(addTimerCmd)
	rootCmd.AddCommand(listTimersCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(archiveOldCmd)
	rootCmd.AddCommand(reportWeekCmd)
	rootCmd.AddCommand(reportMonthCmd)
	rootCmd.AddCommand(reportAccountCmd)
	rootCmd.AddCommand(parseDurationCmd)
	rootCmd.AddCommand(parseDatetimeCmd)
	rootCmd.AddCommand(populateCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(setHomeCmd)
	rootCmd.AddCommand(versionCmd)
}
