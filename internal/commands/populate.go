package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dagraham/timemate/internal/models"
)

// seedData is the populate file layout, shared by JSON and YAML.
type seedData struct {
	Accounts []struct {
		AccountName string `json:"account_name" yaml:"account_name"`
	} `json:"accounts" yaml:"accounts"`
	Times []struct {
		AccountName string `json:"account_name" yaml:"account_name"`
		Memo        string `json:"memo" yaml:"memo"`
		Timedelta   int64  `json:"timedelta" yaml:"timedelta"`
		Datetime    int64  `json:"datetime" yaml:"datetime"`
	} `json:"times" yaml:"times"`
}

var populateCmd = &cobra.Command{
	Use:   "populate",
	Short: "Populate accounts and timers from a seed file",
	Long: `Load accounts and time records from a JSON or YAML file. Each time
entry references its account by name and carries accrued seconds (timedelta)
and an effective epoch timestamp (datetime).`,
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		path, _ := cmd.Flags().GetString("file")
		format, _ := cmd.Flags().GetString("format")
		if path == "" {
			fmt.Println("Error: no input file provided, use -f to specify one")
			return
		}

		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", path, err)
			return
		}

		var seed seedData
		switch strings.ToLower(format) {
		case "json":
			err = json.Unmarshal(data, &seed)
		case "yaml":
			err = yaml.Unmarshal(data, &seed)
		default:
			fmt.Printf("Error: unknown format '%s', use json or yaml\n", format)
			return
		}
		if err != nil {
			fmt.Printf("Error loading %s data: %v\n", format, err)
			return
		}

		for _, account := range seed.Accounts {
			if _, err := store.CreateAccount(account.AccountName); err != nil {
				fmt.Printf("⚠️  Skipping account '%s': %v\n", account.AccountName, err)
			}
		}

		created := 0
		for _, entry := range seed.Times {
			account, err := store.ResolveAccount(entry.AccountName)
			if err != nil {
				fmt.Printf("⚠️  Skipping timer for '%s': %v\n", entry.AccountName, err)
				continue
			}
			effective := time.Now()
			if entry.Datetime != 0 {
				effective = time.Unix(entry.Datetime, 0)
			}
			record := models.TimeRecord{
				AccountID:      account.ID,
				Status:         models.StatusPaused,
				AccruedSeconds: entry.Timedelta,
				EffectiveAt:    effective,
				Memo:           entry.Memo,
			}
			if err := store.CreateRecord(&record); err != nil {
				fmt.Printf("⚠️  Skipping timer for '%s': %v\n", entry.AccountName, err)
				continue
			}
			created++
		}

		fmt.Printf("✅ Populated %d account(s) and %d timer(s)\n", len(seed.Accounts), created)
	},
}

func init() {
	populateCmd.Flags().StringP("file", "f", "", "File containing seed data")
	populateCmd.Flags().String("format", "json", "Format of the input file: json or yaml")
}
