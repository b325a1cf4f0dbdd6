package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addAccountCmd = &cobra.Command{
	Use:   "add-account [name]",
	Short: "Add a new account",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		account, err := store.CreateAccount(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Added account #%d: %s\n", account.ID, account.Name)
	},
}

var listAccountsCmd = &cobra.Command{
	Use:     "list-accounts",
	Aliases: []string{"accounts"},
	Short:   "List all accounts",
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		accounts, err := store.ListAccounts()
		if err != nil {
			fmt.Printf("Error fetching accounts: %v\n", err)
			return
		}
		if len(accounts) == 0 {
			fmt.Println("No accounts found. Use 'timemate add-account \"name\"' to create one.")
			return
		}

		fmt.Printf("%-4s %s\n", "ID", "NAME")
		for _, account := range accounts {
			fmt.Printf("%-4d %s\n", account.ID, account.Name)
		}
	},
}
