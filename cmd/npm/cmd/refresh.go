package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Refresh the current bearer token",
	Long: `Exchange the current token for a fresh one and overwrite it in the
local token store. Fails and clears the store when the backend does not
return a token.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, store, err := newClient()
		if err != nil {
			return err
		}
		defer store.Close()

		tok, err := client.Tokens.Refresh(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("Token refreshed; expires %s\n", tok.Expires)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear all stored tokens",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := newClient()
		if err != nil {
			return err
		}
		defer store.Close()

		store.ClearAll()
		fmt.Println("Logged out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(logoutCmd)
}
