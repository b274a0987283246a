package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	userExpand []string
	userQuery  string
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage backend accounts",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, store, err := newClient()
		if err != nil {
			return err
		}
		defer store.Close()

		users, page, err := client.Users.List(context.Background(), userExpand, userQuery)
		if err != nil {
			return err
		}
		if err := printJSON(users); err != nil {
			return err
		}
		if page != nil {
			fmt.Fprintf(os.Stderr, "total=%d offset=%d limit=%d\n", page.Total, page.Offset, page.Limit)
		}
		return nil
	},
}

var usersMeCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the account the current token belongs to",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, store, err := newClient()
		if err != nil {
			return err
		}
		defer store.Close()

		me, err := client.Users.Me(context.Background(), userExpand)
		if err != nil {
			return err
		}
		return printJSON(me)
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}

		client, store, err := newClient()
		if err != nil {
			return err
		}
		defer store.Close()

		return client.Users.Delete(context.Background(), id)
	},
}

func init() {
	usersCmd.PersistentFlags().StringSliceVar(&userExpand, "expand", nil, "relations to expand (e.g. permissions)")
	usersListCmd.Flags().StringVar(&userQuery, "query", "", "raw filter string")

	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersMeCmd)
	usersCmd.AddCommand(usersDeleteCmd)
	rootCmd.AddCommand(usersCmd)
}
