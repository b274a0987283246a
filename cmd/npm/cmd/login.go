package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	loginIdentity string
	loginSecret   string
	loginWipe     bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store a bearer token",
	Long: `Exchange credentials for a bearer token and persist it in the
local token store. Subsequent commands authenticate with this token.

The secret can be passed with --secret, via the NPM_SECRET environment
variable, or typed at the prompt when neither is set.

Example:
  npm login --identity admin@example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, store, err := newClient()
		if err != nil {
			return err
		}
		defer store.Close()

		secret := loginSecret
		if secret == "" {
			secret = os.Getenv("NPM_SECRET")
		}
		if secret == "" {
			fmt.Fprint(os.Stderr, "Password: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
			secret = strings.TrimRight(line, "\r\n")
		}

		tok, err := client.Tokens.Login(context.Background(), loginIdentity, secret, loginWipe)
		if err != nil {
			return err
		}

		fmt.Printf("Logged in; token expires %s\n", tok.Expires)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginIdentity, "identity", "", "login identity (email)")
	loginCmd.Flags().StringVar(&loginSecret, "secret", "", "login secret (prefer NPM_SECRET or the prompt)")
	loginCmd.Flags().BoolVar(&loginWipe, "wipe", false, "clear all stored tokens before storing the new one")
	_ = loginCmd.MarkFlagRequired("identity")
	rootCmd.AddCommand(loginCmd)
}
