package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var auditExpand []string

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Read the change audit trail",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, store, err := newClient()
		if err != nil {
			return err
		}
		defer store.Close()

		entries, page, err := client.AuditLog.List(context.Background(), auditExpand, "")
		if err != nil {
			return err
		}
		if err := printJSON(entries); err != nil {
			return err
		}
		if page != nil {
			fmt.Fprintf(os.Stderr, "total=%d offset=%d limit=%d\n", page.Total, page.Offset, page.Limit)
		}
		return nil
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the per-type host count report",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, store, err := newClient()
		if err != nil {
			return err
		}
		defer store.Close()

		report, err := client.Reports.Hosts(context.Background())
		if err != nil {
			return err
		}
		return printJSON(report)
	},
}

func init() {
	auditCmd.Flags().StringSliceVar(&auditExpand, "expand", nil, "relations to expand (e.g. user)")
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(reportCmd)
}
