package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	proxymanager "github.com/constanine/nginx-proxy-manager"
)

var (
	hostType   string
	hostExpand []string
	hostQuery  string
)

var hostsCmd = &cobra.Command{
	Use:   "hosts",
	Short: "Manage nginx hosts",
	Long: `Manage nginx hosts of all four types: proxy, redirection, stream
and dead (404) hosts. Select the type with --type.`,
}

var hostsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List hosts",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, store, err := newClient()
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := context.Background()
		var (
			items any
			page  *proxymanager.Pagination
		)
		switch hostType {
		case "proxy":
			items, page, err = client.ProxyHosts.List(ctx, hostExpand, hostQuery)
		case "redirection":
			items, page, err = client.RedirectionHosts.List(ctx, hostExpand, hostQuery)
		case "stream":
			items, page, err = client.Streams.List(ctx, hostExpand, hostQuery)
		case "dead":
			items, page, err = client.DeadHosts.List(ctx, hostExpand, hostQuery)
		default:
			return fmt.Errorf("unknown host type %q (want proxy, redirection, stream or dead)", hostType)
		}
		if err != nil {
			return err
		}

		if err := printJSON(items); err != nil {
			return err
		}
		if page != nil {
			fmt.Fprintf(os.Stderr, "total=%d offset=%d limit=%d\n", page.Total, page.Offset, page.Limit)
		}
		return nil
	},
}

var hostsDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a host",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return hostAction(args[0], func(ctx context.Context, c *proxymanager.Client, id int) error {
			switch hostType {
			case "proxy":
				return c.ProxyHosts.Delete(ctx, id)
			case "redirection":
				return c.RedirectionHosts.Delete(ctx, id)
			case "stream":
				return c.Streams.Delete(ctx, id)
			case "dead":
				return c.DeadHosts.Delete(ctx, id)
			}
			return fmt.Errorf("unknown host type %q", hostType)
		})
	},
}

var hostsEnableCmd = &cobra.Command{
	Use:   "enable [id]",
	Short: "Enable a host",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return hostAction(args[0], func(ctx context.Context, c *proxymanager.Client, id int) error {
			switch hostType {
			case "proxy":
				return c.ProxyHosts.Enable(ctx, id)
			case "redirection":
				return c.RedirectionHosts.Enable(ctx, id)
			case "stream":
				return c.Streams.Enable(ctx, id)
			case "dead":
				return c.DeadHosts.Enable(ctx, id)
			}
			return fmt.Errorf("unknown host type %q", hostType)
		})
	},
}

var hostsDisableCmd = &cobra.Command{
	Use:   "disable [id]",
	Short: "Disable a host",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return hostAction(args[0], func(ctx context.Context, c *proxymanager.Client, id int) error {
			switch hostType {
			case "proxy":
				return c.ProxyHosts.Disable(ctx, id)
			case "redirection":
				return c.RedirectionHosts.Disable(ctx, id)
			case "stream":
				return c.Streams.Disable(ctx, id)
			case "dead":
				return c.DeadHosts.Disable(ctx, id)
			}
			return fmt.Errorf("unknown host type %q", hostType)
		})
	},
}

var hostsCertsCmd = &cobra.Command{
	Use:   "set-certs [id] [cert-file] [key-file]",
	Short: "Upload custom certificates for a host",
	Long: `Upload a certificate and key as a multipart form.

Proxy hosts use the negotiated JSON upload endpoint; redirection hosts
use the raw upload endpoint. Other host types do not accept uploads.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}

		cert, err := os.Open(args[1])
		if err != nil {
			return err
		}
		defer cert.Close()
		key, err := os.Open(args[2])
		if err != nil {
			return err
		}
		defer key.Close()

		form, contentType, err := proxymanager.CertificateForm(cert, key)
		if err != nil {
			return err
		}

		client, store, err := newClient()
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := context.Background()
		switch hostType {
		case "proxy":
			raw, err := client.ProxyHosts.SetCertificates(ctx, id, form, contentType)
			if err != nil {
				return err
			}
			fmt.Println(strings.TrimSpace(string(raw)))
		case "redirection":
			text, err := client.RedirectionHosts.UploadCertificates(ctx, id, form, contentType)
			if err != nil {
				return err
			}
			fmt.Println(strings.TrimSpace(text))
		default:
			return fmt.Errorf("host type %q does not accept certificate uploads", hostType)
		}
		return nil
	},
}

// hostAction parses the id argument, builds a client and runs fn against it.
func hostAction(idArg string, fn func(context.Context, *proxymanager.Client, int) error) error {
	id, err := strconv.Atoi(idArg)
	if err != nil {
		return fmt.Errorf("invalid id %q", idArg)
	}

	client, store, err := newClient()
	if err != nil {
		return err
	}
	defer store.Close()

	return fn(context.Background(), client, id)
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	hostsCmd.PersistentFlags().StringVar(&hostType, "type", "proxy", "host type: proxy, redirection, stream or dead")
	hostsListCmd.Flags().StringSliceVar(&hostExpand, "expand", nil, "relations to expand (e.g. owner,certificate)")
	hostsListCmd.Flags().StringVar(&hostQuery, "query", "", "raw filter string")

	hostsCmd.AddCommand(hostsListCmd)
	hostsCmd.AddCommand(hostsDeleteCmd)
	hostsCmd.AddCommand(hostsEnableCmd)
	hostsCmd.AddCommand(hostsDisableCmd)
	hostsCmd.AddCommand(hostsCertsCmd)
	rootCmd.AddCommand(hostsCmd)
}
