package app

import (
	"fmt"

	"github.com/andyle182810/gappwrite/health"
	"github.com/andyle182810/gappwrite/httpclient"
	"github.com/spf13/cobra"
)

func NewVersionCommand(opts *GlobalOptions) *cobra.Command {
	var server bool

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "version",
		Short: "Print the SDK version",
		Long:  "Print the SDK version and response format. With --server, also ask the server for its version.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if _, err := fmt.Fprintf(out, "SDK:             %s\nResponse format: %s\n",
				httpclient.SDKVersion, httpclient.ResponseFormat); err != nil {
				return err
			}

			if !server {
				return nil
			}

			type versionResponse struct {
				Version string `json:"version"`
			}

			resp, err := httpclient.DecodeJSON[versionResponse](health.New(opts.Client()).GetVersion(cmd.Context()))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(out, "Server:          %s\n", resp.Version)

			return err
		},
	}

	cmd.Flags().BoolVar(&server, "server", false, "also show the server version")

	return cmd
}
