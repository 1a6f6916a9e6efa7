package app

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/andyle182810/gappwrite/health"
	"github.com/spf13/cobra"
)

var healthChecks = map[string]func(*health.Service, context.Context) (*http.Response, error){ //nolint:gochecknoglobals
	"":                   (*health.Service).Get,
	"antivirus":          (*health.Service).GetAntivirus,
	"cache":              (*health.Service).GetCache,
	"db":                 (*health.Service).GetDB,
	"queue-certificates": (*health.Service).GetQueueCertificates,
	"queue-functions":    (*health.Service).GetQueueFunctions,
	"queue-logs":         (*health.Service).GetQueueLogs,
	"queue-webhooks":     (*health.Service).GetQueueWebhooks,
	"storage":            (*health.Service).GetStorageLocal,
	"time":               (*health.Service).GetTime,
	"version":            (*health.Service).GetVersion,
}

func healthCheckNames() []string {
	names := make([]string, 0, len(healthChecks))

	for name := range healthChecks {
		if name != "" {
			names = append(names, name)
		}
	}

	slices.Sort(names)

	return names
}

func NewHealthCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{ //nolint:exhaustruct
		Use:   "health [check]",
		Short: "Check the server health",
		Long:  "Check the server health. Without a check the API itself is pinged.\n\nChecks: " + strings.Join(healthCheckNames(), ", "),
		Example: `  appwrite health
  appwrite health db`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: healthCheckNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}

			check, ok := healthChecks[name]
			if !ok {
				return fmt.Errorf("unknown health check %q, expected one of: %s", name, strings.Join(healthCheckNames(), ", "))
			}

			resp, err := check(health.New(opts.Client()), cmd.Context())

			return printResponse(cmd.OutOrStdout(), resp, err)
		},
	}
}
