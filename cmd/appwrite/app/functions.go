package app

import (
	"github.com/andyle182810/gappwrite/functions"
	"github.com/andyle182810/gappwrite/params"
	"github.com/spf13/cobra"
)

func NewFunctionsCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "functions",
		Short: "Manage and run functions",
	}

	cmd.AddCommand(
		newFunctionsListCommand(opts),
		newFunctionsExecuteCommand(opts),
		newFunctionsDeployCommand(opts),
	)

	return cmd
}

func newFunctionsListCommand(opts *GlobalOptions) *cobra.Command {
	list := &params.ListOptions{} //nolint:exhaustruct

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "list",
		Short: "List functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := functions.New(opts.Client()).List(cmd.Context(), list)

			return printResponse(cmd.OutOrStdout(), resp, err)
		},
	}

	addListFlags(cmd, list)

	return cmd
}

func newFunctionsExecuteCommand(opts *GlobalOptions) *cobra.Command {
	var (
		data  string
		async bool
	)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "execute FUNCTION_ID",
		Short:   "Run a function",
		Example: `  appwrite functions execute mailer --data '{"to":"jane@example.com"}'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := functions.New(opts.Client()).CreateExecution(cmd.Context(), args[0], data, async)

			return printResponse(cmd.OutOrStdout(), resp, err)
		},
	}

	cmd.Flags().StringVar(&data, "data", "", "input passed to the function")
	cmd.Flags().BoolVar(&async, "async", false, "return before the execution finishes")

	return cmd
}

func newFunctionsDeployCommand(opts *GlobalOptions) *cobra.Command {
	var (
		entrypoint string
		activate   bool
	)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "deploy FUNCTION_ID ARCHIVE",
		Short:   "Upload a gzipped code archive as a new deployment",
		Example: `  appwrite functions deploy mailer ./code.tar.gz --entrypoint main.go --activate`,
		Args:    cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := functions.New(opts.Client()).CreateDeployment(
				cmd.Context(),
				args[0],
				entrypoint,
				params.FileFromPath(args[1]),
				activate,
			)

			return printResponse(cmd.OutOrStdout(), resp, err)
		},
	}

	cmd.Flags().StringVar(&entrypoint, "entrypoint", "", "file the runtime starts")
	cmd.Flags().BoolVar(&activate, "activate", false, "make the deployment live after it builds")
	_ = cmd.MarkFlagRequired("entrypoint")

	return cmd
}
