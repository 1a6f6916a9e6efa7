package app

import (
	"github.com/andyle182810/gappwrite/ids"
	"github.com/andyle182810/gappwrite/params"
	"github.com/andyle182810/gappwrite/users"
	"github.com/spf13/cobra"
)

func NewUsersCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "users",
		Short: "Manage project users",
	}

	cmd.AddCommand(
		newUsersListCommand(opts),
		newUsersCreateCommand(opts),
		newUsersGetCommand(opts),
		newUsersDeleteCommand(opts),
	)

	return cmd
}

func addListFlags(cmd *cobra.Command, list *params.ListOptions) {
	cmd.Flags().StringVar(&list.Search, "search", "", "search term")
	cmd.Flags().IntVar(&list.Limit, "limit", 0, "maximum number of results (1-100)")
	cmd.Flags().IntVar(&list.Offset, "offset", 0, "number of results to skip")
}

func newUsersListCommand(opts *GlobalOptions) *cobra.Command {
	list := &params.ListOptions{} //nolint:exhaustruct

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := users.New(opts.Client()).List(cmd.Context(), list)

			return printResponse(cmd.OutOrStdout(), resp, err)
		},
	}

	addListFlags(cmd, list)

	return cmd
}

func newUsersCreateCommand(opts *GlobalOptions) *cobra.Command {
	var (
		userID string
		name   string
	)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "create EMAIL PASSWORD",
		Short: "Create a user",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := ids.Custom(userID)
			if err != nil {
				return err
			}

			resp, err := users.New(opts.Client()).Create(cmd.Context(), id, args[0], args[1], name)

			return printResponse(cmd.OutOrStdout(), resp, err)
		},
	}

	cmd.Flags().StringVar(&userID, "id", ids.Unique(), "user id; unique() lets the server choose")
	cmd.Flags().StringVar(&name, "name", "", "display name")

	return cmd
}

func newUsersGetCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{ //nolint:exhaustruct
		Use:   "get USER_ID",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := users.New(opts.Client()).Get(cmd.Context(), args[0])

			return printResponse(cmd.OutOrStdout(), resp, err)
		},
	}
}

func newUsersDeleteCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{ //nolint:exhaustruct
		Use:   "delete USER_ID",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := users.New(opts.Client()).Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			defer resp.Body.Close()

			return printLine(cmd.OutOrStdout(), "deleted "+args[0], nil)
		},
	}
}
