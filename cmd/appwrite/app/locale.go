package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/andyle182810/gappwrite/locale"
	"github.com/spf13/cobra"
)

var localeLists = map[string]func(*locale.Service, context.Context) (*http.Response, error){ //nolint:gochecknoglobals
	"":           (*locale.Service).Get,
	"continents": (*locale.Service).GetContinents,
	"countries":  (*locale.Service).GetCountries,
	"eu":         (*locale.Service).GetCountriesEU,
	"phones":     (*locale.Service).GetCountriesPhones,
	"currencies": (*locale.Service).GetCurrencies,
	"languages":  (*locale.Service).GetLanguages,
}

func NewLocaleCommand(opts *GlobalOptions) *cobra.Command {
	var language string

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "locale [continents|countries|eu|phones|currencies|languages]",
		Short: "Show the detected locale or a localized list",
		Example: `  appwrite locale
  appwrite locale countries --language de`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"continents", "countries", "eu", "phones", "currencies", "languages"},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}

			list, ok := localeLists[name]
			if !ok {
				return fmt.Errorf("unknown locale list %q", name)
			}

			client := opts.Client()
			if language != "" {
				client.SetLocale(language)
			}

			resp, err := list(locale.New(client), cmd.Context())

			return printResponse(cmd.OutOrStdout(), resp, err)
		},
	}

	cmd.Flags().StringVar(&language, "language", "", "language of the names, e.g. en or de")

	return cmd
}
