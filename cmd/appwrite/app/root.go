// Package app implements the appwrite command line tool.
package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/andyle182810/gappwrite/httpclient"
	"github.com/andyle182810/gappwrite/internal/config"
	"github.com/andyle182810/gappwrite/logutil"
	"github.com/andyle182810/gappwrite/metrics"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const cliName = "appwrite"

// GlobalOptions are the flags shared by every command and the state the
// root command prepares for them.
type GlobalOptions struct {
	ConfigPath  string
	Profile     string
	Endpoint    string
	Project     string
	Key         string
	SelfSigned  bool
	LogLevel    string
	LogPretty   bool
	ShowMetrics bool

	config    *config.Config
	client    *httpclient.Client
	collector *metrics.Collector
	logger    zerolog.Logger
}

// Client is the API client of the selected profile with flag overrides
// applied. It is only valid inside a command's RunE.
func (o *GlobalOptions) Client() *httpclient.Client {
	return o.client
}

func NewAppwriteCommand() *cobra.Command {
	opts := &GlobalOptions{} //nolint:exhaustruct

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   cliName,
		Short: "appwrite - command line client for an Appwrite server",
		Long: `appwrite talks to an Appwrite server through its REST API.

Settings come from a YAML file (--config or APPWRITE_CONFIG), then APPWRITE_*
environment variables, then flags. A .env file in the working directory is
loaded first.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.prepare(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if opts.ShowMetrics && opts.collector != nil {
				return opts.collector.WriteText(cmd.ErrOrStderr())
			}

			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "path to a YAML config file")
	flags.StringVar(&opts.Profile, "profile", "", "profile to use (default: the configured profile)")
	flags.StringVar(&opts.Endpoint, "endpoint", "", "API endpoint, e.g. https://cloud.appwrite.io/v1")
	flags.StringVar(&opts.Project, "project", "", "project id")
	flags.StringVar(&opts.Key, "key", "", "API key")
	flags.BoolVar(&opts.SelfSigned, "self-signed", false, "accept self-signed certificates")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level (trace, debug, info, warn, error, off)")
	flags.BoolVar(&opts.LogPretty, "log-pretty", false, "human readable logs")
	flags.BoolVar(&opts.ShowMetrics, "metrics", false, "print call metrics to stderr when done")

	cmd.AddCommand(
		NewHealthCommand(opts),
		NewLocaleCommand(opts),
		NewUsersCommand(opts),
		NewStorageCommand(opts),
		NewFunctionsCommand(opts),
		NewAvatarsCommand(opts),
		NewVersionCommand(opts),
	)

	return cmd
}

func (o *GlobalOptions) prepare(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()

	if flags.Changed("profile") {
		cfg.Profile = o.Profile
	}

	if flags.Changed("log-level") {
		cfg.LogLevel = o.LogLevel
	}

	if flags.Changed("log-pretty") {
		cfg.LogPretty = o.LogPretty
	}

	o.config = cfg
	o.logger = logutil.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogPretty).
		With().Str("component", cliName).Logger()
	o.collector = metrics.NewCollector()

	registry, err := cfg.Registry(
		httpclient.WithLogger(o.logger),
		httpclient.WithObserver(o.collector),
	)
	if err != nil {
		return err
	}

	client, err := registry.Default()
	if err != nil {
		return err
	}

	if flags.Changed("endpoint") {
		client.SetEndpoint(o.Endpoint)
	}

	if flags.Changed("project") {
		client.SetProject(o.Project)
	}

	if flags.Changed("key") {
		client.SetKey(o.Key)
	}

	if flags.Changed("self-signed") {
		client.SetSelfSigned(o.SelfSigned)
	}

	o.client = client
	o.logger.Debug().
		Str("profile", registry.DefaultName()).
		Str("endpoint", client.Endpoint()).
		Msg("Client ready")

	return nil
}

// printResponse writes the JSON body of a call indented, or the raw body
// when it is not JSON.
func printResponse(out io.Writer, resp *http.Response, err error) error {
	body, err := httpclient.ReadAll(resp, err)
	if err != nil {
		return err
	}

	return printBody(out, body)
}

func printBody(out io.Writer, body []byte) error {
	var buf bytes.Buffer
	if json.Indent(&buf, body, "", "  ") != nil {
		_, err := fmt.Fprintln(out, string(body))

		return err
	}

	_, err := fmt.Fprintln(out, buf.String())

	return err
}

func printLine(out io.Writer, line string, err error) error {
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, line)

	return err
}
