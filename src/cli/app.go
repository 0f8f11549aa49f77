// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/H0llyW00dzZ/apictl/src/apierr"
	"github.com/H0llyW00dzZ/apictl/src/cli/templates"
	"github.com/H0llyW00dzZ/apictl/src/client"
	"github.com/H0llyW00dzZ/apictl/src/config"
	"github.com/H0llyW00dzZ/apictl/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/apictl/src/internal/x509/identity"
	"github.com/H0llyW00dzZ/apictl/src/logger"
	"github.com/spf13/cobra"
)

// Flag names shared by the commands. Settings flags reuse the config keys.
const (
	flagURL         = config.KeyURL
	flagCACert      = config.KeyCACert
	flagClientCert  = config.KeyClientCert
	flagClientKey   = config.KeyClientKey
	flagTimeout     = config.KeyTimeout
	flagVerbose     = config.KeyVerbose
	flagOutput      = config.KeyOutput
	flagOperations  = config.KeyOperations
	flagLogFormat   = config.KeyLogFormat
	flagUserAgent   = config.KeyUserAgent
	flagConfig      = "config"
	flagHeader      = "header"
	flagQuery       = "query"
	flagParam       = "param"
	flagData        = "data"
	flagDataFile    = "data-file"
	flagContentType = "content-type"
)

// App holds the streams and collaborators of one CLI run.
type App struct {
	Version string
	Log     logger.Logger

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// EnvFile is the dotenv file loaded before settings are resolved.
	EnvFile string
	// Help provides the help templates.
	Help templates.EmbedFS

	loader     *config.Loader
	configFile string
	settings   *config.Settings
}

// NewApp returns an App wired to the process streams.
func NewApp(version string, log logger.Logger) *App {
	return &App{
		Version: version,
		Log:     log,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		EnvFile: ".env",
		Help:    templates.MagicEmbed,
	}
}

// Run executes the command tree with args. Errors that do not already carry
// a kind, such as unknown flags or a wrong argument count, become UsageErrors.
func (a *App) Run(ctx context.Context, args []string) error {
	root, err := a.Command()
	if err != nil {
		return err
	}
	root.SetArgs(args)

	err = root.ExecuteContext(ctx)
	if s, ok := a.Log.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
	if err != nil && apierr.KindOf(err) == apierr.KindUnknown {
		err = apierr.New(apierr.KindUsage, root.Name(), err)
	}
	return err
}

// Command builds the root command and its subcommands.
func (a *App) Command() (*cobra.Command, error) {
	exeName := posix.GetExecutableName()
	longDesc, examples, err := renderHelp(a.Help, "cli_help.md", newHelpData(exeName))
	if err != nil {
		return nil, err
	}

	a.loader = config.NewLoader()
	a.loader.EnvFile = a.EnvFile

	root := &cobra.Command{
		Use:               exeName,
		Short:             "Send one authenticated request to an HTTP API and stream the response",
		Long:              longDesc,
		Example:           examples,
		Version:           a.Version,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.loadSettings,
	}
	root.SetIn(a.Stdin)
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)

	pf := root.PersistentFlags()
	pf.String(flagURL, "", "base URL every request path is joined onto")
	pf.String(flagCACert, "", "PEM file with trusted root certificates (added to the system store)")
	pf.String(flagClientCert, "", "PEM client certificate for mutual TLS (requires --client-key)")
	pf.String(flagClientKey, "", "PEM client private key (requires --client-cert)")
	pf.String(flagTimeout, "30s", "timeout for the whole exchange, e.g. 30s, 5m, 1h30m")
	pf.BoolP(flagVerbose, "v", false, "log METHOD URL and the status code to stderr")
	pf.StringP(flagOutput, "o", "", "write the response body to FILE (default: stdout)")
	pf.String(flagOperations, "", "operation catalogue file (JSON or YAML)")
	pf.StringVar(&a.configFile, flagConfig, "", "settings file (JSON, YAML, TOML, ...)")
	pf.String(flagLogFormat, config.LogFormatText, "diagnostic log format: text or json")
	pf.String(flagUserAgent, "", "override the User-Agent header")
	root.MarkFlagsRequiredTogether(flagClientCert, flagClientKey)

	if err := a.loader.BindFlags(pf); err != nil {
		return nil, err
	}

	callCmd, err := a.callCommand(exeName)
	if err != nil {
		return nil, err
	}
	root.AddCommand(
		a.requestCommand(),
		callCmd,
		a.operationsCommand(),
		a.identityCommand(),
	)
	return root, nil
}

// loadSettings resolves settings before any subcommand runs and switches to
// the structured logger when requested.
func (a *App) loadSettings(*cobra.Command, []string) error {
	s, err := a.loader.Load(a.configFile)
	if err != nil {
		return err
	}
	if err := s.ValidateLogFormat(); err != nil {
		return err
	}
	if s.LogFormat == config.LogFormatJSON {
		a.Log = logger.NewStructuredLogger(a.Stderr, false)
	}
	a.settings = s
	return nil
}

// buildIdentity loads the credential files and assembles the TLS identity.
func (a *App) buildIdentity() (*identity.Identity, error) {
	if err := a.settings.ValidateCredentials(); err != nil {
		return nil, err
	}
	m, err := identity.LoadMaterial(a.settings.Paths())
	if err != nil {
		return nil, err
	}
	return identity.Build(m)
}

// newClient builds the API client from the resolved settings.
func (a *App) newClient() (*client.Client, error) {
	id, err := a.buildIdentity()
	if err != nil {
		return nil, err
	}
	return client.New(client.Options{
		Identity:  id,
		Timeout:   a.settings.Timeout,
		BaseURL:   a.settings.URL,
		Verbose:   a.settings.Verbose,
		UserAgent: a.userAgent(),
		Logger:    a.Log,
	})
}

// userAgent returns the configured User-Agent or the default one.
func (a *App) userAgent() string {
	if a.settings.UserAgent != "" {
		return a.settings.UserAgent
	}
	return fmt.Sprintf("apictl/%s (+https://github.com/H0llyW00dzZ/apictl)", a.Version)
}
