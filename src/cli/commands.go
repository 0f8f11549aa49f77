// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"github.com/H0llyW00dzZ/apictl/src/apierr"
	"github.com/H0llyW00dzZ/apictl/src/bridge"
	"github.com/H0llyW00dzZ/apictl/src/endpoint"
	"github.com/H0llyW00dzZ/apictl/src/internal/x509/identity"
	"github.com/spf13/cobra"
)

func (a *App) requestCommand() *cobra.Command {
	var in requestInput
	cmd := &cobra.Command{
		Use:   "request METHOD PATH",
		Short: "Send METHOD to PATH, relative to the base URL",
		Example: `  request GET /widgets -q limit=10
  request POST /widgets -d '{"name":"gear"}'
  request PUT /files/report.csv --data-file report.csv --content-type text/csv`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			call, err := in.call(cmd.Flags(), cmd.InOrStdin())
			if err != nil {
				return err
			}
			call.Args = args
			return a.invoke(cmd, endpoint.Raw{}, call)
		},
	}
	in.register(cmd.Flags(), flagQuery, "q", "query parameter key=value (repeatable)")
	cmd.MarkFlagsMutuallyExclusive(flagData, flagDataFile)
	return cmd
}

func (a *App) callCommand(exeName string) (*cobra.Command, error) {
	longDesc, examples, err := renderHelp(a.Help, "call_help.md", newHelpData(exeName))
	if err != nil {
		return nil, err
	}

	var in requestInput
	cmd := &cobra.Command{
		Use:     "call OPERATION",
		Short:   "Run a named operation from the operation catalogue",
		Long:    longDesc,
		Example: examples,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogue, err := a.loadCatalogue()
			if err != nil {
				return err
			}
			call, err := in.call(cmd.Flags(), cmd.InOrStdin())
			if err != nil {
				return err
			}
			call.Name = args[0]
			return a.invoke(cmd, catalogue, call)
		},
	}
	in.register(cmd.Flags(), flagParam, "p", "operation parameter name=value (repeatable)")
	cmd.MarkFlagsMutuallyExclusive(flagData, flagDataFile)
	return cmd, nil
}

func (a *App) operationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "operations",
		Short: "List the operations in the operation catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalogue, err := a.loadCatalogue()
			if err != nil {
				return err
			}
			if err := catalogue.Describe(cmd.OutOrStdout()); err != nil {
				return apierr.New(apierr.KindWrite, "operations", err)
			}
			return nil
		},
	}
}

func (a *App) identityCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "identity",
		Short: "Show the trusted roots and client certificate without connecting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := a.buildIdentity()
			if err != nil {
				return err
			}
			if err := identity.Describe(cmd.OutOrStdout(), id); err != nil {
				return apierr.New(apierr.KindWrite, "identity", err)
			}
			return nil
		},
	}
}

func (a *App) loadCatalogue() (*endpoint.Catalogue, error) {
	if a.settings.Operations == "" {
		return nil, apierr.Errorf(apierr.KindUsage, "settings", "--%s is required (or set APICTL_OPERATIONS)", flagOperations)
	}
	return endpoint.LoadCatalogue(a.settings.Operations)
}

// invoke validates settings, builds the client and runs one exchange, writing
// the body to the configured sink.
func (a *App) invoke(cmd *cobra.Command, resolver endpoint.Resolver, call endpoint.Call) error {
	if err := a.settings.Validate(); err != nil {
		return err
	}
	api, err := a.newClient()
	if err != nil {
		return err
	}

	sink := a.newSink()
	res, err := bridge.Invoke(cmd.Context(), api, resolver, call, sink)
	if ferr := sink.finish(res != nil); err == nil {
		err = ferr
	}
	return err
}
