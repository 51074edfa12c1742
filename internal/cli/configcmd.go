package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/upctl/internal/config"
)

// tokenMask is what config show prints in place of a stored token.
const tokenMask = "********"

func newConfigCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage upctl configuration",
	}
	cmd.AddCommand(
		newConfigSetCommand(app),
		newConfigShowCommand(app),
		newConfigClearCommand(app),
	)
	return cmd
}

func newConfigSetCommand(app *App) *cobra.Command {
	var token string
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store the Up API token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Store.Set(config.KeyAPIToken, token); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Token saved.")
			return nil
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "Up API personal access token")
	_ = cmd.MarkFlagRequired("token")
	return cmd
}

func newConfigShowCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current configuration (the token is masked)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			value := "(not set)"
			if app.Store.IsConfigured() {
				value = tokenMask
			}
			fmt.Fprintf(cmd.OutOrStdout(), "api_token: %s\n", value)
			return nil
		},
	}
}

func newConfigClearCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all stored configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Store.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration cleared.")
			return nil
		},
	}
}
