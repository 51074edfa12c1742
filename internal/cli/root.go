// Package cli declares the upctl command tree: the cobra surface over the
// config store and the Up API client.
package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/example/upctl/internal/config"
	"github.com/example/upctl/pkg/upapi"
)

// App carries the dependencies every command needs. It is built once at
// startup and passed in explicitly; there is no package-level state.
type App struct {
	Store  *config.Store
	Client *upapi.Client
	Log    *logrus.Logger
}

// Execute loads the configuration, wires the client, and runs the CLI.
func Execute() error {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)

	store, err := config.Load()
	if err != nil {
		return err
	}

	app := &App{
		Store:  store,
		Client: upapi.NewClient(store, upapi.WithLogger(log)),
		Log:    log,
	}
	return NewRootCommand(app).Execute()
}

// NewRootCommand assembles the full command tree for the given app.
func NewRootCommand(app *App) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "upctl",
		Short: "A terminal client for the Up Banking API",
		Long: `upctl talks to the Up Banking API from the terminal: list accounts and
transactions, manage categories and tags, and administer webhooks.

Authenticate once with 'upctl config set --token <token>'; get a personal
access token at https://api.up.com.au.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				app.Log.SetLevel(logrus.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newConfigCommand(app),
		newAccountsCommand(app),
		newTransactionsCommand(app),
		newCategoriesCommand(app),
		newTagsCommand(app),
		newWebhooksCommand(app),
	)
	return root
}

// requireToken guards every authenticated command: no token means no network
// call and a non-zero exit.
func (app *App) requireToken() error {
	if !app.Store.IsConfigured() {
		return fmt.Errorf("no API token configured: run 'upctl config set --token <token>' first")
	}
	return nil
}
