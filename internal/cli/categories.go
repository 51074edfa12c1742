package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/upctl/pkg/upapi"
)

func categoryColumns() []column {
	return []column{
		{Header: "ID", Value: func(r upapi.Resource) string { return r.ID }},
		{Header: "Name", Value: func(r upapi.Resource) string { return r.Category().Name }},
	}
}

func newCategoriesCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Browse transaction categories",
	}
	cmd.AddCommand(
		newCategoriesListCommand(app),
		newCategoriesGetCommand(app),
	)
	return cmd
}

func newCategoriesListCommand(app *App) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireToken(); err != nil {
				return err
			}
			categories, err := app.Client.ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			return renderList(cmd.OutOrStdout(), asJSON, categoryColumns(), categories)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output raw JSON")
	return cmd
}

func newCategoriesGetCommand(app *App) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "get <category-id>",
		Short: "Show one category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireToken(); err != nil {
				return err
			}
			category, err := app.Client.GetCategory(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return renderOne(cmd.OutOrStdout(), asJSON, categoryColumns(), category)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output raw JSON")
	return cmd
}
