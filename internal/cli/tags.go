package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/upctl/pkg/upapi"
)

func tagColumns() []column {
	// A tag's identity is its id; it carries no attributes.
	return []column{
		{Header: "ID", Value: func(r upapi.Resource) string { return r.ID }},
	}
}

func newTagsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Browse transaction tags",
	}
	cmd.AddCommand(newTagsListCommand(app))
	return cmd
}

func newTagsListCommand(app *App) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all tags in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireToken(); err != nil {
				return err
			}
			tags, err := app.Client.ListTags(cmd.Context())
			if err != nil {
				return err
			}
			return renderList(cmd.OutOrStdout(), asJSON, tagColumns(), tags)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output raw JSON")
	return cmd
}
