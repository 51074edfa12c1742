package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/upctl/pkg/upapi"
)

func webhookColumns() []column {
	return []column{
		{Header: "ID", Value: func(r upapi.Resource) string { return r.ID }},
		{Header: "URL", Value: func(r upapi.Resource) string { return r.Webhook().URL }},
		{Header: "Description", Value: func(r upapi.Resource) string { return r.Webhook().Description }},
	}
}

func webhookLogColumns() []column {
	return []column{
		{Header: "Status", Value: func(r upapi.Resource) string { return r.WebhookLog().DeliveryStatus }},
		{Header: "Created", Value: func(r upapi.Resource) string { return r.WebhookLog().CreatedAt }},
	}
}

func newWebhooksCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhooks",
		Short: "Manage webhooks",
	}
	cmd.AddCommand(
		newWebhooksListCommand(app),
		newWebhooksGetCommand(app),
		newWebhooksCreateCommand(app),
		newWebhooksDeleteCommand(app),
		newWebhooksPingCommand(app),
		newWebhooksLogsCommand(app),
	)
	return cmd
}

func newWebhooksListCommand(app *App) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configured webhooks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireToken(); err != nil {
				return err
			}
			hooks, err := app.Client.ListWebhooks(cmd.Context())
			if err != nil {
				return err
			}
			return renderList(cmd.OutOrStdout(), asJSON, webhookColumns(), hooks)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output raw JSON")
	return cmd
}

func newWebhooksGetCommand(app *App) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "get <webhook-id>",
		Short: "Show one webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireToken(); err != nil {
				return err
			}
			hook, err := app.Client.GetWebhook(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return renderOne(cmd.OutOrStdout(), asJSON, webhookColumns(), hook)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output raw JSON")
	return cmd
}

func newWebhooksCreateCommand(app *App) *cobra.Command {
	var asJSON bool
	var description string
	cmd := &cobra.Command{
		Use:   "create <url>",
		Short: "Register a new webhook",
		Long: `Register a new webhook delivering transaction events to the given URL.
The response includes the webhook's secretKey, which the API reveals only
once, at creation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireToken(); err != nil {
				return err
			}
			hook, err := app.Client.CreateWebhook(cmd.Context(), args[0], description)
			if err != nil {
				return err
			}
			if asJSON {
				return renderJSON(cmd.OutOrStdout(), hook)
			}
			if hook == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Webhook created.")
				return nil
			}
			attrs := hook.Webhook()
			fmt.Fprintf(cmd.OutOrStdout(), "Webhook created.\n")
			fmt.Fprintf(cmd.OutOrStdout(), "ID:         %s\n", hook.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "URL:        %s\n", attrs.URL)
			fmt.Fprintf(cmd.OutOrStdout(), "Secret key: %s\n", attrs.SecretKey)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output raw JSON")
	cmd.Flags().StringVar(&description, "description", "", "optional webhook description")
	return cmd
}

func newWebhooksDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <webhook-id>",
		Short: "Delete a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireToken(); err != nil {
				return err
			}
			ok, err := app.Client.DeleteWebhook(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Webhook %s deleted.\n", args[0])
			}
			return nil
		},
	}
}

func newWebhooksPingCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ping <webhook-id>",
		Short: "Send a test event to a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireToken(); err != nil {
				return err
			}
			if _, err := app.Client.PingWebhook(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Ping sent to webhook %s.\n", args[0])
			return nil
		},
	}
}

func newWebhooksLogsCommand(app *App) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "logs <webhook-id>",
		Short: "List delivery logs for a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireToken(); err != nil {
				return err
			}
			logs, err := app.Client.ListWebhookLogs(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return renderList(cmd.OutOrStdout(), asJSON, webhookLogColumns(), logs)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output raw JSON")
	return cmd
}
