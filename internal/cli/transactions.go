package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/upctl/pkg/upapi"
)

func transactionColumns() []column {
	return []column{
		{Header: "ID", Value: func(r upapi.Resource) string { return r.ID }},
		{Header: "Description", Value: func(r upapi.Resource) string { return r.Transaction().Description }},
		{Header: "Amount", Value: func(r upapi.Resource) string { return r.Transaction().Amount.Value }},
		{Header: "Status", Value: func(r upapi.Resource) string { return r.Transaction().Status }},
		{Header: "Created", Value: func(r upapi.Resource) string { return r.Transaction().CreatedAt }},
	}
}

func newTransactionsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Inspect and annotate transactions",
	}
	cmd.AddCommand(
		newTransactionsListCommand(app),
		newTransactionsGetCommand(app),
		newTransactionsCategorizeCommand(app),
		newTransactionsTagCommand(app),
		newTransactionsUntagCommand(app),
	)
	return cmd
}

func newTransactionsListCommand(app *App) *cobra.Command {
	var asJSON bool
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions across all accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireToken(); err != nil {
				return err
			}
			txns, err := app.Client.ListTransactions(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return renderList(cmd.OutOrStdout(), asJSON, transactionColumns(), txns)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output raw JSON")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of transactions to return")
	return cmd
}

func newTransactionsGetCommand(app *App) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "get <transaction-id>",
		Short: "Show one transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireToken(); err != nil {
				return err
			}
			txn, err := app.Client.GetTransaction(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return renderOne(cmd.OutOrStdout(), asJSON, transactionColumns(), txn)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output raw JSON")
	return cmd
}

func newTransactionsCategorizeCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "categorize <transaction-id> <category-id>",
		Short: "Assign a transaction to a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireToken(); err != nil {
				return err
			}
			if err := app.Client.CategorizeTransaction(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Transaction %s categorized as %s.\n", args[0], args[1])
			return nil
		},
	}
}

func newTransactionsTagCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tag <transaction-id> <tag>...",
		Short: "Add tags to a transaction",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireToken(); err != nil {
				return err
			}
			if err := app.Client.AddTransactionTags(cmd.Context(), args[0], args[1:]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Tagged transaction %s.\n", args[0])
			return nil
		},
	}
}

func newTransactionsUntagCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "untag <transaction-id> <tag>...",
		Short: "Remove tags from a transaction",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireToken(); err != nil {
				return err
			}
			if err := app.Client.RemoveTransactionTags(cmd.Context(), args[0], args[1:]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Untagged transaction %s.\n", args[0])
			return nil
		},
	}
}
