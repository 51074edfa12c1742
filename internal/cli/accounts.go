package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/upctl/pkg/upapi"
)

func accountColumns() []column {
	return []column{
		{Header: "ID", Value: func(r upapi.Resource) string { return r.ID }},
		{Header: "Name", Value: func(r upapi.Resource) string { return r.Account().DisplayName }},
		{Header: "Type", Value: func(r upapi.Resource) string { return r.Account().AccountType }},
		{Header: "Balance", Value: func(r upapi.Resource) string { return r.Account().Balance.Value }},
		{Header: "Currency", Value: func(r upapi.Resource) string { return r.Account().Balance.CurrencyCode }},
	}
}

func newAccountsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Inspect your Up accounts",
	}
	cmd.AddCommand(
		newAccountsListCommand(app),
		newAccountsGetCommand(app),
		newAccountsTransactionsCommand(app),
	)
	return cmd
}

func newAccountsListCommand(app *App) *cobra.Command {
	var asJSON bool
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireToken(); err != nil {
				return err
			}
			accounts, err := app.Client.ListAccounts(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return renderList(cmd.OutOrStdout(), asJSON, accountColumns(), accounts)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output raw JSON")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of accounts to return")
	return cmd
}

func newAccountsGetCommand(app *App) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "get <account-id>",
		Short: "Show one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireToken(); err != nil {
				return err
			}
			account, err := app.Client.GetAccount(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return renderOne(cmd.OutOrStdout(), asJSON, accountColumns(), account)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output raw JSON")
	return cmd
}

func newAccountsTransactionsCommand(app *App) *cobra.Command {
	var asJSON bool
	var limit int
	cmd := &cobra.Command{
		Use:   "transactions <account-id>",
		Short: "List transactions for one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireToken(); err != nil {
				return err
			}
			txns, err := app.Client.ListAccountTransactions(cmd.Context(), args[0], limit)
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
