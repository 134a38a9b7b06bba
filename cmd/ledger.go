package cmd

import (
	"fmt"

	"github.com/metlab/inventory/types"
	"github.com/spf13/cobra"
)

var (
	itemsSearch     string
	transactionItem int64
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Inspect inventory items",
}

var itemsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List inventory items, optionally filtered by name or category",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(a)

		items, err := a.Ledger.SearchItems(cmd.Context(), itemsSearch)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "ID | Name | Category | Quantity | Price")
		for _, item := range items {
			fmt.Fprintf(out, "%d | %s | %s | %d | $%.2f\n", item.ID, item.Name, item.Category, item.Quantity, item.Price)
		}
		return nil
	},
}

var transactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "Inspect stock movements",
}

var transactionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stock movements, newest date first",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(a)

		var transactions []types.Transaction
		if cmd.Flags().Changed("item") {
			transactions, err = a.Ledger.ViewTransactionsByItem(cmd.Context(), transactionItem)
		} else {
			transactions, err = a.Ledger.ViewTransactions(cmd.Context())
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "ID | Item | Type | Quantity | Date | Notes")
		for _, t := range transactions {
			item, notes := "N/A", "N/A"
			if t.ItemName != nil {
				item = *t.ItemName
			}
			if t.Notes != nil && *t.Notes != "" {
				notes = *t.Notes
			}
			fmt.Fprintf(out, "%d | %s | %s | %d | %s | %s\n", t.ID, item, t.Type, t.Quantity, t.Date, notes)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(itemsCmd, transactionsCmd)
	itemsCmd.AddCommand(itemsListCmd)
	transactionsCmd.AddCommand(transactionsListCmd)

	itemsListCmd.Flags().StringVarP(&itemsSearch, "search", "s", "", "case-insensitive filter on name or category")
	transactionsListCmd.Flags().Int64Var(&transactionItem, "item", 0, "only movements of this item id")
}
