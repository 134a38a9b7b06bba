package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resetConfirmed bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every row from every table",
	Long: `Deletes all items, categories, suppliers, transactions and users. The
tables themselves are kept. There is no undo.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetConfirmed {
			fmt.Fprint(cmd.OutOrStdout(), "Type 'DELETE' to confirm permanent data deletion: ")
			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if strings.TrimSpace(answer) != "DELETE" {
				fmt.Fprintln(cmd.OutOrStdout(), "Data deletion cancelled.")
				return nil
			}
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(a)

		if err := a.Ledger.ClearAllData(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All data has been cleared.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVar(&resetConfirmed, "yes", false, "skip the confirmation prompt")
}
