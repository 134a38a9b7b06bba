package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database file and any missing tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(a)

		hasUsers, err := a.Users.HasUsers(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Database ready at %s\n", a.Config.Database.Path)
		if !hasUsers {
			fmt.Fprintln(cmd.OutOrStdout(), "No users yet: run 'inventory users add --role admin' or open the console.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
