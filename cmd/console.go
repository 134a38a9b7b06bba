package cmd

import (
	"os"

	"github.com/metlab/inventory/internal/console"
	"github.com/spf13/cobra"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Open the interactive console",
	Long: `Opens the interactive console. On an empty database it first asks for
the admin account, then for a login.`,
	RunE: runConsole,
}

var noBanner bool

func init() {
	rootCmd.AddCommand(consoleCmd)
	rootCmd.PersistentFlags().BoolVar(&noBanner, "no-banner", false, "do not print the startup banner")
}

func runConsole(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer closeApp(a)

	session := console.New(a.Users, a.Ledger, a.Logger, os.Stdin, cmd.OutOrStdout(), console.Options{
		MinPasswordLength: a.Config.Auth.MinPasswordLength,
		ShowBanner:        !noBanner,
	})
	return session.Run(cmd.Context())
}
