package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gatectl",
	Short: "Open destinations through a web-proxy gateway",
	Long: `gatectl is a terminal launcher for a web-proxy gateway. Type a
destination, pick a backend (ScramJet or Ultraviolet), and gatectl opens the
destination through the backend's routing prefix on the gateway.`,
	// SilenceUsage prevents printing the usage message on errors we handle
	// ourselves (invalid flags, failed launches).
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "gatectl version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newLaunchCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
