// Scrollprompt shows paginated prompts the way a small hardware wallet
// screen does and collects an accept/reject decision.
//
// It can drive an interactive terminal emulator of the device, replay a
// scripted button sequence headlessly, or serve the prompts to a remote
// panel over a websocket.
//
// Usage:
//
//	scrollprompt [command] [flags]
//
// See 'scrollprompt --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/scrollprompt/internal/logging"
	"github.com/muurk/scrollprompt/internal/version"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	logLevel    string
	configPath  string
	profileName string
)

var rootCmd = &cobra.Command{
	Use:   "scrollprompt",
	Short: "Paginated confirmation prompts for small screens",
	Long: `Render long text on a tiny fixed-size screen, page by page, and end with
an accept/reject choice that cannot be skipped.

Screen geometry comes from a device profile (see 'scrollprompt profiles list').
Prompts come from a workflow script or from --title/--text flags.`,
	Version:       version.Get().Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Initialize(logLevel); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		return nil
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); defaults to $"+logging.LogLevelEnvVar)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is the user config dir)")
	rootCmd.PersistentFlags().StringVarP(&profileName, "profile", "p", "", "Device profile to render for")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "scrollprompt %s\n", version.Full())
	},
}
