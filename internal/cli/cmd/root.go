// Package cmd provides Cobra CLI commands for dumber-mobile.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dumber-mobile/internal/cli"
	"github.com/bnema/dumber-mobile/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "dumber-mobile",
		Short: "A minimal mobile browser shell",
		Long: `Dumber Mobile - one screen, one web view.

An address field, back, reload and forward. Pages are rendered by WebKitGTK;
the screen moves out of the way of the on-screen keyboard.

Use 'dumber-mobile browse' to launch the browser, or 'dumber-mobile resolve'
to see how the address field would interpret some text.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// browseCmd is a placeholder for help - actual execution is in main.go
var browseCmd = &cobra.Command{
	Use:   "browse [address]",
	Short: "Launch the browser screen",
	Long: `Launch the GTK4 browser screen.

The address goes through the same normalization as the address field.
Without one, the configured home page is opened.

Examples:
  dumber-mobile browse                  # Open the home page
  dumber-mobile browse example.com      # Open https:example.com`,
	Args: cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, _ []string) {
		// This is handled by main.go before cobra runs
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
