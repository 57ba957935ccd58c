// Package cmd provides Cobra CLI commands for tilde.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hH-13/tilde/internal/cli"
	"github.com/hH-13/tilde/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "tilde",
		Short: "An omnibox that routes short queries to the right site",
		Long: `tilde turns short queries into destinations.

  g                 open the command with key "g"
  g'golang          search with command "g"
  r/r/golang        open a path below command "r"
  q'weather         run script "q": open several searches at once
  example.com       open a URL directly
  anything else     search with the wildcard command "*"

Commands and scripts live in $XDG_CONFIG_HOME/tilde/config.toml, created with
defaults on first run. Run 'tilde' without arguments for the interactive
omnibox, or 'tilde serve' to use tilde as the search engine of a browser.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			if skipsApp(cmd) {
				return nil
			}

			var err error
			app, err = cli.NewApp(configFile)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
		RunE: runOmnibox,
	}
)

// noAppAnnotation marks commands that run without loading the configuration.
const noAppAnnotation = "tilde/no-app"

func skipsApp(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "completion", "__complete", "gen-docs", "version":
		return true
	}
	_, ok := cmd.Annotations[noAppAnnotation]
	return ok
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/tilde/config.toml)")
}

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

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "tilde %s\n", buildInfo.Version)
		fmt.Fprintf(out, "  commit  %s\n", buildInfo.Commit)
		fmt.Fprintf(out, "  built   %s\n", buildInfo.BuildDate)
		fmt.Fprintf(out, "  go      %s\n", buildInfo.GoVersion)
		fmt.Fprintf(out, "  source  %s\n", build.RepoURL())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
