package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hH-13/tilde/internal/cli"
)

var (
	resolveJSON bool
	suggestJSON bool
	openWith    string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <query>",
	Short: "Show how a query resolves without opening it",
	Long: `Parse a query against the configured commands and scripts and print the
match kind and every destination. Nothing is opened or recorded.

Examples:
  tilde resolve "g'golang generics"
  tilde resolve q'weather --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <query>",
	Short: "Print suggestions for a query",
	Long:  `Query every configured suggestion source and print the merged list.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSuggest,
}

var openCmd = &cobra.Command{
	Use:   "open <query>",
	Short: "Resolve a query and open its destinations",
	Long: `Resolve a query as if it was submitted in the omnibox and open every
destination. The query is recorded in the history.

Navigators:
  browser   $BROWSER or the desktop opener (default)
  print     print the URLs, one per line
  copy      copy the URLs to the clipboard

Examples:
  tilde open g'golang
  tilde open --with print q'weather | xargs -n1 firefox`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOpen,
}

func init() {
	rootCmd.AddCommand(resolveCmd, suggestCmd, openCmd)

	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "output as JSON")
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "output as JSON")
	openCmd.Flags().StringVarP(&openWith, "with", "w", cli.NavigatorBrowser, "navigator: browser, print or copy")
}

func queryArg(args []string) string {
	return strings.Join(args, " ")
}

func runResolve(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	q := app.Omnibox(nil).Parse(queryArg(args))
	out := cmd.OutOrStdout()

	if resolveJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(q)
	}

	fmt.Fprintln(out, app.Theme.RenderQuery(q))
	return nil
}

func runSuggest(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	omnibox := app.Omnibox(nil)
	items := omnibox.Suggester().Lookup(app.Ctx(), omnibox.Parse(queryArg(args)))
	out := cmd.OutOrStdout()

	if suggestJSON {
		if items == nil {
			items = []string{}
		}
		return json.NewEncoder(out).Encode(items)
	}

	for _, item := range items {
		fmt.Fprintln(out, item)
	}
	return nil
}

func runOpen(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	nav, err := cli.NewNavigator(openWith, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	omnibox := app.Omnibox(nav)
	_, err = omnibox.Submit(app.Ctx(), queryArg(args))
	return err
}
