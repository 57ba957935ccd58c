package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hH-13/tilde/internal/cli/styles"
)

var (
	historyJSON bool
	historyMax  int
)

const defaultHistoryMax = 50

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show and manage the query history",
	Long: `List the recorded queries, most used first. The history feeds the
History suggestion source.`,
	RunE: runHistory,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the query history",
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(clearCmd)

	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.Flags().IntVar(&historyMax, "max", defaultHistoryMax, "maximum entries to show, 0 for all")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	items, err := app.History.Load(app.Ctx())
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}
	if historyMax > 0 && len(items) > historyMax {
		items = items[:historyMax]
	}

	out := cmd.OutOrStdout()
	if historyJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	fmt.Fprintln(out, app.Theme.RenderHistory(items))
	return nil
}

func runClear(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if err := app.History.Clear(app.Ctx()); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
		app.Theme.SuccessStyle.Render(styles.IconCheck),
		app.Theme.Normal.Render("History cleared"),
	)
	return nil
}
