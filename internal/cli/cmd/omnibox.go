package cmd

import (
	"bytes"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hH-13/tilde/internal/cli"
	"github.com/hH-13/tilde/internal/cli/model"
	"github.com/hH-13/tilde/internal/logging"
)

var (
	omniboxWith  string
	omniboxWatch bool
)

var omniboxCmd = &cobra.Command{
	Use:   "omnibox",
	Short: "Run the interactive omnibox (default command)",
	Long: `Type a query, pick a suggestion and press Enter to open it.

Keys:
  up/down, ctrl+p/ctrl+n   move through suggestions
  tab                      copy the highlighted suggestion into the input
  enter                    open the highlighted suggestion or the input
  esc, ctrl+c              quit

Typing the help key (default "?") lists the named commands.`,
	RunE: runOmnibox,
}

func init() {
	rootCmd.AddCommand(omniboxCmd)

	for _, c := range []*cobra.Command{rootCmd, omniboxCmd} {
		c.Flags().StringVarP(&omniboxWith, "with", "w", cli.NavigatorBrowser, "navigator: browser, print or copy")
		c.Flags().BoolVar(&omniboxWatch, "watch", true, "reload the config file when it changes")
	}
}

func runOmnibox(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	// Printed URLs are held back until the program has released the terminal.
	var printed bytes.Buffer
	nav, err := cli.NewNavigator(omniboxWith, &printed)
	if err != nil {
		return err
	}

	m := model.NewOmniboxModel(app.Ctx(), app.Theme, app.Omnibox(nav))
	p := tea.NewProgram(m, tea.WithContext(app.Ctx()))

	if omniboxWatch {
		err := app.Watch(func() {
			p.Send(model.ReloadedMsg{Omnibox: app.Omnibox(nav)})
		})
		if err != nil {
			logging.FromContext(app.Ctx()).Warn().Err(err).Msg("config watch unavailable")
		}
	}

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run omnibox: %w", err)
	}

	if _, err := io.Copy(cmd.OutOrStdout(), &printed); err != nil {
		return err
	}
	if fm, ok := final.(model.OmniboxModel); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
