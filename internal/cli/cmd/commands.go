package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hH-13/tilde/internal/domain/entity"
)

var commandsJSON bool

var commandsCmd = &cobra.Command{
	Use:     "commands",
	Aliases: []string{"ls"},
	Short:   "List the named commands",
	RunE:    runCommands,
}

func init() {
	rootCmd.AddCommand(commandsCmd)
	commandsCmd.Flags().BoolVar(&commandsJSON, "json", false, "output as JSON")
}

func runCommands(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	commands := app.Omnibox(nil).Commands()
	out := cmd.OutOrStdout()

	if commandsJSON {
		if commands == nil {
			commands = []entity.Command{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(commands)
	}

	fmt.Fprintln(out, app.Theme.RenderCommands(commands))
	return nil
}
