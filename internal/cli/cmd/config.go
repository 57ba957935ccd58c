package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hH-13/tilde/internal/cli/styles"
	"github.com/hH-13/tilde/internal/infrastructure/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show, create, check and describe the tilde configuration file.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file in use and its tables",
	RunE:  runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration",
	Long: `Write the default commands, scripts and settings to the config file.

An existing file is left alone unless --force is given.`,
	Annotations: map[string]string{noAppAnnotation: ""},
	RunE:        runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:         "schema",
	Short:       "Print the JSON schema of the config file",
	Annotations: map[string]string{noAppAnnotation: ""},
	RunE:        runConfigSchema,
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the config file and list warnings",
	Long: `Load and validate the config file. Errors abort with a non-zero exit
status; suspicious but valid tables, such as a script shadowing a command
key, are listed as warnings.`,
	RunE: runConfigCheck,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configInitCmd, configSchemaCmd, configCheckCmd)
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	cfg := app.Config()
	renderer := styles.NewConfigRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderConfigInfo(
		config.GetManager().GetConfigFile(), len(cfg.Commands), len(cfg.Scripts),
	))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	renderer := styles.NewConfigRenderer(styles.NewTheme())
	out := cmd.OutOrStdout()

	path := configFile
	if path == "" {
		var err error
		if path, err = config.GetConfigFile(); err != nil {
			return fmt.Errorf("resolve config file: %w", err)
		}
	}

	_, err := os.Stat(path)
	switch {
	case err == nil && !configForce:
		fmt.Fprintln(out, renderer.RenderExists(path))
		return nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := config.WriteConfigOrdered(config.DefaultConfig(), path); err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return err
	}

	fmt.Fprintln(out, renderer.RenderWritten(path))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	schema, err := config.Schema()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(schema))
	return err
}

func runConfigCheck(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out := cmd.OutOrStdout()
	if warnings := app.Lint(); len(warnings) > 0 {
		fmt.Fprintln(out, app.Theme.RenderWarnings(warnings))
		return nil
	}

	fmt.Fprintf(out, "%s %s\n",
		app.Theme.SuccessStyle.Render(styles.IconCheck),
		app.Theme.Normal.Render(config.GetManager().GetConfigFile()+" is valid"),
	)
	return nil
}
