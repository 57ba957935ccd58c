package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/hH-13/tilde/internal/domain/entity"
	"github.com/hH-13/tilde/internal/infrastructure/config"
)

const dirPerm = 0o755

const (
	docsFormatMan      = "man"
	docsFormatMarkdown = "markdown"
)

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate man pages or markdown for tilde",
	Long: `Generate documentation for every tilde command.

The page for tilde itself also lists the query table of the active
configuration: each command key with the site it opens and how it
searches, the delimiters, and the scripts with the commands they fan
out to. Without a config file the built-in table is documented.

Man pages go to $XDG_DATA_HOME/man/man1 unless --output is given, so
'man tilde' works right away (run 'mandb' if it does not).`,
	Example: `  tilde gen-docs
  tilde gen-docs --format markdown --output ./docs
  tilde gen-docs --config ./work.toml --output ./man`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "output directory")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", docsFormatMan, "output format: man or markdown")
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	outputDir, ext, err := docsTarget(genDocsFormat, genDocsOutputDir)
	if err != nil {
		return err
	}

	cfg, err := docsConfig()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	long := rootCmd.Long
	rootCmd.Long = strings.TrimRight(long, "\n") + "\n\n" + queryTableSection(cfg)
	rootCmd.DisableAutoGenTag = true
	defer func() { rootCmd.Long = long }()

	switch genDocsFormat {
	case docsFormatMan:
		now := time.Now()
		err = doc.GenManTree(rootCmd, &doc.GenManHeader{
			Title:   "TILDE",
			Section: "1",
			Source:  "tilde " + buildInfo.Version,
			Manual:  "tilde Manual",
			Date:    &now,
		}, outputDir)
	case docsFormatMarkdown:
		err = doc.GenMarkdownTree(rootCmd, outputDir)
	}
	if err != nil {
		return fmt.Errorf("failed to generate %s docs: %w", genDocsFormat, err)
	}

	return listGenerated(cmd.OutOrStdout(), outputDir, ext)
}

// docsTarget resolves the output directory and file extension of format.
func docsTarget(format, outputDir string) (string, string, error) {
	switch format {
	case docsFormatMan:
		if outputDir == "" {
			dir, err := config.GetManDir()
			if err != nil {
				return "", "", fmt.Errorf("failed to resolve man directory: %w", err)
			}
			outputDir = dir
		}
		return outputDir, ".1", nil
	case docsFormatMarkdown:
		if outputDir == "" {
			outputDir = "docs"
		}
		return outputDir, ".md", nil
	default:
		return "", "", fmt.Errorf("unsupported format %q (want %s or %s)", format, docsFormatMan, docsFormatMarkdown)
	}
}

// docsConfig loads the config file when one exists. gen-docs never creates
// a config file, so a missing one documents the defaults.
func docsConfig() (*config.Config, error) {
	path := configFile
	if path == "" {
		p, err := config.GetConfigFile()
		if err != nil {
			return nil, err
		}
		path = p
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return config.DefaultConfig(), nil
	}

	mgr, err := config.NewManagerWithFile(path)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	return mgr.Get(), nil
}

// queryTableSection describes how queries resolve against cfg.
func queryTableSection(cfg *config.Config) string {
	search, path := cfg.Query.SearchDelimiter, cfg.Query.PathDelimiter
	commands := cfg.CommandTable()
	scripts := cfg.ScriptTable()

	var sb strings.Builder
	sb.WriteString("QUERY TABLE\n\n")
	fmt.Fprintf(&sb, "Type a key alone to open its site, key%sterms to search it, or key%spath to open a path on it. ", search, path)
	fmt.Fprintf(&sb, "Input that matches no key is searched with the %s command. Inputs that look like URLs are opened directly.\n\n", entity.WildcardKey)

	keyWidth, nameWidth := 0, 0
	for _, c := range commands {
		keyWidth = max(keyWidth, len(c.Key))
		nameWidth = max(nameWidth, len(c.Name))
	}
	for _, c := range commands {
		line := fmt.Sprintf("    %-*s  %-*s  %s", keyWidth, c.Key, nameWidth, c.Name, c.URL)
		if c.Search != "" {
			line += "  (search " + c.Search + ")"
		}
		sb.WriteString(strings.TrimRight(line, " ") + "\n")
	}

	if len(scripts) > 0 {
		sb.WriteString("\nSCRIPTS\n\n")
		sb.WriteString("A script key opens every listed command with the same search terms or path.\n\n")
		for _, s := range scripts {
			fmt.Fprintf(&sb, "    %s -> %s\n", s.Key, strings.Join(s.CommandKeys, ", "))
		}
	}

	if cfg.HelpKey != "" {
		fmt.Fprintf(&sb, "\nTyping %q alone lists the named commands.\n", cfg.HelpKey)
	}
	return sb.String()
}

func listGenerated(out io.Writer, dir, ext string) error {
	fmt.Fprintf(out, "Generated docs in %s\n", dir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", dir, err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Fprintf(out, "  - %s\n", e.Name())
		}
	}
	return nil
}
