package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/plantdeck/internal/catalog"
	"github.com/muurk/plantdeck/internal/config"
	"github.com/muurk/plantdeck/internal/logging"
	"github.com/muurk/plantdeck/internal/tui"
	"github.com/muurk/plantdeck/internal/ui"
	"github.com/muurk/plantdeck/internal/urls"
)

// Commands with this annotation run without loading the configuration
const annotationSkipConfig = "plantdeck/skip-config"

// Command flags
var (
	configFile   string
	apiKeyFlag   string
	baseURLFlag  string
	logLevelFlag string
	logFileFlag  string
	outputFormat string
	noCheck      bool
)

// Effective configuration, set by setup
var (
	appConfig     *config.Config
	appConfigFile string
)

// boundFlags maps configuration keys to the flags that override them
var boundFlags = map[string]string{
	config.KeyAPIKey:   "api-key",
	config.KeyBaseURL:  "base-url",
	config.KeyLogLevel: "log-level",
	config.KeyLogFile:  "log-file",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "Config file (default $XDG_CONFIG_HOME/plantdeck/config.yaml)")
	pf.StringVar(&apiKeyFlag, "api-key", "", "RapidAPI key (overrides config and environment)")
	pf.StringVar(&baseURLFlag, "base-url", "", "Catalog API base URL")
	pf.StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error (default: silent)")
	pf.StringVar(&logFileFlag, "log-file", "", "Write logs to this file (the browser only logs to a file)")
	pf.StringVar(&outputFormat, "format", "text", "Output format (text, json, yaml)")

	plantsCmd.Flags().BoolVar(&noCheck, "no-check", false, "Skip checking the name against the category list")

	rootCmd.AddCommand(categoriesCmd, plantsCmd)
}

// setup loads the configuration and starts logging before any command runs
func setup(cmd *cobra.Command, args []string) error {
	if cmd.Annotations[annotationSkipConfig] == "true" {
		return nil
	}

	loader := config.NewLoader(configFile)
	for key, name := range boundFlags {
		if err := loader.BindFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind --%s: %w", name, err)
		}
	}

	cfg, err := loader.Load()
	if err != nil {
		return err
	}
	appConfig = cfg
	appConfigFile = loader.ConfigFileUsed()

	if err := initLogging(cfg, cmd == cmd.Root()); err != nil {
		return err
	}

	if appConfigFile != "" {
		logging.Debug("Loaded config file", zap.String("path", appConfigFile))
	}
	if !cfg.HasAPIKey() {
		logging.Warn("No API key configured; the catalog will reject requests",
			zap.String("hint", "set PLANTDECK_API_KEY or run 'plantdeck config init'"),
		)
	}
	return nil
}

// initLogging keeps the interactive browser silent unless logs go to a file
func initLogging(cfg *config.Config, interactive bool) error {
	if cfg.Log.Level == "" || (interactive && cfg.Log.File == "") {
		logging.SetLogger(zap.NewNop())
		return nil
	}
	if err := logging.Initialize(cfg.Log.Level, cfg.Log.File); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	return nil
}

func newClient() *catalog.Client {
	return catalog.NewClient(appConfig.RequestConfig(), nil)
}

func parseFormat() (ui.Format, error) {
	return ui.ParseFormat(outputFormat)
}

func encode(cmd *cobra.Command, format ui.Format, v any) error {
	if err := ui.Encode(cmd.OutOrStdout(), format, v); err != nil {
		return fmt.Errorf("failed to write %s output: %w", format, err)
	}
	return nil
}

// catalogFailure prints an error box with hints to stderr and returns a
// one-line error for main
func catalogFailure(cmd *cobra.Command, action string, err error) error {
	logging.Debug("Catalog request failed", zap.String("action", action), zap.Error(err))

	msg := catalog.GetShortErrorMessage(err)
	printFailure(cmd, action, errors.New(msg), failureHints(err))
	return fmt.Errorf("%s: %s", action, msg)
}

// failureHints suggests what to check for a catalog error
func failureHints(err error) []string {
	switch {
	case catalog.IsAuthError(err):
		return []string{
			"Set PLANTDECK_API_KEY or run 'plantdeck config init'",
			"Keys are issued at " + urls.RapidAPIHub,
		}
	case catalog.IsNetworkError(err):
		return []string{"Check your connection and the --base-url value"}
	case catalog.IsParseError(err):
		return []string{"The catalog answered with an unexpected payload; report it at " + urls.Issues}
	}
	return nil
}

func printFailure(cmd *cobra.Command, title string, err error, hints []string) {
	ui.NewPrinter(cmd.ErrOrStderr()).PrintError(title, err, hints)
}

// runBrowse launches the interactive browser
func runBrowse(cmd *cobra.Command, args []string) error {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return errors.New("the interactive browser needs a terminal; use 'plantdeck categories' or 'plantdeck plants <category>' instead")
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	model := tui.NewAppModel(ctx, newClient())

	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithMouseCellMotion()}
	if appConfig.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("browser error: %w", err)
	}
	return nil
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List plant categories",
	Long:  `List every plant category in the order the catalog returns them.`,
	Example: `  # Plain list
  plantdeck categories

  # JSON for scripting
  plantdeck categories --format json`,
	Args: cobra.NoArgs,
	RunE: runCategories,
}

func runCategories(cmd *cobra.Command, args []string) error {
	format, err := parseFormat()
	if err != nil {
		return err
	}

	categories, err := newClient().Categories(cmd.Context())
	if err != nil {
		return catalogFailure(cmd, "failed to retrieve categories", err)
	}

	if format == ui.FormatText {
		ui.NewPrinter(cmd.OutOrStdout()).PrintCategories(categories)
		return nil
	}
	return encode(cmd, format, categories)
}

var plantsCmd = &cobra.Command{
	Use:   "plants <category>",
	Short: "Show the plants of one category",
	Long: `Show every plant in a category as cards, or as json/yaml records.

The name is checked against the category list first (case-insensitive);
an unknown name fails with the closest match. Use --no-check to send the
name as given.`,
	Example: `  # Cards for one category
  plantdeck plants Fern

  # Names with spaces need quoting
  plantdeck plants "Hanging plant" --format yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlants,
}

func runPlants(cmd *cobra.Command, args []string) error {
	format, err := parseFormat()
	if err != nil {
		return err
	}

	client := newClient()
	name := args[0]

	if !noCheck {
		categories, err := client.Categories(cmd.Context())
		if err != nil {
			return catalogFailure(cmd, "failed to retrieve categories", err)
		}
		resolved, ok := resolveCategory(name, categories)
		if !ok {
			printFailure(cmd, fmt.Sprintf("unknown category %q", name), nil, categoryHints(name, categories))
			return unknownCategoryError(name, categories)
		}
		name = resolved
	}

	items, err := client.PlantsByCategory(cmd.Context(), name)
	if err != nil {
		return catalogFailure(cmd, fmt.Sprintf("failed to retrieve plants for %q", name), err)
	}

	if format == ui.FormatText {
		ui.NewPrinter(cmd.OutOrStdout()).PrintPlants(name, items)
		return nil
	}
	return encode(cmd, format, items)
}
