package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/reminders/internal/config"
	"github.com/idilsaglam/reminders/internal/logging"
	"github.com/idilsaglam/reminders/internal/reminders"
	"github.com/idilsaglam/reminders/internal/tui"
	"github.com/idilsaglam/reminders/internal/ui"
)

// Options tune behavior from root flags. Set flags win over the config file.
type Options struct {
	ConfigPath string
	Theme      string
	NoConfirm  bool
	NoColor    bool
	Debug      bool
	LogFile    string
}

// New builds the command tree. The root command runs the menu shell.
func New() *cobra.Command {
	return newRoot(&Options{})
}

func newRoot(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reminders",
		Short: "Keep a list of tagged reminders from an interactive menu.",
		Long: `reminders keeps a list of notes, each filed under a tag, and lets you
show, search, add, modify and toggle them from a looping menu.

Reminders live in memory only and are gone when the program exits.`,
		Example: `
reminders
reminders --theme neon --no-confirm
reminders tui
`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := setup(cmd, o)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			mode := ui.ColorAuto
			if o.NoColor {
				mode = ui.ColorNever
			}
			printer := ui.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Theme, mode)
			prompter := NewTermPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			return NewShell(reminders.New(), prompter, printer, log, cfg.Confirm).Run()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&o.ConfigPath, "config", config.DefaultPath, "Path to the YAML config file.")
	flags.StringVar(&o.Theme, "theme", "", "Color theme: "+strings.Join(ui.ThemeNames, ", ")+".")
	flags.BoolVar(&o.NoConfirm, "no-confirm", false, "Do not ask to confirm each answer.")
	flags.BoolVar(&o.NoColor, "no-color", false, "Disable colored output.")
	flags.BoolVar(&o.Debug, "debug", false, "Log at debug level.")
	flags.StringVar(&o.LogFile, "log-file", "", "Write JSON logs to this file.")

	addTUI(cmd, o)
	addVersion(cmd)
	return cmd
}

func addTUI(topLevel *cobra.Command, o *Options) {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Manage reminders in a full-screen list.",
		Example: `
reminders tui
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := setup(cmd, o)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if err := tui.Run(reminders.New(), cfg.Theme, log); err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

// setup loads config, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, o *Options) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = o.Theme
	}
	if flags.Changed("no-confirm") {
		cfg.Confirm = !o.NoConfirm
	}
	if flags.Changed("log-file") {
		cfg.Log.File = o.LogFile
	}

	log, err := logging.New(cfg.Log, o.Debug)
	if err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}
	log.Debug("starting", zap.String("command", cmd.Name()), zap.String("theme", cfg.Theme), zap.Bool("confirm", cfg.Confirm))
	return cfg, log, nil
}
