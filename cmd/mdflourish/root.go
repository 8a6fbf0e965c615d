package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/mdflourish"
	"github.com/iw2rmb/mdflourish/document"
	"github.com/iw2rmb/mdflourish/editor"
	"github.com/iw2rmb/mdflourish/internal/app"
	"github.com/iw2rmb/mdflourish/internal/config"
	"github.com/iw2rmb/mdflourish/theme"
)

// autoTheme picks dark or light from the terminal background.
const autoTheme = "auto"

type globalFlags struct {
	configPath string
	debug      bool
	logFile    string
}

func newRootCmd() *cobra.Command {
	var (
		g         globalFlags
		themeID   string
		noPreview bool
		dir       string
	)

	cmd := &cobra.Command{
		Use:   "mdflourish [file]",
		Short: "Terminal markdown editor with live preview",
		Long: `mdflourish edits markdown with a formatting toolbar that follows the cursor,
a live preview, themes, an emoji picker and HTML export.

Examples:
  mdflourish                      # start with the welcome document
  mdflourish notes.md             # open a file
  mdflourish status notes.md -o 12
  mdflourish apply bold notes.md -o 0 -e 5
  mdflourish export notes.md -O notes.html`,
		Version:           mdflourish.Version(),
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			slog.SetDefault(newLogger(cmd.ErrOrStderr(), g.debug))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(g.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if themeID == "" {
				themeID = cfg.Theme
			}
			th, err := resolveTheme(themeID)
			if err != nil {
				return err
			}

			doc := document.Document{Name: cfg.File.Name}
			var draftPath string
			if len(args) == 0 && cfg.Editor.Autosave {
				if draftPath, err = config.DraftPath(); err != nil {
					return err
				}
			}
			if len(args) == 1 {
				doc, err = document.Open(args[0])
				if err != nil {
					return err
				}
			}
			if dir == "" {
				dir = cfg.File.Dir
			}

			logger, closeLog, err := tuiLogger(g)
			if err != nil {
				return err
			}
			defer closeLog()

			logger.Info("starting", "version", mdflourish.Version(), "theme", th.ID, "file", doc.Path)
			return app.Run(cmd.Context(), app.Options{
				Theme:           th,
				Document:        doc,
				Dir:             dir,
				DraftPath:       draftPath,
				ShowLineNumbers: cfg.Editor.ShowLineNumbers,
				HistoryLimit:    cfg.Editor.HistoryLimit,
				TabWidth:        cfg.Editor.TabWidth,
				NoPreview:       noPreview || !cfg.Preview.Enabled,
				Clipboard:       editor.SystemClipboard{},
				SaveTheme: func(id string) error {
					return config.SaveTheme(g.configPath, id)
				},
				Logger: logger,
			})
		},
	}
	cmd.SetVersionTemplate(mdflourish.Name + " {{.Version}}\n")

	pf := cmd.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/mdflourish/config.yaml)")
	pf.BoolVar(&g.debug, "debug", false, "enable debug logging")
	pf.StringVar(&g.logFile, "log-file", "", "write logs to this file while the editor runs")

	f := cmd.Flags()
	f.StringVar(&themeID, "theme", "", `theme id, or "auto" to follow the terminal background`)
	f.BoolVar(&noPreview, "no-preview", false, "start with the preview pane hidden")
	f.StringVar(&dir, "dir", "", "directory for saved and exported files")

	cmd.AddCommand(
		newStatusCmd(),
		newApplyCmd(),
		newExportCmd(),
		newThemesCmd(&g),
		newEmojiCmd(),
	)
	return cmd
}

func resolveTheme(id string) (theme.Theme, error) {
	if id == autoTheme {
		return theme.Auto(termenv.NewOutput(os.Stdout)), nil
	}
	th, err := theme.Lookup(id)
	if err != nil {
		return theme.Theme{}, fmt.Errorf("theme: %w (see `mdflourish themes`)", err)
	}
	return th, nil
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// tuiLogger logs to --log-file when set. The editor owns the terminal, so
// logs are discarded otherwise.
func tuiLogger(g globalFlags) (*slog.Logger, func(), error) {
	if g.logFile == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(g.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(f, g.debug), func() { _ = f.Close() }, nil
}
