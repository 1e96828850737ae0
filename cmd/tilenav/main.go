// Command tilenav is a keyboard-driven tile browser for a directory.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/daptify14/tilenav/internal/config"
	"github.com/daptify14/tilenav/internal/grid"
	"github.com/daptify14/tilenav/internal/keymap"
	"github.com/daptify14/tilenav/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootFlags struct {
	keymap     string
	columns    string
	configPath string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	rootCmd := &cobra.Command{
		Use:   "tilenav [dir]",
		Short: "Browse a directory as a keyboard-navigable tile grid",
		Long:  "tilenav lays out the entries of a directory as tiles and moves the selection with arrow, numpad, vi or emacs keys.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			return runTUI(dir, cfg)
		},
	}
	rootCmd.Version = version + " (commit " + commit + ", built " + date + ")"
	rootCmd.Flags().StringVar(&flags.keymap, "keymap", "", "key map preset (standard, numpad, vi, emacs, all)")
	rootCmd.Flags().StringVar(&flags.columns, "columns", "", `column count, or "auto" to estimate from the layout`)
	rootCmd.Flags().StringVar(&flags.configPath, "config", "", "config file (default ~/.config/tilenav/config.yaml)")

	rootCmd.AddCommand(newKeysCmd(), newStepCmd())
	return rootCmd
}

// loadConfig reads the config file and applies flags that were set explicitly.
func loadConfig(cmd *cobra.Command, flags rootFlags) (config.Config, error) {
	path := flags.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return cfg, fmt.Errorf("error loading config: %w", err)
	}

	if cmd.Flags().Changed("keymap") {
		cfg.Keymap = flags.keymap
	}
	if cmd.Flags().Changed("columns") {
		cfg.Columns = flags.columns
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func runTUI(dir string, cfg config.Config) error {
	km, err := cfg.KeyMap()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	overrides, err := cfg.KeyOverrides()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	columns, err := cfg.FixedColumns()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	iconMode, err := tui.ParseIconMode(cfg.Icons)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	var debugLog *slog.Logger
	if debugPath := os.Getenv("TILENAV_DEBUG"); debugPath != "" {
		cleanPath := filepath.Clean(debugPath)
		f, err := os.OpenFile(cleanPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600) //#nosec G304 -- developer-controlled debug log path
		if err != nil {
			return fmt.Errorf("debug log: %w", err)
		}
		defer func() { _ = f.Close() }()
		debugLog = slog.New(slog.NewJSONHandler(f, nil))
	}

	model := tui.NewModel(tui.Options{
		Root:         dir,
		KeyMap:       km,
		KeyOverrides: overrides,
		KeyMapName:   cfg.Keymap,
		Columns:      columns,
		TileWidth:    cfg.TileWidth,
		IconMode:     iconMode,
		ShowHidden:   cfg.ShowHidden,
		MaxDepth:     cfg.MaxDepth,
		MaxItems:     cfg.MaxItems,
		DebugLog:     debugLog,
	})
	defer model.Close()

	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("error: %w", err)
	}
	return nil
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "keys [preset]",
		Short:     "Print the commands bound by a key map preset",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: keymap.PresetNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := keymap.PresetAll
			if len(args) == 1 {
				name = args[0]
			}
			m, err := keymap.Preset(name)
			if err != nil {
				return fmt.Errorf("keys: %w", err)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), keymap.Table(m))
			return err
		},
	}
}

func newStepCmd() *cobra.Command {
	var shape grid.Shape
	stepCmd := &cobra.Command{
		Use:   "step <command> <index>",
		Short: "Print the index a command moves to on a grid of the given shape",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := grid.ParseCommand(args[0])
			if err != nil {
				return fmt.Errorf("step: %w", err)
			}
			i, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("step: invalid index %q: %w", args[1], err)
			}
			s, err := grid.NewStepper(shape)
			if err != nil {
				return fmt.Errorf("step: %w", err)
			}
			if i < 0 || i > s.Last() {
				return fmt.Errorf("step: index %d outside [0, %d]", i, s.Last())
			}
			next, _ := s.Step(c, i)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), next)
			return err
		},
	}
	stepCmd.Flags().IntVar(&shape.Size, "size", 0, "number of cells")
	stepCmd.Flags().IntVar(&shape.RowLength, "cols", 1, "cells per row")
	stepCmd.Flags().IntVar(&shape.PageSize, "page", 1, "rows per page")
	return stepCmd
}
