// Package cli implements the tableview command-line interface.
//
// The root command opens the interactive viewer; print and layout inspect a
// table from the terminal. All commands accept --config for viewer settings,
// --table for the table data (the built-in periodic table by default) and
// --verbose for debug logging.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/elektrokombinacija/tableview/internal/config"
	"github.com/elektrokombinacija/tableview/internal/vis/interact"
	"github.com/elektrokombinacija/tableview/internal/vis/view"
)

// Launcher opens the interactive viewer for v and blocks until it closes.
// sched is the scheduler v animates on; the UI drains it every frame.
type Launcher func(ctx context.Context, v *view.View, sched *interact.FrameScheduler, logger *log.Logger) error

type rootOptions struct {
	verbose    bool
	configPath string
	tablePath  string
}

// Execute runs the CLI, opening windows through launch.
func Execute(launch Launcher) error {
	return newRootCmd(launch, os.Stderr).ExecuteContext(context.Background())
}

func newRootCmd(launch Launcher, logOut io.Writer) *cobra.Command {
	opts := &rootOptions{}
	run := newRunCmd(opts, launch)

	root := &cobra.Command{
		Use:          "tableview",
		Short:        "Explore a table diagram with pan, zoom and fling",
		Long:         `tableview shows a grid of labeled cells, the periodic table by default, in a window that can be panned, zoomed, flung and tapped.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(logOut, level)))
		},
		RunE: run.RunE,
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default: ~/.config/tableview/config.toml)")
	root.PersistentFlags().StringVarP(&opts.tablePath, "table", "t", "", "table file (default: built-in periodic table)")

	root.AddCommand(run)
	root.AddCommand(newPrintCmd(opts))
	root.AddCommand(newLayoutCmd(opts))
	return root
}

// session is a loaded config plus a view populated with the table.
type session struct {
	cfg   config.Config
	table *config.Table
	view  *view.View
	sched *interact.FrameScheduler
}

func loadSession(ctx context.Context, opts *rootOptions) (*session, error) {
	logger := loggerFromContext(ctx)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var table *config.Table
	if opts.tablePath == "" {
		table, err = config.DefaultTable()
	} else {
		table, err = config.LoadTable(opts.tablePath)
	}
	if err != nil {
		return nil, fmt.Errorf("load table: %w", err)
	}
	logger.Debug("table loaded", "cells", len(table.Cells), "legend", table.Legend.Len(), "title", table.Title)

	sched := interact.NewFrameScheduler(time.Now())
	vopts := cfg.ViewOptions()
	vopts.Scheduler = sched
	vopts.Logger = logger
	if vopts.Style.Title == "" {
		vopts.Style.Title = table.Title
	}

	v := view.New(vopts)
	v.SetLegend(table.Legend)
	v.SetCells(table.Cells)
	if n := len(v.Grid().Unplaced); n > 0 {
		logger.Warn("cells without a grid position", "count", n)
	}
	return &session{cfg: cfg, table: table, view: v, sched: sched}, nil
}
