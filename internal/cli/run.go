package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

func newRunCmd(opts *rootOptions, launch Launcher) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the interactive viewer (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if launch == nil {
				return errors.New("no window system available")
			}
			s, err := loadSession(cmd.Context(), opts)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			logger.Debug("opening window", "cells", len(s.view.Cells()))
			return launch(cmd.Context(), s.view, s.sched, logger)
		},
	}
}
