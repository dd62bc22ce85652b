package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elektrokombinacija/tableview/internal/vis/draw"
)

func newPrintCmd(opts *rootOptions) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the laid-out table with colors to the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd.Context(), opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if title := s.view.Style().Title; title != "" {
				fmt.Fprintln(out, title)
			}
			_, err = fmt.Fprint(out, draw.RenderTerminal(s.view.Grid(), s.view.Legend(), width))
			return err
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 4, "characters per cell")
	return cmd
}
