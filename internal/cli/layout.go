package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newLayoutCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "List the grid position of every cell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd.Context(), opts)
			if err != nil {
				return err
			}

			t := table.New().Headers("ID", "LABEL", "NAME", "CATEGORY", "ROW", "COL")
			for _, c := range s.view.Cells() {
				row, col := "-", "-"
				if c.Placed() {
					row, col = strconv.Itoa(c.Row), strconv.Itoa(c.Col)
				}
				t.Row(strconv.Itoa(int(c.ID)), c.Label, c.Name, c.Category, row, col)
			}

			g := s.view.Grid()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, t.String())
			_, err = fmt.Fprintf(out, "%d cols x %d rows, %d unplaced\n", g.NumCols, g.NumRows, len(g.Unplaced))
			return err
		},
	}
}
