// Command tableview displays a table diagram with pan, zoom and fling.
package main

import (
	"context"
	"os"

	"gioui.org/app"
	"gioui.org/unit"
	"github.com/charmbracelet/log"

	"github.com/elektrokombinacija/tableview/internal/cli"
	"github.com/elektrokombinacija/tableview/internal/vis"
	"github.com/elektrokombinacija/tableview/internal/vis/interact"
	"github.com/elektrokombinacija/tableview/internal/vis/view"
)

func main() {
	go func() {
		if err := cli.Execute(openWindow); err != nil {
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}

func openWindow(ctx context.Context, v *view.View, sched *interact.FrameScheduler, logger *log.Logger) error {
	title := v.Style().Title
	if title == "" {
		title = "tableview"
	}
	window := new(app.Window)
	window.Option(
		app.Title(title),
		app.Size(unit.Dp(1400), unit.Dp(900)),
	)
	return vis.NewApp(v, sched, logger).Run(window)
}
