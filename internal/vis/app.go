// Package vis implements the Gio window of the table viewer.
package vis

import (
	"image/color"
	"io"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/widget/material"
	"github.com/charmbracelet/log"

	"github.com/elektrokombinacija/tableview/internal/core"
	"github.com/elektrokombinacija/tableview/internal/vis/interact"
	"github.com/elektrokombinacija/tableview/internal/vis/view"
	"github.com/elektrokombinacija/tableview/internal/vis/widgets"
)

// App is the main viewer application.
type App struct {
	view    *view.View
	theme   *material.Theme
	table   *widgets.Table
	toolbar *widgets.Toolbar
	logger  *log.Logger
}

// NewApp creates the application around a view. sched must be the
// scheduler the view was built with.
func NewApp(v *view.View, sched *interact.FrameScheduler, logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	a := &App{
		view:    v,
		theme:   material.NewTheme(),
		table:   widgets.NewTable(v, sched),
		toolbar: widgets.NewToolbar(v),
		logger:  logger.With("component", "app"),
	}
	v.SetOnCellClick(a.cellClicked)
	return a
}

// Run starts the application event loop.
func (a *App) Run(w *app.Window) error {
	var ops op.Ops

	a.view.Invalidated.Connect(func(struct{}) { w.Invalidate() })

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			for {
				ev, ok := gtx.Event(
					key.Filter{Name: "R"},
					key.Filter{Name: "+", Optional: key.ModShift},
					key.Filter{Name: "="},
					key.Filter{Name: "-"},
					key.Filter{Name: key.NameEscape},
				)
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					a.handleKeyEvent(ke)
				}
			}

			a.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (a *App) handleKeyEvent(e key.Event) {
	switch e.Name {
	case "R":
		a.toolbar.Reset()
	case "+", "=":
		a.toolbar.ZoomIn()
	case "-":
		a.toolbar.ZoomOut()
	case key.NameEscape:
		a.view.ClearSelection()
	}
}

func (a *App) cellClicked(c core.Cell) {
	a.logger.Info("cell clicked", "id", c.ID, "label", c.Label, "name", c.Name)
	a.toolbar.Status = c.Label
	if c.Name != "" {
		a.toolbar.Status = c.Name + " (" + c.Label + ")"
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	paint.Fill(gtx.Ops, color.NRGBA{R: 30, G: 30, B: 35, A: 255})

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.toolbar.Layout(gtx, a.theme)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return a.table.Layout(gtx, a.theme)
		}),
	)
}
