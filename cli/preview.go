package cli

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"picroute/core"
	"picroute/problem"
	"picroute/render"
	"picroute/routing"
)

const (
	panStep  = 0.1
	zoomStep = 1.25
)

// NewPreviewCommand opens an interactive terminal view of the routed
// bundle. Arrows or hjkl pan, + and - zoom, 0 resets, q or Escape
// quits.
func NewPreviewCommand() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview routed bundles in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			prob, err := problem.Load(input)
			if err != nil {
				return err
			}
			if err := prob.Validate(); err != nil {
				return err
			}

			a, b, waypoints, opts := prob.Routing()
			paths, err := routing.GenerateBundle(a, b, waypoints, opts)
			if err != nil {
				return err
			}
			ports := make([]core.Port, 0, len(a)+len(b))
			ports = append(ports, a...)
			ports = append(ports, b...)
			return runPreview(paths, ports, waypoints)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "problem file (yaml or json)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// runPreview owns the terminal for the lifetime of the preview. The
// bottom row shows the key bindings; everything above is the drawing.
func runPreview(paths []core.Path, ports []core.Port, waypoints []core.Point) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault)

	home := render.WorldBounds(paths, ports, waypoints)
	width, height := screen.Size()
	view := render.FitViewport(home, width, height-1, 1)

	for {
		width, height = screen.Size()
		view.Width, view.Height = width, height-1
		drawPreview(screen, paths, ports, waypoints, view)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
				return nil
			case ev.Key() == tcell.KeyLeft || ev.Rune() == 'h':
				view = view.Pan(-panStep, 0)
			case ev.Key() == tcell.KeyRight || ev.Rune() == 'l':
				view = view.Pan(panStep, 0)
			case ev.Key() == tcell.KeyUp || ev.Rune() == 'k':
				view = view.Pan(0, panStep)
			case ev.Key() == tcell.KeyDown || ev.Rune() == 'j':
				view = view.Pan(0, -panStep)
			case ev.Rune() == '+' || ev.Rune() == '=':
				view = view.Zoom(1 / zoomStep)
			case ev.Rune() == '-' || ev.Rune() == '_':
				view = view.Zoom(zoomStep)
			case ev.Rune() == '0':
				view.World = home
			}
		}
	}
}

func drawPreview(screen tcell.Screen, paths []core.Path, ports []core.Port, waypoints []core.Point, view render.Viewport) {
	screen.Clear()
	if c := render.Compose(paths, ports, waypoints, view, render.DefaultStyle); c != nil {
		for y, row := range c.Rows() {
			for x, r := range row {
				if r != ' ' {
					screen.SetContent(x, y, r, nil, tcell.StyleDefault)
				}
			}
		}
	}

	width, height := screen.Size()
	status := "arrows/hjkl pan  +/- zoom  0 reset  q quit"
	statusStyle := tcell.StyleDefault.Reverse(true)
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(status) {
			r = rune(status[x])
		}
		screen.SetContent(x, height-1, r, nil, statusStyle)
	}
	screen.Show()
}
