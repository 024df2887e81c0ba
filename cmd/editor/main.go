// Command editor paints terrain maps.
package main

import (
	"context"
	"fmt"
	"image/color"
	"os"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/1siamBot/feg-tactics/editor"
	"github.com/1siamBot/feg-tactics/engine/input"
	"github.com/1siamBot/feg-tactics/engine/logger"
	"github.com/1siamBot/feg-tactics/engine/maplib"
	"github.com/1siamBot/feg-tactics/engine/pathfind"
	"github.com/1siamBot/feg-tactics/engine/render"
)

var terrains = []maplib.Terrain{maplib.TerrainOpen, maplib.TerrainSand, maplib.TerrainWall}

type EditorApp struct {
	editor   *editor.Editor
	layout   render.GridLayout
	renderer *render.GridRenderer
	input    *input.InputState
	hover    maplib.Coord
	hasHover bool
	preview  *pathfind.Reach
	status   string
}

func NewEditorApp(e *editor.Editor) *EditorApp {
	a := &EditorApp{editor: e, input: input.NewInputState()}
	a.relayout()
	return a
}

func (a *EditorApp) relayout() {
	a.layout = render.NewGridLayout(a.editor.Grid.Width, a.editor.Grid.Height)
	a.renderer = render.NewGridRenderer(a.layout, nil)
}

func (a *EditorApp) Update() error {
	a.input.Update()
	a.hover, a.hasHover = a.layout.ScreenToGrid(a.input.MouseX, a.input.MouseY)

	// Terrain selection via number keys
	for i, t := range terrains {
		if a.input.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(i)) {
			a.editor.Brush = t
			a.editor.Tool = editor.ToolPaint
		}
	}
	if a.input.IsKeyJustPressed(ebiten.KeyE) && !a.input.Ctrl {
		a.editor.Tool = editor.ToolErase
	}
	if a.input.IsKeyJustPressed(ebiten.KeyTab) {
		a.editor.Tool = editor.ToolStartPos
	}

	if a.hasHover {
		switch {
		case a.editor.Tool == editor.ToolStartPos && a.input.LeftJustPressed:
			a.editor.Paint(a.hover)
		case a.editor.Tool != editor.ToolStartPos && a.input.LeftPressed:
			a.editor.Paint(a.hover)
		}
	}

	// Reach preview while the right button is held
	a.preview = nil
	if a.hasHover && a.input.RightPressed {
		a.preview = a.editor.Preview(a.hover)
	}

	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	if a.input.Ctrl && a.input.IsKeyJustPressed(ebiten.KeyZ) {
		if shift {
			a.editor.Redo()
		} else {
			a.editor.Undo()
		}
	}
	if a.input.Ctrl && a.input.IsKeyJustPressed(ebiten.KeyY) {
		a.editor.Redo()
	}
	if a.input.Ctrl && a.input.IsKeyJustPressed(ebiten.KeyS) {
		if err := a.editor.SaveMap(""); err != nil {
			a.status = err.Error()
			logger.Log.WithError(err).Error("save failed")
		} else {
			a.status = "saved " + a.editor.FilePath
			logger.Log.WithField("path", a.editor.FilePath).Info("map saved")
		}
	}
	if a.input.Ctrl && a.input.IsKeyJustPressed(ebiten.KeyC) {
		if err := clipboard.WriteAll(a.editor.Text()); err != nil {
			a.status = "clipboard: " + err.Error()
		} else {
			a.status = "map copied"
		}
	}
	return nil
}

func (a *EditorApp) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 40, 255})

	a.renderer.Draw(screen, render.Scene{
		Grid:     a.editor.Grid,
		Hover:    a.hover,
		HasHover: a.hasHover,
	})
	if a.preview != nil {
		size := float32(a.layout.CellSize())
		for _, c := range a.preview.Cells() {
			x, y := a.layout.GridToScreen(c)
			vector.DrawFilledRect(screen, float32(x), float32(y), size, size, color.RGBA{70, 130, 230, 80}, false)
		}
		for _, e := range a.layout.HaloEdges(a.preview.Halo(a.editor.Grid.Width, a.editor.Grid.Height)) {
			vector.StrokeLine(screen, e.A.X, e.A.Y, e.B.X, e.B.Y, 3, color.RGBA{120, 180, 255, 255}, false)
		}
	}

	// Start positions
	for _, sp := range a.editor.Starts {
		p := a.layout.CellPoint(float64(sp.X), float64(sp.Y))
		vector.DrawFilledCircle(screen, p.X, p.Y, 8, render.TeamColors[sp.Team%len(render.TeamColors)], false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("T%d", sp.Team), int(p.X)-6, int(p.Y)+10)
	}

	a.drawSidebar(screen)
}

func (a *EditorApp) drawSidebar(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(a.layout.HPad), float32(a.layout.WindowH), color.RGBA{20, 20, 40, 220}, false)

	y := 10
	ebitenutil.DebugPrintAt(screen, "=== TERRAIN ===", 10, y)
	y += 20
	for i, t := range terrains {
		clr := color.RGBA{50, 50, 80, 255}
		if a.editor.Tool == editor.ToolPaint && t == a.editor.Brush {
			clr = color.RGBA{100, 100, 200, 255}
		}
		vector.DrawFilledRect(screen, 10, float32(y), 180, 20, clr, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("[%d] %v", i+1, t), 15, y+3)
		y += 22
	}

	y += 10
	lines := []string{
		"tool: " + a.editor.Tool.String(),
		"[E] erase  [Tab] starts",
		"[RMB] reach preview",
		"[Ctrl+Z/Y] undo/redo",
		"[Ctrl+S] save [Ctrl+C] copy",
	}
	if a.hasHover {
		lines = append(lines, fmt.Sprintf("cell (%d, %d) %v", a.hover.X, a.hover.Y, a.editor.Grid.At(a.hover)))
	}
	if a.editor.Modified {
		lines = append(lines, "* MODIFIED *")
	}
	if a.status != "" {
		lines = append(lines, a.status)
	}
	for _, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, 10, y)
		y += 18
	}
}

func (a *EditorApp) Layout(_, _ int) (int, int) {
	return render.WindowWidth, render.WindowHeight
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "editor",
		Usage: "paint terrain maps",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "map", Usage: "map file to open or create (.txt or .json)", Sources: cli.EnvVars("FEG_MAP")},
			&cli.IntFlag{Name: "width", Value: 10, Usage: "map width in cells", Sources: cli.EnvVars("FEG_WIDTH")},
			&cli.IntFlag{Name: "height", Value: 10, Usage: "map height in cells", Sources: cli.EnvVars("FEG_HEIGHT")},
			&cli.BoolFlag{Name: "debug", Usage: "debug logging", Sources: cli.EnvVars("FEG_DEBUG")},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger.Init(cmd.Bool("debug"))
			w, h := int(cmd.Int("width")), int(cmd.Int("height"))
			e := editor.NewEditor(w, h)

			if path := cmd.String("map"); path != "" {
				if _, err := os.Stat(path); err == nil {
					if err := e.LoadMap(path, w, h); err != nil {
						return err
					}
				} else {
					e.FilePath = path
				}
			}

			ebiten.SetWindowSize(render.WindowWidth, render.WindowHeight)
			ebiten.SetWindowTitle("FEG map editor")
			return ebiten.RunGame(NewEditorApp(e))
		},
	}
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Log.WithError(err).Warn("error loading .env file")
	}
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		logger.Log.WithError(err).Fatal("editor failed")
	}
}
