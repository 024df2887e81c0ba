package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/1siamBot/feg-tactics/engine/core"
	"github.com/1siamBot/feg-tactics/engine/maplib"
	"github.com/1siamBot/feg-tactics/engine/pathfind"
)

// TerrainColors are the fallback fills when no sprite is loaded
var TerrainColors = map[maplib.Terrain]color.RGBA{
	maplib.TerrainOpen: {24, 28, 36, 255},
	maplib.TerrainSand: {196, 170, 110, 255},
	maplib.TerrainWall: {90, 90, 96, 255},
}

// TeamColors tint units by team
var TeamColors = []color.RGBA{
	{70, 130, 230, 255},
	{220, 70, 60, 255},
	{80, 190, 90, 255},
	{220, 190, 60, 255},
}

var (
	gridColor      = color.RGBA{200, 200, 200, 255}
	hoverColor     = color.RGBA{234, 152, 174, 255}
	reachColor     = color.RGBA{70, 130, 230, 60}
	haloColor      = color.RGBA{120, 180, 255, 255}
	pathColor      = color.RGBA{255, 255, 255, 200}
	selectionColor = color.RGBA{255, 255, 255, 255}
)

// Scene is everything the renderer draws in one frame
type Scene struct {
	Grid     *maplib.Grid
	Units    []*core.Unit
	Selected *core.Unit
	Hover    maplib.Coord
	HasHover bool
	Path     []maplib.Coord // consolidated path preview, may be nil
}

// GridRenderer draws a terrain grid, reach overlays and units
type GridRenderer struct {
	Layout  GridLayout
	Sprites *SpriteSet
}

func NewGridRenderer(layout GridLayout, sprites *SpriteSet) *GridRenderer {
	return &GridRenderer{Layout: layout, Sprites: sprites}
}

// Draw renders a scene
func (r *GridRenderer) Draw(screen *ebiten.Image, s Scene) {
	r.drawTerrain(screen, s.Grid)
	if s.Selected != nil {
		r.drawReach(screen, s.Selected)
	}
	if s.HasHover {
		r.fillCell(screen, s.Hover, hoverColor)
	}
	r.drawGrid(screen)
	if s.Selected != nil {
		r.drawHalo(screen, s.Selected.Halo())
	}
	r.drawPath(screen, s.Path)
	for _, u := range s.Units {
		r.drawUnit(screen, u, u == s.Selected)
	}
}

func (r *GridRenderer) fillCell(screen *ebiten.Image, c maplib.Coord, clr color.Color) {
	x, y := r.Layout.GridToScreen(c)
	size := float32(r.Layout.CellSize())
	vector.DrawFilledRect(screen, float32(x), float32(y), size, size, clr, false)
}

func (r *GridRenderer) drawTerrain(screen *ebiten.Image, g *maplib.Grid) {
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			c := maplib.Coord{X: x, Y: y}
			t := g.At(c)
			if img := r.terrainSprite(t); img != nil {
				sx, sy := r.Layout.GridToScreen(c)
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Translate(float64(sx), float64(sy))
				screen.DrawImage(img, op)
				continue
			}
			if t != maplib.TerrainOpen {
				r.fillCell(screen, c, TerrainColors[t])
			}
		}
	}
}

func (r *GridRenderer) terrainSprite(t maplib.Terrain) *ebiten.Image {
	if r.Sprites == nil {
		return nil
	}
	switch t {
	case maplib.TerrainWall:
		return r.Sprites.Wall
	case maplib.TerrainSand:
		return r.Sprites.Sand
	}
	return nil
}

func (r *GridRenderer) drawReach(screen *ebiten.Image, u *core.Unit) {
	for _, c := range u.Reachable() {
		r.fillCell(screen, c, reachColor)
	}
}

func (r *GridRenderer) drawGrid(screen *ebiten.Image) {
	w := float32(r.Layout.LineWidth)
	for _, l := range r.Layout.GridLines() {
		vector.StrokeLine(screen, l.A.X, l.A.Y, l.B.X, l.B.Y, w, gridColor, false)
	}
}

func (r *GridRenderer) drawHalo(screen *ebiten.Image, cells []pathfind.BoundaryCell) {
	for _, e := range r.Layout.HaloEdges(cells) {
		vector.StrokeLine(screen, e.A.X, e.A.Y, e.B.X, e.B.Y, 3, haloColor, false)
	}
}

func (r *GridRenderer) drawPath(screen *ebiten.Image, cpath []maplib.Coord) {
	w := float32(r.Layout.PathWidth)
	for _, l := range r.Layout.PathLines(cpath) {
		vector.StrokeLine(screen, l.A.X, l.A.Y, l.B.X, l.B.Y, w, pathColor, false)
	}
	if n := len(cpath); n > 1 {
		end := r.Layout.centerPoint(cpath[n-1])
		vector.DrawFilledCircle(screen, end.X, end.Y, w, pathColor, true)
	}
}

func (r *GridRenderer) drawUnit(screen *ebiten.Image, u *core.Unit, selected bool) {
	p := r.Layout.CellPoint(u.Motion.X, u.Motion.Y)
	size := float32(r.Layout.CellSize())

	if img := r.Sprites.UnitFrame(u.Anim.Frame); img != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(p.X-size/2), float64(p.Y-size/2))
		if u.Moved {
			op.ColorScale.Scale(0.5, 0.5, 0.5, 1)
		}
		screen.DrawImage(img, op)
	} else {
		clr := TeamColors[u.Team%len(TeamColors)]
		if u.Moved {
			clr = color.RGBA{clr.R / 2, clr.G / 2, clr.B / 2, 255}
		}
		// Idle pulse, one step per animation frame
		radius := size*0.3 + float32(u.Anim.Frame)
		vector.DrawFilledCircle(screen, p.X, p.Y, radius, clr, true)
	}
	if selected {
		vector.StrokeCircle(screen, p.X, p.Y, size*0.45, 2, selectionColor, true)
	}
}
