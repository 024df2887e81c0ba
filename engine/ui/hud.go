package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/1siamBot/feg-tactics/engine/core"
	"github.com/1siamBot/feg-tactics/engine/maplib"
)

// CommandType represents a player command
type CommandType int

const (
	CmdNone CommandType = iota
	CmdEndTurn
	CmdDeselect
	CmdCPUTurn
)

// Info is what the HUD reports in one frame
type Info struct {
	Round, Team int
	Selected    *core.Unit
	Hover       maplib.Coord
	HasHover    bool
	HoverTile   maplib.Terrain
	Status      string
	FPS         float64
}

type button struct {
	name string
	cmd  CommandType
}

var buttons = []button{
	{"End turn", CmdEndTurn},
	{"Deselect", CmdDeselect},
	{"CPU turn", CmdCPUTurn},
}

// HUD draws the side panels around the grid
type HUD struct {
	ScreenW, ScreenH int
	PanelWidth       int
	ButtonW, ButtonH int
}

func NewHUD(sw, sh, panelWidth int) *HUD {
	return &HUD{
		ScreenW:    sw,
		ScreenH:    sh,
		PanelWidth: panelWidth,
		ButtonW:    panelWidth - 40,
		ButtonH:    28,
	}
}

// Lines formats the info panel text
func (h *HUD) Lines(info Info) []string {
	lines := []string{
		fmt.Sprintf("Round %d  Team %d", info.Round+1, info.Team),
		fmt.Sprintf("FPS %.0f", info.FPS),
		"",
	}
	if u := info.Selected; u != nil {
		loc := u.Location()
		lines = append(lines,
			fmt.Sprintf("%s (team %d)", u.Name, u.Team),
			fmt.Sprintf("at (%d, %d)  move %d", loc.X, loc.Y, u.Budget()),
			fmt.Sprintf("reach %d cells", len(u.Reachable())),
		)
		if u.Moved {
			lines = append(lines, "already moved")
		}
		lines = append(lines, "")
	}
	if info.HasHover {
		lines = append(lines, fmt.Sprintf("cell (%d, %d) %v", info.Hover.X, info.Hover.Y, info.HoverTile))
		if u := info.Selected; u != nil {
			if c, ok := u.CostTo(info.Hover); ok {
				legs := len(u.Reach().ConsolidatedPathTo(info.Hover)) - 1
				lines = append(lines, fmt.Sprintf("cost %v  legs %d", c, legs))
			} else {
				lines = append(lines, "out of reach")
			}
		}
	}
	if info.Status != "" {
		lines = append(lines, "", info.Status)
	}
	return lines
}

// Draw renders both panels
func (h *HUD) Draw(screen *ebiten.Image, info Info) {
	vector.DrawFilledRect(screen, 0, 0, float32(h.PanelWidth), float32(h.ScreenH), color.RGBA{0, 0, 0, 180}, false)
	for i, line := range h.Lines(info) {
		ebitenutil.DebugPrintAt(screen, line, 10, 10+i*16)
	}
	h.drawButtons(screen)
}

func (h *HUD) buttonRect(i int) (x, y int) {
	return h.ScreenW - h.PanelWidth + 20, 40 + i*(h.ButtonH+10)
}

func (h *HUD) drawButtons(screen *ebiten.Image) {
	for i, b := range buttons {
		x, y := h.buttonRect(i)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(h.ButtonW), float32(h.ButtonH), color.RGBA{50, 50, 80, 255}, false)
		vector.StrokeRect(screen, float32(x), float32(y), float32(h.ButtonW), float32(h.ButtonH), 1, color.RGBA{150, 150, 200, 255}, false)
		ebitenutil.DebugPrintAt(screen, b.name, x+8, y+7)
	}
}

// HandleClick returns the command under the cursor, or CmdNone
func (h *HUD) HandleClick(mx, my int) CommandType {
	for i, b := range buttons {
		x, y := h.buttonRect(i)
		if mx >= x && mx < x+h.ButtonW && my >= y && my < y+h.ButtonH {
			return b.cmd
		}
	}
	return CmdNone
}

// IsInPanel returns true if the mouse position is over either side panel
func (h *HUD) IsInPanel(mx, _ int) bool {
	return mx < h.PanelWidth || mx >= h.ScreenW-h.PanelWidth
}
