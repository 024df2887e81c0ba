package editor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/1siamBot/feg-tactics/engine/maplib"
	"github.com/1siamBot/feg-tactics/engine/pathfind"
)

// Action represents an undoable editor action
type Action struct {
	Pos      maplib.Coord
	Old, New maplib.Terrain
}

// Editor holds map editor state
type Editor struct {
	Grid        *maplib.Grid
	Name        string
	Starts      []maplib.StartPos
	Brush       maplib.Terrain
	BrushSize   int
	Tool        EditorTool
	StartTeam   int
	StartBudget int
	UndoStack   [][]Action
	RedoStack   [][]Action
	FilePath    string
	Modified    bool
	ShowGrid    bool
}

// EditorTool represents the current editor tool
type EditorTool int

const (
	ToolPaint EditorTool = iota
	ToolErase
	ToolStartPos
)

func (t EditorTool) String() string {
	switch t {
	case ToolPaint:
		return "paint"
	case ToolErase:
		return "erase"
	case ToolStartPos:
		return "start"
	default:
		return fmt.Sprintf("EditorTool(%d)", int(t))
	}
}

// NewEditor creates a new map editor
func NewEditor(width, height int) *Editor {
	return &Editor{
		Grid:        maplib.NewGrid(width, height),
		Name:        "Untitled",
		Brush:       maplib.TerrainWall,
		BrushSize:   1,
		StartBudget: 5,
		ShowGrid:    true,
	}
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// LoadMap loads a map file. JSON bundles carry their own size; text maps
// are read as width x height.
func (e *Editor) LoadMap(path string, width, height int) error {
	var (
		g      *maplib.Grid
		name   string
		starts []maplib.StartPos
	)
	if isJSON(path) {
		mf, err := maplib.LoadJSON(path)
		if err != nil {
			return err
		}
		if g, err = mf.Grid(path); err != nil {
			return err
		}
		name, starts = mf.Name, mf.Starts
	} else {
		dir, file := filepath.Split(path)
		var err error
		if g, err = maplib.LoadTerrain(dir, file, width, height); err != nil {
			return err
		}
		name = strings.TrimSuffix(file, filepath.Ext(file))
	}
	e.Grid = g
	e.Name = name
	e.Starts = starts
	e.FilePath = path
	e.Modified = false
	e.UndoStack = nil
	e.RedoStack = nil
	return nil
}

// SaveMap saves the current map as JSON or text depending on the extension
func (e *Editor) SaveMap(path string) error {
	if path == "" {
		path = e.FilePath
	}
	if path == "" {
		path = "untitled.txt"
	}
	var err error
	if isJSON(path) {
		mf := maplib.NewMapFile(e.Name, e.Grid)
		mf.Starts = e.Starts
		err = mf.SaveJSON(path)
	} else {
		err = maplib.SaveTerrain(path, e.Grid)
	}
	if err != nil {
		return err
	}
	e.FilePath = path
	e.Modified = false
	return nil
}

// Paint applies the current tool at c with the brush size
func (e *Editor) Paint(c maplib.Coord) {
	if e.Tool == ToolStartPos {
		e.ToggleStartPos(c)
		return
	}
	t := e.Brush
	if e.Tool == ToolErase {
		t = maplib.TerrainOpen
	}

	var actions []Action
	r := e.BrushSize / 2
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			p := c.Add(dx, dy)
			if !e.Grid.InBounds(p) {
				continue
			}
			old := e.Grid.At(p)
			if old == t {
				continue
			}
			e.Grid.Set(p, t)
			actions = append(actions, Action{Pos: p, Old: old, New: t})
		}
	}
	if len(actions) > 0 {
		e.UndoStack = append(e.UndoStack, actions)
		e.RedoStack = nil
		e.Modified = true
	}
}

// ToggleStartPos adds a unit start at c, or removes the one already there.
// Walls and off-map cells are ignored.
func (e *Editor) ToggleStartPos(c maplib.Coord) {
	for i, sp := range e.Starts {
		if sp.X == c.X && sp.Y == c.Y {
			e.Starts = append(e.Starts[:i], e.Starts[i+1:]...)
			e.Modified = true
			return
		}
	}
	if !e.Grid.Passable(c) {
		return
	}
	e.Starts = append(e.Starts, maplib.StartPos{
		Name: fmt.Sprintf("unit%d", len(e.Starts)+1),
		Team: e.StartTeam,
		X:    c.X,
		Y:    c.Y,
	}.WithBudget(e.StartBudget))
	e.Modified = true
}

// Undo reverts the last action
func (e *Editor) Undo() {
	if len(e.UndoStack) == 0 {
		return
	}
	actions := e.UndoStack[len(e.UndoStack)-1]
	e.UndoStack = e.UndoStack[:len(e.UndoStack)-1]
	for _, a := range actions {
		e.Grid.Set(a.Pos, a.Old)
	}
	e.RedoStack = append(e.RedoStack, actions)
	e.Modified = true
}

// Redo re-applies the last undone action
func (e *Editor) Redo() {
	if len(e.RedoStack) == 0 {
		return
	}
	actions := e.RedoStack[len(e.RedoStack)-1]
	e.RedoStack = e.RedoStack[:len(e.RedoStack)-1]
	for _, a := range actions {
		e.Grid.Set(a.Pos, a.New)
	}
	e.UndoStack = append(e.UndoStack, actions)
	e.Modified = true
}

// NewMap creates a fresh map
func (e *Editor) NewMap(name string, w, h int) {
	e.Grid = maplib.NewGrid(w, h)
	e.Name = name
	e.Starts = nil
	e.FilePath = ""
	e.Modified = false
	e.UndoStack = nil
	e.RedoStack = nil
}

// Text returns the map in the text file format
func (e *Editor) Text() string {
	return strings.Join(e.Grid.Rows(), "\n") + "\n"
}

// Preview explores from c with the start budget, to check a layout
func (e *Editor) Preview(c maplib.Coord) *pathfind.Reach {
	return pathfind.Explore(c, e.Grid, e.StartBudget)
}
