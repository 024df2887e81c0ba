package editor

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/1siamBot/feg-tactics/engine/maplib"
)

func TestPaint_UndoRedo(t *testing.T) {
	e := NewEditor(5, 5)
	e.BrushSize = 3
	e.Paint(maplib.Coord{X: 0, Y: 0})
	if got := e.Grid.Count(maplib.TerrainWall); got != 4 {
		t.Fatalf("walls = %d, want 4 (brush clipped at the corner)", got)
	}
	if !e.Modified || len(e.UndoStack) != 1 {
		t.Fatal("paint not recorded")
	}

	// Painting the same terrain again changes nothing.
	e.Paint(maplib.Coord{X: 0, Y: 0})
	if len(e.UndoStack) != 1 {
		t.Fatalf("no-op paint recorded, stack %d", len(e.UndoStack))
	}

	e.Tool = ToolErase
	e.BrushSize = 1
	e.Paint(maplib.Coord{X: 1, Y: 1})
	if e.Grid.At(maplib.Coord{X: 1, Y: 1}) != maplib.TerrainOpen {
		t.Fatal("erase failed")
	}

	e.Undo()
	if e.Grid.At(maplib.Coord{X: 1, Y: 1}) != maplib.TerrainWall {
		t.Fatal("undo erase failed")
	}
	e.Undo()
	if e.Grid.Count(maplib.TerrainWall) != 0 {
		t.Fatal("undo paint failed")
	}
	e.Undo()

	e.Redo()
	if e.Grid.Count(maplib.TerrainWall) != 4 {
		t.Fatal("redo failed")
	}
	e.Paint(maplib.Coord{X: 4, Y: 4})
	if len(e.RedoStack) != 0 {
		t.Fatal("new action should clear redo")
	}
}

func TestToggleStartPos(t *testing.T) {
	e := NewEditor(3, 3)
	e.Grid.Set(maplib.Coord{X: 2, Y: 2}, maplib.TerrainWall)
	e.Tool = ToolStartPos
	e.StartTeam = 1
	e.Paint(maplib.Coord{X: 1, Y: 0})
	e.Paint(maplib.Coord{X: 2, Y: 2})
	if len(e.Starts) != 1 || e.Starts[0].Team != 1 || e.Starts[0].BudgetOr(0) != 5 {
		t.Fatalf("starts = %+v", e.Starts)
	}
	e.Paint(maplib.Coord{X: 1, Y: 0})
	if len(e.Starts) != 0 {
		t.Fatal("second click should remove the start")
	}
}

func TestSaveLoad_TextAndJSON(t *testing.T) {
	dir := t.TempDir()
	e := NewEditor(4, 3)
	e.Paint(maplib.Coord{X: 1, Y: 1})
	e.Brush = maplib.TerrainSand
	e.Paint(maplib.Coord{X: 2, Y: 0})
	e.Tool = ToolStartPos
	e.Paint(maplib.Coord{X: 0, Y: 0})

	txt := filepath.Join(dir, "arena.txt")
	if err := e.SaveMap(txt); err != nil {
		t.Fatal(err)
	}
	if e.Modified || e.FilePath != txt {
		t.Fatal("save state not updated")
	}
	js := filepath.Join(dir, "arena.json")
	if err := e.SaveMap(js); err != nil {
		t.Fatal(err)
	}

	fromText := NewEditor(1, 1)
	if err := fromText.LoadMap(txt, 4, 3); err != nil {
		t.Fatal(err)
	}
	if !fromText.Grid.Equal(e.Grid) || fromText.Name != "arena" {
		t.Fatalf("text round trip differs:\n%s", fromText.Text())
	}

	fromJSON := NewEditor(1, 1)
	if err := fromJSON.LoadMap(js, 0, 0); err != nil {
		t.Fatal(err)
	}
	if !fromJSON.Grid.Equal(e.Grid) || len(fromJSON.Starts) != 1 {
		t.Fatalf("json round trip differs: %+v", fromJSON.Starts)
	}

	if err := fromJSON.LoadMap(filepath.Join(dir, "missing.txt"), 4, 3); err == nil {
		t.Fatal("expected error")
	} else {
		var ioErr *maplib.IoError
		if !errors.As(err, &ioErr) {
			t.Fatalf("err = %T, want *maplib.IoError", err)
		}
	}
}

func TestTextAndPreview(t *testing.T) {
	e := NewEditor(3, 2)
	e.Grid.Set(maplib.Coord{X: 1, Y: 0}, maplib.TerrainWall)
	e.Grid.Set(maplib.Coord{X: 2, Y: 1}, maplib.TerrainSand)
	if got, want := e.Text(), "0w0\n00s\n"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
	e.StartBudget = 2
	r := e.Preview(maplib.Coord{})
	if !r.Has(maplib.Coord{X: 1, Y: 1}) || r.Has(maplib.Coord{X: 2, Y: 1}) {
		t.Fatalf("preview reach = %v", r.Cells())
	}
}
