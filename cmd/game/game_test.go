package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/1siamBot/feg-tactics/engine/core"
	"github.com/1siamBot/feg-tactics/engine/maplib"
	"github.com/1siamBot/feg-tactics/engine/replay"
)

func writeMap(t *testing.T, dir, name, rows string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(rows), 0o644); err != nil {
		t.Fatal(err)
	}
}

func testConfig(dir string) config {
	return config{Resources: dir, Map: "arena.txt", Width: 5, Height: 3, Budget: 3}
}

func TestLoadScenario_DefaultStarts(t *testing.T) {
	dir := t.TempDir()
	writeMap(t, dir, "arena.txt", "w0000\n00000\n0000w\n")
	g, starts, err := loadScenario(testConfig(dir))
	if err != nil {
		t.Fatal(err)
	}
	if g.Width != 5 || len(starts) != 2 {
		t.Fatalf("grid %dx%d, starts %+v", g.Width, g.Height, starts)
	}
	if starts[0].X != 1 || starts[0].Y != 0 || starts[1].X != 3 || starts[1].Y != 2 {
		t.Fatalf("starts = %+v", starts)
	}
	if starts[0].BudgetOr(-1) != 3 || starts[1].Team != 1 {
		t.Fatalf("starts = %+v", starts)
	}
}

func TestLoadScenario_JSON(t *testing.T) {
	dir := t.TempDir()
	mf := maplib.NewMapFile("duel", maplib.NewGrid(4, 2))
	mf.Starts = []maplib.StartPos{
		maplib.StartPos{Name: "a", Team: 0, X: 0, Y: 0}.WithBudget(2),
		{Name: "b", Team: 1, X: 3, Y: 1},
		maplib.StartPos{Name: "c", Team: 1, X: 3, Y: 0}.WithBudget(0),
	}
	if err := mf.SaveJSON(filepath.Join(dir, "duel.json")); err != nil {
		t.Fatal(err)
	}
	cfg := testConfig(dir)
	cfg.Map = "duel.json"
	_, starts, err := loadScenario(cfg)
	if err != nil {
		t.Fatal(err)
	}
	got := []int{starts[0].BudgetOr(-1), starts[1].BudgetOr(-1), starts[2].BudgetOr(-1)}
	if got[0] != 2 || got[1] != 3 || got[2] != 0 {
		t.Fatalf("budgets = %v, want [2 3 0]", got)
	}
}

func TestLoadScenario_Errors(t *testing.T) {
	dir := t.TempDir()
	writeMap(t, dir, "walls.txt", "www\nw0w\n")
	cfg := testConfig(dir)
	cfg.Map, cfg.Width, cfg.Height = "walls.txt", 3, 2
	if _, _, err := loadScenario(cfg); err == nil {
		t.Fatal("one open cell should fail")
	}
	cfg.Map = "missing.txt"
	if _, _, err := loadScenario(cfg); err == nil {
		t.Fatal("missing map should fail")
	}
}

func TestGame_ClickMoveAndTurns(t *testing.T) {
	dir := t.TempDir()
	writeMap(t, dir, "arena.txt", "00000\n00000\n00000\n")
	cfg := testConfig(dir)
	cfg.CPU = true
	cfg.Record = filepath.Join(dir, "game.replay")

	g, err := NewGame(cfg)
	if err != nil {
		t.Fatal(err)
	}
	player := g.roster.UnitAt(maplib.Coord{X: 0, Y: 0})
	cpu := g.roster.UnitAt(maplib.Coord{X: 4, Y: 2})
	if player == nil || cpu == nil {
		t.Fatal("default units missing")
	}

	g.clickCell(player.Location())
	if g.selected != player {
		t.Fatal("click should select the unit")
	}
	g.hover, g.hasHover = maplib.Coord{X: 2, Y: 1}, true
	if path := g.previewPath(); len(path) < 2 {
		t.Fatalf("preview path = %v", path)
	}
	g.clickCell(maplib.Coord{X: 2, Y: 1})
	if player.Location() != (maplib.Coord{X: 2, Y: 1}) || g.selected != nil {
		t.Fatalf("player at %v", player.Location())
	}

	// Moved units cannot move again this turn.
	g.clickCell(player.Location())
	g.clickCell(maplib.Coord{X: 2, Y: 2})
	if player.Location() != (maplib.Coord{X: 2, Y: 1}) {
		t.Fatal("unit moved twice")
	}

	g.endTurn()
	if g.gameLoop.Team != 0 || g.gameLoop.Round != 1 {
		t.Fatalf("team %d round %d after CPU turn", g.gameLoop.Team, g.gameLoop.Round)
	}
	if cpu.Location() == (maplib.Coord{X: 4, Y: 2}) {
		t.Fatal("cpu should have advanced")
	}
	if player.Moved {
		t.Fatal("player moves should reset")
	}
	g.eventBus.Dispatch()
	if err := g.Close(); err != nil {
		t.Fatal(err)
	}

	rp, err := replay.LoadReplay(cfg.Record)
	if err != nil {
		t.Fatal(err)
	}
	// player move, end turn, cpu move, end turn
	if len(rp.Commands) != 4 || rp.Commands[0].Type != replay.CmdMoveUnit {
		t.Fatalf("recorded %+v", rp.Commands)
	}

	cfg.Record = ""
	cfg.Play = filepath.Join(dir, "game.replay")
	again, err := NewGame(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for _, u := range g.roster.Units() {
		if again.roster.Get(u.ID).Location() != u.Location() {
			t.Fatalf("replayed %s differs", u.Name)
		}
	}
	if again.gameLoop.State != core.StatePlaying {
		t.Fatal("game not started")
	}
}
