package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/1siamBot/feg-tactics/engine/maplib"
)

func TestParseCoord(t *testing.T) {
	c, err := parseCoord(" 3, 4")
	if err != nil || c != (maplib.Coord{X: 3, Y: 4}) {
		t.Fatalf("got %v %v", c, err)
	}
	for _, bad := range []string{"3", "a,4", "3,b", ""} {
		if _, err := parseCoord(bad); err == nil {
			t.Errorf("parseCoord(%q) should fail", bad)
		}
	}
}

func TestWriteReport(t *testing.T) {
	g, err := maplib.ParseTerrain(strings.NewReader("000\n0w0\n00s\n"), "test", 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	dest := maplib.Coord{X: 2, Y: 0}
	var buf bytes.Buffer
	if err := writeReport(&buf, g, maplib.Coord{}, 2, &dest); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, line := range []string{
		"reach from (0,0) with budget 2: 5 cells",
		"halo:",
		"to (2,0): cost 2",
		"  path  (0,0) (1,0) (2,0)",
		"  legs  (0,0) (2,0)",
	} {
		if !strings.Contains(got, line) {
			t.Errorf("missing %q in\n%s", line, got)
		}
	}
	rows := strings.Split(got, "\n")[1:4]
	if rows[0] != "@*B" || rows[1] != "*#." || rows[2] != "B.s" {
		t.Fatalf("map rows = %q", rows)
	}
}

func TestWriteReport_OutOfReach(t *testing.T) {
	g := maplib.NewGrid(5, 1)
	far := maplib.Coord{X: 4}
	var buf bytes.Buffer
	if err := writeReport(&buf, g, maplib.Coord{}, 1, &far); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "out of reach, needs 4") {
		t.Fatalf("report:\n%s", buf.String())
	}

	g.Set(maplib.Coord{X: 2}, maplib.TerrainWall)
	buf.Reset()
	if err := writeReport(&buf, g, maplib.Coord{}, 1, &far); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "to (4,0): unreachable") {
		t.Fatalf("report:\n%s", buf.String())
	}
}

func TestCommand_Run(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.txt")
	if err := os.WriteFile(path, []byte("00\n0w\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	args := []string{"reach", "--map", path, "--width", "2", "--height", "2", "--budget", "1", "--to", "1,0"}
	if err := newCommand(&out).Run(context.Background(), args); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "3 cells") || !strings.Contains(out.String(), "to (1,0): cost 1") {
		t.Fatalf("output:\n%s", out.String())
	}

	args = []string{"reach", "--map", path, "--width", "2", "--height", "2", "--x", "5"}
	if err := newCommand(&out).Run(context.Background(), args); err == nil {
		t.Fatal("expected out of bounds error")
	}
}
