package maplib

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ResourceDir is where map files are looked up by default
const ResourceDir = "resources"

// ErrInvalidMapData is matched by every *InvalidMapDataError
var ErrInvalidMapData = errors.New("invalid map data")

// InvalidMapDataError reports a malformed or over-size map file.
// Line and Column are 1-based; Column is 0 when the whole line is at fault.
type InvalidMapDataError struct {
	Path   string
	Line   int
	Column int
	Reason string
}

func (e *InvalidMapDataError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("invalid map data in %q at %d:%d: %s", e.Path, e.Line, e.Column, e.Reason)
	}
	return fmt.Sprintf("invalid map data in %q at line %d: %s", e.Path, e.Line, e.Reason)
}

func (e *InvalidMapDataError) Is(target error) bool {
	return target == ErrInvalidMapData
}

// IoError wraps a stream failure while reading a map
type IoError struct {
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("reading map %q: %v", e.Path, e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }

// ParseTerrain reads a width x height terrain map from r. Each line is one
// row (y grows downward) made of '0' (open), 's' (sand) and 'w' (wall).
// Short lines and missing rows are open ground. Rows beyond height, columns
// beyond width and any other character are rejected; blank lines after the
// last row are ignored. path is only used in errors.
//
// The map says nothing about where units start: the engine never charges a
// unit for its own tile, so callers that must not place units on walls
// check that themselves.
func ParseTerrain(r io.Reader, path string, width, height int) (*Grid, error) {
	g := NewGrid(width, height)
	br := bufio.NewReader(r)
	for y := 0; ; y++ {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, &IoError{Path: path, Err: err}
		}
		if line == "" && err == io.EOF {
			break
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if y >= height {
			if line != "" {
				return nil, &InvalidMapDataError{Path: path, Line: y + 1,
					Reason: fmt.Sprintf("more than %d rows", height)}
			}
		} else {
			x := 0
			for _, ch := range line {
				if x >= width {
					return nil, &InvalidMapDataError{Path: path, Line: y + 1, Column: x + 1,
						Reason: fmt.Sprintf("row longer than %d cells", width)}
				}
				t, ok := TerrainFromGlyph(ch)
				if !ok {
					return nil, &InvalidMapDataError{Path: path, Line: y + 1, Column: x + 1,
						Reason: fmt.Sprintf("unknown terrain %q", ch)}
				}
				g.cells[x][y] = t
				x++
			}
		}
		if err == io.EOF {
			break
		}
	}
	return g, nil
}

// LoadTerrain opens name inside dir (usually ResourceDir) and parses it
func LoadTerrain(dir, name string, width, height int) (*Grid, error) {
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, &IoError{Path: path, Err: err}
	}
	defer f.Close()
	return ParseTerrain(f, path, width, height)
}

// WriteTerrain writes g in the format ParseTerrain reads
func WriteTerrain(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	row := make([]byte, g.Width+1)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			row[x] = g.cells[x][y].Glyph()
		}
		row[g.Width] = '\n'
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveTerrain writes g to a map file at path
func SaveTerrain(path string, g *Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteTerrain(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Rows renders g as map file rows, top row first
func (g *Grid) Rows() []string {
	var sb strings.Builder
	if err := WriteTerrain(&sb, g); err != nil {
		return nil
	}
	rows := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
	if g.Height == 0 {
		return nil
	}
	return rows
}
