package maplib

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// MapFile is a terrain map bundled with its metadata, stored as JSON
type MapFile struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	Rows        []string   `json:"rows"`
	Starts      []StartPos `json:"starts,omitempty"`
}

// StartPos defines where a unit starts on the map. A nil Budget means the
// game's default budget; 0 is a unit that cannot move.
type StartPos struct {
	Name   string `json:"name"`
	Team   int    `json:"team"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Budget *int   `json:"budget,omitempty"`
}

// BudgetOr returns the start's budget, or def when it has none
func (sp StartPos) BudgetOr(def int) int {
	if sp.Budget == nil {
		return def
	}
	return *sp.Budget
}

// WithBudget returns a copy of sp with budget b
func (sp StartPos) WithBudget(b int) StartPos {
	sp.Budget = &b
	return sp
}

// NewMapFile bundles g under the given name
func NewMapFile(name string, g *Grid) *MapFile {
	return &MapFile{
		Name:   name,
		Width:  g.Width,
		Height: g.Height,
		Rows:   g.Rows(),
	}
}

// Grid parses the bundled rows. path is only used in errors.
func (mf *MapFile) Grid(path string) (*Grid, error) {
	if mf.Width <= 0 || mf.Height <= 0 {
		return nil, &InvalidMapDataError{Path: path, Line: 0,
			Reason: fmt.Sprintf("bad dimensions %dx%d", mf.Width, mf.Height)}
	}
	return ParseTerrain(strings.NewReader(strings.Join(mf.Rows, "\n")), path, mf.Width, mf.Height)
}

// SaveJSON saves the map to a JSON file
func (mf *MapFile) SaveJSON(path string) error {
	data, err := json.MarshalIndent(mf, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadJSON loads a map from a JSON file
func LoadJSON(path string) (*MapFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IoError{Path: path, Err: err}
	}
	var mf MapFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, &InvalidMapDataError{Path: path, Reason: err.Error()}
	}
	return &mf, nil
}
