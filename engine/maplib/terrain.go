package maplib

import "fmt"

// Terrain defines the kind of a map tile
type Terrain uint8

const (
	TerrainOpen Terrain = iota
	TerrainSand
	TerrainWall
)

// Map file characters
const (
	GlyphOpen = '0'
	GlyphSand = 's'
	GlyphWall = 'w'
)

var (
	costOpen = CostOf(1)
	costSand = NewCost(5, 2)
)

// Cost returns the cost of entering a tile of this terrain. Walls have no
// cost; asking for one is a programming error.
func (t Terrain) Cost() Cost {
	switch t {
	case TerrainOpen:
		return costOpen
	case TerrainSand:
		return costSand
	default:
		panic(fmt.Sprintf("maplib: no movement cost for %v", t))
	}
}

// Passable reports whether units may enter the tile
func (t Terrain) Passable() bool {
	return t != TerrainWall
}

// Glyph returns the map file character for the terrain
func (t Terrain) Glyph() byte {
	switch t {
	case TerrainSand:
		return GlyphSand
	case TerrainWall:
		return GlyphWall
	default:
		return GlyphOpen
	}
}

func (t Terrain) String() string {
	switch t {
	case TerrainOpen:
		return "Open"
	case TerrainSand:
		return "Sand"
	case TerrainWall:
		return "Wall"
	default:
		return fmt.Sprintf("Terrain(%d)", uint8(t))
	}
}

// TerrainFromGlyph maps a map file character to its terrain
func TerrainFromGlyph(ch rune) (Terrain, bool) {
	switch ch {
	case GlyphOpen:
		return TerrainOpen, true
	case GlyphSand:
		return TerrainSand, true
	case GlyphWall:
		return TerrainWall, true
	}
	return 0, false
}
