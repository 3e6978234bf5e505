// pkg/gridmap/terrain.go
package gridmap

// Terrain values as they come from the level editor's int grid.
const (
	// DifficultTerrainValue is the only authored value that stays walkable.
	DifficultTerrainValue = 2
	DifficultTerrainCost  = 2
	DefaultMoveCost       = 1
)

// RawCell is one authored cell of level data: a coordinate and its terrain value.
type RawCell struct {
	Coord Coord
	Value int
}

// ClassifyTerrain maps an authored terrain value to tile properties.
// Unknown values are blocking; loading never fails on tile content.
func ClassifyTerrain(value int) Tile {
	switch value {
	case DifficultTerrainValue:
		return Tile{Passable: true, MoveCost: DifficultTerrainCost}
	default:
		return Tile{Passable: false, MoveCost: 0}
	}
}

// DefaultTile is used for every indexed cell that was not explicitly authored.
func DefaultTile() Tile {
	return Tile{Passable: true, MoveCost: DefaultMoveCost}
}
