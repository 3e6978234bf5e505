// pkg/gridmap/coord.go
package gridmap

import (
	"fmt"

	"grid-tactics/pkg/utils"
)

// Coord — клетка сетки в целочисленных координатах (X, Y)
type Coord struct {
	X, Y int
}

// NeighborDirections lists the 4 orthogonal steps: East, North, West, South.
// Diagonals are never neighbours on this grid.
var NeighborDirections = []Coord{
	{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1},
}

// Neighbors возвращает существующих соседей клетки в порядке NeighborDirections
func (c Coord) Neighbors(gm *GridMap) []Coord {
	valid := make([]Coord, 0, len(NeighborDirections))
	for _, dir := range NeighborDirections {
		if n := c.Add(dir); gm.Contains(n) {
			valid = append(valid, n)
		}
	}
	return valid
}

// Add возвращает сумму двух координат
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Distance returns the Manhattan (taxicab) distance between two cells.
func (c Coord) Distance(to Coord) int {
	return utils.Abs(c.X-to.X) + utils.Abs(c.Y-to.Y)
}

// IsNegative reports whether the cell would underflow unsigned grid addressing.
func (c Coord) IsNegative() bool {
	return c.X < 0 || c.Y < 0
}

// Less orders coordinates lexicographically by X, then Y.
func (c Coord) Less(other Coord) bool {
	if c.X != other.X {
		return c.X < other.X
	}
	return c.Y < other.Y
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
