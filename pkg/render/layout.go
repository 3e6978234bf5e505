// pkg/render/layout.go
package render

import (
	"math"

	"grid-tactics/pkg/gridmap"
)

// Layout maps grid coordinates to screen pixels.
type Layout struct {
	TileSize float64
	OffsetX  float64
	OffsetY  float64
}

// TileOrigin returns the top-left pixel of the tile at c.
func (l Layout) TileOrigin(c gridmap.Coord) (float32, float32) {
	return float32(l.OffsetX + float64(c.X)*l.TileSize), float32(l.OffsetY + float64(c.Y)*l.TileSize)
}

// TileCenter returns the center pixel of the tile at c.
func (l Layout) TileCenter(c gridmap.Coord) (float32, float32) {
	x, y := l.TileOrigin(c)
	half := float32(l.TileSize / 2)
	return x + half, y + half
}

// CoordAt converts a cursor position back to a grid coordinate.
// ok is false for points left of or above the grid.
func (l Layout) CoordAt(px, py int) (gridmap.Coord, bool) {
	if l.TileSize <= 0 {
		return gridmap.Coord{}, false
	}
	x := math.Floor((float64(px) - l.OffsetX) / l.TileSize)
	y := math.Floor((float64(py) - l.OffsetY) / l.TileSize)
	c := gridmap.Coord{X: int(x), Y: int(y)}
	if c.IsNegative() {
		return gridmap.Coord{}, false
	}
	return c, true
}
