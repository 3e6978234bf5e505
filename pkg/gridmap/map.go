// pkg/gridmap/map.go
package gridmap

import "sort"

// Tile holds the logical properties of one cell. MoveCost is meaningless
// when the tile is not passable.
type Tile struct {
	Passable bool
	MoveCost int
}

// GridMap is the read-only tile store built once at level load.
type GridMap struct {
	Tiles  map[Coord]Tile
	width  int
	height int
	sorted []Coord
}

// NewGridMap classifies the authored cells and fills the rest of the
// width x height tile index with the default tile.
func NewGridMap(width, height int, cells []RawCell) *GridMap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	tiles := make(map[Coord]Tile, width*height+len(cells))
	for _, cell := range cells {
		tiles[cell.Coord] = ClassifyTerrain(cell.Value)
	}

	// Проход по индексу: всё, что не было размечено, получает тайл по умолчанию
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := Coord{X: x, Y: y}
			if _, exists := tiles[c]; !exists {
				tiles[c] = DefaultTile()
			}
		}
	}

	gm := &GridMap{
		Tiles:  tiles,
		width:  width,
		height: height,
	}
	gm.sorted = gm.sortTiles()
	return gm
}

func (gm *GridMap) sortTiles() []Coord {
	coords := make([]Coord, 0, len(gm.Tiles))
	for c := range gm.Tiles {
		coords = append(coords, c)
	}
	// Row-major, so the renderer and the annotation pass walk tiles in a stable order.
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Y != coords[j].Y {
			return coords[i].Y < coords[j].Y
		}
		return coords[i].X < coords[j].X
	})
	return coords
}

// Lookup returns the tile at c, if the store knows it.
func (gm *GridMap) Lookup(c Coord) (Tile, bool) {
	if gm == nil {
		return Tile{}, false
	}
	tile, ok := gm.Tiles[c]
	return tile, ok
}

// IsOccupiable reports whether a unit may stand on c.
func (gm *GridMap) IsOccupiable(c Coord) bool {
	tile, ok := gm.Lookup(c)
	return ok && tile.Passable
}

func (gm *GridMap) Contains(c Coord) bool {
	_, ok := gm.Lookup(c)
	return ok
}

// Coords returns every known coordinate in row-major order. The slice is shared; do not modify it.
func (gm *GridMap) Coords() []Coord {
	if gm == nil {
		return nil
	}
	return gm.sorted
}

// Width and Height are the size of the tile index the map was built with.
func (gm *GridMap) Width() int {
	if gm == nil {
		return 0
	}
	return gm.width
}

func (gm *GridMap) Height() int {
	if gm == nil {
		return 0
	}
	return gm.height
}
