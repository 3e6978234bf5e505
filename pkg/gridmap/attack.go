// pkg/gridmap/attack.go
package gridmap

import "github.com/zyedidia/generic/mapset"

// RingOffsets returns the offsets at exact Manhattan distance r from the
// origin, walking the four edges of the diamond. r == 0 yields the origin
// alone; negative radii yield nothing.
func RingOffsets(r int) []Coord {
	if r < 0 {
		return nil
	}
	if r == 0 {
		return []Coord{{X: 0, Y: 0}}
	}
	var offsets []Coord
	for i := 0; i < r; i++ {
		offsets = append(offsets,
			Coord{X: i, Y: r - i},
			Coord{X: r - i, Y: -i},
			Coord{X: -i, Y: -(r - i)},
			Coord{X: -(r - i), Y: i},
		)
	}
	return offsets
}

// AttackableTiles returns every cell at one of the exact ranges from some
// reachable cell. Ranges are outlines, not filled areas: a range of 2 does
// not hit at 1 unless 1 is listed too. Cells with a negative coordinate are
// dropped.
func AttackableTiles(reachable mapset.Set[Coord], ranges []int) mapset.Set[Coord] {
	attackable := mapset.New[Coord]()
	if len(ranges) == 0 || reachable.Size() == 0 {
		return attackable
	}

	rings := make([][]Coord, 0, len(ranges))
	for _, r := range ranges {
		if offsets := RingOffsets(r); len(offsets) > 0 {
			rings = append(rings, offsets)
		}
	}

	reachable.Each(func(origin Coord) {
		for _, ring := range rings {
			for _, offset := range ring {
				target := origin.Add(offset)
				if target.IsNegative() {
					continue
				}
				attackable.Put(target)
			}
		}
	})
	return attackable
}
