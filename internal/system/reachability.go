// internal/system/reachability.go
package system

import (
	"grid-tactics/internal/entity"
	"grid-tactics/internal/types"
	"grid-tactics/pkg/gridmap"

	"github.com/zyedidia/generic/mapset"
)

// ReachableTiles returns the cells unit id can move to this turn. ok is false
// when the unit cannot be resolved or no grid is registered yet; callers treat
// that as "no reachable tiles".
func ReachableTiles(ecs *entity.ECS, id types.EntityID) (mapset.Set[gridmap.Coord], bool) {
	if ecs.GridMap == nil {
		return mapset.New[gridmap.Coord](), false
	}
	unit, pos, ok := ecs.UnitAt(id)
	if !ok {
		return mapset.New[gridmap.Coord](), false
	}
	return gridmap.Reachable(ecs.GridMap, pos.Coord, unit.Speed), true
}

// AttackableTiles projects the unit's attack ranges from its reachable cells.
func AttackableTiles(ecs *entity.ECS, id types.EntityID) (mapset.Set[gridmap.Coord], bool) {
	reachable, ok := ReachableTiles(ecs, id)
	if !ok {
		return mapset.New[gridmap.Coord](), false
	}
	unit := ecs.Units[id]
	return gridmap.AttackableTiles(reachable, unit.Ranges), true
}
