// internal/entity/ecs.go
package entity

import (
	"grid-tactics/internal/component"
	"grid-tactics/internal/types"
	"grid-tactics/pkg/gridmap"
)

// ECS owns every entity of a battle. Other code holds ids, never pointers
// that outlive a tick.
type ECS struct {
	NextID      types.EntityID
	Names       map[types.EntityID]string
	Teams       map[types.EntityID]int
	Units       map[types.EntityID]*component.Unit
	Positions   map[types.EntityID]*component.GridPosition
	Annotations map[gridmap.Coord]*component.Annotation // Аннотации принадлежат клеткам, а не юнитам
	GridMap     *gridmap.GridMap                        // nil, пока карта не загружена
	Selected    types.EntityID
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Names:       make(map[types.EntityID]string),
		Teams:       make(map[types.EntityID]int),
		Units:       make(map[types.EntityID]*component.Unit),
		Positions:   make(map[types.EntityID]*component.GridPosition),
		Annotations: make(map[gridmap.Coord]*component.Annotation),
		Selected:    types.NoEntity,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// SetGridMap registers the tile store and gives every known tile a blank annotation.
func (ecs *ECS) SetGridMap(gm *gridmap.GridMap) {
	ecs.GridMap = gm
	ecs.Annotations = make(map[gridmap.Coord]*component.Annotation)
	for _, c := range gm.Coords() {
		ecs.Annotations[c] = &component.Annotation{}
	}
}

// SpawnUnit adds a unit at pos and returns its id.
func (ecs *ECS) SpawnUnit(name string, unit *component.Unit, pos gridmap.Coord) types.EntityID {
	id := ecs.NewEntity()
	ecs.Names[id] = name
	ecs.Units[id] = unit
	ecs.Positions[id] = &component.GridPosition{Coord: pos}
	return id
}

// RemoveEntity drops every component of id. Clears the selection if it pointed at id.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Names, id)
	delete(ecs.Teams, id)
	delete(ecs.Units, id)
	delete(ecs.Positions, id)
	if ecs.Selected == id {
		ecs.Selected = types.NoEntity
	}
}

// UnitAt resolves both the unit and its position; ok is false when either is missing.
func (ecs *ECS) UnitAt(id types.EntityID) (*component.Unit, *component.GridPosition, bool) {
	unit, hasUnit := ecs.Units[id]
	pos, hasPos := ecs.Positions[id]
	if !hasUnit || !hasPos {
		return nil, nil, false
	}
	return unit, pos, true
}

// UnitOn returns the first non-defeated unit standing on c.
func (ecs *ECS) UnitOn(c gridmap.Coord) (types.EntityID, bool) {
	best := types.NoEntity
	for id, pos := range ecs.Positions {
		if pos.Coord != c {
			continue
		}
		if unit, ok := ecs.Units[id]; !ok || unit.Defeated {
			continue
		}
		// Map order is random; the lowest id wins so picks are stable.
		if best == types.NoEntity || id < best {
			best = id
		}
	}
	return best, best != types.NoEntity
}

func (ecs *ECS) Name(id types.EntityID) string {
	if name, ok := ecs.Names[id]; ok {
		return name
	}
	return id.String()
}
