// internal/system/annotation.go
package system

import (
	"sort"

	"grid-tactics/internal/entity"
	"grid-tactics/internal/event"
	"grid-tactics/pkg/gridmap"

	"github.com/zyedidia/generic/mapset"
)

// AnnotationSystem keeps the per-tile reachable/attack-movable flags in sync
// with the selected unit.
type AnnotationSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewAnnotationSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *AnnotationSystem {
	return &AnnotationSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *AnnotationSystem) Update(deltaTime float64) {
	changed := s.Recompute()
	if len(changed) > 0 {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.AnnotationsChanged,
			Data: event.AnnotationChange{Coords: changed},
		})
	}
}

// Recompute overwrites every tile annotation and returns the tiles whose
// flags actually changed, in row-major order.
func (s *AnnotationSystem) Recompute() []gridmap.Coord {
	reachable, attackable := s.highlightSets()

	var changed []gridmap.Coord
	for _, c := range s.annotatedCoords() {
		annotation, ok := s.ecs.Annotations[c]
		if !ok {
			continue
		}
		isReachable := reachable.Has(c)
		isAttackMovable := attackable.Has(c)
		if annotation.Reachable == isReachable && annotation.AttackMovable == isAttackMovable {
			continue
		}
		annotation.Reachable = isReachable
		annotation.AttackMovable = isAttackMovable
		changed = append(changed, c)
	}
	return changed
}

func (s *AnnotationSystem) highlightSets() (mapset.Set[gridmap.Coord], mapset.Set[gridmap.Coord]) {
	reachable, _ := ReachableTiles(s.ecs, s.ecs.Selected)
	attackable, _ := AttackableTiles(s.ecs, s.ecs.Selected)
	return reachable, attackable
}

// annotatedCoords walks the grid in row-major order; without a grid the
// leftover annotations are visited so they can be cleared.
func (s *AnnotationSystem) annotatedCoords() []gridmap.Coord {
	if s.ecs.GridMap != nil {
		return s.ecs.GridMap.Coords()
	}
	coords := make([]gridmap.Coord, 0, len(s.ecs.Annotations))
	for c := range s.ecs.Annotations {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool { return coords[i].Less(coords[j]) })
	return coords
}
