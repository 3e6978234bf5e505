package entity

import (
	"testing"

	"grid-tactics/internal/component"
	"grid-tactics/internal/types"
	"grid-tactics/pkg/gridmap"
)

func TestECS_SpawnAndResolve(t *testing.T) {
	ecs := NewECS()
	a := ecs.SpawnUnit("knight", component.NewUnit(10, 0, 20, 20, 3, []int{1}, 5, 1), gridmap.Coord{X: 1, Y: 2})
	b := ecs.SpawnUnit("archer", component.NewUnit(10, 0, 12, 12, 2, []int{2}, 4, 0), gridmap.Coord{X: 3, Y: 2})

	if a == types.NoEntity || a == b {
		t.Fatalf("expected distinct non-zero ids, got %v and %v", a, b)
	}
	unit, pos, ok := ecs.UnitAt(a)
	if !ok {
		t.Fatal("spawned unit should resolve")
	}
	if pos.Coord != (gridmap.Coord{X: 1, Y: 2}) || unit.Speed != 3 {
		t.Fatalf("unexpected unit %+v at %v", unit, pos.Coord)
	}
	if ecs.Name(b) != "archer" {
		t.Fatalf("expected archer, got %q", ecs.Name(b))
	}
}

func TestECS_RemoveEntityClearsSelection(t *testing.T) {
	ecs := NewECS()
	id := ecs.SpawnUnit("scout", component.NewUnit(5, 5, 8, 8, 4, nil, 2, 0), gridmap.Coord{})
	ecs.Selected = id
	ecs.RemoveEntity(id)

	if _, _, ok := ecs.UnitAt(id); ok {
		t.Fatal("removed unit should not resolve")
	}
	if ecs.Selected != types.NoEntity {
		t.Fatal("selection should be cleared")
	}
	if ecs.Name(id) != id.String() {
		t.Fatalf("unknown entity should fall back to its id, got %q", ecs.Name(id))
	}
}

func TestECS_UnitOnSkipsDefeated(t *testing.T) {
	ecs := NewECS()
	c := gridmap.Coord{X: 2, Y: 2}
	dead := ecs.SpawnUnit("dead", component.NewUnit(5, 0, 5, 0, 1, nil, 1, 0), c)
	alive := ecs.SpawnUnit("alive", component.NewUnit(5, 0, 5, 5, 1, nil, 1, 0), c)

	got, ok := ecs.UnitOn(c)
	if !ok || got != alive {
		t.Fatalf("expected %v on %v, got %v (dead is %v)", alive, c, got, dead)
	}
	if _, ok := ecs.UnitOn(gridmap.Coord{}); ok {
		t.Fatal("empty tile should have no unit")
	}
}

func TestECS_SetGridMapAnnotatesEveryTile(t *testing.T) {
	ecs := NewECS()
	ecs.SetGridMap(gridmap.NewGridMap(3, 3, nil))
	if len(ecs.Annotations) != 9 {
		t.Fatalf("expected 9 annotations, got %d", len(ecs.Annotations))
	}
	for c, a := range ecs.Annotations {
		if a.Reachable || a.AttackMovable {
			t.Fatalf("annotation at %v should start blank", c)
		}
	}
}
