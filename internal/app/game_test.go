package app

import (
	"io"
	"os"
	"testing"

	"grid-tactics/internal/defs"
	"grid-tactics/internal/event"
	"grid-tactics/internal/types"
	"grid-tactics/pkg/gridmap"
	"grid-tactics/pkg/logger"

	"github.com/google/uuid"
)

func TestMain(m *testing.M) {
	logger.Log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func ptr[T any](v T) *T { return &v }

// duel: a 6x3 field, blue knight ready at (0,1), red archer charging at (3,1).
func duel() *defs.ScenarioDefinition {
	return &defs.ScenarioDefinition{
		Name:   "duel",
		Width:  6,
		Height: 3,
		Cells: []defs.CellDef{
			{X: 1, Y: 0, Value: 2},
			{X: 2, Y: 2, Value: 1},
		},
		Units: []defs.UnitDefinition{
			{ID: "KNIGHT", Name: "Knight", MaxInitiative: 2, MaxHP: 20, Speed: 3, Ranges: []int{1}, Attack: 6, Armor: 2},
			{ID: "ARCHER", Name: "Archer", MaxInitiative: 4, MaxHP: 10, Speed: 2, Ranges: []int{2}, Attack: 4},
		},
		Placements: []defs.PlacementDef{
			{UnitID: "KNIGHT", Team: 0, X: 0, Y: 1, Initiative: ptr(2.0)},
			{UnitID: "ARCHER", Name: "Red Archer", Team: 1, X: 3, Y: 1, HP: ptr(5)},
		},
	}
}

func loadDuel(t *testing.T) (*Game, types.EntityID, types.EntityID) {
	t.Helper()
	g := NewGame()
	g.LoadScenario(duel())
	knight, ok := g.ECS.UnitOn(gridmap.Coord{X: 0, Y: 1})
	if !ok {
		t.Fatal("knight should be placed")
	}
	archer, ok := g.ECS.UnitOn(gridmap.Coord{X: 3, Y: 1})
	if !ok {
		t.Fatal("archer should be placed")
	}
	return g, knight, archer
}

func TestLoadScenario_BuildsBattle(t *testing.T) {
	g, knight, archer := loadDuel(t)

	if g.ECS.GridMap == nil || len(g.ECS.GridMap.Tiles) != 18 {
		t.Fatal("grid should cover the 6x3 index")
	}
	if len(g.ECS.Annotations) != 18 {
		t.Fatalf("every tile should carry an annotation, got %d", len(g.ECS.Annotations))
	}
	if g.ECS.Name(archer) != "Red Archer" || g.ECS.Name(knight) != "Knight" {
		t.Fatalf("unexpected names %q and %q", g.ECS.Name(knight), g.ECS.Name(archer))
	}
	if hp := g.ECS.Units[archer].HP; hp != 5 {
		t.Fatalf("placement hp override should apply, got %d", hp)
	}
	if !g.ECS.Units[knight].IsReady() || g.ECS.Units[archer].IsReady() {
		t.Fatal("knight should start ready, archer charging")
	}
	if g.ECS.Teams[archer] != 1 {
		t.Fatal("archer should be on team 1")
	}

	// Reloading replaces the roster instead of adding to it.
	g.LoadScenario(duel())
	if len(g.ECS.Units) != 2 {
		t.Fatalf("expected 2 units after reload, got %d", len(g.ECS.Units))
	}
}

func TestGame_ProposeValidateApply(t *testing.T) {
	g, knight, archer := loadDuel(t)
	applied := 0
	g.EventDispatcher.Subscribe(event.TurnApplied, event.ListenerFunc(func(event.Event) { applied++ }))

	if _, ok := g.Propose(knight, gridmap.Coord{X: 2, Y: 1}, event.Attack(archer)); !ok {
		t.Fatal("knight should be able to propose")
	}
	g.Update(0)

	if applied != 1 {
		t.Fatalf("expected 1 applied turn, got %d", applied)
	}
	unit, pos, _ := g.ECS.UnitAt(knight)
	if pos.Coord != (gridmap.Coord{X: 2, Y: 1}) || unit.Initiative != 0 {
		t.Fatalf("knight should be at (2,1) with 0 initiative, got %v / %v", pos.Coord, unit.Initiative)
	}
	target := g.ECS.Units[archer]
	if target.HP != 0 || !target.Defeated {
		t.Fatalf("6 damage on 5 hp should defeat the archer, hp %d", target.HP)
	}
	if teams := g.RemainingTeams(); len(teams) != 1 || teams[0] != 1 {
		t.Fatalf("only team 0 should remain, got %v", teams)
	}
}

func TestGame_StaleProposalRejectedWithoutMutation(t *testing.T) {
	g, knight, archer := loadDuel(t)
	rejected := 0
	g.EventDispatcher.Subscribe(event.TurnRejected, event.ListenerFunc(func(event.Event) { rejected++ }))

	id := g.SubmitTurn(event.TurnProposal{
		Actor:  knight,
		Start:  gridmap.Coord{X: 1, Y: 1},
		End:    gridmap.Coord{X: 2, Y: 1},
		Action: event.Attack(archer),
	})
	if id == uuid.Nil {
		t.Fatal("submitted proposal should get an id")
	}
	g.Update(0)

	if rejected != 1 {
		t.Fatalf("expected 1 rejection, got %d", rejected)
	}
	unit, pos, _ := g.ECS.UnitAt(knight)
	if pos.Coord != (gridmap.Coord{X: 0, Y: 1}) || unit.Initiative != 2 {
		t.Fatal("rejected proposal must not move or reset the actor")
	}
	if g.ECS.Units[archer].HP != 5 {
		t.Fatal("rejected proposal must not damage the target")
	}
}

func TestGame_InitiativeGate(t *testing.T) {
	g, _, archer := loadDuel(t)

	g.Propose(archer, gridmap.Coord{X: 4, Y: 1}, event.Wait())
	g.Update(1)
	if g.ECS.Positions[archer].Coord != (gridmap.Coord{X: 3, Y: 1}) {
		t.Fatal("charging archer must not move")
	}

	// 1s charged above, 3 more fill the bar.
	g.Update(3)
	g.Propose(archer, gridmap.Coord{X: 4, Y: 1}, event.Wait())
	g.Update(0)
	if got := g.ECS.Positions[archer].Coord; got != (gridmap.Coord{X: 4, Y: 1}) {
		t.Fatalf("ready archer should move, at %v", got)
	}
}

func TestGame_SecondProposalInSameTickIsNotReady(t *testing.T) {
	g, knight, _ := loadDuel(t)

	g.Propose(knight, gridmap.Coord{X: 0, Y: 0}, event.Wait())
	g.Propose(knight, gridmap.Coord{X: 0, Y: 2}, event.Wait())
	g.Update(0)

	if got := g.ECS.Positions[knight].Coord; got != (gridmap.Coord{X: 0, Y: 0}) {
		t.Fatalf("only the first proposal should apply, knight at %v", got)
	}
}

func TestGame_SelectionDrivesAnnotations(t *testing.T) {
	g, knight, _ := loadDuel(t)

	if !g.SelectAt(gridmap.Coord{X: 0, Y: 1}) || g.Selected() != knight {
		t.Fatal("clicking the knight's tile should select it")
	}
	g.Update(0)
	if !g.ECS.Annotations[gridmap.Coord{X: 3, Y: 1}].Reachable {
		t.Fatal("(3,1) is 3 steps away and should be reachable")
	}
	if a := g.ECS.Annotations[gridmap.Coord{X: 4, Y: 1}]; a.Reachable || !a.AttackMovable {
		t.Fatalf("(4,1) should be attack-movable only, got %+v", a)
	}

	if g.SelectAt(gridmap.Coord{X: 5, Y: 2}) {
		t.Fatal("empty tile should not select")
	}
	g.Select(types.NoEntity)
	g.Update(0)
	for c, a := range g.ECS.Annotations {
		if a.Reachable || a.AttackMovable {
			t.Fatalf("tile %v should be cleared", c)
		}
	}
}

func TestGame_DefeatClearsSelection(t *testing.T) {
	g, knight, archer := loadDuel(t)
	g.Select(archer)
	g.Propose(knight, gridmap.Coord{X: 2, Y: 1}, event.Attack(archer))
	g.Update(0)
	if g.Selected() != types.NoEntity {
		t.Fatal("defeated unit should be deselected")
	}
}

func TestGame_PauseAndSpeed(t *testing.T) {
	g, _, archer := loadDuel(t)

	g.HandlePauseClick()
	g.Update(1)
	if g.ECS.Units[archer].Initiative != 0 || g.GetGameTime() != 0 {
		t.Fatal("paused game should not advance")
	}
	g.HandlePauseClick()

	g.HandleSpeedClick()
	if g.SpeedMultiplier != 2 {
		t.Fatalf("expected x2, got %v", g.SpeedMultiplier)
	}
	g.Update(1)
	if g.ECS.Units[archer].Initiative != 2 {
		t.Fatalf("x2 speed should charge 2, got %v", g.ECS.Units[archer].Initiative)
	}
	g.HandleSpeedClick()
	g.HandleSpeedClick()
	if g.SpeedMultiplier != 1 {
		t.Fatalf("speed should wrap to x1, got %v", g.SpeedMultiplier)
	}
}

func TestGame_SelectNextReady(t *testing.T) {
	g, knight, archer := loadDuel(t)

	if !g.SelectNextReady(0) || g.Selected() != knight {
		t.Fatal("knight is the only ready unit of team 0")
	}
	if g.SelectNextReady(1) {
		t.Fatal("team 1 has nothing ready")
	}
	g.ECS.Units[archer].Initiative = 4
	g.ECS.Teams[archer] = 0
	g.Select(types.NoEntity)
	g.SelectNextReady(0)
	first := g.Selected()
	g.SelectNextReady(0)
	second := g.Selected()
	g.SelectNextReady(0)
	if first == second || g.Selected() != first {
		t.Fatalf("selection should cycle, got %v %v %v", first, second, g.Selected())
	}
}

func TestGame_ProposeUnknownActor(t *testing.T) {
	g, _, _ := loadDuel(t)
	if _, ok := g.Propose(777, gridmap.Coord{}, event.Wait()); ok {
		t.Fatal("unknown actor should not queue anything")
	}
	if g.Proposals.Len() != 0 {
		t.Fatal("queue should stay empty")
	}
}

func TestGame_UpdateWithoutScenario(t *testing.T) {
	g := NewGame()
	g.SubmitTurn(event.TurnProposal{Actor: 1})
	g.Update(0.016)
	if g.Proposals.Len() != 0 || g.Validated.Len() != 0 {
		t.Fatal("empty battle should drop proposals quietly")
	}
}

func TestGame_DefaultScenarioLoads(t *testing.T) {
	def, err := defs.BuiltinScenario("default")
	if err != nil {
		t.Fatal(err)
	}
	g := NewGame()
	g.LoadScenario(def)
	if len(g.ECS.Units) != len(def.Placements) {
		t.Fatalf("expected %d units, got %d", len(def.Placements), len(g.ECS.Units))
	}
	for id, pos := range g.ECS.Positions {
		if !g.ECS.GridMap.IsOccupiable(pos.Coord) {
			t.Fatalf("%s placed on a blocked tile %v", g.ECS.Name(id), pos.Coord)
		}
	}
}

func TestGame_ProposeAttackPicksClosestFiringTile(t *testing.T) {
	g, knight, archer := loadDuel(t)

	end, ok := g.AttackPosition(knight, archer)
	if !ok || end != (gridmap.Coord{X: 2, Y: 1}) {
		t.Fatalf("expected to strike from (2,1), got %v ok=%v", end, ok)
	}

	if _, ok := g.ProposeAttack(knight, archer); !ok {
		t.Fatal("attack should be queued")
	}
	g.Update(0)

	if got := g.ECS.Positions[knight].Coord; got != end {
		t.Fatalf("knight should end at %v, got %v", end, got)
	}
	if !g.ECS.Units[archer].Defeated {
		t.Fatal("6 damage should defeat a 5 hp archer")
	}
	if _, ok := g.ProposeAttack(knight, archer); ok {
		t.Fatal("defeated targets cannot be attacked")
	}
}

func TestGame_AttackPositionRefusals(t *testing.T) {
	g, knight, archer := loadDuel(t)

	if _, ok := g.AttackPosition(knight, knight); ok {
		t.Fatal("a unit cannot target itself")
	}
	if _, ok := g.AttackPosition(archer, types.EntityID(999)); ok {
		t.Fatal("unknown target should be refused")
	}
	g.ECS.Teams[archer] = g.ECS.Teams[knight]
	if _, ok := g.AttackPosition(knight, archer); ok {
		t.Fatal("allies cannot be targeted")
	}
}
