// internal/app/game.go
package app

import (
	"grid-tactics/internal/component"
	"grid-tactics/internal/defs"
	"grid-tactics/internal/entity"
	"grid-tactics/internal/event"
	"grid-tactics/internal/system"
	"grid-tactics/internal/types"
	"grid-tactics/pkg/gridmap"
	"grid-tactics/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// speedSteps are the game speed multipliers the speed toggle cycles through.
var speedSteps = []float64{1, 2, 4}

// Game holds the battle state and runs the tick pipeline.
type Game struct {
	ECS                  *entity.ECS
	EventDispatcher      *event.Dispatcher
	Proposals            *event.Queue[event.TurnProposal]
	Validated            *event.Queue[event.ValidatedTurn]
	InitiativeSystem     *system.InitiativeSystem
	TurnValidationSystem *system.TurnValidationSystem
	TurnApplySystem      *system.TurnApplySystem
	AnnotationSystem     *system.AnnotationSystem
	SpeedMultiplier      float64
	ScenarioName         string

	pipeline  []system.System
	gameTime  float64
	isPaused  bool
	speedStep int
}

// NewGame wires the systems in their tick order. The battle is empty until
// LoadScenario registers a grid and a roster.
func NewGame() *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	proposals := event.NewQueue[event.TurnProposal]()
	validated := event.NewQueue[event.ValidatedTurn]()

	g := &Game{
		ECS:                  ecs,
		EventDispatcher:      eventDispatcher,
		Proposals:            proposals,
		Validated:            validated,
		InitiativeSystem:     system.NewInitiativeSystem(ecs),
		TurnValidationSystem: system.NewTurnValidationSystem(ecs, proposals, validated, eventDispatcher),
		TurnApplySystem:      system.NewTurnApplySystem(ecs, validated, eventDispatcher),
		AnnotationSystem:     system.NewAnnotationSystem(ecs, eventDispatcher),
		SpeedMultiplier:      speedSteps[0],
	}
	// Порядок важен: инициатива -> валидация -> применение -> подсветка
	g.pipeline = []system.System{
		g.InitiativeSystem,
		g.TurnValidationSystem,
		g.TurnApplySystem,
		g.AnnotationSystem,
	}

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.UnitDefeated, listener)
	eventDispatcher.Subscribe(event.TurnApplied, listener)
	return g
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.UnitDefeated:
		if defeat, ok := e.Data.(event.Defeat); ok && l.game.ECS.Selected == defeat.Unit {
			l.game.ECS.Selected = types.NoEntity
		}
	case event.TurnApplied:
		if turn, ok := e.Data.(event.ValidatedTurn); ok {
			logger.Log.WithFields(logrus.Fields{
				"actor":  l.game.ECS.Name(turn.Actor),
				"to":     turn.End,
				"action": turn.Action.Kind,
				"time":   l.game.gameTime,
			}).Info("turn resolved")
		}
	}
}

// LoadScenario replaces the battle with the scenario's map and roster.
// Placements on unknown archetypes are skipped; ParseScenario already rejects them.
func (g *Game) LoadScenario(def *defs.ScenarioDefinition) {
	ecs := g.ECS
	for id := range ecs.Units {
		ecs.RemoveEntity(id)
	}
	ecs.Selected = types.NoEntity

	cells := make([]gridmap.RawCell, 0, len(def.Cells))
	for _, c := range def.Cells {
		cells = append(cells, gridmap.RawCell{Coord: gridmap.Coord{X: c.X, Y: c.Y}, Value: c.Value})
	}
	ecs.SetGridMap(gridmap.NewGridMap(def.Width, def.Height, cells))

	library := def.UnitLibrary()
	for _, p := range def.Placements {
		unitDef, ok := library[p.UnitID]
		if !ok {
			continue
		}
		initiative := 0.0
		if p.Initiative != nil {
			initiative = *p.Initiative
		}
		hp := unitDef.MaxHP
		if p.HP != nil {
			hp = *p.HP
		}
		name := p.Name
		if name == "" {
			name = unitDef.Name
		}
		unit := component.NewUnit(unitDef.MaxInitiative, initiative, unitDef.MaxHP, hp,
			unitDef.Speed, unitDef.Ranges, unitDef.Attack, unitDef.Armor)
		id := ecs.SpawnUnit(name, unit, gridmap.Coord{X: p.X, Y: p.Y})
		ecs.Teams[id] = p.Team
	}

	g.ScenarioName = def.Name
	g.gameTime = 0
	g.AnnotationSystem.Recompute()
}

// Update progresses the battle by one tick.
func (g *Game) Update(deltaTime float64) {
	dt := deltaTime * g.SpeedMultiplier
	if g.isPaused {
		dt = 0
	}
	g.gameTime += dt

	for _, s := range g.pipeline {
		s.Update(dt)
	}
}

// SubmitTurn queues a proposal for the next validation pass and returns its id.
func (g *Game) SubmitTurn(p event.TurnProposal) uuid.UUID {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	g.Proposals.Push(p)
	return p.ID
}

// Propose builds a proposal from the actor's currently known position.
// ok is false when the actor is unknown; nothing is queued then.
func (g *Game) Propose(actor types.EntityID, end gridmap.Coord, action event.Action) (uuid.UUID, bool) {
	_, pos, ok := g.ECS.UnitAt(actor)
	if !ok {
		return uuid.Nil, false
	}
	return g.SubmitTurn(event.TurnProposal{
		Actor:  actor,
		Start:  pos.Coord,
		End:    end,
		Action: action,
	}), true
}

// ProposeAttack queues an attack on target from the closest reachable tile
// that has target on one of the actor's range rings. Allies, defeated units
// and targets out of reach are refused.
func (g *Game) ProposeAttack(actor, target types.EntityID) (uuid.UUID, bool) {
	end, ok := g.AttackPosition(actor, target)
	if !ok {
		return uuid.Nil, false
	}
	return g.Propose(actor, end, event.Attack(target))
}

// AttackPosition picks the end tile for an attack: fewest steps from the
// actor's position first, then by (X, Y).
func (g *Game) AttackPosition(actor, target types.EntityID) (gridmap.Coord, bool) {
	unit, pos, ok := g.ECS.UnitAt(actor)
	if !ok {
		return gridmap.Coord{}, false
	}
	victim, targetPos, ok := g.ECS.UnitAt(target)
	if !ok || victim.Defeated || actor == target || g.ECS.Teams[actor] == g.ECS.Teams[target] {
		return gridmap.Coord{}, false
	}
	reachable, ok := system.ReachableTiles(g.ECS, actor)
	if !ok {
		return gridmap.Coord{}, false
	}

	var best gridmap.Coord
	found := false
	reachable.Each(func(c gridmap.Coord) {
		if c == targetPos.Coord || !inRange(c.Distance(targetPos.Coord), unit.Ranges) {
			return
		}
		if !found || closer(c, best, pos.Coord) {
			best, found = c, true
		}
	})
	return best, found
}

func inRange(d int, ranges []int) bool {
	for _, r := range ranges {
		if r == d {
			return true
		}
	}
	return false
}

func closer(a, b, from gridmap.Coord) bool {
	da, db := a.Distance(from), b.Distance(from)
	if da != db {
		return da < db
	}
	return a.Less(b)
}

// Select makes id the unit whose reach is highlighted. NoEntity clears it.
func (g *Game) Select(id types.EntityID) {
	g.ECS.Selected = id
}

func (g *Game) Selected() types.EntityID {
	return g.ECS.Selected
}

// SelectAt selects the unit standing on c, if any.
func (g *Game) SelectAt(c gridmap.Coord) bool {
	id, ok := g.ECS.UnitOn(c)
	if ok {
		g.Select(id)
	}
	return ok
}

// SelectNextReady cycles the selection to the next ready unit of team, by id.
func (g *Game) SelectNextReady(team int) bool {
	var ready []types.EntityID
	for id, unit := range g.ECS.Units {
		if g.ECS.Teams[id] == team && unit.IsReady() {
			ready = append(ready, id)
		}
	}
	if len(ready) == 0 {
		return false
	}
	next := ready[0]
	for _, id := range ready {
		if id < next {
			next = id
		}
	}
	// Следующий после текущего выбранного, с переходом по кругу
	for _, id := range ready {
		if id > g.ECS.Selected && (next <= g.ECS.Selected || id < next) {
			next = id
		}
	}
	g.Select(next)
	return true
}

// RemainingTeams returns the teams that still have a unit standing.
func (g *Game) RemainingTeams() map[int]int {
	teams := make(map[int]int)
	for id, unit := range g.ECS.Units {
		if !unit.Defeated {
			teams[g.ECS.Teams[id]]++
		}
	}
	return teams
}

func (g *Game) HandleSpeedClick() {
	g.speedStep = (g.speedStep + 1) % len(speedSteps)
	g.SpeedMultiplier = speedSteps[g.speedStep]
}

func (g *Game) HandlePauseClick() {
	g.isPaused = !g.isPaused
}

// IsPaused возвращает текущее состояние паузы.
func (g *Game) IsPaused() bool {
	return g.isPaused
}

func (g *Game) GetGameTime() float64 {
	return g.gameTime
}
