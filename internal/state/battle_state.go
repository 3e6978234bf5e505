// internal/state/battle_state.go
package state

import (
	"fmt"
	"sort"

	game "grid-tactics/internal/app"
	"grid-tactics/internal/config"
	"grid-tactics/internal/defs"
	"grid-tactics/internal/event"
	"grid-tactics/internal/types"
	"grid-tactics/internal/ui"
	"grid-tactics/pkg/gridmap"
	"grid-tactics/pkg/logger"
	"grid-tactics/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
	"golang.org/x/image/font/basicfont"
)

// BattleState — состояние боя на сетке
type BattleState struct {
	sm       *StateMachine
	scenario *defs.ScenarioDefinition
	game     *game.Game
	renderer *render.GridRenderer
	pause    *ui.PauseButton
	speed    *ui.SpeedButton
	teams    int // команд в начале боя
}

func NewBattleState(sm *StateMachine, scenario *defs.ScenarioDefinition) *BattleState {
	gameLogic := game.NewGame()
	gameLogic.LoadScenario(scenario)

	mapColors := &render.MapColors{
		BackgroundColor:     config.BackgroundColor,
		PassableColor:       config.PassableColor,
		DifficultColor:      config.DifficultColor,
		ImpassableColor:     config.ImpassableColor,
		GridLineColor:       config.GridLineColor,
		ReachableColor:      config.ReachableColor,
		AttackMovableColor:  config.AttackMovableColor,
		SelectedStrokeColor: config.SelectedStrokeColor,
		ProgressBarColor:    config.ProgressBarColor,
		ProgressTrackColor:  config.ProgressTrackColor,
		DefeatedColor:       config.DefeatedColor,
		TextLightColor:      config.TextLightColor,
		StrokeWidth:         config.HighlightStroke,
	}
	layout := render.Layout{TileSize: config.TileSize, OffsetX: config.GridOffsetX, OffsetY: config.GridOffsetY}
	renderer := render.NewGridRenderer(gameLogic.ECS.GridMap, layout, config.ScreenWidth, config.ScreenHeight, basicfont.Face7x13, mapColors)

	return &BattleState{
		sm:       sm,
		scenario: scenario,
		game:     gameLogic,
		renderer: renderer,
		pause: ui.NewPauseButton(config.PauseButtonX, config.ButtonY, config.ButtonSize,
			config.PauseButtonColor, config.PlayButtonColor),
		speed: ui.NewSpeedButton(config.SpeedButtonX, config.ButtonY, config.ButtonSize, config.SpeedButtonColors),
		teams: len(gameLogic.RemainingTeams()),
	}
}

func (b *BattleState) Enter() {
	logger.Log.WithField("scenario", b.game.ScenarioName).Info("battle started")
}

func (b *BattleState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		b.sm.SetState(NewPauseState(b.sm, b))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		b.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		b.toggleSpeed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		b.game.Select(types.NoEntity)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		b.game.SelectNextReady(b.selectedTeam())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		b.waitInPlace()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		// Сначала UI, потом поле
		x, y := ebiten.CursorPosition()
		switch {
		case b.pause.IsClicked(x, y):
			b.togglePause()
		case b.speed.IsClicked(x, y):
			b.toggleSpeed()
		default:
			if c, ok := b.cursorCoord(); ok {
				b.handleLeftClick(c)
			}
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if c, ok := b.cursorCoord(); ok {
			b.handleRightClick(c)
		}
	}

	b.game.Update(deltaTime)

	if teams := b.game.RemainingTeams(); battleOver(b.teams, teams) {
		b.sm.SetState(NewMenuState(b.sm, b.scenario, resultMessage(teams)))
	}
}

func (b *BattleState) togglePause() {
	b.game.HandlePauseClick()
	b.pause.TogglePause()
}

func (b *BattleState) toggleSpeed() {
	b.game.HandleSpeedClick()
	b.speed.ToggleState()
}

func (b *BattleState) cursorCoord() (gridmap.Coord, bool) {
	x, y := ebiten.CursorPosition()
	c, ok := b.renderer.Layout().CoordAt(x, y)
	if !ok || !b.game.ECS.GridMap.Contains(c) {
		return gridmap.Coord{}, false
	}
	return c, true
}

func (b *BattleState) selectedTeam() int {
	if sel := b.game.Selected(); sel != types.NoEntity {
		return b.game.ECS.Teams[sel]
	}
	return 0
}

// handleLeftClick: клик по юниту выбирает его, клик по подсвеченной клетке двигает выбранного
func (b *BattleState) handleLeftClick(c gridmap.Coord) {
	if b.game.SelectAt(c) {
		return
	}
	sel := b.game.Selected()
	if sel == types.NoEntity {
		return
	}
	if ann, ok := b.game.ECS.Annotations[c]; ok && ann.Reachable {
		b.propose(sel, c)
	}
}

// handleRightClick атакует юнита на клетке
func (b *BattleState) handleRightClick(c gridmap.Coord) {
	sel := b.game.Selected()
	target, ok := b.game.ECS.UnitOn(c)
	if sel == types.NoEntity || !ok {
		return
	}
	if id, ok := b.game.ProposeAttack(sel, target); ok {
		logger.Log.WithFields(logrus.Fields{
			"turn":   id,
			"actor":  b.game.ECS.Name(sel),
			"target": b.game.ECS.Name(target),
		}).Debug("attack proposed")
	}
}

func (b *BattleState) waitInPlace() {
	sel := b.game.Selected()
	if pos, ok := b.game.ECS.Positions[sel]; ok {
		b.propose(sel, pos.Coord)
	}
}

func (b *BattleState) propose(actor types.EntityID, to gridmap.Coord) {
	if id, ok := b.game.Propose(actor, to, event.Wait()); ok {
		logger.Log.WithFields(logrus.Fields{
			"turn":  id,
			"actor": b.game.ECS.Name(actor),
			"to":    to,
		}).Debug("move proposed")
	}
}

func (b *BattleState) Draw(screen *ebiten.Image) {
	reachable, attackable := b.highlights()
	b.renderer.Draw(screen, reachable, attackable, b.sprites())
	b.drawHUD(screen)
	b.pause.Draw(screen)
	b.speed.Draw(screen)
}

// highlights собирает подсветку из аннотаций клеток
func (b *BattleState) highlights() (mapset.Set[gridmap.Coord], mapset.Set[gridmap.Coord]) {
	reachable := mapset.New[gridmap.Coord]()
	attackable := mapset.New[gridmap.Coord]()
	for c, ann := range b.game.ECS.Annotations {
		if ann.Reachable {
			reachable.Put(c)
		}
		if ann.AttackMovable {
			attackable.Put(c)
		}
	}
	return reachable, attackable
}

func (b *BattleState) sprites() []render.UnitSprite {
	ecs := b.game.ECS
	ids := make([]types.EntityID, 0, len(ecs.Units))
	for id := range ecs.Units {
		ids = append(ids, id)
	}
	// Павшие рисуются первыми, чтобы живые на той же клетке были сверху
	sort.Slice(ids, func(i, j int) bool {
		ui, uj := ecs.Units[ids[i]], ecs.Units[ids[j]]
		if ui.Defeated != uj.Defeated {
			return ui.Defeated
		}
		return ids[i] < ids[j]
	})

	sprites := make([]render.UnitSprite, 0, len(ids))
	for _, id := range ids {
		unit, pos, ok := ecs.UnitAt(id)
		if !ok {
			continue
		}
		sprites = append(sprites, render.UnitSprite{
			Coord:    pos.Coord,
			Label:    ecs.Name(id),
			Color:    render.TeamColor(config.TeamColors, ecs.Teams[id]),
			Progress: unit.Progress(),
			HP:       unit.HP,
			MaxHP:    unit.MaxHP,
			Defeated: unit.Defeated,
			Selected: id == ecs.Selected,
		})
	}
	return sprites
}

func (b *BattleState) drawHUD(screen *ebiten.Image) {
	status := "running"
	if b.game.IsPaused() {
		status = "paused"
	}
	gm := b.game.ECS.GridMap
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %dx%d  t=%.1fs  x%.0f  %s",
		b.game.ScenarioName, gm.Width(), gm.Height(), b.game.GetGameTime(), b.game.SpeedMultiplier, status), 8, 8)
	ebitenutil.DebugPrintAt(screen, "LMB select/move  RMB attack  W wait  TAB next ready  SPACE pause  F speed", 8, 24)

	sel := b.game.Selected()
	unit, pos, ok := b.game.ECS.UnitAt(sel)
	if !ok {
		return
	}
	info := fmt.Sprintf("%s [team %d] at %v  HP %d/%d  init %.1f/%.1f  speed %d  ranges %v  atk %d",
		b.game.ECS.Name(sel), b.game.ECS.Teams[sel], pos.Coord, unit.HP, unit.MaxHP,
		unit.Initiative, unit.MaxInitiative, unit.Speed, unit.Ranges, unit.Attack)
	ebitenutil.DebugPrintAt(screen, info, 8, config.ScreenHeight-24)
}

func (b *BattleState) Exit() {}

// battleOver: бой идёт, пока стоят хотя бы две команды. Сценарий с одной
// командой (песочница) не заканчивается сам.
func battleOver(startTeams int, remaining map[int]int) bool {
	return startTeams >= 2 && len(remaining) <= 1
}

func resultMessage(teams map[int]int) string {
	for team := range teams {
		return fmt.Sprintf("Team %d wins", team)
	}
	return "Draw"
}
