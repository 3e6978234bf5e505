// internal/state/menu_state.go
package state

import (
	"image/color"

	"grid-tactics/internal/config"
	"grid-tactics/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MenuState — заставка перед боем и экран итога после него
type MenuState struct {
	sm       *StateMachine
	scenario *defs.ScenarioDefinition
	title    string
}

func NewMenuState(sm *StateMachine, scenario *defs.ScenarioDefinition, title string) *MenuState {
	return &MenuState{sm: sm, scenario: scenario, title: title}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewBattleState(m.sm, m.scenario))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255}) // Чёрный экран

	lines := []string{m.title, "scenario: " + m.scenario.Name, "press SPACE to start"}
	y := config.ScreenHeight/2 - 20
	for _, line := range lines {
		width := text.BoundString(basicfont.Face7x13, line).Dx()
		text.Draw(screen, line, basicfont.Face7x13, (config.ScreenWidth-width)/2, y, config.TextLightColor)
		y += 20
	}
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
