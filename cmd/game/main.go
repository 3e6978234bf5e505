// cmd/game/main.go
package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"time"

	"grid-tactics/internal/config"
	"grid-tactics/internal/defs"
	"grid-tactics/internal/state"
	"grid-tactics/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	scenarioPath := flag.String("scenario", "", "path to a scenario JSON file (built-in scenario if empty)")
	scenarioName := flag.String("builtin", config.DefaultScenarioName, "name of the built-in scenario")
	pprofAddr := flag.String("pprof", config.DefaultPprofAddr, "pprof listen address, empty to disable")
	startFromMenu := flag.Bool("menu", false, "start from the menu instead of the battle")
	flag.Parse()

	logger.Init()

	if *pprofAddr != "" {
		go func() {
			logger.Log.Warn(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	var (
		scenario *defs.ScenarioDefinition
		err      error
	)
	if *scenarioPath != "" {
		scenario, err = defs.LoadScenario(*scenarioPath)
	} else {
		scenario, err = defs.BuiltinScenario(*scenarioName)
	}
	if err != nil {
		logger.Log.WithError(err).Fatal("cannot load scenario")
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	if *startFromMenu {
		sm.SetState(state.NewMenuState(sm, scenario, "Grid Tactics"))
	} else {
		sm.SetState(state.NewBattleState(sm, scenario))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Grid Tactics")
	if err := ebiten.RunGame(app); err != nil {
		logger.Log.WithError(err).Fatal("game loop stopped")
	}
}
