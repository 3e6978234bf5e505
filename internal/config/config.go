// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 960
	ScreenHeight = 720
	TileSize     = 48.0 // пикселей на клетку
	GridOffsetX  = 32.0
	GridOffsetY  = 64.0
	MaxDeltaTime = 0.06

	// InitiativeRate is initiative gained per second of game time.
	InitiativeRate = 1.0

	HighlightStroke = 2.0

	ButtonY      = 28.0
	ButtonSize   = 10.0
	PauseButtonX = ScreenWidth - 90.0
	SpeedButtonX = ScreenWidth - 40.0

	DefaultScenarioName = "default"
	DefaultPprofAddr    = "localhost:6060"
)

var (
	BackgroundColor     = color.RGBA{20, 20, 30, 255}
	PassableColor       = color.RGBA{70, 100, 120, 220}
	DifficultColor      = color.RGBA{110, 100, 60, 220}
	ImpassableColor     = color.RGBA{150, 70, 70, 220}
	GridLineColor       = color.RGBA{30, 40, 50, 255}
	ReachableColor      = color.RGBA{80, 160, 255, 110}
	AttackMovableColor  = color.RGBA{255, 90, 60, 110}
	SelectedStrokeColor = color.RGBA{255, 215, 0, 255}
	ProgressBarColor    = color.RGBA{51, 178, 127, 255} // rgb(0.2, 0.7, 0.5)
	ProgressTrackColor  = color.RGBA{10, 10, 10, 200}
	DefeatedColor       = color.RGBA{90, 90, 90, 255}
	TextLightColor      = color.RGBA{240, 240, 240, 255}
	PauseButtonColor    = color.RGBA{220, 220, 220, 255}
	PlayButtonColor     = color.RGBA{80, 200, 120, 255}
	SpeedButtonColors   = []color.RGBA{
		{200, 200, 200, 255}, // x1
		{255, 200, 60, 255},  // x2
		{255, 90, 60, 255},   // x4
	}
	TeamColors = []color.RGBA{
		{128, 102, 76, 255}, // rgb(0.5, 0.4, 0.3)
		{60, 120, 200, 255},
		{200, 70, 70, 255},
		{160, 90, 200, 255},
	}
)
