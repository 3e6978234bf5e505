// pkg/render/color.go
package render

import "image/color"

// MapColors holds all the color definitions needed to render the battle grid.
type MapColors struct {
	BackgroundColor     color.RGBA
	PassableColor       color.RGBA
	DifficultColor      color.RGBA
	ImpassableColor     color.RGBA
	GridLineColor       color.RGBA
	ReachableColor      color.RGBA
	AttackMovableColor  color.RGBA
	SelectedStrokeColor color.RGBA
	ProgressBarColor    color.RGBA
	ProgressTrackColor  color.RGBA
	DefeatedColor       color.RGBA
	TextLightColor      color.RGBA
	StrokeWidth         float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// TeamColor returns the palette entry for team, wrapping around the palette.
func TeamColor(palette []color.RGBA, team int) color.RGBA {
	if len(palette) == 0 {
		return color.RGBA{255, 255, 255, 255}
	}
	if team < 0 {
		team = -team
	}
	return palette[team%len(palette)]
}
