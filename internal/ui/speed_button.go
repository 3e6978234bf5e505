// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpeedButton — двойной треугольник, цвет показывает текущую скорость
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.RGBA
	CurrentState  int
	shape         *polygon
}

func NewSpeedButton(x, y, size float32, stateColors []color.RGBA) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
		shape:       newPolygon(),
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	if len(b.StateColors) == 0 {
		return
	}
	triangleSize := b.Size * clickPulse(time.Since(b.LastClickTime).Seconds())
	clr := b.StateColors[b.CurrentState]

	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	// Левый и правый треугольники
	b.shape.fill(screen, clr, b.X-width, b.Y-height/2, b.X, b.Y, b.X-width, b.Y+height/2)
	b.shape.fill(screen, clr, b.X-width+offset, b.Y-height/2, b.X+offset, b.Y, b.X-width+offset, b.Y+height/2)
}

// IsClicked: круг для определения попадания, так как форма сложная
func (b *SpeedButton) IsClicked(x, y int) bool {
	return insideCircle(x, y, b.X, b.Y, b.Size*1.5)
}

func (b *SpeedButton) ToggleState() {
	if len(b.StateColors) == 0 {
		return
	}
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.LastClickTime = time.Now()
}
