// internal/ui/shape.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// polygon рисует залитый многоугольник по точкам (x0, y0, x1, y1, ...)
type polygon struct {
	fillImg *ebiten.Image
	vs      []ebiten.Vertex
	is      []uint16
}

func newPolygon() *polygon {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return &polygon{fillImg: img}
}

func (p *polygon) fill(target *ebiten.Image, clr color.RGBA, points ...float32) {
	if len(points) < 6 {
		return
	}
	path := vector.Path{}
	path.MoveTo(points[0], points[1])
	for i := 2; i+1 < len(points); i += 2 {
		path.LineTo(points[i], points[i+1])
	}
	path.Close()

	p.vs, p.is = path.AppendVerticesAndIndicesForFilling(p.vs[:0], p.is[:0])
	for i := range p.vs {
		p.vs[i].ColorR = float32(clr.R) / 255
		p.vs[i].ColorG = float32(clr.G) / 255
		p.vs[i].ColorB = float32(clr.B) / 255
		p.vs[i].ColorA = float32(clr.A) / 255
	}
	target.DrawTriangles(p.vs, p.is, p.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// clickPulse — масштаб кнопки, затухающий после клика
func clickPulse(elapsed float64) float32 {
	return float32(1.0 + 0.3*math.Exp(-elapsed*8))
}

func insideCircle(x, y int, cx, cy, r float32) bool {
	dx, dy := float32(x)-cx, float32(y)-cy
	return dx*dx+dy*dy <= r*r
}
