// pkg/render/grid_renderer.go
package render

import (
	"image/color"

	"grid-tactics/pkg/gridmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/zyedidia/generic/mapset"
	"golang.org/x/image/font"
)

// UnitSprite is everything the renderer needs to draw one unit.
type UnitSprite struct {
	Coord    gridmap.Coord
	Label    string
	Color    color.RGBA
	Progress float64 // 0..1
	HP       int
	MaxHP    int
	Defeated bool
	Selected bool
}

type GridRenderer struct {
	gridMap  *gridmap.GridMap
	layout   Layout
	colors   *MapColors
	fontFace font.Face
	mapImage *ebiten.Image // Поле для предрендеренной карты
}

func NewGridRenderer(gm *gridmap.GridMap, layout Layout, screenWidth, screenHeight int, face font.Face, colors *MapColors) *GridRenderer {
	r := &GridRenderer{
		gridMap:  gm,
		layout:   layout,
		colors:   colors,
		fontFace: face,
		mapImage: ebiten.NewImage(screenWidth, screenHeight),
	}
	r.RenderMapImage()
	return r
}

func (r *GridRenderer) Layout() Layout {
	return r.layout
}

// RenderMapImage создаёт предрендеренное изображение клеток карты
func (r *GridRenderer) RenderMapImage() {
	r.mapImage.Clear()
	if r.gridMap == nil {
		return
	}
	size := float32(r.layout.TileSize)
	for _, c := range r.gridMap.Coords() {
		x, y := r.layout.TileOrigin(c)
		vector.DrawFilledRect(r.mapImage, x, y, size, size, r.tileColor(r.gridMap.Tiles[c]), false)
		vector.StrokeRect(r.mapImage, x, y, size, size, 1, r.colors.GridLineColor, false)
	}
}

func (r *GridRenderer) tileColor(t gridmap.Tile) color.RGBA {
	switch {
	case !t.Passable:
		return r.colors.ImpassableColor
	case t.MoveCost > gridmap.DefaultMoveCost:
		return r.colors.DifficultColor
	default:
		return r.colors.PassableColor
	}
}

// Draw рисует карту, подсветку и юнитов
func (r *GridRenderer) Draw(screen *ebiten.Image, reachable, attackable mapset.Set[gridmap.Coord], units []UnitSprite) {
	screen.Fill(r.colors.BackgroundColor)
	screen.DrawImage(r.mapImage, nil)

	// Сначала атака, поверх неё движение: пересечение читается как "можно дойти"
	r.drawHighlight(screen, attackable, r.colors.AttackMovableColor)
	r.drawHighlight(screen, reachable, r.colors.ReachableColor)

	for _, u := range units {
		r.drawUnit(screen, u)
	}
}

func (r *GridRenderer) drawHighlight(screen *ebiten.Image, tiles mapset.Set[gridmap.Coord], clr color.RGBA) {
	if tiles.Size() == 0 {
		return
	}
	size := float32(r.layout.TileSize)
	tiles.Each(func(c gridmap.Coord) {
		if !r.gridMap.Contains(c) {
			return
		}
		x, y := r.layout.TileOrigin(c)
		vector.DrawFilledRect(screen, x, y, size, size, clr, false)
	})
}

func (r *GridRenderer) drawUnit(screen *ebiten.Image, u UnitSprite) {
	x, y := r.layout.TileOrigin(u.Coord)
	size := float32(r.layout.TileSize)
	inset := size / 6

	body := u.Color
	if u.Defeated {
		body = r.colors.DefeatedColor
	}
	vector.DrawFilledRect(screen, x+inset, y+inset, size-2*inset, size-2*inset, body, true)
	vector.StrokeRect(screen, x+inset, y+inset, size-2*inset, size-2*inset, r.colors.StrokeWidth, DarkenColor(body), true)
	if u.Selected {
		vector.StrokeRect(screen, x+1, y+1, size-2, size-2, r.colors.StrokeWidth, r.colors.SelectedStrokeColor, true)
	}

	if r.fontFace != nil && u.Label != "" {
		label := initial(u.Label)
		bounds := text.BoundString(r.fontFace, label)
		cx, cy := r.layout.TileCenter(u.Coord)
		text.Draw(screen, label, r.fontFace, int(cx)-bounds.Dx()/2, int(cy)+bounds.Dy()/2, r.colors.TextLightColor)
	}
	if u.Defeated {
		return
	}

	// Полоска инициативы под юнитом
	barW := size - 2*inset
	barY := y + size - inset/2 - 3
	vector.DrawFilledRect(screen, x+inset, barY, barW, 3, r.colors.ProgressTrackColor, false)
	vector.DrawFilledRect(screen, x+inset, barY, barW*float32(clamp01(u.Progress)), 3, r.colors.ProgressBarColor, false)
}

// initial returns the first rune of label, so non-ASCII names are not cut mid-character.
func initial(label string) string {
	for _, r := range label {
		return string(r)
	}
	return ""
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
