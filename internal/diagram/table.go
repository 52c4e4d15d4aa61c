package diagram

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/shotbook/backend/internal/game"
)

// Table palette.
var (
	railWood     = color.RGBA{R: 74, G: 42, B: 24, A: 255}
	felt         = color.RGBA{R: 16, G: 92, B: 56, A: 255}
	pocketLiner  = color.RGBA{R: 12, G: 12, B: 12, A: 255}
	sightDiamond = color.RGBA{R: 236, G: 228, B: 208, A: 255}
)

// cushionPx is how far the felt extends past the cushion-nose span on each
// side, and sightInsetPx is how far the rail sights sit outside the felt.
const (
	cushionPx    = 22
	sightInsetPx = 24
	pocketRadius = 34
	sightRadius  = 6
)

// drawTable paints the procedural table background: wood rails, felt, six
// pockets and the rail sights at every whole diamond.
func drawTable(canvas *image.RGBA) {
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(railWood), image.Point{}, draw.Src)

	feltRect := image.Rect(
		leftmostPx-cushionPx, topmostPx-cushionPx,
		rightmostPx+cushionPx, bottommostPx+cushionPx,
	)
	draw.Draw(canvas, feltRect, image.NewUniform(felt), image.Point{}, draw.Src)

	for _, pk := range game.Pockets {
		fillCircle(canvas, diamondToPixel(pk.Anchor()), pocketRadius, pocketLiner)
	}

	drawSights(canvas)
}

// drawSights marks the whole-diamond coordinates on all four rails,
// skipping points that coincide with a pocket.
func drawSights(canvas *image.RGBA) {
	isPocketAnchor := func(p game.Position) bool {
		for _, pk := range game.Pockets {
			a := pk.Anchor()
			if a.X.Equal(p.X) && a.Y.Equal(p.Y) {
				return true
			}
		}
		return false
	}

	for x := int64(0); x <= 4; x++ {
		for _, y := range []game.Diamond{game.Diamond0, game.Diamond8} {
			p := game.Position{X: game.DiamondFromInt(x), Y: y}
			if isPocketAnchor(p) {
				continue
			}
			px := diamondToPixel(p)
			if y.IsZero() {
				px.Y += sightInsetPx + cushionPx
			} else {
				px.Y -= sightInsetPx + cushionPx
			}
			fillCircle(canvas, px, sightRadius, sightDiamond)
		}
	}

	for y := int64(0); y <= 8; y++ {
		for _, x := range []game.Diamond{game.Diamond0, game.Diamond4} {
			p := game.Position{X: x, Y: game.DiamondFromInt(y)}
			if isPocketAnchor(p) {
				continue
			}
			px := diamondToPixel(p)
			if x.IsZero() {
				px.X -= sightInsetPx + cushionPx
			} else {
				px.X += sightInsetPx + cushionPx
			}
			fillCircle(canvas, px, sightRadius, sightDiamond)
		}
	}
}

// fillCircle paints a filled disc, clipped to the canvas.
func fillCircle(canvas *image.RGBA, center image.Point, radius int, c color.RGBA) {
	b := canvas.Bounds()
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			x, y := center.X+dx, center.Y+dy
			if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
				continue
			}
			canvas.SetRGBA(x, y, c)
		}
	}
}

// overlay alpha-composites src over dst at the given offset.
func overlay(dst *image.RGBA, src *image.RGBA, at image.Point) {
	rect := src.Bounds().Add(at.Sub(src.Bounds().Min))
	draw.Draw(dst, rect, src, src.Bounds().Min, draw.Over)
}
