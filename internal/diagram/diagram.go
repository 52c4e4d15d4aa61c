// Package diagram renders a GameState as a 2D top-down PNG table diagram.
// It consumes only resolved diamond-space positions from the game package
// and owns all pixel math.
package diagram

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"github.com/shotbook/backend/internal/game"
)

// Canvas dimensions and playing-surface margins, in pixels. The playing
// surface (cushion nose to cushion nose) spans diamond x=0..4 left to right
// and diamond y=0..8 bottom to top, with y=8 at the top of the image.
const (
	canvasWidth  = 1089
	canvasHeight = 1938

	leftmostPx   = 56
	topmostPx    = 42
	rightmostPx  = 1040
	bottommostPx = 1884

	// ballSizePx is the rendered sprite diameter.
	ballSizePx = 44
)

// Renderer draws game states onto a fixed-size table diagram. Sprites are
// rasterized once per ball type and reused across renders.
type Renderer struct {
	sprites map[game.BallType]*image.RGBA
}

// NewRenderer prepares an empty sprite cache.
func NewRenderer() *Renderer {
	return &Renderer{sprites: make(map[game.BallType]*image.RGBA)}
}

// diamondToPixel maps a resolved diamond-space position to canvas pixels by
// linear interpolation between the fixed margins.
func diamondToPixel(p game.Position) image.Point {
	x := float64(leftmostPx) + p.X.Float64()/4*(rightmostPx-leftmostPx)
	y := float64(bottommostPx) - p.Y.Float64()/8*(bottommostPx-topmostPx)
	return image.Pt(int(x+0.5), int(y+0.5))
}

// Render composites the table, overlay lines and ball sprites and returns
// the encoded PNG.
func (r *Renderer) Render(state *game.GameState) ([]byte, error) {
	canvas := image.NewRGBA(image.Rect(0, 0, canvasWidth, canvasHeight))
	drawTable(canvas)

	for _, line := range state.Lines {
		a := diamondToPixel(line.From)
		b := diamondToPixel(line.To)
		c := color.RGBA{R: line.Color.R, G: line.Color.G, B: line.Color.B, A: line.Color.A}
		drawDashedLine(canvas, a, b, 18, 12, 5, c)
	}

	for _, ball := range state.Balls {
		sprite := r.sprite(ball.Type)
		center := diamondToPixel(ball.Position)
		blitCentered(canvas, sprite, center)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("encode diagram: %w", err)
	}
	return buf.Bytes(), nil
}

// blitCentered overlays src so its center lands on pt, clamped to the
// canvas.
func blitCentered(dst *image.RGBA, src *image.RGBA, pt image.Point) {
	w := src.Bounds().Dx()
	h := src.Bounds().Dy()

	x := pt.X - w/2
	y := pt.Y - h/2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x > canvasWidth-w {
		x = canvasWidth - w
	}
	if y > canvasHeight-h {
		y = canvasHeight - h
	}

	overlay(dst, src, image.Pt(x, y))
}

// WritePNGFile writes rendered bytes to disk, defaulting to output.png.
func WritePNGFile(pngBytes []byte, path string) error {
	if path == "" {
		path = "output.png"
	}
	if err := os.WriteFile(path, pngBytes, 0o644); err != nil {
		return fmt.Errorf("write diagram: %w", err)
	}
	log.Printf("[RENDER] Wrote %d bytes to %s", len(pngBytes), path)
	return nil
}
