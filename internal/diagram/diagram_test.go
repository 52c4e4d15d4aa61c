package diagram

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/shotbook/backend/internal/game"
)

func renderTestState(t *testing.T, build func(*game.GameState)) image.Image {
	t.Helper()

	state := game.NewGameState(game.BrunswickGC49ft(), game.NineBallGame)
	build(state)

	pngBytes, err := NewRenderer().Render(state)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		t.Fatalf("decode rendered PNG: %v", err)
	}
	return img
}

func TestRenderProducesFullSizePNG(t *testing.T) {
	img := renderTestState(t, func(*game.GameState) {})

	b := img.Bounds()
	if b.Dx() != canvasWidth || b.Dy() != canvasHeight {
		t.Errorf("canvas = %dx%d, want %dx%d", b.Dx(), b.Dy(), canvasWidth, canvasHeight)
	}
}

func TestDiamondToPixelCorners(t *testing.T) {
	cases := []struct {
		pos  game.Position
		want image.Point
	}{
		{game.BottomLeftDiamond, image.Pt(leftmostPx, bottommostPx)},
		{game.TopRightDiamond, image.Pt(rightmostPx, topmostPx)},
		{game.TopLeftDiamond, image.Pt(leftmostPx, topmostPx)},
		{game.BottomRightDiamond, image.Pt(rightmostPx, bottommostPx)},
	}
	for _, c := range cases {
		if got := diamondToPixel(c.pos); got != c.want {
			t.Errorf("diamondToPixel(%s) = %v, want %v", c.pos, got, c.want)
		}
	}
}

func TestDiamondToPixelCenter(t *testing.T) {
	got := diamondToPixel(game.CenterSpot)
	want := image.Pt((leftmostPx+rightmostPx)/2, (topmostPx+bottommostPx)/2)
	if got != want {
		t.Errorf("center pixel = %v, want %v", got, want)
	}
}

func TestRenderDrawsBallAtItsPixel(t *testing.T) {
	img := renderTestState(t, func(s *game.GameState) {
		s.PlaceBall(game.EightBall, game.CenterSpot, game.DefaultBallSpec())
	})

	// The eight ball is near-black; the felt is green. Sample just off
	// center to avoid the white number circle.
	px := diamondToPixel(game.CenterSpot)
	r, g, b, _ := img.At(px.X-ballSizePx/2+6, px.Y).RGBA()
	if g > r+b {
		t.Errorf("pixel at ball edge still looks like felt: r=%d g=%d b=%d", r>>8, g>>8, b>>8)
	}
}

func TestRenderDrawsOverlayLines(t *testing.T) {
	red := game.Color{R: 255, A: 255}
	img := renderTestState(t, func(s *game.GameState) {
		s.AddLine(game.CenterSpot, game.RackSpot, red)
	})

	// The segment runs straight down the x=2 column; the first dash
	// starts at the center spot.
	start := diamondToPixel(game.CenterSpot)
	r, g, b, _ := img.At(start.X, start.Y+4).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("expected red dash pixel, got r=%d g=%d b=%d", r>>8, g>>8, b>>8)
	}
}

func TestSpriteSizeAndCaching(t *testing.T) {
	r := NewRenderer()

	s1 := r.sprite(game.NineBall)
	if s1.Bounds().Dx() != ballSizePx || s1.Bounds().Dy() != ballSizePx {
		t.Errorf("sprite = %dx%d, want %dx%d",
			s1.Bounds().Dx(), s1.Bounds().Dy(), ballSizePx, ballSizePx)
	}

	if s2 := r.sprite(game.NineBall); s1 != s2 {
		t.Error("sprite was rebuilt instead of cached")
	}
}

func TestWritePNGFile(t *testing.T) {
	path := t.TempDir() + "/diagram.png"

	pngBytes, err := NewRenderer().Render(game.NewGameState(game.BrunswickGC49ft(), game.NineBallGame))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if err := WritePNGFile(pngBytes, path); err != nil {
		t.Fatalf("WritePNGFile: %v", err)
	}
}
