package diagram

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/shotbook/backend/internal/game"
)

// Standard ball colors.
var ballColors = map[game.BallType]color.RGBA{
	game.CueBall:   {R: 245, G: 243, B: 235, A: 255},
	game.OneBall:   {R: 240, G: 195, B: 20, A: 255},
	game.TwoBall:   {R: 30, G: 70, B: 180, A: 255},
	game.ThreeBall: {R: 200, G: 40, B: 40, A: 255},
	game.FourBall:  {R: 95, G: 50, B: 140, A: 255},
	game.FiveBall:  {R: 230, G: 120, B: 30, A: 255},
	game.SixBall:   {R: 25, G: 110, B: 60, A: 255},
	game.SevenBall: {R: 130, G: 35, B: 45, A: 255},
	game.EightBall: {R: 20, G: 20, B: 20, A: 255},
	game.NineBall:  {R: 240, G: 195, B: 20, A: 255},
}

// sprite returns the rasterized image for a ball type, building and caching
// it on first use. Balls are drawn at 4x and downscaled with CatmullRom so
// the edges come out smooth at 44px.
func (r *Renderer) sprite(ty game.BallType) *image.RGBA {
	if s, ok := r.sprites[ty]; ok {
		return s
	}
	s := renderBallSprite(ty)
	r.sprites[ty] = s
	return s
}

func renderBallSprite(ty game.BallType) *image.RGBA {
	const scale = 4
	const size = ballSizePx * scale

	big := image.NewRGBA(image.Rect(0, 0, size, size))
	center := image.Pt(size/2, size/2)
	body := ballColors[ty]
	white := color.RGBA{R: 245, G: 243, B: 235, A: 255}
	radius := size/2 - scale

	// The nine is a stripe: white ball with a colored band across the
	// middle, clipped to the ball's disc.
	if ty == game.NineBall {
		fillCircle(big, center, radius, white)
		bandHalf := size / 5
		for y := center.Y - bandHalf; y <= center.Y+bandHalf; y++ {
			for x := 0; x < size; x++ {
				dx, dy := x-center.X, y-center.Y
				if dx*dx+dy*dy <= radius*radius {
					big.SetRGBA(x, y, body)
				}
			}
		}
	} else {
		fillCircle(big, center, radius, body)
	}

	// Number circle for the object balls.
	if ty != game.CueBall {
		fillCircle(big, center, size/5, color.RGBA{R: 248, G: 246, B: 240, A: 255})
	}

	small := image.NewRGBA(image.Rect(0, 0, ballSizePx, ballSizePx))
	xdraw.CatmullRom.Scale(small, small.Bounds(), big, big.Bounds(), xdraw.Over, nil)

	if ty != game.CueBall {
		drawBallNumber(small, ty.String())
	}
	return small
}

// drawBallNumber centers the ball's number on the sprite. The label is
// drawn after downscaling so the glyphs stay crisp.
func drawBallNumber(sprite *image.RGBA, label string) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, label).Ceil()

	d := font.Drawer{
		Dst:  sprite,
		Src:  image.NewUniform(color.RGBA{R: 15, G: 15, B: 15, A: 255}),
		Face: face,
		Dot: fixed.P(
			ballSizePx/2-width/2,
			ballSizePx/2+face.Metrics().Ascent.Ceil()/2-1,
		),
	}
	d.DrawString(label)
}
