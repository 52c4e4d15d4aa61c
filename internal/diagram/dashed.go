package diagram

import (
	"image"
	"image/color"
	"math"
)

// drawDashedLine draws a dashed segment of adjustable thickness between two
// pixel points. Each dash is a filled rectangle laid along the segment
// direction; dashPx and gapPx control the cadence, widthPx the thickness.
func drawDashedLine(canvas *image.RGBA, a, b image.Point, dashPx, gapPx, widthPx float64, c color.RGBA) {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}

	// Unit direction along the segment.
	ux := dx / length
	uy := dy / length
	halfW := widthPx / 2

	for s := 0.0; s < length; s += dashPx + gapPx {
		e := math.Min(s+dashPx, length)
		fillThickSegment(canvas,
			float64(a.X)+ux*s, float64(a.Y)+uy*s,
			float64(a.X)+ux*e, float64(a.Y)+uy*e,
			halfW, c)
	}
}

// fillThickSegment paints every pixel within halfW of the segment
// (x0,y0)-(x1,y1).
func fillThickSegment(canvas *image.RGBA, x0, y0, x1, y1, halfW float64, c color.RGBA) {
	minX := int(math.Floor(math.Min(x0, x1) - halfW))
	maxX := int(math.Ceil(math.Max(x0, x1) + halfW))
	minY := int(math.Floor(math.Min(y0, y1) - halfW))
	maxY := int(math.Ceil(math.Max(y0, y1) + halfW))

	b := canvas.Bounds()
	if minX < b.Min.X {
		minX = b.Min.X
	}
	if minY < b.Min.Y {
		minY = b.Min.Y
	}
	if maxX >= b.Max.X {
		maxX = b.Max.X - 1
	}
	if maxY >= b.Max.Y {
		maxY = b.Max.Y - 1
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if distToSegment(float64(x), float64(y), x0, y0, x1, y1) <= halfW {
				canvas.SetRGBA(x, y, c)
			}
		}
	}
}

// distToSegment is the distance from point p to the closest point on the
// segment ab.
func distToSegment(px, py, ax, ay, bx, by float64) float64 {
	abx, aby := bx-ax, by-ay
	apx, apy := px-ax, py-ay

	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		return math.Hypot(apx, apy)
	}

	t := (apx*abx + apy*aby) / lenSq
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(px-(ax+t*abx), py-(ay+t*aby))
}
