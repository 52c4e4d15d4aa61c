package game

import (
	"fmt"
	"math"
)

// Angle is a direction on the table in degrees, normalized to [0, 360),
// measured clockwise from "north" (toward the top rail, increasing y):
// 0 = up, 90 = right, 180 = down, 270 = left.
type Angle struct {
	degrees float64
}

// NewAngle normalizes degrees into [0, 360).
func NewAngle(degrees float64) Angle {
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	return Angle{degrees: d}
}

// AngleFromNorth derives the direction of a displacement. Note the argument
// order of the atan2: it is atan2(dx, dy), which is what makes 0 degrees
// point north and angles grow clockwise. A zero displacement has no
// direction; it falls back to 0 degrees.
func AngleFromNorth(dx, dy Diamond) Angle {
	if dx.IsZero() && dy.IsZero() {
		return Angle{}
	}
	deg := math.Atan2(dx.Float64(), dy.Float64()) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return Angle{degrees: deg}
}

// Flipped is the reverse direction: (a + 180) mod 360. Flipping twice gives
// back the original angle.
func (a Angle) Flipped() Angle {
	return NewAngle(a.degrees + 180)
}

// Degrees reports the normalized magnitude in [0, 360).
func (a Angle) Degrees() float64 { return a.degrees }

// Sin is the x-axis factor for polar translation under the
// clockwise-from-north convention.
func (a Angle) Sin() float64 { return math.Sin(a.degrees * math.Pi / 180) }

// Cos is the y-axis factor for polar translation under the
// clockwise-from-north convention.
func (a Angle) Cos() float64 { return math.Cos(a.degrees * math.Pi / 180) }

func (a Angle) String() string {
	return fmt.Sprintf("%.2f°", a.degrees)
}
