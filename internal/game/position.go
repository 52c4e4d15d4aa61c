package game

import (
	"fmt"
	"math"
)

// Position is a fully resolved point on the table in diamond units. All
// coordinate reads live on this type; a point that still owes a physical
// offset is an UnresolvedPosition and cannot be read until resolved against
// a table. That split makes "resolve before reading" a compile-time rule
// rather than a calling convention.
type Position struct {
	X Diamond
	Y Diamond
}

// Displacement is the component-wise vector between two resolved positions.
type Displacement struct {
	DX Diamond
	DY Diamond
}

// UnresolvedPosition is a position plus pending physical offsets that have
// not been converted to diamond units yet. Construction code like the rack
// layout needs to offset points by ball radii in inches without knowing
// which table it will land on; the offsets accumulate here and are folded
// in exactly once by Resolve.
type UnresolvedPosition struct {
	x      Diamond
	y      Diamond
	shiftX Inches
	shiftY Inches
}

// Displacement is the vector from p to the given position.
func (p Position) Displacement(to Position) Displacement {
	return Displacement{
		DX: to.X.Sub(p.X),
		DY: to.Y.Sub(p.Y),
	}
}

// AbsoluteDistance is the euclidean length of the displacement. The square
// root leaves exact decimal arithmetic, so the result is a float-derived
// decimal and should be compared with a tolerance.
func (d Displacement) AbsoluteDistance() Diamond {
	dx := d.DX.Float64()
	dy := d.DY.Float64()
	return Diamond1.MulFloat(math.Hypot(dx, dy))
}

// DirectionFromCenter classifies which quadrant of the table p lies in,
// relative to the center spot (2, 4). Each component is +1 on the positive
// side of center and -1 otherwise: a point exactly on a center line falls to
// the negative branch.
func (p Position) DirectionFromCenter() (sx, sy int) {
	sx, sy = -1, -1
	if p.X.Cmp(CenterSpot.X) > 0 {
		sx = 1
	}
	if p.Y.Cmp(CenterSpot.Y) > 0 {
		sy = 1
	}
	return sx, sy
}

// Translate offsets p by a diamond-space distance along an angle:
// dx = distance*sin(angle), dy = distance*cos(angle), per the
// clockwise-from-north convention. The result is resolved because no
// physical-unit conversion is owed.
func (p Position) Translate(distance Diamond, a Angle) Position {
	return Position{
		X: p.X.Add(distance.MulFloat(a.Sin())),
		Y: p.Y.Add(distance.MulFloat(a.Cos())),
	}
}

// TranslateInches offsets p by a physical distance along an angle. The
// offset cannot be expressed in diamond units without a table, so it is
// carried as a pending shift on the returned UnresolvedPosition.
func (p Position) TranslateInches(distance Inches, a Angle) UnresolvedPosition {
	return p.Unresolved().TranslateInches(distance, a)
}

// TranslateGhostBall offsets p by one ball diameter along an angle: the
// ghost-ball aim point for sending the ball at p along the flipped angle.
func (p Position) TranslateGhostBall(a Angle, spec BallSpec) UnresolvedPosition {
	diameter := spec.Radius.Add(spec.Radius)
	return p.TranslateInches(diameter, a)
}

// AngleToPocket is the direction from p toward a pocket's aiming center.
func (p Position) AngleToPocket(pk Pocket) Angle {
	d := p.Displacement(pk.AimingCenter())
	return AngleFromNorth(d.DX, d.DY)
}

// AngleFromPocket is the direction a ball at p would depart along if it came
// straight out of the pocket: the flip of AngleToPocket.
func (p Position) AngleFromPocket(pk Pocket) Angle {
	return p.AngleToPocket(pk).Flipped()
}

// Unresolved wraps p with empty pending shifts, ready to accumulate
// physical offsets.
func (p Position) Unresolved() UnresolvedPosition {
	return UnresolvedPosition{x: p.X, y: p.Y}
}

func (p Position) String() string {
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}

// TranslateInches accumulates a polar physical offset into the pending
// shifts.
func (u UnresolvedPosition) TranslateInches(distance Inches, a Angle) UnresolvedPosition {
	u.shiftX = u.shiftX.Add(distance.MulFloat(a.Sin()))
	u.shiftY = u.shiftY.Add(distance.MulFloat(a.Cos()))
	return u
}

// ShiftXInches accumulates a horizontal physical offset.
func (u UnresolvedPosition) ShiftXInches(distance Inches) UnresolvedPosition {
	u.shiftX = u.shiftX.Add(distance)
	return u
}

// ShiftYInches accumulates a vertical physical offset.
func (u UnresolvedPosition) ShiftYInches(distance Inches) UnresolvedPosition {
	u.shiftY = u.shiftY.Add(distance)
	return u
}

// Resolve converts the pending shifts to diamond units on the given table
// and folds them into the coordinates. The pending state exists only on
// UnresolvedPosition, so resolving is idempotent by construction: the
// returned Position carries nothing left to resolve.
func (u UnresolvedPosition) Resolve(spec TableSpec) Position {
	return Position{
		X: u.x.Add(spec.InchesToDiamond(u.shiftX)),
		Y: u.y.Add(spec.InchesToDiamond(u.shiftY)),
	}
}
