package game

import "math"

// rowHeightFactor is √3: three mutually touching balls of radius R form an
// equilateral triangle, so consecutive rack rows are R·√3 apart while balls
// within a row are 2R apart.
var rowHeightFactor = math.Sqrt(3)

// NineBallRackPositions lays out the canonical 9-ball diamond rack (rows of
// 1, 2, 3, 2 and 1 balls) with its head ball on spot. Every offset is a
// physical ball-radius multiple, so the nine positions are returned with
// pending inch shifts still attached: the layout knows nothing about any
// particular table, and resolution happens once, in bulk, against whichever
// table the rack lands on.
//
// Slot order is row by row, left to right; slot 4 is the center of the
// middle row, where the nine ball goes.
func NineBallRackPositions(spot Position, spec BallSpec) [9]UnresolvedPosition {
	r := spec.Radius
	rowDrop := r.MulFloat(-rowHeightFactor)
	diameter := r.Add(r)

	var slots [9]UnresolvedPosition

	// Head ball.
	slots[0] = spot.Unresolved()

	// Second row: left ball from the head, then across.
	slots[1] = slots[0].ShiftXInches(r.Neg()).ShiftYInches(rowDrop)
	slots[2] = slots[1].ShiftXInches(diameter)

	// Third row: left ball from the second row's left ball, then across.
	slots[3] = slots[1].ShiftXInches(r.Neg()).ShiftYInches(rowDrop)
	slots[4] = slots[3].ShiftXInches(diameter)
	slots[5] = slots[4].ShiftXInches(diameter)

	// Fourth row narrows again: its left ball hangs under the gap between
	// the third row's left and center balls.
	slots[6] = slots[3].ShiftXInches(r).ShiftYInches(rowDrop)
	slots[7] = slots[6].ShiftXInches(diameter)

	// The last ball sits two full row heights straight below the middle
	// ball of the third row.
	slots[8] = slots[4].ShiftYInches(rowDrop).ShiftYInches(rowDrop)

	return slots
}

// nineBallRackOrder assigns ball types to rack slots: the one ball at the
// head, the nine in the center, the rest in a fixed arbitrary order.
var nineBallRackOrder = [9]BallType{
	OneBall,
	TwoBall, ThreeBall,
	FourBall, NineBall, FiveBall,
	SixBall, SevenBall,
	EightBall,
}
