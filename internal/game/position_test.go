package game

import (
	"math"
	"testing"
)

func TestDisplacement(t *testing.T) {
	from := Position{X: Diamond1, Y: Diamond2}
	to := Position{X: Diamond3, Y: Diamond1}

	d := from.Displacement(to)
	if !d.DX.Equal(Diamond2) || !d.DY.Equal(Diamond1.Neg()) {
		t.Errorf("displacement = (%s, %s), want (2d, -1d)", d.DX, d.DY)
	}
}

func TestAbsoluteDistance(t *testing.T) {
	from := Position{X: Diamond0, Y: Diamond0}
	to := Position{X: Diamond3, Y: Diamond4}

	got := from.Displacement(to).AbsoluteDistance().Float64()
	if math.Abs(got-5) > 1e-9 {
		t.Errorf("3-4-5 distance = %.9f, want 5", got)
	}
}

func TestDirectionFromCenter(t *testing.T) {
	cases := []struct {
		pos    Position
		sx, sy int
	}{
		{TopRightDiamond, 1, 1},
		{BottomLeftDiamond, -1, -1},
		{Position{X: Diamond3, Y: Diamond1}, 1, -1},
		{Position{X: Diamond1, Y: Diamond7}, -1, 1},
		// Ties fall to the negative branch.
		{CenterSpot, -1, -1},
		{Position{X: Diamond2, Y: Diamond8}, -1, 1},
		{Position{X: Diamond4, Y: Diamond4}, 1, -1},
	}
	for _, c := range cases {
		sx, sy := c.pos.DirectionFromCenter()
		if sx != c.sx || sy != c.sy {
			t.Errorf("DirectionFromCenter(%s) = (%d, %d), want (%d, %d)",
				c.pos, sx, sy, c.sx, c.sy)
		}
	}
}

func TestTranslateCardinals(t *testing.T) {
	origin := Position{X: Diamond2, Y: Diamond4}

	// Due north: x unchanged, y grows.
	north := origin.Translate(Diamond1, NewAngle(0))
	if math.Abs(north.X.Float64()-2) > 1e-9 || math.Abs(north.Y.Float64()-5) > 1e-9 {
		t.Errorf("translate north = %s, want (2d, 5d)", north)
	}

	// Due south: y shrinks.
	south := origin.Translate(Diamond1, NewAngle(180))
	if math.Abs(south.X.Float64()-2) > 1e-9 || math.Abs(south.Y.Float64()-3) > 1e-9 {
		t.Errorf("translate south = %s, want (2d, 3d)", south)
	}

	// Due east: x grows.
	east := origin.Translate(Diamond1, NewAngle(90))
	if math.Abs(east.X.Float64()-3) > 1e-9 || math.Abs(east.Y.Float64()-4) > 1e-9 {
		t.Errorf("translate east = %s, want (3d, 4d)", east)
	}
}

func TestTranslateInchesResolvesAgainstTable(t *testing.T) {
	table := BrunswickGC49ft()
	origin := Position{X: Diamond2, Y: Diamond4}

	// 12.5in due east is exactly one diamond on this table.
	got := origin.TranslateInches(MustParseInches("12.5"), NewAngle(90)).Resolve(table)
	if math.Abs(got.X.Float64()-3) > 1e-9 || math.Abs(got.Y.Float64()-4) > 1e-9 {
		t.Errorf("12.5in east = %s, want (3d, 4d)", got)
	}
}

func TestShiftAccumulationThenResolve(t *testing.T) {
	table := BrunswickGC49ft()

	u := CenterSpot.Unresolved().
		ShiftXInches(MustParseInches("6.25")).
		ShiftXInches(MustParseInches("6.25")).
		ShiftYInches(MustParseInches("-12.5"))

	got := u.Resolve(table)
	if !got.X.Equal(Diamond3) || !got.Y.Equal(Diamond3) {
		t.Errorf("resolved = %s, want (3d, 3d)", got)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	table := BrunswickGC49ft()

	u := CenterSpot.Unresolved().ShiftXInches(MustParseInches("12.5"))
	once := u.Resolve(table)

	// Resolution consumes the pending shifts: re-wrapping the resolved
	// point and resolving again with nothing new added is a no-op.
	twice := once.Unresolved().Resolve(table)
	if !twice.X.Equal(once.X) || !twice.Y.Equal(once.Y) {
		t.Errorf("second resolve moved the point: %s -> %s", once, twice)
	}
}

func TestGhostBallRoundTrip(t *testing.T) {
	table := BrunswickGC49ft()
	spec := DefaultBallSpec()
	start := Position{X: Diamond1, Y: Diamond3}

	for _, deg := range []float64{0, 33.75, 90, 123, 260.5} {
		a := NewAngle(deg)
		out := start.TranslateGhostBall(a, spec).Resolve(table)
		back := out.TranslateGhostBall(a.Flipped(), spec).Resolve(table)

		if math.Abs(back.X.Float64()-start.X.Float64()) > 1e-9 ||
			math.Abs(back.Y.Float64()-start.Y.Float64()) > 1e-9 {
			t.Errorf("ghost ball round trip at %.2f°: %s -> %s", deg, start, back)
		}
	}
}

func TestGhostBallDistanceIsOneDiameter(t *testing.T) {
	table := BrunswickGC49ft()
	spec := DefaultBallSpec()
	start := CenterSpot

	out := start.TranslateGhostBall(NewAngle(45), spec).Resolve(table)
	dist := table.DiamondToInches(start.Displacement(out).AbsoluteDistance()).Float64()
	if math.Abs(dist-2.25) > 1e-9 {
		t.Errorf("ghost ball distance = %.9fin, want 2.25in", dist)
	}
}
