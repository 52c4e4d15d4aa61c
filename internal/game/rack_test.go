package game

import (
	"math"
	"testing"
)

// inchesBetween measures the center-to-center distance of two balls in
// physical units.
func inchesBetween(t *testing.T, table TableSpec, a, b *Ball) float64 {
	t.Helper()
	d := a.Position.Displacement(b.Position)
	return table.DiamondToInches(d.AbsoluteDistance()).Float64()
}

func TestRackNineBallCount(t *testing.T) {
	g := newTestState()
	g.RackNineBall(DefaultBallSpec())

	if len(g.Balls) != 9 {
		t.Fatalf("racked %d balls, want 9", len(g.Balls))
	}

	seen := map[BallType]bool{}
	for _, b := range g.Balls {
		if seen[b.Type] {
			t.Errorf("ball %s racked twice", b.Type)
		}
		seen[b.Type] = true
	}
	if seen[CueBall] {
		t.Error("cue ball does not belong in the rack")
	}
}

func TestRackHeadBallOnSpot(t *testing.T) {
	g := newTestState()
	g.RackNineBall(DefaultBallSpec())

	one, err := g.SelectBall(OneBall)
	if err != nil {
		t.Fatalf("SelectBall: %v", err)
	}
	if !one.Position.X.Equal(RackSpot.X) || !one.Position.Y.Equal(RackSpot.Y) {
		t.Errorf("head ball at %s, want %s", one.Position, RackSpot)
	}
}

func TestRackBallsAreFrozen(t *testing.T) {
	g := newTestState()
	g.RackNineBall(DefaultBallSpec())

	one := mustBall(t, g, OneBall)
	two := mustBall(t, g, TwoBall)
	three := mustBall(t, g, ThreeBall)
	four := mustBall(t, g, FourBall)
	nine := mustBall(t, g, NineBall)

	// Touching balls are exactly one diameter apart, center to center.
	const diameter = 2.25
	pairs := []struct {
		name string
		a, b *Ball
	}{
		{"head to second-row left", one, two},
		{"head to second-row right", one, three},
		{"second row, same row", two, three},
		{"second-row left to third-row center", two, nine},
		{"third-row left to center", four, nine},
	}
	for _, p := range pairs {
		got := inchesBetween(t, g.TableSpec, p.a, p.b)
		if math.Abs(got-diameter) > 1e-6 {
			t.Errorf("%s: %.9fin apart, want %.2fin", p.name, got, diameter)
		}
	}
}

func TestRackNineInTheMiddle(t *testing.T) {
	g := newTestState()
	g.RackNineBall(DefaultBallSpec())

	nine := mustBall(t, g, NineBall)

	// The center of the middle row sits directly under the head ball, two
	// row heights down.
	if math.Abs(nine.Position.X.Float64()-RackSpot.X.Float64()) > 1e-9 {
		t.Errorf("nine ball x = %s, want %s", nine.Position.X, RackSpot.X)
	}
	wantY := RackSpot.Y.Float64() - 2*math.Sqrt(3)*1.125/12.5
	if math.Abs(nine.Position.Y.Float64()-wantY) > 1e-9 {
		t.Errorf("nine ball y = %.9f, want %.9f", nine.Position.Y.Float64(), wantY)
	}
}

func TestRackLastBallTwoRowHeightsBelowNine(t *testing.T) {
	g := newTestState()
	g.RackNineBall(DefaultBallSpec())

	nine := mustBall(t, g, NineBall)
	eight := mustBall(t, g, EightBall)

	if math.Abs(eight.Position.X.Float64()-nine.Position.X.Float64()) > 1e-9 {
		t.Errorf("last ball x = %s, want %s", eight.Position.X, nine.Position.X)
	}
	wantDrop := 2 * math.Sqrt(3) * 1.125 / 12.5
	gotDrop := nine.Position.Y.Float64() - eight.Position.Y.Float64()
	if math.Abs(gotDrop-wantDrop) > 1e-9 {
		t.Errorf("last ball drop = %.9fd, want %.9fd", gotDrop, wantDrop)
	}
}

func mustBall(t *testing.T, g *GameState, ty BallType) *Ball {
	t.Helper()
	b, err := g.SelectBall(ty)
	if err != nil {
		t.Fatalf("SelectBall(%s): %v", ty, err)
	}
	return b
}
