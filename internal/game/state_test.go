package game

import (
	"errors"
	"testing"
)

func newTestState() *GameState {
	return NewGameState(BrunswickGC49ft(), NineBallGame)
}

func TestFreezeToRailBottom(t *testing.T) {
	g := newTestState()
	g.FreezeToRail(BottomRail, Diamond1, OneBall, DefaultBallSpec())

	ball, err := g.SelectBall(OneBall)
	if err != nil {
		t.Fatalf("SelectBall: %v", err)
	}
	// 1.125in / 12.5in per diamond.
	if !ball.Position.Y.Equal(MustParseDiamond("0.09")) {
		t.Errorf("frozen y = %s, want 0.09d", ball.Position.Y)
	}
	if !ball.Position.X.Equal(Diamond1) {
		t.Errorf("frozen x = %s, want 1d", ball.Position.X)
	}
}

func TestFreezeToRailAllRails(t *testing.T) {
	g := newTestState()
	spec := DefaultBallSpec()
	radius := MustParseDiamond("0.09")

	g.FreezeToRail(TopRail, Diamond2, OneBall, spec)
	g.FreezeToRail(BottomRail, Diamond2, TwoBall, spec)
	g.FreezeToRail(LeftRail, Diamond6, ThreeBall, spec)
	g.FreezeToRail(RightRail, Diamond6, FourBall, spec)

	cases := []struct {
		ty    BallType
		wantX Diamond
		wantY Diamond
	}{
		{OneBall, Diamond2, Diamond8.Sub(radius)},
		{TwoBall, Diamond2, radius},
		{ThreeBall, radius, Diamond6},
		{FourBall, Diamond4.Sub(radius), Diamond6},
	}
	for _, c := range cases {
		ball, err := g.SelectBall(c.ty)
		if err != nil {
			t.Fatalf("SelectBall(%s): %v", c.ty, err)
		}
		if !ball.Position.X.Equal(c.wantX) || !ball.Position.Y.Equal(c.wantY) {
			t.Errorf("ball %s frozen at %s, want (%s, %s)",
				c.ty, ball.Position, c.wantX, c.wantY)
		}
	}
}

func TestSelectBallNotFound(t *testing.T) {
	g := newTestState()
	g.PlaceBall(CueBall, CenterSpot, DefaultBallSpec())

	if _, err := g.SelectBall(NineBall); !errors.Is(err, ErrBallNotFound) {
		t.Errorf("err = %v, want ErrBallNotFound", err)
	}
}

func TestAddLine(t *testing.T) {
	g := newTestState()
	g.AddLine(CenterSpot, RackSpot, Color{R: 255, A: 255})

	if len(g.Lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(g.Lines))
	}
	if !g.Lines[0].From.X.Equal(Diamond2) || !g.Lines[0].To.Y.Equal(Diamond2) {
		t.Errorf("line endpoints %s -> %s", g.Lines[0].From, g.Lines[0].To)
	}
}
