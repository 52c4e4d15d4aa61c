package game

import (
	"errors"
	"fmt"
)

// ErrBallNotFound is returned by SelectBall when no ball of the requested
// type is on the table.
var ErrBallNotFound = errors.New("ball not found")

// GameType is the discipline being diagrammed.
type GameType int

const (
	NineBallGame GameType = iota
	EightBallGame
	TenBallGame
	OnePocketGame
	BanksGame
)

var gameTypeNames = [...]string{
	NineBallGame:  "nine-ball",
	EightBallGame: "eight-ball",
	TenBallGame:   "ten-ball",
	OnePocketGame: "one-pocket",
	BanksGame:     "banks",
}

func (t GameType) String() string {
	if int(t) < len(gameTypeNames) {
		return gameTypeNames[t]
	}
	return fmt.Sprintf("GameType(%d)", int(t))
}

// ParseGameType maps a wire name like "nine-ball" to a GameType.
func ParseGameType(name string) (GameType, error) {
	for i, n := range gameTypeNames {
		if n == name {
			return GameType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown game type %q", name)
}

// CueballModifier describes how the cue ball may be placed for the shot.
type CueballModifier int

const (
	AsItLays CueballModifier = iota
	BreakPlacement
	BallInHand
	KitchenPlacement
)

var cueballModifierNames = [...]string{
	AsItLays:         "as-it-lays",
	BreakPlacement:   "break-placement",
	BallInHand:       "ball-in-hand",
	KitchenPlacement: "kitchen-placement",
}

func (m CueballModifier) String() string {
	if int(m) < len(cueballModifierNames) {
		return cueballModifierNames[m]
	}
	return fmt.Sprintf("CueballModifier(%d)", int(m))
}

// ParseCueballModifier maps a wire name like "ball-in-hand" to a modifier.
func ParseCueballModifier(name string) (CueballModifier, error) {
	for i, n := range cueballModifierNames {
		if n == name {
			return CueballModifier(i), nil
		}
	}
	return 0, fmt.Errorf("unknown cueball modifier %q", name)
}

// Color is an RGBA annotation color. It is a plain value type so the core
// stays free of image dependencies; the renderer converts it.
type Color struct {
	R, G, B, A uint8
}

// Line is an overlay annotation between two resolved points, drawn by the
// renderer as a dashed segment.
type Line struct {
	From  Position
	To    Position
	Color Color
}

// GameState aggregates a table and the balls on it, and is the unit handed
// to the renderer. Every ball position it holds is resolved; pending
// physical offsets are folded in at placement time, against this state's
// own table.
type GameState struct {
	TableSpec       TableSpec
	Balls           []Ball
	Type            GameType
	CueballModifier CueballModifier
	Lines           []Line
}

// NewGameState starts an empty state on the given table.
func NewGameState(table TableSpec, ty GameType) *GameState {
	return &GameState{
		TableSpec:       table,
		Type:            ty,
		CueballModifier: AsItLays,
	}
}

// PlaceBall appends a ball at an already resolved position.
func (g *GameState) PlaceBall(ty BallType, pos Position, spec BallSpec) {
	g.Balls = append(g.Balls, Ball{Type: ty, Position: pos, Spec: spec})
}

// ResolveAndPlace resolves a pending position against this state's table
// and appends the ball. This is the entry point for construction code that
// works in physical offsets, like the rack layout.
func (g *GameState) ResolveAndPlace(ty BallType, pos UnresolvedPosition, spec BallSpec) {
	g.PlaceBall(ty, pos.Resolve(g.TableSpec), spec)
}

// FreezeToRail places a ball touching the given rail's cushion: the free
// axis takes the caller's diamond coordinate, the other axis is determined
// by the rail and the ball's radius. This is a placement primitive; it does
// not check for overlap with balls already on the table.
func (g *GameState) FreezeToRail(r Rail, coordinate Diamond, ty BallType, spec BallSpec) {
	g.PlaceBall(ty, r.FrozenPosition(coordinate, spec, g.TableSpec), spec)
}

// RackNineBall lays the canonical 9-ball rack with its head ball on the
// rack spot, resolving all nine positions in bulk against this state's
// table.
func (g *GameState) RackNineBall(spec BallSpec) {
	slots := NineBallRackPositions(RackSpot, spec)
	for i, ty := range nineBallRackOrder {
		g.ResolveAndPlace(ty, slots[i], spec)
	}
}

// SelectBall finds the first ball of the given type.
func (g *GameState) SelectBall(ty BallType) (*Ball, error) {
	for i := range g.Balls {
		if g.Balls[i].Type == ty {
			return &g.Balls[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrBallNotFound, ty)
}

// AddLine records a dashed overlay segment for the renderer.
func (g *GameState) AddLine(from, to Position, c Color) {
	g.Lines = append(g.Lines, Line{From: from, To: to, Color: c})
}
