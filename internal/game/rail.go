package game

import (
	"errors"
	"fmt"
)

// ErrUnknownRail is returned when a rail name fails to parse.
var ErrUnknownRail = errors.New("unknown rail")

// Rail identifies one of the four cushions. Top and Bottom are the short
// rails (y = 8 and y = 0); Left and Right are the long rails (x = 0 and
// x = 4).
type Rail int

const (
	TopRail Rail = iota
	BottomRail
	LeftRail
	RightRail
)

// FrozenPosition is the center of a ball touching this rail's cushion. The
// free axis takes the caller's diamond coordinate; the perpendicular axis is
// the rail line offset inward by the ball's radius, so the ball's edge, not
// its center, sits on the cushion.
func (r Rail) FrozenPosition(coordinate Diamond, spec BallSpec, table TableSpec) Position {
	radius := table.InchesToDiamond(spec.Radius)
	switch r {
	case TopRail:
		return Position{X: coordinate, Y: TableLength.Sub(radius)}
	case BottomRail:
		return Position{X: coordinate, Y: Diamond0.Add(radius)}
	case LeftRail:
		return Position{X: Diamond0.Add(radius), Y: coordinate}
	case RightRail:
		return Position{X: TableWidth.Sub(radius), Y: coordinate}
	}
	panic(fmt.Sprintf("invalid rail %d", int(r)))
}

func (r Rail) String() string {
	switch r {
	case TopRail:
		return "top"
	case BottomRail:
		return "bottom"
	case LeftRail:
		return "left"
	case RightRail:
		return "right"
	}
	return fmt.Sprintf("Rail(%d)", int(r))
}

// ParseRail maps a wire name like "bottom" to a Rail.
func ParseRail(name string) (Rail, error) {
	for _, r := range []Rail{TopRail, BottomRail, LeftRail, RightRail} {
		if r.String() == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRail, name)
}
