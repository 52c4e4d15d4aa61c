package game

import (
	"errors"
	"fmt"
)

// ErrUnknownPocket is returned when a pocket name fails to parse.
var ErrUnknownPocket = errors.New("unknown pocket")

// Pocket identifies one of the six pockets. Values follow the TableSpec
// pocket ordering: clockwise from the top-right corner.
type Pocket int

const (
	TopRightPocket Pocket = iota
	RightSidePocket
	BottomRightPocket
	BottomLeftPocket
	LeftSidePocket
	TopLeftPocket
)

// Pockets lists all six in TableSpec order.
var Pockets = [6]Pocket{
	TopRightPocket,
	RightSidePocket,
	BottomRightPocket,
	BottomLeftPocket,
	LeftSidePocket,
	TopLeftPocket,
}

// Anchor is the pocket's nominal diamond point: the corner diamonds for
// corner pockets and the side-rail midpoints for side pockets.
func (pk Pocket) Anchor() Position {
	switch pk {
	case TopRightPocket:
		return TopRightDiamond
	case RightSidePocket:
		return CenterRightDiamond
	case BottomRightPocket:
		return BottomRightDiamond
	case BottomLeftPocket:
		return BottomLeftDiamond
	case LeftSidePocket:
		return CenterLeftDiamond
	case TopLeftPocket:
		return TopLeftDiamond
	}
	panic(fmt.Sprintf("invalid pocket %d", int(pk)))
}

// Type reports whether this is a corner or side pocket.
func (pk Pocket) Type() PocketType {
	switch pk {
	case RightSidePocket, LeftSidePocket:
		return SidePocket
	}
	return CornerPocket
}

// AimingCenter is the point to aim at when potting into this pocket. For
// corner pockets it sits inward of the anchor by a fixed offset on each
// axis, toward the table interior: the jaw cut makes the geometric mouth
// center a poor target. Side pockets use their raw anchor.
func (pk Pocket) AimingCenter() Position {
	anchor := pk.Anchor()
	if pk.Type() == SidePocket {
		return anchor
	}

	sx, sy := anchor.DirectionFromCenter()
	x := anchor.X
	if sx > 0 {
		x = x.Sub(cornerAimOffsetX)
	} else {
		x = x.Add(cornerAimOffsetX)
	}
	y := anchor.Y
	if sy > 0 {
		y = y.Sub(cornerAimOffsetY)
	} else {
		y = y.Add(cornerAimOffsetY)
	}
	return Position{X: x, Y: y}
}

func (pk Pocket) String() string {
	switch pk {
	case TopRightPocket:
		return "top-right"
	case RightSidePocket:
		return "right-side"
	case BottomRightPocket:
		return "bottom-right"
	case BottomLeftPocket:
		return "bottom-left"
	case LeftSidePocket:
		return "left-side"
	case TopLeftPocket:
		return "top-left"
	}
	return fmt.Sprintf("Pocket(%d)", int(pk))
}

// ParsePocket maps a wire name like "top-right" to a Pocket.
func ParsePocket(name string) (Pocket, error) {
	for _, pk := range Pockets {
		if pk.String() == name {
			return pk, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPocket, name)
}
