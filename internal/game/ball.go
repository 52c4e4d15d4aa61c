package game

import (
	"errors"
	"fmt"
)

// ErrUnknownBallType is returned when a ball name fails to parse.
var ErrUnknownBallType = errors.New("unknown ball type")

// BallType identifies a ball: the cue ball or one of the nine object balls.
type BallType int

const (
	CueBall BallType = iota
	OneBall
	TwoBall
	ThreeBall
	FourBall
	FiveBall
	SixBall
	SevenBall
	EightBall
	NineBall
)

var ballTypeNames = [...]string{
	CueBall:   "cue",
	OneBall:   "1",
	TwoBall:   "2",
	ThreeBall: "3",
	FourBall:  "4",
	FiveBall:  "5",
	SixBall:   "6",
	SevenBall: "7",
	EightBall: "8",
	NineBall:  "9",
}

func (t BallType) String() string {
	if int(t) < len(ballTypeNames) {
		return ballTypeNames[t]
	}
	return fmt.Sprintf("BallType(%d)", int(t))
}

// ParseBallType maps a wire name like "cue" or "9" to a BallType.
func ParseBallType(name string) (BallType, error) {
	for i, n := range ballTypeNames {
		if n == name {
			return BallType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBallType, name)
}

// BallSpec is the physical specification of a ball.
type BallSpec struct {
	Radius Inches
}

// DefaultBallSpec is a regulation 2.25in ball.
func DefaultBallSpec() BallSpec {
	return BallSpec{Radius: StandardBallRadius}
}

// Ball is a ball on the table. Its Position is always resolved; placement
// paths that accumulate physical offsets resolve them before a Ball is
// built.
type Ball struct {
	Type     BallType
	Position Position
	Spec     BallSpec
}
