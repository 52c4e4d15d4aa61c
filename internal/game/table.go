package game

import (
	"errors"
	"fmt"
)

// ErrBadDiamondLength is returned when a table is constructed with a zero or
// negative diamond length, which would make unit conversion meaningless.
var ErrBadDiamondLength = errors.New("table diamond length must be positive")

// ErrUnknownPreset is returned when a table preset name fails to parse.
var ErrUnknownPreset = errors.New("unknown table preset")

// PocketType distinguishes the four corner pockets from the two side pockets.
type PocketType int

const (
	CornerPocket PocketType = iota
	SidePocket
)

func (t PocketType) String() string {
	switch t {
	case CornerPocket:
		return "corner"
	case SidePocket:
		return "side"
	}
	return fmt.Sprintf("PocketType(%d)", int(t))
}

// PocketSpec is the physical shape of one pocket, in diamond units derived
// from the owning table's scale.
type PocketSpec struct {
	Type  PocketType
	Depth Diamond
	Width Diamond
}

// TableSpec is the single source of truth for a table's physical geometry
// and for the diamond/inches scale factor.
//
// Pockets are ordered clockwise starting at the top-right corner:
// index 0 = top-right corner, 1 = right side, 2 = bottom-right corner,
// 3 = bottom-left corner, 4 = left side, 5 = top-left corner.
type TableSpec struct {
	Pockets              [6]PocketSpec
	CushionDiamondBuffer Diamond
	DiamondLength        Inches
}

// NewTableSpec derives a table from its physical measurements. Diamond-space
// fields are computed here, never hand-entered, so both unit systems stay
// consistent for any diamond length.
func NewTableSpec(diamondLength, pocketDepth, cornerWidth, sideWidth Inches) (TableSpec, error) {
	if diamondLength.Decimal().Sign() <= 0 {
		return TableSpec{}, fmt.Errorf("%w: got %s", ErrBadDiamondLength, diamondLength)
	}

	corner := PocketSpec{
		Type:  CornerPocket,
		Depth: Diamond{mag: pocketDepth.Decimal().Div(diamondLength.Decimal())},
		Width: Diamond{mag: cornerWidth.Decimal().Div(diamondLength.Decimal())},
	}
	side := PocketSpec{
		Type:  SidePocket,
		Depth: Diamond{mag: pocketDepth.Decimal().Div(diamondLength.Decimal())},
		Width: Diamond{mag: sideWidth.Decimal().Div(diamondLength.Decimal())},
	}

	return TableSpec{
		DiamondLength: diamondLength,
		CushionDiamondBuffer: Diamond{
			mag: SightNoseOffset.Decimal().Div(diamondLength.Decimal()),
		},
		Pockets: [6]PocketSpec{corner, side, corner, corner, side, corner},
	}, nil
}

// BrunswickGC49ft is a typical 9ft Brunswick Gold Crown IV: 12.5 inches per
// diamond.
func BrunswickGC49ft() TableSpec {
	spec, err := NewTableSpec(
		MustParseInches("12.5"),
		GC4PocketDepth,
		GC4CornerPocketWidth,
		GC4SidePocketWidth,
	)
	if err != nil {
		panic(err) // preset constants are known good
	}
	return spec
}

// TablePreset resolves a preset name from the wire, e.g. "brunswick-gc4-9ft".
func TablePreset(name string) (TableSpec, error) {
	switch name {
	case "", "brunswick-gc4-9ft":
		return BrunswickGC49ft(), nil
	}
	return TableSpec{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// DiamondToInches converts a diamond-space length to inches on this table.
func (t TableSpec) DiamondToInches(d Diamond) Inches {
	return Inches{mag: d.Decimal().Mul(t.DiamondLength.Decimal())}
}

// InchesToDiamond converts a physical length to diamond units on this table.
func (t TableSpec) InchesToDiamond(in Inches) Diamond {
	return Diamond{mag: in.Decimal().Div(t.DiamondLength.Decimal())}
}
