package game

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Diamond is a distance in table-relative "diamond" units. Going
// left-to-right, one diamond is 25% of the table's width; going top-down it
// is 1/8 of the table's length. The full playing surface spans x=0..4 and
// y=0..8.
//
// Diamond arithmetic is exact decimal arithmetic. Table constants like 12.5
// or 3.6875 have no exact binary float representation, and the error would
// compound across chained unit conversions.
type Diamond struct {
	mag decimal.Decimal
}

// Inches is a physical distance. It is a distinct type from Diamond so that
// the two unit systems cannot be mixed without going through a TableSpec,
// which owns the scale factor between them.
type Inches struct {
	mag decimal.Decimal
}

// Named diamond values 0 through 8, the coordinates at which rail sights sit.
var (
	Diamond0 = DiamondFromInt(0)
	Diamond1 = DiamondFromInt(1)
	Diamond2 = DiamondFromInt(2)
	Diamond3 = DiamondFromInt(3)
	Diamond4 = DiamondFromInt(4)
	Diamond5 = DiamondFromInt(5)
	Diamond6 = DiamondFromInt(6)
	Diamond7 = DiamondFromInt(7)
	Diamond8 = DiamondFromInt(8)
)

// DiamondFromInt builds a Diamond from a whole number of diamonds.
func DiamondFromInt(n int64) Diamond {
	return Diamond{mag: decimal.NewFromInt(n)}
}

// ParseDiamond builds a Diamond from a decimal literal like "3.65".
func ParseDiamond(s string) (Diamond, error) {
	mag, err := decimal.NewFromString(s)
	if err != nil {
		return Diamond{}, fmt.Errorf("invalid diamond literal %q: %w", s, err)
	}
	return Diamond{mag: mag}, nil
}

// MustParseDiamond is ParseDiamond for literals known good at compile time.
func MustParseDiamond(s string) Diamond {
	d, err := ParseDiamond(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Diamond) Add(o Diamond) Diamond { return Diamond{mag: d.mag.Add(o.mag)} }
func (d Diamond) Sub(o Diamond) Diamond { return Diamond{mag: d.mag.Sub(o.mag)} }
func (d Diamond) Neg() Diamond          { return Diamond{mag: d.mag.Neg()} }

// MulScalar scales by a dimensionless decimal factor.
func (d Diamond) MulScalar(s decimal.Decimal) Diamond { return Diamond{mag: d.mag.Mul(s)} }

// DivScalar divides by a dimensionless decimal factor.
func (d Diamond) DivScalar(s decimal.Decimal) Diamond { return Diamond{mag: d.mag.Div(s)} }

// MulFloat scales by a float factor, e.g. the result of a trig call. The
// factor is converted to decimal first so the product stays decimal.
func (d Diamond) MulFloat(f float64) Diamond {
	return Diamond{mag: d.mag.Mul(decimal.NewFromFloat(f))}
}

func (d Diamond) Cmp(o Diamond) int    { return d.mag.Cmp(o.mag) }
func (d Diamond) Equal(o Diamond) bool { return d.mag.Equal(o.mag) }
func (d Diamond) IsZero() bool         { return d.mag.IsZero() }
func (d Diamond) Float64() float64     { f, _ := d.mag.Float64(); return f }
func (d Diamond) String() string       { return d.mag.String() + "d" }

// Decimal exposes the raw magnitude for conversion math in TableSpec.
func (d Diamond) Decimal() decimal.Decimal { return d.mag }

// InchesFromInt builds an Inches from a whole number of inches.
func InchesFromInt(n int64) Inches {
	return Inches{mag: decimal.NewFromInt(n)}
}

// ParseInches builds an Inches from a decimal literal like "1.125".
func ParseInches(s string) (Inches, error) {
	mag, err := decimal.NewFromString(s)
	if err != nil {
		return Inches{}, fmt.Errorf("invalid inches literal %q: %w", s, err)
	}
	return Inches{mag: mag}, nil
}

// MustParseInches is ParseInches for literals known good at compile time.
func MustParseInches(s string) Inches {
	in, err := ParseInches(s)
	if err != nil {
		panic(err)
	}
	return in
}

func (in Inches) Add(o Inches) Inches { return Inches{mag: in.mag.Add(o.mag)} }
func (in Inches) Sub(o Inches) Inches { return Inches{mag: in.mag.Sub(o.mag)} }
func (in Inches) Neg() Inches         { return Inches{mag: in.mag.Neg()} }

func (in Inches) MulScalar(s decimal.Decimal) Inches { return Inches{mag: in.mag.Mul(s)} }
func (in Inches) DivScalar(s decimal.Decimal) Inches { return Inches{mag: in.mag.Div(s)} }

func (in Inches) MulFloat(f float64) Inches {
	return Inches{mag: in.mag.Mul(decimal.NewFromFloat(f))}
}

func (in Inches) Cmp(o Inches) int    { return in.mag.Cmp(o.mag) }
func (in Inches) Equal(o Inches) bool { return in.mag.Equal(o.mag) }
func (in Inches) IsZero() bool        { return in.mag.IsZero() }
func (in Inches) Float64() float64    { f, _ := in.mag.Float64(); return f }
func (in Inches) String() string      { return in.mag.String() + "in" }

// Decimal exposes the raw magnitude for conversion math in TableSpec.
func (in Inches) Decimal() decimal.Decimal { return in.mag }
