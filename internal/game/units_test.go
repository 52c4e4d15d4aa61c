package game

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseDiamondRejectsMalformedLiterals(t *testing.T) {
	for _, bad := range []string{"", "abc", "1.2.3", "--4"} {
		if _, err := ParseDiamond(bad); err == nil {
			t.Errorf("ParseDiamond(%q) should fail", bad)
		}
	}
}

func TestParseInchesRejectsMalformedLiterals(t *testing.T) {
	if _, err := ParseInches("twelve"); err == nil {
		t.Error("ParseInches(\"twelve\") should fail")
	}
}

func TestDiamondArithmetic(t *testing.T) {
	a := MustParseDiamond("1.5")
	b := MustParseDiamond("0.25")

	if got := a.Add(b); !got.Equal(MustParseDiamond("1.75")) {
		t.Errorf("1.5 + 0.25 = %s, want 1.75d", got)
	}
	if got := a.Sub(b); !got.Equal(MustParseDiamond("1.25")) {
		t.Errorf("1.5 - 0.25 = %s, want 1.25d", got)
	}
	if got := a.Neg(); !got.Equal(MustParseDiamond("-1.5")) {
		t.Errorf("-(1.5) = %s, want -1.5d", got)
	}
	if got := a.MulScalar(decimal.NewFromInt(4)); !got.Equal(Diamond6) {
		t.Errorf("1.5 * 4 = %s, want 6d", got)
	}
	if got := a.DivScalar(decimal.NewFromInt(2)); !got.Equal(MustParseDiamond("0.75")) {
		t.Errorf("1.5 / 2 = %s, want 0.75d", got)
	}
}

func TestConversionRoundTripIsExact(t *testing.T) {
	table := BrunswickGC49ft()

	// Exact decimals that binary floats cannot represent.
	for _, lit := range []string{"0", "1", "3.6875", "2.125", "-0.295", "7.0001"} {
		d := MustParseDiamond(lit)
		back := table.InchesToDiamond(table.DiamondToInches(d))
		if !back.Equal(d) {
			t.Errorf("round trip of %s gave %s", d, back)
		}
	}
}

func TestConversionScale(t *testing.T) {
	table := BrunswickGC49ft()

	if got := table.DiamondToInches(Diamond1); !got.Equal(MustParseInches("12.5")) {
		t.Errorf("1 diamond = %s, want 12.5in", got)
	}
	if got := table.InchesToDiamond(MustParseInches("1.125")); !got.Equal(MustParseDiamond("0.09")) {
		t.Errorf("1.125in = %s, want 0.09d", got)
	}
}
