package game

// Physical constants, defined once in inches. Diamond-space values are
// always derived from these by dividing by a table's diamond length so that
// both unit systems stay consistent if the table scale changes.
var (
	// SightNoseOffset is the distance from the rail sights (the diamond
	// markers) to the cushion nose.
	SightNoseOffset = MustParseInches("3.6875")

	// Brunswick Gold Crown IV pocket measurements.
	GC4PocketDepth       = MustParseInches("1.4")
	GC4CornerPocketWidth = MustParseInches("4.5")
	GC4SidePocketWidth   = MustParseInches("5")

	// StandardBallRadius is half of a regulation 2.25in ball.
	StandardBallRadius = MustParseInches("1.125")
)

// Named table positions. The coordinate system is a top-down view with the
// bottom-left pocket at (0, 0) and the top-right pocket at (4, 8). The
// headstring runs from (0, 6) to (4, 6); the kitchen is the rectangle above
// it toward the top rail in a head-at-top diagram, i.e. y in [6, 8].
var (
	CenterSpot = Position{X: Diamond2, Y: Diamond4}
	RackSpot   = Position{X: Diamond2, Y: Diamond2}
	HeadSpot   = Position{X: Diamond2, Y: Diamond6}

	TopRightDiamond    = Position{X: Diamond4, Y: Diamond8}
	CenterRightDiamond = Position{X: Diamond4, Y: Diamond4}
	BottomRightDiamond = Position{X: Diamond4, Y: Diamond0}
	BottomLeftDiamond  = Position{X: Diamond0, Y: Diamond0}
	CenterLeftDiamond  = Position{X: Diamond0, Y: Diamond4}
	TopLeftDiamond     = Position{X: Diamond0, Y: Diamond8}
)

// Corner pockets are not aimed at their geometric mouth center: the cut of
// the jaws makes a point slightly inside the table the better target. The
// offset is fixed in diamond units and applied toward the table interior.
var (
	cornerAimOffsetX = MustParseDiamond("0.1875")
	cornerAimOffsetY = MustParseDiamond("0.1875")
)

// Table extents in diamond units.
var (
	TableWidth  = Diamond4
	TableLength = Diamond8
)
