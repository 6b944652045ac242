package chess

import (
	"errors"
	"sort"

	. "gopkg.in/check.v1"
)

type SquareSuite struct{}

var _ = Suite(&SquareSuite{})

func squares(coordinates ...string) []Square {
	out := make([]Square, 0, len(coordinates))
	for _, co := range coordinates {
		out = append(out, MustParseSquare(co))
	}
	return out
}

func (s *SquareSuite) TestParseSquare(c *C) {
	sq, err := ParseSquare("E4")
	c.Assert(err, IsNil)
	c.Assert(sq.File(), Equals, FileE)
	c.Assert(sq.Rank(), Equals, 4)
	c.Assert(sq.String(), Equals, "E4")

	lower, err := ParseSquare("e4")
	c.Assert(err, IsNil)
	c.Assert(lower, Equals, sq)

	for _, bad := range []string{"", "E", "4", "I1", "A9", "A0", "E44", "4E", "é", " E4", "@1", "`1"} {
		_, err := ParseSquare(bad)
		c.Assert(errors.Is(err, ErrInvalidCoordinates), Equals, true, Commentf("input %q", bad))
	}
}

func (s *SquareSuite) TestNewSquare(c *C) {
	sq, err := NewSquare(FileH, 8)
	c.Assert(err, IsNil)
	c.Assert(sq, Equals, MustParseSquare("H8"))

	_, err = NewSquare(File(8), 1)
	c.Assert(errors.Is(err, ErrInvalidCoordinates), Equals, true)
	_, err = NewSquare(FileA, 9)
	c.Assert(errors.Is(err, ErrInvalidCoordinates), Equals, true)
	c.Assert(func() { MustParseSquare("Z1") }, PanicMatches, `invalid coordinates: "Z1"`)
}

func (s *SquareSuite) TestIsValid(c *C) {
	c.Check(MustParseSquare("A1").IsValid(), Equals, true)
	c.Check(MustParseSquare("H8").IsValid(), Equals, true)
	c.Check(Square{}.IsValid(), Equals, false)
}

func (s *SquareSuite) TestText(c *C) {
	text, err := MustParseSquare("B7").MarshalText()
	c.Assert(err, IsNil)
	c.Assert(string(text), Equals, "B7")

	var sq Square
	c.Assert(sq.UnmarshalText([]byte("c3")), IsNil)
	c.Assert(sq, Equals, MustParseSquare("C3"))
	c.Assert(sq.UnmarshalText([]byte("c9")), ErrorMatches, `invalid coordinates: "c9"`)
}

func (s *SquareSuite) TestDistance(c *C) {
	for _, tt := range []struct {
		from, to string
		want     int
	}{
		{"A5", "C4", 1},
		{"C4", "C5", 0},
		{"A5", "C5", 1},
		{"A5", "A2", 2},
		{"E4", "A8", 3},
		{"F5", "E4", 0},
		{"F5", "D3", 1},
		{"A2", "F5", 4},
		{"H1", "A8", 6},
		{"B7", "H1", 5},
		{"B7", "F5", 3},
	} {
		got := MustParseSquare(tt.from).Distance(MustParseSquare(tt.to))
		c.Check(got, Equals, tt.want, Commentf("%s-%s", tt.from, tt.to))
	}
}

func (s *SquareSuite) TestPredicates(c *C) {
	e4 := MustParseSquare("E4")

	c.Check(e4.IsDiagonalFrom(MustParseSquare("G6")), Equals, true)
	c.Check(e4.IsDiagonalFrom(MustParseSquare("B1")), Equals, true)
	c.Check(e4.IsDiagonalFrom(MustParseSquare("E6")), Equals, false)
	c.Check(e4.IsDiagonalFrom(e4), Equals, false)

	c.Check(e4.IsAdjacent(MustParseSquare("D5")), Equals, true)
	c.Check(e4.IsAdjacent(MustParseSquare("E3")), Equals, true)
	c.Check(e4.IsAdjacent(MustParseSquare("E6")), Equals, false)
	c.Check(e4.IsAdjacent(e4), Equals, false)

	c.Check(MustParseSquare("E5").IsDirectlyAbove(e4), Equals, true)
	c.Check(MustParseSquare("E3").IsDirectlyAbove(e4), Equals, false)
	c.Check(MustParseSquare("E3").IsDirectlyBelow(e4), Equals, true)
	c.Check(MustParseSquare("D3").IsDirectlyBelow(e4), Equals, false)

	c.Check(MustParseSquare("D5").IsDirectlyAboveDiagonally(e4), Equals, true)
	c.Check(MustParseSquare("F5").IsDirectlyAboveDiagonally(e4), Equals, true)
	c.Check(MustParseSquare("F3").IsDirectlyAboveDiagonally(e4), Equals, false)
	c.Check(MustParseSquare("F3").IsDirectlyBelowDiagonally(e4), Equals, true)
	c.Check(MustParseSquare("E3").IsDirectlyBelowDiagonally(e4), Equals, false)

	hops := 0
	for _, sq := range AllSquares() {
		if e4.IsKnightHopFrom(sq) {
			hops++
		}
	}
	c.Check(hops, Equals, 8)
	c.Check(MustParseSquare("B1").IsKnightHopFrom(MustParseSquare("C3")), Equals, true)
	c.Check(MustParseSquare("B1").IsKnightHopFrom(MustParseSquare("D2")), Equals, true)
	c.Check(MustParseSquare("B1").IsKnightHopFrom(MustParseSquare("C2")), Equals, false)
}

func (s *SquareSuite) TestSquaresBetween(c *C) {
	c.Check(MustParseSquare("A1").SquaresBetween(MustParseSquare("D4")), DeepEquals, squares("B2", "C3"))
	c.Check(MustParseSquare("D4").SquaresBetween(MustParseSquare("A1")), DeepEquals, squares("C3", "B2"))
	c.Check(MustParseSquare("A1").SquaresBetween(MustParseSquare("A8")), DeepEquals, squares("A2", "A3", "A4", "A5", "A6", "A7"))
	c.Check(MustParseSquare("H3").SquaresBetween(MustParseSquare("E3")), DeepEquals, squares("G3", "F3"))
	c.Check(MustParseSquare("H1").SquaresBetween(MustParseSquare("E4")), DeepEquals, squares("G2", "F3"))
	c.Check(MustParseSquare("E4").SquaresBetween(MustParseSquare("E5")), HasLen, 0)
	c.Check(MustParseSquare("A1").SquaresBetween(MustParseSquare("B3")), HasLen, 0)
	c.Check(MustParseSquare("A1").SquaresBetween(MustParseSquare("A1")), HasLen, 0)
}

func (s *SquareSuite) TestAdjacentSquares(c *C) {
	c.Check(MustParseSquare("A1").AdjacentSquares(), DeepEquals, squares("A2", "B2", "B1"))
	c.Check(MustParseSquare("H8").AdjacentSquares(), DeepEquals, squares("G8", "G7", "H7"))
	c.Check(MustParseSquare("E4").AdjacentSquares(), DeepEquals,
		squares("D5", "E5", "F5", "D4", "F4", "D3", "E3", "F3"))
}

func (s *SquareSuite) TestAllSquares(c *C) {
	all := AllSquares()
	c.Assert(all, HasLen, 64)
	c.Check(all[0], Equals, MustParseSquare("A8"))
	c.Check(all[7], Equals, MustParseSquare("H8"))
	c.Check(all[63], Equals, MustParseSquare("H1"))
	c.Check(sort.SliceIsSorted(all, func(i, j int) bool { return all[i].Less(all[j]) }), Equals, true)

	seen := map[Square]bool{}
	for _, sq := range all {
		seen[sq] = true
	}
	c.Check(seen, HasLen, 64)

	all[0] = MustParseSquare("H1")
	c.Check(AllSquares()[0], Equals, MustParseSquare("A8"))
}

func (s *SquareSuite) TestColor(c *C) {
	c.Check(White.Opposite(), Equals, Black)
	c.Check(Black.Opposite(), Equals, White)
	c.Check(White.String(), Equals, "White")
	c.Check(Black.String(), Equals, "Black")
}
