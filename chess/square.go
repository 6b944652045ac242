package chess

import (
	"errors"
	"fmt"
)

const (
	sideLen    = 8
	numSquares = sideLen * sideLen

	bottomRank = 1
	topRank    = bottomRank + sideLen - 1
)

// ErrInvalidCoordinates is returned when a coordinate does not name a square on the board.
var ErrInvalidCoordinates = errors.New("invalid coordinates")

// File is a board column, A through H.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

func (f File) String() string {
	if f > FileH {
		return ""
	}
	return string(rune('A' + f))
}

// Square is a coordinate on the board. Squares built through NewSquare and
// ParseSquare are always on the board; the zero value is not.
type Square struct {
	file File
	rank int
}

// IsValid reports whether s is on the board.
func (s Square) IsValid() bool {
	return s.file <= FileH && s.rank >= bottomRank && s.rank <= topRank
}

func NewSquare(file File, rank int) (Square, error) {
	if file > FileH || rank < bottomRank || rank > topRank {
		return Square{}, fmt.Errorf("%w: file %d rank %d", ErrInvalidCoordinates, file, rank)
	}
	return Square{file: file, rank: rank}, nil
}

// ParseSquare parses coordinates such as "E4" or "e4".
func ParseSquare(coordinates string) (Square, error) {
	if len(coordinates) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidCoordinates, coordinates)
	}
	file := coordinates[0] &^ 0x20 // uppercase is -32 lowercase
	rank := coordinates[1]
	if file < 'A' || file > 'H' || rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidCoordinates, coordinates)
	}
	return Square{file: File(file - 'A'), rank: int(rank - '0')}, nil
}

// MustParseSquare is like ParseSquare but panics on invalid coordinates.
func MustParseSquare(coordinates string) Square {
	sq, err := ParseSquare(coordinates)
	if err != nil {
		panic(err)
	}
	return sq
}

func (s Square) File() File {
	return s.file
}

func (s Square) Rank() int {
	return s.rank
}

func (s Square) String() string {
	return fmt.Sprintf("%s%d", s.file, s.rank)
}

func (s Square) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Square) UnmarshalText(text []byte) error {
	sq, err := ParseSquare(string(text))
	if err != nil {
		return err
	}
	*s = sq
	return nil
}

// Less orders squares the way the board is read: rank 8 first, left to right.
func (s Square) Less(other Square) bool {
	if s.rank != other.rank {
		return s.rank > other.rank
	}
	return s.file < other.file
}

func (s Square) delta(other Square) (int, int) {
	return int(other.file) - int(s.file), other.rank - s.rank
}

func (s Square) IsDiagonalFrom(other Square) bool {
	df, dr := s.delta(other)
	return s != other && abs(df) == abs(dr)
}

func (s Square) IsAdjacent(other Square) bool {
	return s != other && s.Distance(other) == 0
}

// IsDirectlyAbove reports whether s is one rank above other on the same file.
func (s Square) IsDirectlyAbove(other Square) bool {
	return s.file == other.file && s.rank == other.rank+1
}

// IsDirectlyBelow reports whether s is one rank below other on the same file.
func (s Square) IsDirectlyBelow(other Square) bool {
	return s.file == other.file && s.rank == other.rank-1
}

// IsDirectlyAboveDiagonally reports whether s is one rank above other on a neighbouring file.
func (s Square) IsDirectlyAboveDiagonally(other Square) bool {
	df, _ := s.delta(other)
	return abs(df) == 1 && s.rank == other.rank+1
}

// IsDirectlyBelowDiagonally reports whether s is one rank below other on a neighbouring file.
func (s Square) IsDirectlyBelowDiagonally(other Square) bool {
	df, _ := s.delta(other)
	return abs(df) == 1 && s.rank == other.rank-1
}

func (s Square) IsKnightHopFrom(other Square) bool {
	df, dr := s.delta(other)
	df, dr = abs(df), abs(dr)
	return (df == 1 && dr == 2) || (df == 2 && dr == 1)
}

func (s Square) sameRank(other Square) bool {
	return s != other && s.rank == other.rank
}

func (s Square) sameFile(other Square) bool {
	return s != other && s.file == other.file
}

// Distance counts the squares strictly between s and other along a line,
// max(|Δfile|, |Δrank|) - 1. It is defined for unaligned squares as well.
func (s Square) Distance(other Square) int {
	df, dr := s.delta(other)
	return max(abs(df), abs(dr)) - 1
}

// SquaresBetween returns the squares strictly between s and other, walking
// from s. It is empty unless both share a rank, file or diagonal.
func (s Square) SquaresBetween(other Square) []Square {
	if !s.sameRank(other) && !s.sameFile(other) && !s.IsDiagonalFrom(other) {
		return nil
	}
	df, dr := s.delta(other)
	stepFile, stepRank := sign(df), sign(dr)
	between := make([]Square, 0, s.Distance(other))
	for i := 1; i <= s.Distance(other); i++ {
		between = append(between, Square{
			file: File(int(s.file) + i*stepFile),
			rank: s.rank + i*stepRank,
		})
	}
	return between
}

// AdjacentSquares returns the in-bounds neighbours of s in board order.
func (s Square) AdjacentSquares() []Square {
	adjacent := make([]Square, 0, 8)
	for dr := 1; dr >= -1; dr-- {
		for df := -1; df <= 1; df++ {
			if df == 0 && dr == 0 {
				continue
			}
			if sq, err := NewSquare(File(int(s.file)+df), s.rank+dr); err == nil {
				adjacent = append(adjacent, sq)
			}
		}
	}
	return adjacent
}

var allSquares = func() []Square {
	squares := make([]Square, 0, numSquares)
	for rank := topRank; rank >= bottomRank; rank-- {
		for file := FileA; file <= FileH; file++ {
			squares = append(squares, Square{file: file, rank: rank})
		}
	}
	return squares
}()

// AllSquares returns the 64 squares of the board, rank 8 first, left to right.
func AllSquares() []Square {
	squares := make([]Square, len(allSquares))
	copy(squares, allSquares)
	return squares
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
