package chess

const (
	// PiecesPerSide is the number of pieces each side starts with.
	PiecesPerSide = 16

	whitePawnRank = 2
	blackPawnRank = 7
	whiteBackRank = 1
	blackBackRank = 8
)

var backRank = [sideLen]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// PieceSet holds the 32 pieces of a game, 16 per side, created at their
// starting squares.
type PieceSet struct {
	sides [2][PiecesPerSide]*Piece
}

func NewPieceSet() *PieceSet {
	s := &PieceSet{}
	s.initSide(White, whiteBackRank, whitePawnRank)
	s.initSide(Black, blackBackRank, blackPawnRank)
	return s
}

func (s *PieceSet) initSide(c Color, back, pawns int) {
	for file := FileA; file <= FileH; file++ {
		s.sides[c][file] = newPiece(backRank[file], c, Square{file: file, rank: back})
		s.sides[c][sideLen+int(file)] = newPiece(Pawn, c, Square{file: file, rank: pawns})
	}
}

// Side returns the roster of the given color, back rank first.
func (s *PieceSet) Side(c Color) []*Piece {
	return s.sides[c][:]
}
