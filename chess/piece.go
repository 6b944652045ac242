package chess

import "fmt"

// Kind is the type of a chess piece.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k Kind) String() string {
	return k.Name()
}

func (k Kind) Name() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return ""
	}
}

// Symbol returns the unicode chess symbol of the kind for the given side.
func (k Kind) Symbol(c Color) string {
	var white, black string
	switch k {
	case Pawn:
		white, black = "♙", "♟"
	case Knight:
		white, black = "♘", "♞"
	case Bishop:
		white, black = "♗", "♝"
	case Rook:
		white, black = "♖", "♜"
	case Queen:
		white, black = "♕", "♛"
	case King:
		white, black = "♔", "♚"
	default:
		return ""
	}
	if c == Black {
		return black
	}
	return white
}

// Piece is a single chess piece. Its identity is stable for the whole game;
// only its location changes, and only through the Board that holds it.
type Piece struct {
	kind    Kind
	color   Color
	square  Square
	onBoard bool
}

func newPiece(kind Kind, color Color, square Square) *Piece {
	return &Piece{kind: kind, color: color, square: square, onBoard: true}
}

func (p *Piece) Kind() Kind {
	return p.kind
}

func (p *Piece) Color() Color {
	return p.color
}

// Location returns the square the piece stands on, or false once it has been captured.
func (p *Piece) Location() (Square, bool) {
	return p.square, p.onBoard
}

func (p *Piece) Captured() bool {
	return !p.onBoard
}

func (p *Piece) Symbol() string {
	return p.kind.Symbol(p.color)
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s's %s", p.color, p.kind)
}

func (p *Piece) place(square Square) {
	p.square = square
	p.onBoard = true
}

func (p *Piece) capture() {
	p.onBoard = false
}

// reach applies the movement rule of the piece to dest, occupied by target
// (nil when empty). It ignores everything else on the board: when
// mayBeObstructed is true the caller still has to check that the squares in
// between are empty.
func (p *Piece) reach(dest Square, target *Piece) (possible, mayBeObstructed bool) {
	if !p.onBoard || dest == p.square {
		return false, false
	}
	if target != nil && target.color == p.color {
		return false, false
	}
	from := p.square
	switch p.kind {
	case Pawn:
		return p.pawnReach(dest, target)
	case Knight:
		return from.IsKnightHopFrom(dest), false
	case Bishop:
		return from.IsDiagonalFrom(dest), !from.IsAdjacent(dest)
	case Rook:
		return from.sameRank(dest) || from.sameFile(dest), !from.IsAdjacent(dest)
	case Queen:
		straight := from.sameRank(dest) || from.sameFile(dest)
		return straight || from.IsDiagonalFrom(dest), !from.IsAdjacent(dest)
	case King:
		return from.IsAdjacent(dest), false
	default:
		return false, false
	}
}

func (p *Piece) pawnReach(dest Square, target *Piece) (bool, bool) {
	from := p.square
	var forward, capture, double bool
	if p.color == White {
		forward = dest.IsDirectlyAbove(from)
		capture = dest.IsDirectlyAboveDiagonally(from)
		double = from.rank == whitePawnRank && dest.file == from.file && dest.rank == from.rank+2
	} else {
		forward = dest.IsDirectlyBelow(from)
		capture = dest.IsDirectlyBelowDiagonally(from)
		double = from.rank == blackPawnRank && dest.file == from.file && dest.rank == from.rank-2
	}
	switch {
	case forward:
		return target == nil, false
	case double:
		return target == nil, true
	case capture:
		return target != nil, false
	default:
		return false, false
	}
}
