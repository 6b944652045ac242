package chess

import (
	"fmt"

	"github.com/apex/log"
)

// Board is the game engine: it indexes the pieces of a PieceSet by square,
// tracks the side to move and the squares of both kings, and validates and
// applies moves. A Board is meant to be driven by a single caller.
type Board struct {
	squares  map[Square]*Piece
	pieces   *PieceSet
	turn     Color
	state    State
	gameOver bool
	kings    [2]Square

	logger log.Interface
}

// Option configures a Board.
type Option func(*Board)

// WithLogger sets the logger moves and rejections are reported to.
func WithLogger(logger log.Interface) Option {
	return func(b *Board) {
		b.logger = logger
	}
}

// NewBoard returns a board set up for a new game, White to move.
func NewBoard(opts ...Option) *Board {
	b := &Board{logger: log.Log}
	for _, opt := range opts {
		opt(b)
	}
	b.arrange()
	return b
}

func (b *Board) arrange() {
	b.squares = make(map[Square]*Piece, numSquares)
	for _, sq := range allSquares {
		b.squares[sq] = nil
	}
	b.pieces = NewPieceSet()
	for _, c := range []Color{White, Black} {
		for _, p := range b.pieces.Side(c) {
			b.squares[p.square] = p
			if p.kind == King {
				b.kings[c] = p.square
			}
		}
	}
	b.turn = White
	b.state = StateRunning
	b.gameOver = false
}

// Reset discards the current game and sets up a new one.
func (b *Board) Reset() {
	b.arrange()
	b.logger.Info("board reset")
}

func (b *Board) Turn() Color {
	return b.turn
}

func (b *Board) GameOver() bool {
	return b.gameOver
}

// State reports whether the side to move is in check, checkmate or stalemate.
func (b *Board) State() State {
	return b.state
}

// KingSquare returns the square of the king of the given color.
func (b *Board) KingSquare(c Color) Square {
	return b.kings[c]
}

// PieceAt returns the piece on sq, or nil. Squares off the board hold nothing.
func (b *Board) PieceAt(sq Square) *Piece {
	if !sq.IsValid() {
		return nil
	}
	return b.at(sq)
}

// Side returns the pieces of the given color, including captured ones.
func (b *Board) Side(c Color) []*Piece {
	return b.pieces.Side(c)
}

// Occupant is the content of a square in a Snapshot. The zero value is an empty square.
type Occupant struct {
	Kind  Kind
	Color Color
}

func (o Occupant) Empty() bool {
	return o.Kind == NoKind
}

// Snapshot maps every square of the board to its occupant.
type Snapshot map[Square]Occupant

func (b *Board) Snapshot() Snapshot {
	snapshot := make(Snapshot, numSquares)
	for sq, p := range b.squares {
		if p == nil {
			snapshot[sq] = Occupant{}
			continue
		}
		snapshot[sq] = Occupant{Kind: p.kind, Color: p.color}
	}
	return snapshot
}

// at looks sq up in the index. Every square is always present, so a miss
// means the board is corrupt.
func (b *Board) at(sq Square) *Piece {
	p, ok := b.squares[sq]
	if !ok {
		err := fmt.Errorf("square %s missing from board", sq)
		b.logger.WithError(err).Error("board corrupted")
		panic(err)
	}
	return p
}

// SubmitMove validates the move of the piece on source to destination for
// the side to move and applies it. On success the turn passes to the
// opponent unless the move ended the game. The board is left untouched
// whenever an error is returned.
func (b *Board) SubmitMove(source, destination string) (Report, error) {
	if b.gameOver {
		b.logger.WithField("source", source).WithField("destination", destination).Warn("game is over")
		return Report{}, ErrGameOver
	}
	from, err := ParseSquare(source)
	if err != nil {
		b.logger.WithError(err).Warn("invalid source")
		return Report{}, err
	}
	piece := b.at(from)
	if piece == nil {
		return Report{}, b.reject(&MoveError{From: from, Err: ErrNoPiece})
	}
	if piece.color != b.turn {
		return Report{}, b.reject(&MoveError{From: from, Piece: piece.String(), Err: ErrOutOfTurn})
	}
	to, err := ParseSquare(destination)
	if err != nil {
		b.logger.WithError(err).Warn("invalid destination")
		return Report{}, err
	}
	target := b.at(to)
	if _, err := b.attempt(from, to, piece, target); err != nil {
		return Report{}, b.reject(&MoveError{From: from, To: to, Piece: piece.String(), Err: err})
	}

	report := Report{Color: piece.color, Piece: piece.kind, From: from, To: to}
	if target != nil {
		report.Captured = target.kind
	}
	opponent := b.turn.Opposite()
	switch {
	case b.IsInCheck(opponent):
		report.Check = true
		b.announceCheck(opponent)
		b.state = StateCheck
		if b.IsInCheckmate(opponent) {
			report.Checkmate = true
			b.state = StateCheckmate
			b.gameOver = true
		}
	case !b.HasValidMove(opponent):
		report.Stalemate = true
		b.state = StateStalemate
		b.gameOver = true
	default:
		b.state = StateRunning
	}
	if !b.gameOver {
		b.turn = opponent
	}
	b.logger.WithFields(log.Fields{
		"color": report.Color,
		"piece": report.Piece,
		"from":  report.From,
		"to":    report.To,
		"state": b.state,
	}).Info(report.String())
	return report, nil
}

func (b *Board) reject(err *MoveError) error {
	b.logger.WithError(err.Err).WithFields(log.Fields{
		"from":  err.From,
		"to":    err.To,
		"piece": err.Piece,
	}).Warn("move rejected")
	return err
}

// IsPossibleMove reports whether the piece on from can move to to by its
// movement rule with nothing in the way. It does not consider check.
func (b *Board) IsPossibleMove(from, to Square) bool {
	if !from.IsValid() || !to.IsValid() {
		return false
	}
	piece := b.at(from)
	if piece == nil {
		return false
	}
	return b.possible(piece, to, b.at(to))
}

func (b *Board) possible(piece *Piece, to Square, target *Piece) bool {
	possible, mayBeObstructed := piece.reach(to, target)
	if !possible {
		return false
	}
	return !mayBeObstructed || b.clear(piece.square, to)
}

func (b *Board) clear(from, to Square) bool {
	for _, sq := range from.SquaresBetween(to) {
		if b.at(sq) != nil {
			return false
		}
	}
	return true
}

// IsValidMove reports whether the piece on from may legally move to to,
// including that the move does not leave its own king in check. Turn and
// game state are ignored. The move is always taken back, legal or not, and
// the board is left exactly as it was; use SubmitMove to play it.
func (b *Board) IsValidMove(from, to Square) bool {
	if !from.IsValid() || !to.IsValid() {
		return false
	}
	return b.probe(from, to)
}

// attempt applies the move if it is legal and returns the function that
// takes it back. A move that leaves the mover's king in check is taken back
// before attempt returns.
func (b *Board) attempt(from, to Square, piece, target *Piece) (func(), error) {
	possible, mayBeObstructed := piece.reach(to, target)
	if !possible {
		return nil, ErrUnreachable
	}
	if mayBeObstructed && !b.clear(from, to) {
		return nil, ErrObstructed
	}
	undo := b.relocate(piece, from, to)
	if b.IsInCheck(piece.color) {
		undo()
		return nil, ErrSelfCheck
	}
	return undo, nil
}

// probe tries a move quietly and always takes it back.
func (b *Board) probe(from, to Square) bool {
	piece := b.at(from)
	if piece == nil {
		return false
	}
	undo, err := b.attempt(from, to, piece, b.at(to))
	if err != nil {
		return false
	}
	defer undo()
	return true
}

// relocate moves piece from one square to another, capturing whatever stood
// there, and keeps the square index, the piece locations and the king cache
// in step. The returned function restores all three.
func (b *Board) relocate(piece *Piece, from, to Square) func() {
	captured := b.at(to)
	b.squares[from] = nil
	b.squares[to] = piece
	if captured != nil {
		captured.capture()
	}
	piece.place(to)
	if piece.kind == King {
		b.kings[piece.color] = to
	}
	return func() {
		b.squares[from] = piece
		b.squares[to] = captured
		piece.place(from)
		if captured != nil {
			captured.place(to)
		}
		if piece.kind == King {
			b.kings[piece.color] = from
		}
	}
}
