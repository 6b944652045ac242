package chess

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrGameOver is returned for moves submitted after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")

	// ErrIllegalMove matches every *MoveError.
	ErrIllegalMove = errors.New("illegal move")

	ErrNoPiece     = errors.New("no piece on source square")
	ErrOutOfTurn   = errors.New("not the side to move")
	ErrUnreachable = errors.New("piece cannot move there")
	ErrObstructed  = errors.New("path is obstructed")
	ErrSelfCheck   = errors.New("king would be left in check")
)

// MoveError describes a rejected move. It matches ErrIllegalMove and unwraps to its cause.
type MoveError struct {
	From, To Square
	Piece    string
	Err      error
}

func (e *MoveError) Error() string {
	var b strings.Builder
	b.WriteString("illegal move")
	if e.Piece != "" {
		fmt.Fprintf(&b, " of %s", e.Piece)
	}
	fmt.Fprintf(&b, " from %s", e.From)
	if e.To != (Square{}) {
		fmt.Fprintf(&b, " to %s", e.To)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *MoveError) Is(target error) bool {
	return target == ErrIllegalMove
}

func (e *MoveError) Unwrap() error {
	return e.Err
}
