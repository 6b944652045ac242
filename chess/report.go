package chess

import (
	"fmt"
	"strings"
)

// Move is a pair of squares.
type Move struct {
	From, To Square
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// Report describes a move accepted by SubmitMove.
type Report struct {
	Color    Color
	Piece    Kind
	From, To Square
	Captured Kind

	Check     bool
	Checkmate bool
	Stalemate bool
}

func (r Report) Move() Move {
	return Move{From: r.From, To: r.To}
}

func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s's %s moves from %s to %s", r.Color, r.Piece, r.From, r.To)
	if r.Captured != NoKind {
		fmt.Fprintf(&b, " taking %s's %s", r.Color.Opposite(), r.Captured)
	}
	switch {
	case r.Checkmate:
		fmt.Fprintf(&b, "\n%s is in checkmate", r.Color.Opposite())
	case r.Check:
		fmt.Fprintf(&b, "\n%s is in check", r.Color.Opposite())
	case r.Stalemate:
		fmt.Fprintf(&b, "\n%s is in stalemate", r.Color.Opposite())
	}
	return b.String()
}
