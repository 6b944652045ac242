package chess

type State uint8

const (
	// StateRunning is when the game is in progress and the side to move is not in check.
	StateRunning State = iota

	// StateCheck is when the side to move is in check.
	StateCheck

	// StateCheckmate is when the side to move is checkmated.
	StateCheckmate

	// StateStalemate is when the side to move is not in check and has no legal move.
	StateStalemate
)

func (s State) IsOver() bool {
	return s == StateCheckmate || s == StateStalemate
}

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateCheck:
		return "check"
	case StateCheckmate:
		return "checkmate"
	case StateStalemate:
		return "stalemate"
	default:
		return ""
	}
}
