package main

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/maplefeline/chessboard/chess"
)

// moveList is the move history of a game, stored as "E2E4 E7E5 ...".
type moveList []chess.Move

func parseMove(s string) (chess.Move, error) {
	if len(s) != 4 {
		return chess.Move{}, fmt.Errorf("invalid move format %d %s", len(s), s)
	}
	from, err := chess.ParseSquare(s[:2])
	if err != nil {
		return chess.Move{}, fmt.Errorf("invalid move format %s: %w", s, err)
	}
	to, err := chess.ParseSquare(s[2:])
	if err != nil {
		return chess.Move{}, fmt.Errorf("invalid move format %s: %w", s, err)
	}
	return chess.Move{From: from, To: to}, nil
}

func (moves moveList) String() string {
	fields := make([]string, 0, len(moves))
	for _, m := range moves {
		fields = append(fields, m.String())
	}
	return strings.Join(fields, " ")
}

func (moves moveList) Value() (driver.Value, error) {
	return moves.String(), nil
}

func (moves *moveList) Scan(cell interface{}) error {
	var text string
	switch cell := cell.(type) {
	case string:
		text = cell
	case []byte:
		text = string(cell)
	default:
		return fmt.Errorf("invalid format scaning %#v", cell)
	}
	list := moveList{}
	for _, field := range strings.Fields(text) {
		m, err := parseMove(field)
		if err != nil {
			return err
		}
		list = append(list, m)
	}
	*moves = list
	return nil
}

func (moves moveList) MarshalJSON() ([]byte, error) {
	fields := make([]string, 0, len(moves))
	for _, m := range moves {
		fields = append(fields, m.String())
	}
	return json.Marshal(fields)
}

func (moves *moveList) UnmarshalJSON(bytes []byte) error {
	var fields []string
	if err := json.Unmarshal(bytes, &fields); err != nil {
		return err
	}
	list := make(moveList, 0, len(fields))
	for _, field := range fields {
		m, err := parseMove(field)
		if err != nil {
			return err
		}
		list = append(list, m)
	}
	*moves = list
	return nil
}

type squareView struct {
	Square chess.Square
	Piece  string `json:",omitempty"`
	Color  string `json:",omitempty"`
	Symbol string `json:",omitempty"`
}

type boardView struct {
	Turn      string
	State     string
	End       bool
	WhiteKing chess.Square
	BlackKing chess.Square
	Squares   []squareView
}

// view lays the board out for clients, rank 8 first, left to right.
func view(b *chess.Board) boardView {
	snapshot := b.Snapshot()
	v := boardView{
		Turn:      b.Turn().String(),
		State:     b.State().String(),
		End:       b.GameOver(),
		WhiteKing: b.KingSquare(chess.White),
		BlackKing: b.KingSquare(chess.Black),
		Squares:   make([]squareView, 0, len(snapshot)),
	}
	for _, sq := range chess.AllSquares() {
		o := snapshot[sq]
		if o.Empty() {
			v.Squares = append(v.Squares, squareView{Square: sq})
			continue
		}
		v.Squares = append(v.Squares, squareView{
			Square: sq,
			Piece:  o.Kind.Name(),
			Color:  o.Color.String(),
			Symbol: o.Kind.Symbol(o.Color),
		})
	}
	return v
}
