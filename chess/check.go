package chess

import "github.com/apex/log"

// IsInCheck reports whether the king of color c is attacked by any
// opposing piece still on the board.
func (b *Board) IsInCheck(c Color) bool {
	king := b.kings[c]
	target := b.at(king)
	for _, p := range b.pieces.Side(c.Opposite()) {
		if p.onBoard && b.possible(p, king, target) {
			return true
		}
	}
	return false
}

// attackers returns the squares of the opposing pieces giving check to the king of color c.
func (b *Board) attackers(c Color) []Square {
	king := b.kings[c]
	target := b.at(king)
	var squares []Square
	for _, p := range b.pieces.Side(c.Opposite()) {
		if p.onBoard && b.possible(p, king, target) {
			squares = append(squares, p.square)
		}
	}
	return squares
}

// announceCheck logs every piece giving check to the king of color c.
func (b *Board) announceCheck(c Color) {
	king := b.kings[c]
	for _, sq := range b.attackers(c) {
		b.logger.WithFields(log.Fields{
			"king":     king,
			"attacker": sq,
			"piece":    b.at(sq),
		}).Debug("check")
	}
}

// IsInCheckmate reports whether the king of color c, which must already be
// in check, has no way out: no king move, no capture of the checking piece
// and no interposition.
func (b *Board) IsInCheckmate(c Color) bool {
	king := b.kings[c]
	for _, sq := range king.AdjacentSquares() {
		if b.probe(king, sq) {
			return false
		}
	}
	attackers := b.attackers(c)
	if len(attackers) != 1 {
		// Nothing but a king move answers a double check.
		return true
	}
	attacker := attackers[0]
	if b.canReach(c, []Square{attacker}) {
		return false
	}
	if king.IsAdjacent(attacker) || king.IsKnightHopFrom(attacker) {
		return true
	}
	return !b.canReach(c, king.SquaresBetween(attacker))
}

// canReach reports whether any piece of color c can legally move to one of the targets.
func (b *Board) canReach(c Color, targets []Square) bool {
	for _, p := range b.pieces.Side(c) {
		if !p.onBoard {
			continue
		}
		from := p.square
		for _, sq := range targets {
			if b.probe(from, sq) {
				return true
			}
		}
	}
	return false
}

// HasValidMove reports whether any piece of color c has a legal move.
func (b *Board) HasValidMove(c Color) bool {
	return b.canReach(c, allSquares)
}

// ValidMoves returns every legal move of color c, pieces in roster order,
// destinations in board order.
func (b *Board) ValidMoves(c Color) []Move {
	var moves []Move
	for _, p := range b.pieces.Side(c) {
		if !p.onBoard {
			continue
		}
		from := p.square
		for _, sq := range allSquares {
			if b.probe(from, sq) {
				moves = append(moves, Move{From: from, To: sq})
			}
		}
	}
	return moves
}
