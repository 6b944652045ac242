package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/labstack/echo/v4"
	"github.com/maplefeline/chessboard/chess"
	"github.com/montanaflynn/stats"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

// Game game.
type Game struct {
	gorm.Model

	GameID     uuid.UUID `gorm:"<-:create;type:varchar;size:36;uniqueIndex"`
	WhiteAgent uuid.UUID `gorm:"type:varchar;size:36;index"`
	BlackAgent uuid.UUID `gorm:"type:varchar;size:36;index"`
	Moves      moveList  `gorm:"type:text;not null"`
	Turn       string
	State      string
	End        bool
	MoveCount  int
}

// replayLogger swallows the engine's log while a game is rebuilt from its moves.
var replayLogger = &log.Logger{Handler: discard.Default}

func gameIdle(s store, retention time.Duration) error {
	count, err := s.purge(time.Now().Add(-retention))
	if err != nil {
		return err
	}
	if count > 0 {
		log.WithField("count", count).Info("purged ended games")
	}
	return nil
}

func makeGame(s store) (*Game, error) {
	game := &Game{
		GameID:     uuid.NewV4(),
		WhiteAgent: placeHolder,
		BlackAgent: placeHolder,
		Moves:      moveList{},
	}
	game.sync(chess.NewBoard(chess.WithLogger(replayLogger)))
	if err := s.create(game); err != nil {
		return nil, err
	}
	return s.game(game.GameID)
}

// getGame looks a game up by its public id. The nil id names no game.
func getGame(s store, id uuid.UUID) (*Game, error) {
	if uuid.Equal(id, uuid.Nil) {
		return nil, echo.ErrNotFound
	}
	return s.game(id)
}

func (game Game) response(agentID uuid.UUID) Game {
	if !game.End {
		if !uuid.Equal(game.WhiteAgent, agentID) {
			game.WhiteAgent = uuid.Nil
		}
		if !uuid.Equal(game.BlackAgent, agentID) {
			game.BlackAgent = uuid.Nil
		}
	}
	return game
}

// board rebuilds the engine state by replaying the recorded moves.
func (game *Game) board() (*chess.Board, error) {
	b := chess.NewBoard(chess.WithLogger(replayLogger))
	for i, m := range game.Moves {
		if _, err := b.SubmitMove(m.From.String(), m.To.String()); err != nil {
			return nil, fmt.Errorf("replay of move %d %s: %w", i+1, m, err)
		}
	}
	return b, nil
}

func (game *Game) sync(b *chess.Board) {
	game.Turn = b.Turn().String()
	game.State = b.State().String()
	game.End = b.GameOver()
	game.MoveCount = len(game.Moves)
}

// side returns the color played by the agent.
func (game *Game) side(id uuid.UUID) (chess.Color, bool) {
	switch {
	case uuid.Equal(id, game.WhiteAgent):
		return chess.White, true
	case uuid.Equal(id, game.BlackAgent):
		return chess.Black, true
	default:
		return chess.White, false
	}
}

func (game *Game) play(id uuid.UUID, source, destination string) (chess.Report, error) {
	color, ok := game.side(id)
	if !ok || uuid.Equal(id, placeHolder) {
		return chess.Report{}, echo.NewHTTPError(http.StatusNotAcceptable, "not a player of this game")
	}
	if game.End {
		return chess.Report{}, chess.ErrGameOver
	}
	if uuid.Equal(placeHolder, game.BlackAgent) {
		return chess.Report{}, echo.NewHTTPError(http.StatusNotAcceptable, "waiting for opponent")
	}
	if game.Turn != color.String() {
		return chess.Report{}, echo.NewHTTPError(http.StatusNotAcceptable, "not your turn")
	}
	b, err := game.board()
	if err != nil {
		return chess.Report{}, err
	}
	report, err := b.SubmitMove(source, destination)
	if err != nil {
		return chess.Report{}, err
	}
	game.Moves = append(game.Moves, report.Move())
	game.sync(b)
	log.WithField("game", game.GameID).WithField("state", game.State).Info(report.String())
	return report, nil
}

func (game *Game) reset() error {
	b, err := game.board()
	if err != nil {
		return err
	}
	b.Reset()
	game.Moves = moveList{}
	game.sync(b)
	return nil
}

// plays lists the legal moves of the side to move.
func (game *Game) plays() ([]chess.Move, error) {
	b, err := game.board()
	if err != nil {
		return nil, err
	}
	if b.GameOver() {
		return []chess.Move{}, nil
	}
	return b.ValidMoves(b.Turn()), nil
}

type mobility struct {
	Plies  int
	Counts []int
	Mean   float64
	Median float64
	Min    float64
	Max    float64
}

// mobility counts the legal moves of the side to move at every ply of the game.
func (game *Game) mobility() (mobility, error) {
	b := chess.NewBoard(chess.WithLogger(replayLogger))
	counts := make([]int, 0, len(game.Moves)+1)
	counts = append(counts, len(b.ValidMoves(b.Turn())))
	for i, m := range game.Moves {
		if _, err := b.SubmitMove(m.From.String(), m.To.String()); err != nil {
			return mobility{}, fmt.Errorf("replay of move %d %s: %w", i+1, m, err)
		}
		if b.GameOver() {
			counts = append(counts, 0)
			continue
		}
		counts = append(counts, len(b.ValidMoves(b.Turn())))
	}
	data := stats.LoadRawData(counts)
	result := mobility{Plies: len(counts), Counts: counts}
	var err error
	if result.Mean, err = stats.Mean(data); err != nil {
		return mobility{}, err
	}
	if result.Median, err = stats.Median(data); err != nil {
		return mobility{}, err
	}
	if result.Min, err = stats.Min(data); err != nil {
		return mobility{}, err
	}
	if result.Max, err = stats.Max(data); err != nil {
		return mobility{}, err
	}
	return result, nil
}
