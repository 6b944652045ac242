package main

import (
	"net/http"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	uuid "github.com/satori/go.uuid"
)

// makeAgent seats a new agent in the game, White first, and returns its id.
func makeAgent(s store, game *Game) (*Game, uuid.UUID, error) {
	id := uuid.NewV4()
	game, err := s.update(game.ID, func(game *Game) error {
		return game.addAgent(id)
	})
	if err != nil {
		return nil, uuid.Nil, err
	}
	color, _ := game.side(id)
	log.WithField("game", game.GameID).WithField("agent", id).WithField("color", color).Info("agent joined")
	return game, id, nil
}

func (game *Game) addAgent(id uuid.UUID) error {
	if !uuid.Equal(placeHolder, game.BlackAgent) {
		return echo.NewHTTPError(http.StatusBadRequest, "game is full")
	}
	if uuid.Equal(placeHolder, game.WhiteAgent) {
		game.WhiteAgent = id
	} else {
		game.BlackAgent = id
	}
	return nil
}

func getAgent(s store, id uuid.UUID) (*Game, error) {
	if uuid.Equal(id, placeHolder) || uuid.Equal(id, uuid.Nil) {
		return nil, echo.ErrNotFound
	}
	return s.agent(id)
}
