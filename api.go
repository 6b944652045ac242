package main

import (
	"errors"
	"net/http"
	"path"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/maplefeline/chessboard/chess"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

type agentRequest struct {
	GameID uuid.UUID
}

type playRequest struct {
	Source      string
	Destination string
}

type gameResponse struct {
	Href   string
	Game   Game
	Status string `json:",omitempty"`
}

type gamesResponse struct {
	Href  string
	Games []Game
}

type boardResponse struct {
	Href  string
	Board boardView
}

type playsResponse struct {
	Href  string
	Moves []string
}

type statsResponse struct {
	Href     string
	Mobility mobility
}

func errToHTTP(err error) error {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.ErrNotFound
	case errors.Is(err, chess.ErrGameOver):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, chess.ErrInvalidCoordinates), errors.Is(err, chess.ErrIllegalMove):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return err
}

func requestID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return id, nil
}

func requestAgent(c echo.Context, s store) (*Game, uuid.UUID, error) {
	id, err := requestID(c)
	if err != nil {
		return nil, uuid.Nil, err
	}
	game, err := getAgent(s, id)
	return game, id, err
}

func requestGame(c echo.Context, s store) (*Game, error) {
	id, err := requestID(c)
	if err != nil {
		return nil, err
	}
	return getGame(s, id)
}

func gameHref(game *Game, elem ...string) string {
	return path.Join(append([]string{"/games", game.GameID.String()}, elem...)...)
}

func responseAgent(game *Game, agentID uuid.UUID, status string) gameResponse {
	return gameResponse{Game: game.response(agentID), Href: path.Join("/agents", agentID.String()), Status: status}
}

func responseGame(game *Game) gameResponse {
	return gameResponse{Game: game.response(uuid.Nil), Href: gameHref(game)}
}

func responseGames(games []Game) gamesResponse {
	for i := range games {
		games[i] = games[i].response(uuid.Nil)
	}
	return gamesResponse{Games: games, Href: "/games"}
}

func responsePlays(game *Game, moves []chess.Move) playsResponse {
	plays := make([]string, 0, len(moves))
	for _, m := range moves {
		plays = append(plays, m.String())
	}
	return playsResponse{Moves: plays, Href: gameHref(game, "plays")}
}

func apiHandler(s store) *echo.Echo {
	e := echo.New()

	e.POST("/agents", func(c echo.Context) error {
		var message agentRequest
		if err := c.Bind(&message); err != nil {
			return err
		}
		game, err := getGame(s, message.GameID)
		if err != nil {
			return errToHTTP(err)
		}
		game, id, err := makeAgent(s, game)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusCreated, responseAgent(game, id, ""))
	})
	e.GET("/agents/:id", func(c echo.Context) error {
		game, id, err := requestAgent(c, s)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseAgent(game, id, ""))
	})
	e.PUT("/agents/:id", func(c echo.Context) error {
		game, id, err := requestAgent(c, s)
		if err != nil {
			return errToHTTP(err)
		}
		var request playRequest
		if err := c.Bind(&request); err != nil {
			return err
		}
		var report chess.Report
		game, err = s.update(game.ID, func(game *Game) error {
			report, err = game.play(id, request.Source, request.Destination)
			return err
		})
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseAgent(game, id, report.String()))
	})
	e.GET("/games", func(c echo.Context) error {
		games, err := s.openGames()
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseGames(games))
	})
	e.POST("/games", func(c echo.Context) error {
		game, err := makeGame(s)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusCreated, responseGame(game))
	})
	e.GET("/games/:id", func(c echo.Context) error {
		game, err := requestGame(c, s)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseGame(game))
	})
	e.GET("/games/:id/board", func(c echo.Context) error {
		game, err := requestGame(c, s)
		if err != nil {
			return errToHTTP(err)
		}
		b, err := game.board()
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, boardResponse{Board: view(b), Href: gameHref(game, "board")})
	})
	e.GET("/games/:id/plays", func(c echo.Context) error {
		game, err := requestGame(c, s)
		if err != nil {
			return errToHTTP(err)
		}
		moves, err := game.plays()
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responsePlays(game, moves))
	})
	e.GET("/games/:id/stats", func(c echo.Context) error {
		game, err := requestGame(c, s)
		if err != nil {
			return errToHTTP(err)
		}
		m, err := game.mobility()
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, statsResponse{Mobility: m, Href: gameHref(game, "stats")})
	})
	e.POST("/games/:id/reset", func(c echo.Context) error {
		game, err := requestGame(c, s)
		if err != nil {
			return errToHTTP(err)
		}
		game, err = s.update(game.ID, func(game *Game) error {
			return game.reset()
		})
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseGame(game))
	})

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Gzip())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())

	return e
}
