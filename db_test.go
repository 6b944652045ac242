package main

import (
	"errors"
	"os"
	"time"

	uuid "github.com/satori/go.uuid"
	. "gopkg.in/check.v1"
	"gorm.io/gorm"
)

type GormSuite struct {
	store *gormStore
}

var _ = Suite(&GormSuite{})

func (s *GormSuite) SetUpSuite(c *C) {
	dbname, ok := os.LookupEnv("PGDATABASE")
	if !ok {
		c.Skip("PGDATABASE not set")
	}
	store, err := openStore(dbname)
	c.Assert(err, IsNil)
	s.store = store
}

func (s *GormSuite) TearDownSuite(c *C) {
	if s.store != nil {
		c.Check(s.store.close(), IsNil)
	}
}

func (s *GormSuite) TestCreateAndJoin(c *C) {
	game, err := makeGame(s.store)
	c.Assert(err, IsNil)
	c.Check(game.Turn, Equals, "White")

	game, white, err := makeAgent(s.store, game)
	c.Assert(err, IsNil)
	game, black, err := makeAgent(s.store, game)
	c.Assert(err, IsNil)
	_, _, err = makeAgent(s.store, game)
	c.Check(err, ErrorMatches, ".*game is full")

	found, err := s.store.agent(black)
	c.Assert(err, IsNil)
	c.Check(found.GameID, DeepEquals, game.GameID)
	color, ok := found.side(white)
	c.Check(ok, Equals, true)
	c.Check(color.String(), Equals, "White")

	games, err := s.store.openGames()
	c.Assert(err, IsNil)
	for _, open := range games {
		c.Check(open.GameID, Not(DeepEquals), game.GameID)
	}
}

func (s *GormSuite) TestUpdatePersistsMoves(c *C) {
	game, err := makeGame(s.store)
	c.Assert(err, IsNil)
	game, white, err := makeAgent(s.store, game)
	c.Assert(err, IsNil)
	game, _, err = makeAgent(s.store, game)
	c.Assert(err, IsNil)

	_, err = s.store.update(game.ID, func(game *Game) error {
		_, err := game.play(white, "E2", "E4")
		return err
	})
	c.Assert(err, IsNil)

	_, err = s.store.update(game.ID, func(game *Game) error {
		_, err := game.play(white, "D2", "D4")
		return err
	})
	c.Check(err, ErrorMatches, ".*not your turn")

	found, err := s.store.game(game.GameID)
	c.Assert(err, IsNil)
	c.Check(found.Moves.String(), Equals, "E2E4")
	c.Check(found.Turn, Equals, "Black")
	c.Check(found.MoveCount, Equals, 1)
}

func (s *GormSuite) TestPurge(c *C) {
	game, err := makeGame(s.store)
	c.Assert(err, IsNil)
	_, err = s.store.update(game.ID, func(game *Game) error {
		game.End = true
		return nil
	})
	c.Assert(err, IsNil)

	_, err = s.store.purge(time.Now().Add(time.Hour))
	c.Assert(err, IsNil)
	_, err = s.store.game(game.GameID)
	c.Check(errors.Is(err, gorm.ErrRecordNotFound), Equals, true)
}

func (s *GormSuite) TestUnknownGame(c *C) {
	_, err := s.store.game(uuid.NewV4())
	c.Check(errors.Is(err, gorm.ErrRecordNotFound), Equals, true)
}

func (s *GormSuite) TestNilID(c *C) {
	game, err := makeGame(s.store)
	c.Assert(err, IsNil)
	_, _, err = makeAgent(s.store, game)
	c.Assert(err, IsNil)

	_, err = s.store.game(uuid.Nil)
	c.Check(errors.Is(err, gorm.ErrRecordNotFound), Equals, true)
	_, err = s.store.agent(uuid.Nil)
	c.Check(errors.Is(err, gorm.ErrRecordNotFound), Equals, true)
	_, err = getGame(s.store, uuid.Nil)
	c.Check(err, ErrorMatches, ".*Not Found")
}
