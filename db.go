package main

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/apex/log"
	uuid "github.com/satori/go.uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var placeHolder uuid.UUID

func init() {
	placeholder, err := uuid.FromString("f9a87c7e3f4f11eb99b58c8590001d9d")
	if err != nil {
		log.WithError(err).Fatal("failed to parse placeholder uuid")
	}
	placeHolder = placeholder
}

// store keeps games between requests.
type store interface {
	create(game *Game) error
	game(id uuid.UUID) (*Game, error)
	agent(id uuid.UUID) (*Game, error)
	openGames() ([]Game, error)
	// update runs fn on the latest copy of the game and saves it, unless fn fails.
	update(id uint, fn func(*Game) error) (*Game, error)
	purge(before time.Time) (int64, error)
	close() error
}

type gormStore struct {
	db *gorm.DB
}

func openStore(dbname string) (*gormStore, error) {
	connStr := strings.Join([]string{"dbname", dbname}, "=")

	database, err := gorm.Open(postgres.Open(connStr), &gorm.Config{
		Logger:      logger.Default.LogMode(logger.Silent),
		QueryFields: true,
	})
	if err != nil {
		log.WithError(err).WithField("connStr", connStr).Error("failed to connect database")
		return nil, err
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, err
	}

	// SetMaxIdleConns sets the maximum number of connections in the idle connection pool.
	sqlDB.SetMaxIdleConns(10)
	// SetMaxOpenConns sets the maximum number of open connections to the database.
	sqlDB.SetMaxOpenConns(100)
	// SetConnMaxLifetime sets the maximum amount of time a connection may be reused.
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := database.AutoMigrate(&Game{}); err != nil {
		return nil, err
	}
	return &gormStore{db: database}, nil
}

func (s *gormStore) create(game *Game) error {
	return s.db.Create(game).Error
}

func (s *gormStore) game(id uuid.UUID) (*Game, error) {
	var game Game
	if err := s.db.Where("game_id = ?", id).First(&game).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *gormStore) agent(id uuid.UUID) (*Game, error) {
	var game Game
	if err := s.db.Where("white_agent = ?", id).Or("black_agent = ?", id).First(&game).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *gormStore) openGames() ([]Game, error) {
	var games []Game
	if err := s.db.Where("black_agent = ?", placeHolder).Where("\"end\" = ?", false).Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (s *gormStore) update(id uint, fn func(*Game) error) (*Game, error) {
	var game Game
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&game, id).Error; err != nil {
			return err
		}
		if err := fn(&game); err != nil {
			return err
		}
		return tx.Save(&game).Error
	})
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *gormStore) purge(before time.Time) (int64, error) {
	result := s.db.Unscoped().Where("updated_at < ?", before).Where("\"end\" = ?", true).Delete(&Game{})
	return result.RowsAffected, result.Error
}

func (s *gormStore) close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func idleError(message string, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}
	if errors.Is(err, http.ErrServerClosed) {
		return
	}
	e := err
	for errors.Unwrap(e) != nil {
		e = errors.Unwrap(e)
	}
	if e.Error() == "sql: database is closed" {
		time.Sleep(1 * time.Second)
		return
	}
	log.WithField("type", reflect.TypeOf(err)).WithError(err).Error(message)
	panic(err)
}
