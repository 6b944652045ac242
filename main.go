package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

var (
	addr      = flag.String("addr", ":8080", "address the HTTP API listens on")
	retention = flag.Duration("retention", 24*time.Hour, "how long ended games are kept")
)

var sigint chan os.Signal

func waitShutdown(e *echo.Echo, idleConnsClosed chan<- interface{}) {
	defer close(idleConnsClosed)

	sigint = make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt)
	defer signal.Stop(sigint)

	<-sigint
	log.Info("received shutdown signal")

	idleError("HTTP server shutdown:", e.Shutdown(context.Background()))
}

func listenAndServe(s store, addr string, idleConnsClosed chan<- interface{}) {
	e := apiHandler(s)
	go waitShutdown(e, idleConnsClosed)

	e.Use(middleware.Logger())

	idleError("HTTP server end:", e.Start(addr))
}

// Open open.
func Open(s store, addr string) {
	idleConnsClosed := make(chan interface{})
	go listenAndServe(s, addr, idleConnsClosed)
	<-idleConnsClosed
}

func idle(s store, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for range ticker.C {
		idleError("game idle complete:", gameIdle(s, *retention))
	}
}

func main() {
	flag.Parse()

	dbname, ok := os.LookupEnv("PGDATABASE")
	if !ok {
		dbname = "test"
	}
	s, err := openStore(dbname)
	if err != nil {
		log.WithError(err).WithField("dbname", dbname).Fatal("failed to open store")
	}
	defer func() {
		idleError("close server:", s.close())
	}()
	go idle(s, time.Minute)
	Open(s, *addr)
}
