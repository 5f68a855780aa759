package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/you/connectfour/internal/analytics"
	"github.com/you/connectfour/internal/config"
	"github.com/you/connectfour/internal/game"
	"github.com/you/connectfour/internal/server"
	"github.com/you/connectfour/internal/store"
)

func main() {
	_ = os.Setenv("TZ", "UTC")
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	db, err := store.Open(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	go func() {
		if err := db.AutoMigrate(ctx); err != nil {
			log.Println("migrate err:", err)
		}
	}()

	events := analytics.New(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer events.Close()

	level := cfg.Level()
	newGame := func(p1, p2 string, opts ...game.Option) *game.Game {
		base := []game.Option{game.WithBoardSize(cfg.BoardRows, cfg.BoardCols), game.WithLevel(level)}
		return game.New(p1, p2, append(base, opts...)...)
	}
	app := &server.App{
		Hub:       server.NewHub(cfg.ReconnectGrace(), cfg.BotWait(), newGame),
		Store:     db,
		Analytics: events,
		Level:     level,
	}

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: app.Routes()}
	go func() {
		<-ctx.Done()
		log.Println("shutting down…")
		shutdown, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		_ = srv.Shutdown(shutdown)
	}()

	log.Printf("backend listening on %s (bot level %s, board %dx%d)", srv.Addr, level, cfg.BoardRows, cfg.BoardCols)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
