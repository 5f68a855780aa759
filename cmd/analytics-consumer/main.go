package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/you/connectfour/internal/analytics"
	"github.com/you/connectfour/internal/config"
	"github.com/you/connectfour/internal/game"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	groupID := os.Getenv("KAFKA_GROUP")
	if groupID == "" {
		groupID = "analytics"
	}
	log.Printf("Analytics consumer started. brokers=%s topic=%s group=%s", cfg.KafkaBrokers, cfg.KafkaTopic, groupID)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  strings.Split(cfg.KafkaBrokers, ","),
		Topic:    cfg.KafkaTopic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	defer r.Close()

	agg := analytics.NewAggregates(game.Bot)
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				agg.Print(os.Stdout, now, 10*time.Second)
			}
		}
	}()

	for {
		m, err := r.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("shutting down…")
				agg.Print(os.Stdout, time.Now(), 0)
				return
			}
			log.Printf("read error: %v", err)
			time.Sleep(time.Second)
			continue
		}
		if err := agg.Add(m.Value, m.Time); err != nil {
			log.Printf("skip message at offset %d: %v", m.Offset, err)
		}
	}
}
