// Package main is a minimal demo client: it connects to a running
// Zeevonk server and drives every fixture's Dimmer attribute through a
// slow sine sweep, exercising the processor cadence loop end to end.
package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/zeevonk-project/zeevonk-go/internal/attribute"
	"github.com/zeevonk-project/zeevonk-go/internal/client"
	"github.com/zeevonk-project/zeevonk-go/internal/config"
	"github.com/zeevonk-project/zeevonk-go/internal/logging"
	"github.com/zeevonk-project/zeevonk-go/internal/value"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("no .env file found, using environment variables")
	}

	cfg := config.Load()
	logging.Init(cfg.Env)

	c, err := client.Connect(cfg.Addr)
	if err != nil {
		logging.Errorf("failed to connect to %s: %v", cfg.Addr, err)
		os.Exit(1)
	}
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		logging.Infof("shutting down client...")
		cancel()
	}()

	dimmer := attribute.Attribute{Kind: attribute.KindDimmer}

	err = c.RunProcessor(ctx, func(cx *client.ProcessorContext) {
		paths := cx.Patch().FixturePaths()
		if len(paths) == 0 {
			return
		}

		phase := float64(cx.Frame()) * float64(client.ProcessorPeriod) / float64(2*time.Second) * 2 * math.Pi
		level := float32((math.Sin(phase) + 1) / 2)

		fc := client.NewFixtureCollection(paths...)
		cx.SetAttribute(fc, dimmer, value.New(level), false)
	})
	if err != nil {
		logging.Errorf("processor stopped: %v", err)
		os.Exit(1)
	}
}
