package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gornius/scheduler-bot/app"
	"github.com/gornius/scheduler-bot/config"
	"github.com/gornius/scheduler-bot/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := utils.NewLogger(os.Stderr, cfg.SlogLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bot, err := app.New(cfg, logger)
	if err != nil {
		panic(err)
	}

	err = bot.Start(ctx)
	if err != nil {
		panic(err)
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	s := <-sc
	logger.Info("shutting down", "signal", s.String())

	cancel()
	if err := bot.Close(); err != nil {
		logger.Error("failed to close discord session", "err", err)
	}
}
