package main

import (
	"os"
	"os/signal"
	"syscall"

	"worktime/internal/app"
	"worktime/internal/config"
	"worktime/internal/handler"
	"worktime/internal/logger"
	"worktime/pkg/telegram"
)

func main() {
	cfg := config.Get()
	log := logger.New(cfg.LogLevel)
	log.Info("Config initialized...")

	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is not set")
	}

	a, err := app.New(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize application")
	}

	client, err := telegram.NewClient(cfg.TelegramToken, cfg.TelegramDebug)
	if err != nil {
		a.Close()
		log.WithError(err).Fatal("Failed to create Telegram client")
	}

	log.Infof("Authorized on account %s", client.Bot.Self.UserName)

	botHandler := handler.NewHandler(client.Bot, a.Services, log)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		botHandler.HandleUpdates(client.Updates())
		close(done)
	}()

	log.Info("Bot started. Press Ctrl+C to stop.")
	<-stop

	client.Stop()
	<-done
	a.Close()

	log.Info("Bot stopped gracefully")
}
