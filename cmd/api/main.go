package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smart-scheduler/config"
	_ "smart-scheduler/docs" // Swagger docs
	"smart-scheduler/internal/httpserver"
	"smart-scheduler/internal/task/repository/sqlite"
	"smart-scheduler/pkg/gcalendar"
	"smart-scheduler/pkg/log"
	"smart-scheduler/pkg/telegram"
	"smart-scheduler/pkg/timetext"
)

// @title       Smart Scheduler API
// @description Natural language task scheduling with conflict detection, free-slot search, and calendar sync.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Scheduler...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Store
	repo, db, err := sqlite.Open(sqlite.Config{
		Path:        cfg.Database.Path,
		BusyTimeout: cfg.Database.BusyTimeout,
	}, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "SQLite store ready at %s", cfg.Database.Path)

	// 4. Temporal parser
	parser, err := timetext.NewParser(cfg.Scheduler.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Scheduler.Timezone, err)
		parser, _ = timetext.NewParser("UTC")
	}

	// 5. Telegram capture channel (optional)
	var telegramBot *telegram.Bot
	if cfg.Telegram.BotToken != "" {
		telegramBot = telegram.NewBot(cfg.Telegram.BotToken)

		if webhookURL := cfg.Telegram.WebhookURL; webhookURL != "" {
			if whErr := telegramBot.SetWebhook(webhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Info(ctx, "Telegram bot token missing, chat capture disabled")
	}

	// 6. Google Calendar provider (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Repo:            repo,
		Parser:          parser,
		HorizonDays:     cfg.Scheduler.HorizonDays,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		TelegramBot:     telegramBot,
		Calendar:        calendarClient,
		CalendarID:      cfg.GoogleCalendar.CalendarID,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
