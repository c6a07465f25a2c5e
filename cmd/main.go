package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"bookshelf_tgbot/config"
	"bookshelf_tgbot/data/cache"
	"bookshelf_tgbot/data/db/postgres"
	redisClient "bookshelf_tgbot/data/redis"
	"bookshelf_tgbot/data/session"
	"bookshelf_tgbot/internal/downloader"
	"bookshelf_tgbot/internal/mailer"
	"bookshelf_tgbot/internal/platform"
	"bookshelf_tgbot/internal/repository"
	"bookshelf_tgbot/internal/scheduler"
	"bookshelf_tgbot/internal/service/bookService"
	"bookshelf_tgbot/internal/service/userService"
	"bookshelf_tgbot/internal/tgbot"
	"bookshelf_tgbot/internal/transport/telegram"
)

func main() {
	cfg := config.MustLoad()

	setupLogger(cfg)

	slog.Debug("config", slog.Any("cfg", cfg))

	postgresDb := postgres.NewPostgresClient(cfg)
	defer postgresDb.Close()

	postgresRepo := repository.NewPostgresRepo(postgresDb)

	rdb := redisClient.MustInitRedis(cfg)
	defer rdb.Close()

	redisSession := session.NewRedisSession(cfg, rdb)

	redisCache := cache.NewRedisCache(cfg, rdb)

	platformClient := platform.New(cfg)

	fileDownloader := downloader.NewFileDownloader()

	smtpMailer := mailer.NewMailer(cfg)

	books := bookService.New(
		cfg,
		platformClient,
		redisCache,
		postgresRepo,
		fileDownloader,
		smtpMailer,
	)

	users := userService.New(cfg, platformClient, redisSession, redisCache, postgresRepo)

	sched := scheduler.New()
	sched.NewIntervalJob("delete expired book files from disk", books.CleanupBlobs, cfg.Jobs.BlobCleanupInterval, true)
	sched.Start()
	defer sched.Stop()

	tgController := telegram.NewController(cfg, users, books, redisSession)

	tgBot := tgbot.New(cfg, tgController, redisSession)

	tgBot.Start()
	defer tgBot.Stop()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	<-interrupt
}

func setupLogger(cfg *config.Config) {
	var logLevel slog.Level

	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)
}
