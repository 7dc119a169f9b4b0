package main

import (
	"context"
	"os/signal"
	"syscall"
	"worker-availability/internal/cache"
	"worker-availability/internal/config"
	"worker-availability/internal/handler"
	"worker-availability/internal/repository"
	"worker-availability/internal/service"
	"worker-availability/pkg/telegram"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetConfig()
	logrus.SetLevel(cfg.LogLevel)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Info("Config initialized...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Инициализируем SQLite базу данных
	db, err := repository.OpenSQLite(cfg.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to get database instance")
	}

	workerRepo, err := repository.NewGormWorkerRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create worker repository")
	}

	serviceRepo, err := repository.NewGormServiceRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create service repository")
	}

	workingHoursRepo, err := repository.NewGormWorkingHoursRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create working hours repository")
	}

	exceptionRepo, err := repository.NewGormWorkerExceptionRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create worker exception repository")
	}

	// Кэш расписаний: Redis, если задан адрес, иначе в памяти процесса
	var store cache.Store = cache.NewMemoryStore()
	if cfg.UseRedis() {
		redisClient, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logrus.WithError(err).Fatal("Failed to connect to redis")
		}
		defer redisClient.Close()

		store = cache.NewRedisStore(redisClient, cfg.CachePrefix)
		logrus.WithField("addr", cfg.RedisAddr).Info("Using redis schedule cache")
	} else {
		logrus.Info("Using in-memory schedule cache")
	}

	resolver := service.NewScheduleResolver(workingHoursRepo, store)
	envelopes := service.NewEnvelopeCache(store, resolver)

	availabilityService := service.NewAvailabilityService(
		workerRepo,
		serviceRepo,
		exceptionRepo,
		resolver,
		envelopes,
		service.AvailabilityConfig{
			DefaultCapacity: cfg.DefaultCapacity,
			Location:        cfg.Location,
		},
	)

	workingHoursService := service.NewWorkingHoursService(workingHoursRepo, availabilityService)
	exceptionService := service.NewExceptionService(exceptionRepo, cfg.Location)
	staffService := service.NewStaffService(workerRepo, serviceRepo)

	// Загружаем производственный календарь
	if cfg.HolidaysFile != "" {
		count, err := exceptionService.LoadFromJSON(ctx, cfg.HolidaysFile, cfg.HolidaysLocation)
		if err != nil {
			logrus.WithError(err).Warn("Failed to load holiday calendar")
		} else {
			logrus.Infof("Loaded %d holidays from %s", count, cfg.HolidaysFile)
		}
	}

	// Создаем клиент Telegram
	client, err := telegram.NewClient(cfg.TelegramToken, cfg.BotDebug)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create Telegram client")
	}

	logrus.Infof("Authorized on account %s", client.Bot.Self.UserName)

	botHandler := handler.NewHandler(
		client,
		availabilityService,
		workingHoursService,
		exceptionService,
		staffService,
		cfg,
	)

	updates := client.Bot.GetUpdatesChan(client.UpdateConfig)

	done := make(chan struct{})
	go func() {
		defer close(done)
		botHandler.HandleUpdates(ctx, updates)
	}()

	logrus.Info("Bot started. Press Ctrl+C to stop.")
	<-ctx.Done()

	client.Bot.StopReceivingUpdates()
	<-done

	// Закрываем соединение с БД
	if err := sqlDB.Close(); err != nil {
		logrus.Infof("Error closing database: %v", err)
	}

	logrus.Info("Bot stopped gracefully")
}
