package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/StepanK17/novagen-service/internal/config"
	"github.com/StepanK17/novagen-service/internal/i18n"
	"github.com/StepanK17/novagen-service/internal/identity"
	"github.com/StepanK17/novagen-service/internal/logger"
	"github.com/StepanK17/novagen-service/internal/repository/memory"
	httpTransport "github.com/StepanK17/novagen-service/internal/transport/http"
	"github.com/StepanK17/novagen-service/internal/transport/http/handler"
	"github.com/StepanK17/novagen-service/internal/usecase"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	defaultLang, ok := i18n.Parse(cfg.DefaultLanguage)
	if !ok {
		logg.Fatalw("invalid default language", "value", cfg.DefaultLanguage)
	}

	// Инициализируем хранилище и репозитории
	storage := memory.NewStorage()
	sessionRepo := memory.NewSessionRepository(storage)
	taskRepo := memory.NewTaskRepository(storage)
	messageRepo := memory.NewMessageRepository(storage)
	fileRepo := memory.NewFileRepository(storage)
	notificationRepo := memory.NewNotificationRepository(storage)
	statsRepo := memory.NewStatisticsRepository(storage)
	txManager := memory.NewTransactionManager(storage)

	ids := identity.NewUUIDGenerator()

	// Инициализируем use cases
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, cfg.NotificationTTL, time.Now)
	sessionUseCase := usecase.NewSessionUseCase(
		sessionRepo, fileRepo, txManager, notificationUseCase,
		ids, usecase.GlobalRandom{}, time.Now, logg,
	)
	taskUseCase := usecase.NewTaskUseCase(taskRepo, sessionRepo, txManager, notificationUseCase, ids, time.Now)
	chatUseCase := usecase.NewChatUseCase(messageRepo, sessionRepo, txManager, notificationUseCase, ids, time.Now)
	fileUseCase := usecase.NewFileUseCase(fileRepo, sessionRepo, txManager, notificationUseCase, time.Now)
	catalogUseCase := usecase.NewCatalogUseCase()
	statsUseCase := usecase.NewStatisticsUseCase(statsRepo)

	// Создаем роутер
	router := httpTransport.NewRouter(httpTransport.RouterConfig{
		SessionHandler:      handler.NewSessionHandler(sessionUseCase, logg),
		TaskHandler:         handler.NewTaskHandler(taskUseCase, logg),
		ChatHandler:         handler.NewChatHandler(chatUseCase, logg),
		FileHandler:         handler.NewFileHandler(fileUseCase, logg),
		NotificationHandler: handler.NewNotificationHandler(notificationUseCase, logg),
		CatalogHandler:      handler.NewCatalogHandler(catalogUseCase),
		HealthHandler:       handler.NewHealthHandler(),
		StatisticsHandler:   handler.NewStatisticsHandler(statsUseCase, logg),
		AllowedOrigins:      cfg.AllowedOrigins,
		DefaultLanguage:     defaultLang,
		Logger:              logg,
	})

	// Создаем HTTP сервер
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Запускаем сервер в отдельной горутине
	go func() {
		logg.Infow("starting HTTP server", "addr", srv.Addr, "default_language", defaultLang.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatalw("failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logg.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logg.Errorw("server forced to shutdown", "error", err)
		return
	}

	logg.Info("server exited")
}
