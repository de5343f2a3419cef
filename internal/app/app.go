package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/denmor86/lucky-triple/internal/cache"
	"github.com/denmor86/lucky-triple/internal/client"
	"github.com/denmor86/lucky-triple/internal/config"
	"github.com/denmor86/lucky-triple/internal/logger"
	"github.com/denmor86/lucky-triple/internal/network/router"
	"github.com/denmor86/lucky-triple/internal/services"
	"github.com/denmor86/lucky-triple/internal/storage"
	"github.com/denmor86/lucky-triple/internal/worker"
)

// NewCache - Redis, если задан адрес, иначе кэш в памяти процесса
func NewCache(ctx context.Context, cfg config.CacheConfig) (cache.Cache, error) {
	if cfg.RedisAddr == "" {
		logger.Info("Redis address is empty, using in-memory cache")
		return cache.NewMemoryCache(), nil
	}
	return cache.NewRedisCache(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
}

// NewSender - шлюз SMS, если задан адрес, иначе сообщения только пишутся в журнал
func NewSender(cfg config.SMSConfig) services.Sender {
	if cfg.GatewayAddr == "" {
		logger.Info("SMS gateway address is empty, messages will be logged only")
		return services.LogSender{}
	}
	return client.NewSMSGateway(cfg.GatewayAddr, cfg.APIKey, cfg.Sender, &http.Client{Timeout: 10 * time.Second})
}

func Run(config config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := storage.NewDatabase(config.Server.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("error create database: %w", err)
	}
	defer db.Close()
	if err := db.Initialize(ctx); err != nil {
		return err
	}
	store := storage.NewStorage(db)

	settingsCache, err := NewCache(ctx, config.Cache)
	if err != nil {
		return err
	}
	defer settingsCache.Close()

	router := router.NewRouter(config, store, settingsCache)

	server := &http.Server{
		Addr:              config.Server.ListenAddr,
		Handler:           router.HandleRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	// Создание и запуск воркера рассылок
	delivery := services.NewDelivery(store.SMS, NewSender(config.SMS), config.SMS.MaxAttempts)
	worker := worker.NewSMSWorker(delivery, config.SMS)
	worker.Start(ctx)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Infow("Starting server", "addr", config.Server.ListenAddr, "redis", config.Cache.RedisAddr != "", "sms_gateway", config.SMS.GatewayAddr != "")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("error listen server", err.Error())
			stop <- syscall.SIGTERM
		}
	}()

	<-stop
	logger.Info("Shutdown server")
	worker.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown server", err.Error())
	}
	logger.Info("Server stopped")
	return nil
}
