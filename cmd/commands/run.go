package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"mappins"
	"mappins/config"
	"mappins/internal/application/usecase"
	"mappins/internal/domain/repository/blobstore"
	brokerRepository "mappins/internal/domain/repository/broker"
	"mappins/internal/infrastructure/broker"
	"mappins/internal/infrastructure/database"
	"mappins/internal/infrastructure/grpcserver"
	"mappins/internal/infrastructure/memory"
	"mappins/internal/infrastructure/minio"
	"mappins/internal/infrastructure/postgres"
	"mappins/internal/infrastructure/redis"
	"mappins/internal/presentation/handler"
	"mappins/internal/presentation/server"
	"mappins/pkg/logger"
	"mappins/web"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)
	defer logger.Sync()

	logger.Info("running mappins", "version", mappins.StringVersion(),
		"site", cfg.SiteID, "storage", cfg.Storage.Driver, "broker", cfg.BrokerConfig.Driver)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	namespace := blobstore.Namespace(cfg.Pins.StoreName, cfg.SiteID)

	store, closeStore, err := newStore(ctx, cfg, namespace)
	if err != nil {
		ExitOnError(err)
	}
	defer closeStore()

	publisher, closePublisher, err := newPublisher(cfg)
	if err != nil {
		ExitOnError(err)
	}
	defer closePublisher()

	lister := usecase.NewLister(store, cfg.Pins)
	adder := usecase.NewAdder(store, publisher, cfg.Pins)

	var webFS fs.FS
	if cfg.HTTP.ServeWeb {
		webFS = echo.MustSubFS(web.Static, "static")
	}

	e := server.New(cfg.HTTP, handler.NewPinsHandler(lister, adder), webFS)

	grpcServer := grpcserver.New(cfg.GRPCServer)
	if cfg.GRPCServer.Port != 0 {
		go func() {
			if err := grpcServer.Start(); err != nil {
				ExitOnError(fmt.Errorf("grpc health server: %w", err))
			}
		}()
	}

	go func() {
		if err := e.Start(cfg.HTTP.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	grpcServer.SetServing(true)

	<-ctx.Done()
	logger.Info("shutting down mappins")
	grpcServer.SetServing(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		ExitOnError(err)
	}

	grpcServer.Stop()
}

func newStore(ctx context.Context, cfg *config.Config, namespace string) (blobstore.Store, func(), error) {
	noop := func() {}

	switch cfg.Storage.Driver {
	case config.StorageMinIO:
		client, err := minio.New(cfg.MinIOClient)
		if err != nil {
			return nil, noop, err
		}

		store := minio.NewStore(client.MinioClient, namespace, cfg.MinIOStore)
		if err := store.EnsureBucket(ctx); err != nil {
			return nil, noop, err
		}

		return store, noop, nil

	case config.StorageMongo:
		db, err := database.Connect(cfg.DBConfig)
		if err != nil {
			return nil, noop, err
		}

		return database.NewStore(db, namespace), func() {
			if err := db.Stop(); err != nil {
				logger.Error("failed to disconnect mongo", "err", err)
			}
		}, nil

	case config.StoragePostgres:
		store, err := postgres.Connect(ctx, cfg.PostgresConfig, namespace)
		if err != nil {
			return nil, noop, err
		}

		return store, store.Close, nil

	case config.StorageRedis:
		store, err := redis.NewStore(cfg.RedisStore, namespace)
		if err != nil {
			return nil, noop, err
		}

		return store, func() {
			if err := store.Close(); err != nil {
				logger.Error("failed to close redis store", "err", err)
			}
		}, nil

	case config.StorageMemory:
		logger.Warn("using in-memory storage, pins are lost on restart")

		return memory.NewStore(namespace), noop, nil
	}

	return nil, noop, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

func newPublisher(cfg *config.Config) (brokerRepository.Publisher, func(), error) {
	noop := func() {}

	switch cfg.BrokerConfig.Driver {
	case broker.DriverRedis:
		client, err := broker.NewClient(cfg.BrokerConfig)
		if err != nil {
			return nil, noop, err
		}

		return broker.NewPublisher(client, cfg.PublisherConfig), func() {
			if err := client.Close(); err != nil {
				logger.Error("failed to close broker client", "err", err)
			}
		}, nil

	case broker.DriverKafka:
		publisher, err := broker.NewKafkaPublisher(cfg.BrokerConfig, cfg.PublisherConfig)
		if err != nil {
			return nil, noop, err
		}

		return publisher, func() {
			if err := publisher.Close(); err != nil {
				logger.Error("failed to close kafka writer", "err", err)
			}
		}, nil

	case broker.DriverNone:
		return nil, noop, nil
	}

	return nil, noop, fmt.Errorf("unknown broker driver %q", cfg.BrokerConfig.Driver)
}
