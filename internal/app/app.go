package app

import (
	"context"
	"fmt"

	"go-hrm/internal/config"
	"go-hrm/internal/persistence"
	"go-hrm/internal/shared/connection"
	"go-hrm/internal/store"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type App struct {
	Store    *store.Store
	Registry *Registry

	kafkaWriter *kafkago.Writer
}

// BuildApp wires the configured sink, opens the store over the last saved
// snapshot and registers every service against it.
func BuildApp(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	sink, err := buildSink(ctx, cfg)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(ctx, sink, logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	logger.Info("store opened",
		zap.String("backend", cfg.SnapshotBackend),
		zap.Int("employees", len(st.State().Employees)),
	)

	app := &App{Store: st}
	if cfg.KafkaEnabled {
		app.kafkaWriter = &kafkago.Writer{
			Addr:     kafkago.TCP(cfg.KafkaBrokers...),
			Balancer: &kafkago.LeastBytes{},
		}
		logger.Info("kafka publishing enabled", zap.Strings("brokers", cfg.KafkaBrokers))
	}

	app.Registry = registerModules(st, app.kafkaWriter, logger)
	return app, nil
}

func buildSink(ctx context.Context, cfg config.Config) (store.Sink, error) {
	switch cfg.SnapshotBackend {
	case config.BackendRedis:
		rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
		if err != nil {
			return nil, err
		}
		return persistence.NewRedisSink(rdb, cfg.RedisKey), nil

	case config.BackendPostgres:
		db, err := connection.ConnectGORMWithRetry(
			cfg.DBHost,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBName,
			cfg.DBPort,
			cfg.DBSSLMode,
			5,
		)
		if err != nil {
			return nil, err
		}
		sink := persistence.NewPostgresSink(db, cfg.SnapshotSlot)
		if err := sink.Migrate(ctx); err != nil {
			return nil, err
		}
		return sink, nil

	case config.BackendFile:
		return persistence.NewFileSink(cfg.SnapshotFile), nil

	default:
		return nil, fmt.Errorf("unknown snapshot backend %q", cfg.SnapshotBackend)
	}
}

// Close flushes the kafka writer, if one was configured.
func (a *App) Close() error {
	if a.kafkaWriter != nil {
		return a.kafkaWriter.Close()
	}
	return nil
}
