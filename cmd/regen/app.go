package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/KirkDiggler/regen-engine/internal/catalog"
	"github.com/KirkDiggler/regen-engine/internal/config"
	"github.com/KirkDiggler/regen-engine/internal/dice"
	"github.com/KirkDiggler/regen-engine/internal/events"
	"github.com/KirkDiggler/regen-engine/internal/notify"
	"github.com/KirkDiggler/regen-engine/internal/regen"
	"github.com/KirkDiggler/regen-engine/internal/repositories/characters"
	"github.com/KirkDiggler/regen-engine/internal/sim"
	"github.com/KirkDiggler/regen-engine/internal/uuid"
)

// options are the persistent flags plus dependencies tests can inject
type options struct {
	catalogPath string
	seed        int64
	logLevel    string

	repo   characters.Repository
	ids    uuid.Generator
	logger *zap.Logger
}

// app is everything a command needs, built once per invocation
type app struct {
	opts *options
	out  io.Writer

	logger  *zap.Logger
	catalog *catalog.Catalog
	repo    characters.Repository
	ids     uuid.Generator
	service *regen.Service
	ticker  *sim.Ticker

	closers []func() error
}

func (a *app) init(cmd *cobra.Command) error {
	a.out = cmd.OutOrStdout()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := a.initLogger(cmd, cfg); err != nil {
		return err
	}

	path := cfg.Catalog.Path
	if cmd.Flags().Changed("catalog") {
		path = a.opts.catalogPath
	}
	a.catalog, err = catalog.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	a.ids = a.opts.ids
	if a.ids == nil {
		a.ids = uuid.NewGoogleUUIDGenerator()
	}

	a.repo = a.opts.repo
	if a.repo == nil {
		a.repo = a.openRepository(cfg)
	}

	roller, err := a.newRoller(cmd, cfg)
	if err != nil {
		return err
	}

	notifier, err := a.newNotifier(cfg)
	if err != nil {
		return err
	}

	bus := events.NewBus(a.logger)
	a.service, err = regen.NewService(&regen.ServiceConfig{
		Roller:   roller,
		Notifier: notifier,
		Bus:      bus,
		Logger:   a.logger,
	})
	if err != nil {
		return err
	}
	bus.Subscribe(events.OnConditionEffect, regen.NewTrigger(a.service, a.catalog))

	a.ticker, err = sim.NewTicker(&sim.Config{
		Bus:      bus,
		Interval: cfg.Sim.TickInterval,
		Workers:  cfg.Sim.Workers,
		Logger:   a.logger,
	})
	return err
}

func (a *app) initLogger(cmd *cobra.Command, cfg *config.Config) error {
	if a.opts.logger != nil {
		a.logger = a.opts.logger
		return nil
	}

	level := cfg.Log.Level
	if cmd.Flags().Changed("log-level") {
		level = a.opts.logLevel
	}
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zapConfig := zap.NewProductionConfig()
	if parsed == zapcore.DebugLevel {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.Level = zap.NewAtomicLevelAt(parsed)

	a.logger, err = zapConfig.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.closers = append(a.closers, func() error {
		_ = a.logger.Sync()
		return nil
	})
	return nil
}

// openRepository uses Redis when REDIS_URL works and memory otherwise
func (a *app) openRepository(cfg *config.Config) characters.Repository {
	if cfg.Redis.URL == "" {
		a.logger.Info("no REDIS_URL found, characters live only for this command")
		return characters.NewInMemoryRepository()
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		a.logger.Warn("failed to parse Redis URL, falling back to memory", zap.Error(err))
		return characters.NewInMemoryRepository()
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		a.logger.Warn("failed to connect to Redis, falling back to memory", zap.Error(err))
		return characters.NewInMemoryRepository()
	}

	a.closers = append(a.closers, client.Close)
	a.logger.Debug("using Redis for persistence", zap.String("addr", opts.Addr))
	return characters.NewRedisRepository(&characters.RedisRepoConfig{
		Client:        client,
		Definitions:   a.catalog,
		UUIDGenerator: a.ids,
		Logger:        a.logger,
	})
}

func (a *app) newRoller(cmd *cobra.Command, cfg *config.Config) (dice.Roller, error) {
	switch {
	case cmd.Flags().Changed("seed"):
		return dice.NewSeededRoller(a.opts.seed), nil
	case cfg.Sim.Seed != nil:
		return dice.NewSeededRoller(*cfg.Sim.Seed), nil
	}
	return dice.NewRandomRoller()
}

func (a *app) newNotifier(cfg *config.Config) (*notify.Dispatcher, error) {
	sinks := []notify.Sink{notify.NewLogSink(a.logger)}

	if cfg.Discord.Enabled() {
		session, err := discordgo.New("Bot " + cfg.Discord.Token)
		if err != nil {
			return nil, fmt.Errorf("failed to create Discord session: %w", err)
		}
		discord, err := notify.NewDiscordSink(session, cfg.Discord.ChannelID)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, discord)
	}

	return notify.NewDispatcher(&notify.Config{
		Locale:         cfg.Notify.Locale,
		NotifyEveryone: cfg.Notify.Everyone,
		Sinks:          sinks,
		Logger:         a.logger,
	}), nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i]()
	}
	a.closers = nil
}
