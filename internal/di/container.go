package di

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/redis/go-redis/v9"
	adminRepo "github.com/reshetovitsme/chat-moderator/internal/modules/admincache/repository"
	adminService "github.com/reshetovitsme/chat-moderator/internal/modules/admincache/service"
	auditService "github.com/reshetovitsme/chat-moderator/internal/modules/auditlog/service"
	blocklistDomain "github.com/reshetovitsme/chat-moderator/internal/modules/blocklist/domain"
	blocklistRepo "github.com/reshetovitsme/chat-moderator/internal/modules/blocklist/repository"
	blocklistService "github.com/reshetovitsme/chat-moderator/internal/modules/blocklist/service"
	chatconfigDomain "github.com/reshetovitsme/chat-moderator/internal/modules/chatconfig/domain"
	chatconfigRepo "github.com/reshetovitsme/chat-moderator/internal/modules/chatconfig/repository"
	chatconfigService "github.com/reshetovitsme/chat-moderator/internal/modules/chatconfig/service"
	exemptionDomain "github.com/reshetovitsme/chat-moderator/internal/modules/exemption/domain"
	exemptionRepo "github.com/reshetovitsme/chat-moderator/internal/modules/exemption/repository"
	exemptionService "github.com/reshetovitsme/chat-moderator/internal/modules/exemption/service"
	feedService "github.com/reshetovitsme/chat-moderator/internal/modules/feed/service"
	"github.com/reshetovitsme/chat-moderator/internal/modules/lock/detector"
	lockDomain "github.com/reshetovitsme/chat-moderator/internal/modules/lock/domain"
	lockRepo "github.com/reshetovitsme/chat-moderator/internal/modules/lock/repository"
	lockService "github.com/reshetovitsme/chat-moderator/internal/modules/lock/service"
	moderationService "github.com/reshetovitsme/chat-moderator/internal/modules/moderation/service"
	punishmentDomain "github.com/reshetovitsme/chat-moderator/internal/modules/punishment/domain"
	punishmentRepo "github.com/reshetovitsme/chat-moderator/internal/modules/punishment/repository"
	punishmentService "github.com/reshetovitsme/chat-moderator/internal/modules/punishment/service"
	warningDomain "github.com/reshetovitsme/chat-moderator/internal/modules/warning/domain"
	warningRepo "github.com/reshetovitsme/chat-moderator/internal/modules/warning/repository"
	warningService "github.com/reshetovitsme/chat-moderator/internal/modules/warning/service"
	"github.com/reshetovitsme/chat-moderator/internal/shared/config"
	"github.com/reshetovitsme/chat-moderator/internal/shared/database"
	httpServer "github.com/reshetovitsme/chat-moderator/internal/transport/http"
	natsTransport "github.com/reshetovitsme/chat-moderator/internal/transport/nats"
	telegramTransport "github.com/reshetovitsme/chat-moderator/internal/transport/telegram"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
	"gorm.io/gorm"
)

// Models lists every persisted model, migrated at startup
func Models() []any {
	return []any{
		&chatconfigDomain.ModerationConfig{},
		&lockDomain.ChatLocks{},
		&lockDomain.AllowlistEntry{},
		&exemptionDomain.Exemption{},
		&blocklistDomain.Pattern{},
		&warningDomain.Warning{},
		&punishmentDomain.Record{},
	}
}

// Setup initializes the dependency injection container
func Setup() (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register Database
	do.Provide(injector, func(i do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		db, err := database.Open(cfg, Models()...)
		if err != nil {
			return nil, oops.With("driver", cfg.DatabaseDriver, "context", "failed to initialize database").Wrap(err)
		}
		return db, nil
	})

	// Register Redis client (admin cache backend)
	do.Provide(injector, func(i do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			_ = rdb.Close()
			return nil, oops.With("redis_addr", cfg.RedisAddr, "context", "failed to connect to redis").Wrap(err)
		}
		return rdb, nil
	})

	// Register Bot. Updates are routed to the handler lazily since the
	// handler itself depends on the bot through the platform client.
	do.Provide(injector, func(i do.Injector) (*bot.Bot, error) {
		cfg := do.MustInvoke[*config.Config](i)

		opts := []bot.Option{
			bot.WithServerURL(cfg.TelegramAPIURL),
			bot.WithAllowedUpdates(bot.AllowedUpdates{"message", "edited_message", "callback_query", "chat_member"}),
			bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
				do.MustInvoke[*telegramTransport.Handler](i).HandleUpdate(ctx, b, update)
			}),
		}

		b, err := bot.New(cfg.TelegramBotToken, opts...)
		if err != nil {
			return nil, oops.With("context", "failed to create telegram bot").Wrap(err)
		}
		return b, nil
	})

	// Register Telegram platform client and log sink
	do.Provide(injector, func(i do.Injector) (*telegramTransport.Platform, error) {
		return telegramTransport.NewPlatform(do.MustInvoke[*bot.Bot](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*telegramTransport.LogSink, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return telegramTransport.NewLogSink(do.MustInvoke[*bot.Bot](i), cfg.LogSinkRatePerSecond, cfg.LogSinkBurst), nil
	})

	// Register NATS sink (only invoked when nats_url is set)
	do.Provide(injector, func(i do.Injector) (*natsTransport.Sink, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return natsTransport.Connect(cfg.NATSURL, cfg.NATSSubjectPrefix)
	})

	// Register Chat Config Repository
	do.Provide(injector, func(i do.Injector) (chatconfigRepo.Repository, error) {
		return chatconfigRepo.NewGormStorage(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Register Audit Log Sinks. Delivery and log channel validation share the
	// same fanout, so a channel is only accepted when every sink accepts it.
	do.Provide(injector, func(i do.Injector) (*auditService.FanoutSink, error) {
		cfg := do.MustInvoke[*config.Config](i)

		sinks := []auditService.Sink{do.MustInvoke[*telegramTransport.LogSink](i)}
		if cfg.NATSURL != "" {
			sink, err := do.Invoke[*natsTransport.Sink](i)
			if err != nil {
				slog.Warn("NATS log sink disabled", "error", err)
			} else {
				sinks = append(sinks, sink)
			}
		}
		return auditService.NewFanoutSink(sinks...), nil
	})

	// Register Audit Log Dispatcher
	do.Provide(injector, func(i do.Injector) (*auditService.Dispatcher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		sink := do.MustInvoke[*auditService.FanoutSink](i)
		resolver := chatconfigService.NewChannelResolver(do.MustInvoke[chatconfigRepo.Repository](i))
		return auditService.New(sink, resolver, cfg.LogDebounce()), nil
	})

	// Register Chat Config Service
	do.Provide(injector, func(i do.Injector) (*chatconfigService.Service, error) {
		repo := do.MustInvoke[chatconfigRepo.Repository](i)
		audit := do.MustInvoke[*auditService.Dispatcher](i)
		validator := do.MustInvoke[*auditService.FanoutSink](i)
		return chatconfigService.New(repo, audit, validator), nil
	})

	// Register Admin Cache
	do.Provide(injector, func(i do.Injector) (adminRepo.Store, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.AdminCacheBackend == config.CacheBackendRedis {
			rdb, err := do.Invoke[*redis.Client](i)
			if err != nil {
				return nil, err
			}
			return adminRepo.NewRedisStore(rdb), nil
		}
		return adminRepo.NewMemoryStore(), nil
	})

	do.Provide(injector, func(i do.Injector) (*adminService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		platform := do.MustInvoke[*telegramTransport.Platform](i)
		store := do.MustInvoke[adminRepo.Store](i)
		return adminService.New(platform, store, cfg.AdminCacheTTL()), nil
	})

	// Register Lock Service
	do.Provide(injector, func(i do.Injector) (*lockService.Service, error) {
		repo := lockRepo.NewGormStorage(do.MustInvoke[*gorm.DB](i))
		settings := do.MustInvoke[*chatconfigService.Service](i)
		audit := do.MustInvoke[*auditService.Dispatcher](i)
		return lockService.New(repo, detector.DefaultRegistry(), settings, audit), nil
	})

	// Register Exemption Service
	do.Provide(injector, func(i do.Injector) (*exemptionService.Service, error) {
		repo := exemptionRepo.NewGormStorage(do.MustInvoke[*gorm.DB](i))
		admins := do.MustInvoke[*adminService.Service](i)
		locks := do.MustInvoke[*lockService.Service](i)
		audit := do.MustInvoke[*auditService.Dispatcher](i)
		return exemptionService.New(repo, admins, locks, audit), nil
	})

	// Register Blocklist Service
	do.Provide(injector, func(i do.Injector) (*blocklistService.Service, error) {
		repo := blocklistRepo.NewGormStorage(do.MustInvoke[*gorm.DB](i))
		return blocklistService.New(repo, do.MustInvoke[*auditService.Dispatcher](i)), nil
	})

	// Register Punishment Executor
	do.Provide(injector, func(i do.Injector) (*punishmentService.Executor, error) {
		platform := do.MustInvoke[*telegramTransport.Platform](i)
		repo := punishmentRepo.NewGormStorage(do.MustInvoke[*gorm.DB](i))
		return punishmentService.New(platform, repo, do.MustInvoke[*auditService.Dispatcher](i)), nil
	})

	// Register Warning Service
	do.Provide(injector, func(i do.Injector) (*warningService.Service, error) {
		repo := warningRepo.NewGormStorage(do.MustInvoke[*gorm.DB](i))
		configs := do.MustInvoke[*chatconfigService.Service](i)
		executor := do.MustInvoke[*punishmentService.Executor](i)
		return warningService.New(repo, configs, executor, do.MustInvoke[*auditService.Dispatcher](i)), nil
	})

	// Register Moderation Pipeline
	do.Provide(injector, func(i do.Injector) (*moderationService.Service, error) {
		return moderationService.New(moderationService.Deps{
			Exemptions: do.MustInvoke[*exemptionService.Service](i),
			Locks:      do.MustInvoke[*lockService.Service](i),
			Blocklist:  do.MustInvoke[*blocklistService.Service](i),
			Configs:    do.MustInvoke[*chatconfigService.Service](i),
			Warnings:   do.MustInvoke[*warningService.Service](i),
			Executor:   do.MustInvoke[*punishmentService.Executor](i),
			Deleter:    do.MustInvoke[*telegramTransport.Platform](i),
			Audit:      do.MustInvoke[*auditService.Dispatcher](i),
		}), nil
	})

	// Register Feed Service
	do.Provide(injector, func(i do.Injector) (*feedService.Service, error) {
		return feedService.New(do.MustInvoke[*punishmentService.Executor](i)), nil
	})

	// Register Telegram Handler
	do.Provide(injector, func(i do.Injector) (*telegramTransport.Handler, error) {
		return telegramTransport.New(
			do.MustInvoke[*moderationService.Service](i),
			do.MustInvoke[*adminService.Service](i),
			do.MustInvoke[*punishmentService.Executor](i),
			do.MustInvoke[*warningService.Service](i),
		), nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		server := httpServer.New(cfg, do.MustInvoke[*feedService.Service](i))
		server.SetLogger(slog.Default())
		return server, nil
	})

	return injector, nil
}

// Shutdown flushes pending audit entries and releases external connections.
// Only services that were actually created are touched.
func Shutdown(ctx context.Context, injector do.Injector) error {
	if server, ok := invokeIfCreated[*httpServer.Server](injector); ok {
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Failed to stop HTTP server", "error", err)
		}
	}

	// Flush before the nats connection is drained
	if dispatcher, ok := invokeIfCreated[*auditService.Dispatcher](injector); ok {
		dispatcher.Close()
	}

	if sink, ok := invokeIfCreated[*natsTransport.Sink](injector); ok {
		if err := sink.Close(); err != nil {
			slog.Warn("Failed to drain nats connection", "error", err)
		}
	}

	if rdb, ok := invokeIfCreated[*redis.Client](injector); ok {
		if err := rdb.Close(); err != nil {
			slog.Warn("Failed to close redis client", "error", err)
		}
	}

	if db, ok := invokeIfCreated[*gorm.DB](injector); ok {
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				return oops.With("context", "failed to close database").Wrap(err)
			}
		}
	}

	return nil
}

// invokeIfCreated returns the service only when something already built it,
// so shutdown never dials a connection that was never used
func invokeIfCreated[T any](injector do.Injector) (T, bool) {
	name := do.NameOf[T]()
	for _, svc := range injector.ListInvokedServices() {
		if svc.Service == name {
			v, err := do.InvokeNamed[T](injector, name)
			return v, err == nil
		}
	}
	var zero T
	return zero, false
}
