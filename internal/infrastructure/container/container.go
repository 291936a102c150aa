// Package container provides dependency injection using Uber FX
// This implements the Dependency Inversion Principle from SOLID
package container

import (
	"context"
	"time"

	"github.com/wellplate/v1/internal/application/plan"
	"github.com/wellplate/v1/internal/infrastructure/ai/openai"
	"github.com/wellplate/v1/internal/infrastructure/config"
	"github.com/wellplate/v1/internal/infrastructure/http/server"
	"github.com/wellplate/v1/internal/infrastructure/persistence/memory"
	redisRepo "github.com/wellplate/v1/internal/infrastructure/persistence/redis"
	"github.com/wellplate/v1/internal/ports/inbound"
	"github.com/wellplate/v1/internal/ports/outbound"
	"github.com/wellplate/v1/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	RepositoryModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// RepositoryModule provides the profile store. Redis is the default;
// the memory store is opted into via features.use_memory_store for
// local development and tests.
var RepositoryModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.ProfileRepository, error) {
		if cfg.Features.UseMemoryStore {
			log.Info("Using in-memory profile store")
			return memory.NewProfileRepository(), nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		client, err := redisRepo.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		log.Info("Connected to Redis",
			zap.String("host", cfg.Redis.Host),
			zap.Int("port", cfg.Redis.Port),
		)
		return redisRepo.NewProfileRepository(client, log), nil
	},
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	fx.Annotate(
		openai.NewClient,
		fx.As(new(outbound.AIService)),
	),

	func(
		profiles outbound.ProfileRepository,
		ai outbound.AIService,
		cfg *config.Config,
		log *zap.Logger,
	) inbound.PlanService {
		return plan.NewService(profiles, ai, plan.Options{
			LiveGeneration: cfg.Features.LiveGeneration,
			AllergenFilter: cfg.Features.AllergenFilter,
		}, log)
	},
)

// HTTPModule provides the HTTP server
var HTTPModule = fx.Provide(
	server.NewServer,
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	srv *server.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting WellPlate application",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := srv.Start(); err != nil {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down WellPlate application")

			if err := srv.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			_ = log.Sync()

			return nil
		},
	})
}
