package routes

import (
	"context"
	"errors"
	"time"

	"onboarding-backend/internal/api/handlers"
	"onboarding-backend/internal/cache"
	"onboarding-backend/internal/config"
	"onboarding-backend/internal/events"
	"onboarding-backend/internal/logger"
	"onboarding-backend/internal/onboarding"
	"onboarding-backend/internal/service"
	"onboarding-backend/internal/storage"
)

// Infrastructure holds the optional backends selected from configuration.
// Every backend has a local stand-in, so a bare config still serves the API.
type Infrastructure struct {
	Cache     cache.Store
	Store     storage.ObjectStore
	Publisher events.Publisher
	Mailer    service.Mailer
	Catalog   *onboarding.Catalog
	Clock     onboarding.Clock

	HealthChecks []handlers.HealthCheck

	closers []func() error
}

// NewInfrastructure connects the configured backends. Unreachable Redis,
// RabbitMQ or S3 are logged and replaced by their stand-ins; a broken role
// template file is an error.
func NewInfrastructure(ctx context.Context, cfg *config.Config) (*Infrastructure, error) {
	log := logger.New().Component("infrastructure")

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	infra := &Infrastructure{
		Cache:     cache.NewMemoryCache(),
		Store:     storage.DisabledStore{},
		Publisher: events.NoopPublisher{},
		Mailer:    service.NoopMailer{},
		Catalog:   catalog,
		Clock:     onboarding.NewSystemClock(cfg.Timezone),
	}

	redisUp := false
	if cfg.RedisEnabled() {
		rdb := cache.NewRedisClient(cache.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		redisCache, err := cache.NewRedisCache(pingCtx, rdb)
		cancel()
		if err != nil {
			log.WithError(err).Warn("Redis unavailable, using in-memory cache and sessions")
			_ = rdb.Close()
		} else {
			redisUp = true
			infra.Cache = redisCache
			infra.closers = append(infra.closers, redisCache.Close)
			infra.HealthChecks = append(infra.HealthChecks, handlers.HealthCheck{
				Name:  "redis",
				Check: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
			})
		}
	}

	if cfg.ObjectStorageEnabled() {
		store, err := storage.NewMinioStore(storage.Options{
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Bucket:          cfg.S3Bucket,
			UseSSL:          cfg.S3UseSSL,
			Region:          cfg.S3Region,
		})
		if err != nil {
			log.WithError(err).Warn("S3 client could not be created, documents are disabled")
		} else {
			infra.Store = store
		}
	}

	if cfg.EventsEnabled() {
		publisher, err := events.NewAMQPPublisher(cfg.RabbitMQURL)
		if err != nil {
			log.WithError(err).Warn("RabbitMQ unavailable, events are dropped")
		} else {
			infra.Publisher = publisher
			infra.closers = append(infra.closers, func() error {
				publisher.Close()
				return nil
			})
			infra.HealthChecks = append(infra.HealthChecks, handlers.HealthCheck{
				Name: "rabbitmq",
				Check: func(context.Context) error {
					if !publisher.IsConnected() {
						return errors.New("connection closed")
					}
					return nil
				},
			})
		}
	}

	if cfg.MailEnabled() {
		infra.Mailer = service.NewGomailMailer(service.SMTPOptions{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		})
	}

	log.WithFields(map[string]interface{}{
		"redis":     redisUp,
		"documents": cfg.ObjectStorageEnabled(),
		"events":    cfg.EventsEnabled(),
		"mail":      cfg.MailEnabled(),
		"directory": cfg.DirectoryEnabled(),
		"source":    cfg.PlanSource,
	}).Info("infrastructure ready")

	return infra, nil
}

func loadCatalog(cfg *config.Config) (*onboarding.Catalog, error) {
	if cfg.RoleTemplatesPath == "" {
		return onboarding.DefaultCatalog()
	}
	return onboarding.LoadCatalogFile(cfg.RoleTemplatesPath)
}

// Close releases connections in reverse order of creation
func (i *Infrastructure) Close() error {
	var errs []error
	for k := len(i.closers) - 1; k >= 0; k-- {
		if err := i.closers[k](); err != nil {
			errs = append(errs, err)
		}
	}
	i.closers = nil
	return errors.Join(errs...)
}
