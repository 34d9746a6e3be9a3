package di

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"crm-services/cmd/api/infrastructure"
	"crm-services/internal/adapter/cache"
	"crm-services/internal/adapter/db/postgres"
	ginhandler "crm-services/internal/adapter/gin/handler"
	"crm-services/internal/adapter/grpc/middleware"
	"crm-services/internal/adapter/queue"
	"crm-services/internal/adapter/repository/cached"
	"crm-services/internal/adapter/storage"
	"crm-services/internal/config"
	filedomain "crm-services/internal/domain/file"
	paymentdomain "crm-services/internal/domain/payment"
	userdomain "crm-services/internal/domain/user"
	fileuc "crm-services/internal/usecase/file"
	paymentuc "crm-services/internal/usecase/payment"
	useruc "crm-services/internal/usecase/user"
	redisclient "crm-services/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	RedisClient *redisclient.Client
	BlobStore   *storage.DiskStore

	UserUC    useruc.Usecase
	PaymentUC paymentuc.Usecase
	FileUC    fileuc.Usecase

	RateLimiter    *middleware.RateLimiter
	UserHandler    *ginhandler.UserHandler
	PaymentHandler *ginhandler.PaymentHandler
	FileHandler    *ginhandler.FileHandler
}

// NewContainer creates and initializes all application dependencies.
// When Redis is disabled the cache, queue, and rate limiter degrade to
// noop implementations; the services stay fully functional.
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	var (
		rdb       *redisclient.Client
		rawClient *redis.Client
	)
	if cfg.Redis.Enabled {
		rdb, err = infrastructure.NewRedisClient(cfg, l)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis: %w", err)
		}
		rawClient = rdb.Client
	}

	ttl := time.Duration(cfg.Redis.CacheTTL) * time.Second

	var (
		userCache    cache.Cache[userdomain.User]
		paymentCache cache.Cache[paymentdomain.Payment]
		fileCache    cache.Cache[filedomain.File]
		producer     queue.Producer
	)
	if rawClient != nil {
		userCache = cache.NewRedisCache[userdomain.User](rawClient, "user", ttl, l)
		paymentCache = cache.NewRedisCache[paymentdomain.Payment](rawClient, "payment", ttl, l)
		fileCache = cache.NewRedisCache[filedomain.File](rawClient, "file", ttl, l)
		producer = queue.NewRedisProducer(rawClient, queue.PaymentQueueName, l)
	} else {
		userCache = cache.NewNoopCache[userdomain.User]()
		paymentCache = cache.NewNoopCache[paymentdomain.Payment]()
		fileCache = cache.NewNoopCache[filedomain.File]()
		producer = queue.NewNoopProducer()
	}

	blobStore, err := storage.NewDiskStore(cfg.Storage.FilesDir, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize blob storage: %w", err)
	}

	userRepo := cached.NewUserRepository(postgres.NewUserRepoPG(db, l), userCache)
	paymentRepo := cached.NewPaymentRepository(postgres.NewPaymentRepoPG(db, l), paymentCache)
	fileRepo := cached.NewFileRepository(postgres.NewFileRepoPG(db, l), fileCache)

	userUC := useruc.New(userRepo, l)
	paymentUC := paymentuc.New(paymentRepo, producer, l)
	fileUC := fileuc.New(fileRepo, blobStore, l)

	rateLimiter := middleware.NewRateLimiter(
		rawClient,
		middleware.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			WindowSeconds:     cfg.RateLimit.WindowSeconds,
			Enabled:           cfg.RateLimit.Enabled && rawClient != nil,
		},
		l,
	)

	return &Container{
		Config:         cfg,
		Logger:         l,
		DB:             db,
		RedisClient:    rdb,
		BlobStore:      blobStore,
		UserUC:         userUC,
		PaymentUC:      paymentUC,
		FileUC:         fileUC,
		RateLimiter:    rateLimiter,
		UserHandler:    ginhandler.NewUserHandler(userUC, l),
		PaymentHandler: ginhandler.NewPaymentHandler(paymentUC, l),
		FileHandler:    ginhandler.NewFileHandler(fileUC, l),
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
