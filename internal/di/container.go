package di

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/boring-ventures/billiards-management/internal/event"
	"github.com/boring-ventures/billiards-management/internal/handler"
	"github.com/boring-ventures/billiards-management/internal/repository"
	"github.com/boring-ventures/billiards-management/internal/scope"
	"github.com/boring-ventures/billiards-management/internal/selection"
	"github.com/boring-ventures/billiards-management/internal/service"
	"github.com/boring-ventures/billiards-management/pkg/config"
	"github.com/boring-ventures/billiards-management/pkg/database"
)

// Container holds all dependencies for the API service
type Container struct {
	// Infrastructure
	DB        *database.PostgresDB
	Redis     *redis.Client
	Publisher event.Publisher

	// Repositories
	CompanyRepo     repository.CompanyRepository
	ProfileRepo     repository.ProfileRepository
	VenueRepo       repository.VenueRepository
	ProductRepo     repository.ProductRepository
	OrderRepo       repository.OrderRepository
	TransactionRepo repository.TransactionRepository

	// Scoping
	Resolver   *scope.Resolver
	Selections selection.Store

	// Services
	AuthService      service.AuthService
	CompanyService   service.CompanyService
	VenueService     service.VenueService
	InventoryService service.InventoryService
	POSService       service.POSService
	FinanceService   service.FinanceService
	DashboardService service.DashboardService

	// Handlers
	HealthHandler    *handler.HealthHandler
	AuthHandler      *handler.AuthHandler
	CompanyHandler   *handler.CompanyHandler
	VenueHandler     *handler.VenueHandler
	InventoryHandler *handler.InventoryHandler
	POSHandler       *handler.POSHandler
	FinanceHandler   *handler.FinanceHandler
	DashboardHandler *handler.DashboardHandler
}

// NewContainer builds the dependency graph from configuration. It connects to
// PostgreSQL and Redis, so it needs a context with a sensible deadline.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{}

	db, err := database.NewPostgres(ctx, &database.PostgresConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        int32(cfg.Database.MaxConns),
		MinConns:        int32(cfg.Database.MinConns),
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		MaxRetries:      3,
		RetryInterval:   2 * time.Second,
		ConnectTimeout:  10 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	c.DB = db

	redisClient, err := database.NewRedis(ctx, database.RedisConfig{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.Redis = redisClient

	if cfg.Kafka.Enabled {
		publisher, err := event.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.ClientID, cfg.Kafka.Topic)
		if err != nil {
			c.closeInfra()
			return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
		}
		c.Publisher = publisher
	} else {
		c.Publisher = event.NewMemoryPublisher()
	}

	// Repositories
	c.CompanyRepo = repository.NewPostgresCompanyRepository(db.Pool())
	c.ProfileRepo = repository.NewPostgresProfileRepository(db.Pool())
	c.VenueRepo = repository.NewPostgresVenueRepository(db.Pool())
	c.ProductRepo = repository.NewPostgresProductRepository(db.Pool())
	c.OrderRepo = repository.NewPostgresOrderRepository(db.Pool())
	c.TransactionRepo = repository.NewPostgresTransactionRepository(db.Pool())

	// Scoping
	c.Resolver = scope.NewResolver(c.CompanyRepo)
	c.Selections = selection.NewRedisStore(redisClient, cfg.Selection.TTL)

	// Services
	c.AuthService = service.NewAuthService(c.ProfileRepo, c.CompanyRepo, service.TokenConfig{
		Secret: cfg.JWT.Secret,
		TTL:    cfg.JWT.AccessTokenTTL,
		Issuer: cfg.JWT.Issuer,
	})
	c.CompanyService = service.NewCompanyService(c.CompanyRepo, c.ProfileRepo, c.Publisher)
	c.VenueService = service.NewVenueService(c.VenueRepo)
	c.InventoryService = service.NewInventoryService(c.ProductRepo)
	c.POSService = service.NewPOSService(c.OrderRepo, c.ProductRepo, c.VenueRepo, c.TransactionRepo, c.Publisher)
	c.FinanceService = service.NewFinanceService(c.TransactionRepo, c.Publisher)
	c.DashboardService = service.NewDashboardService(c.OrderRepo, c.VenueRepo, c.ProductRepo, c.TransactionRepo)

	// Handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB)
	c.AuthHandler = handler.NewAuthHandler(c.AuthService)
	c.CompanyHandler = handler.NewCompanyHandler(c.CompanyService, c.Selections)
	c.VenueHandler = handler.NewVenueHandler(c.VenueService)
	c.InventoryHandler = handler.NewInventoryHandler(c.InventoryService)
	c.POSHandler = handler.NewPOSHandler(c.POSService)
	c.FinanceHandler = handler.NewFinanceHandler(c.FinanceService)
	c.DashboardHandler = handler.NewDashboardHandler(c.DashboardService)

	return c, nil
}

func (c *Container) closeInfra() {
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.DB != nil {
		c.DB.Close()
	}
}

// Close releases all infrastructure connections
func (c *Container) Close() {
	if c.Publisher != nil {
		c.Publisher.Close()
	}
	c.closeInfra()
}
