package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	emailadapter "github.com/Abdurahmanit/GroupProject/storefront-service/internal/adapter/email"
	mongoadapter "github.com/Abdurahmanit/GroupProject/storefront-service/internal/adapter/mongo"
	natsadapter "github.com/Abdurahmanit/GroupProject/storefront-service/internal/adapter/nats"
	redisadapter "github.com/Abdurahmanit/GroupProject/storefront-service/internal/adapter/redis"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/adapter/storage"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/app/config"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/metrics"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/tracer"
	httpport "github.com/Abdurahmanit/GroupProject/storefront-service/internal/port/http"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/scheduler"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/service"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type App struct {
	cfg            *config.Config
	log            logger.Logger
	server         *httpport.Server
	metricsServer  *metrics.Server
	scheduler      *scheduler.Scheduler
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	publisher      *natsadapter.Publisher
	tracerProvider *sdktrace.TracerProvider
}

func New(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	appLogger := logger.New(logger.Config{
		Level:      cfg.Logger.Level,
		Encoding:   cfg.Logger.Encoding,
		TimeFormat: cfg.Logger.TimeFormat,
	})
	appLogger.Info("Logger initialized")
	appLogger.Infof("Configuration loaded: Env=%s, HTTP Port: %s", cfg.Env, cfg.HTTPServer.Port)

	tp, err := tracer.Init(ctx, cfg.Tracing.ServiceName, cfg.Tracing.OTLPEndpoint, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracer: %w", err)
	}

	appLogger.Info("Initializing MongoDB client...")
	mongoClient, err := mongoadapter.NewClient(ctx, cfg.MongoDB)
	if err != nil {
		appLogger.Errorf("Failed to initialize MongoDB client: %v", err)
		return nil, fmt.Errorf("failed to initialize MongoDB client: %w", err)
	}
	db := mongoClient.Database(cfg.MongoDB.Database)
	if err := mongoadapter.EnsureIndexes(ctx, db); err != nil {
		_ = mongoClient.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ensure MongoDB indexes: %w", err)
	}
	appLogger.Info("MongoDB client initialized successfully")

	appLogger.Info("Initializing Redis client...")
	redisClient, err := redisadapter.NewClient(ctx, cfg.Redis)
	if err != nil {
		_ = mongoClient.Disconnect(ctx)
		appLogger.Errorf("Failed to initialize Redis client: %v", err)
		return nil, fmt.Errorf("failed to initialize Redis client: %w", err)
	}
	appLogger.Info("Redis client initialized successfully")

	objectStorage, err := storage.NewMinIOStorage(ctx, cfg.MinIO, appLogger)
	if err != nil {
		_ = mongoClient.Disconnect(ctx)
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to initialize object storage: %w", err)
	}

	var publisher service.EventPublisher = service.NewNopPublisher()
	var natsPublisher *natsadapter.Publisher
	if conn, err := natsadapter.NewConnection(cfg.NATS, appLogger); err != nil {
		appLogger.Warnf("NATS unavailable, domain events will not be published: %v", err)
	} else if natsPublisher, err = natsadapter.NewPublisher(conn, appLogger); err != nil {
		appLogger.Warnf("Failed to create NATS publisher: %v", err)
		conn.Close()
	} else {
		publisher = natsPublisher
	}

	var mailer service.Mailer
	if cfg.SMTP.Host != "" {
		sender, err := emailadapter.NewSMTPSender(cfg.SMTP, appLogger)
		if err != nil {
			appLogger.Warnf("Admin notification mail disabled: %v", err)
		} else {
			mailer = sender
		}
	} else {
		appLogger.Info("SMTP host not configured, admin notification mail disabled")
	}
	notifier := service.NewNotificationService(mailer, cfg.SMTP.AdminEmail, appLogger)

	listingRepo := mongoadapter.NewListingRepository(db)
	leadRepo := mongoadapter.NewLeadRepository(db)
	orderRepo := mongoadapter.NewOrderRepository(db)
	transferRepo := mongoadapter.NewTransferRepository(db)
	messageRepo := mongoadapter.NewMessageRepository(db)
	pageRepo := mongoadapter.NewPageRepository(db)
	siteRepo := mongoadapter.NewSiteRepository(db)
	interestRepo := mongoadapter.NewInterestRepository(db)
	catalogCache := redisadapter.NewCatalogCache(redisClient, cfg.Catalog.CacheTTL)
	cartRepo := redisadapter.NewCartRepository(redisClient)
	appLogger.Info("Repositories initialized")

	catalogService := service.NewCatalogService(listingRepo, catalogCache, interestRepo, pageRepo, appLogger)
	sitemapService := service.NewSitemapService(listingRepo, objectStorage, cfg.Sitemap.BaseURL, cfg.Sitemap.ObjectKey, appLogger)
	services := httpport.Services{
		Catalog:   catalogService,
		Listings:  service.NewListingService(listingRepo, catalogCache, publisher, appLogger),
		Leads:     service.NewLeadService(leadRepo, listingRepo, orderRepo, publisher, notifier, appLogger),
		Orders:    service.NewOrderService(orderRepo, listingRepo, publisher, appLogger),
		Cart:      service.NewCartService(cartRepo, listingRepo, orderRepo, publisher, appLogger, cfg.Cart.TTL),
		Transfers: service.NewTransferService(transferRepo, objectStorage, publisher, notifier, appLogger, cfg.Uploads.MaxPaymentProofBytes),
		Contact:   service.NewContactService(messageRepo, publisher, notifier, appLogger),
		Pages:     service.NewPageService(pageRepo, appLogger),
		Site:      service.NewSiteService(siteRepo, appLogger),
		Migration: service.NewMigrationService(siteRepo, appLogger),
		Sitemap:   sitemapService,
		Dashboard: service.NewDashboardService(listingRepo, leadRepo, orderRepo, appLogger),
		Auth: service.NewAuthService(
			cfg.Auth.AdminEmail, cfg.Auth.AdminPasswordHash, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, appLogger,
		),
	}
	appLogger.Info("Services initialized")

	metricsManager := metrics.NewManager(cfg.Metrics.Namespace)
	handler := httpport.NewHandler(services, metricsManager, cfg.Uploads.MaxPaymentProofBytes, appLogger)
	httpSrv := httpport.NewServer(
		appLogger,
		cfg.HTTPServer.Port,
		cfg.HTTPServer.ReadTimeout,
		cfg.HTTPServer.WriteTimeout,
		cfg.HTTPServer.IdleTimeout,
		cfg.HTTPServer.TimeoutGraceful,
		httpport.NewRouter(handler, metricsManager, appLogger),
	)
	appLogger.Info("HTTP server instance created")

	sched := scheduler.New(appLogger,
		scheduler.Job{
			Name:       "sitemap-refresh",
			Spec:       cfg.Sitemap.RefreshSpec,
			RunOnStart: true,
			Run: func(ctx context.Context) error {
				_, err := sitemapService.Refresh(ctx)
				return err
			},
		},
		scheduler.Job{
			Name:       "catalog-warm",
			Spec:       cfg.Catalog.WarmSpec,
			RunOnStart: true,
			Run:        catalogService.WarmCache,
		},
	)

	return &App{
		cfg:            cfg,
		log:            appLogger,
		server:         httpSrv,
		metricsServer:  metrics.NewServer(cfg.Metrics.Port, metricsManager, appLogger),
		scheduler:      sched,
		mongoClient:    mongoClient,
		redisClient:    redisClient,
		publisher:      natsPublisher,
		tracerProvider: tp,
	}, nil
}

func (a *App) Run() {
	a.log.Info("Starting application components...")

	jobsCtx, stopJobs := context.WithCancel(context.Background())
	defer stopJobs()

	go func() {
		if err := a.server.Start(); err != nil {
			a.log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()
	a.log.Info("HTTP server started in a goroutine")

	go func() {
		if err := a.metricsServer.Start(); err != nil {
			a.log.Errorf("Metrics server failed: %v", err)
		}
	}()

	if err := a.scheduler.Start(jobsCtx); err != nil {
		a.log.Errorf("Failed to start scheduler: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	a.log.Infof("Received shutdown signal: %v. Shutting down application...", receivedSignal)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTPServer.TimeoutGraceful+5*time.Second)
	defer cancel()

	if err := a.server.Stop(shutdownCtx); err != nil {
		a.log.Errorf("Error during HTTP server graceful shutdown: %v", err)
	} else {
		a.log.Info("HTTP server stopped successfully")
	}

	stopJobs()
	if err := a.scheduler.Stop(shutdownCtx); err != nil {
		a.log.Errorf("Error stopping scheduler: %v", err)
	}

	if err := a.metricsServer.Stop(shutdownCtx); err != nil {
		a.log.Errorf("Error stopping metrics server: %v", err)
	}

	if a.publisher != nil {
		a.publisher.Close()
		a.log.Info("NATS connection drained")
	}

	a.log.Info("Closing database connections...")

	if a.mongoClient != nil {
		if err := a.mongoClient.Disconnect(shutdownCtx); err != nil {
			a.log.Errorf("Error disconnecting from MongoDB: %v", err)
		} else {
			a.log.Info("MongoDB connection closed successfully")
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Errorf("Error closing Redis client: %v", err)
		} else {
			a.log.Info("Redis client closed successfully")
		}
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(shutdownCtx); err != nil {
			a.log.Errorf("Error shutting down tracer provider: %v", err)
		}
	}

	a.log.Info("Application shut down successfully")
	_ = a.log.Sync()
}
