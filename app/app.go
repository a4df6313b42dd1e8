package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"

	"github.com/codeclash-oj/codeclash/api"
	"github.com/codeclash-oj/codeclash/api/middleware"
	contestservice "github.com/codeclash-oj/codeclash/app/modules/contest/application"
	standingsservice "github.com/codeclash-oj/codeclash/app/modules/standings/application"
	standingstypes "github.com/codeclash-oj/codeclash/app/modules/standings/domain/types"
	standingscache "github.com/codeclash-oj/codeclash/app/modules/standings/infrastructure/cache"
	submissionservice "github.com/codeclash-oj/codeclash/app/modules/submission/application"
	submissionhandlers "github.com/codeclash-oj/codeclash/app/modules/submission/infrastructure/handlers"
	submissionrouter "github.com/codeclash-oj/codeclash/app/modules/submission/infrastructure/router"
	"github.com/codeclash-oj/codeclash/app/shared/observability"
	"github.com/codeclash-oj/codeclash/config"
	"github.com/codeclash-oj/codeclash/db/bundb"
	"github.com/codeclash-oj/codeclash/eventbus"
	"github.com/codeclash-oj/codeclash/pkg/jwt"
)

// App owns every long-lived component of the platform: database pool,
// event bus, watermill router, and the two HTTP listeners.
type App struct {
	Cfg    *config.Config
	Logger *slog.Logger

	ContestService    contestservice.Service
	SubmissionService submissionservice.Service
	StandingsService  standingsservice.Service

	db               *bundb.DBService
	redisClient      *redis.Client
	publisher        message.Publisher
	subscriber       message.Subscriber
	submissionRouter *submissionrouter.SubmissionRouter
	registry         *prometheus.Registry

	httpServer    *http.Server
	metricsServer *http.Server
}

// NewApp wires the full application from configuration.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	dbService, err := bundb.NewBunDBService(ctx, cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database service: %w", err)
	}

	registry := prometheus.NewRegistry()
	appMetrics := observability.NewMetrics(registry)

	var redisClient *redis.Client
	var standingsCache standingsservice.Cache
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse redis URL: %w", err)
		}
		redisClient = redis.NewClient(opts)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		standingsCache = standingscache.NewRedisCache(redisClient, cfg.Redis.StandingsTTL)
	} else {
		logger.Warn("standings cache disabled, every scoreboard request recomputes")
	}

	publisher, err := eventbus.NewPublisher(cfg.NATS.URL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create publisher: %w", err)
	}
	subscriber, err := eventbus.NewSubscriber(cfg.NATS.URL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscriber: %w", err)
	}

	contestSvc := contestservice.NewContestService(dbService.ContestDB, logger)
	submissionSvc := submissionservice.NewSubmissionService(dbService.SubmissionDB, logger, appMetrics)
	standingsSvc := standingsservice.NewStandingsService(
		contestSvc,
		submissionSvc,
		&contestSubmissionRecorder{submissions: submissionSvc},
		standingsCache,
		standingstypes.ScoringConfig{
			PointsPerSolve: cfg.Scoring.PointsPerSolve,
			PenaltyMinutes: cfg.Scoring.PenaltyMinutes,
		},
		logger,
		otel.GetTracerProvider().Tracer("standings"),
		appMetrics,
	)

	watermillRouter, err := message.NewRouter(message.RouterConfig{}, watermill.NewSlogLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create watermill router: %w", err)
	}
	subRouter := submissionrouter.NewSubmissionRouter(logger, watermillRouter, subscriber, publisher)
	subHandlers := submissionhandlers.NewSubmissionHandlers(submissionSvc, contestSvc, standingsSvc, logger)
	if err := subRouter.Configure(ctx, subHandlers, registry); err != nil {
		return nil, fmt.Errorf("failed to configure submission router: %w", err)
	}

	tokens := jwt.NewService(cfg.JWT.Secret, cfg.JWT.DefaultTTL)
	rateLimiter := middleware.NewRateLimiter(ctx, cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	httpServer := &http.Server{
		Addr: cfg.HTTP.Address,
		Handler: api.NewRouter(api.Deps{
			Contests:    contestSvc,
			Standings:   standingsSvc,
			Submissions: submissionSvc,
			Tokens:      tokens,
			DB:          dbService.GetDB(),
			RateLimiter: rateLimiter,
			Logger:      logger,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	metricsServer := &http.Server{
		Addr:              cfg.Observability.MetricsAddress,
		Handler:           metricsMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &App{
		Cfg:               cfg,
		Logger:            logger,
		ContestService:    contestSvc,
		SubmissionService: submissionSvc,
		StandingsService:  standingsSvc,
		db:                dbService,
		redisClient:       redisClient,
		publisher:         publisher,
		subscriber:        subscriber,
		submissionRouter:  subRouter,
		registry:          registry,
		httpServer:        httpServer,
		metricsServer:     metricsServer,
	}, nil
}

// DB returns the database service.
func (a *App) DB() *bundb.DBService {
	return a.db
}

// Run starts the watermill router and both HTTP listeners, then blocks
// until ctx is canceled or a component fails.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 3)

	go func() {
		a.Logger.Info("starting event router")
		if err := a.submissionRouter.Router.Run(ctx); err != nil {
			errCh <- fmt.Errorf("event router stopped: %w", err)
		}
	}()

	go func() {
		a.Logger.Info("starting http server", "address", a.Cfg.HTTP.Address)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server stopped: %w", err)
		}
	}()

	go func() {
		a.Logger.Info("starting metrics server", "address", a.Cfg.Observability.MetricsAddress)
		if err := a.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("metrics server stopped: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// Close shuts components down in reverse dependency order.
func (a *App) Close() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error("failed to stop http server", "error", err)
	}
	if err := a.metricsServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error("failed to stop metrics server", "error", err)
	}
	if err := a.submissionRouter.Close(); err != nil {
		a.Logger.Error("failed to stop event router", "error", err)
	}
	if err := a.subscriber.Close(); err != nil {
		a.Logger.Error("failed to close subscriber", "error", err)
	}
	if err := a.publisher.Close(); err != nil {
		a.Logger.Error("failed to close publisher", "error", err)
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.Logger.Error("failed to close redis client", "error", err)
		}
	}
	if err := a.db.GetDB().Close(); err != nil {
		a.Logger.Error("failed to close database", "error", err)
	}
}
