package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/crypto/bcrypt"

	"blognest-backend/internal/auth"
	"blognest-backend/internal/config"
	"blognest-backend/internal/handler"
	"blognest-backend/internal/infrastructure/database"
	"blognest-backend/internal/logger"
	"blognest-backend/internal/metrics"
	"blognest-backend/internal/middleware"
	"blognest-backend/internal/repository"
	"blognest-backend/internal/service"
	"blognest-backend/internal/validator"
)

// stores bundles the repositories of one backend with its health probe and
// shutdown hook.
type stores struct {
	users    repository.UserRepository
	blogs    repository.BlogRepository
	comments repository.CommentRepository
	pinger   handler.Pinger
	close    func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		logger.Warn("Ignoring LOG_LEVEL",
			slog.String("error", err.Error()))
	}

	// A store that cannot be reached at startup is fatal; there is no retry.
	var st *stores
	switch cfg.DatabaseDriver {
	case config.DriverMongo:
		st, err = openMongo(cfg)
	default:
		st, err = openPostgres(cfg)
	}
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("driver", cfg.DatabaseDriver),
			slog.String("error", err.Error()))
	}
	defer st.close()

	v := validator.NewValidator()
	authService := service.NewAuthService(
		st.users,
		auth.NewPasswordHasher(bcrypt.DefaultCost),
		auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL),
		v,
	)
	blogService := service.NewBlogService(st.blogs, st.users, v)
	commentService := service.NewCommentService(st.comments, st.blogs, v)

	healthHandler := handler.NewHealthHandler(cfg.DatabaseDriver, st.pinger)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxUploadBytes
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())
	router.Use(middleware.CORS(cfg.AllowedOrigin))
	router.Use(middleware.Errors())

	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handler.RegisterRoutes(router.Group("/api"), handler.Routes{
		Auth:     handler.NewAuthHandler(authService),
		Blogs:    handler.NewBlogHandler(blogService),
		Comments: handler.NewCommentHandler(commentService),
	}, middleware.RequireAuth(authService))
	handler.RegisterFallbacks(router)

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("driver", cfg.DatabaseDriver),
			slog.String("cors_origin", cfg.AllowedOrigin))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}

func openPostgres(cfg *config.Config) (*stores, error) {
	if cfg.MigrationsDir != "" {
		if err := database.MigratePostgres(cfg.DatabaseURL, cfg.MigrationsDir); err != nil {
			return nil, err
		}
		logger.Info("Migrations applied", slog.String("dir", cfg.MigrationsDir))
	}

	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		URL:               cfg.DatabaseURL,
		ConnectTimeout:    cfg.DBConnectTimeout,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		return nil, err
	}

	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)

	return &stores{
		users:    repository.NewPostgresUserRepository(pool),
		blogs:    repository.NewPostgresBlogRepository(pool),
		comments: repository.NewPostgresCommentRepository(pool),
		pinger:   pool,
		close: func() {
			poolStatsCollector.Stop()
			pool.Close()
		},
	}, nil
}

func openMongo(cfg *config.Config) (*stores, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.DBConnectTimeout)
	defer cancel()

	m, err := database.NewMongo(ctx, database.MongoConfig{
		URI:                    cfg.DatabaseURL,
		Database:               cfg.MongoDatabase,
		ServerSelectionTimeout: cfg.DBConnectTimeout,
		MaxPoolSize:            uint64(cfg.DBMaxConns),
		MinPoolSize:            uint64(cfg.DBMinConns),
	})
	if err != nil {
		return nil, err
	}

	if err := repository.EnsureMongoIndexes(ctx, m.DB); err != nil {
		_ = m.Close(context.Background())
		return nil, err
	}

	return &stores{
		users:    repository.NewMongoUserRepository(m.DB),
		blogs:    repository.NewMongoBlogRepository(m.DB),
		comments: repository.NewMongoCommentRepository(m.DB),
		pinger:   m,
		close: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := m.Close(ctx); err != nil {
				logger.Error("Failed to disconnect from MongoDB",
					slog.String("error", err.Error()))
			}
		},
	}, nil
}
