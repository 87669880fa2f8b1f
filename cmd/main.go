package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	adminapp "github.com/muhammadheryan/agri-market/application/admin"
	listingapp "github.com/muhammadheryan/agri-market/application/listing"
	userapp "github.com/muhammadheryan/agri-market/application/user"
	"github.com/muhammadheryan/agri-market/cmd/config"
	redisclient "github.com/muhammadheryan/agri-market/cmd/redis"
	_ "github.com/muhammadheryan/agri-market/docs"
	"github.com/muhammadheryan/agri-market/migrations"
	admintagRepo "github.com/muhammadheryan/agri-market/repository/admintag"
	auditRepo "github.com/muhammadheryan/agri-market/repository/audit"
	listingRepo "github.com/muhammadheryan/agri-market/repository/listing"
	redisRepo "github.com/muhammadheryan/agri-market/repository/redis"
	txRepo "github.com/muhammadheryan/agri-market/repository/tx"
	userRepo "github.com/muhammadheryan/agri-market/repository/user"
	"github.com/muhammadheryan/agri-market/thirdparty/rabbitmq"
	"github.com/muhammadheryan/agri-market/transport"
	"github.com/muhammadheryan/agri-market/utils/logger"
	validatorx "github.com/muhammadheryan/agri-market/utils/validator"
	"go.uber.org/zap"
)

// @title AGRI-MARKET API
// @version 1.0
// @description Agricultural marketplace API: admin hierarchy, geo search and listings.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	if cfg.Auth.JWTSecret == "" {
		logger.Fatal("JWT_SECRET must be set")
	}
	validatorx.Init()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(db.DB); err != nil {
			logger.Fatal("err apply migrations", zap.Error(err))
		}
		logger.Info("migrations applied")
	}

	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	var publisher rabbitmq.AuditPublisher = rabbitmq.NoopPublisher{}
	if cfg.RabbitMQ.Enabled {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQURL())
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer p.Close()
		publisher = p
	}

	// repositories
	UserRepo := userRepo.NewUserRepository(db)
	ListingRepo := listingRepo.NewListingRepository(db)
	TagRepo := admintagRepo.NewAdminTagRepository(db)
	AuditRepo := auditRepo.NewAuditRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	SessionRepo := redisRepo.NewSessionRepository()

	// application layers
	UserApp := userapp.NewUserApp(cfg, TxRepo, UserRepo, ListingRepo, TagRepo, SessionRepo, publisher)
	AdminApp := adminapp.NewAdminApp(cfg, TxRepo, UserRepo, TagRepo, AuditRepo, publisher)
	ListingApp := listingapp.NewListingApp(cfg, TxRepo, UserRepo, ListingRepo)

	health := func(r *http.Request) error {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return err
		}
		return redisclient.Ping(ctx)
	}

	httpTransport := transport.NewTransport(cfg, UserApp, AdminApp, ListingApp, health)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
