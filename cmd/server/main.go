package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	api "carrental-backend/internal/api/grpc"
	"carrental-backend/internal/api/grpc/interceptor"
	httpapi "carrental-backend/internal/api/http"
	"carrental-backend/internal/cache"
	"carrental-backend/internal/config"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/migrations"
	"carrental-backend/internal/repository/postgres"
	"carrental-backend/internal/security"
	"carrental-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	hashPassword := flag.String("hash-password", "", "Print the bcrypt hash of a password for auth.admins and exit")
	flag.Parse()

	if *hashPassword != "" {
		hash, err := security.HashPassword(*hashPassword)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		fmt.Println(hash)
		return
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting car rental backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "http_address", cfg.GetServerAddress(), "grpc_address", cfg.GetGRPCAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Email configuration", "provider", cfg.Email.Provider, "from", cfg.Email.FromEmail, "workers", cfg.Email.Workers)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.PingContext(ctx); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	if cfg.Database.MigrateOnBoot {
		if err := migrations.Run(db); err != nil {
			logger.Error("Failed to apply migrations", "error", err)
			log.Fatalf("Failed to apply migrations: %v", err)
		}
		logger.Info("Database migrations applied")
	}

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize catalog cache
	catalog := cache.NewNoop()
	if cfg.Cache.Enabled {
		redisCatalog, err := cache.NewRedisCatalog(ctx, cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
		if err != nil {
			// Listings still work uncached
			logger.Warn("Redis unavailable, catalog cache disabled", "addr", cfg.Cache.Addr, "error", err)
		} else {
			catalog = redisCatalog
			logger.Info("Catalog cache enabled", "addr", cfg.Cache.Addr, "ttl_seconds", cfg.Cache.TTLSeconds)
		}
	}

	// Initialize Email Service
	emailQueue := service.NewEmailQueue(newEmailSender(cfg), cfg.Email.Workers, cfg.Email.QueueSize, cfg.Email.MaxRetries)
	queueCtx, cancelQueue := context.WithCancel(context.Background())
	emailQueue.Start(queueCtx)
	emailSvc := service.NewEmailService(emailQueue, cfg.Email.AdminEmail, cfg.Email.FromName)

	// Initialize Security
	verifier, tokenManager, err := newVerifier(ctx, cfg)
	if err != nil {
		logger.Error("Failed to initialize admin token verification", "provider", cfg.Auth.Provider, "error", err)
		log.Fatalf("Failed to initialize auth: %v", err)
	}

	// Initialize Services
	quoteSvc := service.NewQuoteService(store.VehicleRepository, store.SeasonRepository)
	services := httpapi.Services{
		Vehicles: service.NewVehicleService(store.VehicleRepository, store.VehicleClassRepository, store.SeasonRepository, catalog),
		Quotes:   quoteSvc,
		Seasons:  service.NewSeasonService(store.SeasonRepository),
		Reservations: service.NewReservationService(
			store.VehicleRepository,
			store.VehicleClassRepository,
			store.SeasonRepository,
			store.ReservationRepository,
			emailSvc,
		),
		Blog: service.NewBlogService(store.BlogPostRepository),
		Auth: service.NewAuthService(cfg.Auth.Admins, tokenManager),
	}

	// Set up HTTP server
	router := httpapi.NewRouter(services, httpapi.RouterOptions{
		Verifier:           verifier,
		RateLimitPerMinute: cfg.Reservations.RateLimitPerMinute,
		RateLimitBurst:     cfg.Reservations.RateLimitBurst,
		Ping:               db.PingContext,
	})
	httpServer := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Set up gRPC server
	lis, err := net.Listen("tcp", cfg.GetGRPCAddress())
	if err != nil {
		logger.Error("Failed to listen", "error", err, "address", cfg.GetGRPCAddress())
		log.Fatalf("Failed to listen: %v", err)
	}

	authInterceptor := interceptor.NewAuthInterceptor(verifier)
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(authInterceptor.Unary()),
	)
	api.RegisterPricingServiceServer(grpcServer, api.NewPricingHandler(quoteSvc))

	// Register reflection service for grpcurl
	reflection.Register(grpcServer)

	errCh := make(chan error, 2)
	go func() {
		logger.Info("HTTP server listening", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http: %w", err)
		}
	}()
	go func() {
		logger.Info("gRPC server listening", "address", cfg.GetGRPCAddress())
		if err := grpcServer.Serve(lis); err != nil {
			errCh <- fmt.Errorf("grpc: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errCh:
		logger.Error("Server failed", "error", err)
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	grpcServer.GracefulStop()

	// Workers flush whatever is still buffered before they exit
	cancelQueue()
	emailQueue.Wait()
	logger.Info("Server stopped. Goodbye!")
}

func newEmailSender(cfg *config.Config) service.EmailSender {
	if cfg.Email.Provider == "sendgrid" {
		return service.NewSendGridSender(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	}
	logger.Warn("Email provider is 'log'; messages will not be delivered")
	return service.NewLogSender()
}

// newVerifier returns the admin token verifier. The token manager is nil when
// an external identity provider issues tokens and local login is disabled.
func newVerifier(ctx context.Context, cfg *config.Config) (security.Verifier, security.TokenManager, error) {
	if cfg.Auth.Provider == "firebase" {
		v, err := security.NewFirebaseVerifier(ctx, cfg.Auth.FirebaseProjectID, cfg.Auth.FirebaseCredentialsFile)
		if err != nil {
			return nil, nil, err
		}
		return v, nil, nil
	}
	tm := security.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.AccessTokenExpiry)*time.Minute)
	return tm, tm, nil
}
