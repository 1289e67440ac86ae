package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sornchai2025/buildmate-auth/internal/facades"
	"github.com/sornchai2025/buildmate-auth/internal/handlers"
	"github.com/sornchai2025/buildmate-auth/internal/logger"
	"github.com/sornchai2025/buildmate-auth/internal/middlewares"
	"github.com/sornchai2025/buildmate-auth/internal/repositories"
	"github.com/sornchai2025/buildmate-auth/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title buildmate-auth API
// @version 1.0.0
// @description Authentication and session gateway for the buildmate construction-business platform
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBroker, kafkaTopic,
		identityURL, identityAPIKey, identityServiceKey,
		logLevel,
		sessionTTLSecond, resendCooldownSecond, sweepIntervalSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBroker, kafkaTopic,
		identityURL, identityAPIKey, identityServiceKey,
		logLevel,
		sessionTTLSecond, resendCooldownSecond, sweepIntervalSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, identity-provider, logging, and
// session configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBroker, kafkaTopic string,
	identityURL, identityAPIKey, identityServiceKey string,
	logLevel string,
	sessionTTLSecond, resendCooldownSecond, sweepIntervalSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "buildmate")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// Kafka config
	kafkaBroker = getEnv("KAFKA_BROKER", "localhost:9092")
	kafkaTopic = getEnv("KAFKA_TOPIC", "auth-events")

	// Identity provider config
	identityURL = getEnv("IDENTITY_URL", "http://localhost:9999")
	identityAPIKey = getEnv("IDENTITY_API_KEY", "")
	identityServiceKey = getEnv("IDENTITY_SERVICE_KEY", "")

	// Session config
	if sessionTTLSecond, err = strconv.Atoi(getEnv("SESSION_TTL_SECOND", "604800")); err != nil {
		return
	}
	if resendCooldownSecond, err = strconv.Atoi(getEnv("RESEND_COOLDOWN_SECOND", "60")); err != nil {
		return
	}
	if sweepIntervalSecond, err = strconv.Atoi(getEnv("SESSION_SWEEP_INTERVAL_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, starts the session sweeper, and
// handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBroker, kafkaTopic string,
	identityURL, identityAPIKey, identityServiceKey string,
	logLevel string,
	sessionTTLSecond, resendCooldownSecond, sweepIntervalSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka writer for auth events
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(kafkaBroker),
		Topic:    kafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	// Identity provider facade
	identity := facades.NewIdentityHTTPFacade(identityURL, identityAPIKey, identityServiceKey, nil)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	sessionReadRepo := repositories.NewSessionReadRepository(db)
	sessionWriteRepo := repositories.NewSessionWriteRepository(db)
	profileReadRepo := repositories.NewProfileReadRepository(db)
	profileWriteRepo := repositories.NewProfileWriteRepository(db)
	cooldownRepo := repositories.NewResendCooldownRepository(rdb, time.Duration(resendCooldownSecond)*time.Second)

	// Initialize services
	sessionService := services.NewSessionService(
		sessionReadRepo, sessionWriteRepo, userReadRepo,
		time.Duration(sessionTTLSecond)*time.Second,
	)
	authService := services.NewAuthService(
		identity, userReadRepo, userWriteRepo, sessionService, cooldownRepo, kafkaWriter,
	)

	// Initialize handlers
	signInHandler := handlers.NewSignInHandler(authService)
	signUpHandler := handlers.NewSignUpHandler(authService)
	signOutHandler := handlers.NewSignOutHandler(authService)
	forgotPasswordHandler := handlers.NewForgotPasswordHandler(authService)
	resetPasswordHandler := handlers.NewResetPasswordHandler(authService)
	resendHandler := handlers.NewResendVerificationHandler(authService)
	checkEmailHandler := handlers.NewCheckEmailHandler(authService)
	verifyTokenHandler := handlers.NewVerifyTokenHandler(authService)
	getProfileHandler := handlers.NewGetProfileHandler(sessionService, profileReadRepo)
	putProfileHandler := handlers.NewPutProfileHandler(sessionService, profileWriteRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.Gate(sessionService))

	r.Post("/signin", signInHandler)
	r.Post("/signup", signUpHandler)
	r.Post("/signout", signOutHandler)
	r.Post("/forgot-password", forgotPasswordHandler)
	r.Post("/reset-password", resetPasswordHandler)
	r.Post("/resend-verification", resendHandler)
	r.Get("/check-email", checkEmailHandler)
	r.Get("/auth/token", verifyTokenHandler)
	r.Get("/profile", getProfileHandler)
	r.Put("/profile", putProfileHandler)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Periodic expired-session sweep, not done per-request.
	go func() {
		ticker := time.NewTicker(time.Duration(sweepIntervalSecond) * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctxShutdown.Done():
				return
			case <-ticker.C:
				if _, err := sessionService.SweepExpired(ctxShutdown); err != nil {
					logger.Log.Errorw("session sweep failed", "error", err)
				}
			}
		}
	}()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
