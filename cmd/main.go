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
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/gw-translator/docs"
	"github.com/sbilibin2017/gw-translator/internal/facades"
	"github.com/sbilibin2017/gw-translator/internal/handlers"
	"github.com/sbilibin2017/gw-translator/internal/jwt"
	"github.com/sbilibin2017/gw-translator/internal/logger"
	"github.com/sbilibin2017/gw-translator/internal/middlewares"
	"github.com/sbilibin2017/gw-translator/internal/repositories"
	"github.com/sbilibin2017/gw-translator/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const audioURLPrefix = "/static/audio"

// config holds everything read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	JWTSecretKey    string
	JWTExpSecond    int
	JWTSecureCookie bool

	TranslateURL           string
	TranslateAPIKey        string
	TranslateTimeoutSecond int

	LanguageToolURL           string
	LanguageToolTimeoutSecond int

	TesseractPath    string
	TesseractLang    string
	OCRTimeoutSecond int

	ESpeakPath       string
	TTSTimeoutSecond int

	UploadDir      string
	AudioDir       string
	MaxUploadBytes int64

	KafkaBrokers []string
	KafkaTopic   string

	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
}

// @title gw-translator API
// @version 1.0.0
// @description Translation assistant: translation with history and favorites, speech synthesis, OCR and grammar correction
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name session
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}
	if cfg.JWTSecureCookie, err = strconv.ParseBool(getEnv("JWT_SECURE_COOKIE", "false")); err != nil {
		return
	}

	// Engines
	cfg.TranslateURL = getEnv("TRANSLATE_URL", "http://localhost:5000/translate")
	cfg.TranslateAPIKey = getEnv("TRANSLATE_API_KEY", "")
	if cfg.TranslateTimeoutSecond, err = strconv.Atoi(getEnv("TRANSLATE_TIMEOUT_SECOND", "30")); err != nil {
		return
	}
	cfg.LanguageToolURL = getEnv("LANGUAGETOOL_URL", "https://api.languagetool.org")
	if cfg.LanguageToolTimeoutSecond, err = strconv.Atoi(getEnv("LANGUAGETOOL_TIMEOUT_SECOND", "30")); err != nil {
		return
	}
	cfg.TesseractPath = getEnv("TESSERACT_PATH", "tesseract")
	cfg.TesseractLang = getEnv("TESSERACT_LANG", "")
	if cfg.OCRTimeoutSecond, err = strconv.Atoi(getEnv("OCR_TIMEOUT_SECOND", "60")); err != nil {
		return
	}
	cfg.ESpeakPath = getEnv("ESPEAK_PATH", "espeak-ng")
	if cfg.TTSTimeoutSecond, err = strconv.Atoi(getEnv("TTS_TIMEOUT_SECOND", "60")); err != nil {
		return
	}

	// Files
	cfg.UploadDir = getEnv("UPLOAD_DIR", "uploads")
	cfg.AudioDir = getEnv("AUDIO_DIR", "static/audio")
	if cfg.MaxUploadBytes, err = strconv.ParseInt(getEnv("MAX_UPLOAD_BYTES", strconv.Itoa(16<<20)), 10, 64); err != nil {
		return
	}

	// Kafka config
	cfg.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "translator-activity")

	// HTTP protection
	cfg.CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "*"))
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "20"), 64); err != nil {
		return
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "40")); err != nil {
		return
	}

	return
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

// run initializes the logger, database, Redis, Kafka writer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer, only when brokers are configured
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Publishing activity events to %s on %v", cfg.KafkaTopic, cfg.KafkaBrokers)
	}

	for _, dir := range []string{cfg.UploadDir, cfg.AudioDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           newRouter(cfg, db, rdb, kafkaWriter),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires repositories, engines, services and handlers into the chi router.
func newRouter(cfg config, db *sqlx.DB, rdb *redis.Client, kafkaWriter services.KafkaWriter) http.Handler {
	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(seconds(cfg.JWTExpSecond)),
		jwt.WithSecureCookie(cfg.JWTSecureCookie),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	historyReadRepo := repositories.NewHistoryReadRepository(db)
	historyWriteRepo := repositories.NewHistoryWriteRepository(db)
	favoriteReadRepo := repositories.NewFavoriteReadRepository(db)
	favoriteWriteRepo := repositories.NewFavoriteWriteRepository(db)
	sessionRepo := repositories.NewSessionRepository(rdb)

	// Initialize engines
	translator := facades.NewLibreTranslateFacade(cfg.TranslateURL, cfg.TranslateAPIKey, seconds(cfg.TranslateTimeoutSecond))
	grammarChecker := facades.NewLanguageToolFacade(cfg.LanguageToolURL, seconds(cfg.LanguageToolTimeoutSecond))
	ocrEngine := facades.NewTesseractFacade(cfg.TesseractPath, cfg.TesseractLang, seconds(cfg.OCRTimeoutSecond))
	speechEngine := facades.NewESpeakFacade(cfg.ESpeakPath, seconds(cfg.TTSTimeoutSecond))

	// Initialize services
	events := services.NewEventPublisher(kafkaWriter)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, sessionRepo, tokens)
	historyService := services.NewHistoryService(historyReadRepo, historyWriteRepo, events)
	favoriteService := services.NewFavoriteService(favoriteReadRepo, favoriteWriteRepo, events)
	translationService := services.NewTranslationService(translator, historyWriteRepo, events)
	pronunciationService := services.NewPronunciationService()
	ocrService := services.NewOCRService(ocrEngine, cfg.UploadDir)
	speechService := services.NewSpeechService(speechEngine, cfg.AudioDir, audioURLPrefix)
	grammarService := services.NewGrammarService(grammarChecker)

	// Setup router
	limiter := middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	r := chi.NewRouter()
	r.Use(middlewares.LoggingMiddleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.MetricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middlewares.RequestIDHeader},
		ExposedHeaders:   []string{middlewares.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(limiter.Middleware)
	r.Use(chimiddleware.RequestSize(cfg.MaxUploadBytes))

	// Operational routes
	r.Get("/healthz", handlers.NewHealthHandler(map[string]handlers.HealthCheck{
		"postgres": db.PingContext,
		"redis":    func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
	}))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Public routes
	r.Get("/login", handlers.NewLoginPageHandler())
	r.Post("/login", handlers.NewLoginHandler(authService, tokens))
	r.Get("/register", handlers.NewRegisterPageHandler())
	r.Post("/register", handlers.NewRegisterHandler(authService))

	// Browser pages
	r.Group(func(r chi.Router) {
		r.Use(middlewares.LoginRequired(tokens, authService))
		r.Get("/", handlers.NewIndexHandler(historyService, favoriteService))
		r.Get("/logout", handlers.NewLogoutHandler(authService, tokens))
	})

	// Protected API routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokens, authService))

		r.Post("/translate", handlers.NewTranslateHandler(translationService))
		r.Post("/tts", handlers.NewTTSHandler(speechService))

		r.Get("/history", handlers.NewHistoryHandler(historyService))
		r.Post("/clear_history", handlers.NewClearHistoryHandler(historyService))
		r.Post("/clear_chat", handlers.NewClearHistoryHandler(historyService))
		r.Post("/rate", handlers.NewRateHandler(historyService))

		r.Post("/favorite", handlers.NewAddFavoriteHandler(favoriteService))
		r.Get("/favorites", handlers.NewFavoritesHandler(favoriteService))
		r.Post("/remove_favorite", handlers.NewRemoveFavoriteHandler(favoriteService))
		r.Post("/clear_favorites", handlers.NewClearFavoritesHandler(favoriteService))

		r.Post("/analyze_pronunciation", handlers.NewPronunciationHandler(pronunciationService))
		r.Post("/upload_image", handlers.NewUploadImageHandler(ocrService))
		r.Post("/correct", handlers.NewCorrectHandler(grammarService))

		r.Handle("/uploads/*", handlers.NewStaticHandler("/uploads/", cfg.UploadDir))
		r.Handle(audioURLPrefix+"/*", handlers.NewStaticHandler(audioURLPrefix+"/", cfg.AudioDir))
	})

	return r
}
