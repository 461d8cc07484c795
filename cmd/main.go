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
	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	_ "github.com/crud-app/records-api/docs"
	"github.com/crud-app/records-api/internal/handlers"
	"github.com/crud-app/records-api/internal/logger"
	"github.com/crud-app/records-api/internal/middlewares"
	"github.com/crud-app/records-api/internal/repositories"
	"github.com/crud-app/records-api/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// databaseName is the MongoDB database holding both collections.
const databaseName = "Crud_App"

// @title records-api
// @version 1.0.0
// @description Inventory items and employee clock-in records backed by MongoDB
// @host localhost:8423
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		mongoURI, mongoTimeoutSecond,
		kafkaBrokers, kafkaTopic,
		corsOrigins,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		mongoURI, mongoTimeoutSecond,
		kafkaBrokers, kafkaTopic,
		corsOrigins,
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

// parseConfig loads environment variables from a file and returns
// the application, MongoDB, Kafka and CORS configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	mongoURI string, mongoTimeoutSecond int,
	kafkaBrokers []string, kafkaTopic string,
	corsOrigins []string,
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
	appHost = getEnv("APP_HOST", "0.0.0.0")
	appPort = getEnv("APP_PORT", "8423")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// MongoDB config
	mongoURI = getEnv("MONGODB_URI", "mongodb://localhost:27017/")
	if mongoTimeoutSecond, err = strconv.Atoi(getEnv("MONGODB_TIMEOUT_SECOND", "10")); err != nil {
		return
	}

	// Kafka config
	kafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	kafkaTopic = getEnv("KAFKA_TOPIC", "record-events")

	// CORS config
	corsOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "*"))

	return
}

// splitList splits a comma separated value, dropping blank entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// run initializes the logger, MongoDB client, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	mongoURI string, mongoTimeoutSecond int,
	kafkaBrokers []string, kafkaTopic string,
	corsOrigins []string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to MongoDB
	timeout := time.Duration(mongoTimeoutSecond) * time.Second
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(mongoURI).
		SetServerSelectionTimeout(timeout).
		SetConnectTimeout(timeout))
	if err != nil {
		return fmt.Errorf("MongoDB connection error: %w", err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Log.Errorw("MongoDB disconnect error", "error", err)
		}
	}()

	pingCtx, cancelPing := context.WithTimeout(ctx, timeout)
	defer cancelPing()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("MongoDB ping failed: %w", err)
	}
	logger.Log.Infow("Connected to MongoDB", "database", databaseName)

	db := client.Database(databaseName)

	// Unique owner index; the pre-insert check still guards when this fails.
	if err := repositories.NewItemWriteRepository(db).EnsureIndexes(pingCtx); err != nil {
		logger.Log.Warnw("failed to create item indexes", "error", err)
	}

	// Kafka writer, optional
	var kafkaWriter services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:         kafka.TCP(kafkaBrokers...),
			Topic:        kafkaTopic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 10 * time.Millisecond,
			Async:        true,
			Completion: func(messages []kafka.Message, err error) {
				if err != nil {
					logger.Log.Errorw("Kafka delivery failed", "messages", len(messages), "error", err)
				}
			},
		}
		defer func() {
			if err := kw.Close(); err != nil {
				logger.Log.Errorw("Kafka writer close error", "error", err)
			}
		}()
		kafkaWriter = kw
		logger.Log.Infow("Kafka publishing enabled", "brokers", kafkaBrokers, "topic", kafkaTopic)
	} else {
		logger.Log.Warn("KAFKA_BROKERS is empty, record events will not be published")
	}

	r := newRouter(client, db, kafkaWriter, corsOrigins, appHost, appPort)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// corsOptions builds the CORS policy. A "*" entry allows every origin and
// echoes it back, since browsers reject a literal "*" on credentialed requests.
func corsOptions(origins []string) cors.Options {
	opts := cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{middlewares.RequestIDHeader},
		AllowCredentials: true,
	}
	for _, o := range origins {
		if o == "*" {
			opts.AllowedOrigins = nil
			opts.AllowOriginFunc = func(_ *http.Request, _ string) bool { return true }
			break
		}
	}
	return opts
}

// newRouter wires repositories, services and handlers into a chi router.
func newRouter(
	client *mongo.Client,
	db *mongo.Database,
	kafkaWriter services.KafkaWriter,
	corsOrigins []string,
	appHost, appPort string,
) http.Handler {
	// Initialize repositories
	itemReadRepo := repositories.NewItemReadRepository(db)
	itemWriteRepo := repositories.NewItemWriteRepository(db)
	clockInReadRepo := repositories.NewClockInReadRepository(db)
	clockInWriteRepo := repositories.NewClockInWriteRepository(db)

	// Initialize services
	itemService := services.NewItemService(itemReadRepo, itemWriteRepo, kafkaWriter)
	clockInService := services.NewClockInService(clockInReadRepo, clockInWriteRepo, kafkaWriter)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(cors.Handler(corsOptions(corsOrigins)))

	// Items
	r.Post("/create_item/", handlers.NewCreateItemHandler(itemService))
	r.Get("/get_item/{id}", handlers.NewGetItemHandler(itemService))
	r.Put("/update_item/{id}", handlers.NewUpdateItemHandler(itemService))
	r.Delete("/delete_item/{id}", handlers.NewDeleteItemHandler(itemService))
	r.Get("/items/filter/", handlers.NewFilterItemsHandler(itemService))

	// Clock-in records
	updateClockIn := handlers.NewUpdateClockInHandler(clockInService)
	r.Post("/clock-in/", handlers.NewCreateClockInHandler(clockInService))
	r.Get("/clock-in/filter/", handlers.NewFilterClockInsHandler(clockInService))
	r.Get("/clock-in/{id}", handlers.NewGetClockInHandler(clockInService))
	r.Put("/clock-in/{id}", updateClockIn)
	r.Put("/click-in/{id}", updateClockIn)
	r.Delete("/clock-in/{id}", handlers.NewDeleteClockInHandler(clockInService))

	r.Get("/ping", handlers.NewPingHandler(client))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	return r
}
