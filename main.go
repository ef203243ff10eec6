// main.go
package main

import (
	"log"

	"flight-booking/cmd"
	"flight-booking/internal/cache"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/email"
	"flight-booking/internal/kafka"
	"flight-booking/internal/wire"
	"flight-booking/pkg/database"
	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Optional infrastructure: a nil cache serves nothing and a nil
	// producer skips notifications, so both are safe when unconfigured.
	flightCache := cache.NewFlightCache(config.Redis, logger)
	defer flightCache.Close()

	var producer *kafka.Producer
	if len(config.Kafka.Brokers) > 0 {
		producer = kafka.NewProducer(config.Kafka.Brokers, logger)
		defer producer.Close()
	} else {
		logger.Warn("Kafka brokers not configured, ticket notifications disabled")
	}

	mailer := email.NewSender(config.Email, logger)

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, flightCache, producer, mailer, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
