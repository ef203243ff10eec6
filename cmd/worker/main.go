// Mail worker: consumes ticket events published after payment capture
// and delivers them over SMTP. Also sweeps expired sessions on a timer.
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flight-booking/internal/data/repository"
	"flight-booking/internal/email"
	"flight-booking/internal/kafka"
	"flight-booking/internal/notify"
	"flight-booking/pkg/database"
	"flight-booking/pkg/utils"

	kafkaGo "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const sessionSweepInterval = time.Hour

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting mail worker",
		zap.Strings("brokers", config.Kafka.Brokers),
		zap.String("topic", config.Kafka.NotificationsTopic),
	)

	if len(config.Kafka.Brokers) == 0 {
		logger.Fatal("KAFKA_BROKERS must be configured for the worker")
	}

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	repos := repository.NewRepository(db, logger)
	mailer := email.NewSender(config.Email, logger)

	consumer := kafka.NewConsumer(config.Kafka.Brokers, config.Kafka.GroupID, config.Kafka.NotificationsTopic)
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
			var event notify.TicketEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				// A malformed event is dropped, not retried
				logger.Error("Failed to decode ticket event", zap.Error(err))
				return nil
			}

			if err := mailer.Send(event.Email, event.Subject, event.Body); err != nil {
				logger.Error("Failed to send ticket email",
					zap.Error(err),
					zap.String("booking_id", event.BookingID),
					zap.String("pnr", event.PNR),
				)
				return nil
			}

			logger.Info("Ticket email sent",
				zap.String("booking_id", event.BookingID),
				zap.String("pnr", event.PNR),
			)
			return nil
		})
		if err != nil && ctx.Err() == nil {
			logger.Error("Consumer stopped", zap.Error(err))
		}
	}()

	sweepTicker := time.NewTicker(sessionSweepInterval)
	defer sweepTicker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-sweepTicker.C:
			if err := repos.Session.CleanExpiredSessions(ctx); err != nil {
				logger.Error("Session sweep failed", zap.Error(err))
			}
		case s := <-sig:
			logger.Info("Shutting down", zap.String("signal", s.String()))
			return
		}
	}
}
