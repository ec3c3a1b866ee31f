// The worker tails the booking events topic and archives every event into
// postgres, giving the intake API an audit trail that survives restarts.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/nutrilife/booking-api/config"
	"github.com/nutrilife/booking-api/internal/kafka"
	"github.com/nutrilife/booking-api/internal/store"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	if !cfg.Database.Enabled() || len(cfg.Kafka.Brokers) == 0 {
		logrus.Fatal("worker requires database and kafka configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logrus.WithError(err).Fatal("connect postgres")
	}
	defer pool.Close()

	archive := store.NewEventArchive(pool)
	if err := archive.InitSchema(ctx); err != nil {
		logrus.WithError(err).Fatal("init schema")
	}

	consumer := kafka.NewConsumer(cfg.Kafka)
	defer consumer.Close()

	logrus.WithField("topic", cfg.Kafka.EventsTopic).Info("archiving booking events")

	err = consumer.Consume(ctx, func(ctx context.Context, event kafka.BookingEvent) error {
		if err := archive.Record(ctx, event); err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"booking_id": event.BookingID,
			"event":      event.Type,
		}).Info("event archived")
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logrus.WithError(err).Fatal("consumer stopped")
	}
}
