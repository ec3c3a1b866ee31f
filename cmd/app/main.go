package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/nutrilife/booking-api/config"
	"github.com/nutrilife/booking-api/internal/bootstrap"
	"github.com/nutrilife/booking-api/internal/cache"
	"github.com/nutrilife/booking-api/internal/kafka"
	"github.com/nutrilife/booking-api/internal/mail"
	"github.com/nutrilife/booking-api/internal/notify"
	"github.com/nutrilife/booking-api/internal/service/booking"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var bookingStore store.Store
	if cfg.Database.Enabled() {
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			logrus.WithError(err).Fatal("connect postgres")
		}
		defer pool.Close()

		pgStore := store.NewPostgresStore(pool)
		if err := pgStore.InitSchema(ctx); err != nil {
			logrus.WithError(err).Fatal("init schema")
		}
		bookingStore = pgStore
	} else {
		bookingStore = store.NewMemoryStore()
	}

	sender, err := mail.NewSMTPSender(cfg.SMTP)
	if err != nil {
		logrus.WithError(err).Fatal("configure smtp")
	}
	dispatcher := notify.NewDispatcher(sender, cfg.Admin.Email, cfg.SMTP.SenderName, time.Duration(cfg.Notify.DispatchTimeoutSeconds)*time.Second)

	var opts []booking.BookingServiceOption
	if cfg.Redis.Addr != "" {
		listCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Redis.ListCacheTTLSeconds)*time.Second)
		opts = append(opts, booking.WithCache(listCache))
	}
	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.EventsTopic != "" {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		opts = append(opts, booking.WithEvents(producer, cfg.Kafka.EventsTopic))
	}

	bookingService := booking.NewBookingService(bookingStore, dispatcher, opts...)

	if err := bootstrap.Run(ctx, cfg, bookingService); err != nil {
		logrus.WithError(err).Fatal("server error")
	}
}
