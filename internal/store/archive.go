package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nutrilife/booking-api/internal/kafka"
)

// EventArchive is the audit trail written by the worker: every booking event
// consumed from kafka lands here as a row.
type EventArchive struct {
	db *pgxpool.Pool
}

func NewEventArchive(db *pgxpool.Pool) *EventArchive {
	return &EventArchive{db: db}
}

func (a *EventArchive) InitSchema(ctx context.Context) error {
	_, err := a.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS booking_events (
			seq         BIGSERIAL PRIMARY KEY,
			event_type  TEXT NOT NULL,
			booking_id  TEXT NOT NULL,
			payload     JSONB NOT NULL,
			received_at TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("create booking_events table: %w", err)
	}
	return nil
}

func (a *EventArchive) Record(ctx context.Context, event kafka.BookingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode booking event: %w", err)
	}
	_, err = a.db.Exec(ctx, `INSERT INTO booking_events (event_type, booking_id, payload, received_at)
		VALUES ($1, $2, $3, $4)`, event.Type, event.BookingID, payload, time.Now())
	return err
}
